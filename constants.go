package renamed

import "time"

const (
	ServiceName    = "renamed.to"
	DefaultBaseURL = "https://www.renamed.to/api/v1"
	DefaultTimeout = 30 * time.Second
	APIVersion     = "v1"

	// DefaultMaxRetries bounds additional attempts after the first request.
	DefaultMaxRetries = 2
)

// Job polling defaults: roughly five minutes of wall clock at a 2s interval.
const (
	DefaultPollInterval    = 2 * time.Second
	DefaultMaxPollAttempts = 150
)

// API endpoints
const (
	EndpointRename   = "/rename"
	EndpointPDFSplit = "/pdf-split"
	EndpointExtract  = "/extract"
	EndpointUser     = "/user"
)

// uploadFieldName is the multipart field the API reads file content from.
const uploadFieldName = "file"
