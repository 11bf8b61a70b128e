package renamed

// JobStatus enumerates async job states.
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// SplitMode enumerates PDF split strategies.
type SplitMode string

const (
	SplitModeAuto  SplitMode = "auto"  // AI-detected document boundaries
	SplitModePages SplitMode = "pages" // fixed page count per document
	SplitModeBlank SplitMode = "blank" // split at blank separator pages
)

// RenameResult represents the response from a rename operation.
type RenameResult struct {
	OriginalFilename  string  `json:"originalFilename"`     // Filename that was uploaded
	SuggestedFilename string  `json:"suggestedFilename"`    // AI-suggested new filename
	FolderPath        string  `json:"folderPath,omitempty"` // Suggested folder for organization
	Confidence        float64 `json:"confidence,omitempty"` // Confidence score (0-1)
}

// RenameOptions customizes the rename operation.
type RenameOptions struct {
	Template string // Custom template for filename generation
}

// PDFSplitOptions customizes how a PDF is split.
type PDFSplitOptions struct {
	Mode          SplitMode // Split strategy, defaults to server-side auto detection
	PagesPerSplit int       // Pages per document, used by SplitModePages
}

// SplitDocument is a single document produced by a PDF split.
type SplitDocument struct {
	Index       int    `json:"index"`       // Document index, starting from 0
	Filename    string `json:"filename"`    // Suggested filename for this document
	Pages       string `json:"pages"`       // Page range included in this document
	DownloadURL string `json:"downloadUrl"` // URL to download this document
	Size        int64  `json:"size"`        // Size in bytes
}

// PDFSplitResult represents the completed result of a split job.
type PDFSplitResult struct {
	OriginalFilename string          `json:"originalFilename"` // Filename that was uploaded
	Documents        []SplitDocument `json:"documents"`        // Split documents
	TotalPages       int             `json:"totalPages"`       // Page count of the original document
}

// JobStatusResponse is one snapshot from the job status endpoint.
type JobStatusResponse struct {
	JobID    string          `json:"jobId"`              // Unique job identifier
	Status   JobStatus       `json:"status"`             // Current job status
	Progress *int            `json:"progress,omitempty"` // Progress percentage (0-100), when reported
	Error    string          `json:"error,omitempty"`    // Error message when the job failed
	Result   *PDFSplitResult `json:"result,omitempty"`   // Result payload, present once completed
}

// ExtractOptions customizes the extract operation. Prompt and Schema may be
// combined; the schema is JSON-encoded into the upload form.
type ExtractOptions struct {
	Prompt string         // Natural language description of what to extract
	Schema map[string]any // JSON schema for the extracted structure
}

// ExtractResult represents the response from an extract operation.
type ExtractResult struct {
	Data       map[string]any `json:"data"`       // Extracted data matching the schema
	Confidence float64        `json:"confidence"` // Confidence score (0-1)
}

// Team describes the team a user belongs to.
type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// User is the authenticated account profile.
type User struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`    // Display name
	Credits *int   `json:"credits,omitempty"` // Remaining credits, when reported
	Team    *Team  `json:"team,omitempty"`    // Team membership, when applicable
}
