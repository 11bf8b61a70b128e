package renamed

import (
	"context"
	"io"
)

// Info provides metadata about the client
type Info interface {
	Name() string
	Version() string
}

// Renamer suggests AI-generated filenames for uploaded documents.
type Renamer interface {
	Rename(ctx context.Context, file *File, opts *RenameOptions) (*RenameResult, error)
}

// Splitter starts asynchronous PDF split jobs.
type Splitter interface {
	PDFSplit(ctx context.Context, file *File, opts *PDFSplitOptions, jobOpts ...JobOption) (*Job, error)
}

// Extractor pulls structured data out of documents.
type Extractor interface {
	Extract(ctx context.Context, file *File, opts *ExtractOptions) (*ExtractResult, error)
}

// Accounts exposes the authenticated user's profile.
type Accounts interface {
	GetUser(ctx context.Context) (*User, error)
}

// Downloader handles file download operations
type Downloader interface {
	DownloadFile(ctx context.Context, url string) ([]byte, error)
	DownloadFileTo(ctx context.Context, url string, dst io.Writer) error
}

// Client combines all renamed.to operations
type Client interface {
	Info
	Renamer
	Splitter
	Extractor
	Accounts
	Downloader

	// Close releases idle connections held by the client.
	Close()
}
