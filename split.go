package renamed

import (
	"context"
	"strconv"
)

// splitResponse is the immediate acknowledgement for a split request. The
// actual result arrives later through the job status endpoint.
type splitResponse struct {
	StatusURL string `json:"statusUrl"` // Address to poll for job progress
	JobID     string `json:"jobId"`     // Job identifier, when the service reports one
}

// PDFSplit uploads a PDF and starts an asynchronous split job. The returned
// Job must be polled (or waited on) for the result.
func (c *client) PDFSplit(ctx context.Context, file *File, opts *PDFSplitOptions, jobOpts ...JobOption) (*Job, error) {
	fields := map[string]string{}
	if opts != nil {
		if opts.Mode != "" {
			fields["mode"] = string(opts.Mode)
		}
		if opts.PagesPerSplit > 0 {
			fields["pagesPerSplit"] = strconv.Itoa(opts.PagesPerSplit)
		}
	}

	var result splitResponse
	if err := c.uploadFile(ctx, EndpointPDFSplit, file, fields, &result); err != nil {
		return nil, err
	}

	if result.StatusURL == "" {
		return nil, ErrEmptyStatusURL
	}

	return c.newJob(result.StatusURL, result.JobID, jobOpts...), nil
}
