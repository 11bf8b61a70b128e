package renamed

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// DownloadFile fetches raw bytes from a result URL. The URL may live
// outside the API origin, so the fetch rides the transfer client: one
// authenticated attempt, no retries, the usual status-to-error mapping.
func (c *client) DownloadFile(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, ErrEmptyDownloadURL
	}

	req := c.transferClient.R().SetContext(ctx)

	resp, err := c.execute(req, http.MethodGet, url)
	if err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// DownloadFileTo fetches a result URL and writes the content to dst.
func (c *client) DownloadFileTo(ctx context.Context, url string, dst io.Writer) error {
	if dst == nil {
		return ErrNilWriter
	}

	data, err := c.DownloadFile(ctx, url)
	if err != nil {
		return err
	}

	if _, err := dst.Write(data); err != nil {
		return fmt.Errorf("write downloaded file: %w", err)
	}

	return nil
}
