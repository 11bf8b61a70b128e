package renamed

import (
	"context"
)

// Rename uploads a document and returns an AI-suggested filename for it.
func (c *client) Rename(ctx context.Context, file *File, opts *RenameOptions) (*RenameResult, error) {
	fields := map[string]string{}
	if opts != nil && opts.Template != "" {
		fields["template"] = opts.Template
	}

	var result RenameResult
	if err := c.uploadFile(ctx, EndpointRename, file, fields, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
