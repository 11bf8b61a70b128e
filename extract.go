package renamed

import (
	"context"
	"encoding/json"
	"fmt"
)

// Extract uploads a document and pulls structured data out of it, guided by
// an optional prompt and JSON schema.
func (c *client) Extract(ctx context.Context, file *File, opts *ExtractOptions) (*ExtractResult, error) {
	fields := map[string]string{}
	if opts != nil {
		if opts.Prompt != "" {
			fields["prompt"] = opts.Prompt
		}
		if opts.Schema != nil {
			schema, err := json.Marshal(opts.Schema)
			if err != nil {
				return nil, fmt.Errorf("encode extract schema: %w", err)
			}
			fields["schema"] = string(schema)
		}
	}

	var result ExtractResult
	if err := c.uploadFile(ctx, EndpointExtract, file, fields, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
