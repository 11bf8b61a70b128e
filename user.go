package renamed

import (
	"context"
	"net/http"
)

// GetUser fetches the authenticated user's profile and credit balance.
func (c *client) GetUser(ctx context.Context) (*User, error) {
	var user User
	req := c.restyClient.R().
		SetContext(ctx).
		SetResult(&user)

	if _, err := c.execute(req, http.MethodGet, EndpointUser); err != nil {
		return nil, err
	}

	return &user, nil
}
