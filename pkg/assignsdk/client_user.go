package assignsdk

import (
	"context"
	"net/http"
)

// RegisterUser creates a user account.
func (c *Client) RegisterUser(ctx context.Context, req RegisterRequest) (*AccountResponse, error) {
	return call[AccountResponse](ctx, c, http.MethodPost, "/api/v1/user/register", req, http.StatusCreated)
}

// LoginUser logs in as a user and stores the session cookie.
func (c *Client) LoginUser(ctx context.Context, req LoginRequest) (*AccountResponse, error) {
	return call[AccountResponse](ctx, c, http.MethodPost, "/api/v1/user/login", req, http.StatusOK)
}

// LogoutUser clears the session cookie.
func (c *Client) LogoutUser(ctx context.Context) error {
	_, err := call[ErrorResponse](ctx, c, http.MethodPost, "/api/v1/user/logout", nil, http.StatusOK)
	return err
}

// Upload submits an assignment to the admin named in req.
func (c *Client) Upload(ctx context.Context, req UploadRequest) (*AssignmentResponse, error) {
	return call[AssignmentResponse](ctx, c, http.MethodPost, "/api/v1/user/upload", req, http.StatusCreated)
}

// ListAdmins returns the admins an assignment can be addressed to.
func (c *Client) ListAdmins(ctx context.Context) (*AdminsResponse, error) {
	return call[AdminsResponse](ctx, c, http.MethodGet, "/api/v1/user/admins", nil, http.StatusOK)
}
