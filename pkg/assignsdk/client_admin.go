package assignsdk

import (
	"context"
	"net/http"
	"net/url"
)

// RegisterAdmin creates an admin account.
func (c *Client) RegisterAdmin(ctx context.Context, req RegisterRequest) (*AccountResponse, error) {
	return call[AccountResponse](ctx, c, http.MethodPost, "/api/v1/admin/register", req, http.StatusCreated)
}

// LoginAdmin logs in as an admin and stores the session cookie.
func (c *Client) LoginAdmin(ctx context.Context, req LoginRequest) (*AccountResponse, error) {
	return call[AccountResponse](ctx, c, http.MethodPost, "/api/v1/admin/login", req, http.StatusOK)
}

// LogoutAdmin clears the session cookie.
func (c *Client) LogoutAdmin(ctx context.Context) error {
	_, err := call[ErrorResponse](ctx, c, http.MethodPost, "/api/v1/admin/logout", nil, http.StatusOK)
	return err
}

// ListAssignments returns the assignments addressed to the logged-in admin.
func (c *Client) ListAssignments(ctx context.Context) (*AssignmentsResponse, error) {
	return call[AssignmentsResponse](ctx, c, http.MethodGet, "/api/v1/admin/assignments", nil, http.StatusOK)
}

// AcceptAssignment marks an assignment accepted.
func (c *Client) AcceptAssignment(ctx context.Context, id string) (*AssignmentResponse, error) {
	path := "/api/v1/admin/assignments/" + url.PathEscape(id) + "/accept"
	return call[AssignmentResponse](ctx, c, http.MethodPost, path, nil, http.StatusOK)
}

// RejectAssignment marks an assignment rejected.
func (c *Client) RejectAssignment(ctx context.Context, id string) (*AssignmentResponse, error) {
	path := "/api/v1/admin/assignments/" + url.PathEscape(id) + "/reject"
	return call[AssignmentResponse](ctx, c, http.MethodPost, path, nil, http.StatusOK)
}
