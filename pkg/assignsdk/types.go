package assignsdk

import "time"

// ============================================================================
// Identity
// ============================================================================

// RegisterRequest is the body of POST /api/v1/{user,admin}/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/v1/{user,admin}/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AccountView is the public part of an account. It never carries the
// password or its hash.
type AccountView struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AccountResponse is returned by register and login. Exactly one of User or
// Admin is set, depending on the route.
type AccountResponse struct {
	Message string       `json:"message"`
	User    *AccountView `json:"user,omitempty"`
	Admin   *AccountView `json:"admin,omitempty"`
}

// AdminSummary identifies an admin a user can address an assignment to.
type AdminSummary struct {
	AdminID string `json:"adminId"`
	Name    string `json:"name"`
}

type AdminsResponse struct {
	Message string         `json:"message"`
	Admins  []AdminSummary `json:"admins"`
}

// ============================================================================
// Assignments
// ============================================================================

// UploadRequest is the body of POST /api/v1/user/upload. Admin is the id of
// the reviewing admin.
type UploadRequest struct {
	Task  string `json:"task"`
	Admin string `json:"admin"`
}

// Assignment is the wire form of an assignment. Admin is omitted in the
// admin's own listing.
type Assignment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Task      string    `json:"task"`
	Admin     string    `json:"admin,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type AssignmentResponse struct {
	Message    string     `json:"message"`
	Assignment Assignment `json:"assignment"`
}

type AssignmentsResponse struct {
	Message     string       `json:"message"`
	Assignments []Assignment `json:"assignments"`
}

// ============================================================================
// Errors & Health
// ============================================================================

// ErrorResponse is the body of every failed request. Error is only present
// on 500s when the server is configured to expose internal errors.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}
