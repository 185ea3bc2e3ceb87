package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/aussiebroadwan/assignbox/pkg/assignsdk"
	"github.com/aussiebroadwan/assignbox/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t, false)
	c := assignsdk.NewClient(srv.URL)

	_, err := c.RegisterUser(ctx, assignsdk.RegisterRequest{Name: "A", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	t.Run("missing fields", func(t *testing.T) {
		_, err := c.RegisterUser(ctx, assignsdk.RegisterRequest{Email: "x@x.com", Password: "secret1"})
		apiErr := requireStatus(t, err, http.StatusBadRequest)
		require.Equal(t, "Please provide all required fields (name, email, password).", apiErr.Message)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := c.RegisterUser(ctx, assignsdk.RegisterRequest{Name: "A", Email: "a@x.com", Password: "secret1"})
		apiErr := requireStatus(t, err, http.StatusBadRequest)
		require.Equal(t, "User with this email already registered.", apiErr.Message)
	})

	t.Run("same email as admin", func(t *testing.T) {
		_, err := c.RegisterAdmin(ctx, assignsdk.RegisterRequest{Name: "A", Email: "a@x.com", Password: "secret1"})
		require.NoError(t, err)
	})

	t.Run("short password", func(t *testing.T) {
		_, err := c.RegisterUser(ctx, assignsdk.RegisterRequest{Name: "S", Email: "s@x.com", Password: "12345"})
		apiErr := requireStatus(t, err, http.StatusBadRequest)
		require.Equal(t, "Password should be at least 6 characters long.", apiErr.Message)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := c.LoginUser(ctx, assignsdk.LoginRequest{Email: "nobody@x.com", Password: "secret1"})
		apiErr := requireStatus(t, err, http.StatusBadRequest)
		require.Equal(t, "User not found. Please register first.", apiErr.Message)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := c.LoginUser(ctx, assignsdk.LoginRequest{Email: "a@x.com", Password: "nope123"})
		apiErr := requireStatus(t, err, http.StatusBadRequest)
		require.Equal(t, "Invalid password. Please try again.", apiErr.Message)
		require.Empty(t, c.SessionToken())
	})

	t.Run("invalid json", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/api/v1/user/login", "application/json", strings.NewReader("{"))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("login body never carries password material", func(t *testing.T) {
		body := `{"email":"a@x.com","password":"secret1"}`
		resp, err := http.Post(srv.URL+"/api/v1/user/login", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NotContains(t, string(raw), "secret1")
		require.NotContains(t, string(raw), "$2a$")
		require.NotContains(t, strings.ToLower(string(raw)), "password")

		var cookie *http.Cookie
		for _, ck := range resp.Cookies() {
			if ck.Name == "token" {
				cookie = ck
			}
		}
		require.NotNil(t, cookie)
		require.True(t, cookie.HttpOnly)
		require.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
		require.Equal(t, 86400, cookie.MaxAge)

		claims, err := srv.Verifier.Verify(cookie.Value)
		require.NoError(t, err)
		require.Equal(t, "a@x.com", claims.Email)
		require.Equal(t, "user", claims.Role)
	})

	t.Run("logout clears the cookie", func(t *testing.T) {
		_, err := c.LoginUser(ctx, assignsdk.LoginRequest{Email: "a@x.com", Password: "secret1"})
		require.NoError(t, err)
		require.NotEmpty(t, c.SessionToken())

		require.NoError(t, c.LogoutUser(ctx))
		require.Empty(t, c.SessionToken())

		_, err = c.ListAdmins(ctx)
		requireStatus(t, err, http.StatusUnauthorized)
	})

	t.Run("admin logout clears the cookie", func(t *testing.T) {
		admin, _ := srv.loggedInAdmin(t, "Z", "z@x.com")
		require.NotEmpty(t, admin.SessionToken())

		require.NoError(t, admin.LogoutAdmin(ctx))
		require.Empty(t, admin.SessionToken())

		_, err := admin.ListAssignments(ctx)
		requireStatus(t, err, http.StatusUnauthorized)
	})
}

func TestAuthGate(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t, false)

	user := srv.loggedInUser(t, "A", "a@x.com")
	admin, _ := srv.loggedInAdmin(t, "B", "b@x.com")
	anonymous := assignsdk.NewClient(srv.URL)

	t.Run("no cookie", func(t *testing.T) {
		_, err := anonymous.ListAssignments(ctx)
		apiErr := requireStatus(t, err, http.StatusUnauthorized)
		require.Equal(t, "Unauthenticated", apiErr.Message)

		_, err = anonymous.Upload(ctx, assignsdk.UploadRequest{Task: "T", Admin: "x"})
		requireStatus(t, err, http.StatusUnauthorized)
	})

	t.Run("tampered cookie", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/admin/assignments", nil)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: "token", Value: admin.SessionToken() + "x"})

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("user token on admin route", func(t *testing.T) {
		_, err := user.ListAssignments(ctx)
		requireStatus(t, err, http.StatusForbidden)

		_, err = user.AcceptAssignment(ctx, "anything")
		requireStatus(t, err, http.StatusForbidden)
	})

	t.Run("admin token on user route", func(t *testing.T) {
		_, err := admin.Upload(ctx, assignsdk.UploadRequest{Task: "T", Admin: "x"})
		requireStatus(t, err, http.StatusForbidden)

		_, err = admin.ListAdmins(ctx)
		requireStatus(t, err, http.StatusForbidden)
	})
}

func TestAssignmentErrors(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t, false)

	user := srv.loggedInUser(t, "A", "a@x.com")
	admin, adminID := srv.loggedInAdmin(t, "B", "b@x.com")
	other, _ := srv.loggedInAdmin(t, "C", "c@x.com")

	t.Run("empty listing is a 404", func(t *testing.T) {
		_, err := admin.ListAssignments(ctx)
		apiErr := requireStatus(t, err, http.StatusNotFound)
		require.Equal(t, "No assignments found assigned to you.", apiErr.Message)
	})

	t.Run("upload missing fields", func(t *testing.T) {
		_, err := user.Upload(ctx, assignsdk.UploadRequest{Task: "T"})
		apiErr := requireStatus(t, err, http.StatusBadRequest)
		require.Equal(t, "Please provide both task and admin fields.", apiErr.Message)
	})

	up, err := user.Upload(ctx, assignsdk.UploadRequest{Task: "T", Admin: adminID})
	require.NoError(t, err)

	t.Run("unknown assignment", func(t *testing.T) {
		_, err := admin.AcceptAssignment(ctx, "01J0000000000000000000000")
		apiErr := requireStatus(t, err, http.StatusNotFound)
		require.Equal(t, "Assignment not found", apiErr.Message)
	})

	t.Run("another admin cannot transition", func(t *testing.T) {
		_, err := other.RejectAssignment(ctx, up.Assignment.ID)
		requireStatus(t, err, http.StatusForbidden)

		_, err = other.ListAssignments(ctx)
		requireStatus(t, err, http.StatusNotFound)
	})

	t.Run("reject then reject again", func(t *testing.T) {
		_, err := admin.RejectAssignment(ctx, up.Assignment.ID)
		require.NoError(t, err)

		_, err = admin.RejectAssignment(ctx, up.Assignment.ID)
		apiErr := requireStatus(t, err, http.StatusBadRequest)
		require.Equal(t, "Assignment has already been rejected", apiErr.Message)
	})
}

func TestListAdminsEmpty(t *testing.T) {
	srv := newTestServer(t, false)
	user := srv.loggedInUser(t, "A", "a@x.com")

	_, err := user.ListAdmins(context.Background())
	apiErr := requireStatus(t, err, http.StatusNotFound)
	require.Equal(t, "No admins found.", apiErr.Message)
}

func TestHealth(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t, false)
	c := assignsdk.NewClient(srv.URL)

	live, err := c.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	ready, err := c.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.Equal(t, "ok", ready.Checks.Database)
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t, false)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/v1/user/login", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.Equal(t, "http://localhost:5173", resp.Header.Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
}

func TestResponsesAreJSON(t *testing.T) {
	srv := newTestServer(t, false)

	resp, err := http.Post(srv.URL+"/api/v1/admin/register", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var body assignsdk.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.Message)
	require.Empty(t, body.Error)
}

func TestAdminListingOmitsAdminField(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t, false)

	user := srv.loggedInUser(t, "A", "a@x.com")
	admin, adminID := srv.loggedInAdmin(t, "B", "b@x.com")

	for _, task := range []string{"T1", "T2"} {
		up, err := user.Upload(ctx, assignsdk.UploadRequest{Task: task, Admin: adminID})
		require.NoError(t, err)
		require.Equal(t, adminID, up.Assignment.Admin)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/v1/admin/assignments", nil)
	require.NoError(t, err)

	resp, err := admin.HTTPClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Assignments []map[string]any `json:"assignments"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Assignments, 2)

	for _, m := range body.Assignments {
		_, ok := m["admin"]
		require.False(t, ok, "listing record carries an admin key: %v", m)
		require.Equal(t, "pending", m["status"])
		require.NotEmpty(t, m["id"])
	}
}

func TestInternalErrorMessages(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t, true)

	user := srv.loggedInUser(t, "A", "a@x.com")
	admin, adminID := srv.loggedInAdmin(t, "B", "b@x.com")

	// every store call fails from here on
	require.NoError(t, srv.Store.Close())

	tests := []struct {
		name string
		call func() error
		want string
	}{
		{"upload", func() error {
			_, err := user.Upload(ctx, assignsdk.UploadRequest{Task: "T", Admin: adminID})
			return err
		}, "Something went wrong."},
		{"list admins", func() error {
			_, err := user.ListAdmins(ctx)
			return err
		}, "Something went wrong."},
		{"list assignments", func() error {
			_, err := admin.ListAssignments(ctx)
			return err
		}, "Something went wrong."},
		{"accept", func() error {
			_, err := admin.AcceptAssignment(ctx, idx.New().String())
			return err
		}, "Something went wrong"},
		{"login", func() error {
			_, err := user.LoginUser(ctx, assignsdk.LoginRequest{Email: "a@x.com", Password: testPassword})
			return err
		}, "Something went wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := requireStatus(t, tt.call(), http.StatusInternalServerError)
			require.Equal(t, tt.want, apiErr.Message)
			require.NotEmpty(t, apiErr.Detail)
		})
	}
}
