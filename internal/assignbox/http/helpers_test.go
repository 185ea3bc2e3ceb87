package http_test

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aussiebroadwan/assignbox/internal/assignbox/domain"
	assignhttp "github.com/aussiebroadwan/assignbox/internal/assignbox/http"
	"github.com/aussiebroadwan/assignbox/internal/assignbox/service"
	"github.com/aussiebroadwan/assignbox/internal/assignbox/store/drivers/sqlite"
	"github.com/aussiebroadwan/assignbox/pkg/assignsdk"
	"github.com/aussiebroadwan/assignbox/pkg/httpx"
	"github.com/aussiebroadwan/assignbox/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer   = "assignbox-test"
	testPassword = "secret1"
)

var testSecret = []byte(strings.Repeat("h", jwtx.MinSecretLength))

type testServer struct {
	URL      string
	Verifier jwtx.Verifier
	Store    *sqlite.Store
}

// newTestServer wires the full router over an in-memory sqlite store.
func newTestServer(t *testing.T, exposeErrors bool) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations(context.Background()))

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)
	verifier := jwtx.NewVerifierHS256(testSecret, testIssuer)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := assignhttp.NewRouter(verifier, "test", st, logger, assignhttp.Options{
		Cookie:       httpx.CookieConfig{Name: "token", MaxAge: jwtx.DefaultCookieMaxAge},
		CORSOrigin:   "http://localhost:5173",
		ExposeErrors: exposeErrors,
	})
	router.UserService = &service.IdentityService{
		Store: st, Role: domain.RoleUser, Signer: signer, Issuer: testIssuer, SessionTTL: jwtx.DefaultSessionTTL,
	}
	router.AdminService = &service.IdentityService{
		Store: st, Role: domain.RoleAdmin, Signer: signer, Issuer: testIssuer, SessionTTL: jwtx.DefaultSessionTTL,
	}
	router.AssignmentService = &service.AssignmentService{Store: st, EnforceOwnership: true}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Verifier: verifier, Store: st}
}

// loggedInUser registers and logs in a user on a fresh client.
func (s *testServer) loggedInUser(t *testing.T, name, email string) *assignsdk.Client {
	t.Helper()
	ctx := context.Background()
	c := assignsdk.NewClient(s.URL)

	_, err := c.RegisterUser(ctx, assignsdk.RegisterRequest{Name: name, Email: email, Password: testPassword})
	require.NoError(t, err)
	_, err = c.LoginUser(ctx, assignsdk.LoginRequest{Email: email, Password: testPassword})
	require.NoError(t, err)
	return c
}

// loggedInAdmin registers and logs in an admin and returns the client with its id.
func (s *testServer) loggedInAdmin(t *testing.T, name, email string) (*assignsdk.Client, string) {
	t.Helper()
	ctx := context.Background()
	c := assignsdk.NewClient(s.URL)

	_, err := c.RegisterAdmin(ctx, assignsdk.RegisterRequest{Name: name, Email: email, Password: testPassword})
	require.NoError(t, err)
	_, err = c.LoginAdmin(ctx, assignsdk.LoginRequest{Email: email, Password: testPassword})
	require.NoError(t, err)

	claims, err := s.Verifier.Verify(c.SessionToken())
	require.NoError(t, err)
	return c, claims.Subject
}

func requireStatus(t *testing.T, err error, code int) *assignsdk.APIError {
	t.Helper()
	var apiErr *assignsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, code, apiErr.StatusCode, apiErr.Message)
	return apiErr
}
