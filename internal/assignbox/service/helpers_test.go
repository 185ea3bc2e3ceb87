package service

import (
	"context"
	"strings"
	"testing"

	"github.com/aussiebroadwan/assignbox/internal/assignbox/domain"
	"github.com/aussiebroadwan/assignbox/internal/assignbox/store/drivers/sqlite"
	"github.com/aussiebroadwan/assignbox/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "assignbox-test"

var testSecret = []byte(strings.Repeat("t", jwtx.MinSecretLength))

type testEnv struct {
	store       *sqlite.Store
	users       *IdentityService
	admins      *IdentityService
	assignments *AssignmentService
	verifier    jwtx.Verifier
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations(context.Background()))

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)

	return &testEnv{
		store: st,
		users: &IdentityService{
			Store: st, Role: domain.RoleUser, Signer: signer, Issuer: testIssuer,
		},
		admins: &IdentityService{
			Store: st, Role: domain.RoleAdmin, Signer: signer, Issuer: testIssuer,
		},
		assignments: &AssignmentService{Store: st, EnforceOwnership: true},
		verifier:    jwtx.NewVerifierHS256(testSecret, testIssuer),
	}
}

func (e *testEnv) register(t *testing.T, svc *IdentityService, name, email string) domain.Account {
	t.Helper()
	a, err := svc.Register(context.Background(), RegisterInput{Name: name, Email: email, Password: "secret1"})
	require.NoError(t, err)
	return a
}
