package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/aussiebroadwan/assignbox/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	t.Run("stores a bcrypt hash", func(t *testing.T) {
		a, err := env.users.Register(ctx, RegisterInput{Name: "A", Email: "a@x.com", Password: "secret1"})
		require.NoError(t, err)
		require.NotEmpty(t, a.ID)
		require.NotEqual(t, "secret1", a.PasswordHash)
		require.NoError(t, cryptox.VerifyPassword("secret1", a.PasswordHash))
	})

	t.Run("missing fields", func(t *testing.T) {
		for _, in := range []RegisterInput{
			{Email: "m@x.com", Password: "secret1"},
			{Name: "M", Password: "secret1"},
			{Name: "M", Email: "m@x.com"},
		} {
			_, err := env.users.Register(ctx, in)
			require.ErrorIs(t, err, ErrValidation)
			require.Equal(t, msgMissingRegisterFields, err.Error())
		}
	})

	t.Run("duplicate email in the same role", func(t *testing.T) {
		_, err := env.users.Register(ctx, RegisterInput{Name: "A2", Email: "a@x.com", Password: "secret1"})
		require.ErrorIs(t, err, ErrDuplicateEmail)
	})

	t.Run("same email in the other role", func(t *testing.T) {
		_, err := env.admins.Register(ctx, RegisterInput{Name: "A", Email: "a@x.com", Password: "secret1"})
		require.NoError(t, err)
	})

	t.Run("password length boundary", func(t *testing.T) {
		_, err := env.users.Register(ctx, RegisterInput{Name: "F", Email: "five@x.com", Password: "12345"})
		require.ErrorIs(t, err, ErrValidation)
		require.Equal(t, msgShortPassword, err.Error())

		_, err = env.users.Register(ctx, RegisterInput{Name: "S", Email: "six@x.com", Password: "123456"})
		require.NoError(t, err)
	})

	t.Run("duplicate is reported before a short password", func(t *testing.T) {
		_, err := env.users.Register(ctx, RegisterInput{Name: "A", Email: "a@x.com", Password: "123"})
		require.ErrorIs(t, err, ErrDuplicateEmail)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := env.register(t, env.users, "A", "a@x.com")

	t.Run("issues a token with subject, email and role", func(t *testing.T) {
		before := time.Now()
		sess, err := env.users.Login(ctx, LoginInput{Email: "a@x.com", Password: "secret1"})
		require.NoError(t, err)
		require.Equal(t, user.ID, sess.Account.ID)
		require.WithinDuration(t, before.Add(time.Hour), sess.ExpiresAt, 5*time.Second)

		claims, err := env.verifier.Verify(sess.Token)
		require.NoError(t, err)
		require.Equal(t, user.ID, claims.Subject)
		require.Equal(t, "a@x.com", claims.Email)
		require.Equal(t, "user", claims.Role)
	})

	t.Run("session never serialises the hash", func(t *testing.T) {
		sess, err := env.users.Login(ctx, LoginInput{Email: "a@x.com", Password: "secret1"})
		require.NoError(t, err)

		raw, err := json.Marshal(sess.Account)
		require.NoError(t, err)
		require.NotContains(t, string(raw), sess.Account.PasswordHash)
		require.NotContains(t, string(raw), "secret1")
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := env.users.Login(ctx, LoginInput{Email: "a@x.com"})
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := env.users.Login(ctx, LoginInput{Email: "nobody@x.com", Password: "secret1"})
		require.ErrorIs(t, err, ErrAccountNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := env.users.Login(ctx, LoginInput{Email: "a@x.com", Password: "wrong!!"})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("user credentials do not open the admin space", func(t *testing.T) {
		_, err := env.admins.Login(ctx, LoginInput{Email: "a@x.com", Password: "secret1"})
		require.ErrorIs(t, err, ErrAccountNotFound)
	})

	t.Run("admin tokens carry the admin role", func(t *testing.T) {
		env.register(t, env.admins, "B", "b@x.com")
		sess, err := env.admins.Login(ctx, LoginInput{Email: "b@x.com", Password: "secret1"})
		require.NoError(t, err)

		claims, err := env.verifier.Verify(sess.Token)
		require.NoError(t, err)
		require.Equal(t, "admin", claims.Role)
	})
}

func TestListAndLookupAccounts(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.admins.ListAccounts(ctx)
	require.ErrorIs(t, err, ErrNoAccounts)

	b := env.register(t, env.admins, "B", "b@x.com")
	env.register(t, env.admins, "C", "c@x.com")

	list, err := env.admins.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	got, err := lookupAccount(ctx, env.store.Admins(), b.ID)
	require.NoError(t, err)
	require.Equal(t, "B", got.Name)

	_, err = lookupAccount(ctx, env.store.Users(), b.ID)
	require.ErrorIs(t, err, ErrAccountNotFound)
}
