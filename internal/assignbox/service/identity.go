package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/aussiebroadwan/assignbox/internal/assignbox/domain"
	"github.com/aussiebroadwan/assignbox/internal/assignbox/store"
	"github.com/aussiebroadwan/assignbox/pkg/cryptox"
	"github.com/aussiebroadwan/assignbox/pkg/idx"
	"github.com/aussiebroadwan/assignbox/pkg/jwtx"
	"github.com/aussiebroadwan/assignbox/pkg/slogx"
)

// MinPasswordLength is the shortest password accepted on registration.
const MinPasswordLength = 6

const (
	msgMissingRegisterFields = "Please provide all required fields (name, email, password)."
	msgMissingLoginFields    = "Please provide both email and password."
	msgShortPassword         = "Password should be at least 6 characters long."
)

// IdentityService runs registration and login for one identity space. The
// user and admin flows are the same service with a different Role.
type IdentityService struct {
	Store      store.Store
	Role       domain.Role
	Signer     jwtx.Signer
	Issuer     string
	SessionTTL time.Duration
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// Session is the outcome of a successful login.
type Session struct {
	Account   domain.Account
	Token     string
	ExpiresAt time.Time
}

func (s *IdentityService) accounts() store.Accounts {
	return store.AccountsOf(s.Store, s.Role)
}

// Register creates a new account. Checks run in a fixed order: presence,
// then email uniqueness, then password length.
func (s *IdentityService) Register(ctx context.Context, in RegisterInput) (domain.Account, error) {
	log := slogx.FromContext(ctx).With(slog.String("role", s.Role.String()))

	// 1. All fields present
	err := validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required),
		validation.Field(&in.Email, validation.Required),
		validation.Field(&in.Password, validation.Required),
	)
	if err != nil {
		return domain.Account{}, invalid(msgMissingRegisterFields)
	}

	// 2. Email not taken within this role
	_, err = s.accounts().GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return domain.Account{}, ErrDuplicateEmail
	case !errors.Is(err, store.ErrNotFound):
		log.Error("failed to look up account by email", slog.Any("error", err))
		return domain.Account{}, err
	}

	// 3. Password long enough
	if err := validation.Validate(in.Password, validation.Length(MinPasswordLength, 0)); err != nil {
		return domain.Account{}, invalid(msgShortPassword)
	}

	// 4. Hash and persist
	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.Account{}, err
	}

	now := time.Now().UTC()
	account := domain.Account{
		ID:           idx.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.accounts().Create(ctx, account); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Account{}, ErrDuplicateEmail
		}
		log.Error("failed to create account", slog.Any("error", err))
		return domain.Account{}, err
	}

	log.Info("account registered", slog.String("account_id", account.ID))
	return account, nil
}

// Login verifies credentials and issues a signed session token carrying the
// account id, email and role.
func (s *IdentityService) Login(ctx context.Context, in LoginInput) (Session, error) {
	log := slogx.FromContext(ctx).With(slog.String("role", s.Role.String()))

	err := validation.ValidateStruct(&in,
		validation.Field(&in.Email, validation.Required),
		validation.Field(&in.Password, validation.Required),
	)
	if err != nil {
		return Session{}, invalid(msgMissingLoginFields)
	}

	account, err := s.accounts().GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Session{}, ErrAccountNotFound
		}
		log.Error("failed to look up account by email", slog.Any("error", err))
		return Session{}, err
	}

	if err := cryptox.VerifyPassword(in.Password, account.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Info("login rejected: wrong password", slog.String("account_id", account.ID))
			return Session{}, ErrInvalidCredentials
		}
		log.Error("stored password hash is unusable",
			slog.String("account_id", account.ID),
			slog.Any("error", err),
		)
		return Session{}, err
	}

	ttl := s.SessionTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}
	claims := jwtx.NewSessionClaims(account.ID, account.Email, s.Role.String(), ttl, s.Issuer, time.Now())

	token, err := s.Signer.Sign(claims)
	if err != nil {
		return Session{}, fmt.Errorf("sign session token: %w", err)
	}

	log.Info("login succeeded", slog.String("account_id", account.ID))
	return Session{
		Account:   account,
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// lookupAccount fetches one account by id from accounts, reporting a missing
// record as ErrAccountNotFound.
func lookupAccount(ctx context.Context, accounts store.Accounts, id string) (domain.Account, error) {
	account, err := accounts.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Account{}, ErrAccountNotFound
	}
	return account, err
}

// ListAccounts returns every account of this role. An empty result is
// ErrNoAccounts rather than an empty slice.
func (s *IdentityService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accounts().List(ctx)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, ErrNoAccounts
	}
	return accounts, nil
}
