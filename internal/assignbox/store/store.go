package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/assignbox/internal/assignbox/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrPrecondition is returned by conditional writes that matched nothing.
	ErrPrecondition = errors.New("store: precondition failed")
)

// Store is the root data access interface implemented by the sqlite and
// mongo drivers. Repositories hang off it so a transaction-scoped Store can
// hand out the same repositories bound to the transaction.
type Store interface {
	Users() Accounts
	Admins() Accounts
	Assignments() Assignments

	// ApplyMigrations brings the schema (tables or indexes) up to date.
	ApplyMigrations(ctx context.Context) error

	// WithTx runs fn against a transaction-scoped Store. The transaction is
	// committed when fn returns nil and rolled back otherwise. Calling WithTx
	// on the Store passed to fn is an error.
	WithTx(ctx context.Context, fn func(tx Store) error) error

	// Ping verifies the backing database is reachable.
	Ping(ctx context.Context) error

	Close() error
}

// Accounts is one identity space (users or admins).
type Accounts interface {
	GetByID(ctx context.Context, id string) (domain.Account, error)

	// GetByEmail is used by login and the duplicate check on register.
	GetByEmail(ctx context.Context, email string) (domain.Account, error)

	// Create inserts a new account (id is provided by the app via ULID).
	// A second account with the same email yields ErrAlreadyExists.
	Create(ctx context.Context, a domain.Account) error

	// List returns every account ordered by creation.
	List(ctx context.Context) ([]domain.Account, error)
}

type Assignments interface {
	Create(ctx context.Context, a domain.Assignment) error
	GetByID(ctx context.Context, id string) (domain.Assignment, error)

	// ListByAdmin returns the assignments addressed to adminID, oldest first.
	ListByAdmin(ctx context.Context, adminID string) ([]domain.Assignment, error)

	// TransitionStatus sets the status to target in a single conditional
	// write. The write only applies when the current status differs from
	// target and, if adminID is non-empty, the assignment is addressed to
	// adminID. When nothing matched ErrPrecondition is returned and the
	// caller re-reads the record to find out why.
	TransitionStatus(
		ctx context.Context,
		id string,
		target domain.Status,
		adminID string,
		now time.Time,
	) (domain.Assignment, error)
}

// AccountsOf selects the identity space for role.
func AccountsOf(s Store, role domain.Role) Accounts {
	if role == domain.RoleAdmin {
		return s.Admins()
	}
	return s.Users()
}
