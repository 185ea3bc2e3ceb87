package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/assignbox/internal/assignbox/store"
	"github.com/jmoiron/sqlx"
)

type txStore struct {
	tx *sqlx.Tx
}

func (t *txStore) Users() store.Accounts          { return &accountsRepo{q: t.tx, table: tableUsers} }
func (t *txStore) Admins() store.Accounts         { return &accountsRepo{q: t.tx, table: tableAdmins} }
func (t *txStore) Assignments() store.Assignments { return &assignmentsRepo{q: t.tx} }

// nothing to close; the outer Store owns the connection
func (t *txStore) Close() error { return nil }

// Ping is a no-op: the connection is already held by the transaction.
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Store) error) error {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return sql.ErrTxDone
}

// no-op; migrations are applied before any tx is started
func (t *txStore) ApplyMigrations(ctx context.Context) error { return nil }
