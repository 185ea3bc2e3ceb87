package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/aussiebroadwan/assignbox/internal/assignbox/domain"
	"github.com/jmoiron/sqlx"
)

const accountColumns = `id, name, email, password_hash, created_at, updated_at`

type accountRow struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (row accountRow) toDomain() domain.Account {
	return domain.Account{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

// accountsRepo serves both identity spaces; table is one of the package
// constants and never caller input.
type accountsRepo struct {
	q     querier
	table string
}

func (r *accountsRepo) GetByID(ctx context.Context, id string) (domain.Account, error) {
	var row accountRow
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = ?`, accountColumns, r.table)
	if err := sqlx.GetContext(ctx, r.q, &row, query, id); err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return row.toDomain(), nil
}

func (r *accountsRepo) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	var row accountRow
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE email = ?`, accountColumns, r.table)
	if err := sqlx.GetContext(ctx, r.q, &row, query, email); err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return row.toDomain(), nil
}

func (r *accountsRepo) Create(ctx context.Context, a domain.Account) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (?, ?, ?, ?, ?, ?)`, r.table, accountColumns)
	_, err := r.q.ExecContext(ctx, query,
		a.ID, a.Name, a.Email, a.PasswordHash, a.CreatedAt.UTC(), a.UpdatedAt.UTC(),
	)
	return mapConstraint(err)
}

func (r *accountsRepo) List(ctx context.Context) ([]domain.Account, error) {
	var rows []accountRow
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY created_at, id`, accountColumns, r.table)
	if err := sqlx.SelectContext(ctx, r.q, &rows, query); err != nil {
		return nil, err
	}

	out := make([]domain.Account, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
