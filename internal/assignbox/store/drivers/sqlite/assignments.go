package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/aussiebroadwan/assignbox/internal/assignbox/domain"
	"github.com/aussiebroadwan/assignbox/internal/assignbox/store"
	"github.com/jmoiron/sqlx"
)

const assignmentColumns = `id, user_id, task, admin_id, status, created_at, updated_at`

type assignmentRow struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Task      string    `db:"task"`
	AdminID   string    `db:"admin_id"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (row assignmentRow) toDomain() domain.Assignment {
	return domain.Assignment{
		ID:        row.ID,
		UserID:    row.UserID,
		Task:      row.Task,
		AdminID:   row.AdminID,
		Status:    domain.Status(row.Status),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

type assignmentsRepo struct {
	q querier
}

func (r *assignmentsRepo) Create(ctx context.Context, a domain.Assignment) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO assignments (`+assignmentColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.UserID, a.Task, a.AdminID, string(a.Status), a.CreatedAt.UTC(), a.UpdatedAt.UTC(),
	)
	return mapConstraint(err)
}

func (r *assignmentsRepo) GetByID(ctx context.Context, id string) (domain.Assignment, error) {
	var row assignmentRow
	err := sqlx.GetContext(ctx, r.q, &row,
		`SELECT `+assignmentColumns+` FROM assignments WHERE id = ?`, id)
	if err != nil {
		return domain.Assignment{}, mapNotFound(err)
	}
	return row.toDomain(), nil
}

func (r *assignmentsRepo) ListByAdmin(ctx context.Context, adminID string) ([]domain.Assignment, error) {
	var rows []assignmentRow
	err := sqlx.SelectContext(ctx, r.q, &rows,
		`SELECT `+assignmentColumns+` FROM assignments WHERE admin_id = ? ORDER BY created_at, id`,
		adminID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Assignment, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *assignmentsRepo) TransitionStatus(
	ctx context.Context,
	id string,
	target domain.Status,
	adminID string,
	now time.Time,
) (domain.Assignment, error) {
	query := `UPDATE assignments SET status = ?, updated_at = ?
		WHERE id = ? AND status <> ?`
	args := []any{string(target), now.UTC(), id, string(target)}
	if adminID != "" {
		query += ` AND admin_id = ?`
		args = append(args, adminID)
	}
	query += ` RETURNING ` + assignmentColumns

	var row assignmentRow
	if err := sqlx.GetContext(ctx, r.q, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Assignment{}, store.ErrPrecondition
		}
		return domain.Assignment{}, err
	}
	return row.toDomain(), nil
}
