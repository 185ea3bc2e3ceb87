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
	"github.com/aussiebroadwan/assignbox/pkg/idx"
	"github.com/aussiebroadwan/assignbox/pkg/slogx"
)

const msgMissingAssignmentFields = "Please provide both task and admin fields."

type AssignmentService struct {
	Store store.Store

	// EnforceOwnership restricts transitions to the admin the assignment is
	// addressed to. When false any admin may accept or reject anything.
	EnforceOwnership bool
}

type CreateAssignmentInput struct {
	Task  string
	Admin string
}

// Create files a new pending assignment from userID to the given admin. The
// admin id is not checked against the admin accounts.
func (s *AssignmentService) Create(
	ctx context.Context,
	userID string,
	in CreateAssignmentInput,
) (domain.Assignment, error) {
	log := slogx.FromContext(ctx)

	err := validation.ValidateStruct(&in,
		validation.Field(&in.Task, validation.Required),
		validation.Field(&in.Admin, validation.Required),
	)
	if err != nil {
		return domain.Assignment{}, invalid(msgMissingAssignmentFields)
	}

	now := time.Now().UTC()
	assignment := domain.Assignment{
		ID:        idx.New().String(),
		UserID:    userID,
		Task:      in.Task,
		AdminID:   in.Admin,
		Status:    domain.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Store) error {
		if _, err := lookupAccount(ctx, tx.Users(), userID); err != nil {
			return err
		}
		return tx.Assignments().Create(ctx, assignment)
	})
	if err != nil {
		if !errors.Is(err, ErrAccountNotFound) {
			log.Error("failed to create assignment", slog.Any("error", err))
		}
		return domain.Assignment{}, err
	}

	log.Info("assignment submitted",
		slog.String("assignment_id", assignment.ID),
		slog.String("user_id", userID),
		slog.String("admin_id", assignment.AdminID),
	)
	return assignment, nil
}

// ListForAdmin returns the assignments addressed to adminID. An empty result
// is ErrNoAssignments rather than an empty slice.
func (s *AssignmentService) ListForAdmin(ctx context.Context, adminID string) ([]domain.Assignment, error) {
	list, err := s.Store.Assignments().ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, ErrNoAssignments
	}
	return list, nil
}

// Transition moves an assignment to accepted or rejected with a single
// conditional write. When the write matches nothing the record is re-read
// to report why: missing, owned by another admin, or already in target.
func (s *AssignmentService) Transition(
	ctx context.Context,
	adminID string,
	assignmentID string,
	target domain.Status,
) (domain.Assignment, error) {
	log := slogx.FromContext(ctx).With(
		slog.String("assignment_id", assignmentID),
		slog.String("target", string(target)),
	)

	if !target.IsDecision() {
		return domain.Assignment{}, invalid(fmt.Sprintf("Cannot move an assignment to %q.", target))
	}

	if _, err := idx.Parse(assignmentID); err != nil {
		return domain.Assignment{}, ErrAssignmentNotFound
	}

	owner := ""
	if s.EnforceOwnership {
		owner = adminID
	}

	updated, err := s.Store.Assignments().TransitionStatus(ctx, assignmentID, target, owner, time.Now())
	if err == nil {
		log.Info("assignment transitioned", slog.String("admin_id", adminID))
		return updated, nil
	}
	if !errors.Is(err, store.ErrPrecondition) {
		log.Error("failed to transition assignment", slog.Any("error", err))
		return domain.Assignment{}, err
	}

	current, err := s.Store.Assignments().GetByID(ctx, assignmentID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return domain.Assignment{}, ErrAssignmentNotFound
	case err != nil:
		log.Error("failed to re-read assignment", slog.Any("error", err))
		return domain.Assignment{}, err
	case owner != "" && current.AdminID != owner:
		log.Warn("transition by non-owning admin", slog.String("admin_id", adminID))
		return domain.Assignment{}, ErrForbidden
	default:
		return domain.Assignment{}, fmt.Errorf("%w: %s", ErrConflict, current.Status)
	}
}
