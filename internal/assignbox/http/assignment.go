package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/assignbox/internal/assignbox/domain"
	"github.com/aussiebroadwan/assignbox/internal/assignbox/service"
	"github.com/aussiebroadwan/assignbox/pkg/assignsdk"
	"github.com/aussiebroadwan/assignbox/pkg/httpx"
)

type AssignmentHandler struct {
	AssignmentService *service.AssignmentService

	errs errorWriter
}

func toWire(a domain.Assignment) assignsdk.Assignment {
	return assignsdk.Assignment{
		ID:        a.ID,
		UserID:    a.UserID,
		Task:      a.Task,
		Admin:     a.AdminID,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// HandleUpload submits an assignment as the logged-in user.
//
//	@Summary		Upload an assignment
//	@Tags			Assignments
//	@Accept			json
//	@Produce		json
//	@Security		CookieAuth
//	@Param			request	body		assignsdk.UploadRequest	true	"Task and reviewing admin id"
//	@Success		201		{object}	assignsdk.AssignmentResponse
//	@Failure		400		{object}	assignsdk.ErrorResponse	"Missing task or admin"
//	@Failure		401		{object}	assignsdk.ErrorResponse
//	@Failure		403		{object}	assignsdk.ErrorResponse	"Not a user token"
//	@Failure		404		{object}	assignsdk.ErrorResponse	"User no longer exists"
//	@Failure		500		{object}	assignsdk.ErrorResponse
//	@Router			/api/v1/user/upload [post].
func (h *AssignmentHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.SubjectFromContext(r.Context())

	var req assignsdk.UploadRequest
	if err := decodeBody(r, &req); err != nil {
		h.errs.message(w, http.StatusBadRequest, "Request body must be valid JSON.")
		return
	}

	a, err := h.AssignmentService.Create(r.Context(), userID, service.CreateAssignmentInput{
		Task:  req.Task,
		Admin: req.Admin,
	})
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			h.errs.message(w, http.StatusBadRequest, verr.Message)
		case errors.Is(err, service.ErrAccountNotFound):
			h.errs.message(w, http.StatusNotFound, "User not found.")
		default:
			h.errs.internalMsg(w, r, msgInternalPeriod, err)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, assignsdk.AssignmentResponse{
		Message:    "Assignment submitted successfully.",
		Assignment: toWire(a),
	})
}

// HandleList lists the assignments addressed to the logged-in admin.
//
//	@Summary		List my assignments
//	@Description	Returns every assignment addressed to the caller, without the admin field. An empty result is a 404.
//	@Tags			Assignments
//	@Produce		json
//	@Security		CookieAuth
//	@Success		200	{object}	assignsdk.AssignmentsResponse
//	@Failure		401	{object}	assignsdk.ErrorResponse
//	@Failure		403	{object}	assignsdk.ErrorResponse	"Not an admin token"
//	@Failure		404	{object}	assignsdk.ErrorResponse	"No assignments"
//	@Failure		500	{object}	assignsdk.ErrorResponse
//	@Router			/api/v1/admin/assignments [get].
func (h *AssignmentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	adminID, _ := httpx.SubjectFromContext(r.Context())

	list, err := h.AssignmentService.ListForAdmin(r.Context(), adminID)
	if err != nil {
		if errors.Is(err, service.ErrNoAssignments) {
			h.errs.message(w, http.StatusNotFound, "No assignments found assigned to you.")
			return
		}
		h.errs.internalMsg(w, r, msgInternalPeriod, err)
		return
	}

	out := make([]assignsdk.Assignment, 0, len(list))
	for _, a := range list {
		wire := toWire(a)
		wire.Admin = ""
		out = append(out, wire)
	}

	httpx.WriteJSON(w, http.StatusOK, assignsdk.AssignmentsResponse{
		Message:     "Assignments retrieved successfully.",
		Assignments: out,
	})
}

// HandleAccept accepts an assignment.
//
//	@Summary	Accept an assignment
//	@Tags		Assignments
//	@Produce	json
//	@Security	CookieAuth
//	@Param		id	path		string	true	"Assignment id"
//	@Success	200	{object}	assignsdk.AssignmentResponse
//	@Failure	400	{object}	assignsdk.ErrorResponse	"Already accepted"
//	@Failure	401	{object}	assignsdk.ErrorResponse
//	@Failure	403	{object}	assignsdk.ErrorResponse	"Not an admin token, or addressed to another admin"
//	@Failure	404	{object}	assignsdk.ErrorResponse	"Assignment not found"
//	@Failure	500	{object}	assignsdk.ErrorResponse
//	@Router		/api/v1/admin/assignments/{id}/accept [post].
func (h *AssignmentHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, domain.StatusAccepted)
}

// HandleReject rejects an assignment.
//
//	@Summary	Reject an assignment
//	@Tags		Assignments
//	@Produce	json
//	@Security	CookieAuth
//	@Param		id	path		string	true	"Assignment id"
//	@Success	200	{object}	assignsdk.AssignmentResponse
//	@Failure	400	{object}	assignsdk.ErrorResponse	"Already rejected"
//	@Failure	401	{object}	assignsdk.ErrorResponse
//	@Failure	403	{object}	assignsdk.ErrorResponse	"Not an admin token, or addressed to another admin"
//	@Failure	404	{object}	assignsdk.ErrorResponse	"Assignment not found"
//	@Failure	500	{object}	assignsdk.ErrorResponse
//	@Router		/api/v1/admin/assignments/{id}/reject [post].
func (h *AssignmentHandler) HandleReject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, domain.StatusRejected)
}

func (h *AssignmentHandler) transition(w http.ResponseWriter, r *http.Request, target domain.Status) {
	adminID, _ := httpx.SubjectFromContext(r.Context())
	id := r.PathValue("id")

	a, err := h.AssignmentService.Transition(r.Context(), adminID, id, target)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			h.errs.message(w, http.StatusBadRequest, verr.Message)
		case errors.Is(err, service.ErrAssignmentNotFound):
			h.errs.message(w, http.StatusNotFound, "Assignment not found")
		case errors.Is(err, service.ErrForbidden):
			h.errs.message(w, http.StatusForbidden, "Assignment is addressed to another admin")
		case errors.Is(err, service.ErrConflict):
			h.errs.message(w, http.StatusBadRequest, "Assignment has already been "+string(target))
		default:
			h.errs.internal(w, r, err)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, assignsdk.AssignmentResponse{
		Message:    "Assignment " + string(target) + " successfully",
		Assignment: toWire(a),
	})
}
