package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/assignbox/internal/assignbox/domain"
	"github.com/aussiebroadwan/assignbox/internal/assignbox/service"
	"github.com/aussiebroadwan/assignbox/pkg/assignsdk"
	"github.com/aussiebroadwan/assignbox/pkg/httpx"
)

// IdentityHandler serves register, login and logout for one role.
type IdentityHandler struct {
	Service *service.IdentityService
	Cookie  httpx.CookieConfig

	errs errorWriter
}

// label is the capitalised role used in messages ("User", "Admin").
func (h *IdentityHandler) label() string {
	if h.Service.Role == domain.RoleAdmin {
		return "Admin"
	}
	return "User"
}

func (h *IdentityHandler) accountResponse(msg string, a domain.Account) assignsdk.AccountResponse {
	view := &assignsdk.AccountView{Name: a.Name, Email: a.Email}
	resp := assignsdk.AccountResponse{Message: msg}
	if h.Service.Role == domain.RoleAdmin {
		resp.Admin = view
	} else {
		resp.User = view
	}
	return resp
}

// HandleRegister creates an account.
//
//	@Summary		Register an account
//	@Description	Creates a user or admin account. Emails are unique per role; the same email may be registered once as a user and once as an admin.
//	@Tags			Identity
//	@Accept			json
//	@Produce		json
//	@Param			role	path		string						true	"user or admin"
//	@Param			request	body		assignsdk.RegisterRequest	true	"Account details"
//	@Success		201		{object}	assignsdk.AccountResponse
//	@Failure		400		{object}	assignsdk.ErrorResponse	"Missing fields, duplicate email or short password"
//	@Failure		500		{object}	assignsdk.ErrorResponse
//	@Router			/api/v1/{role}/register [post].
func (h *IdentityHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req assignsdk.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		h.errs.message(w, http.StatusBadRequest, "Request body must be valid JSON.")
		return
	}

	account, err := h.Service.Register(r.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			h.errs.message(w, http.StatusBadRequest, verr.Message)
		case errors.Is(err, service.ErrDuplicateEmail):
			h.errs.message(w, http.StatusBadRequest, h.label()+" with this email already registered.")
		default:
			h.errs.internal(w, r, err)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, h.accountResponse(h.label()+" registered successfully", account))
}

// HandleLogin verifies credentials and sets the session cookie.
//
//	@Summary		Log in
//	@Description	Verifies the credentials and sets an HttpOnly "token" cookie with a signed session token.
//	@Tags			Identity
//	@Accept			json
//	@Produce		json
//	@Param			role	path		string					true	"user or admin"
//	@Param			request	body		assignsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	assignsdk.AccountResponse
//	@Failure		400		{object}	assignsdk.ErrorResponse	"Missing fields, unknown email or wrong password"
//	@Failure		500		{object}	assignsdk.ErrorResponse
//	@Router			/api/v1/{role}/login [post].
func (h *IdentityHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req assignsdk.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		h.errs.message(w, http.StatusBadRequest, "Request body must be valid JSON.")
		return
	}

	sess, err := h.Service.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			h.errs.message(w, http.StatusBadRequest, verr.Message)
		case errors.Is(err, service.ErrAccountNotFound):
			h.errs.message(w, http.StatusBadRequest, h.label()+" not found. Please register first.")
		case errors.Is(err, service.ErrInvalidCredentials):
			h.errs.message(w, http.StatusBadRequest, "Invalid password. Please try again.")
		default:
			h.errs.internal(w, r, err)
		}
		return
	}

	httpx.SetSessionCookie(w, h.Cookie, sess.Token)
	httpx.WriteJSON(w, http.StatusOK, h.accountResponse("Login successful", sess.Account))
}

// HandleLogout clears the session cookie.
//
//	@Summary	Log out
//	@Tags		Identity
//	@Produce	json
//	@Param		role	path		string	true	"user or admin"
//	@Success	200		{object}	assignsdk.ErrorResponse	"message only"
//	@Router		/api/v1/{role}/logout [post].
func (h *IdentityHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	httpx.ClearSessionCookie(w, h.Cookie)
	httpx.WriteMessage(w, http.StatusOK, "Logout successful")
}

// HandleListAdmins lists the admins a user can address an assignment to.
//
//	@Summary		List admins
//	@Tags			Assignments
//	@Produce		json
//	@Security		CookieAuth
//	@Success		200	{object}	assignsdk.AdminsResponse
//	@Failure		401	{object}	assignsdk.ErrorResponse
//	@Failure		403	{object}	assignsdk.ErrorResponse	"Not a user token"
//	@Failure		404	{object}	assignsdk.ErrorResponse	"No admins registered"
//	@Router			/api/v1/user/admins [get].
func (h *IdentityHandler) HandleListAdmins(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.Service.ListAccounts(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoAccounts) {
			h.errs.message(w, http.StatusNotFound, "No admins found.")
			return
		}
		h.errs.internalMsg(w, r, msgInternalPeriod, err)
		return
	}

	admins := make([]assignsdk.AdminSummary, 0, len(accounts))
	for _, a := range accounts {
		admins = append(admins, assignsdk.AdminSummary{AdminID: a.ID, Name: a.Name})
	}

	httpx.WriteJSON(w, http.StatusOK, assignsdk.AdminsResponse{
		Message: "All admin details retrieved successfully.",
		Admins:  admins,
	})
}
