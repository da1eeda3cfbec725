package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gvvenom/likespanel/internal/api/request"
	"github.com/gvvenom/likespanel/internal/api/response"
	"github.com/gvvenom/likespanel/internal/core"
)

// Admin serves the owner login and VIP account lifecycle operations.
type Admin struct {
	accounts Accounts
	sessions *core.SessionService
}

func NewAdmin(accounts Accounts, sessions *core.SessionService) *Admin {
	return &Admin{accounts: accounts, sessions: sessions}
}

// Login authenticates the owner and sets the admin_session cookie. The
// credential row is self-provisioned on first use.
func (h *Admin) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.accounts.AdminLogin(r.Context(), req.Username, req.Password); err != nil {
		status, msg := statusFromAuthError(err)
		response.WriteError(w, status, msg)
		return
	}

	token, err := h.sessions.IssueAdmin(req.Username)
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, "Login failed")
		return
	}
	core.SetSessionCookie(w, core.CookieAdmin, token, core.SecureRequest(r))

	response.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Admin) Logout(w http.ResponseWriter, r *http.Request) {
	core.ClearSessionCookie(w, core.CookieAdmin, core.SecureRequest(r))
	response.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// ListUsers returns every VIP account without password hashes.
func (h *Admin) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.accounts.ListVipUsers(r.Context())
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, "Failed to list users")
		return
	}
	response.WriteJSON(w, http.StatusOK, users)
}

type addUserRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
	Days     int    `json:"days" validate:"required,min=1"`
}

// AddUser creates a VIP account with an expiry the given number of days out.
func (h *Admin) AddUser(w http.ResponseWriter, r *http.Request) {
	var req addUserRequest
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.accounts.AddVipUser(r.Context(), req.Username, req.Password, req.Days)
	if err != nil {
		if errors.Is(err, core.ErrConflict) {
			response.WriteError(w, http.StatusConflict, "Username already exists")
			return
		}
		response.WriteError(w, http.StatusInternalServerError, "Failed to add user")
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user": map[string]any{
			"id":          user.ID,
			"username":    user.Username,
			"expiry_date": user.ExpiryDate,
		},
	})
}

// DeleteUser removes a VIP account by id. Deleting an unknown id succeeds.
func (h *Admin) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.accounts.DeleteVipUser(r.Context(), id); err != nil {
		response.WriteError(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}
