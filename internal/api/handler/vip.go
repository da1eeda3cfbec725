package handler

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/gvvenom/likespanel/internal/api/request"
	"github.com/gvvenom/likespanel/internal/api/response"
	"github.com/gvvenom/likespanel/internal/core"
	"github.com/gvvenom/likespanel/internal/likes"
	"github.com/gvvenom/likespanel/internal/model"
)

// LikesClient relays player IDs to the external likes API.
// *likes.Client satisfies this interface.
type LikesClient interface {
	SendLikes(ctx context.Context, uid string) (*likes.Result, []byte, error)
}

// APILogStore appends relay attempts for audit.
type APILogStore interface {
	Insert(ctx context.Context, log *model.APILog) error
}

// Vip serves VIP login, logout, and the likes relay.
type Vip struct {
	accounts Accounts
	sessions *core.SessionService
	likes    LikesClient
	logs     APILogStore
	brand    string
}

func NewVip(accounts Accounts, sessions *core.SessionService, likesClient LikesClient, logs APILogStore, brand string) *Vip {
	return &Vip{
		accounts: accounts,
		sessions: sessions,
		likes:    likesClient,
		logs:     logs,
		brand:    brand,
	}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login authenticates a VIP account and sets the vip_session cookie.
func (h *Vip) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.accounts.VipLogin(r.Context(), req.Username, req.Password)
	if err != nil {
		status, msg := statusFromAuthError(err)
		response.WriteError(w, status, msg)
		return
	}

	token, err := h.sessions.IssueVip(user.ID, user.Username)
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, "Login failed")
		return
	}
	core.SetSessionCookie(w, core.CookieVip, token, core.SecureRequest(r))

	response.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user": map[string]any{
			"id":       user.ID,
			"username": user.Username,
		},
	})
}

func (h *Vip) Logout(w http.ResponseWriter, r *http.Request) {
	core.ClearSessionCookie(w, core.CookieVip, core.SecureRequest(r))
	response.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type sendLikesRequest struct {
	UID string `json:"uid" validate:"required"`
}

// SendLikes relays the player UID to the external API and appends an audit
// log row. A failed log write does not fail the relay response.
func (h *Vip) SendLikes(w http.ResponseWriter, r *http.Request) {
	var req sendLikesRequest
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, raw, err := h.likes.SendLikes(r.Context(), req.UID)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("uid", req.UID).Msg("likes relay failed")
		response.WriteError(w, http.StatusInternalServerError, "Failed to send likes")
		return
	}

	if err := h.logs.Insert(r.Context(), &model.APILog{
		UID:            req.UID,
		PlayerNickname: result.PlayerNickname,
		LikesBefore:    result.LikesBefore,
		LikesAfter:     result.LikesAfter,
		LikesGiven:     result.LikesGiven,
		Status:         result.Status,
		Response:       string(raw),
	}); err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Str("uid", req.UID).Msg("api log write failed")
	}

	response.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data": map[string]any{
			"playerNickname":     result.PlayerNickname,
			"likesBefore":        result.LikesBefore,
			"likesAfter":         result.LikesAfter,
			"likesGiven":         result.LikesGiven,
			"successfulRequests": result.SuccessfulRequests,
			"totalTokensUsed":    result.TotalTokensUsed,
			"uid":                result.UID,
			"status":             result.Status,
			"brandName":          h.brand,
		},
	})
}
