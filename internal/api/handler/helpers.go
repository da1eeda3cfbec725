package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gvvenom/likespanel/internal/core"
	"github.com/gvvenom/likespanel/internal/model"
)

// Accounts is the account lifecycle surface consumed by handlers.
// *core.AccountService satisfies this interface.
type Accounts interface {
	VipLogin(ctx context.Context, username, password string) (*model.VipUser, error)
	AdminLogin(ctx context.Context, username, password string) error
	AddVipUser(ctx context.Context, username, password string, days int) (*model.VipUser, error)
	ListVipUsers(ctx context.Context) ([]model.VipUserSummary, error)
	DeleteVipUser(ctx context.Context, id int64) error
}

// statusFromAuthError maps domain errors from login flows to HTTP statuses.
func statusFromAuthError(err error) (int, string) {
	switch {
	case errors.Is(err, core.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, core.ErrSubscriptionExpired):
		return http.StatusForbidden, "Subscription expired"
	default:
		return http.StatusInternalServerError, "Login failed"
	}
}
