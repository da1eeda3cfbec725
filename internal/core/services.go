package core

import (
	"github.com/rs/zerolog"

	"github.com/gvvenom/likespanel/internal/notify"
)

type Services struct {
	Session *SessionService
	Account *AccountService
	VipUser *VipUserService
	Admin   *AdminService
	APILog  *APILogService
}

func NewServices(db DB, sessionSecret, sessionIssuer string, notifier notify.Notifier, logger zerolog.Logger) *Services {
	vips := NewVipUserService(db)
	admins := NewAdminService(db)

	return &Services{
		Session: NewSessionService(sessionSecret, sessionIssuer),
		Account: NewAccountService(vips, admins, notifier, logger),
		VipUser: vips,
		Admin:   admins,
		APILog:  NewAPILogService(db),
	}
}
