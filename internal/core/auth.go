package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/gvvenom/likespanel/internal/model"
	"github.com/gvvenom/likespanel/internal/notify"
)

// Default credential the admin table is seeded with on first login attempt.
const (
	DefaultAdminUsername = "FPI-SX-BOT"
	DefaultAdminPassword = "FPI-SX-BOT"
)

// VipUserStore is the subset of VipUserService used by account orchestration.
type VipUserStore interface {
	GetByUsername(ctx context.Context, username string) (*model.VipUser, error)
	Create(ctx context.Context, username, passwordHash string, expiry time.Time) (*model.VipUser, error)
	List(ctx context.Context) ([]model.VipUserSummary, error)
	Delete(ctx context.Context, id int64) error
}

// AdminStore is the subset of AdminService used by account orchestration.
type AdminStore interface {
	Get(ctx context.Context) (*model.AdminCredential, error)
	EnsureInitialized(ctx context.Context, username, passwordHash string) error
}

// AccountService orchestrates VIP and admin logins and the admin-side account
// lifecycle (create, list, delete). Failed VIP logins and account creation
// emit owner notifications; notification failures never abort the operation.
type AccountService struct {
	vips     VipUserStore
	admins   AdminStore
	notifier notify.Notifier
	logger   zerolog.Logger
	now      func() time.Time
}

func NewAccountService(vips VipUserStore, admins AdminStore, notifier notify.Notifier, logger zerolog.Logger) *AccountService {
	return &AccountService{
		vips:     vips,
		admins:   admins,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// VipLogin authenticates a VIP account. Unknown usernames and wrong passwords
// both yield ErrInvalidCredentials and an owner notification; an expired
// subscription yields ErrSubscriptionExpired without one.
func (s *AccountService) VipLogin(ctx context.Context, username, password string) (*model.VipUser, error) {
	user, err := s.vips.GetByUsername(ctx, username)
	if errors.Is(err, ErrNotFound) {
		s.notifyOwner(ctx, "Failed VIP Login Attempt",
			fmt.Sprintf("Failed login attempt for username: %s", username))
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !VerifyPassword(password, user.PasswordHash) {
		s.notifyOwner(ctx, "Failed VIP Login Attempt",
			fmt.Sprintf("Failed login attempt for username: %s", username))
		return nil, ErrInvalidCredentials
	}

	if !SubscriptionValid(user.ExpiryDate, s.now()) {
		return nil, ErrSubscriptionExpired
	}

	return user, nil
}

// AdminLogin authenticates the owner account, lazily seeding the default
// credential on first use. The bootstrap is idempotent under concurrent
// calls.
func (s *AccountService) AdminLogin(ctx context.Context, username, password string) error {
	admin, err := s.admins.Get(ctx)
	if errors.Is(err, ErrNotFound) {
		hash, hashErr := HashPassword(DefaultAdminPassword)
		if hashErr != nil {
			return hashErr
		}
		if initErr := s.admins.EnsureInitialized(ctx, DefaultAdminUsername, hash); initErr != nil {
			return initErr
		}
		admin, err = s.admins.Get(ctx)
	}
	if err != nil {
		return err
	}

	if username != admin.Username {
		return ErrInvalidCredentials
	}
	if !VerifyPassword(password, admin.PasswordHash) {
		return ErrInvalidCredentials
	}
	return nil
}

// AddVipUser creates an account with an expiry the given number of days out
// and notifies the owner. The returned record never carries the hash to
// clients (the model excludes it from serialization).
func (s *AccountService) AddVipUser(ctx context.Context, username, password string, days int) (*model.VipUser, error) {
	expiry, err := ExpiryFrom(s.now(), days)
	if err != nil {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := s.vips.Create(ctx, username, hash, expiry)
	if err != nil {
		return nil, err
	}

	s.notifyOwner(ctx, "New VIP User Added",
		fmt.Sprintf("New user created: %s with %d days subscription", username, days))

	return user, nil
}

func (s *AccountService) ListVipUsers(ctx context.Context) ([]model.VipUserSummary, error) {
	return s.vips.List(ctx)
}

func (s *AccountService) DeleteVipUser(ctx context.Context, id int64) error {
	return s.vips.Delete(ctx, id)
}

func (s *AccountService) notifyOwner(ctx context.Context, title, content string) {
	if err := s.notifier.Notify(ctx, title, content); err != nil {
		s.logger.Warn().Err(err).Str("title", title).Msg("owner notification failed")
	}
}
