package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/gvvenom/likespanel/internal/likes"
	"github.com/gvvenom/likespanel/internal/model"
)

// mockAccounts implements Accounts for handler tests.
type mockAccounts struct {
	mock.Mock
}

func (m *mockAccounts) VipLogin(ctx context.Context, username, password string) (*model.VipUser, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VipUser), args.Error(1)
}

func (m *mockAccounts) AdminLogin(ctx context.Context, username, password string) error {
	args := m.Called(ctx, username, password)
	return args.Error(0)
}

func (m *mockAccounts) AddVipUser(ctx context.Context, username, password string, days int) (*model.VipUser, error) {
	args := m.Called(ctx, username, password, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VipUser), args.Error(1)
}

func (m *mockAccounts) ListVipUsers(ctx context.Context) ([]model.VipUserSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VipUserSummary), args.Error(1)
}

func (m *mockAccounts) DeleteVipUser(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// mockLikes implements LikesClient for relay tests.
type mockLikes struct {
	mock.Mock
}

func (m *mockLikes) SendLikes(ctx context.Context, uid string) (*likes.Result, []byte, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*likes.Result), args.Get(1).([]byte), args.Error(2)
}

// mockAPILogs implements APILogStore and records inserted rows.
type mockAPILogs struct {
	inserted []*model.APILog
	err      error
}

func (m *mockAPILogs) Insert(_ context.Context, log *model.APILog) error {
	if m.err != nil {
		return m.err
	}
	m.inserted = append(m.inserted, log)
	return nil
}
