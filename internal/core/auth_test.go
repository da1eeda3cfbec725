package core

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gvvenom/likespanel/internal/model"
)

type fakeVipStore struct {
	byUsername map[string]*model.VipUser
	nextID     int64
	deleted    []int64
}

func newFakeVipStore() *fakeVipStore {
	return &fakeVipStore{byUsername: map[string]*model.VipUser{}, nextID: 1}
}

func (f *fakeVipStore) GetByUsername(_ context.Context, username string) (*model.VipUser, error) {
	u, ok := f.byUsername[username]
	if !ok {
		return nil, ErrNotFound
	}
	return u, nil
}

func (f *fakeVipStore) Create(_ context.Context, username, passwordHash string, expiry time.Time) (*model.VipUser, error) {
	if _, exists := f.byUsername[username]; exists {
		return nil, ErrConflict
	}
	u := &model.VipUser{
		ID:           f.nextID,
		Username:     username,
		PasswordHash: passwordHash,
		ExpiryDate:   expiry,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	f.nextID++
	f.byUsername[username] = u
	return u, nil
}

func (f *fakeVipStore) List(context.Context) ([]model.VipUserSummary, error) {
	var out []model.VipUserSummary
	for id := int64(1); id < f.nextID; id++ {
		for _, u := range f.byUsername {
			if u.ID == id {
				out = append(out, model.VipUserSummary{
					ID: u.ID, Username: u.Username, ExpiryDate: u.ExpiryDate, CreatedAt: u.CreatedAt,
				})
			}
		}
	}
	return out, nil
}

func (f *fakeVipStore) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	for name, u := range f.byUsername {
		if u.ID == id {
			delete(f.byUsername, name)
		}
	}
	return nil
}

type fakeAdminStore struct {
	cred *model.AdminCredential
}

func (f *fakeAdminStore) Get(context.Context) (*model.AdminCredential, error) {
	if f.cred == nil {
		return nil, ErrNotFound
	}
	return f.cred, nil
}

func (f *fakeAdminStore) EnsureInitialized(_ context.Context, username, passwordHash string) error {
	if f.cred != nil {
		return nil
	}
	f.cred = &model.AdminCredential{ID: 1, Username: username, PasswordHash: passwordHash}
	return nil
}

type countingNotifier struct {
	calls []string
}

func (n *countingNotifier) Notify(_ context.Context, title, _ string) error {
	n.calls = append(n.calls, title)
	return nil
}

func newTestAccountService(vips *fakeVipStore, admins *fakeAdminStore, n *countingNotifier) *AccountService {
	return NewAccountService(vips, admins, n, zerolog.Nop())
}

func addTestVip(t *testing.T, vips *fakeVipStore, username, password string, expiry time.Time) {
	t.Helper()
	hash, err := HashPassword(password)
	require.NoError(t, err)
	_, err = vips.Create(context.Background(), username, hash, expiry)
	require.NoError(t, err)
}

func TestVipLogin_UnknownUserNotifiesOnce(t *testing.T) {
	vips := newFakeVipStore()
	notifier := &countingNotifier{}
	svc := newTestAccountService(vips, &fakeAdminStore{}, notifier)

	_, err := svc.VipLogin(context.Background(), "nobody", "x")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Len(t, notifier.calls, 1)
	assert.Equal(t, "Failed VIP Login Attempt", notifier.calls[0])
}

func TestVipLogin_WrongPasswordNotifies(t *testing.T) {
	vips := newFakeVipStore()
	addTestVip(t, vips, "alice", "secret1", time.Now().AddDate(0, 0, 30))
	notifier := &countingNotifier{}
	svc := newTestAccountService(vips, &fakeAdminStore{}, notifier)

	_, err := svc.VipLogin(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Len(t, notifier.calls, 1)
}

func TestVipLogin_ExpiredRejectedWithoutNotification(t *testing.T) {
	vips := newFakeVipStore()
	addTestVip(t, vips, "alice", "secret1", time.Now().AddDate(0, 0, -1))
	notifier := &countingNotifier{}
	svc := newTestAccountService(vips, &fakeAdminStore{}, notifier)

	_, err := svc.VipLogin(context.Background(), "alice", "secret1")
	assert.ErrorIs(t, err, ErrSubscriptionExpired)
	assert.Empty(t, notifier.calls)
}

func TestVipLogin_Success(t *testing.T) {
	vips := newFakeVipStore()
	addTestVip(t, vips, "alice", "secret1", time.Now().AddDate(0, 0, 30))
	notifier := &countingNotifier{}
	svc := newTestAccountService(vips, &fakeAdminStore{}, notifier)

	user, err := svc.VipLogin(context.Background(), "alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Empty(t, notifier.calls)
}

func TestVipLogin_ExpiringExactlyNowIsValid(t *testing.T) {
	now := time.Date(2026, time.May, 1, 10, 0, 0, 0, time.UTC)
	vips := newFakeVipStore()
	addTestVip(t, vips, "edge", "secret1", now)
	svc := newTestAccountService(vips, &fakeAdminStore{}, &countingNotifier{})
	svc.now = func() time.Time { return now }

	_, err := svc.VipLogin(context.Background(), "edge", "secret1")
	assert.NoError(t, err)
}

func TestAdminLogin_SelfProvisionsDefault(t *testing.T) {
	admins := &fakeAdminStore{}
	svc := newTestAccountService(newFakeVipStore(), admins, &countingNotifier{})

	err := svc.AdminLogin(context.Background(), DefaultAdminUsername, DefaultAdminPassword)
	require.NoError(t, err)
	require.NotNil(t, admins.cred)
	assert.Equal(t, DefaultAdminUsername, admins.cred.Username)
}

func TestAdminLogin_ProvisioningIsIdempotent(t *testing.T) {
	admins := &fakeAdminStore{}
	svc := newTestAccountService(newFakeVipStore(), admins, &countingNotifier{})

	require.NoError(t, svc.AdminLogin(context.Background(), DefaultAdminUsername, DefaultAdminPassword))
	first := admins.cred

	require.NoError(t, svc.AdminLogin(context.Background(), DefaultAdminUsername, DefaultAdminPassword))
	assert.Same(t, first, admins.cred)
}

func TestAdminLogin_WrongUsername(t *testing.T) {
	svc := newTestAccountService(newFakeVipStore(), &fakeAdminStore{}, &countingNotifier{})

	err := svc.AdminLogin(context.Background(), "intruder", DefaultAdminPassword)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAdminLogin_WrongPassword(t *testing.T) {
	svc := newTestAccountService(newFakeVipStore(), &fakeAdminStore{}, &countingNotifier{})

	err := svc.AdminLogin(context.Background(), DefaultAdminUsername, "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAddVipUser_CreatesAndNotifies(t *testing.T) {
	vips := newFakeVipStore()
	notifier := &countingNotifier{}
	svc := newTestAccountService(vips, &fakeAdminStore{}, notifier)

	user, err := svc.AddVipUser(context.Background(), "alice", "secret1", 30)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.True(t, VerifyPassword("secret1", user.PasswordHash))

	wantExpiry := time.Now().AddDate(0, 0, 30)
	assert.WithinDuration(t, wantExpiry, user.ExpiryDate, time.Minute)

	require.Len(t, notifier.calls, 1)
	assert.Equal(t, "New VIP User Added", notifier.calls[0])

	users, err := svc.ListVipUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "alice", users[0].Username)
}

func TestAddVipUser_DuplicateConflicts(t *testing.T) {
	vips := newFakeVipStore()
	svc := newTestAccountService(vips, &fakeAdminStore{}, &countingNotifier{})

	_, err := svc.AddVipUser(context.Background(), "alice", "secret1", 30)
	require.NoError(t, err)

	_, err = svc.AddVipUser(context.Background(), "alice", "other66", 10)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestAddVipUser_RejectsNonPositiveDays(t *testing.T) {
	svc := newTestAccountService(newFakeVipStore(), &fakeAdminStore{}, &countingNotifier{})

	_, err := svc.AddVipUser(context.Background(), "alice", "secret1", 0)
	assert.Error(t, err)
}

func TestDeleteVipUser_NonExistentIsNotAnError(t *testing.T) {
	vips := newFakeVipStore()
	svc := newTestAccountService(vips, &fakeAdminStore{}, &countingNotifier{})

	err := svc.DeleteVipUser(context.Background(), 9999)
	assert.NoError(t, err)
	assert.Equal(t, []int64{9999}, vips.deleted)
}
