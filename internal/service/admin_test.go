package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authdesk/authdesk-go/internal/model"
	"github.com/authdesk/authdesk-go/internal/repository"
)

func registerAccount(t *testing.T, svc *AuthService, fullName, username, email string) int64 {
	t.Helper()
	err := svc.Register(context.Background(), model.RegisterRequest{
		FullName: fullName,
		Username: username,
		Email:    email,
		Password: "Secret1",
	})
	require.NoError(t, err)

	store := svc.repo.(*memStore)
	account, err := store.GetByIdentity(context.Background(), username)
	require.NoError(t, err)
	return account.ID
}

func TestListAccountsOrder(t *testing.T) {
	store := newMemStore()
	svc := newTestAuthService(store)
	admin := NewAdminService(store)
	ctx := context.Background()

	first := registerAccount(t, svc, "Ana Lee", "ana", "ana@x.com")
	time.Sleep(2 * time.Millisecond)
	second := registerAccount(t, svc, "Bob Roe", "bob", "bob@x.com")
	time.Sleep(2 * time.Millisecond)
	third := registerAccount(t, svc, "Cat Doe", "cat", "cat@x.com")

	accounts, err := admin.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 3)

	// Most recently created first.
	assert.Equal(t, []int64{third, second, first}, []int64{accounts[0].ID, accounts[1].ID, accounts[2].ID})
	for _, a := range accounts {
		assert.False(t, a.CreatedAt.IsZero())
	}
}

func TestSetStatus(t *testing.T) {
	store := newMemStore()
	svc := newTestAuthService(store)
	admin := NewAdminService(store)
	ctx := context.Background()

	id := registerAccount(t, svc, "Ana Lee", "ana", "ana@x.com")

	require.NoError(t, admin.SetStatus(ctx, id, model.StatusBlocked))
	account, err := store.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.StatusBlocked, account.Status)

	// Idempotent.
	require.NoError(t, admin.SetStatus(ctx, id, model.StatusBlocked))

	require.NoError(t, admin.SetStatus(ctx, id, model.StatusActive))
	account, err = store.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.StatusActive, account.Status)
}

func TestSetStatusInvalid(t *testing.T) {
	store := newMemStore()
	admin := NewAdminService(store)

	err := admin.SetStatus(context.Background(), 1, "suspended")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestSetStatusNotFound(t *testing.T) {
	admin := NewAdminService(newMemStore())

	err := admin.SetStatus(context.Background(), 404, model.StatusBlocked)
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestEditProfile(t *testing.T) {
	store := newMemStore()
	svc := newTestAuthService(store)
	admin := NewAdminService(store)
	ctx := context.Background()

	id := registerAccount(t, svc, "Ana Lee", "ana", "ana@x.com")

	err := admin.EditProfile(ctx, id, model.UpdateAccountRequest{
		FullName: "Ana L. Lee",
		Username: "ana.lee",
		Email:    "ana.lee@x.com",
		Phone:    "556",
	})
	require.NoError(t, err)

	account, err := store.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ana L. Lee", account.FullName)
	assert.Equal(t, "ana.lee", account.Username)
	assert.Equal(t, "ana.lee@x.com", account.Email)
	assert.Equal(t, "556", account.Phone)

	// Password untouched: login still works with the new username.
	_, err = svc.Login(ctx, model.LoginRequest{Login: "ana.lee", Password: "Secret1"})
	assert.NoError(t, err)
}

// Keeping an account's own identity on edit is not a collision; taking another
// account's identity is.
func TestEditProfileDuplicateIdentity(t *testing.T) {
	store := newMemStore()
	svc := newTestAuthService(store)
	admin := NewAdminService(store)
	ctx := context.Background()

	anaID := registerAccount(t, svc, "Ana Lee", "ana", "ana@x.com")
	registerAccount(t, svc, "Bob Roe", "bob", "bob@x.com")

	err := admin.EditProfile(ctx, anaID, model.UpdateAccountRequest{
		FullName: "Ana Lee",
		Username: "ana",
		Email:    "ana@x.com",
		Phone:    "555",
	})
	assert.NoError(t, err)

	err = admin.EditProfile(ctx, anaID, model.UpdateAccountRequest{
		FullName: "Ana Lee",
		Username: "bob",
		Email:    "ana@x.com",
	})
	assert.ErrorIs(t, err, ErrIdentityTaken)

	err = admin.EditProfile(ctx, anaID, model.UpdateAccountRequest{
		FullName: "Ana Lee",
		Username: "ana",
		Email:    "bob@x.com",
	})
	assert.ErrorIs(t, err, ErrIdentityTaken)
}

func TestEditProfileNotFound(t *testing.T) {
	admin := NewAdminService(newMemStore())

	err := admin.EditProfile(context.Background(), 404, model.UpdateAccountRequest{
		FullName: "Ana Lee",
		Username: "ana",
		Email:    "ana@x.com",
	})
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestDeleteAccount(t *testing.T) {
	store := newMemStore()
	svc := newTestAuthService(store)
	admin := NewAdminService(store)
	ctx := context.Background()

	id := registerAccount(t, svc, "Ana Lee", "ana", "ana@x.com")

	require.NoError(t, admin.DeleteAccount(ctx, id))

	_, err := store.GetByID(ctx, id)
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)

	err = admin.DeleteAccount(ctx, id)
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}
