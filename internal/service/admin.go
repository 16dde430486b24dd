package service

import (
	"context"
	"errors"

	"github.com/authdesk/authdesk-go/internal/model"
	"github.com/authdesk/authdesk-go/internal/repository"
)

var ErrInvalidStatus = errors.New("status must be active or blocked")

// AdminService handles the administrative account operations.
type AdminService struct {
	repo repository.AccountRepository
}

// NewAdminService creates a new AdminService.
func NewAdminService(repo repository.AccountRepository) *AdminService {
	return &AdminService{repo: repo}
}

// ListAccounts returns every account, most recently created first, with the
// credential hash stripped.
func (s *AdminService) ListAccounts(ctx context.Context) ([]model.AccountResponse, error) {
	accounts, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]model.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		resp = append(resp, model.AccountResponse{
			ID:          a.ID,
			FullName:    a.FullName,
			Username:    a.Username,
			Email:       a.Email,
			Phone:       a.Phone,
			Status:      a.Status,
			LastLoginAt: a.LastLoginAt,
			CreatedAt:   a.CreatedAt,
			UpdatedAt:   a.UpdatedAt,
		})
	}

	return resp, nil
}

// SetStatus blocks or unblocks an account. Setting the current status again
// succeeds without effect.
func (s *AdminService) SetStatus(ctx context.Context, accountID int64, status string) error {
	if status != model.StatusActive && status != model.StatusBlocked {
		return ErrInvalidStatus
	}

	return s.repo.UpdateStatus(ctx, accountID, status)
}

// EditProfile overwrites an account's profile fields. The password is left
// untouched and previously issued tokens stay valid.
func (s *AdminService) EditProfile(ctx context.Context, accountID int64, req model.UpdateAccountRequest) error {
	if req.FullName == "" {
		return ErrFullNameRequired
	}
	if req.Username == "" {
		return ErrUsernameRequired
	}
	if req.Email == "" {
		return ErrEmailRequired
	}

	err := s.repo.UpdateProfile(ctx, accountID, req.FullName, req.Username, req.Email, req.Phone)
	if errors.Is(err, repository.ErrDuplicateIdentity) {
		return ErrIdentityTaken
	}
	return err
}

// DeleteAccount removes an account permanently. Tokens already issued for it
// keep verifying but any profile lookup will report not-found.
func (s *AdminService) DeleteAccount(ctx context.Context, accountID int64) error {
	return s.repo.Delete(ctx, accountID)
}
