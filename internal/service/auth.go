package service

import (
	"context"
	"errors"
	"time"

	"github.com/authdesk/authdesk-go/internal/crypto"
	"github.com/authdesk/authdesk-go/internal/model"
	"github.com/authdesk/authdesk-go/internal/repository"
)

var (
	// ErrInvalidCredentials covers both an unknown identity and a wrong
	// password, so a login failure never reveals whether the account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountBlocked     = errors.New("account is blocked")
	ErrIdentityTaken      = errors.New("email or username already exists")

	ErrFullNameRequired = errors.New("full name is required")
	ErrUsernameRequired = errors.New("username is required")
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrLoginRequired    = errors.New("login is required")
)

// AuthService handles registration and authentication business logic.
type AuthService struct {
	repo      repository.AccountRepository
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo repository.AccountRepository, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		repo:      repo,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Register creates a new active account. It returns no credential material;
// callers get an acknowledgment or an error.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) error {
	if req.FullName == "" {
		return ErrFullNameRequired
	}
	if req.Username == "" {
		return ErrUsernameRequired
	}
	if req.Email == "" {
		return ErrEmailRequired
	}
	if req.Password == "" {
		return ErrPasswordRequired
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return err
	}

	account := &model.Account{
		FullName: req.FullName,
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		AuthHash: hash,
		Status:   model.StatusActive,
	}

	if err := s.repo.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateIdentity) {
			return ErrIdentityTaken
		}
		return err
	}

	return nil
}

// Login authenticates an account by username or email and returns a bearer token.
// A blocked account is reported as blocked before the password is verified; an
// unknown identity and a wrong password are indistinguishable from outside.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	if req.Login == "" {
		return model.LoginResponse{}, ErrLoginRequired
	}
	if req.Password == "" {
		return model.LoginResponse{}, ErrPasswordRequired
	}

	account, err := s.repo.GetByIdentity(ctx, req.Login)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return model.LoginResponse{}, ErrInvalidCredentials
		}
		return model.LoginResponse{}, err
	}

	if account.Status == model.StatusBlocked {
		return model.LoginResponse{}, ErrAccountBlocked
	}

	match, err := crypto.VerifyPassword(req.Password, account.AuthHash)
	if err != nil {
		return model.LoginResponse{}, err
	}
	if !match {
		return model.LoginResponse{}, ErrInvalidCredentials
	}

	if err := s.repo.UpdateLastLogin(ctx, account.ID, time.Now().UTC()); err != nil {
		return model.LoginResponse{}, err
	}

	token, err := crypto.GenerateToken(account.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.LoginResponse{}, err
	}

	return model.LoginResponse{Token: token}, nil
}

// GetProfile returns the account's own profile view. The credential hash is
// never exposed. A deleted account reports not-found even when the caller
// still holds a structurally valid token.
func (s *AuthService) GetProfile(ctx context.Context, accountID int64) (model.ProfileResponse, error) {
	account, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		return model.ProfileResponse{}, err
	}

	return model.ProfileResponse{
		FullName: account.FullName,
		Username: account.Username,
		Email:    account.Email,
		Status:   account.Status,
	}, nil
}
