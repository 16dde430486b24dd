package repository

import (
	"context"
	"time"

	"github.com/authdesk/authdesk-go/internal/model"
)

// AccountRepository defines the interface for account persistence operations.
// Identity uniqueness (username, email) is enforced by the store itself, so a
// race between two writers with the same identity has exactly one winner.
type AccountRepository interface {
	// Create inserts a new account and sets the generated ID on the struct.
	Create(ctx context.Context, account *model.Account) error

	// GetByID retrieves an account by its unique identifier.
	GetByID(ctx context.Context, id int64) (*model.Account, error)

	// GetByIdentity retrieves an account whose username or email exactly
	// matches the given identity.
	GetByIdentity(ctx context.Context, identity string) (*model.Account, error)

	// UpdateProfile overwrites an account's profile fields, leaving the
	// credential hash untouched.
	UpdateProfile(ctx context.Context, id int64, fullName, username, email, phone string) error

	// UpdateStatus sets the account status. Idempotent.
	UpdateStatus(ctx context.Context, id int64, status string) error

	// UpdateLastLogin advances the last-login timestamp. It never moves the
	// timestamp backwards.
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error

	// Delete removes an account permanently.
	Delete(ctx context.Context, id int64) error

	// ListAll returns every account, most recently created first.
	ListAll(ctx context.Context) ([]model.Account, error)
}
