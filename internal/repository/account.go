package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/authdesk/authdesk-go/internal/model"
)

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrDuplicateIdentity = errors.New("username or email already exists")
)

// MySQLAccountRepository implements AccountRepository on MySQL.
type MySQLAccountRepository struct {
	db *sql.DB
}

// NewAccountRepository creates a new MySQL-backed account repository.
func NewAccountRepository(db *sql.DB) *MySQLAccountRepository {
	return &MySQLAccountRepository{db: db}
}

const accountColumns = `id, full_name, username, email, phone, auth_hash, status, last_login_at, created_at, updated_at`

// Create inserts a new account and sets the generated ID on the account struct.
// The unique indexes on username and email decide duplicate races.
func (r *MySQLAccountRepository) Create(ctx context.Context, account *model.Account) error {
	query := `INSERT INTO accounts (full_name, username, email, phone, auth_hash, status)
		VALUES (?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		account.FullName, account.Username, account.Email, account.Phone,
		account.AuthHash, account.Status,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateIdentity
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	account.ID = id
	return nil
}

// GetByID retrieves an account by its ID.
func (r *MySQLAccountRepository) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = ?`
	return r.scanAccount(ctx, query, id)
}

// GetByIdentity retrieves an account by exact match on username or email.
func (r *MySQLAccountRepository) GetByIdentity(ctx context.Context, identity string) (*model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE username = ? OR email = ?`
	return r.scanAccount(ctx, query, identity, identity)
}

// UpdateProfile overwrites the profile fields of an account. A username or
// email collision with a different account fails with ErrDuplicateIdentity.
func (r *MySQLAccountRepository) UpdateProfile(ctx context.Context, id int64, fullName, username, email, phone string) error {
	query := `UPDATE accounts SET full_name = ?, username = ?, email = ?, phone = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, fullName, username, email, phone, id)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateIdentity
		}
		return err
	}

	return r.checkAffected(ctx, result, id)
}

// UpdateStatus sets the account status. Setting the current status again is a no-op.
func (r *MySQLAccountRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE accounts SET status = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}

	return r.checkAffected(ctx, result, id)
}

// UpdateLastLogin advances the last-login timestamp. The guard clause keeps the
// timestamp monotonic when concurrent logins race.
func (r *MySQLAccountRepository) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	query := `UPDATE accounts SET last_login_at = ?
		WHERE id = ? AND (last_login_at IS NULL OR last_login_at < ?)`

	_, err := r.db.ExecContext(ctx, query, at, id, at)
	return err
}

// Delete removes an account permanently.
func (r *MySQLAccountRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM accounts WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

// ListAll retrieves every account, most recently created first.
func (r *MySQLAccountRepository) ListAll(ctx context.Context) ([]model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []model.Account
	for rows.Next() {
		var a model.Account
		if err := rows.Scan(
			&a.ID, &a.FullName, &a.Username, &a.Email, &a.Phone,
			&a.AuthHash, &a.Status, &a.LastLoginAt, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}

	return accounts, rows.Err()
}

func (r *MySQLAccountRepository) scanAccount(ctx context.Context, query string, args ...any) (*model.Account, error) {
	account := &model.Account{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&account.ID, &account.FullName, &account.Username, &account.Email, &account.Phone,
		&account.AuthHash, &account.Status, &account.LastLoginAt, &account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	return account, nil
}

// checkAffected distinguishes a missing row from a no-op update: MySQL reports
// zero affected rows for both, so an untouched row needs an existence probe
// before the update can be reported as not-found.
func (r *MySQLAccountRepository) checkAffected(ctx context.Context, result sql.Result, id int64) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected > 0 {
		return nil
	}

	var exists int
	err = r.db.QueryRowContext(ctx, `SELECT 1 FROM accounts WHERE id = ?`, id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrAccountNotFound
	}
	return err
}

// isDuplicateEntryError checks if a MySQL error is a duplicate entry error (code 1062).
func isDuplicateEntryError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Duplicate entry")
}
