package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/authdesk/authdesk-go/internal/model"
	"github.com/authdesk/authdesk-go/internal/repository"
)

// memStore is an in-memory AccountRepository for tests. Like the real store it
// decides identity uniqueness itself, under a single lock, so concurrent
// duplicate writes have exactly one winner.
type memStore struct {
	mu       sync.Mutex
	nextID   int64
	accounts map[int64]model.Account
}

func newMemStore() *memStore {
	return &memStore{
		nextID:   1,
		accounts: make(map[int64]model.Account),
	}
}

func (m *memStore) Create(_ context.Context, account *model.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range m.accounts {
		if a.Username == account.Username || a.Email == account.Email {
			return repository.ErrDuplicateIdentity
		}
	}

	account.ID = m.nextID
	m.nextID++
	account.CreatedAt = time.Now().UTC()
	account.UpdatedAt = account.CreatedAt
	m.accounts[account.ID] = *account
	return nil
}

func (m *memStore) GetByID(_ context.Context, id int64) (*model.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.accounts[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}
	return &a, nil
}

func (m *memStore) GetByIdentity(_ context.Context, identity string) (*model.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range m.accounts {
		if a.Username == identity || a.Email == identity {
			return &a, nil
		}
	}
	return nil, repository.ErrAccountNotFound
}

func (m *memStore) UpdateProfile(_ context.Context, id int64, fullName, username, email, phone string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.accounts[id]
	if !ok {
		return repository.ErrAccountNotFound
	}

	for otherID, other := range m.accounts {
		if otherID == id {
			continue
		}
		if other.Username == username || other.Email == email {
			return repository.ErrDuplicateIdentity
		}
	}

	a.FullName = fullName
	a.Username = username
	a.Email = email
	a.Phone = phone
	a.UpdatedAt = time.Now().UTC()
	m.accounts[id] = a
	return nil
}

func (m *memStore) UpdateStatus(_ context.Context, id int64, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.accounts[id]
	if !ok {
		return repository.ErrAccountNotFound
	}
	a.Status = status
	a.UpdatedAt = time.Now().UTC()
	m.accounts[id] = a
	return nil
}

func (m *memStore) UpdateLastLogin(_ context.Context, id int64, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.accounts[id]
	if !ok {
		return nil
	}
	if a.LastLoginAt == nil || a.LastLoginAt.Before(at) {
		a.LastLoginAt = &at
		m.accounts[id] = a
	}
	return nil
}

func (m *memStore) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.accounts[id]; !ok {
		return repository.ErrAccountNotFound
	}
	delete(m.accounts, id)
	return nil
}

func (m *memStore) ListAll(_ context.Context) ([]model.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	accounts := make([]model.Account, 0, len(m.accounts))
	for _, a := range m.accounts {
		accounts = append(accounts, a)
	}
	sort.Slice(accounts, func(i, j int) bool {
		if !accounts[i].CreatedAt.Equal(accounts[j].CreatedAt) {
			return accounts[i].CreatedAt.After(accounts[j].CreatedAt)
		}
		return accounts[i].ID > accounts[j].ID
	})
	return accounts, nil
}
