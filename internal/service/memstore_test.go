package service

import (
	"context"
	"strings"
	"time"

	"github.com/Alden-Crist/Planzee/internal/domain"
)

// In-memory store fakes shared by the service tests.

type memUserStore struct {
	nextID int64
	users  map[int64]*domain.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[int64]*domain.User)}
}

func (m *memUserStore) Create(_ context.Context, u *domain.User) error {
	for _, existing := range m.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return domain.ErrEmailTaken
		}
	}
	m.nextID++
	u.ID = m.nextID
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memUserStore) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUserStore) UpdateProfile(_ context.Context, id int64, name, email string) (*domain.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	for otherID, other := range m.users {
		if otherID != id && strings.EqualFold(other.Email, email) {
			return nil, domain.ErrEmailTaken
		}
	}
	u.Name = name
	u.Email = email
	u.UpdatedAt = time.Now()
	cp := *u
	return &cp, nil
}

func (m *memUserStore) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	u, ok := m.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now()
	return nil
}

type memTaskStore struct {
	nextID int64
	tasks  map[int64]*domain.Task
}

func newMemTaskStore() *memTaskStore {
	return &memTaskStore{tasks: make(map[int64]*domain.Task)}
}

func (m *memTaskStore) Create(_ context.Context, t *domain.Task) error {
	m.nextID++
	t.ID = m.nextID
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	cp := *t
	m.tasks[t.ID] = &cp
	return nil
}

func (m *memTaskStore) GetByID(_ context.Context, ownerID, taskID int64) (*domain.Task, error) {
	t, ok := m.tasks[taskID]
	if !ok || t.UserID != ownerID {
		return nil, domain.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (m *memTaskStore) ListByOwner(_ context.Context, ownerID int64) ([]domain.Task, error) {
	var out []domain.Task
	for id := int64(1); id <= m.nextID; id++ {
		if t, ok := m.tasks[id]; ok && t.UserID == ownerID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (m *memTaskStore) Update(_ context.Context, t *domain.Task) error {
	existing, ok := m.tasks[t.ID]
	if !ok || existing.UserID != t.UserID {
		return domain.ErrNotFound
	}
	t.CreatedAt = existing.CreatedAt
	t.UpdatedAt = time.Now()
	cp := *t
	m.tasks[t.ID] = &cp
	return nil
}

func (m *memTaskStore) Delete(_ context.Context, ownerID, taskID int64) error {
	t, ok := m.tasks[taskID]
	if !ok || t.UserID != ownerID {
		return domain.ErrNotFound
	}
	delete(m.tasks, taskID)
	return nil
}
