// internals/features/users/repository/memory_repository.go
package repository

import (
	"context"
	"sync"
	"time"

	model "github.com/HeavenlySpectre/pweb-express-mongodb-P23-2024/internals/features/users/model"

	"github.com/google/uuid"
)

// memoryUserRepository: padanan in-memory untuk test dan dev mode.
type memoryUserRepository struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]*model.UserModel
	byEmail map[string]uuid.UUID
}

func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		byID:    make(map[uuid.UUID]*model.UserModel),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (r *memoryUserRepository) Create(_ context.Context, m *model.UserModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[m.UserEmail]; taken {
		return ErrEmailTaken
	}
	if m.UserID == uuid.Nil {
		m.UserID = uuid.New()
	}
	now := time.Now()
	m.UserCreatedAt = now
	m.UserUpdatedAt = now

	cp := *m
	r.byID[m.UserID] = &cp
	r.byEmail[m.UserEmail] = m.UserID
	return nil
}

func (r *memoryUserRepository) FindByEmail(_ context.Context, email string) (*model.UserModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *r.byID[id]
	return &cp, nil
}

func (r *memoryUserRepository) FindByID(_ context.Context, id uuid.UUID) (*model.UserModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *m
	return &cp, nil
}
