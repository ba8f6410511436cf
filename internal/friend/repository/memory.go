package repository

import (
	"context"
	"sync"
	"time"

	"github.com/agebook/agebook/internal/friend"
)

// MemoryRepo is an in-memory Repository used in unit tests and when the
// service runs without a MongoDB connection.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[string]*friend.Friend
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]*friend.Friend)}
}

func (m *MemoryRepo) FindByName(ctx context.Context, name string) (*friend.Friend, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.store[name]
	if !ok {
		return nil, nil
	}
	return clone(f), nil
}

func (m *MemoryRepo) UpsertAge(ctx context.Context, name string, age int) (*friend.Friend, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	f, ok := m.store[name]
	if !ok {
		f = &friend.Friend{Name: name, CreatedAt: now}
		m.store[name] = f
	}
	a := age
	f.Age = &a
	f.UpdatedAt = now
	return clone(f), nil
}

// clone copies a record including its age so callers cannot mutate the
// stored value through the returned pointer.
func clone(f *friend.Friend) *friend.Friend {
	cp := *f
	if f.Age != nil {
		a := *f.Age
		cp.Age = &a
	}
	return &cp
}
