package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/agebook/agebook/internal/friend"
	"github.com/stretchr/testify/require"
)

// memStore is a callback-style Store backed by a map, standing in for a
// continuation-passing SDK.
type memStore struct {
	mu      sync.Mutex
	recs    map[string]*friend.Friend
	findErr error
	saveErr error
}

func newMemStore() *memStore {
	return &memStore{recs: make(map[string]*friend.Friend)}
}

func (s *memStore) Find(name string, done func(error, *friend.Friend)) {
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.findErr != nil {
			done(s.findErr, nil)
			return
		}
		f, ok := s.recs[name]
		if !ok {
			done(nil, nil)
			return
		}
		cp := *f
		done(nil, &cp)
	}()
}

func (s *memStore) Save(rec *friend.Friend, done func(error, *friend.Friend)) {
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.saveErr != nil {
			done(s.saveErr, nil)
			return
		}
		cp := *rec
		s.recs[rec.Name] = &cp
		done(nil, rec)
	}()
}

func TestCallbackRepoUpsertInsertsThenUpdates(t *testing.T) {
	store := newMemStore()
	r := NewCallbackRepo(store)
	ctx := context.Background()

	f, err := r.UpsertAge(ctx, "Alice", 30)
	require.NoError(t, err)
	require.Equal(t, 30, *f.Age)

	f2, err := r.UpsertAge(ctx, "Alice", 31)
	require.NoError(t, err)
	require.Equal(t, 31, *f2.Age)
	require.Equal(t, f.CreatedAt, f2.CreatedAt)

	store.mu.Lock()
	count := len(store.recs)
	store.mu.Unlock()
	require.Equal(t, 1, count, "double upsert must not create a second record")
}

func TestCallbackRepoFindAbsent(t *testing.T) {
	r := NewCallbackRepo(newMemStore())
	f, err := r.FindByName(context.Background(), "Nobody")
	require.NoError(t, err)
	require.Nil(t, f)
}

func TestCallbackRepoPropagatesStoreErrors(t *testing.T) {
	store := newMemStore()
	boom := errors.New("store down")
	store.findErr = boom
	r := NewCallbackRepo(store)

	_, err := r.FindByName(context.Background(), "Alice")
	require.ErrorIs(t, err, boom)

	_, err = r.UpsertAge(context.Background(), "Alice", 30)
	require.ErrorIs(t, err, boom)

	store.findErr = nil
	store.saveErr = boom
	_, err = r.UpsertAge(context.Background(), "Alice", 30)
	require.ErrorIs(t, err, boom)
}
