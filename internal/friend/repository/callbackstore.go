package repository

import (
	"context"
	"time"

	"github.com/agebook/agebook/internal/friend"
	"github.com/agebook/agebook/pkg/callback"
)

// Store is the capability interface of a callback-style keyed store, the
// shape exposed by continuation-passing SDKs. Find invokes its handler
// with the first record matching name, or nil when none exists. Save
// inserts or replaces the full record and hands back the persisted copy.
type Store interface {
	Find(name string, done func(err error, rec *friend.Friend))
	Save(rec *friend.Friend, done func(err error, saved *friend.Friend))
}

// CallbackRepo adapts a Store into a Repository. Because the underlying
// store only offers find and save, UpsertAge is a read-then-write with
// last-writer-wins semantics for concurrent writers on the same name.
type CallbackRepo struct {
	store Store
}

func NewCallbackRepo(store Store) *CallbackRepo {
	return &CallbackRepo{store: store}
}

func (r *CallbackRepo) FindByName(ctx context.Context, name string) (*friend.Friend, error) {
	return callback.Await(ctx, func(done func(error, *friend.Friend)) {
		r.store.Find(name, done)
	})
}

func (r *CallbackRepo) UpsertAge(ctx context.Context, name string, age int) (*friend.Friend, error) {
	f, err := r.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	if f == nil {
		f = &friend.Friend{Name: name, CreatedAt: now}
	}
	a := age
	f.Age = &a
	f.UpdatedAt = now
	return callback.Await(ctx, func(done func(error, *friend.Friend)) {
		r.store.Save(f, done)
	})
}
