package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agebook/agebook/internal/friend"
	"github.com/agebook/agebook/internal/friend/repository"
	"github.com/sirupsen/logrus"
)

var ErrEmptyName = errors.New("name must not be empty")

// defaultOpTimeout bounds every store call so a hung store cannot hang
// the request forever.
const defaultOpTimeout = 10 * time.Second

// Service encapsulates the age read/write business logic.
type Service struct {
	repo      repository.Repository
	log       *logrus.Logger
	opTimeout time.Duration
}

func New(repo repository.Repository, log *logrus.Logger, opTimeout time.Duration) *Service {
	if opTimeout <= 0 {
		opTimeout = defaultOpTimeout
	}
	return &Service{repo: repo, log: log, opTimeout: opTimeout}
}

// GetAge looks up name and renders the result as a sentence. A record
// that exists without an age reads the same as a missing record; an age
// of 0 is a real age.
func (s *Service) GetAge(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", ErrEmptyName
	}
	opCtx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()
	f, err := s.repo.FindByName(opCtx, name)
	if err != nil {
		s.log.WithError(err).WithField("name", name).Error("friend lookup failed")
		return "", fmt.Errorf("find friend %q: %w", name, err)
	}
	if !f.HasAge() {
		return fmt.Sprintf("Sorry. You still have not set age for your friend - %s. You can do that now.", name), nil
	}
	return fmt.Sprintf("Your friend - %s's age is %d.", name, *f.Age), nil
}

// SetAge records age for name, creating the record when absent, and
// returns the persisted value.
func (s *Service) SetAge(ctx context.Context, name string, age int) (int, error) {
	if name == "" {
		return 0, ErrEmptyName
	}
	opCtx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()
	f, err := s.repo.UpsertAge(opCtx, name, age)
	if err != nil {
		s.log.WithError(err).WithField("name", name).Error("friend upsert failed")
		return 0, fmt.Errorf("upsert friend %q: %w", name, err)
	}
	if !f.HasAge() {
		// a store honoring the upsert contract always returns the age
		return 0, fmt.Errorf("upsert friend %q: store returned record without age", name)
	}
	return *f.Age, nil
}

// Lookup exposes the raw record for callers that need the tri-state
// (missing / present without age / present with age) rather than the
// rendered sentence.
func (s *Service) Lookup(ctx context.Context, name string) (*friend.Friend, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	opCtx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()
	return s.repo.FindByName(opCtx, name)
}
