package repository

import (
	"context"

	"github.com/agebook/agebook/internal/friend"
)

// Repository defines persistence operations for friend records.
// FindByName returns (nil, nil) when no record exists for the name —
// absence is a legitimate outcome, not an error.
type Repository interface {
	FindByName(ctx context.Context, name string) (*friend.Friend, error)
	UpsertAge(ctx context.Context, name string, age int) (*friend.Friend, error)
}
