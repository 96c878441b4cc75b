// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bazar/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UpdateResult reports the match-and-modify counts of a conditional update,
// mirroring what the document store returns.
type UpdateResult struct {
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedID    string `json:"upsertedId,omitempty"`
}

// DeleteResult reports how many documents a delete removed.
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByEmail retrieves a single user by their email address.
	// Returns ErrUserNotFound when no such user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity and fills in its generated ID.
	Create(ctx context.Context, user *entity.User) error

	// List returns every user in the collection.
	List(ctx context.Context) ([]*entity.User, error)

	// PromoteToAdmin upserts the user's role to "admin" by id and reports
	// the store's match-and-modify counts.
	PromoteToAdmin(ctx context.Context, id string) (*UpdateResult, error)

	// Delete removes a user document by id.
	Delete(ctx context.Context, id string) (*DeleteResult, error)
}
