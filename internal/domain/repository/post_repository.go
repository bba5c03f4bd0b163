package repository

import (
	"context"
	"errors"

	"blog/internal/domain/entity"
)

// ErrPostNotFound is returned when a post is not found, including when it
// exists but belongs to another owner.
var ErrPostNotFound = errors.New("post not found")

// PostRepository defines the standard operations for post persistence.
type PostRepository interface {
	// Create persists a new post entity.
	Create(ctx context.Context, post *entity.Post) error

	// FindByID retrieves a post by id alone, with no ownership restriction.
	FindByID(ctx context.Context, id int64) (*entity.Post, error)

	// FindByIDAndOwner retrieves a post only when both the id and the owner
	// match; a not-owned post is reported as ErrPostNotFound.
	FindByIDAndOwner(ctx context.Context, id, ownerID int64) (*entity.Post, error)

	// FindAllByOwner lists the owner's posts inside an offset/limit window.
	// A non-positive limit means no limit.
	FindAllByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]*entity.Post, error)

	// Update modifies an existing post entity.
	Update(ctx context.Context, post *entity.Post) error

	// Delete removes the post with the given id.
	Delete(ctx context.Context, id int64) error
}
