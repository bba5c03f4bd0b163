package repository

import (
	"context"
	"errors"

	"blog/internal/domain/entity"
)

// ErrCommentNotFound is returned when a comment is not found.
var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository defines the standard operations for comment persistence.
type CommentRepository interface {
	// Create persists a new comment entity.
	Create(ctx context.Context, comment *entity.Comment) error

	// FindByID retrieves a comment by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Comment, error)

	// FindAll lists comments inside an offset/limit window, unscoped.
	// A non-positive limit means no limit.
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Comment, error)

	// FindAllByPost lists a post's comments inside an offset/limit window.
	FindAllByPost(ctx context.Context, postID int64, limit, offset int) ([]*entity.Comment, error)

	// Update modifies an existing comment entity.
	Update(ctx context.Context, comment *entity.Comment) error

	// Delete removes the comment with the given id.
	Delete(ctx context.Context, id int64) error
}
