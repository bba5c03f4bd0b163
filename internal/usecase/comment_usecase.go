package usecase

import (
	"context"

	"blog/internal/domain/entity"
	"blog/internal/domain/service"
)

// UpdateCommentInput carries a partial update; nil fields are left untouched.
type UpdateCommentInput struct {
	Name *string `json:"name" validate:"omitempty,min=1"`
	Body *string `json:"body" validate:"omitempty,min=1"`
}

// CommentUsecase defines the comment collection operations. Reads are
// public; writes require the caller's token email to match the comment's
// stored author email.
type CommentUsecase interface {
	FindAll(ctx context.Context, page *Pagination) ([]*entity.Comment, error)
	FindOne(ctx context.Context, id int64) (*entity.Comment, error)
	Update(ctx context.Context, claims *service.Claims, id int64, input *UpdateCommentInput) (*entity.Comment, error)
	Remove(ctx context.Context, claims *service.Claims, id int64) (*entity.Comment, error)
}
