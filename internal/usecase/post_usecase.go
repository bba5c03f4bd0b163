package usecase

import (
	"context"

	"blog/internal/domain/entity"
	"blog/internal/domain/service"
)

// Pagination is the offset/limit window shared by every listing operation.
// Zero values mean "from the start" and "no limit".
type Pagination struct {
	Limit  int `query:"limit"  validate:"omitempty,min=0"`
	Offset int `query:"offset" validate:"omitempty,min=0"`
}

// CreatePostInput carries the payload for creating a post.
type CreatePostInput struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body"  validate:"required"`
}

// UpdatePostInput carries a partial update; nil fields are left untouched.
type UpdatePostInput struct {
	Title *string `json:"title" validate:"omitempty,min=1"`
	Body  *string `json:"body"  validate:"omitempty,min=1"`
}

// CreateCommentInput carries the payload for commenting on a post. The
// author's name and email come from the access token claims, never from
// the request body.
type CreateCommentInput struct {
	Body string `json:"body" validate:"required"`
}

// PostUsecase defines the owner-scoped post operations. Every method takes
// the caller's token claims; a post belonging to someone else behaves
// exactly like a post that does not exist.
type PostUsecase interface {
	Create(ctx context.Context, claims *service.Claims, input *CreatePostInput) (*entity.Post, error)
	FindAll(ctx context.Context, claims *service.Claims, page *Pagination) ([]*entity.Post, error)
	FindOne(ctx context.Context, claims *service.Claims, id int64) (*entity.Post, error)
	Update(ctx context.Context, claims *service.Claims, id int64, input *UpdatePostInput) (*entity.Post, error)
	Remove(ctx context.Context, claims *service.Claims, id int64) (*entity.Post, error)

	// CreateComment attaches a comment to a post. The post is addressed by
	// id alone, so commenting on other users' posts is allowed.
	CreateComment(ctx context.Context, claims *service.Claims, postID int64, input *CreateCommentInput) (*entity.Comment, error)
	// FindAllComments lists a post's comments. A missing post yields an
	// empty page rather than an error.
	FindAllComments(ctx context.Context, postID int64, page *Pagination) ([]*entity.Comment, error)
}
