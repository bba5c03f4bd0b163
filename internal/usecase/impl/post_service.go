package impl

import (
	"context"
	"log/slog"

	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"
	"blog/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// postService implements the PostUsecase interface.
type postService struct {
	userRepo    repository.UserRepository
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	logger      *slog.Logger
}

// PostServiceParams holds dependencies for postService, injected by Fx.
type PostServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	PostRepo    repository.PostRepository
	CommentRepo repository.CommentRepository
	Logger      *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		userRepo:    params.UserRepo,
		postRepo:    params.PostRepo,
		commentRepo: params.CommentRepo,
		logger:      params.Logger,
	}
}

func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ownerID resolves the caller's user id from token claims.
func ownerID(claims *service.Claims) (int64, error) {
	if claims == nil {
		return 0, domainerrors.ErrInvalidToken
	}

	id, err := claims.UserID()
	if err != nil {
		return 0, domainerrors.ErrInvalidToken.WrapMessage("token subject is not a user id")
	}

	return id, nil
}

// Create stores a new post owned by the caller. The owner must still
// exist; a token can outlive its account.
func (srv *postService) Create(ctx context.Context, claims *service.Claims, input *usecase.CreatePostInput) (*entity.Post, error) {
	id, err := ownerID(claims)
	if err != nil {
		return nil, err
	}

	if _, err := srv.userRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to verify post owner")
	}

	post := &entity.Post{
		Title:   input.Title,
		Body:    input.Body,
		OwnerID: id,
	}

	if err := srv.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Post created", slog.Int64("post_id", post.ID), slog.Int64("owner_id", id))

	return post, nil
}

// FindAll lists the caller's own posts.
func (srv *postService) FindAll(ctx context.Context, claims *service.Claims, page *usecase.Pagination) ([]*entity.Post, error) {
	id, err := ownerID(claims)
	if err != nil {
		return nil, err
	}

	limit, offset := window(page)

	posts, err := srv.postRepo.FindAllByOwner(ctx, id, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	return posts, nil
}

// FindOne fetches one of the caller's posts. Someone else's post is
// reported as not found, never as forbidden.
func (srv *postService) FindOne(ctx context.Context, claims *service.Claims, postID int64) (*entity.Post, error) {
	id, err := ownerID(claims)
	if err != nil {
		return nil, err
	}

	post, err := srv.postRepo.FindByIDAndOwner(ctx, postID, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post")
	}

	return post, nil
}

// Update applies a partial update to one of the caller's posts.
func (srv *postService) Update(ctx context.Context, claims *service.Claims, postID int64, input *usecase.UpdatePostInput) (*entity.Post, error) {
	post, err := srv.FindOne(ctx, claims, postID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Body != nil {
		post.Body = *input.Body
	}

	if err := srv.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Post updated", slog.Int64("post_id", post.ID))

	return post, nil
}

// Remove deletes one of the caller's posts and returns the removed record.
func (srv *postService) Remove(ctx context.Context, claims *service.Claims, postID int64) (*entity.Post, error) {
	post, err := srv.FindOne(ctx, claims, postID)
	if err != nil {
		return nil, err
	}

	if err := srv.postRepo.Delete(ctx, post.ID); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Post removed", slog.Int64("post_id", post.ID))

	return post, nil
}

// CreateComment attaches a comment to any existing post. The comment's
// author identity comes from the caller's token claims, not the payload.
func (srv *postService) CreateComment(ctx context.Context, claims *service.Claims, postID int64, input *usecase.CreateCommentInput) (*entity.Comment, error) {
	if claims == nil {
		return nil, domainerrors.ErrInvalidToken
	}

	if _, err := srv.postRepo.FindByID(ctx, postID); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to verify parent post")
	}

	comment := &entity.Comment{
		Name:   claims.Name,
		Email:  claims.Email,
		Body:   input.Body,
		PostID: postID,
	}

	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Comment created",
		slog.Int64("comment_id", comment.ID),
		slog.Int64("post_id", postID),
	)

	return comment, nil
}

// FindAllComments lists a post's comments. A post id with no post behind
// it yields an empty page.
func (srv *postService) FindAllComments(ctx context.Context, postID int64, page *usecase.Pagination) ([]*entity.Comment, error) {
	limit, offset := window(page)

	comments, err := srv.commentRepo.FindAllByPost(ctx, postID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list post comments")
	}

	return comments, nil
}

// window unpacks a pagination request, tolerating a nil page.
func window(page *usecase.Pagination) (limit, offset int) {
	if page == nil {
		return 0, 0
	}

	return page.Limit, page.Offset
}
