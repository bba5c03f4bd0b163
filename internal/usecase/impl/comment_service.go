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

// commentService implements the CommentUsecase interface.
type commentService struct {
	commentRepo repository.CommentRepository
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for commentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	CommentRepo repository.CommentRepository
	Logger      *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		commentRepo: params.CommentRepo,
		logger:      params.Logger,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FindAll lists comments across all posts.
func (srv *commentService) FindAll(ctx context.Context, page *usecase.Pagination) ([]*entity.Comment, error) {
	limit, offset := window(page)

	comments, err := srv.commentRepo.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	return comments, nil
}

// FindOne fetches a single comment by id.
func (srv *commentService) FindOne(ctx context.Context, id int64) (*entity.Comment, error) {
	comment, err := srv.commentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return nil, domainerrors.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment")
	}

	return comment, nil
}

// guardOwnership fetches the comment and checks the caller's token email
// against the stored author email. Existence is checked first, so a
// missing comment reads as 404 even for a stranger.
func (srv *commentService) guardOwnership(ctx context.Context, claims *service.Claims, id int64) (*entity.Comment, error) {
	if claims == nil {
		return nil, domainerrors.ErrInvalidToken
	}

	comment, err := srv.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if comment.Email != claims.Email {
		return nil, domainerrors.ErrCommentNotOwned
	}

	return comment, nil
}

// Update applies a partial update to a comment the caller authored.
// Editing the name is allowed; it does not transfer ownership, which
// follows the stored email alone.
func (srv *commentService) Update(ctx context.Context, claims *service.Claims, id int64, input *usecase.UpdateCommentInput) (*entity.Comment, error) {
	comment, err := srv.guardOwnership(ctx, claims, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		comment.Name = *input.Name
	}
	if input.Body != nil {
		comment.Body = *input.Body
	}

	if err := srv.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Comment updated", slog.Int64("comment_id", comment.ID))

	return comment, nil
}

// Remove deletes a comment the caller authored and returns the removed record.
func (srv *commentService) Remove(ctx context.Context, claims *service.Claims, id int64) (*entity.Comment, error) {
	comment, err := srv.guardOwnership(ctx, claims, id)
	if err != nil {
		return nil, err
	}

	if err := srv.commentRepo.Delete(ctx, comment.ID); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Comment removed", slog.Int64("comment_id", comment.ID))

	return comment, nil
}
