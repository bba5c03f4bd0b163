package postgres

import (
	"context"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// commentRepository implements the domain.CommentRepository interface using GORM.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

// Create persists a new comment entity.
func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentM := fromCommentDomain(comment)

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPostNotFound.WrapMessage("parent post does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt
	comment.UpdatedAt = commentM.UpdatedAt

	return nil
}

// FindByID retrieves a comment by its unique ID.
func (repo *commentRepository) FindByID(ctx context.Context, id int64) (*entity.Comment, error) {
	var commentM model.CommentModel
	if err := repo.db.WithContext(ctx).First(&commentM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment by id")
	}

	return toCommentDomain(&commentM), nil
}

// FindAll lists comments inside an offset/limit window, unscoped.
func (repo *commentRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Comment, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Order("id")
	query = applyWindow(query, limit, offset)

	var commentMs []*model.CommentModel
	if err := query.Find(&commentMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	return toCommentDomainList(commentMs), nil
}

// FindAllByPost lists a post's comments inside an offset/limit window.
func (repo *commentRepository) FindAllByPost(ctx context.Context, postID int64, limit, offset int) ([]*entity.Comment, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Where("post_id = ?", postID).
		Order("id")
	query = applyWindow(query, limit, offset)

	var commentMs []*model.CommentModel
	if err := query.Find(&commentMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list comments by post")
	}

	return toCommentDomainList(commentMs), nil
}

// Update modifies an existing comment entity.
func (repo *commentRepository) Update(ctx context.Context, comment *entity.Comment) error {
	commentM := fromCommentDomain(comment)

	if err := repo.db.WithContext(ctx).Save(commentM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update comment")
	}

	comment.UpdatedAt = commentM.UpdatedAt

	return nil
}

// Delete removes the comment with the given id.
func (repo *commentRepository) Delete(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).Delete(&model.CommentModel{}, "id = ?", id).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete comment")
	}

	return nil
}

// --- Mapper Functions ---

func toCommentDomain(data *model.CommentModel) *entity.Comment {
	if data == nil {
		return nil
	}

	return &entity.Comment{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Body:      data.Body,
		PostID:    data.PostID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toCommentDomainList(data []*model.CommentModel) []*entity.Comment {
	comments := make([]*entity.Comment, 0, len(data))
	for _, commentM := range data {
		comments = append(comments, toCommentDomain(commentM))
	}

	return comments
}

func fromCommentDomain(data *entity.Comment) *model.CommentModel {
	if data == nil {
		return nil
	}

	return &model.CommentModel{
		ID:     data.ID,
		Name:   data.Name,
		Email:  data.Email,
		Body:   data.Body,
		PostID: data.PostID,
	}
}
