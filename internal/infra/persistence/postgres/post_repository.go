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

// postRepository implements the domain.PostRepository interface using GORM.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

// Create persists a new post entity.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		// The usecase checks owner existence first; this covers the race
		// where the owner row disappears between check and write.
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("post owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt
	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// FindByID retrieves a post by id alone, with no ownership restriction.
func (repo *postRepository) FindByID(ctx context.Context, id int64) (*entity.Post, error) {
	var postM model.PostModel
	if err := repo.db.WithContext(ctx).First(&postM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by id")
	}

	return toPostDomain(&postM), nil
}

// FindByIDAndOwner retrieves a post only when both id and owner match.
// An existing post with a different owner is indistinguishable from a
// nonexistent one.
func (repo *postRepository) FindByIDAndOwner(ctx context.Context, id, ownerID int64) (*entity.Post, error) {
	var postM model.PostModel
	if err := repo.db.WithContext(ctx).
		First(&postM, "id = ? AND user_id = ?", id, ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by id and owner")
	}

	return toPostDomain(&postM), nil
}

// FindAllByOwner lists the owner's posts inside an offset/limit window.
func (repo *postRepository) FindAllByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]*entity.Post, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Where("user_id = ?", ownerID).
		Order("id")
	query = applyWindow(query, limit, offset)

	var postMs []*model.PostModel
	if err := query.Find(&postMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list posts by owner")
	}

	posts := make([]*entity.Post, 0, len(postMs))
	for _, postM := range postMs {
		posts = append(posts, toPostDomain(postM))
	}

	return posts, nil
}

// Update modifies an existing post entity.
func (repo *postRepository) Update(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Save(postM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update post")
	}

	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// Delete removes the post with the given id.
func (repo *postRepository) Delete(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).Delete(&model.PostModel{}, "id = ?", id).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete post")
	}

	return nil
}

// applyWindow applies the offset/limit pagination window. A non-positive
// limit means no limit; a non-positive offset starts at the first record.
func applyWindow(query *gorm.DB, limit, offset int) *gorm.DB {
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	return query
}

// --- Mapper Functions ---

func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	return &entity.Post{
		ID:        data.ID,
		Title:     data.Title,
		Body:      data.Body,
		OwnerID:   data.UserID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromPostDomain(data *entity.Post) *model.PostModel {
	if data == nil {
		return nil
	}

	return &model.PostModel{
		ID:     data.ID,
		Title:  data.Title,
		Body:   data.Body,
		UserID: data.OwnerID,
	}
}
