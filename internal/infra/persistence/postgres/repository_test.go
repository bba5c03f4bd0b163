package postgres

import (
	"context"
	"testing"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB creates an isolated in-memory database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.UserModel{},
		&model.PostModel{},
		&model.CommentModel{},
	))

	return db
}

func seedUser(t *testing.T, repo repository.UserRepository, email, username string) *entity.User {
	t.Helper()

	user := &entity.User{
		Name:     "Test User",
		Username: username,
		Email:    email,
		Password: "$2a$04$notarealhashbutlongenoughtopass",
	}
	require.NoError(t, repo.Create(context.Background(), user))
	require.NotZero(t, user.ID)

	return user
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := seedUser(t, repo, "alice@example.com", "alice")
	assert.False(t, user.CreatedAt.IsZero())

	t.Run("find by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Email, found.Email)
		assert.Equal(t, user.Username, found.Username)
	})

	t.Run("find by email", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
	})

	t.Run("missing id yields sentinel", func(t *testing.T) {
		_, err := repo.FindByID(ctx, 99999)
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})

	t.Run("missing email yields sentinel", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})
}

func TestUserRepository_Create_DuplicateConflict(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, repo, "bob@example.com", "bob")

	t.Run("duplicate email", func(t *testing.T) {
		err := repo.Create(ctx, &entity.User{
			Name:     "Bob Clone",
			Username: "bob2",
			Email:    "bob@example.com",
			Password: "hash",
		})
		require.Error(t, err)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainerrors.ErrEmailOrUsernameTaken.ErrorCode(), appErr.ErrorCode())
	})

	t.Run("duplicate username", func(t *testing.T) {
		err := repo.Create(ctx, &entity.User{
			Name:     "Bob Clone",
			Username: "bob",
			Email:    "bob2@example.com",
			Password: "hash",
		})
		require.Error(t, err)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainerrors.ErrEmailOrUsernameTaken.ErrorCode(), appErr.ErrorCode())
	})
}

func TestPostRepository_OwnerScoping(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	postRepo := NewPostRepository(db)
	ctx := context.Background()

	owner := seedUser(t, userRepo, "owner@example.com", "owner")
	other := seedUser(t, userRepo, "other@example.com", "other")

	post := &entity.Post{Title: "First", Body: "Body", OwnerID: owner.ID}
	require.NoError(t, postRepo.Create(ctx, post))
	require.NotZero(t, post.ID)

	t.Run("owner sees the post", func(t *testing.T) {
		found, err := postRepo.FindByIDAndOwner(ctx, post.ID, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, "First", found.Title)
	})

	t.Run("non-owner gets the not-found sentinel", func(t *testing.T) {
		_, err := postRepo.FindByIDAndOwner(ctx, post.ID, other.ID)
		assert.ErrorIs(t, err, repository.ErrPostNotFound)
	})

	t.Run("find by id ignores ownership", func(t *testing.T) {
		found, err := postRepo.FindByID(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, owner.ID, found.OwnerID)
	})
}

func TestPostRepository_FindAllByOwner_Window(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	postRepo := NewPostRepository(db)
	ctx := context.Background()

	owner := seedUser(t, userRepo, "writer@example.com", "writer")
	other := seedUser(t, userRepo, "reader@example.com", "reader")

	titles := []string{"a", "b", "c", "d", "e"}
	for _, title := range titles {
		require.NoError(t, postRepo.Create(ctx, &entity.Post{Title: title, Body: "b", OwnerID: owner.ID}))
	}
	require.NoError(t, postRepo.Create(ctx, &entity.Post{Title: "z", Body: "b", OwnerID: other.ID}))

	t.Run("no window returns everything owned", func(t *testing.T) {
		posts, err := postRepo.FindAllByOwner(ctx, owner.ID, 0, 0)
		require.NoError(t, err)
		assert.Len(t, posts, 5)
	})

	t.Run("window slices in id order", func(t *testing.T) {
		posts, err := postRepo.FindAllByOwner(ctx, owner.ID, 2, 1)
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, "b", posts[0].Title)
		assert.Equal(t, "c", posts[1].Title)
	})

	t.Run("offset past the end is empty not nil error", func(t *testing.T) {
		posts, err := postRepo.FindAllByOwner(ctx, owner.ID, 10, 50)
		require.NoError(t, err)
		assert.Empty(t, posts)
	})
}

func TestPostRepository_UpdateAndDelete(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	postRepo := NewPostRepository(db)
	ctx := context.Background()

	owner := seedUser(t, userRepo, "editor@example.com", "editor")

	post := &entity.Post{Title: "Draft", Body: "wip", OwnerID: owner.ID}
	require.NoError(t, postRepo.Create(ctx, post))

	post.Title = "Published"
	require.NoError(t, postRepo.Update(ctx, post))

	found, err := postRepo.FindByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Published", found.Title)
	assert.Equal(t, "wip", found.Body)

	require.NoError(t, postRepo.Delete(ctx, post.ID))

	_, err = postRepo.FindByID(ctx, post.ID)
	assert.ErrorIs(t, err, repository.ErrPostNotFound)
}

func TestCommentRepository_Listing(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	postRepo := NewPostRepository(db)
	commentRepo := NewCommentRepository(db)
	ctx := context.Background()

	owner := seedUser(t, userRepo, "host@example.com", "host")

	first := &entity.Post{Title: "First", Body: "b", OwnerID: owner.ID}
	second := &entity.Post{Title: "Second", Body: "b", OwnerID: owner.ID}
	require.NoError(t, postRepo.Create(ctx, first))
	require.NoError(t, postRepo.Create(ctx, second))

	for i := 0; i < 3; i++ {
		require.NoError(t, commentRepo.Create(ctx, &entity.Comment{
			Name:   "Visitor",
			Email:  "visitor@example.com",
			Body:   "nice post",
			PostID: first.ID,
		}))
	}
	require.NoError(t, commentRepo.Create(ctx, &entity.Comment{
		Name:   "Visitor",
		Email:  "visitor@example.com",
		Body:   "other thread",
		PostID: second.ID,
	}))

	t.Run("find all spans posts", func(t *testing.T) {
		comments, err := commentRepo.FindAll(ctx, 0, 0)
		require.NoError(t, err)
		assert.Len(t, comments, 4)
	})

	t.Run("find all by post filters", func(t *testing.T) {
		comments, err := commentRepo.FindAllByPost(ctx, first.ID, 0, 0)
		require.NoError(t, err)
		assert.Len(t, comments, 3)
	})

	t.Run("window applies to post listing", func(t *testing.T) {
		comments, err := commentRepo.FindAllByPost(ctx, first.ID, 2, 2)
		require.NoError(t, err)
		assert.Len(t, comments, 1)
	})

	t.Run("unknown post lists empty", func(t *testing.T) {
		comments, err := commentRepo.FindAllByPost(ctx, 99999, 0, 0)
		require.NoError(t, err)
		assert.Empty(t, comments)
	})
}

func TestCommentRepository_CRUD(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	postRepo := NewPostRepository(db)
	commentRepo := NewCommentRepository(db)
	ctx := context.Background()

	owner := seedUser(t, userRepo, "author@example.com", "author")
	post := &entity.Post{Title: "Thread", Body: "b", OwnerID: owner.ID}
	require.NoError(t, postRepo.Create(ctx, post))

	comment := &entity.Comment{
		Name:   "Carol",
		Email:  "carol@example.com",
		Body:   "hello",
		PostID: post.ID,
	}
	require.NoError(t, commentRepo.Create(ctx, comment))
	require.NotZero(t, comment.ID)

	found, err := commentRepo.FindByID(ctx, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "carol@example.com", found.Email)

	comment.Body = "edited"
	require.NoError(t, commentRepo.Update(ctx, comment))

	found, err = commentRepo.FindByID(ctx, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", found.Body)

	require.NoError(t, commentRepo.Delete(ctx, comment.ID))

	_, err = commentRepo.FindByID(ctx, comment.ID)
	assert.ErrorIs(t, err, repository.ErrCommentNotFound)
}
