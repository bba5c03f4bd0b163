package impl

import (
	"context"
	"testing"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type commentServiceFixture struct {
	svc         usecase.CommentUsecase
	commentRepo *fakeCommentRepo
}

func newCommentServiceForTest() *commentServiceFixture {
	commentRepo := newFakeCommentRepo()

	return &commentServiceFixture{
		svc: NewCommentService(CommentServiceParams{
			CommentRepo: commentRepo,
			Logger:      testLogger(),
		}),
		commentRepo: commentRepo,
	}
}

func (f *commentServiceFixture) addComment(t *testing.T, email, body string, postID int64) *entity.Comment {
	t.Helper()

	comment := &entity.Comment{Name: "Author", Email: email, Body: body, PostID: postID}
	require.NoError(t, f.commentRepo.Create(context.Background(), comment))

	return comment
}

func TestCommentService_Reads(t *testing.T) {
	fixture := newCommentServiceForTest()
	ctx := context.Background()

	first := fixture.addComment(t, "a@example.com", "one", 1)
	fixture.addComment(t, "b@example.com", "two", 1)
	fixture.addComment(t, "c@example.com", "three", 2)

	t.Run("find all spans every post", func(t *testing.T) {
		comments, err := fixture.svc.FindAll(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, comments, 3)
	})

	t.Run("find all honors the window", func(t *testing.T) {
		comments, err := fixture.svc.FindAll(ctx, &usecase.Pagination{Limit: 1, Offset: 2})
		require.NoError(t, err)
		require.Len(t, comments, 1)
		assert.Equal(t, "three", comments[0].Body)
	})

	t.Run("find one", func(t *testing.T) {
		comment, err := fixture.svc.FindOne(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, "one", comment.Body)
	})

	t.Run("find one missing", func(t *testing.T) {
		_, err := fixture.svc.FindOne(ctx, 9999)
		assert.ErrorIs(t, err, domainerrors.ErrCommentNotFound)
	})
}

func TestCommentService_EmailGuard(t *testing.T) {
	fixture := newCommentServiceForTest()
	ctx := context.Background()

	comment := fixture.addComment(t, "author@example.com", "mine", 1)

	author := claimsFor(&entity.User{ID: 1, Name: "Author", Email: "author@example.com"})
	stranger := claimsFor(&entity.User{ID: 2, Name: "Stranger", Email: "stranger@example.com"})

	t.Run("author updates own comment", func(t *testing.T) {
		body := "edited"
		updated, err := fixture.svc.Update(ctx, author, comment.ID, &usecase.UpdateCommentInput{Body: &body})
		require.NoError(t, err)
		assert.Equal(t, "edited", updated.Body)
	})

	t.Run("stranger cannot update", func(t *testing.T) {
		body := "defaced"
		_, err := fixture.svc.Update(ctx, stranger, comment.ID, &usecase.UpdateCommentInput{Body: &body})
		assert.ErrorIs(t, err, domainerrors.ErrCommentNotOwned)
	})

	t.Run("stranger cannot remove", func(t *testing.T) {
		_, err := fixture.svc.Remove(ctx, stranger, comment.ID)
		assert.ErrorIs(t, err, domainerrors.ErrCommentNotOwned)
	})

	t.Run("missing comment reads as not found even for strangers", func(t *testing.T) {
		_, err := fixture.svc.Remove(ctx, stranger, 9999)
		assert.ErrorIs(t, err, domainerrors.ErrCommentNotFound)
	})

	t.Run("renaming does not transfer ownership", func(t *testing.T) {
		name := "Stranger"
		_, err := fixture.svc.Update(ctx, author, comment.ID, &usecase.UpdateCommentInput{Name: &name})
		require.NoError(t, err)

		body := "still not yours"
		_, err = fixture.svc.Update(ctx, stranger, comment.ID, &usecase.UpdateCommentInput{Body: &body})
		assert.ErrorIs(t, err, domainerrors.ErrCommentNotOwned)
	})

	t.Run("author removes own comment and gets the record back", func(t *testing.T) {
		removed, err := fixture.svc.Remove(ctx, author, comment.ID)
		require.NoError(t, err)
		assert.Equal(t, comment.ID, removed.ID)

		_, err = fixture.svc.FindOne(ctx, comment.ID)
		assert.ErrorIs(t, err, domainerrors.ErrCommentNotFound)
	})
}
