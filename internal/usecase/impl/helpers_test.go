package impl

import (
	"context"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"blog/config"
	"blog/internal/domain/entity"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"
	"blog/internal/infra/auth"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// --- In-memory repository fakes ---

type fakeUserRepo struct {
	nextID int64
	users  map[int64]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entity.User)}
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	copied := *user

	return &copied, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user

			return &copied, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	copied := *user
	f.users[user.ID] = &copied

	return nil
}

type fakePostRepo struct {
	nextID int64
	posts  map[int64]*entity.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[int64]*entity.Post)}
}

func (f *fakePostRepo) Create(_ context.Context, post *entity.Post) error {
	f.nextID++
	post.ID = f.nextID
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt

	copied := *post
	f.posts[post.ID] = &copied

	return nil
}

func (f *fakePostRepo) FindByID(_ context.Context, id int64) (*entity.Post, error) {
	post, ok := f.posts[id]
	if !ok {
		return nil, repository.ErrPostNotFound
	}

	copied := *post

	return &copied, nil
}

func (f *fakePostRepo) FindByIDAndOwner(_ context.Context, id, ownerID int64) (*entity.Post, error) {
	post, ok := f.posts[id]
	if !ok || post.OwnerID != ownerID {
		return nil, repository.ErrPostNotFound
	}

	copied := *post

	return &copied, nil
}

func (f *fakePostRepo) FindAllByOwner(_ context.Context, ownerID int64, limit, offset int) ([]*entity.Post, error) {
	var owned []*entity.Post
	for _, post := range f.posts {
		if post.OwnerID == ownerID {
			copied := *post
			owned = append(owned, &copied)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].ID < owned[j].ID })

	return sliceWindow(owned, limit, offset), nil
}

func (f *fakePostRepo) Update(_ context.Context, post *entity.Post) error {
	post.UpdatedAt = time.Now()

	copied := *post
	f.posts[post.ID] = &copied

	return nil
}

func (f *fakePostRepo) Delete(_ context.Context, id int64) error {
	delete(f.posts, id)

	return nil
}

type fakeCommentRepo struct {
	nextID   int64
	comments map[int64]*entity.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[int64]*entity.Comment)}
}

func (f *fakeCommentRepo) Create(_ context.Context, comment *entity.Comment) error {
	f.nextID++
	comment.ID = f.nextID
	comment.CreatedAt = time.Now()
	comment.UpdatedAt = comment.CreatedAt

	copied := *comment
	f.comments[comment.ID] = &copied

	return nil
}

func (f *fakeCommentRepo) FindByID(_ context.Context, id int64) (*entity.Comment, error) {
	comment, ok := f.comments[id]
	if !ok {
		return nil, repository.ErrCommentNotFound
	}

	copied := *comment

	return &copied, nil
}

func (f *fakeCommentRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Comment, error) {
	return sliceWindow(f.sorted(), limit, offset), nil
}

func (f *fakeCommentRepo) FindAllByPost(_ context.Context, postID int64, limit, offset int) ([]*entity.Comment, error) {
	var matched []*entity.Comment
	for _, comment := range f.sorted() {
		if comment.PostID == postID {
			matched = append(matched, comment)
		}
	}

	return sliceWindow(matched, limit, offset), nil
}

func (f *fakeCommentRepo) Update(_ context.Context, comment *entity.Comment) error {
	comment.UpdatedAt = time.Now()

	copied := *comment
	f.comments[comment.ID] = &copied

	return nil
}

func (f *fakeCommentRepo) Delete(_ context.Context, id int64) error {
	delete(f.comments, id)

	return nil
}

func (f *fakeCommentRepo) sorted() []*entity.Comment {
	all := make([]*entity.Comment, 0, len(f.comments))
	for _, comment := range f.comments {
		copied := *comment
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	return all
}

func sliceWindow[T any](items []T, limit, offset int) []T {
	if offset > 0 {
		if offset >= len(items) {
			return nil
		}
		items = items[offset:]
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}

	return items
}

// --- Test wiring helpers ---

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testHasher() service.PasswordHasher {
	return auth.NewBcryptHasherWithCost(bcrypt.MinCost)
}

func testTokenService() service.TokenService {
	tokenService, err := auth.NewJWTService(&config.Config{
		JWT: &config.JWTConfig{
			Secret:   "test-secret-test-secret-test-secret",
			Expiry:   time.Hour,
			Issuer:   "blog-test",
			Audience: "blog-test-clients",
		},
	})
	if err != nil {
		panic(err)
	}

	return tokenService
}

// claimsFor builds the claims the auth middleware would have extracted for
// the given user.
func claimsFor(user *entity.User) *service.Claims {
	return &service.Claims{
		Email:    user.Email,
		Name:     user.Name,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: strconv.FormatInt(user.ID, 10),
		},
	}
}
