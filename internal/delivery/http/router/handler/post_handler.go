package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"blog/internal/delivery/http/middleware"
	"blog/internal/delivery/http/response"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PostHandler holds dependencies for the owner-scoped post handlers.
type PostHandler struct {
	uc     usecase.PostUsecase
	logger *slog.Logger
}

// NewPostHandler is the constructor for PostHandler, injected by Fx.
func NewPostHandler(uc usecase.PostUsecase, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		uc:     uc,
		logger: logger,
	}
}

// pathID parses the numeric :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails("id must be an integer")
	}

	return id, nil
}

// pagination binds the optional limit/offset query parameters.
func pagination(c echo.Context) (*usecase.Pagination, error) {
	var page usecase.Pagination
	if err := c.Bind(&page); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("limit and offset must be integers")
	}
	if err := c.Validate(&page); err != nil {
		return nil, errors.WithStack(err)
	}

	return &page, nil
}

// Create handles post creation for the authenticated caller.
func (h *PostHandler) Create(c echo.Context) error {
	var input usecase.CreatePostInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	post, err := h.uc.Create(c.Request().Context(), middleware.ActiveUser(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, post, "Post created successfully")
}

// FindAll lists the caller's posts.
func (h *PostHandler) FindAll(c echo.Context) error {
	page, err := pagination(c)
	if err != nil {
		return err
	}

	posts, err := h.uc.FindAll(c.Request().Context(), middleware.ActiveUser(c), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, posts, "")
}

// FindOne fetches one of the caller's posts by id.
func (h *PostHandler) FindOne(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	post, err := h.uc.FindOne(c.Request().Context(), middleware.ActiveUser(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, post, "")
}

// Update applies a partial update to one of the caller's posts.
func (h *PostHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input usecase.UpdatePostInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	post, err := h.uc.Update(c.Request().Context(), middleware.ActiveUser(c), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, post, "Post updated successfully")
}

// Remove deletes one of the caller's posts and echoes the removed record.
func (h *PostHandler) Remove(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	post, err := h.uc.Remove(c.Request().Context(), middleware.ActiveUser(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, post, "Post removed successfully")
}

// CreateComment attaches a comment to the addressed post.
func (h *PostHandler) CreateComment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input usecase.CreateCommentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	comment, err := h.uc.CreateComment(c.Request().Context(), middleware.ActiveUser(c), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, comment, "Comment created successfully")
}

// FindAllComments lists the addressed post's comments.
func (h *PostHandler) FindAllComments(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	page, err := pagination(c)
	if err != nil {
		return err
	}

	comments, err := h.uc.FindAllComments(c.Request().Context(), id, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, comments, "")
}
