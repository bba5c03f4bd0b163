package handler

import (
	"log/slog"
	"net/http"

	"blog/internal/delivery/http/middleware"
	"blog/internal/delivery/http/response"
	"blog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CommentHandler holds dependencies for the comment collection handlers.
type CommentHandler struct {
	uc     usecase.CommentUsecase
	logger *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler, injected by Fx.
func NewCommentHandler(uc usecase.CommentUsecase, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{
		uc:     uc,
		logger: logger,
	}
}

// FindAll lists comments across every post. This route is public.
func (h *CommentHandler) FindAll(c echo.Context) error {
	page, err := pagination(c)
	if err != nil {
		return err
	}

	comments, err := h.uc.FindAll(c.Request().Context(), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, comments, "")
}

// FindOne fetches a single comment by id. This route is public.
func (h *CommentHandler) FindOne(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	comment, err := h.uc.FindOne(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, comment, "")
}

// Update applies a partial update to a comment the caller authored.
func (h *CommentHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateCommentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	comment, err := h.uc.Update(c.Request().Context(), middleware.ActiveUser(c), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, comment, "Comment updated successfully")
}

// Remove deletes a comment the caller authored and echoes the removed record.
func (h *CommentHandler) Remove(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	comment, err := h.uc.Remove(c.Request().Context(), middleware.ActiveUser(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, comment, "Comment removed successfully")
}
