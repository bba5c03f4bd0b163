package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "blog/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewErrorMiddleware(testLogger()).HandleHTTPError(err, c)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestErrorMiddleware_AppError(t *testing.T) {
	rec, body := renderError(t, domainerrors.ErrPostNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, float64(http.StatusNotFound), body["code"])
	assert.Equal(t, "post not found", body["message"])

	errInfo, ok := body["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", errInfo["code"])
}

func TestErrorMiddleware_WrappedAppError(t *testing.T) {
	wrapped := errors.Wrap(domainerrors.ErrCommentNotOwned, "remove comment")

	rec, body := renderError(t, wrapped)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "comment does not belong to you", body["message"])
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	rec, body := renderError(t, echo.NewHTTPError(http.StatusNotFound, "Not Found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	errInfo, ok := body["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "HTTP_ERROR", errInfo["code"])
}

func TestErrorMiddleware_UnknownError(t *testing.T) {
	rec, body := renderError(t, errors.New("database exploded"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", body["message"])

	// Internals never leak to the client.
	raw := rec.Body.String()
	assert.NotContains(t, raw, "database exploded")
}
