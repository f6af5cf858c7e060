package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "fixflow/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newErrorTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/requests", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newTestErrorMiddleware() *ErrorMiddleware {
	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHandleHTTPError_AppError(t *testing.T) {
	c, rec := newErrorTestContext(t)

	newTestErrorMiddleware().HandleHTTPError(domainerrors.ErrRequestNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "REQUEST_NOT_FOUND")
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestHandleHTTPError_WrappedAppError(t *testing.T) {
	c, rec := newErrorTestContext(t)

	wrapped := errors.Wrap(domainerrors.ErrForbidden, "delete request")
	newTestErrorMiddleware().HandleHTTPError(wrapped, c)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "FORBIDDEN")
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	c, rec := newErrorTestContext(t)

	newTestErrorMiddleware().HandleHTTPError(echo.NewHTTPError(http.StatusMethodNotAllowed), c)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}

func TestHandleHTTPError_UnknownErrorBecomes500(t *testing.T) {
	c, rec := newErrorTestContext(t)

	newTestErrorMiddleware().HandleHTTPError(errors.New("boom"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	assert.NotContains(t, rec.Body.String(), "boom")
}
