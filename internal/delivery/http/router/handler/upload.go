package handler

import (
	"fmt"
	"log/slog"
	"mime/multipart"

	domainerrors "fixflow/internal/domain/errors"
	"fixflow/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// saveUpload persists one uploaded file to the blob store and returns the
// stored reference. A maxMB of zero disables the size check.
func saveUpload(c echo.Context, store service.ImageStore, logger *slog.Logger, maxMB int, fileHeader *multipart.FileHeader) (string, error) {
	if maxMB > 0 && fileHeader.Size > int64(maxMB)<<20 {
		return "", domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("image %s exceeds the %dMB limit", fileHeader.Filename, maxMB))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", errors.Wrap(err, "failed to open uploaded image")
	}
	defer func() {
		if closeErr := src.Close(); closeErr != nil {
			logger.Warn("failed to close uploaded image", slog.String("error", closeErr.Error()))
		}
	}()

	contentType := fileHeader.Header.Get(echo.HeaderContentType)

	return store.Save(c.Request().Context(), fileHeader.Filename, contentType, src)
}
