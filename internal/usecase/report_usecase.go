package usecase

import (
	"context"
	"io"

	"fixflow/internal/domain/entity"
)

// ReportUsecase is the reporting projector: a read-only transformation of one
// consistent snapshot of the request collection into flat rows, plus the
// spreadsheet export built on it. It is independent of the write path.
type ReportUsecase interface {
	// BuildReport projects the current request collection into rows.
	BuildReport(ctx context.Context, p entity.Principal) ([]entity.ReportRow, error)

	// ExportXLSX writes the projected report as a spreadsheet to w.
	ExportXLSX(ctx context.Context, p entity.Principal, w io.Writer) error
}
