package service

import (
	"io"

	"fixflow/internal/domain/entity"
)

// ReportExporter renders projected report rows into a spreadsheet stream.
// The projection itself is pure and lives in the use case layer; this
// interface only owns the file format.
type ReportExporter interface {
	// Write renders the rows as a spreadsheet to w.
	Write(w io.Writer, rows []entity.ReportRow) error

	// ContentType returns the MIME type of the rendered document.
	ContentType() string
}
