// Package report implements the spreadsheet rendering of the maintenance report.
package report

import (
	"io"

	"fixflow/internal/domain/entity"
	"fixflow/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Maintenance Requests"

var reportColumns = []struct {
	header string
	width  float64
}{
	{"Request ID", 38},
	{"User Name", 20},
	{"User Email", 28},
	{"Description", 40},
	{"Category", 16},
	{"Status", 14},
	{"Technician Name", 20},
	{"Technician Email", 28},
	{"Created At", 14},
	{"Resolved At", 14},
	{"Notes Count", 12},
}

// excelExporter implements service.ReportExporter using xlsx workbooks.
type excelExporter struct{}

// NewExcelExporter is the constructor for excelExporter.
func NewExcelExporter() service.ReportExporter {
	return &excelExporter{}
}

// ContentType returns the MIME type of the produced document.
func (e *excelExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Write renders the rows as a single-sheet workbook with a bold header.
func (e *excelExporter) Write(w io.Writer, rows []entity.ReportRow) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return errors.Wrap(err, "failed to create sheet")
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return errors.Wrap(err, "failed to remove default sheet")
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create header style")
	}

	for i, col := range reportColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return errors.Wrap(err, "failed to resolve header cell")
		}
		if err := f.SetCellValue(sheetName, cell, col.header); err != nil {
			return errors.Wrap(err, "failed to write header cell")
		}

		colName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return errors.Wrap(err, "failed to resolve column name")
		}
		if err := f.SetColWidth(sheetName, colName, colName, col.width); err != nil {
			return errors.Wrap(err, "failed to set column width")
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(reportColumns))
	if err != nil {
		return errors.Wrap(err, "failed to resolve last column")
	}
	if err := f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return errors.Wrap(err, "failed to style header row")
	}

	for i, row := range rows {
		values := []any{
			row.ID,
			row.RequesterName,
			row.RequesterEmail,
			row.Description,
			row.Category,
			row.Status,
			row.TechnicianName,
			row.TechnicianEmail,
			row.CreatedAt,
			row.ResolvedAt,
			row.NoteCount,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.Wrap(err, "failed to resolve row cell")
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return errors.Wrap(err, "failed to write report row")
		}
	}

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "failed to write workbook")
	}

	return nil
}
