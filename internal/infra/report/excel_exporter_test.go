package report

import (
	"bytes"
	"testing"

	"fixflow/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExcelExporter_WriteProducesReadableWorkbook(t *testing.T) {
	exporter := NewExcelExporter()

	rows := []entity.ReportRow{
		{
			ID:              "7f1c3b6e-0000-0000-0000-000000000001",
			RequesterName:   "Lina Haddad",
			RequesterEmail:  "lina@example.com",
			Description:     "Broken main valve",
			Category:        "plumbing",
			Status:          "resolved",
			TechnicianName:  "Sami Odeh",
			TechnicianEmail: "sami@example.com",
			CreatedAt:       "2026-03-14",
			ResolvedAt:      "2026-03-20",
			NoteCount:       2,
		},
		{
			ID:              "7f1c3b6e-0000-0000-0000-000000000002",
			RequesterName:   "N/A",
			RequesterEmail:  "N/A",
			Description:     "No water since morning",
			Category:        "outage",
			Status:          "pending",
			TechnicianName:  "Not Assigned",
			TechnicianEmail: "N/A",
			CreatedAt:       "2026-03-15",
			ResolvedAt:      "N/A",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, exporter.Write(&buf, rows))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	got, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "Request ID", got[0][0])
	assert.Equal(t, "Notes Count", got[0][10])
	assert.Equal(t, "Lina Haddad", got[1][1])
	assert.Equal(t, "2026-03-20", got[1][9])
	assert.Equal(t, "Not Assigned", got[2][6])
	assert.Equal(t, "N/A", got[2][9])
}

func TestExcelExporter_WriteEmptyReport(t *testing.T) {
	exporter := NewExcelExporter()

	var buf bytes.Buffer
	require.NoError(t, exporter.Write(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	got, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, got, 1) // header only
}

func TestExcelExporter_ContentType(t *testing.T) {
	exporter := NewExcelExporter()

	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		exporter.ContentType(),
	)
}
