package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fixflow/internal/domain/entity"
	domainerrors "fixflow/internal/domain/errors"
	"fixflow/internal/domain/repository"
	mockRepo "fixflow/internal/mocks/repository"
	mockService "fixflow/internal/mocks/service"
	"fixflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reportServiceFixtures struct {
	service  usecase.ReportUsecase
	reqRepo  *mockRepo.MockMaintenanceRepository
	exporter *mockService.MockReportExporter
}

func createTestReportService(t *testing.T) reportServiceFixtures {
	reqRepo := mockRepo.NewMockMaintenanceRepository(t)
	exporter := mockService.NewMockReportExporter(t)

	service := NewReportService(ReportServiceParams{
		ReqRepo:  reqRepo,
		Exporter: exporter,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return reportServiceFixtures{
		service:  service,
		reqRepo:  reqRepo,
		exporter: exporter,
	}
}

func TestReportService_BuildReport_ProjectsRows(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	techID := uuid.New()
	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	resolved := time.Date(2026, 3, 20, 16, 0, 0, 0, time.UTC)

	full := &entity.MaintenanceRequest{
		ID:          uuid.New(),
		Description: "Broken main valve",
		Category:    "plumbing",
		Status:      entity.RequestStatusResolved,
		CreatedAt:   created,
		ResolvedAt:  &resolved,
		Requester:   &entity.User{FirstName: "Lina", LastName: "Haddad", Email: "lina@example.com"},
		Technician:  &entity.User{ID: techID, FirstName: "Sami", LastName: "Odeh", Email: "sami@example.com"},
		Notes:       []entity.RequestNote{{Text: "first visit"}, {Text: "part replaced"}},
	}
	bare := &entity.MaintenanceRequest{
		ID:          uuid.New(),
		Description: "No water since morning",
		Category:    "outage",
		Status:      entity.RequestStatusPending,
		CreatedAt:   created,
	}

	fx.reqRepo.EXPECT().
		FindMany(ctx, repository.RequestFilter{}).
		Return([]*entity.MaintenanceRequest{full, bare}, nil)

	rows, err := fx.service.BuildReport(ctx, adminPrincipal())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Lina Haddad", rows[0].RequesterName)
	assert.Equal(t, "Sami Odeh", rows[0].TechnicianName)
	assert.Equal(t, "2026-03-14", rows[0].CreatedAt)
	assert.Equal(t, "2026-03-20", rows[0].ResolvedAt)
	assert.Equal(t, 2, rows[0].NoteCount)

	assert.Equal(t, "N/A", rows[1].RequesterName)
	assert.Equal(t, "Not Assigned", rows[1].TechnicianName)
	assert.Equal(t, "N/A", rows[1].TechnicianEmail)
	assert.Equal(t, "N/A", rows[1].ResolvedAt)
	assert.Equal(t, 0, rows[1].NoteCount)
}

func TestReportService_BuildReport_NonAdminForbidden(t *testing.T) {
	fx := createTestReportService(t)

	_, err := fx.service.BuildReport(context.Background(), userPrincipal())
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestReportService_ExportXLSX_WritesRows(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()

	fx.reqRepo.EXPECT().
		FindMany(ctx, repository.RequestFilter{}).
		Return([]*entity.MaintenanceRequest{}, nil)
	fx.exporter.EXPECT().
		Write(io.Discard, []entity.ReportRow{}).
		Return(nil)

	err := fx.service.ExportXLSX(ctx, adminPrincipal(), io.Discard)
	require.NoError(t, err)
}
