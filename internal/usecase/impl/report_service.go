package impl

import (
	"context"
	"io"
	"log/slog"

	deliverycontext "fixflow/internal/delivery/context"
	"fixflow/internal/domain/authz"
	"fixflow/internal/domain/entity"
	"fixflow/internal/domain/repository"
	"fixflow/internal/domain/service"
	"fixflow/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const reportDateLayout = "2006-01-02"

// reportService implements the ReportUsecase interface. Each report is built
// from a single read of the request collection, so one export is internally
// consistent even while writes continue.
type reportService struct {
	reqRepo  repository.MaintenanceRepository
	exporter service.ReportExporter
	logger   *slog.Logger
}

// ReportServiceParams holds dependencies for reportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	ReqRepo  repository.MaintenanceRepository
	Exporter service.ReportExporter
	Logger   *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		reqRepo:  params.ReqRepo,
		exporter: params.Exporter,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BuildReport projects every maintenance request into one flat row. Missing
// associations render as placeholders rather than empty cells.
func (srv *reportService) BuildReport(ctx context.Context, p entity.Principal) ([]entity.ReportRow, error) {
	if err := authz.Authorize(p, authz.OperationListAll, nil); err != nil {
		return nil, err
	}

	reqs, err := srv.reqRepo.FindMany(ctx, repository.RequestFilter{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load requests for report")
	}

	rows := make([]entity.ReportRow, 0, len(reqs))
	for _, req := range reqs {
		rows = append(rows, projectRow(req))
	}

	return rows, nil
}

// ExportXLSX writes the report as a spreadsheet to w.
func (srv *reportService) ExportXLSX(ctx context.Context, p entity.Principal, w io.Writer) error {
	rows, err := srv.BuildReport(ctx, p)
	if err != nil {
		return err
	}

	if err := srv.exporter.Write(w, rows); err != nil {
		return errors.Wrap(err, "failed to write report")
	}

	srv.log(ctx).Info("Report exported", slog.Int("rows", len(rows)))

	return nil
}

func projectRow(req *entity.MaintenanceRequest) entity.ReportRow {
	row := entity.ReportRow{
		ID:              req.ID.String(),
		RequesterName:   "N/A",
		RequesterEmail:  "N/A",
		Description:     req.Description,
		Category:        req.Category,
		Status:          req.Status.String(),
		TechnicianName:  "Not Assigned",
		TechnicianEmail: "N/A",
		CreatedAt:       req.CreatedAt.Format(reportDateLayout),
		NoteCount:       len(req.Notes),
	}

	if req.Requester != nil {
		row.RequesterName = req.Requester.FullName()
		row.RequesterEmail = req.Requester.Email
	}
	if req.Technician != nil {
		row.TechnicianName = req.Technician.FullName()
		row.TechnicianEmail = req.Technician.Email
	}
	if req.ResolvedAt != nil {
		row.ResolvedAt = req.ResolvedAt.Format(reportDateLayout)
	} else {
		row.ResolvedAt = "N/A"
	}

	return row
}
