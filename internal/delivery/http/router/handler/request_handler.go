package handler

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"fixflow/config"
	"fixflow/internal/delivery/http/middleware"
	"fixflow/internal/delivery/http/response"
	domainerrors "fixflow/internal/domain/errors"
	"fixflow/internal/domain/service"
	"fixflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const imagesFormField = "images"

// RequestHandler holds dependencies for maintenance request handlers.
type RequestHandler struct {
	uc         usecase.RequestUsecase
	reportUc   usecase.ReportUsecase
	imageStore service.ImageStore
	qrSvc      service.QRCodeService
	exporter   service.ReportExporter
	logger     *slog.Logger
	maxImageMB int
}

// NewRequestHandler is the constructor for RequestHandler, injected by Fx.
func NewRequestHandler(
	uc usecase.RequestUsecase,
	reportUc usecase.ReportUsecase,
	imageStore service.ImageStore,
	qrSvc service.QRCodeService,
	exporter service.ReportExporter,
	logger *slog.Logger,
	cfg *config.Config,
) *RequestHandler {
	maxImageMB := 0
	if cfg.Upload != nil {
		maxImageMB = cfg.Upload.MaxImageSizeMB
	}

	return &RequestHandler{
		uc:         uc,
		reportUc:   reportUc,
		imageStore: imageStore,
		qrSvc:      qrSvc,
		exporter:   exporter,
		logger:     logger,
		maxImageMB: maxImageMB,
	}
}

// Create handles opening a new maintenance request. It accepts either a JSON
// body or a multipart form whose image files are persisted to the blob store
// before the lifecycle engine runs.
func (h *RequestHandler) Create(c echo.Context) error {
	p, err := middleware.PrincipalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.CreateRequestInput
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		input, err = h.bindMultipartCreate(c)
		if err != nil {
			return errors.WithStack(err)
		}
	} else {
		if err := c.Bind(&input); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid request input")
		}
	}

	created, err := h.uc.Create(c.Request().Context(), p, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, created, "Maintenance request created successfully")
}

// bindMultipartCreate reads the create fields from a multipart form and
// uploads each attached image, collecting the stored references in order.
func (h *RequestHandler) bindMultipartCreate(c echo.Context) (*usecase.CreateRequestInput, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid multipart form")
	}

	input := &usecase.CreateRequestInput{
		Description: c.FormValue("description"),
		Category:    c.FormValue("category"),
	}

	lat, lng := c.FormValue("lat"), c.FormValue("lng")
	if lat != "" || lng != "" {
		location := &usecase.LocationInput{}
		if lat != "" {
			v, err := strconv.ParseFloat(lat, 64)
			if err != nil {
				return nil, domainerrors.ErrInvalidCoordinates.WrapMessage("lat is not a number")
			}
			location.Lat = &v
		}
		if lng != "" {
			v, err := strconv.ParseFloat(lng, 64)
			if err != nil {
				return nil, domainerrors.ErrInvalidCoordinates.WrapMessage("lng is not a number")
			}
			location.Lng = &v
		}
		input.Location = location
	}

	for _, fileHeader := range form.File[imagesFormField] {
		ref, err := saveUpload(c, h.imageStore, h.logger, h.maxImageMB, fileHeader)
		if err != nil {
			return nil, err
		}
		input.Images = append(input.Images, ref)
	}

	return input, nil
}

// List handles the admin listing with optional status/category filters.
func (h *RequestHandler) List(c echo.Context) error {
	p, err := middleware.PrincipalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var filter usecase.RequestListFilter
	if err := c.Bind(&filter); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid filter input")
	}

	requests, err := h.uc.ListAll(c.Request().Context(), p, &filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "Maintenance requests retrieved successfully")
}

// GetByID handles fetching a single request.
func (h *RequestHandler) GetByID(c echo.Context) error {
	p, err := middleware.PrincipalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	request, err := h.uc.GetByID(c.Request().Context(), p, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, request, "Maintenance request retrieved successfully")
}

// ListForUser handles fetching all requests opened by one user.
func (h *RequestHandler) ListForUser(c echo.Context) error {
	p, err := middleware.PrincipalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return errors.WithStack(err)
	}

	requests, err := h.uc.ListForUser(c.Request().Context(), p, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "Maintenance requests retrieved successfully")
}

// Update handles the admin correction of descriptive fields.
func (h *RequestHandler) Update(c echo.Context) error {
	p, err := middleware.PrincipalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.UpdateRequestInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}

	updated, err := h.uc.Update(c.Request().Context(), p, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated, "Maintenance request updated successfully")
}

// Delete handles the permanent removal of a request. Stored images are
// cleaned up best effort once the record is gone.
func (h *RequestHandler) Delete(c echo.Context) error {
	p, err := middleware.PrincipalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	request, err := h.uc.GetByID(c.Request().Context(), p, id)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), p, id); err != nil {
		return errors.WithStack(err)
	}

	for _, ref := range request.Images {
		if err := h.imageStore.Delete(c.Request().Context(), ref); err != nil {
			h.logger.Warn("failed to delete stored image",
				slog.String("ref", ref),
				slog.String("error", err.Error()),
			)
		}
	}

	return response.Success(c, http.StatusOK, nil, "Maintenance request deleted successfully")
}

type changeStatusInput struct {
	Status string `json:"status"`
}

// ChangeStatus handles the admin status transition.
func (h *RequestHandler) ChangeStatus(c echo.Context) error {
	p, err := middleware.PrincipalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input changeStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	updated, err := h.uc.ChangeStatus(c.Request().Context(), p, id, input.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated, "Request status updated successfully")
}

// Assign handles assigning a technician to a request.
func (h *RequestHandler) Assign(c echo.Context) error {
	p, err := middleware.PrincipalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.AssignTechnicianInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assignment input")
	}

	updated, err := h.uc.Assign(c.Request().Context(), p, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated, "Technician assigned successfully")
}

// Resolve handles marking a request resolved.
func (h *RequestHandler) Resolve(c echo.Context) error {
	p, err := middleware.PrincipalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	updated, err := h.uc.Resolve(c.Request().Context(), p, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated, "Maintenance request resolved successfully")
}

type addNoteInput struct {
	Text string `json:"text"`
}

// AddNote handles appending a note to a request's trail.
func (h *RequestHandler) AddNote(c echo.Context) error {
	p, err := middleware.PrincipalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input addNoteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid note input")
	}

	updated, err := h.uc.AddNote(c.Request().Context(), p, id, input.Text)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated, "Note added successfully")
}

// QRCode renders a PNG QR code carrying the request's tracking reference.
// Visibility follows the same rules as GetByID.
func (h *RequestHandler) QRCode(c echo.Context) error {
	p, err := middleware.PrincipalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	request, err := h.uc.GetByID(c.Request().Context(), p, id)
	if err != nil {
		return errors.WithStack(err)
	}

	png, err := h.qrSvc.GenerateRequestQR(request.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ExportReport streams the full request collection as a spreadsheet.
func (h *RequestHandler) ExportReport(c echo.Context) error {
	p, err := middleware.PrincipalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	// Buffer the workbook so authorization and projection failures can still
	// surface as error responses instead of a truncated download.
	var buf bytes.Buffer
	if err := h.reportUc.ExportXLSX(c.Request().Context(), p, &buf); err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="maintenance_requests_report.xlsx"`)

	return c.Blob(http.StatusOK, h.exporter.ContentType(), buf.Bytes())
}

// parseIDParam parses a UUID path parameter.
func parseIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be a valid UUID")
	}

	return id, nil
}
