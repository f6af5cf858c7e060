package handler

import (
	"net/http"

	"fixflow/internal/delivery/http/middleware"
	"fixflow/internal/delivery/http/response"
	"fixflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SupplyHandler holds dependencies for alternative supply request handlers.
type SupplyHandler struct {
	uc usecase.SupplyUsecase
}

// NewSupplyHandler is the constructor for SupplyHandler, injected by Fx.
func NewSupplyHandler(uc usecase.SupplyUsecase) *SupplyHandler {
	return &SupplyHandler{uc: uc}
}

// Create handles opening a new supply request.
func (h *SupplyHandler) Create(c echo.Context) error {
	p, err := middleware.PrincipalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.CreateSupplyInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid supply request input")
	}

	created, err := h.uc.Create(c.Request().Context(), p, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, created, "Supply request created successfully")
}

// List handles the admin listing with an optional status filter.
func (h *SupplyHandler) List(c echo.Context) error {
	p, err := middleware.PrincipalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var filter usecase.SupplyListFilter
	if err := c.Bind(&filter); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid filter input")
	}

	requests, err := h.uc.ListAll(c.Request().Context(), p, &filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "Supply requests retrieved successfully")
}

// ListMine handles fetching the caller's own supply requests.
func (h *SupplyHandler) ListMine(c echo.Context) error {
	p, err := middleware.PrincipalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	requests, err := h.uc.ListForUser(c.Request().Context(), p, p.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "Supply requests retrieved successfully")
}

// GetByID handles fetching a single supply request.
func (h *SupplyHandler) GetByID(c echo.Context) error {
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

	return response.Success(c, http.StatusOK, request, "Supply request retrieved successfully")
}

// ChangeStatus handles the admin status transition.
func (h *SupplyHandler) ChangeStatus(c echo.Context) error {
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

	return response.Success(c, http.StatusOK, updated, "Supply request status updated successfully")
}

// Assign handles assigning a technician to a supply request.
func (h *SupplyHandler) Assign(c echo.Context) error {
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

type addSupplyNoteInput struct {
	Note string `json:"note"`
}

// AddNote handles the admin-only note capability.
func (h *SupplyHandler) AddNote(c echo.Context) error {
	p, err := middleware.PrincipalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input addSupplyNoteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid note input")
	}

	updated, err := h.uc.AddNote(c.Request().Context(), p, id, input.Note)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated, "Note added successfully")
}

// Delete handles the permanent removal of a supply request.
func (h *SupplyHandler) Delete(c echo.Context) error {
	p, err := middleware.PrincipalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), p, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Supply request deleted successfully")
}
