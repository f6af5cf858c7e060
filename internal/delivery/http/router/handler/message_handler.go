package handler

import (
	"net/http"

	"fixflow/internal/delivery/http/middleware"
	"fixflow/internal/delivery/http/response"
	"fixflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MessageHandler holds dependencies for contact message handlers.
type MessageHandler struct {
	uc usecase.MessageUsecase
}

// NewMessageHandler is the constructor for MessageHandler, injected by Fx.
func NewMessageHandler(uc usecase.MessageUsecase) *MessageHandler {
	return &MessageHandler{uc: uc}
}

// CreateExternal handles the unauthenticated contact form submission.
func (h *MessageHandler) CreateExternal(c echo.Context) error {
	var input *usecase.CreateMessageInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	message, err := h.uc.CreateExternal(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, message, "Message submitted successfully")
}

// SendInternal handles a message from one registered user to another.
func (h *MessageHandler) SendInternal(c echo.Context) error {
	p, err := middleware.PrincipalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.SendInternalInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	message, err := h.uc.SendInternal(c.Request().Context(), p, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, message, "Message sent successfully")
}

// ListForUser handles fetching the messages a user has sent or received.
func (h *MessageHandler) ListForUser(c echo.Context) error {
	p, err := middleware.PrincipalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return errors.WithStack(err)
	}

	messages, err := h.uc.ListForUser(c.Request().Context(), p, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages, "Messages retrieved successfully")
}

// ListExternal handles the admin listing of visitor messages.
func (h *MessageHandler) ListExternal(c echo.Context) error {
	p, err := middleware.PrincipalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	messages, err := h.uc.ListExternal(c.Request().Context(), p)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages, "External messages retrieved successfully")
}

// List handles the admin inbox listing.
func (h *MessageHandler) List(c echo.Context) error {
	p, err := middleware.PrincipalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var filter usecase.MessageListFilter
	if err := c.Bind(&filter); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid filter input")
	}

	messages, err := h.uc.List(c.Request().Context(), p, &filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages, "Messages retrieved successfully")
}

// GetByID handles fetching a single message.
func (h *MessageHandler) GetByID(c echo.Context) error {
	p, err := middleware.PrincipalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	message, err := h.uc.GetByID(c.Request().Context(), p, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, message, "Message retrieved successfully")
}

// ChangeStatus handles the admin triage status transition.
func (h *MessageHandler) ChangeStatus(c echo.Context) error {
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

	return response.Success(c, http.StatusOK, updated, "Message status updated successfully")
}

type replyInput struct {
	Response string `json:"response"`
}

// Reply handles recording an admin reply, which also resolves the message.
func (h *MessageHandler) Reply(c echo.Context) error {
	p, err := middleware.PrincipalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input replyInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reply input")
	}

	updated, err := h.uc.Reply(c.Request().Context(), p, id, input.Response)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated, "Reply recorded successfully")
}

type featureInput struct {
	Featured bool `json:"featured"`
}

// SetFeatured handles toggling a message's featured flag.
func (h *MessageHandler) SetFeatured(c echo.Context) error {
	p, err := middleware.PrincipalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input featureInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid feature input")
	}

	updated, err := h.uc.SetFeatured(c.Request().Context(), p, id, input.Featured)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated, "Message feature flag updated successfully")
}

// Delete handles the permanent removal of a message.
func (h *MessageHandler) Delete(c echo.Context) error {
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

	return response.Success(c, http.StatusOK, nil, "Message deleted successfully")
}
