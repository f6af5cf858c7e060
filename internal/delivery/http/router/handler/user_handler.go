package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"fixflow/config"
	"fixflow/internal/delivery/http/middleware"
	"fixflow/internal/delivery/http/response"
	"fixflow/internal/domain/service"
	"fixflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const profilePictureFormField = "profile_picture"

// UserHandler holds dependencies for user and account handlers.
type UserHandler struct {
	uc         usecase.UserUsecase
	imageStore service.ImageStore
	logger     *slog.Logger
	maxImageMB int
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(
	uc usecase.UserUsecase,
	imageStore service.ImageStore,
	logger *slog.Logger,
	cfg *config.Config,
) *UserHandler {
	maxImageMB := 0
	if cfg.Upload != nil {
		maxImageMB = cfg.Upload.MaxImageSizeMB
	}

	return &UserHandler{
		uc:         uc,
		imageStore: imageStore,
		logger:     logger,
		maxImageMB: maxImageMB,
	}
}

// Register handles the public registration request. It accepts either a JSON
// body or a multipart form whose profile picture is persisted to the blob
// store before the account is created.
func (h *UserHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		var err error
		input, err = h.bindMultipartRegister(c)
		if err != nil {
			return errors.WithStack(err)
		}
	} else {
		if err := c.Bind(&input); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
		}
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user, "User registered successfully")
}

// bindMultipartRegister reads the registration fields from a multipart form
// and uploads the attached profile picture, if any.
func (h *UserHandler) bindMultipartRegister(c echo.Context) (*usecase.RegisterInput, error) {
	input := &usecase.RegisterInput{
		FirstName: c.FormValue("first_name"),
		LastName:  c.FormValue("last_name"),
		Email:     c.FormValue("email"),
		Phone:     c.FormValue("phone"),
		Password:  c.FormValue("password"),
	}

	if fileHeader, err := c.FormFile(profilePictureFormField); err == nil {
		ref, err := saveUpload(c, h.imageStore, h.logger, h.maxImageMB, fileHeader)
		if err != nil {
			return nil, err
		}
		input.ProfilePicture = ref
	}

	return input, nil
}

// Login handles the login request.
func (h *UserHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// GetProfile handles fetching an account's profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	p, err := middleware.PrincipalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.GetProfile(c.Request().Context(), p, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile retrieved successfully")
}

// UpdateProfile handles the whitelisted profile patch.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	p, err := middleware.PrincipalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), p, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile updated successfully")
}

// ChangePassword handles the password rotation request.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	p, err := middleware.PrincipalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.ChangePasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ChangePassword(c.Request().Context(), p, id, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password changed successfully")
}

// RegisterAdmin handles the admin-only creation of another admin account.
func (h *UserHandler) RegisterAdmin(c echo.Context) error {
	p, err := middleware.PrincipalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.RegisterAdmin(c.Request().Context(), p, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user, "Admin registered successfully")
}

// List handles the admin-only user listing with an optional role filter.
func (h *UserHandler) List(c echo.Context) error {
	p, err := middleware.PrincipalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var role *string
	if v := c.QueryParam("role"); v != "" {
		role = &v
	}

	users, err := h.uc.ListUsers(c.Request().Context(), p, role)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "Users retrieved successfully")
}

// Delete handles the admin-only account removal. The stored profile picture
// is cleaned up best effort once the record is gone.
func (h *UserHandler) Delete(c echo.Context) error {
	p, err := middleware.PrincipalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.GetProfile(c.Request().Context(), p, id)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteUser(c.Request().Context(), p, id); err != nil {
		return errors.WithStack(err)
	}

	if user.ProfilePicture != "" {
		if err := h.imageStore.Delete(c.Request().Context(), user.ProfilePicture); err != nil {
			h.logger.Warn("failed to delete stored profile picture",
				slog.String("ref", user.ProfilePicture),
				slog.String("error", err.Error()),
			)
		}
	}

	return response.Success(c, http.StatusOK, nil, "User deleted successfully")
}
