package handler

import (
	"bytes"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"fixflow/config"
	"fixflow/internal/delivery/http/validator"
	"fixflow/internal/domain/entity"
	mockService "fixflow/internal/mocks/service"
	mockUsecase "fixflow/internal/mocks/usecase"
	"fixflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userHandlerFixtures struct {
	handler    *UserHandler
	uc         *mockUsecase.MockUserUsecase
	imageStore *mockService.MockImageStore
	echo       *echo.Echo
}

func createTestUserHandler(t *testing.T) userHandlerFixtures {
	uc := mockUsecase.NewMockUserUsecase(t)
	imageStore := mockService.NewMockImageStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = validator.New()

	return userHandlerFixtures{
		handler:    NewUserHandler(uc, imageStore, logger, &config.Config{}),
		uc:         uc,
		imageStore: imageStore,
		echo:       e,
	}
}

func TestUserHandler_Register_MultipartStoresProfilePicture(t *testing.T) {
	fx := createTestUserHandler(t)

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)
	require.NoError(t, form.WriteField("first_name", "Lina"))
	require.NoError(t, form.WriteField("last_name", "Haddad"))
	require.NoError(t, form.WriteField("email", "lina@example.com"))
	require.NoError(t, form.WriteField("phone", "0790000000"))
	require.NoError(t, form.WriteField("password", "s3cret-pass"))
	fileWriter, err := form.CreateFormFile("profile_picture", "avatar.png")
	require.NoError(t, err)
	_, err = fileWriter.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/users/register", body)
	req.Header.Set(echo.HeaderContentType, form.FormDataContentType())
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	fx.imageStore.EXPECT().
		Save(mock.Anything, "avatar.png", mock.Anything, mock.Anything).
		Return("uploads/avatar.png", nil)
	fx.uc.EXPECT().
		Register(mock.Anything, mock.MatchedBy(func(input *usecase.RegisterInput) bool {
			return input.Email == "lina@example.com" && input.ProfilePicture == "uploads/avatar.png"
		})).
		Return(&entity.User{ID: uuid.New(), Email: "lina@example.com", ProfilePicture: "uploads/avatar.png"}, nil)

	require.NoError(t, fx.handler.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestUserHandler_Delete_CleansUpProfilePicture(t *testing.T) {
	fx := createTestUserHandler(t)

	id := uuid.New()
	admin := entity.Principal{ID: uuid.New(), Role: entity.RoleAdmin}

	req := httptest.NewRequest(http.MethodDelete, "/users/"+id.String(), nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.Set("principal", admin)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	fx.uc.EXPECT().
		GetProfile(mock.Anything, admin, id).
		Return(&entity.User{ID: id, ProfilePicture: "uploads/avatar.png"}, nil)
	fx.uc.EXPECT().DeleteUser(mock.Anything, admin, id).Return(nil)
	fx.imageStore.EXPECT().Delete(mock.Anything, "uploads/avatar.png").Return(nil)

	require.NoError(t, fx.handler.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
