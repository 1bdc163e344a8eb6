package handler

import (
	"net/http"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockUsecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthHandler(t *testing.T) (*AuthHandler, *mockUsecase.MockUserUsecase) {
	userUC := mockUsecase.NewMockUserUsecase(t)

	return NewAuthHandler(AuthHandlerParams{UserUC: userUC, Logger: newDiscardLogger()}), userUC
}

func TestAuthHandler_RegisterHidesPasswordHash(t *testing.T) {
	h, userUC := newAuthHandler(t)
	input := usecase.RegisterUserInput{Name: "Karim", Email: "karim@example.com", Password: "secret1"}

	userUC.EXPECT().Register(mock.Anything, input).Return(&entity.User{
		ID:           uuid.New(),
		Name:         "Karim",
		Email:        "karim@example.com",
		PasswordHash: "$2a$10$hash",
		Role:         entity.RoleUser,
	}, nil).Once()

	c, rec := newContext(newTestEcho(), requestSpec{
		method: http.MethodPost,
		target: "/api/v1/auth/register",
		body:   `{"name":"Karim","email":"karim@example.com","password":"secret1"}`,
	})

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	body := string(decodeEnvelope(t, rec).Data)
	assert.Contains(t, body, `"role":"USER"`)
	assert.NotContains(t, body, "$2a$10$hash")
}

func TestAuthHandler_RegisterAdminUsesAdminFlow(t *testing.T) {
	h, userUC := newAuthHandler(t)
	input := usecase.RegisterUserInput{Name: "Root", Email: "root@example.com", Password: "secret1"}

	userUC.EXPECT().RegisterAdmin(mock.Anything, input).
		Return(&entity.User{ID: uuid.New(), Name: "Root", Email: "root@example.com", Role: entity.RoleAdmin}, nil).Once()

	c, rec := newContext(newTestEcho(), requestSpec{
		method: http.MethodPost,
		target: "/api/v1/auth/register-admin",
		body:   `{"name":"Root","email":"root@example.com","password":"secret1"}`,
	})

	require.NoError(t, h.RegisterAdmin(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"role":"ADMIN"`)
}

func TestAuthHandler_RegisterValidation(t *testing.T) {
	h, _ := newAuthHandler(t)

	c, rec := newContext(newTestEcho(), requestSpec{
		method: http.MethodPost,
		target: "/api/v1/auth/register",
		body:   `{"name":"Karim","email":"not-an-email","password":"123"}`,
	})

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	details, ok := env.Error.Details.([]any)
	require.True(t, ok)
	assert.Len(t, details, 2)
}

func TestAuthHandler_RegisterDuplicateEmail(t *testing.T) {
	h, userUC := newAuthHandler(t)

	userUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists).Once()

	c, rec := newContext(newTestEcho(), requestSpec{
		method: http.MethodPost,
		target: "/api/v1/auth/register",
		body:   `{"name":"Karim","email":"karim@example.com","password":"secret1"}`,
	})

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	h, userUC := newAuthHandler(t)

	userUC.EXPECT().Login(mock.Anything, usecase.LoginInput{Email: "karim@example.com", Password: "secret1"}).
		Return(&usecase.LoginOutput{
			AccessToken:  "access",
			RefreshToken: "refresh",
			User:         &entity.User{ID: uuid.New(), Email: "karim@example.com", Role: entity.RoleUser},
		}, nil).Once()

	c, rec := newContext(newTestEcho(), requestSpec{
		method: http.MethodPost,
		target: "/api/v1/auth/login",
		body:   `{"email":"karim@example.com","password":"secret1"}`,
	})

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"accessToken":"access"`)
}

func TestAuthHandler_LoginWrongPassword(t *testing.T) {
	h, userUC := newAuthHandler(t)

	userUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials).Once()

	c, rec := newContext(newTestEcho(), requestSpec{
		method: http.MethodPost,
		target: "/api/v1/auth/login",
		body:   `{"email":"karim@example.com","password":"wrong-one"}`,
	})

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decodeEnvelope(t, rec).Error.Code)
}
