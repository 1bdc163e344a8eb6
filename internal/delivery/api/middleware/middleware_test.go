package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
	mockSvc "marketplace/internal/mocks/service"
	mockUsecase "marketplace/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockSvc.MockTokenService, *mockUsecase.MockUserUsecase) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userUC := mockUsecase.NewMockUserUsecase(t)

	return NewAuthMiddleware(AuthMiddlewareParams{
		TokenService: tokenSvc,
		UserUC:       userUC,
		Logger:       newDiscardLogger(),
	}), tokenSvc, userUC
}

func newRequest(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/posts", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

// captureRequester records the requester seen by the next handler.
func captureRequester(seen **entity.Requester, called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true
		*seen = GetRequester(c)

		return c.NoContent(http.StatusNoContent)
	}
}

func TestAuthMiddleware_AuthenticateMissingHeader(t *testing.T) {
	m, _, _ := newAuthMiddleware(t)
	c, rec := newRequest("")

	var seen *entity.Requester
	called := false
	require.NoError(t, m.Authenticate(captureRequester(&seen, &called))(c))

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_AuthenticateNonBearer(t *testing.T) {
	m, _, _ := newAuthMiddleware(t)
	c, rec := newRequest("Basic dXNlcjpwYXNz")

	var seen *entity.Requester
	called := false
	require.NoError(t, m.Authenticate(captureRequester(&seen, &called))(c))

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_AuthenticateResolvesRequester(t *testing.T) {
	m, tokenSvc, userUC := newAuthMiddleware(t)
	userID := uuid.New()
	requester := &entity.Requester{ID: userID, Role: entity.RoleUser, IsPremium: true}

	tokenSvc.EXPECT().ValidateToken("good-token").Return(&service.Claims{UserID: userID, Role: "USER"}, nil).Once()
	userUC.EXPECT().ResolveRequester(mock.Anything, userID).Return(requester, nil).Once()

	c, rec := newRequest("Bearer good-token")

	var seen *entity.Requester
	called := false
	require.NoError(t, m.Authenticate(captureRequester(&seen, &called))(c))

	assert.True(t, called)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Same(t, requester, seen)
}

func TestAuthMiddleware_AuthenticateInvalidToken(t *testing.T) {
	m, tokenSvc, _ := newAuthMiddleware(t)
	tokenSvc.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired")).Once()

	c, rec := newRequest("Bearer expired")

	var seen *entity.Requester
	called := false
	require.NoError(t, m.Authenticate(captureRequester(&seen, &called))(c))

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_AuthenticateDeletedUser(t *testing.T) {
	m, tokenSvc, userUC := newAuthMiddleware(t)
	userID := uuid.New()

	tokenSvc.EXPECT().ValidateToken("orphan").Return(&service.Claims{UserID: userID}, nil).Once()
	userUC.EXPECT().ResolveRequester(mock.Anything, userID).Return(nil, domainerrors.ErrUserNotFound).Once()

	c, rec := newRequest("Bearer orphan")

	var seen *entity.Requester
	called := false
	require.NoError(t, m.Authenticate(captureRequester(&seen, &called))(c))

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_OptionalAllowsAnonymous(t *testing.T) {
	m, _, _ := newAuthMiddleware(t)
	c, rec := newRequest("")

	var seen *entity.Requester
	called := false
	require.NoError(t, m.Optional(captureRequester(&seen, &called))(c))

	assert.True(t, called)
	assert.Nil(t, seen)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthMiddleware_OptionalRejectsBadToken(t *testing.T) {
	m, tokenSvc, _ := newAuthMiddleware(t)
	tokenSvc.EXPECT().ValidateToken("garbage").Return(nil, errors.New("malformed")).Once()

	c, rec := newRequest("Bearer garbage")

	var seen *entity.Requester
	called := false
	require.NoError(t, m.Optional(captureRequester(&seen, &called))(c))

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m, _, _ := newAuthMiddleware(t)
	requireAdmin := m.RequireRole(entity.RoleAdmin)

	tests := []struct {
		name      string
		requester *entity.Requester
		wantCode  int
	}{
		{name: "anonymous", requester: nil, wantCode: http.StatusUnauthorized},
		{name: "user", requester: &entity.Requester{ID: uuid.New(), Role: entity.RoleUser}, wantCode: http.StatusForbidden},
		{name: "admin", requester: &entity.Requester{ID: uuid.New(), Role: entity.RoleAdmin}, wantCode: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newRequest("")
			if tt.requester != nil {
				SetRequester(c, tt.requester)
			}

			var seen *entity.Requester
			called := false
			require.NoError(t, requireAdmin(captureRequester(&seen, &called))(c))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantCode == http.StatusNoContent, called)
		})
	}
}

func TestRateLimiter_DisabledPassesThrough(t *testing.T) {
	limiter := NewRateLimiter(&config.Config{}, newDiscardLogger())
	assert.Nil(t, limiter)

	c, rec := newRequest("")
	var seen *entity.Requester
	called := false
	require.NoError(t, limiter.Limit(captureRequester(&seen, &called))(c))

	assert.True(t, called)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRateLimiter_RejectsAfterBurst(t *testing.T) {
	limiter := NewRateLimiter(&config.Config{
		RateLimit: &config.RateLimitConfig{Enabled: true, RPS: 0.001, Burst: 2},
	}, newDiscardLogger())
	require.NotNil(t, limiter)

	next := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }
	handler := limiter.Limit(next)

	for range 2 {
		c, rec := newRequest("")
		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}

	c, rec := newRequest("")
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	m := NewErrorMiddleware(newDiscardLogger())

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{name: "app error", err: errors.Wrap(domainerrors.ErrPostNotFound, "load post"), wantCode: http.StatusNotFound, wantBody: "POST_NOT_FOUND"},
		{name: "echo error", err: echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"), wantCode: http.StatusMethodNotAllowed, wantBody: "HTTP_ERROR"},
		{name: "unknown error", err: errors.New("connection reset"), wantCode: http.StatusInternalServerError, wantBody: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newRequest("")

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.NotContains(t, rec.Body.String(), "connection reset")
		})
	}
}
