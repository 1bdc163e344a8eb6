package middleware

import (
	"log/slog"
	"strings"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const requesterKey = "requester"

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	UserUC       usecase.UserUsecase
	Logger       *slog.Logger
}

// AuthMiddleware resolves the bearer token into an entity.Requester.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userUC   usecase.UserUsecase
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc: params.TokenService,
		userUC:   params.UserUC,
		logger:   params.Logger,
	}
}

// Authenticate rejects requests without a valid access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		return m.resolve(c, authHeader, next)
	}
}

// Optional attaches the requester when a token is sent and lets anonymous
// requests through. A token that is sent but invalid is still rejected.
func (m *AuthMiddleware) Optional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return next(c)
		}

		return m.resolve(c, authHeader, next)
	}
}

// RequireRole must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requester := GetRequester(c)
			if requester == nil {
				return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
			}

			for _, role := range roles {
				if requester.Role == role {
					return next(c)
				}
			}

			return response.HandleAppError(c, domainerrors.ErrForbidden)
		}
	}
}

func (m *AuthMiddleware) resolve(c echo.Context, authHeader string, next echo.HandlerFunc) error {
	tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok || tokenString == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
	}

	claims, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
	}

	requester, err := m.userUC.ResolveRequester(c.Request().Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return response.Unauthorized(c, "INVALID_TOKEN", "Token subject no longer exists")
		}

		return err
	}

	SetRequester(c, requester)

	return next(c)
}

// GetRequester returns the requester stored by the auth middleware, or nil
// for anonymous requests.
func GetRequester(c echo.Context) *entity.Requester {
	requester, _ := c.Get(requesterKey).(*entity.Requester)

	return requester
}

// SetRequester stores the resolved requester on the echo context.
func SetRequester(c echo.Context, requester *entity.Requester) {
	c.Set(requesterKey, requester)
}
