package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/comparepco/comparepco/internal/pkg/models"
	"github.com/comparepco/comparepco/internal/utils"
	"github.com/labstack/echo/v4"
)

const (
	APIKeyHeader = "X-API-Key"
)

// APIKeyMiddleware guards service-to-service routes
type APIKeyMiddleware struct {
	keys map[string]string
}

// NewAPIKeyMiddleware maps calling services to their configured keys. Empty keys are never accepted.
func NewAPIKeyMiddleware(cfg *models.APIKeyConfig) *APIKeyMiddleware {
	return &APIKeyMiddleware{
		keys: map[string]string{
			"deadline-scheduler": cfg.Scheduler,
			"admin-service":      cfg.Admin,
		},
	}
}

// ValidateAPIKey accepts the request when X-API-Key matches one of the allowed services
func (m *APIKeyMiddleware) ValidateAPIKey(allowedServices ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			for _, service := range allowedServices {
				expected := m.keys[service]
				if expected != "" && subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) == 1 {
					c.Set("calling_service", service)
					return next(c)
				}
			}

			return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
		}
	}
}
