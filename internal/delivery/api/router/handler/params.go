package handler

import (
	"strconv"
	"strings"

	"marketplace/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func parseUUIDParam(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

// optionalIntQuery returns nil when the parameter is absent or blank.
func optionalIntQuery(c echo.Context, name string) (*int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

// intQuery returns 0 when the parameter is absent.
func intQuery(c echo.Context, name string) (int, error) {
	v, err := optionalIntQuery(c, name)
	if err != nil || v == nil {
		return 0, err
	}

	return *v, nil
}

func errInvalidQueryParam(name string) error {
	return errors.Errorf("invalid value for query parameter %s", name)
}
