package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/validator"
	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	return e
}

type requestSpec struct {
	method    string
	target    string
	body      string
	params    map[string]string
	requester *entity.Requester
}

func newContext(e *echo.Echo, spec requestSpec) (echo.Context, *httptest.ResponseRecorder) {
	var body io.Reader
	if spec.body != "" {
		body = strings.NewReader(spec.body)
	}

	req := httptest.NewRequest(spec.method, spec.target, body)
	if spec.body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if len(spec.params) > 0 {
		names := make([]string, 0, len(spec.params))
		values := make([]string, 0, len(spec.params))
		for name, value := range spec.params {
			names = append(names, name)
			values = append(values, value)
		}
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}

	if spec.requester != nil {
		middleware.SetRequester(c, spec.requester)
	}

	return c, rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
		Page      *int   `json:"page"`
		Limit     *int   `json:"limit"`
		Total     *int64 `json:"total"`
	} `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func newRequester(role entity.Role) *entity.Requester {
	return &entity.Requester{ID: uuid.New(), Role: role}
}

func intPtr(v int) *int {
	return &v
}
