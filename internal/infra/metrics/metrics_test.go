package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "marketplace/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	return string(body)
}

func TestMetrics_DomainCounters(t *testing.T) {
	m := New()

	m.VoteCast("upvote")
	m.VoteCast("upvote")
	m.ModerationApplied("APPROVED")

	body := scrape(t, m)

	assert.Contains(t, body, `marketplace_post_votes_total{action="upvote"} 2`)
	assert.Contains(t, body, `marketplace_post_moderations_total{status="APPROVED"} 1`)
	assert.Contains(t, body, "go_goroutines")
}

func TestMetrics_Middleware(t *testing.T) {
	m := New()
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/posts/:id", func(c echo.Context) error {
		if c.Param("id") == "missing" {
			return domainerrors.ErrPostNotFound
		}

		return c.NoContent(http.StatusOK)
	})

	for _, id := range []string{"a", "missing"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/posts/"+id, nil))
	}

	body := scrape(t, m)

	assert.Contains(t, body, `marketplace_http_requests_total{code="200",method="GET",route="/posts/:id"} 1`)
	assert.Contains(t, body, `marketplace_http_requests_total{code="404",method="GET",route="/posts/:id"} 1`)
	assert.Contains(t, body, `marketplace_http_request_duration_seconds_count{method="GET",route="/posts/:id"} 2`)
}
