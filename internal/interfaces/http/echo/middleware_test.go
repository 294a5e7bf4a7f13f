package echo_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	httpecho "github.com/mohammadpnp/user-registry/internal/interfaces/http/echo"
	"github.com/mohammadpnp/user-registry/internal/logging"
	"github.com/sirupsen/logrus"
)

func TestRequestLoggerAttachesEntry(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, "info", "json")

	e := echo.New()
	e.Use(middleware.RequestID())
	e.Use(httpecho.RequestLogger(logger))
	e.GET("/ping", func(c echo.Context) error {
		logging.FromContext(c.Request().Context(), logrus.StandardLogger()).Info("inside handler")
		return c.String(http.StatusOK, "pong")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d: %s", len(lines), buf.String())
	}

	var inside, done map[string]any
	if err := json.Unmarshal(lines[0], &inside); err != nil {
		t.Fatalf("unexpected log json: %v", err)
	}
	if err := json.Unmarshal(lines[1], &done); err != nil {
		t.Fatalf("unexpected log json: %v", err)
	}
	if inside["route"] != "/ping" || inside["request_id"] == "" {
		t.Fatalf("request fields missing from handler log: %#v", inside)
	}
	if done["status"] != float64(http.StatusOK) {
		t.Fatalf("unexpected status field: %#v", done["status"])
	}
}
