package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	applogger "StackSim/pkg/logger"

	"github.com/labstack/echo/v4"
)

func fileLogger(t *testing.T) (*applogger.Logger, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.log")
	l, err := applogger.New(&applogger.Config{Level: "info", Format: "json", Output: path})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l, path
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	return string(b)
}

func TestRequestLoggingEmitsStructuredEntry(t *testing.T) {
	l, path := fileLogger(t)

	e := echo.New()
	e.Use(RequestLogging(l))
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}

	out := readLog(t, path)
	for _, want := range []string{`"message":"http request"`, `"method":"GET"`, `"uri":"/ping"`, `"status":200`} {
		if !strings.Contains(out, want) {
			t.Fatalf("log entry missing %s in %q", want, out)
		}
	}
}

func TestRecoverTurnsPanicInto500(t *testing.T) {
	l, path := fileLogger(t)

	e := echo.New()
	e.Use(Recover(l))
	e.GET("/boom", func(c echo.Context) error {
		panic("kaboom")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	out := readLog(t, path)
	if !strings.Contains(out, `"message":"panic recovered"`) {
		t.Fatalf("panic not logged: %q", out)
	}
	if !strings.Contains(out, "kaboom") {
		t.Fatalf("panic value not logged: %q", out)
	}
}

func TestRecoverPassesThroughNormalRequests(t *testing.T) {
	l, _ := fileLogger(t)

	e := echo.New()
	e.Use(Recover(l))
	e.GET("/ok", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("unexpected status %d", rec.Code)
	}
}
