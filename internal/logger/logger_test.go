package logger

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
)

func restoreLogrus(t *testing.T) {
	out, level, formatter := logrus.StandardLogger().Out, logrus.GetLevel(), logrus.StandardLogger().Formatter
	t.Cleanup(func() {
		logrus.SetOutput(out)
		logrus.SetLevel(level)
		logrus.SetFormatter(formatter)
	})
}

func TestSetupWritesToRotatedFile(t *testing.T) {
	restoreLogrus(t)
	file := filepath.Join(t.TempDir(), "logs", "app.log")

	if _, err := Setup(Options{File: file, Level: "debug", MaxSizeMB: 1}); err != nil {
		t.Fatalf("setup: %v", err)
	}
	logrus.WithField("bus_id", 7).Info("bus saved")

	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "bus saved") || !strings.Contains(string(data), "bus_id=7") {
		t.Fatalf("unexpected log content %q", data)
	}
	if !logrus.IsLevelEnabled(logrus.DebugLevel) {
		t.Fatal("debug level not applied")
	}
}

func TestSetupRejectsUnknownLevel(t *testing.T) {
	restoreLogrus(t)
	if _, err := Setup(Options{Level: "loud"}); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
}

func TestRequestsSkipsHealthz(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer

	r := gin.New()
	r.Use(Requests(&buf))
	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/api/buses", func(c *gin.Context) { c.Status(http.StatusOK) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if buf.Len() != 0 {
		t.Fatalf("healthz should not be logged, got %q", buf.String())
	}

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/buses", nil))
	if !strings.Contains(buf.String(), "/api/buses") {
		t.Fatalf("expected request line, got %q", buf.String())
	}
}
