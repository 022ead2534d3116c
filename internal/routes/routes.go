package routes

import (
	"embed"
	"html/template"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"bus_ledger/internal/controllers"
	"bus_ledger/internal/ledger"
	"bus_ledger/internal/logger"
	"bus_ledger/internal/middleware"
	"bus_ledger/internal/reports"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Options are the router's collaborators beyond the ledger.
type Options struct {
	Now            controllers.Clock
	AllowedOrigins []string
	// RequestLog receives one line per request; nil disables request logging.
	RequestLog io.Writer
}

func SetupRouter(l *ledger.Ledger, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID())
	if opts.RequestLog != nil {
		r.Use(logger.Requests(opts.RequestLog))
	}
	r.Use(middleware.CORS(opts.AllowedOrigins))

	r.SetHTMLTemplate(template.Must(
		template.New("").Funcs(template.FuncMap{"currency": reports.FormatCurrency}).
			ParseFS(templateFS, "templates/*.tmpl"),
	))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	BusRoutes(api, l)
	RemittanceRoutes(api, l)
	EmployeeRoutes(api, l)
	ReportRoutes(api, l, opts.Now)

	return r
}
