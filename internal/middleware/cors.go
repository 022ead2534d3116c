package middleware

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS lets the browser dashboard call the API. "*" or an empty list
// accepts any origin.
func CORS(allowed []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowHeaders:  []string{"Origin", "Content-Type", RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(allowed) == 0 || slices.Contains(allowed, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowed
	}
	return cors.New(cfg)
}
