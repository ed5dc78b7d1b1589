package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/wb-go/wbf/ginext"
)

// CORS keeps the permissive policy the UI relies on: any origin, the methods
// the API serves.
func CORS() ginext.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Content-Type", "Authorization", "X-Request-ID"}

	return cors.New(cfg)
}
