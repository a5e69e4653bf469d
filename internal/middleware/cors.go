package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS returns the permissive cross-origin policy: all origins, methods and
// headers, credentials allowed. A known security trade-off inherited from the
// API contract, not something to tighten silently.
func CORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		// AllowAllOrigins cannot be combined with credentials, so echo every
		// origin back instead.
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
