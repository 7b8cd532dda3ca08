package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/pullpane/pullpane-go/pkg/config"
)

// CORSMiddleware provides CORS configuration for preview pages served from
// other origins.
func CORSMiddleware() gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowOrigins: config.AllowedOrigins,
		AllowMethods: []string{
			"GET", "POST", "OPTIONS",
		},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Accept",
			"X-PullPane-Session-ID", "X-Requested-With",
			"hx-current-url", "hx-request", "hx-target", "hx-trigger", "hx-boosted",
			"hx-trigger-name",
			"Cache-Control",
		},
		AllowCredentials: true,
		ExposeHeaders: []string{
			"Content-Type", "Cache-Control",
		},
	}

	return cors.New(corsConfig)
}
