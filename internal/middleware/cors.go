package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type CORSConfig struct {
	AllowOrigins     []string
	AllowCredentials bool
	MaxAgeSeconds    int
}

// DefaultCORSConfig permits any origin. Hospital deployments pin
// AllowOrigins to the portal host instead.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowCredentials: true,
		MaxAgeSeconds:    86400,
	}
}

// CORS handles preflight and response headers. Allowed methods and
// headers are fixed; only the origin list varies per deployment, so the
// static header values are computed once.
func CORS(config CORSConfig) gin.HandlerFunc {
	methods := strings.Join([]string{
		http.MethodGet,
		http.MethodPost,
		http.MethodPut,
		http.MethodDelete,
		http.MethodOptions,
	}, ", ")
	headers := strings.Join([]string{
		"Origin", "Content-Type", "Accept", "Authorization",
	}, ", ")
	exposed := strings.Join([]string{"Content-Length", HeaderXRequestID}, ", ")
	maxAge := strconv.Itoa(config.MaxAgeSeconds)

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if allowed := resolveOrigin(config, origin); allowed != "" {
			c.Header("Access-Control-Allow-Origin", allowed)
			if config.AllowCredentials {
				c.Header("Access-Control-Allow-Credentials", "true")
			}
		}
		c.Header("Access-Control-Allow-Methods", methods)
		c.Header("Access-Control-Allow-Headers", headers)
		c.Header("Access-Control-Expose-Headers", exposed)
		c.Header("Access-Control-Max-Age", maxAge)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func resolveOrigin(config CORSConfig, origin string) string {
	for _, o := range config.AllowOrigins {
		if o == origin {
			return origin
		}
		if o == "*" {
			// Credentials forbid a literal wildcard, so echo the caller.
			if config.AllowCredentials && origin != "" {
				return origin
			}
			return "*"
		}
	}
	return ""
}
