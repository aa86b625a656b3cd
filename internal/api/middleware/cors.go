package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// SecureCORS returns CORS middleware for the JSON endpoints. Origins come
// from configuration; wildcard is never honored when appEnv is production.
func SecureCORS(allowedOrigins, appEnv string) echo.MiddlewareFunc {
	if allowedOrigins == "" {
		// Default to localhost only in development
		allowedOrigins = "http://localhost:3000"
	}

	origins := strings.Split(allowedOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	if appEnv == "production" {
		filtered := make([]string, 0, len(origins))
		for _, origin := range origins {
			if origin != "*" {
				filtered = append(filtered, origin)
			}
		}
		origins = filtered
		if len(origins) == 0 {
			origins = []string{"http://localhost:3000"}
		}
	}

	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     origins,
		AllowMethods:     []string{echo.GET, echo.POST, echo.OPTIONS},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
