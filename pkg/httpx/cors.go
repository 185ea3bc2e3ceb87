package httpx

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS allows credentialed requests from a single browser origin. Preflights
// are answered with 204 and never reach the wrapped handler. An empty origin
// disables CORS headers entirely.
func CORS(origin string) Middleware {
	if origin == "" {
		return func(next http.Handler) http.Handler { return next }
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{origin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           600,
	})
	return c.Handler
}
