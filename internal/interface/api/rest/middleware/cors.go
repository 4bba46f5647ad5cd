package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"user-directory-api/config"
)

// CORS wraps the whole handler so preflight requests never reach the router.
func CORS(cfg config.CORS, h http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		MaxAge:         600,
	}).Handler(h)
}
