package middleware

import (
	"github.com/rs/cors"

	"github.com/cours-de-latin/lingua/internal/config"
)

// CORS returns middleware handling Cross-Origin Resource Sharing for the
// origins, methods and headers of cfg. Preflight requests are answered
// without reaching the wrapped handler.
func CORS(cfg config.CORSConfig) Middleware {
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Origins(),
		AllowedMethods:   cfg.Methods(),
		AllowedHeaders:   cfg.Headers(),
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
	return c.Handler
}
