package middleware

import (
	"github.com/rs/cors"
)

// SetupCORS restricts cross-origin access to the configured storefront
// origin; only the methods and headers the client actually uses are allowed.
func (mw *Middleware) SetupCORS() *cors.Cors {
	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   mw.cfg.Cors.AllowOrigins,
		AllowedMethods:   mw.cfg.Cors.AllowMethods,
		AllowedHeaders:   mw.cfg.Cors.AllowHeaders,
		ExposedHeaders:   mw.cfg.Cors.ExposedHeaders,
		AllowCredentials: mw.cfg.Cors.AllowCredentials,
	})

	return corsMiddleware
}
