package app

import (
	"qrlink/internal/handlers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// InitMiddleware - initializes middleware handlers for the router.
func InitMiddleware(r *chi.Mux, ctrl *handlers.Controller) {
	r.Use(middleware.Recoverer)
	r.Use(ctrl.LoggingMiddleware)
}

// Routing - registers routes for the redirect controller.
// Registered routes:
//   - GET "/": static plaintext acknowledgment through ctrl.Healthz().
//   - GET "/x": redirect to the configured target through ctrl.Redirect().
func Routing(r *chi.Mux, ctrl *handlers.Controller) {
	r.Get("/", ctrl.Healthz())
	r.Get("/x", ctrl.Redirect())
}
