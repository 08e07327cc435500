package delivery

import (
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/Jachacon12/arquitectura-de-servidores/internal/delivery/handler"
	"github.com/Jachacon12/arquitectura-de-servidores/internal/delivery/middleware"
	"github.com/Jachacon12/arquitectura-de-servidores/internal/infrastructure"
)

// NewRouter wires the public auth endpoints and the protected citation
// resource under /api.
func NewRouter(
	userHandler *handler.UserHandler,
	citationHandler *handler.CitationHandler,
	jwtService *infrastructure.JWTService,
	tokenCache middleware.TokenCache,
	limiter *rate.Limiter,
) *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Recover)
	api.Use(middleware.RequestID)
	api.Use(middleware.Logging)
	if limiter != nil {
		api.Use(middleware.RateLimit(limiter))
	}

	// Public routes
	api.HandleFunc("/users", userHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/users/verify/{token}", userHandler.Verify).Methods(http.MethodGet)
	api.HandleFunc("/login", userHandler.Login).Methods(http.MethodPost)

	// Protected routes
	authRequired := middleware.Auth(jwtService, tokenCache)
	api.Handle("/users/me", authRequired(http.HandlerFunc(userHandler.Me))).Methods(http.MethodGet)

	citations := api.PathPrefix("/citations").Subrouter()
	citations.Use(authRequired)
	citations.HandleFunc("", citationHandler.Create).Methods(http.MethodPost)
	citations.HandleFunc("", citationHandler.List).Methods(http.MethodGet)
	citations.HandleFunc("/{id}", citationHandler.GetById).Methods(http.MethodGet)
	citations.HandleFunc("/{id}", citationHandler.Update).Methods(http.MethodPatch)
	citations.HandleFunc("/{id}", citationHandler.Delete).Methods(http.MethodDelete)

	return r
}
