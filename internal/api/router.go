package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"attendance.service/internal/api/handler"
)

// NewRouter sets up the gorilla/mux router and defines all API routes.
func NewRouter(h *handler.Handler) *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/auth/register", h.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", h.Logout).Methods(http.MethodPost)

	// Stateless dry-run validation; carries no user data.
	api.HandleFunc("/location/validate", h.ValidateLocation).Methods(http.MethodPost)

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Service is operational."))
	}).Methods(http.MethodGet)

	// Everything below needs a live session.
	protected := api.NewRoute().Subrouter()
	protected.Use(h.RequireSession)
	protected.HandleFunc("/attendance", h.RecordAttendance).Methods(http.MethodPost)
	protected.HandleFunc("/attendance/today", h.Today).Methods(http.MethodGet)
	protected.HandleFunc("/attendance/history", h.History).Methods(http.MethodGet)

	return r
}
