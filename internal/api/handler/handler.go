package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"attendance.service/internal/core"
	"attendance.service/internal/core/model"
	"attendance.service/internal/geo"
	"attendance.service/internal/geofence"
)

// Handler bundles the HTTP endpoints around the core services.
type Handler struct {
	Auth       *core.AuthService
	Sessions   *core.SessionManager
	Attendance *core.AttendanceService
	Validator  *geofence.Validator
}

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	DNI       string `json:"dni"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type attendanceRequest struct {
	Type           model.EventType `json:"type"`
	Latitude       float64         `json:"latitude"`
	Longitude      float64         `json:"longitude"`
	AccuracyMeters float64         `json:"accuracyMeters"`
	PhotoRef       string          `json:"photoRef"`
	Shift          model.Shift     `json:"shift,omitempty"`
}

type locationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type errorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

// Register handles POST /auth/register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		http.Error(w, "email and password are required", http.StatusBadRequest)
		return
	}

	user, err := h.Auth.Register(r.Context(), core.RegisterRequest{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		DNI:       req.DNI,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// Login handles POST /auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	session, err := h.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// Logout handles POST /auth/logout.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Auth.Logout(r.Header.Get(sessionHeader))
	w.WriteHeader(http.StatusNoContent)
}

// RecordAttendance handles POST /attendance: it validates the reported
// location against the geofence and, when valid, records the event.
func (h *Handler) RecordAttendance(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFrom(r)
	if !ok {
		http.Error(w, "Session required", http.StatusUnauthorized)
		return
	}

	var req attendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	loc := geo.Coordinate{Lat: req.Latitude, Lng: req.Longitude}
	if err := loc.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.PhotoRef == "" {
		http.Error(w, "photoRef is required", http.StatusBadRequest)
		return
	}

	validation := h.Validator.Validate(r.Context(), loc)

	record, err := h.Attendance.RecordEvent(r.Context(), core.RecordRequest{
		UserID:         session.User.ID,
		Type:           req.Type,
		Location:       loc,
		AccuracyMeters: req.AccuracyMeters,
		PhotoRef:       req.PhotoRef,
		Shift:          req.Shift,
		Validation:     validation,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, record)
}

// Today handles GET /attendance/today.
func (h *Handler) Today(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFrom(r)
	if !ok {
		http.Error(w, "Session required", http.StatusUnauthorized)
		return
	}

	records, err := h.Attendance.TodayRecords(r.Context(), session.User.ID)
	if err != nil {
		http.Error(w, "Service error loading records", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// History handles GET /attendance/history.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFrom(r)
	if !ok {
		http.Error(w, "Session required", http.StatusUnauthorized)
		return
	}

	records, err := h.Attendance.History(r.Context(), session.User.ID)
	if err != nil {
		http.Error(w, "Service error loading records", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// ValidateLocation handles POST /location/validate: the pre-capture dry run
// the app shows before asking for the photo.
func (h *Handler) ValidateLocation(w http.ResponseWriter, r *http.Request) {
	var req locationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	loc := geo.Coordinate{Lat: req.Latitude, Lng: req.Longitude}
	if err := loc.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, h.Validator.Validate(r.Context(), loc))
}

// writeDomainError maps core rejection reasons onto HTTP statuses.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrAlreadyCheckedIn):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error(), Reason: "ALREADY_CHECKED_IN"})
	case errors.Is(err, core.ErrAlreadyCheckedOut):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error(), Reason: "ALREADY_CHECKED_OUT"})
	case errors.Is(err, core.ErrCheckInRequired):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error(), Reason: "CHECK_IN_REQUIRED"})
	case errors.Is(err, core.ErrLocationOutOfRange):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Reason: "LOCATION_OUT_OF_RANGE"})
	case errors.Is(err, core.ErrInvalidEventType):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Reason: "INVALID_EVENT_TYPE"})
	case errors.Is(err, core.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error(), Reason: "INVALID_CREDENTIALS"})
	case errors.Is(err, core.ErrEmailTaken):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error(), Reason: "EMAIL_TAKEN"})
	default:
		http.Error(w, "Service error processing request", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
