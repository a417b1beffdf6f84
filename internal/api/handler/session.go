package handler

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"attendance.service/internal/core"
)

const sessionHeader = "X-Session-Token"

type sessionCtxKey struct{}

// RequireSession resolves the session token header and rejects requests
// without a live session. The session rides the request context from here.
func (h *Handler) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(sessionHeader)
		if token == "" {
			http.Error(w, "Session required", http.StatusUnauthorized)
			return
		}

		session, ok := h.Sessions.Get(token)
		if !ok {
			http.Error(w, "Session expired or unknown", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), sessionCtxKey{}, session)
		trace.SpanFromContext(ctx).SetAttributes(attribute.String("app.userId", session.User.ID))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionFrom(r *http.Request) (*core.Session, bool) {
	s, ok := r.Context().Value(sessionCtxKey{}).(*core.Session)
	return s, ok
}
