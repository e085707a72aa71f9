package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/wanderify/oracle/internal/handler/gen"
)

const (
	msgInternal      = "Internal server error"
	msgConfiguration = "Server configuration error"
	msgTooFar        = "Too far from destination"
	msgTooLarge      = "Request body too large"
)

// errorBody returns the error shape shared by every endpoint.
func errorBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: message}
}

// detail extracts the human-readable part that follows sentinel in a wrapped
// error, e.g. "repo.X: validation error: latitude out of range" gives
// "latitude out of range". fallback is used when nothing follows it.
func detail(err, sentinel error, fallback string) string {
	if err == nil {
		return fallback
	}
	msg := err.Error()
	marker := sentinel.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 && i+len(marker) < len(msg) {
		return msg[i+len(marker):]
	}
	return fallback
}

// requestError answers requests rejected before reaching a handler
// (undecodable body, malformed path parameter). A body cut off by
// http.MaxBytesReader gets the same 413 the size middleware sends for an
// oversized Content-Length.
func (s *Server) requestError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.DebugContext(r.Context(), "request rejected", "path", r.URL.Path, "error", err)
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorBody(msgTooLarge))
		return
	}
	writeJSON(w, http.StatusBadRequest, errorBody("Invalid request: "+err.Error()))
}

// responseError answers errors the handlers did not map. Detail goes to the
// log only; the caller gets a generic message.
func (s *Server) responseError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.ErrorContext(r.Context(), "request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", middleware.GetReqID(r.Context()),
		"error", err,
	)
	writeJSON(w, http.StatusInternalServerError, errorBody(msgInternal))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
