// Package transport wires the screening pipeline to HTTP: a single
// POST /screen route, the fixed response envelopes §6 of the design
// defines, and inbound request throttling.
package transport

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/nycopportunity/benefits-screener/ratelimit"
	"github.com/nycopportunity/benefits-screener/screening"
)

// successEnvelope is the 200 response body.
type successEnvelope struct {
	Success               bool     `json:"success"`
	EligiblePrograms      []string `json:"eligible_programs"`
	TotalProgramsEligible int      `json:"total_programs_eligible"`
}

// errorEnvelope is every non-200 response body.
type errorEnvelope struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors"`
}

// NewRouter builds the chi router serving the screening endpoint.
func NewRouter(limiter *ratelimit.Limiter) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestID)
	r.Use(throttle(limiter))

	r.Post("/screen", handleScreen)

	return r
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(withRequestID(r.Context(), id)))
	})
}

func throttle(limiter *ratelimit.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter != nil && !limiter.Allow() {
				writeJSON(w, http.StatusTooManyRequests, errorEnvelope{
					Success: false,
					Errors:  []string{"Too many requests"},
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func handleScreen(w http.ResponseWriter, r *http.Request) {
	requestID, _ := requestIDFromContext(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		slog.Warn("failed to read request body", "requestId", requestID, "error", err)
		writeJSON(w, http.StatusBadRequest, errorEnvelope{
			Success: false,
			Errors:  []string{"Invalid JSON in request body"},
		})
		return
	}

	if !json.Valid(body) {
		writeJSON(w, http.StatusBadRequest, errorEnvelope{
			Success: false,
			Errors:  []string{"Invalid JSON in request body"},
		})
		return
	}

	resp := screening.Screen(body)

	switch {
	case resp.InternalError:
		slog.Error("screening failed with an internal error", "requestId", requestID)
		writeJSON(w, http.StatusInternalServerError, errorEnvelope{
			Success: false,
			Errors:  []string{"Internal server error"},
		})
	case !resp.Success:
		writeJSON(w, http.StatusBadRequest, errorEnvelope{
			Success: false,
			Errors:  resp.Errors,
		})
	default:
		writeJSON(w, http.StatusOK, successEnvelope{
			Success:               true,
			EligiblePrograms:       resp.EligiblePrograms,
			TotalProgramsEligible: resp.TotalProgramsEligible,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response body", "error", err)
	}
}
