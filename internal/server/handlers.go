package server

import (
	"encoding/json"
	"net/http"

	"wrestler_elo/internal/app"
	"wrestler_elo/internal/domain/elo"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

// HealthCheck returns service health
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": ServiceName,
	})
}

// Brands returns the brand options of the multi-select
func (s *Server) Brands(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, elo.BrandOptions())
}

// WrestlerElos returns one page of the filtered, sorted Elo table
func (s *Server) WrestlerElos(w http.ResponseWriter, r *http.Request) {
	state, err := parseViewState(r.URL.Query(), s.columns)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := s.fetcher.Fetch(r.Context())
	if result.Status == app.QueryFailure {
		log.Error().
			Err(result.Err).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("Wrestler stats unavailable")
		respondError(w, http.StatusBadGateway, "wrestler stats unavailable")
		return
	}

	respondJSON(w, http.StatusOK, elo.Render(s.columns, result, state))
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Warn().Err(err).Msg("Failed to write JSON response")
	}
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
