package api

import (
	"net/http"

	"go.uber.org/zap"

	"turnero/internal/repository"
)

// ListReservations returns all active reservations. The order query parameter
// selects the ordering: "slot" (date, time ascending; the default) or
// "created" (created_at descending).
func (s *Server) ListReservations(w http.ResponseWriter, r *http.Request) {
	order := repository.OrderBySlot
	if r.URL.Query().Get("order") == string(repository.OrderByCreated) {
		order = repository.OrderByCreated
	}

	reservations, err := s.reservations.List(r.Context(), order)
	if err != nil {
		s.log.Error("listing reservations failed",
			zap.String("request_id", RequestIDFrom(r.Context())),
			zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"total":        len(reservations),
		"reservations": reservations,
	})
}
