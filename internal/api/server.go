package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"turnero/internal/service"
	"turnero/internal/tool"
)

const serviceName = "turnero booking service"

// Server holds the transport adapters. Every tool endpoint is a thin shape
// adapter around the same dispatcher; none of them carries tool logic.
type Server struct {
	dispatcher   *tool.Dispatcher
	registry     *tool.Registry
	reservations *service.ReservationService
	log          *zap.Logger
}

func NewServer(dispatcher *tool.Dispatcher, registry *tool.Registry, reservations *service.ReservationService, log *zap.Logger) *Server {
	return &Server{
		dispatcher:   dispatcher,
		registry:     registry,
		reservations: reservations,
		log:          log,
	}
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestID, s.accessLog)

	r.HandleFunc("/", s.Health).Methods("GET")
	r.HandleFunc("/api/tools", s.Discover).Methods("GET")

	// The literal route must be registered before the {name} route.
	r.HandleFunc("/api/tools/call", s.CallBody).Methods("POST")
	r.HandleFunc("/api/tools/{name}", s.CallPath).Methods("POST")
	r.HandleFunc("/api/call", s.CallQuery).Methods("POST")

	r.HandleFunc("/api/reservations", s.ListReservations).Methods("GET")

	return r
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
