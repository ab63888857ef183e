package api

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	apperrors "turnero/internal/errors"
	"turnero/internal/tool"
)

// CallBody handles the body shape: tool name and arguments both in the JSON
// body. Results are rendered as the structured envelope.
func (s *Server) CallBody(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      string         `json:"name"`
		Arguments map[string]any `json:"arguments"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := s.dispatcher.Dispatch(r.Context(), req.Name, req.Arguments)
	if err != nil {
		s.writeDispatchError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tool.RenderJSON(res))
}

// CallPath handles the path shape: tool name as the last path segment, the
// whole body as the argument map. Results are rendered as the text envelope.
func (s *Server) CallPath(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	args, ok := decodeArgs(w, r)
	if !ok {
		return
	}

	res, err := s.dispatcher.Dispatch(r.Context(), name, args)
	if err != nil {
		s.writeDispatchError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tool.RenderText(res))
}

// CallQuery handles the query shape: tool name in the "tool" query parameter,
// arguments in the body. Results are rendered as the structured envelope.
func (s *Server) CallQuery(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("tool")

	args, ok := decodeArgs(w, r)
	if !ok {
		return
	}

	res, err := s.dispatcher.Dispatch(r.Context(), name, args)
	if err != nil {
		s.writeDispatchError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tool.RenderJSON(res))
}

// Discover returns every registered tool's static metadata verbatim.
func (s *Server) Discover(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"tools": s.registry.Descriptors()})
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "running",
		"service": serviceName,
	})
}

// decodeArgs reads an argument map from the request body. An empty body is a
// valid empty argument map; get_services is called that way.
func decodeArgs(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	var args map[string]any
	if err := json.NewDecoder(r.Body).Decode(&args); err != nil {
		if stderrors.Is(err, io.EOF) {
			return map[string]any{}, true
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	if args == nil {
		args = map[string]any{}
	}
	return args, true
}

// writeDispatchError maps dispatcher routing failures and infrastructure
// faults to HTTP statuses. Domain failures never reach this path; they come
// back as failed tool results.
func (s *Server) writeDispatchError(w http.ResponseWriter, r *http.Request, err error) {
	var unknownTool *apperrors.UnknownToolError
	var missingParam *apperrors.MissingParameterError

	switch {
	case stderrors.Is(err, apperrors.ErrMissingToolName):
		writeError(w, http.StatusBadRequest, err.Error())
	case stderrors.As(err, &unknownTool):
		writeError(w, http.StatusNotFound, err.Error())
	case stderrors.As(err, &missingParam):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		s.log.Error("tool dispatch failed",
			zap.String("request_id", RequestIDFrom(r.Context())),
			zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
