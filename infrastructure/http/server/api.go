package server

import (
	"errors"
	"io"
	"net/http"

	"ml-showcase/domain"
	apperrors "ml-showcase/errors"
	"ml-showcase/observability"
)

const internalErrorMessage = "internal server error"

type predictRequest struct {
	Text string `json:"text"`
}

type predictResponse struct {
	Success    bool                    `json:"success"`
	Prediction domain.PredictionResult `json:"prediction"`
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Success  bool           `json:"success"`
	Response any            `json:"response"`
	History  []domain.Entry `json:"history"`
}

type modelsResponse struct {
	Models []string `json:"models"`
}

type agentsResponse struct {
	Agents []domain.AgentInfo `json:"agents"`
}

type healthResponse struct {
	Status        string                     `json:"status"`
	App           string                     `json:"app"`
	Version       string                     `json:"version"`
	Environment   string                     `json:"environment"`
	UptimeSeconds float64                    `json:"uptime_seconds"`
	CachedModels  []string                   `json:"cached_models"`
	Process       observability.ProcessStats `json:"process"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handlePredictSentiment(w http.ResponseWriter, r *http.Request) {
	var body predictRequest
	if !s.decode(w, r, &body) {
		return
	}
	prediction, err := s.sentiment.Predict(r.Context(), body.Text)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, predictResponse{Success: true, Prediction: prediction})
}

func (s *Server) handleListModels(w http.ResponseWriter, r *http.Request) {
	models, err := s.models.List()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, modelsResponse{Models: models})
}

// handleAgentChat resolves the agent before reading the body, so an unknown
// id is a 404 whatever the payload.
func (s *Server) handleAgentChat(w http.ResponseWriter, r *http.Request) {
	agentID := domain.AgentID(r.PathValue("agentId"))
	if _, err := s.chat.Agent(agentID); err != nil {
		s.writeError(w, r, err)
		return
	}
	var body chatRequest
	if !s.decode(w, r, &body) {
		return
	}
	reply, err := s.chat.Chat(r.Context(), agentID, body.Message)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, chatResponse{Success: true, Response: reply.Response, History: reply.History})
}

func (s *Server) handleListAgents(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, agentsResponse{Agents: s.chat.Agents()})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	stats := s.monitor.GetLatest()
	s.writeJSON(w, http.StatusOK, healthResponse{
		Status:        "ok",
		App:           s.config.AppName,
		Version:       s.config.AppVersion,
		Environment:   s.config.Environment,
		UptimeSeconds: stats.UptimeSeconds,
		CachedModels:  s.models.Cached(),
		Process:       stats.Process,
	})
}

func (s *Server) handleAPINotFound(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusNotFound, errorResponse{Error: "Not found"})
}

// decode reads a JSON body capped at the configured size. On failure the
// response is already written and false is returned.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.config.MaxContentLength))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "Request body too large"})
			return false
		}
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Unreadable body"})
		return false
	}
	if !json.Valid(data) || json.Unmarshal(data, v) != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON body"})
		return false
	}
	return true
}

// writeError maps the error taxonomy to a status. Anything outside of it is
// logged and answered with a generic message.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrAgentNotFound):
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		s.log.Error("Request failed", "method", r.Method, "path", r.URL.Path,
			"request_id", RequestID(r.Context()), "error", err)
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: internalErrorMessage})
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	bytes, err := json.Marshal(v)
	if err != nil {
		s.log.Error("Response encoding failed", "error", err)
		status = http.StatusInternalServerError
		bytes = []byte(`{"error":"` + internalErrorMessage + `"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(bytes)
}
