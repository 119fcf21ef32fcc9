package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/brettbedarf/pycommander"
	"github.com/brettbedarf/pycommander/internal/util"
)

const unexpectedError = "An unexpected error occurred."

type completeResponse struct {
	Suggestions []string `json:"suggestions"`
}

type sessionResponse struct {
	ID string `json:"id"`
}

type historyResponse struct {
	History []string `json:"history"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger := util.GetLogger("HTTP")
		logger.Error().Err(err).Msg("Failed to write response")
	}
}

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	logger := util.GetLogger("HTTP.Command")

	var req pycommander.CommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error().Err(err).Msg("Command execution error")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: unexpectedError})
		return
	}
	if req.SessionID != "" {
		if sess, ok := s.Session(req.SessionID); ok {
			sess.Record(strings.TrimSpace(req.Command))
		}
	}

	ctx, cancel := s.aiContext(r.Context())
	defer cancel()
	resp := s.dispatcher.Execute(ctx, req)
	logger.Debug().Str("command", req.Command).Str("cwd", req.Cwd).Str("error", resp.Error).Msg("Executed command")

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	logger := util.GetLogger("HTTP.Translate")

	var req pycommander.TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error().Err(err).Msg("Translation request error")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: unexpectedError})
		return
	}

	ctx, cancel := s.aiContext(r.Context())
	defer cancel()
	cmd, err := s.translator.Translate(ctx, req.Prompt)
	if err != nil {
		logger.Warn().Err(err).Str("prompt", req.Prompt).Msg("Translation failed")
		writeJSON(w, http.StatusOK, pycommander.TranslateResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, pycommander.TranslateResponse{Command: cmd})
}

func (s *Server) handleComplete(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	suggestions := s.dispatcher.Complete(q.Get("cwd"), q.Get("partial"))
	if suggestions == nil {
		suggestions = []string{}
	}
	writeJSON(w, http.StatusOK, completeResponse{Suggestions: suggestions})
}

func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	sess := s.NewSession()
	writeJSON(w, http.StatusOK, sessionResponse{ID: sess.ID})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.Session(r.URL.Query().Get("session"))
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown session"})
		return
	}
	writeJSON(w, http.StatusOK, historyResponse{History: sess.History()})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Metrics())
}

func (s *Server) aiContext(parent context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.AI.Timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, s.cfg.AI.Timeout)
}
