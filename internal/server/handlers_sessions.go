package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/jonathan/jobmatch/internal/export"
	"github.com/jonathan/jobmatch/internal/session"
	"github.com/jonathan/jobmatch/internal/types"
	"go.uber.org/zap"
)

// ---------------------------------------------------------------------
// Session Handlers
// ---------------------------------------------------------------------

// ApplyChangesRequest carries the changes to apply, in order. Each entry may be a simulation
// or recommendation as returned by the API.
type ApplyChangesRequest struct {
	Changes []types.ChangeRequest `json:"changes"`
}

func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid session ID")
		return uuid.Nil, false
	}
	return id, true
}

func (s *Server) sessionError(w http.ResponseWriter, err error) {
	var notFound *session.ErrSessionNotFound
	if errors.As(err, &notFound) {
		s.errorResponse(w, http.StatusNotFound, "Session not found")
		return
	}
	s.log.Error("session operation failed", zap.Error(err))
	s.errorResponse(w, http.StatusInternalServerError, "Internal error")
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeRequirement(w, r, true)
	if err != nil {
		s.writeRequestError(w, err)
		return
	}

	sess := s.sessions.Create(req)
	s.log.Debug("session created", zap.String("session_id", sess.ID.String()))
	s.jsonResponse(w, http.StatusCreated, sess)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}

	sess, err := s.sessions.Get(id)
	if err != nil {
		s.sessionError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, sess)
}

func (s *Server) handleUpdateSession(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}

	req, err := s.decodeRequirement(w, r, false)
	if err != nil {
		s.writeRequestError(w, err)
		return
	}

	sess, err := s.sessions.Update(id, *req)
	if err != nil {
		s.sessionError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, sess)
}

func (s *Server) handleApplyChanges(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}

	var req ApplyChangesRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Changes) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "At least one change is required")
		return
	}

	sess, err := s.sessions.ApplyRequests(id, req.Changes...)
	if err != nil {
		var notFound *session.ErrSessionNotFound
		if errors.As(err, &notFound) {
			s.errorResponse(w, http.StatusNotFound, "Session not found")
			return
		}
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}
	s.jsonResponse(w, http.StatusOK, sess)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}

	if err := s.sessions.Delete(id); err != nil {
		s.sessionError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleExportSession(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}

	sess, err := s.sessions.Get(id)
	if err != nil {
		s.sessionError(w, err)
		return
	}

	data, err := export.NewDocument(sess.Requirements, sess.MatchData, s.now()).MarshalIndent()
	if err != nil {
		s.log.Error("failed to encode export", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to export session")
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(export.FileName))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handleSessionSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}

	sess, err := s.sessions.Get(id)
	if err != nil {
		s.sessionError(w, err)
		return
	}

	text, err := export.Summary(sess.Requirements, sess.MatchData)
	if err != nil {
		s.log.Error("failed to render summary", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render summary")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"summary": text})
}
