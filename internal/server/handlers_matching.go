package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/jonathan/jobmatch/internal/types"
)

const maxBodyBytes = 1 << 20

// decodeRequirement reads and validates a requirement body. An empty body yields
// (nil, nil) when allowEmpty is set.
func (s *Server) decodeRequirement(w http.ResponseWriter, r *http.Request, allowEmpty bool) (*types.JobRequirement, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req types.JobRequirement
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) && allowEmpty {
			return nil, nil
		}
		return nil, &ErrValidation{Field: "body", Message: "Invalid request body"}
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &req, nil
}

// writeRequestError answers a failed decodeRequirement.
func (s *Server) writeRequestError(w http.ResponseWriter, err error) {
	var validation *ErrValidation
	if errors.As(err, &validation) {
		s.errorResponse(w, http.StatusBadRequest, validation.Message)
		return
	}
	s.errorResponse(w, HTTPStatus(err), validationMessage(err))
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeRequirement(w, r, false)
	if err != nil {
		s.writeRequestError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, s.evaluator.Evaluate(*req))
}

func (s *Server) handleSimulations(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeRequirement(w, r, false)
	if err != nil {
		s.writeRequestError(w, err)
		return
	}

	eval := s.evaluator.Evaluate(*req)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"matchData":   eval.Match,
		"simulations": eval.Simulations,
	})
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeRequirement(w, r, false)
	if err != nil {
		s.writeRequestError(w, err)
		return
	}

	eval := s.evaluator.Evaluate(*req)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"matchData":       eval.Match,
		"recommendations": eval.Recommendations,
	})
}

func (s *Server) handleDefaultRequirement(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, types.DefaultRequirement())
}
