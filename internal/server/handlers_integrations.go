package server

import (
	"net/http"

	"github.com/jonathan/jobmatch/internal/integrations"
	"go.uber.org/zap"
)

// IntegrationResponse is the envelope returned by the passthrough endpoints.
type IntegrationResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (s *Server) integrationSuccess(w http.ResponseWriter, data any) {
	s.jsonResponse(w, http.StatusOK, IntegrationResponse{Success: true, Data: data})
}

func (s *Server) integrationFailure(w http.ResponseWriter, name string, err error, message string) {
	status := HTTPStatus(err)
	if status != http.StatusServiceUnavailable {
		status = http.StatusInternalServerError
	}
	s.log.Error("integration failed", zap.String("integration", name), zap.Error(err))
	s.jsonResponse(w, status, IntegrationResponse{Success: false, Error: message})
}

func (s *Server) handleInfo(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, integrations.NewInfo(s.environment, s.now()))
}

func (s *Server) handleAzureSearch(w http.ResponseWriter, r *http.Request) {
	if s.integrations.Search == nil {
		err := &integrations.ErrNotConfigured{Integration: integrations.NameSearch}
		s.integrationFailure(w, integrations.NameSearch, err, "Failed to perform search: "+err.Error())
		return
	}

	result, err := s.integrations.Search.Search(r.Context())
	if err != nil {
		s.integrationFailure(w, integrations.NameSearch, err, "Failed to perform search: "+err.Error())
		return
	}
	s.integrationSuccess(w, result)
}

func (s *Server) handleGenerateAnswer(w http.ResponseWriter, r *http.Request) {
	if s.integrations.Answer == nil {
		s.integrationFailure(w, integrations.NameAnswer,
			&integrations.ErrNotConfigured{Integration: integrations.NameAnswer}, "Failed to generate answer")
		return
	}

	answer, err := s.integrations.Answer.Generate(r.Context())
	if err != nil {
		s.integrationFailure(w, integrations.NameAnswer, err, "Failed to generate answer")
		return
	}
	s.integrationSuccess(w, answer)
}

func (s *Server) handleGenerateEmbedding(w http.ResponseWriter, r *http.Request) {
	if s.integrations.Embedding == nil {
		s.integrationFailure(w, integrations.NameEmbedding,
			&integrations.ErrNotConfigured{Integration: integrations.NameEmbedding}, "Failed to generate embedding")
		return
	}

	out, err := s.integrations.Embedding.Generate(r.Context())
	if err != nil {
		s.integrationFailure(w, integrations.NameEmbedding, err, "Failed to generate embedding")
		return
	}
	s.integrationSuccess(w, out)
}

func (s *Server) handleDatabricksQuery(w http.ResponseWriter, r *http.Request) {
	if s.integrations.Warehouse == nil {
		s.integrationFailure(w, integrations.NameWarehouse,
			&integrations.ErrNotConfigured{Integration: integrations.NameWarehouse}, "Failed to execute Databricks query")
		return
	}

	rows, err := s.integrations.Warehouse.Query(r.Context())
	if err != nil {
		s.integrationFailure(w, integrations.NameWarehouse, err, "Failed to execute Databricks query")
		return
	}
	s.integrationSuccess(w, rows)
}
