package server

import (
	"net/http"

	"github.com/jonathan/jobmatch/internal/catalog"
)

func (s *Server) handleJobTypes(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, catalog.JobTypes())
}

func (s *Server) handleLocations(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, catalog.Locations())
}

func (s *Server) handleSkills(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, catalog.Skills())
}
