// Package session keeps in-memory requirement sessions. Each session owns one requirement set
// and the evaluation derived from it; nothing is persisted.
package session

import (
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/jobmatch/internal/matching"
	"github.com/jonathan/jobmatch/internal/types"
)

// ErrSessionNotFound indicates the session ID is unknown
type ErrSessionNotFound struct {
	ID uuid.UUID
}

func (e *ErrSessionNotFound) Error() string {
	return fmt.Sprintf("session not found: %s", e.ID)
}

// Session is a snapshot of one requirement session.
type Session struct {
	ID                uuid.UUID                     `json:"id"`
	Requirements      types.JobRequirement          `json:"requirements"`
	MatchData         types.CandidateMatch          `json:"matchData"`
	PreviousMatchData *types.CandidateMatch         `json:"previousMatchData,omitempty"`
	Simulations       []types.RequirementSimulation `json:"simulations"`
	Recommendations   []types.Recommendation        `json:"recommendations"`
	CreatedAt         time.Time                     `json:"createdAt"`
	UpdatedAt         time.Time                     `json:"updatedAt"`
}

type entry struct {
	id        uuid.UUID
	eval      matching.Evaluation
	previous  *types.CandidateMatch
	createdAt time.Time
	updatedAt time.Time
}

func (e *entry) snapshot() Session {
	s := Session{
		ID:              e.id,
		Requirements:    e.eval.Requirements.Clone(),
		MatchData:       e.eval.Match,
		Simulations:     e.eval.Simulations,
		Recommendations: e.eval.Recommendations,
		CreatedAt:       e.createdAt,
		UpdatedAt:       e.updatedAt,
	}
	if e.previous != nil {
		prev := *e.previous
		s.PreviousMatchData = &prev
	}
	return s
}

// Store holds sessions in memory. It is safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	sessions  map[uuid.UUID]*entry
	evaluator matching.Evaluator
	now       func() time.Time
}

// NewStore creates a store that derives evaluations with evaluator. A nil evaluator uses
// matching.Evaluate.
func NewStore(evaluator matching.Evaluator) *Store {
	if evaluator == nil {
		evaluator = matching.EvaluatorFunc(matching.Evaluate)
	}
	return &Store{
		sessions:  make(map[uuid.UUID]*entry),
		evaluator: evaluator,
		now:       time.Now,
	}
}

// Create starts a session from req, or from the default requirement when req is nil.
func (s *Store) Create(req *types.JobRequirement) Session {
	initial := types.DefaultRequirement()
	if req != nil {
		initial = req.Clone()
	}

	now := s.now()
	e := &entry{
		id:        uuid.New(),
		eval:      s.evaluator.Evaluate(initial),
		createdAt: now,
		updatedAt: now,
	}

	s.mu.Lock()
	s.sessions[e.id] = e
	s.mu.Unlock()

	return e.snapshot()
}

// Get returns the session with the given ID.
func (s *Store) Get(id uuid.UUID) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.sessions[id]
	if !ok {
		return Session{}, &ErrSessionNotFound{ID: id}
	}
	return e.snapshot(), nil
}

// Update replaces the session's requirement set and re-evaluates it.
func (s *Store) Update(id uuid.UUID, req types.JobRequirement) (Session, error) {
	return s.mutate(id, func(types.JobRequirement) (types.JobRequirement, error) {
		return req.Clone(), nil
	})
}

// Apply applies changes in order and re-evaluates. A change set that leaves the requirement
// as it was does not touch the session; one that leaves it invalid is rejected with the
// validator error and the session is unchanged.
func (s *Store) Apply(id uuid.UUID, changes ...types.Change) (Session, error) {
	return s.mutate(id, func(current types.JobRequirement) (types.JobRequirement, error) {
		return types.ApplyAll(current, changes...), nil
	})
}

// ApplyRequests decodes wire change requests against the current requirement and applies them.
func (s *Store) ApplyRequests(id uuid.UUID, requests ...types.ChangeRequest) (Session, error) {
	return s.mutate(id, func(current types.JobRequirement) (types.JobRequirement, error) {
		next := current
		for _, cr := range requests {
			change, err := cr.Decode(next)
			if err != nil {
				return types.JobRequirement{}, err
			}
			next = types.ApplyAll(next, change)
		}
		return next, nil
	})
}

// Delete removes a session.
func (s *Store) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return &ErrSessionNotFound{ID: id}
	}
	delete(s.sessions, id)
	return nil
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Store) mutate(id uuid.UUID, next func(types.JobRequirement) (types.JobRequirement, error)) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return Session{}, &ErrSessionNotFound{ID: id}
	}

	req, err := next(e.eval.Requirements.Clone())
	if err != nil {
		return Session{}, err
	}
	req = req.Normalized()
	if err := req.Validate(); err != nil {
		return Session{}, err
	}
	if reflect.DeepEqual(req, e.eval.Requirements) {
		return e.snapshot(), nil
	}

	prev := e.eval.Match
	e.previous = &prev
	e.eval = s.evaluator.Evaluate(req)
	e.updatedAt = s.now()

	return e.snapshot(), nil
}
