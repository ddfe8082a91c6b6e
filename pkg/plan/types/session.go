package types

import (
	"sync"

	"jornales/entities"
	cattypes "jornales/pkg/catalog/types"
	"jornales/pkg/grid"
)

// Session is one open plan: the ensured header, the department's catalog
// cache and the in-memory grid. One editing agent per plan; handlers
// serialize through the session lock so no two mutations interleave.
type Session struct {
	mu sync.Mutex

	Plan  *entities.Plan
	Depto *entities.Department
	Cache *cattypes.Cache
	Grid  *grid.Grid

	saving bool
}

func NewSession(plan *entities.Plan, depto *entities.Department, cache *cattypes.Cache, g *grid.Grid) *Session {
	return &Session{Plan: plan, Depto: depto, Cache: cache, Grid: g}
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// BeginSave flips the busy flag. A second save while one is in flight is
// dropped, not queued.
func (s *Session) BeginSave() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saving {
		return false
	}
	s.saving = true
	return true
}

func (s *Session) EndSave() {
	s.mu.Lock()
	s.saving = false
	s.mu.Unlock()
}
