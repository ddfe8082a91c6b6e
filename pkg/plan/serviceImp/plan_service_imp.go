package serviceImp

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"jornales/entities"
	catservice "jornales/pkg/catalog/service"
	"jornales/pkg/grid"
	repo "jornales/pkg/plan/repository"
	"jornales/pkg/plan/service"
	"jornales/pkg/plan/types"
)

type planSvc struct {
	repo    repo.PlanRepository
	catalog catservice.CatalogService

	mu       sync.RWMutex
	sessions map[uint]*types.Session
	current  *types.Session
}

func New(r repo.PlanRepository, cat catservice.CatalogService) service.PlanService {
	return &planSvc{repo: r, catalog: cat, sessions: map[uint]*types.Session{}}
}

func (s *planSvc) Open(year, month int, deptoID uint) (*types.Session, error) {
	depto, cache, err := s.catalog.BuildFor(deptoID)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	// Department switch: the previous grid's location/labor/value fields are
	// reset before anything else, so no stale cross-department reference can
	// be observed.
	s.mu.Lock()
	if s.current != nil && s.current.Depto.ID != deptoID {
		s.current.Lock()
		s.current.Grid.ResetValues()
		s.current.Unlock()
	}
	s.mu.Unlock()

	plan, err := s.repo.Ensure(year, month, depto)
	if err != nil {
		return nil, err
	}

	g := grid.New(year, month)
	sess := types.NewSession(plan, depto, cache, g)

	token := g.BeginLoad()
	entries, err := s.repo.Detail(plan.ID)
	if err != nil {
		return nil, fmt.Errorf("load detail: %w", err)
	}
	g.ApplyLoad(token, entries)

	s.mu.Lock()
	s.sessions[plan.ID] = sess
	s.current = sess
	s.mu.Unlock()

	log.Printf("[plan] open plan=%d %04d-%02d depto=%d rows=%d", plan.ID, year, month, deptoID, len(entries))
	return sess, nil
}

func (s *planSvc) Session(planID uint) (*types.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[planID]
	if !ok {
		return nil, service.ErrNoSession
	}
	return sess, nil
}

func (s *planSvc) Reload(planID uint) error {
	sess, err := s.Session(planID)
	if err != nil {
		return err
	}

	sess.Lock()
	token := sess.Grid.BeginLoad()
	sess.Unlock()

	entries, err := s.repo.Detail(planID)
	if err != nil {
		return fmt.Errorf("load detail: %w", err)
	}

	sess.Lock()
	defer sess.Unlock()
	if !sess.Grid.ApplyLoad(token, entries) {
		log.Printf("[plan] stale load discarded plan=%d token=%d", planID, token)
	}
	return nil
}

func (s *planSvc) Save(planID uint) (int, error) {
	sess, err := s.Session(planID)
	if err != nil {
		return 0, err
	}
	if !sess.BeginSave() {
		return 0, service.ErrBusy
	}
	defer sess.EndSave()

	sess.Lock()
	flat := sess.Grid.Flatten()
	prepared := make([]entities.PlanEntry, 0, len(flat))
	for _, r := range flat {
		if r.Empty() {
			continue
		}
		if r.Codigo == nil || grid.ToNumber(r.Jornales) <= 0 {
			sess.Unlock()
			return 0, service.ErrValidation
		}
		var code *int
		if r.Codigo != nil {
			c := *r.Codigo
			code = &c
		}
		prepared = append(prepared, entities.PlanEntry{
			PlanID:    planID,
			Fecha:     r.Fecha,
			Linea:     r.Linea,
			LoteID:    strings.TrimSpace(r.LoteID),
			RedID:     strings.TrimSpace(r.RedID),
			SectorID:  strings.TrimSpace(r.SectorID),
			CodigoLab: code,
			Ratio:     grid.ToNumber(r.Ratio),
			HaProg:    grid.ToNumber(r.HaProg),
			Jornales:  grid.ToNumber(r.Jornales),
			Obs:       r.Obs,
		})
	}
	sess.Unlock()

	if len(prepared) == 0 {
		return 0, service.ErrNothingToSave
	}

	count, err := s.repo.ReplaceDetail(planID, prepared)
	if err != nil {
		return 0, err
	}
	log.Printf("[plan] saved plan=%d rows=%d", planID, count)
	return count, nil
}
