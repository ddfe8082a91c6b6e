package serviceImp

import (
	"fmt"
	"log"
	"sync"

	"jornales/entities"
	planrepo "jornales/pkg/plan/repository"
	repo "jornales/pkg/version/repository"
	"jornales/pkg/version/service"
)

type versionSvc struct {
	repo  repo.VersionRepository
	plans planrepo.PlanRepository

	mu   sync.Mutex
	busy map[uint]bool
}

func New(r repo.VersionRepository, plans planrepo.PlanRepository) service.VersionService {
	return &versionSvc{repo: r, plans: plans, busy: map[uint]bool{}}
}

func (s *versionSvc) begin(planID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy[planID] {
		return false
	}
	s.busy[planID] = true
	return true
}

func (s *versionSvc) end(planID uint) {
	s.mu.Lock()
	delete(s.busy, planID)
	s.mu.Unlock()
}

func (s *versionSvc) Create(planID uint, createdBy, comment string) (*entities.PlanVersion, error) {
	if !s.begin(planID) {
		return nil, service.ErrBusy
	}
	defer s.end(planID)

	plan, err := s.plans.ByID(planID)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}

	max, err := s.repo.MaxSeq(planID)
	if err != nil {
		return nil, fmt.Errorf("max seq: %w", err)
	}

	// The snapshot source is the persisted detail, read fresh from the store.
	detail, err := s.plans.Detail(planID)
	if err != nil {
		return nil, fmt.Errorf("read detail: %w", err)
	}

	// Period columns are denormalized onto the header so version lists can be
	// filtered without joining plans.
	v := &entities.PlanVersion{
		PlanID:    planID,
		Seq:       max + 1,
		DeptoID:   plan.DeptoID,
		Year:      plan.Year,
		Month:     plan.Month,
		CreatedBy: createdBy,
		Comment:   comment,
	}
	if err := s.repo.Insert(v); err != nil {
		return nil, fmt.Errorf("insert version: %w", err)
	}

	rows := make([]entities.PlanVersionEntry, 0, len(detail))
	for _, e := range detail {
		var code *int
		if e.CodigoLab != nil {
			c := *e.CodigoLab
			code = &c
		}
		rows = append(rows, entities.PlanVersionEntry{
			VersionID: v.ID,
			Fecha:     e.Fecha,
			Linea:     e.Linea,
			LoteID:    e.LoteID,
			RedID:     e.RedID,
			SectorID:  e.SectorID,
			CodigoLab: code,
			Ratio:     e.Ratio,
			HaProg:    e.HaProg,
			Jornales:  e.Jornales,
			Obs:       e.Obs,
		})
	}
	if err := s.repo.InsertEntries(rows); err != nil {
		return nil, fmt.Errorf("insert version detail: %w", err)
	}

	log.Printf("[version] created plan=%d seq=%d rows=%d by=%s", planID, v.Seq, len(rows), createdBy)
	return v, nil
}

func (s *versionSvc) List(planID uint) ([]entities.PlanVersion, error) {
	return s.repo.ListByPlan(planID)
}

func (s *versionSvc) Detail(versionID uint) ([]entities.PlanVersionEntry, error) {
	return s.repo.Detail(versionID)
}
