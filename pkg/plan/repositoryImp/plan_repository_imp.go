package repositoryImp

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"jornales/entities"
	"jornales/pkg/plan/repository"
)

const insertBatchSize = 200

type planRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlanRepository { return &planRepo{db} }

func (r *planRepo) Ensure(year, month int, depto *entities.Department) (*entities.Plan, error) {
	var p entities.Plan
	err := r.db.Where("anio = ? AND mes = ? AND depto_id = ?", year, month, depto.ID).First(&p).Error
	if err == nil {
		return &p, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find plan: %w", err)
	}

	p = entities.Plan{
		Year:    year,
		Month:   month,
		DeptoID: depto.ID,
		Manager: depto.Manager,
		Status:  entities.PlanStatusDraft,
	}
	if err := r.db.Create(&p).Error; err != nil {
		return nil, fmt.Errorf("create plan: %w", err)
	}
	return &p, nil
}

func (r *planRepo) ByID(planID uint) (*entities.Plan, error) {
	var p entities.Plan
	if err := r.db.First(&p, planID).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *planRepo) Detail(planID uint) ([]entities.PlanEntry, error) {
	var rows []entities.PlanEntry
	err := r.db.Where("plan_id = ?", planID).
		Order("fecha").Order("linea").
		Find(&rows).Error
	return rows, err
}

func (r *planRepo) ReplaceDetail(planID uint, rows []entities.PlanEntry) (int, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("plan_id = ?", planID).Delete(&entities.PlanEntry{}).Error; err != nil {
			return fmt.Errorf("delete detail: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(rows, insertBatchSize).Error; err != nil {
			return fmt.Errorf("%w: %v", repository.ErrInsertStep, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}
