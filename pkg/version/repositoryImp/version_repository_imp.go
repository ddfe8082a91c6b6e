package repositoryImp

import (
	"gorm.io/gorm"

	"jornales/entities"
	"jornales/pkg/version/repository"
)

// Snapshot copies are chunked to bound request size.
const batchSize = 200

type versionRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.VersionRepository { return &versionRepo{db} }

func (r *versionRepo) MaxSeq(planID uint) (int, error) {
	var max *int
	err := r.db.Model(&entities.PlanVersion{}).
		Where("plan_id = ?", planID).
		Select("MAX(seq)").Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}

func (r *versionRepo) Insert(v *entities.PlanVersion) error {
	return r.db.Create(v).Error
}

func (r *versionRepo) InsertEntries(rows []entities.PlanVersionEntry) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.CreateInBatches(rows, batchSize).Error
}

func (r *versionRepo) ByID(versionID uint) (*entities.PlanVersion, error) {
	var v entities.PlanVersion
	if err := r.db.First(&v, versionID).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *versionRepo) ListByPlan(planID uint) ([]entities.PlanVersion, error) {
	var out []entities.PlanVersion
	err := r.db.Where("plan_id = ?", planID).
		Order("seq DESC").
		Find(&out).Error
	return out, err
}

func (r *versionRepo) Detail(versionID uint) ([]entities.PlanVersionEntry, error) {
	var out []entities.PlanVersionEntry
	err := r.db.Where("version_id = ?", versionID).
		Order("fecha").Order("linea").
		Find(&out).Error
	return out, err
}
