package repository

import "jornales/entities"

// Version rows are append-only: this interface can insert and read, never
// update or delete.
type VersionRepository interface {
	MaxSeq(planID uint) (int, error)
	Insert(v *entities.PlanVersion) error
	InsertEntries(rows []entities.PlanVersionEntry) error

	ByID(versionID uint) (*entities.PlanVersion, error)
	ListByPlan(planID uint) ([]entities.PlanVersion, error)
	Detail(versionID uint) ([]entities.PlanVersionEntry, error)
}
