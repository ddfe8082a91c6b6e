package repository

import (
	"errors"

	"jornales/entities"
)

// ErrInsertStep marks a ReplaceDetail failure in the insert step, after the
// delete already ran. Callers surface this as a data-loss-risk condition.
var ErrInsertStep = errors.New("detail insert step failed")

type PlanRepository interface {
	// Ensure finds the plan for (year, month, department) or creates it as a
	// draft. Plans are never deleted here.
	Ensure(year, month int, depto *entities.Department) (*entities.Plan, error)

	ByID(planID uint) (*entities.Plan, error)

	// Detail reads the persisted rows of a plan ordered by (fecha, linea).
	Detail(planID uint) ([]entities.PlanEntry, error)

	// ReplaceDetail deletes every detail row of the plan and inserts the
	// prepared set in one transaction, so the persisted set exactly mirrors
	// the input. Returns the inserted count.
	ReplaceDetail(planID uint, rows []entities.PlanEntry) (int, error)
}
