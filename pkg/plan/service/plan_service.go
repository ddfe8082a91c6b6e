package service

import (
	"errors"

	"jornales/pkg/plan/types"
)

var (
	// ErrValidation: a non-empty row lacks a labor code or has non-positive
	// jornales. The whole save is rejected, nothing is written.
	ErrValidation = errors.New("se tiene que seleccionar la labor y registrar los jornales")

	// ErrNothingToSave: every row is empty, save is a no-op.
	ErrNothingToSave = errors.New("no hay cambios para guardar")

	// ErrBusy: a save for this plan is already in flight; the call is dropped.
	ErrBusy = errors.New("guardado en curso")

	ErrNoSession = errors.New("plan session not open")
)

type PlanService interface {
	// Open ensures the plan for (year, month, department), builds the catalog
	// cache and loads the persisted detail into a fresh grid. Re-opening with
	// a different department first resets the previous grid's values.
	Open(year, month int, deptoID uint) (*types.Session, error)

	// Session returns the open session for a plan.
	Session(planID uint) (*types.Session, error)

	// Reload re-reads the persisted detail into the grid through the load
	// token scheme; a stale completion is discarded.
	Reload(planID uint) error

	// Save runs the validation gate and, when it passes, replaces the plan's
	// persisted detail wholesale. Returns the inserted row count.
	Save(planID uint) (int, error)
}
