package service

import (
	"errors"

	"jornales/entities"
)

// ErrBusy: a snapshot for this plan is already in flight; the call is dropped.
var ErrBusy = errors.New("version en curso")

type VersionService interface {
	// Create snapshots the plan's currently persisted detail (never the live
	// grid, so unsaved edits are excluded) into a new immutable version with
	// seq = max+1. A plan with no persisted detail yields a valid empty
	// version.
	Create(planID uint, createdBy, comment string) (*entities.PlanVersion, error)

	// List returns the plan's version headers, most recent first.
	List(planID uint) ([]entities.PlanVersion, error)

	// Detail returns a version's entries ordered by (fecha, linea). Read-only.
	Detail(versionID uint) ([]entities.PlanVersionEntry, error)
}
