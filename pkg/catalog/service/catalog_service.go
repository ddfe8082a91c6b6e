package service

import (
	"jornales/entities"
	"jornales/pkg/catalog/types"
)

type CatalogService interface {
	// DepartmentsFor lists the selectable departments for a user: everything
	// when the role is ADMIN, otherwise the departments granted through
	// manager access rows. The list is deduplicated by (name, crop).
	DepartmentsFor(email, rol string) ([]entities.Department, error)

	// BuildFor loads the reference lists scoped to one department's crop and
	// builds the index cache from scratch.
	BuildFor(deptoID uint) (*entities.Department, *types.Cache, error)

	// LaborIndex is the whole active labor table keyed by code, for display
	// enrichment outside a department scope (version detail, exports).
	LaborIndex() (map[int]entities.Labor, error)
}
