package serviceImp

import (
	"strings"

	"jornales/entities"
	repo "jornales/pkg/catalog/repository"
	"jornales/pkg/catalog/service"
	"jornales/pkg/catalog/types"
)

type catalogSvc struct{ r repo.CatalogRepository }

func New(r repo.CatalogRepository) service.CatalogService { return &catalogSvc{r} }

func (s *catalogSvc) DepartmentsFor(email, rol string) ([]entities.Department, error) {
	if strings.ToUpper(rol) == "ADMIN" {
		all, err := s.r.ActiveDepartments()
		if err != nil {
			return nil, err
		}
		return types.DedupeDepartments(all), nil
	}

	ids, err := s.r.AccessDeptoIDs(email)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	deptos, err := s.r.DepartmentsByIDs(ids)
	if err != nil {
		return nil, err
	}
	return types.DedupeDepartments(deptos), nil
}

func (s *catalogSvc) BuildFor(deptoID uint) (*entities.Department, *types.Cache, error) {
	d, err := s.r.DepartmentByID(deptoID)
	if err != nil {
		return nil, nil, err
	}

	crop := strings.TrimSpace(d.Crop)
	labores, err := s.r.Labores(strings.TrimSpace(d.Name), crop)
	if err != nil {
		return nil, nil, err
	}
	lotes, err := s.r.Lotes(crop, strings.TrimSpace(d.Estate))
	if err != nil {
		return nil, nil, err
	}
	redes, err := s.r.Redes()
	if err != nil {
		return nil, nil, err
	}
	sectores, err := s.r.Sectores()
	if err != nil {
		return nil, nil, err
	}

	return d, types.BuildCache(labores, lotes, redes, sectores), nil
}

func (s *catalogSvc) LaborIndex() (map[int]entities.Labor, error) {
	labores, err := s.r.ActiveLabores()
	if err != nil {
		return nil, err
	}
	m := make(map[int]entities.Labor, len(labores))
	for _, l := range labores {
		m[l.Code] = l
	}
	return m, nil
}
