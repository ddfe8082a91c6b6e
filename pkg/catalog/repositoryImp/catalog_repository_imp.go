package repositoryImp

import (
	"strings"

	"gorm.io/gorm"

	"jornales/entities"
	"jornales/pkg/catalog/repository"
)

type catalogRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CatalogRepository { return &catalogRepo{db} }

func (r *catalogRepo) ActiveDepartments() ([]entities.Department, error) {
	var out []entities.Department
	err := r.db.Where("activo = ?", true).
		Order("departamento").Order("cultivo").
		Find(&out).Error
	return out, err
}

func (r *catalogRepo) DepartmentsByIDs(ids []uint) ([]entities.Department, error) {
	var out []entities.Department
	if len(ids) == 0 {
		return out, nil
	}
	err := r.db.Where("id IN ?", ids).Where("activo = ?", true).
		Order("departamento").Order("cultivo").
		Find(&out).Error
	return out, err
}

func (r *catalogRepo) DepartmentByID(id uint) (*entities.Department, error) {
	var d entities.Department
	if err := r.db.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *catalogRepo) AccessDeptoIDs(email string) ([]uint, error) {
	var rows []entities.ManagerAccess
	err := r.db.Where("activo = ?", true).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(rows))
	for _, a := range rows {
		ids = append(ids, a.DeptoID)
	}
	return ids, nil
}

func (r *catalogRepo) Labores(department, crop string) ([]entities.Labor, error) {
	var out []entities.Labor
	q := r.db.Where("activo = ?", true).Where("departamento = ?", department)
	if crop != "" {
		q = q.Where("cultivo = ?", crop)
	}
	err := q.Find(&out).Error
	return out, err
}

func (r *catalogRepo) ActiveLabores() ([]entities.Labor, error) {
	var out []entities.Labor
	err := r.db.Where("activo = ?", true).Find(&out).Error
	return out, err
}

func (r *catalogRepo) Lotes(crop, estate string) ([]entities.Field, error) {
	var out []entities.Field
	q := r.db.Where("activo = ?", true)
	if crop != "" {
		q = q.Where("cultivo = ?", crop)
	}
	if estate != "" {
		q = q.Where("fundo = ?", estate)
	}
	err := q.Find(&out).Error
	return out, err
}

func (r *catalogRepo) Redes() ([]entities.Network, error) {
	var out []entities.Network
	err := r.db.Find(&out).Error
	return out, err
}

func (r *catalogRepo) Sectores() ([]entities.Sector, error) {
	var out []entities.Sector
	err := r.db.Find(&out).Error
	return out, err
}
