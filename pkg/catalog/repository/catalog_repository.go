package repository

import "jornales/entities"

type CatalogRepository interface {
	ActiveDepartments() ([]entities.Department, error)
	DepartmentsByIDs(ids []uint) ([]entities.Department, error)
	DepartmentByID(id uint) (*entities.Department, error)
	AccessDeptoIDs(email string) ([]uint, error)

	Labores(department, crop string) ([]entities.Labor, error)
	ActiveLabores() ([]entities.Labor, error)
	Lotes(crop, estate string) ([]entities.Field, error)
	Redes() ([]entities.Network, error)
	Sectores() ([]entities.Sector, error)
}
