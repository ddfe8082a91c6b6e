// database/bootstrap.go
package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"jornales/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Department{},
		&entities.Labor{},
		&entities.Field{},
		&entities.Network{},
		&entities.Sector{},
		&entities.Plan{},
		&entities.PlanEntry{},
		&entities.PlanVersion{},
		&entities.PlanVersionEntry{},
		&entities.Profile{},
		&entities.ManagerAccess{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}
