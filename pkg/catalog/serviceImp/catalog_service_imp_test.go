package serviceImp

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"jornales/entities"
	"jornales/pkg/catalog/repositoryImp"
	"jornales/pkg/catalog/service"
)

func testSvc(t *testing.T) (service.CatalogService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.Department{}, &entities.ManagerAccess{},
		&entities.Labor{}, &entities.Field{}, &entities.Network{}, &entities.Sector{},
	))
	return New(repositoryImp.New(db)), db
}

func TestBuildForScopesFieldsToEstate(t *testing.T) {
	svc, db := testSvc(t)

	require.NoError(t, db.Create(&entities.Department{
		ID: 1, Name: "SANIDAD", Crop: "PALTO", Estate: "FUNDO-A", Active: true,
	}).Error)
	require.NoError(t, db.Create(&entities.Field{LoteID: "L01", Crop: "PALTO", Estate: "FUNDO-A", Active: true}).Error)
	require.NoError(t, db.Create(&entities.Field{LoteID: "L02", Crop: "PALTO", Estate: "FUNDO-A", Active: true}).Error)
	require.NoError(t, db.Create(&entities.Field{LoteID: "L99", Crop: "PALTO", Estate: "FUNDO-B", Active: true}).Error)
	require.NoError(t, db.Create(&entities.Field{LoteID: "L03", Crop: "ARANDANO", Estate: "FUNDO-A", Active: true}).Error)

	depto, cache, err := svc.BuildFor(1)
	require.NoError(t, err)
	assert.Equal(t, "FUNDO-A", depto.Estate)

	require.Len(t, cache.Lotes, 2)
	ids := []string{cache.Lotes[0].LoteID, cache.Lotes[1].LoteID}
	assert.ElementsMatch(t, []string{"L01", "L02"}, ids)
}

func TestBuildForWithoutEstateTakesAllFieldsOfCrop(t *testing.T) {
	svc, db := testSvc(t)

	require.NoError(t, db.Create(&entities.Department{
		ID: 1, Name: "SANIDAD", Crop: "PALTO", Active: true,
	}).Error)
	require.NoError(t, db.Create(&entities.Field{LoteID: "L01", Crop: "PALTO", Estate: "FUNDO-A", Active: true}).Error)
	require.NoError(t, db.Create(&entities.Field{LoteID: "L99", Crop: "PALTO", Estate: "FUNDO-B", Active: true}).Error)

	_, cache, err := svc.BuildFor(1)
	require.NoError(t, err)
	assert.Len(t, cache.Lotes, 2)
}

func TestBuildForScopesLaboresToDepartment(t *testing.T) {
	svc, db := testSvc(t)

	require.NoError(t, db.Create(&entities.Department{
		ID: 1, Name: "SANIDAD", Crop: "PALTO", Estate: "FUNDO-A", Active: true,
	}).Error)
	require.NoError(t, db.Create(&entities.Labor{
		Code: 100, Name: "Poda de formación", Department: "SANIDAD", Crop: "PALTO", Active: true,
	}).Error)
	require.NoError(t, db.Create(&entities.Labor{
		Code: 200, Name: "Riego tecnificado", Department: "RIEGO", Crop: "PALTO", Active: true,
	}).Error)

	_, cache, err := svc.BuildFor(1)
	require.NoError(t, err)
	require.Len(t, cache.Labores, 1)
	assert.Equal(t, 100, cache.Labores[0].Code)
}
