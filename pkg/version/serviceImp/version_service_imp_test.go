package serviceImp

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"jornales/entities"
	planimp "jornales/pkg/plan/repositoryImp"
	"jornales/pkg/version/repositoryImp"
	"jornales/pkg/version/service"
)

func setup(t *testing.T) (service.VersionService, *entities.Plan, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.Plan{}, &entities.PlanEntry{},
		&entities.PlanVersion{}, &entities.PlanVersionEntry{},
	))

	plans := planimp.New(db)
	plan, err := plans.Ensure(2025, 3, &entities.Department{ID: 7, Manager: "J. QUISPE"})
	require.NoError(t, err)

	return New(repositoryImp.New(db), plans), plan, db
}

func saveDetail(t *testing.T, db *gorm.DB, planID uint, rows ...entities.PlanEntry) {
	t.Helper()
	for i := range rows {
		rows[i].PlanID = planID
	}
	require.NoError(t, db.Create(&rows).Error)
}

func TestCreateNumbersSequentially(t *testing.T) {
	svc, plan, db := setup(t)
	code := 100
	saveDetail(t, db, plan.ID, entities.PlanEntry{Fecha: "2025-03-01", Linea: 1, CodigoLab: &code, Jornales: 3})

	v1, err := svc.Create(plan.ID, "ana@acme.pe", "primer corte")
	require.NoError(t, err)
	assert.Equal(t, 1, v1.Seq)
	assert.Equal(t, "ana@acme.pe", v1.CreatedBy)
	assert.Equal(t, "primer corte", v1.Comment)

	v2, err := svc.Create(plan.ID, "ana@acme.pe", "")
	require.NoError(t, err)
	assert.Equal(t, 2, v2.Seq)

	// period columns come from the plan header
	assert.Equal(t, uint(7), v1.DeptoID)
	assert.Equal(t, 2025, v1.Year)
	assert.Equal(t, 3, v1.Month)
}

func TestCreateAllowsEmptySnapshot(t *testing.T) {
	svc, plan, _ := setup(t)

	v, err := svc.Create(plan.ID, "ana@acme.pe", "plan vacío")
	require.NoError(t, err)
	assert.Equal(t, 1, v.Seq)

	rows, err := svc.Detail(v.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSnapshotsAreIndependent(t *testing.T) {
	svc, plan, db := setup(t)
	code := 100
	saveDetail(t, db, plan.ID, entities.PlanEntry{Fecha: "2025-03-01", Linea: 1, LoteID: "L01", CodigoLab: &code, Ratio: 1.5, HaProg: 2, Jornales: 3, Obs: "inicio"})

	v1, err := svc.Create(plan.ID, "ana@acme.pe", "")
	require.NoError(t, err)

	// the live detail changes after the snapshot
	require.NoError(t, db.Where("plan_id = ?", plan.ID).Delete(&entities.PlanEntry{}).Error)
	saveDetail(t, db, plan.ID, entities.PlanEntry{Fecha: "2025-03-09", Linea: 1, CodigoLab: &code, Jornales: 8})

	v2, err := svc.Create(plan.ID, "ana@acme.pe", "")
	require.NoError(t, err)

	d1, err := svc.Detail(v1.ID)
	require.NoError(t, err)
	require.Len(t, d1, 1)
	assert.Equal(t, "2025-03-01", d1[0].Fecha)
	assert.Equal(t, "L01", d1[0].LoteID)
	assert.Equal(t, 3.0, d1[0].Jornales)
	assert.Equal(t, "inicio", d1[0].Obs)
	require.NotNil(t, d1[0].CodigoLab)
	assert.Equal(t, 100, *d1[0].CodigoLab)

	d2, err := svc.Detail(v2.ID)
	require.NoError(t, err)
	require.Len(t, d2, 1)
	assert.Equal(t, "2025-03-09", d2[0].Fecha)
}

func TestListNewestFirst(t *testing.T) {
	svc, plan, _ := setup(t)

	for i := 0; i < 3; i++ {
		_, err := svc.Create(plan.ID, "ana@acme.pe", "")
		require.NoError(t, err)
	}

	list, err := svc.List(plan.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, 3, list[0].Seq)
	assert.Equal(t, 2, list[1].Seq)
	assert.Equal(t, 1, list[2].Seq)
}

func TestDetailOrderedByDateAndLine(t *testing.T) {
	svc, plan, db := setup(t)
	code := 100
	saveDetail(t, db, plan.ID,
		entities.PlanEntry{Fecha: "2025-03-02", Linea: 1, CodigoLab: &code, Jornales: 1},
		entities.PlanEntry{Fecha: "2025-03-01", Linea: 2, CodigoLab: &code, Jornales: 1},
		entities.PlanEntry{Fecha: "2025-03-01", Linea: 1, CodigoLab: &code, Jornales: 1},
	)

	v, err := svc.Create(plan.ID, "ana@acme.pe", "")
	require.NoError(t, err)

	rows, err := svc.Detail(v.ID)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "2025-03-01", rows[0].Fecha)
	assert.Equal(t, 1, rows[0].Linea)
	assert.Equal(t, 2, rows[1].Linea)
	assert.Equal(t, "2025-03-02", rows[2].Fecha)
}

func TestCreateUnknownPlan(t *testing.T) {
	svc, _, _ := setup(t)
	_, err := svc.Create(999, "ana@acme.pe", "")
	assert.Error(t, err)
}
