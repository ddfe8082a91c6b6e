package repositoryImp

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"jornales/entities"
	"jornales/pkg/plan/repository"
)

func testRepo(t *testing.T) (repository.PlanRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Plan{}, &entities.PlanEntry{}))
	return New(db), db
}

func TestEnsureIsIdempotent(t *testing.T) {
	r, db := testRepo(t)
	depto := &entities.Department{ID: 3, Manager: "J. QUISPE"}

	p1, err := r.Ensure(2025, 3, depto)
	require.NoError(t, err)
	assert.Equal(t, entities.PlanStatusDraft, p1.Status)
	assert.Equal(t, "J. QUISPE", p1.Manager)

	p2, err := r.Ensure(2025, 3, depto)
	require.NoError(t, err)
	assert.Equal(t, p1.ID, p2.ID)

	// a different period gets its own header
	p3, err := r.Ensure(2025, 4, depto)
	require.NoError(t, err)
	assert.NotEqual(t, p1.ID, p3.ID)

	var count int64
	require.NoError(t, db.Model(&entities.Plan{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestDetailOrdering(t *testing.T) {
	r, db := testRepo(t)
	p, err := r.Ensure(2025, 3, &entities.Department{ID: 1})
	require.NoError(t, err)

	seed := []entities.PlanEntry{
		{PlanID: p.ID, Fecha: "2025-03-02", Linea: 1},
		{PlanID: p.ID, Fecha: "2025-03-01", Linea: 2},
		{PlanID: p.ID, Fecha: "2025-03-01", Linea: 1},
	}
	require.NoError(t, db.Create(&seed).Error)

	rows, err := r.Detail(p.ID)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "2025-03-01", rows[0].Fecha)
	assert.Equal(t, 1, rows[0].Linea)
	assert.Equal(t, "2025-03-01", rows[1].Fecha)
	assert.Equal(t, 2, rows[1].Linea)
	assert.Equal(t, "2025-03-02", rows[2].Fecha)
}

func TestReplaceDetailMirrorsInput(t *testing.T) {
	r, _ := testRepo(t)
	p, err := r.Ensure(2025, 3, &entities.Department{ID: 1})
	require.NoError(t, err)

	code := 100
	count, err := r.ReplaceDetail(p.ID, []entities.PlanEntry{
		{PlanID: p.ID, Fecha: "2025-03-01", Linea: 1, LoteID: "L01", CodigoLab: &code, Ratio: 1.5, HaProg: 2, Jornales: 3},
		{PlanID: p.ID, Fecha: "2025-03-02", Linea: 1, LoteID: "L02", CodigoLab: &code, Jornales: 4, Obs: "tarde"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// the second save fully replaces the first
	count, err = r.ReplaceDetail(p.ID, []entities.PlanEntry{
		{PlanID: p.ID, Fecha: "2025-03-05", Linea: 1, LoteID: "L03", CodigoLab: &code, Jornales: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	rows, err := r.Detail(p.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "2025-03-05", rows[0].Fecha)
	assert.Equal(t, "L03", rows[0].LoteID)
}

func TestReplaceDetailScopedToPlan(t *testing.T) {
	r, _ := testRepo(t)
	pa, err := r.Ensure(2025, 3, &entities.Department{ID: 1})
	require.NoError(t, err)
	pb, err := r.Ensure(2025, 3, &entities.Department{ID: 2})
	require.NoError(t, err)

	code := 100
	_, err = r.ReplaceDetail(pa.ID, []entities.PlanEntry{
		{PlanID: pa.ID, Fecha: "2025-03-01", Linea: 1, CodigoLab: &code, Jornales: 1},
	})
	require.NoError(t, err)
	_, err = r.ReplaceDetail(pb.ID, []entities.PlanEntry{
		{PlanID: pb.ID, Fecha: "2025-03-01", Linea: 1, CodigoLab: &code, Jornales: 2},
	})
	require.NoError(t, err)

	// replacing plan A's detail leaves plan B's rows alone
	_, err = r.ReplaceDetail(pa.ID, []entities.PlanEntry{
		{PlanID: pa.ID, Fecha: "2025-03-09", Linea: 1, CodigoLab: &code, Jornales: 5},
	})
	require.NoError(t, err)

	rowsB, err := r.Detail(pb.ID)
	require.NoError(t, err)
	require.Len(t, rowsB, 1)
	assert.Equal(t, 2.0, rowsB[0].Jornales)
}
