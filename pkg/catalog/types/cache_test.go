package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jornales/entities"
)

func TestBuildCacheIndexes(t *testing.T) {
	labores := []entities.Labor{
		{Code: 100, Name: "Poda de formación", Group: "CULTIVO", Subgroup: "PODA"},
		{Code: 101, Name: "Deshierbo manual", Group: "CULTIVO", Subgroup: "DESHIERBO"},
		{Code: 102, Name: "Poda sanitaria", Group: "SANIDAD", Subgroup: "PODA"},
		{Code: 103, Name: "Sin subgrupo", Group: "OTROS", Subgroup: "  "},
	}
	redes := []entities.Network{
		{RedID: "R02", LoteID: "L01"},
		{RedID: "R01", LoteID: "L01"},
		{RedID: "R01", LoteID: "L02"},
	}
	sectores := []entities.Sector{
		{SectorID: "S02", LoteID: "L01", RedID: "R01", Ha: 3.5},
		{SectorID: "S01", LoteID: "L01", RedID: "R01", Ha: 2.25},
		{SectorID: "S01", LoteID: "L02", RedID: "R01", Ha: 9},
	}

	c := BuildCache(labores, nil, redes, sectores)

	// subgroups: deduped, blank dropped, sorted
	assert.Equal(t, []string{"DESHIERBO", "PODA"}, c.Subgrupos)

	rs := c.RedesDeLote("L01")
	require.Len(t, rs, 2)
	assert.Equal(t, "R01", rs[0].RedID)
	assert.Equal(t, "R02", rs[1].RedID)
	assert.Empty(t, c.RedesDeLote("L99"))

	ss := c.SectoresDe("L01", "R01")
	require.Len(t, ss, 2)
	assert.Equal(t, "S01", ss[0].SectorID)
	assert.Equal(t, "S02", ss[1].SectorID)

	assert.Equal(t, 2.25, c.SectorHa("L01", "R01", "S01"))
	assert.Equal(t, 9.0, c.SectorHa("L02", "R01", "S01"))
	assert.Zero(t, c.SectorHa("L01", "R02", "S01"))

	nombre, grupo := c.LaborDisplay(102)
	assert.Equal(t, "Poda sanitaria", nombre)
	assert.Equal(t, "SANIDAD", grupo)
	nombre, grupo = c.LaborDisplay(999)
	assert.Empty(t, nombre)
	assert.Empty(t, grupo)
}

func TestDedupeDepartments(t *testing.T) {
	in := []entities.Department{
		{ID: 1, Name: "Sanidad", Crop: "PALTO"},
		{ID: 2, Name: " SANIDAD ", Crop: "palto"},
		{ID: 3, Name: "Sanidad", Crop: "ARANDANO"},
		{ID: 4, Name: "Riego", Crop: "PALTO"},
	}
	out := DedupeDepartments(in)
	require.Len(t, out, 3)
	// first occurrence wins
	assert.Equal(t, uint(1), out[0].ID)
	assert.Equal(t, uint(3), out[1].ID)
	assert.Equal(t, uint(4), out[2].ID)
}

func TestDepartmentLabel(t *testing.T) {
	assert.Equal(t, "SANIDAD - PALTO", DepartmentLabel(entities.Department{Name: "SANIDAD", Crop: "PALTO"}))
	assert.Equal(t, "SANIDAD PALTO", DepartmentLabel(entities.Department{Name: "SANIDAD PALTO", Crop: "palto"}))
	assert.Equal(t, "RIEGO", DepartmentLabel(entities.Department{Name: " RIEGO "}))
}

func TestFormatRedID(t *testing.T) {
	assert.Equal(t, "R01_L01", FormatRedID("R01_L01_Pal:R01"))
	assert.Equal(t, "R02_L05", FormatRedID("R02_L05_ARANDANOS"))
	assert.Equal(t, "R03_L01", FormatRedID("R03_L01_PALTO_"))
	assert.Equal(t, "", FormatRedID(""))
	assert.Equal(t, "R04", FormatRedID("R04"))
}

func TestFormatSectorLabel(t *testing.T) {
	assert.Equal(t, "S2", FormatSectorLabel("L05_ARA_R01_S02"))
	assert.Equal(t, "S7", FormatSectorLabel("L05-R01-S07"))
	assert.Equal(t, "S3", FormatSectorLabel("S03_L01"))
	assert.Equal(t, "LOTE", FormatSectorLabel("LOTE"))
	assert.Equal(t, "", FormatSectorLabel("  "))
}
