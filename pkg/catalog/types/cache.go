package types

import (
	"sort"
	"strings"

	"jornales/entities"
)

// Cache is the read-only index set built once per department selection. It is
// rebuilt wholesale whenever the department changes, never patched in place.
type Cache struct {
	Labores  []entities.Labor   `json:"labores"`
	Lotes    []entities.Field   `json:"lotes"`
	Redes    []entities.Network `json:"redes"`
	Sectores []entities.Sector  `json:"sectores"`

	LaborByCode map[int]entities.Labor `json:"-"`
	Subgrupos   []string               `json:"subgrupos"`

	redesPorLote     map[string][]entities.Network
	sectoresPorLR    map[string][]entities.Sector
	haPorLoteRedSect map[string]float64
}

func key2(a, b string) string    { return a + "__" + b }
func key3(a, b, c string) string { return a + "__" + b + "__" + c }

func BuildCache(labores []entities.Labor, lotes []entities.Field, redes []entities.Network, sectores []entities.Sector) *Cache {
	c := &Cache{
		Labores:  labores,
		Lotes:    lotes,
		Redes:    redes,
		Sectores: sectores,

		LaborByCode:      make(map[int]entities.Labor, len(labores)),
		redesPorLote:     map[string][]entities.Network{},
		sectoresPorLR:    map[string][]entities.Sector{},
		haPorLoteRedSect: make(map[string]float64, len(sectores)),
	}

	seen := map[string]bool{}
	for _, l := range labores {
		c.LaborByCode[l.Code] = l
		sg := strings.TrimSpace(l.Subgroup)
		if sg != "" && !seen[sg] {
			seen[sg] = true
			c.Subgrupos = append(c.Subgrupos, sg)
		}
	}
	sort.Strings(c.Subgrupos)

	for _, r := range redes {
		c.redesPorLote[r.LoteID] = append(c.redesPorLote[r.LoteID], r)
	}
	for _, arr := range c.redesPorLote {
		sort.Slice(arr, func(i, j int) bool { return arr[i].RedID < arr[j].RedID })
	}

	for _, s := range sectores {
		k := key2(s.LoteID, s.RedID)
		c.sectoresPorLR[k] = append(c.sectoresPorLR[k], s)
		c.haPorLoteRedSect[key3(s.LoteID, s.RedID, s.SectorID)] = s.Ha
	}
	for _, arr := range c.sectoresPorLR {
		sort.Slice(arr, func(i, j int) bool { return arr[i].SectorID < arr[j].SectorID })
	}

	return c
}

func (c *Cache) RedesDeLote(loteID string) []entities.Network {
	return c.redesPorLote[loteID]
}

func (c *Cache) SectoresDe(loteID, redID string) []entities.Sector {
	return c.sectoresPorLR[key2(loteID, redID)]
}

// SectorHa returns the stored area of a (lote, red, sector) triple, zero when
// the triple is unknown.
func (c *Cache) SectorHa(loteID, redID, sectorID string) float64 {
	return c.haPorLoteRedSect[key3(loteID, redID, sectorID)]
}

// LaborDisplay resolves a labor code to its display name and group.
func (c *Cache) LaborDisplay(codigo int) (nombre, grupo string) {
	l, ok := c.LaborByCode[codigo]
	if !ok {
		return "", ""
	}
	return l.Name, l.Group
}
