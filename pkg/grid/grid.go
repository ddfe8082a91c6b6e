package grid

import (
	"errors"

	"jornales/entities"
)

var (
	ErrNoSuchDay = errors.New("date outside the active month")
	ErrNoSuchRow = errors.New("row not found")
)

// Grid holds the whole in-memory plan for one (year, month): a day-keyed map
// of ordered rows. All mutation is in memory; nothing touches the store until
// an explicit save.
type Grid struct {
	Year  int
	Month int

	days []string
	rows map[string][]*Row

	loadToken uint64
}

func New(year, month int) *Grid {
	g := &Grid{rows: map[string][]*Row{}}
	g.SetMonth(year, month)
	return g
}

func (g *Grid) Days() []string { return g.days }

// Rows returns the ordered rows of one date. Callers must not reorder the
// returned slice; all structural changes go through the grid.
func (g *Grid) Rows(fecha string) []*Row { return g.rows[fecha] }

// SetMonth rebuilds the day key set for the new period. Dates still in range
// keep their rows; everything else is dropped.
func (g *Grid) SetMonth(year, month int) {
	g.Year, g.Month = year, month
	g.days = DaysOfMonth(year, month)

	next := make(map[string][]*Row, len(g.days))
	for _, d := range g.days {
		next[d] = g.rows[d]
	}
	g.rows = next
}

// ResetValues clears every row back to defaults while keeping the row
// skeletons per date. Runs on department change so no stale cross-department
// reference survives.
func (g *Grid) ResetValues() {
	for _, arr := range g.rows {
		for _, r := range arr {
			r.reset()
		}
	}
}

func (g *Grid) hasDay(fecha string) bool {
	_, ok := g.rows[fecha]
	return ok
}

func (g *Grid) find(fecha, uiID string) (int, *Row) {
	for i, r := range g.rows[fecha] {
		if r.UIID == uiID {
			return i, r
		}
	}
	return -1, nil
}

// renumber restores the 1..N line invariant for one date. Idempotent; called
// after every structural change.
func (g *Grid) renumber(fecha string) {
	for i, r := range g.rows[fecha] {
		r.Linea = i + 1
		r.Fecha = fecha
	}
}

func (g *Grid) AddRow(fecha string) (*Row, error) {
	if !g.hasDay(fecha) {
		return nil, ErrNoSuchDay
	}
	r := newRow(fecha)
	g.rows[fecha] = append(g.rows[fecha], r)
	g.renumber(fecha)
	return r, nil
}

// DuplicateRow inserts a copy immediately after the source row.
func (g *Grid) DuplicateRow(fecha, uiID string) (*Row, error) {
	i, src := g.find(fecha, uiID)
	if src == nil {
		return nil, ErrNoSuchRow
	}
	c := src.clone(fecha)
	arr := g.rows[fecha]
	arr = append(arr[:i+1], append([]*Row{c}, arr[i+1:]...)...)
	g.rows[fecha] = arr
	g.renumber(fecha)
	return c, nil
}

func (g *Grid) RemoveRow(fecha, uiID string) error {
	i, r := g.find(fecha, uiID)
	if r == nil {
		return ErrNoSuchRow
	}
	arr := g.rows[fecha]
	g.rows[fecha] = append(arr[:i], arr[i+1:]...)
	g.renumber(fecha)
	return nil
}

// ============================================================
// Computation triggers: jornales follows area×ratio whenever
// the row is in AUTO mode.
// ============================================================

// SetSubgroup narrows the labor picker; the chosen labor is cleared.
func (g *Grid) SetSubgroup(fecha, uiID, subgrupo string) error {
	_, r := g.find(fecha, uiID)
	if r == nil {
		return ErrNoSuchRow
	}
	r.Subgrupo = subgrupo
	r.Codigo = nil
	return nil
}

// SetLabor applies a labor selection: subgroup and ratio come from the labor
// definition; in AUTO mode jornales is rederived against the current area.
func (g *Grid) SetLabor(fecha, uiID string, codigo *int, subgrupo string, ratioDef float64) error {
	_, r := g.find(fecha, uiID)
	if r == nil {
		return ErrNoSuchRow
	}
	r.Codigo = codigo
	r.Subgrupo = subgrupo
	r.Ratio = FormatNum(ratioDef)
	if r.Modo == ModeAuto {
		r.Jornales = FormatNum(DeriveEffort(ToNumber(r.HaProg), ratioDef))
	}
	return nil
}

// SetLote selects a field; dependent levels are cleared.
func (g *Grid) SetLote(fecha, uiID, loteID string) error {
	_, r := g.find(fecha, uiID)
	if r == nil {
		return ErrNoSuchRow
	}
	r.LoteID = loteID
	r.RedID = ""
	r.SectorID = ""
	return nil
}

// SetRed selects a network; the sector is cleared.
func (g *Grid) SetRed(fecha, uiID, redID string) error {
	_, r := g.find(fecha, uiID)
	if r == nil {
		return ErrNoSuchRow
	}
	r.RedID = redID
	r.SectorID = ""
	return nil
}

// SetSector selects a sector. Only a real selection overwrites the area with
// the sector's stored area; clearing the sector leaves the area as typed.
func (g *Grid) SetSector(fecha, uiID, sectorID string, sectorHa float64) error {
	_, r := g.find(fecha, uiID)
	if r == nil {
		return ErrNoSuchRow
	}
	r.SectorID = sectorID
	ha := ToNumber(r.HaProg)
	if sectorID != "" {
		r.HaProg = FormatNum(sectorHa)
		ha = sectorHa
	}
	if r.Modo == ModeAuto {
		r.Jornales = FormatNum(DeriveEffort(ha, ToNumber(r.Ratio)))
	}
	return nil
}

// SetHa stores the raw area text verbatim and rederives jornales in AUTO mode.
func (g *Grid) SetHa(fecha, uiID, raw string) error {
	_, r := g.find(fecha, uiID)
	if r == nil {
		return ErrNoSuchRow
	}
	r.HaProg = raw
	if r.Modo == ModeAuto {
		r.Jornales = FormatNum(DeriveEffort(ToNumber(raw), ToNumber(r.Ratio)))
	}
	return nil
}

// SetRatio stores the raw ratio text verbatim and rederives jornales in AUTO mode.
func (g *Grid) SetRatio(fecha, uiID, raw string) error {
	_, r := g.find(fecha, uiID)
	if r == nil {
		return ErrNoSuchRow
	}
	r.Ratio = raw
	if r.Modo == ModeAuto {
		r.Jornales = FormatNum(DeriveEffort(ToNumber(r.HaProg), ToNumber(raw)))
	}
	return nil
}

// SetJornales is the manual-entry path. In AUTO mode the value is derived, so
// direct edits are ignored.
func (g *Grid) SetJornales(fecha, uiID, raw string) error {
	_, r := g.find(fecha, uiID)
	if r == nil {
		return ErrNoSuchRow
	}
	if r.Modo == ModeAuto {
		return nil
	}
	r.Jornales = raw
	return nil
}

// SetModo toggles the computation mode. Switching to AUTO rederives
// immediately; switching to MANUAL leaves the current value untouched.
func (g *Grid) SetModo(fecha, uiID string, modo Mode) error {
	_, r := g.find(fecha, uiID)
	if r == nil {
		return ErrNoSuchRow
	}
	r.Modo = modo
	if modo == ModeAuto {
		r.Jornales = FormatNum(DeriveEffort(ToNumber(r.HaProg), ToNumber(r.Ratio)))
	}
	return nil
}

func (g *Grid) SetObs(fecha, uiID, obs string) error {
	_, r := g.find(fecha, uiID)
	if r == nil {
		return ErrNoSuchRow
	}
	r.Obs = obs
	return nil
}

func (g *Grid) ToggleObs(fecha, uiID string) error {
	_, r := g.find(fecha, uiID)
	if r == nil {
		return ErrNoSuchRow
	}
	r.ObsOpen = !r.ObsOpen
	return nil
}

// ============================================================
// Loading persisted detail
// ============================================================

// BeginLoad issues a load token. State may change again while the read is in
// flight; only the load holding the last-issued token may apply.
func (g *Grid) BeginLoad() uint64 {
	g.loadToken++
	return g.loadToken
}

// ApplyLoad replaces the whole day map with rows rebuilt from persisted
// entries, grouped by date and renumbered 1..N in arrival order. Stale loads
// (token no longer current) are discarded.
func (g *Grid) ApplyLoad(token uint64, entries []entities.PlanEntry) bool {
	if token != g.loadToken {
		return false
	}

	next := make(map[string][]*Row, len(g.days))
	for _, d := range g.days {
		next[d] = nil
	}

	for _, e := range entries {
		fecha := e.Fecha
		if len(fecha) > 10 {
			fecha = fecha[:10]
		}
		if _, ok := next[fecha]; !ok {
			continue
		}
		r := newRow(fecha)
		r.LoteID = e.LoteID
		r.RedID = e.RedID
		r.SectorID = e.SectorID
		if e.CodigoLab != nil {
			code := *e.CodigoLab
			r.Codigo = &code
		}
		r.Ratio = FormatNum(e.Ratio)
		r.HaProg = FormatNum(e.HaProg)
		r.Jornales = FormatNum(e.Jornales)
		r.Obs = e.Obs
		next[fecha] = append(next[fecha], r)
	}

	g.rows = next
	for _, d := range g.days {
		g.renumber(d)
	}
	return true
}

// ============================================================
// Reads for the outer layers
// ============================================================

// Flatten returns every row in day order.
func (g *Grid) Flatten() []*Row {
	var out []*Row
	for _, d := range g.days {
		out = append(out, g.rows[d]...)
	}
	return out
}

// Totals aggregates area and jornales across the whole plan.
func (g *Grid) Totals() (ha, jornales float64) {
	for _, r := range g.Flatten() {
		ha += ToNumber(r.HaProg)
		jornales += ToNumber(r.Jornales)
	}
	return ha, jornales
}

// DayTotals aggregates area and jornales for one date.
func (g *Grid) DayTotals(fecha string) (ha, jornales float64) {
	for _, r := range g.rows[fecha] {
		ha += ToNumber(r.HaProg)
		jornales += ToNumber(r.Jornales)
	}
	return ha, jornales
}

// SummaryItem is one labor line of the calendar overview.
type SummaryItem struct {
	Codigo   int     `json:"codigo"`
	Nombre   string  `json:"nombre"`
	Grupo    string  `json:"grupo"`
	Jornales float64 `json:"jornales"`
	Ha       float64 `json:"ha"`
}

// DaySummary lists the labor entries of one date, enriched through lookup
// (rows without a labor are skipped).
func (g *Grid) DaySummary(fecha string, lookup func(codigo int) (nombre, grupo string)) []SummaryItem {
	var items []SummaryItem
	for _, r := range g.rows[fecha] {
		if r.Codigo == nil {
			continue
		}
		nombre, grupo := "", ""
		if lookup != nil {
			nombre, grupo = lookup(*r.Codigo)
		}
		items = append(items, SummaryItem{
			Codigo:   *r.Codigo,
			Nombre:   nombre,
			Grupo:    grupo,
			Jornales: ToNumber(r.Jornales),
			Ha:       ToNumber(r.HaProg),
		})
	}
	return items
}
