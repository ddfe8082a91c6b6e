package grid

// Bulk day replication. Everything here is in-memory only; the store is not
// touched until an explicit save.

// DaysInRange resolves the closed interval between the positions of inicio
// and fin within the active day sequence. Reversed bounds are normalized with
// min/max, so the result is always forward-ordered.
func (g *Grid) DaysInRange(inicio, fin string) []string {
	if inicio == "" || fin == "" {
		return nil
	}
	i, f := -1, -1
	for idx, d := range g.days {
		if d == inicio {
			i = idx
		}
		if d == fin {
			f = idx
		}
	}
	if i == -1 || f == -1 {
		return nil
	}
	a, b := i, f
	if a > b {
		a, b = b, a
	}
	return g.days[a : b+1]
}

// CopyDay appends copies of the origin's rows to the destination. No-op when
// origin and destination coincide or the origin is empty.
func (g *Grid) CopyDay(origen, destino string) {
	if origen == "" || destino == "" || origen == destino {
		return
	}
	if !g.hasDay(origen) || !g.hasDay(destino) {
		return
	}
	for _, r := range g.rows[origen] {
		g.rows[destino] = append(g.rows[destino], r.clone(destino))
	}
	g.renumber(destino)
}

// MoveDay appends the origin's rows to the destination and empties the origin.
func (g *Grid) MoveDay(origen, destino string) {
	if origen == "" || destino == "" || origen == destino {
		return
	}
	if !g.hasDay(origen) || !g.hasDay(destino) {
		return
	}
	g.rows[destino] = append(g.rows[destino], g.rows[origen]...)
	g.rows[origen] = nil
	g.renumber(destino)
	g.renumber(origen)
}

// CopyDayToRange replicates the origin's rows onto every date in the resolved
// range, excluding the origin itself.
func (g *Grid) CopyDayToRange(origen, inicio, fin string) {
	if origen == "" || !g.hasDay(origen) {
		return
	}
	for _, destino := range g.DaysInRange(inicio, fin) {
		if destino == origen {
			continue
		}
		for _, r := range g.rows[origen] {
			g.rows[destino] = append(g.rows[destino], r.clone(destino))
		}
		g.renumber(destino)
	}
}

// MoveDayToRange replicates the origin's rows onto every date in the resolved
// range (origin excluded) and then empties the origin: a true move with
// multiple targets.
func (g *Grid) MoveDayToRange(origen, inicio, fin string) {
	if origen == "" || !g.hasDay(origen) {
		return
	}
	targets := 0
	for _, destino := range g.DaysInRange(inicio, fin) {
		if destino == origen {
			continue
		}
		for _, r := range g.rows[origen] {
			g.rows[destino] = append(g.rows[destino], r.clone(destino))
		}
		g.renumber(destino)
		targets++
	}
	if targets > 0 {
		g.rows[origen] = nil
	}
}

// CopyRowToRange replicates a single row onto every date in the resolved
// range, excluding the row's own date.
func (g *Grid) CopyRowToRange(origen, uiID, inicio, fin string) error {
	_, src := g.find(origen, uiID)
	if src == nil {
		return ErrNoSuchRow
	}
	for _, destino := range g.DaysInRange(inicio, fin) {
		if destino == origen {
			continue
		}
		g.rows[destino] = append(g.rows[destino], src.clone(destino))
		g.renumber(destino)
	}
	return nil
}
