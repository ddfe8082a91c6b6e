package grid

import (
	"strings"

	"github.com/google/uuid"
)

type Mode string

const (
	ModeAuto   Mode = "AUTO"
	ModeManual Mode = "MANUAL"
)

// Row is one editable grid line. Ratio, HaProg and Jornales hold the raw text
// the user typed; coercion to numbers happens on derivation and at save time.
type Row struct {
	UIID  string `json:"ui_id"`
	Fecha string `json:"fecha"`
	Linea int    `json:"linea"`

	LoteID   string `json:"lote_id"`
	RedID    string `json:"red_id"`
	SectorID string `json:"sector_id"`

	Subgrupo string `json:"subgrupo_labor"`
	Codigo   *int   `json:"codigo_labor"`

	Ratio    string `json:"ratio"`
	HaProg   string `json:"ha_prog"`
	Jornales string `json:"jornales_prog"`

	Modo Mode   `json:"modo_jornales"`
	Obs  string `json:"obs"`

	// ObsOpen is UI state only; it is never persisted.
	ObsOpen bool `json:"obs_open"`
}

func newRow(fecha string) *Row {
	return &Row{
		UIID:     uuid.NewString(),
		Fecha:    fecha,
		Ratio:    "0",
		HaProg:   "0",
		Jornales: "0",
		Modo:     ModeManual,
	}
}

// clone copies the row under a fresh identity with the obs panel closed.
func (r *Row) clone(fecha string) *Row {
	c := *r
	c.UIID = uuid.NewString()
	c.Fecha = fecha
	c.ObsOpen = false
	if r.Codigo != nil {
		code := *r.Codigo
		c.Codigo = &code
	}
	return &c
}

// Empty reports whether the row carries no data at all. Empty rows are
// excluded from validation and from persistence.
func (r *Row) Empty() bool {
	return r.LoteID == "" &&
		r.RedID == "" &&
		r.SectorID == "" &&
		r.Codigo == nil &&
		ToNumber(r.HaProg) == 0 &&
		ToNumber(r.Jornales) == 0 &&
		strings.TrimSpace(r.Obs) == ""
}

func (r *Row) reset() {
	r.LoteID = ""
	r.RedID = ""
	r.SectorID = ""
	r.Subgrupo = ""
	r.Codigo = nil
	r.Ratio = "0"
	r.HaProg = "0"
	r.Jornales = "0"
	r.Modo = ModeManual
	r.Obs = ""
	r.ObsOpen = false
}
