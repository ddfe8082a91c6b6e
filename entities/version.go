package entities

import "time"

// PlanVersion freezes the persisted detail of a plan at a point in time.
// Headers and their entries are append-only: nothing in this service ever
// updates or deletes them once written.
type PlanVersion struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PlanID    uint      `gorm:"column:plan_id;index" json:"plan_id"`
	Seq       int       `gorm:"column:seq" json:"seq"`
	DeptoID   uint      `gorm:"column:depto_id" json:"depto_id"`
	Year      int       `gorm:"column:anio" json:"anio"`
	Month     int       `gorm:"column:mes" json:"mes"`
	CreatedBy string    `gorm:"column:created_by" json:"created_by"`
	Comment   string    `gorm:"column:comentario" json:"comentario"`
	CreatedAt time.Time `json:"created_at"`
}

func (PlanVersion) TableName() string { return "plan_versiones" }

// PlanVersionEntry is a verbatim copy of a PlanEntry at snapshot time.
type PlanVersionEntry struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	VersionID uint    `gorm:"column:version_id;index" json:"version_id"`
	Fecha     string  `gorm:"column:fecha" json:"fecha"`
	Linea     int     `gorm:"column:linea" json:"linea"`
	LoteID    string  `gorm:"column:lote_id" json:"lote_id"`
	RedID     string  `gorm:"column:red_id" json:"red_id"`
	SectorID  string  `gorm:"column:sector_id" json:"sector_id"`
	CodigoLab *int    `gorm:"column:codigo_labor" json:"codigo_labor"`
	Ratio     float64 `gorm:"column:ratio" json:"ratio"`
	HaProg    float64 `gorm:"column:ha_prog" json:"ha_prog"`
	Jornales  float64 `gorm:"column:jornales_prog" json:"jornales_prog"`
	Obs       string  `gorm:"column:obs" json:"obs"`
}

func (PlanVersionEntry) TableName() string { return "plan_detalle_versiones" }
