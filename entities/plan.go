package entities

import "time"

const PlanStatusDraft = "BORRADOR"

// Plan is the monthly schedule header: one row per (year, month, department).
// Created on first access, never deleted here.
type Plan struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Year      int       `gorm:"column:anio;uniqueIndex:uq_plan_period" json:"anio"`
	Month     int       `gorm:"column:mes;uniqueIndex:uq_plan_period" json:"mes"`
	DeptoID   uint      `gorm:"column:depto_id;uniqueIndex:uq_plan_period" json:"depto_id"`
	Manager   string    `gorm:"column:jefe" json:"jefe"`
	Status    string    `gorm:"column:estado" json:"estado"`
	CreatedAt time.Time `json:"created_at"`
}

func (Plan) TableName() string { return "planes" }

// PlanEntry is one persisted grid row. The in-memory representation lives in
// pkg/grid; this struct only carries what survives a save.
type PlanEntry struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	PlanID    uint    `gorm:"column:plan_id;index" json:"plan_id"`
	Fecha     string  `gorm:"column:fecha;index" json:"fecha"` // YYYY-MM-DD
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

func (PlanEntry) TableName() string { return "plan_detalle" }
