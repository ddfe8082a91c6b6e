package entities

// Reference catalog rows. All of these are read-only from the planner's point
// of view; they are maintained by the back-office import jobs.

type Department struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"column:departamento;index" json:"departamento"`
	Manager string `gorm:"column:jefe" json:"jefe"`
	Crop    string `gorm:"column:cultivo" json:"cultivo"`
	Estate  string `gorm:"column:fundo" json:"fundo"`
	Active  bool   `gorm:"column:activo" json:"activo"`
}

func (Department) TableName() string { return "deptos" }

type Labor struct {
	Code       int     `gorm:"column:codigo;primaryKey" json:"codigo"`
	Name       string  `gorm:"column:nombre" json:"nombre"`
	Department string  `gorm:"column:departamento;index" json:"departamento"`
	Group      string  `gorm:"column:grupo" json:"grupo"`
	Subgroup   string  `gorm:"column:subgrupo" json:"subgrupo"`
	Crop       string  `gorm:"column:cultivo" json:"cultivo"`
	Unit       string  `gorm:"column:um" json:"um"`
	RatioDef   float64 `gorm:"column:ratio_default" json:"ratio_default"`
	Active     bool    `gorm:"column:activo" json:"activo"`
}

func (Labor) TableName() string { return "labores" }

type Field struct {
	LoteID  string  `gorm:"column:lote_id;primaryKey" json:"lote_id"`
	Crop    string  `gorm:"column:cultivo" json:"cultivo"`
	Estate  string  `gorm:"column:fundo" json:"fundo"`
	HaTotal float64 `gorm:"column:ha_total" json:"ha_total"`
	Active  bool    `gorm:"column:activo" json:"activo"`
}

func (Field) TableName() string { return "lotes" }

type Network struct {
	RedID  string `gorm:"column:red_id;primaryKey" json:"red_id"`
	LoteID string `gorm:"column:lote_id;primaryKey;index" json:"lote_id"`
	RedRef string `gorm:"column:red_ref" json:"red_ref"`
}

func (Network) TableName() string { return "redes" }

type Sector struct {
	SectorID string  `gorm:"column:sector_id;primaryKey" json:"sector_id"`
	LoteID   string  `gorm:"column:lote_id;primaryKey" json:"lote_id"`
	RedID    string  `gorm:"column:red_id;primaryKey" json:"red_id"`
	Ha       float64 `gorm:"column:ha" json:"ha"`
	Variety  string  `gorm:"column:variedad" json:"variedad"`
}

func (Sector) TableName() string { return "sectores" }
