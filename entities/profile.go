package entities

type Profile struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Email  string `gorm:"uniqueIndex" json:"email"`
	Rol    string `gorm:"column:rol" json:"rol"` // ADMIN | JEFE
	Secret string `gorm:"column:secret" json:"-"`
}

func (Profile) TableName() string { return "profiles" }

// ManagerAccess maps a non-admin user to the departments they may plan for.
type ManagerAccess struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Email   string `gorm:"index" json:"email"`
	DeptoID uint   `gorm:"column:depto_id" json:"depto_id"`
	Active  bool   `gorm:"column:activo" json:"activo"`
}

func (ManagerAccess) TableName() string { return "jefes_acceso" }
