package models

// RoleWeight es el multiplicador aplicado según el rol del usuario que anota.
type RoleWeight struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	UserRole UserRole `gorm:"size:20;not null;uniqueIndex" json:"user_role"`
	Weight   int      `gorm:"not null" json:"weight"`
}
