package models

import "time"

type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleMesa       UserRole = "mesa"
	RoleSupervisor UserRole = "supervisor"
)

// Valid comprueba que el rol sea uno de los tres conocidos.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleMesa, RoleSupervisor:
		return true
	}
	return false
}

type User struct {
	ID           uint     `gorm:"primaryKey"`
	Username     string   `gorm:"size:50;uniqueIndex;not null"`
	PasswordHash string   `gorm:"size:255;not null"`
	Role         UserRole `gorm:"size:20;not null"`
	IsActive     bool     `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
