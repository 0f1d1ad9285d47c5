package models

import "time"

// Model es una edición del simulacro: agrupa órganos y sus países miembros.
type Model struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ModelOrgan asocia un órgano a un modelo. Un órgano puede pertenecer a varios modelos.
type ModelOrgan struct {
	ModelID uint `gorm:"primaryKey;autoIncrement:false"`
	OrganID uint `gorm:"primaryKey;autoIncrement:false"`
}
