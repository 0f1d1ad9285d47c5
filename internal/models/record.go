package models

import "time"

// Record es una intervención puntuada. Los campos *_applied y quality_value son
// una foto congelada al momento de crear: cambios posteriores en RoleWeight o
// QualityScale no alteran puntajes históricos. Un registro nunca se edita,
// se borra y se vuelve a crear.
type Record struct {
	ID                   uint `gorm:"primaryKey"`
	UserID               uint `gorm:"not null;index"`
	User                 User
	OrganID              uint `gorm:"not null;index"`
	Organ                Organ
	CountryID            uint `gorm:"not null;index"`
	Country              Country
	QualityID            uint `gorm:"not null"`
	Quality              QualityScale `gorm:"foreignKey:QualityID"`
	ContextID            *uint
	RoleWeightApplied    int    `gorm:"not null"`
	ContextWeightApplied int    `gorm:"not null;default:1"`
	QualityValue         int    `gorm:"not null"`
	FinalScore           int    `gorm:"not null"`
	Observations         string `gorm:"type:text"`
	CreatedAt            time.Time
}
