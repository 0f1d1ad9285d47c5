package models

import "time"

type Organ struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// OrganCountry asocia un país a un órgano. Un país puede estar en varios órganos.
type OrganCountry struct {
	OrganID   uint `gorm:"primaryKey;autoIncrement:false"`
	CountryID uint `gorm:"primaryKey;autoIncrement:false"`
}
