package models

import "time"

type Country struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	ISOCode   string    `gorm:"column:iso_code;size:5;uniqueIndex;not null" json:"iso_code"`
	CreatedAt time.Time `json:"created_at"`
}
