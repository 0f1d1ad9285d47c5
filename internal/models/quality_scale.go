package models

// QualityScale es la escala de calidad de una intervención (1 a 5).
type QualityScale struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Label string `gorm:"size:50;not null;uniqueIndex" json:"label"`
	Value int    `gorm:"not null" json:"value"`
}
