package audit

import (
	"mundebate-backend/internal/models"

	"gorm.io/gorm"
)

// WriteRecordAudit deja constancia de una acción sobre un registro. Debe
// llamarse dentro de la misma transacción que la escritura del registro para
// que ambas queden o ninguna.
func WriteRecordAudit(db *gorm.DB, recordID uint, action models.AuditAction, performedBy uint) error {
	entry := models.RecordAudit{
		RecordID:    recordID,
		Action:      action,
		PerformedBy: performedBy,
	}
	return db.Create(&entry).Error
}

func ListForRecord(db *gorm.DB, recordID uint) ([]models.RecordAudit, error) {
	var entries []models.RecordAudit
	err := db.Where("record_id = ?", recordID).Order("created_at asc").Find(&entries).Error
	return entries, err
}
