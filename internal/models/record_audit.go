package models

import "time"

type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionDelete AuditAction = "DELETE"
)

// RecordAudit es el rastro de auditoría de los registros. Solo se agrega,
// nunca se borra. RecordID no lleva foreign key a propósito: la fila de
// auditoría debe sobrevivir al borrado del registro.
type RecordAudit struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	RecordID    uint        `gorm:"not null;index" json:"record_id"`
	Action      AuditAction `gorm:"size:20;not null" json:"action"`
	PerformedBy uint        `gorm:"not null" json:"performed_by"`
	CreatedAt   time.Time   `json:"created_at"`
}
