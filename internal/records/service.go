package records

import (
	"errors"

	"mundebate-backend/internal/audit"
	"mundebate-backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrMissingFields  = errors.New("órgano, país y calidad son obligatorios")
	ErrInvalidQuality = errors.New("escala de calidad inválida")
	ErrNotFound       = errors.New("registro no encontrado")
	ErrForbidden      = errors.New("no puedes borrar registros de otro usuario")
)

type CreateInput struct {
	UserID       uint
	UserRole     models.UserRole
	OrganID      uint
	CountryID    uint
	QualityID    uint
	ContextID    *uint
	Observations string
}

// Create anota una intervención. El peso del rol y el valor de calidad quedan
// congelados en el registro: ediciones posteriores de las tablas RoleWeight o
// QualityScale no cambian puntajes ya otorgados.
func Create(db *gorm.DB, in CreateInput) (*models.Record, error) {
	if in.OrganID == 0 || in.CountryID == 0 || in.QualityID == 0 {
		return nil, ErrMissingFields
	}

	var quality models.QualityScale
	if err := db.First(&quality, in.QualityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidQuality
		}
		return nil, err
	}

	weight, err := roleWeight(db, in.UserRole)
	if err != nil {
		return nil, err
	}

	record := models.Record{
		UserID:               in.UserID,
		OrganID:              in.OrganID,
		CountryID:            in.CountryID,
		QualityID:            in.QualityID,
		ContextID:            in.ContextID,
		RoleWeightApplied:    weight,
		ContextWeightApplied: 1,
		QualityValue:         quality.Value,
		FinalScore:           quality.Value * weight,
		Observations:         in.Observations,
	}

	// Registro y auditoría en la misma transacción: o quedan los dos o ninguno.
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		return audit.WriteRecordAudit(tx, record.ID, models.AuditActionCreate, in.UserID)
	})
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// roleWeight resuelve el peso del rol; sin fila explícita el peso es 1.
func roleWeight(db *gorm.DB, role models.UserRole) (int, error) {
	var rw models.RoleWeight
	err := db.Where("user_role = ?", role).First(&rw).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return rw.Weight, nil
}

// Delete borra un registro. Solo el dueño o un admin pueden hacerlo. La fila
// de auditoría DELETE se escribe en la misma transacción y sobrevive al borrado.
func Delete(db *gorm.DB, requesterID uint, requesterRole models.UserRole, recordID uint) error {
	var record models.Record
	if err := db.First(&record, recordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if requesterRole != models.RoleAdmin && record.UserID != requesterID {
		return ErrForbidden
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := audit.WriteRecordAudit(tx, record.ID, models.AuditActionDelete, requesterID); err != nil {
			return err
		}
		return tx.Delete(&record).Error
	})
}

// List devuelve los registros de los órganos asociados al modelo, el más
// reciente primero. Los no-admin solo ven los suyos.
func List(db *gorm.DB, requesterID uint, requesterRole models.UserRole, modelID uint, organID *uint) ([]models.Record, error) {
	q := db.
		Select("records.*").
		Joins("JOIN model_organs mo ON mo.organ_id = records.organ_id").
		Where("mo.model_id = ?", modelID)

	if requesterRole != models.RoleAdmin {
		q = q.Where("records.user_id = ?", requesterID)
	}
	if organID != nil {
		q = q.Where("records.organ_id = ?", *organID)
	}

	recs := make([]models.Record, 0)
	err := q.
		Preload("User").
		Preload("Organ").
		Preload("Country").
		Preload("Quality").
		Order("records.created_at desc").
		Find(&recs).Error
	return recs, err
}
