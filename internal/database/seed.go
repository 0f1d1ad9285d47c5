package database

import (
	"log"

	"mundebate-backend/internal/config"
	"mundebate-backend/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed deja los datos base en su sitio: escala de calidad, pesos por rol y el
// usuario admin. Es idempotente, se ejecuta en cada arranque.
func Seed(db *gorm.DB, cfg *config.Config) error {
	scales := []models.QualityScale{
		{Label: "Muy Mala", Value: 1},
		{Label: "Mala", Value: 2},
		{Label: "Regular", Value: 3},
		{Label: "Buena", Value: 4},
		{Label: "Excelente", Value: 5},
	}
	for i := range scales {
		if err := db.Where(models.QualityScale{Label: scales[i].Label}).
			Attrs(models.QualityScale{Value: scales[i].Value}).
			FirstOrCreate(&scales[i]).Error; err != nil {
			return err
		}
	}

	weights := []models.RoleWeight{
		{UserRole: models.RoleAdmin, Weight: 0},
		{UserRole: models.RoleMesa, Weight: 1},
		{UserRole: models.RoleSupervisor, Weight: 2},
	}
	for i := range weights {
		if err := db.Where(models.RoleWeight{UserRole: weights[i].UserRole}).
			Attrs(models.RoleWeight{Weight: weights[i].Weight}).
			FirstOrCreate(&weights[i]).Error; err != nil {
			return err
		}
	}

	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := models.User{
			Username:     "admin",
			PasswordHash: string(hash),
			Role:         models.RoleAdmin,
			IsActive:     true,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		log.Println("Usuario admin creado")
	}

	if cfg.SeedDemoData {
		if err := seedDemo(db); err != nil {
			return err
		}
	}

	return nil
}

// seedDemo crea el Consejo de Seguridad con sus cinco miembros permanentes y
// un modelo inicial, para probar el sistema sin cargar datos a mano.
func seedDemo(db *gorm.DB) error {
	countries := []models.Country{
		{Name: "Estados Unidos", ISOCode: "US"},
		{Name: "Reino Unido", ISOCode: "GB"},
		{Name: "Francia", ISOCode: "FR"},
		{Name: "Rusia", ISOCode: "RU"},
		{Name: "China", ISOCode: "CN"},
	}
	for i := range countries {
		if err := db.Where(models.Country{ISOCode: countries[i].ISOCode}).
			Attrs(models.Country{Name: countries[i].Name}).
			FirstOrCreate(&countries[i]).Error; err != nil {
			return err
		}
	}

	organ := models.Organ{Name: "Consejo de Seguridad"}
	if err := db.Where(models.Organ{Name: organ.Name}).FirstOrCreate(&organ).Error; err != nil {
		return err
	}

	model := models.Model{Name: "Modelo Inicial"}
	if err := db.Where(models.Model{Name: model.Name}).FirstOrCreate(&model).Error; err != nil {
		return err
	}

	mo := models.ModelOrgan{ModelID: model.ID, OrganID: organ.ID}
	if err := db.Where(&mo).FirstOrCreate(&mo).Error; err != nil {
		return err
	}

	for _, c := range countries {
		oc := models.OrganCountry{OrganID: organ.ID, CountryID: c.ID}
		if err := db.Where(&oc).FirstOrCreate(&oc).Error; err != nil {
			return err
		}
	}

	log.Println("Datos de demostración sembrados")
	return nil
}
