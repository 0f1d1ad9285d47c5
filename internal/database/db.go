package database

import (
	"log"

	"mundebate-backend/internal/config"
	"mundebate-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	// TranslateError para que las violaciones de unicidad lleguen como
	// gorm.ErrDuplicatedKey y los find-or-create concurrentes puedan recuperarse.
	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("No se pudo conectar a la base de datos: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Country{},
		&models.Organ{},
		&models.Model{},
		&models.ModelOrgan{},
		&models.OrganCountry{},
		&models.QualityScale{},
		&models.RoleWeight{},
		&models.Record{},
		&models.RecordAudit{},
	)
	if err != nil {
		log.Fatalf("Error en AutoMigrate: %v", err)
	}

	if err := Seed(DB, cfg); err != nil {
		log.Fatalf("Error sembrando datos iniciales: %v", err)
	}

	log.Println("Conexión a la base de datos lista. Migración completada.")
}
