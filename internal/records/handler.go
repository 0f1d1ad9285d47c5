package records

import (
	"errors"
	"fmt"
	"time"

	"mundebate-backend/internal/auth"
	"mundebate-backend/internal/database"
	"mundebate-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateRecordRequest struct {
	OrganID      uint   `json:"organ_id"`
	CountryID    uint   `json:"country_id"`
	QualityID    uint   `json:"quality_id"`
	ContextID    *uint  `json:"context_id"`
	Observations string `json:"observations"`
}

type RecordUser struct {
	ID       uint            `json:"id"`
	Username string          `json:"username"`
	Role     models.UserRole `json:"role"`
}

type RecordResponse struct {
	ID                uint                `json:"id"`
	User              RecordUser          `json:"user"`
	Organ             models.Organ        `json:"organ"`
	Country           models.Country      `json:"country"`
	Quality           models.QualityScale `json:"quality"`
	ContextID         *uint               `json:"context_id"`
	RoleWeightApplied int                 `json:"role_weight_applied"`
	QualityValue      int                 `json:"quality_value"`
	FinalScore        int                 `json:"final_score"`
	Observations      string              `json:"observations"`
	CreatedAt         time.Time           `json:"created_at"`
}

func toResponse(r *models.Record) RecordResponse {
	return RecordResponse{
		ID: r.ID,
		User: RecordUser{
			ID:       r.User.ID,
			Username: r.User.Username,
			Role:     r.User.Role,
		},
		Organ:             r.Organ,
		Country:           r.Country,
		Quality:           r.Quality,
		ContextID:         r.ContextID,
		RoleWeightApplied: r.RoleWeightApplied,
		QualityValue:      r.QualityValue,
		FinalScore:        r.FinalScore,
		Observations:      r.Observations,
		CreatedAt:         r.CreatedAt,
	}
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, ErrMissingFields), errors.Is(err, ErrInvalidQuality):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, ErrForbidden):
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	default:
		return err
	}
}

func organIDFromQuery(c *fiber.Ctx) (*uint, error) {
	organStr := c.Query("organId")
	if organStr == "" {
		return nil, nil
	}
	var organID uint
	if _, err := fmt.Sscan(organStr, &organID); err != nil || organID == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "organId inválido")
	}
	return &organID, nil
}

// POST /api/records
func CreateRecordHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, role, err := auth.Identity(c)
		if err != nil {
			return err
		}

		var body CreateRecordRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		record, err := Create(database.DB, CreateInput{
			UserID:       userID,
			UserRole:     role,
			OrganID:      body.OrganID,
			CountryID:    body.CountryID,
			QualityID:    body.QualityID,
			ContextID:    body.ContextID,
			Observations: body.Observations,
		})
		if err != nil {
			return mapServiceError(err)
		}

		// Releer con las relaciones para responder el registro completo.
		var full models.Record
		if err := database.DB.
			Preload("User").
			Preload("Organ").
			Preload("Country").
			Preload("Quality").
			First(&full, record.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo leer el registro creado")
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(&full))
	}
}

// DELETE /api/records/:id
func DeleteRecordHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, role, err := auth.Identity(c)
		if err != nil {
			return err
		}

		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Identificador inválido")
		}

		if err := Delete(database.DB, userID, role, uint(id)); err != nil {
			return mapServiceError(err)
		}
		return c.JSON(fiber.Map{"message": "Registro eliminado"})
	}
}

// GET /api/records/model/:modelId?organId=
func ListRecordsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, role, err := auth.Identity(c)
		if err != nil {
			return err
		}

		modelID, err := c.ParamsInt("modelId")
		if err != nil || modelID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Identificador de modelo inválido")
		}

		organID, err := organIDFromQuery(c)
		if err != nil {
			return err
		}

		recs, err := List(database.DB, userID, role, uint(modelID), organID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar los registros")
		}

		res := make([]RecordResponse, 0, len(recs))
		for i := range recs {
			res = append(res, toResponse(&recs[i]))
		}
		return c.JSON(res)
	}
}

// GET /api/records/ranking/:modelId?organId=
func RankingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		modelID, err := c.ParamsInt("modelId")
		if err != nil || modelID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Identificador de modelo inválido")
		}

		organID, err := organIDFromQuery(c)
		if err != nil {
			return err
		}

		ranking, err := Ranking(database.DB, uint(modelID), organID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo calcular el ranking")
		}
		return c.JSON(ranking)
	}
}
