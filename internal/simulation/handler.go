package simulation

import (
	"errors"

	"mundebate-backend/internal/database"

	"github.com/gofiber/fiber/v2"
)

type CreateModelRequest struct {
	Name   string      `json:"name"`
	Organs []OrganSpec `json:"organs"`
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, ErrDuplicateName),
		errors.Is(err, ErrMissingOrgans),
		errors.Is(err, ErrEmptyOrganName),
		errors.Is(err, ErrEmptyCountryName):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	default:
		return err
	}
}

// GET /api/models
func ListModelsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		views, err := ListModels(database.DB)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar los modelos")
		}
		return c.JSON(views)
	}
}

// GET /api/models/:id
func GetModelHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Identificador inválido")
		}

		view, err := GetModel(database.DB, uint(id))
		if err != nil {
			return mapServiceError(err)
		}
		return c.JSON(view)
	}
}

// POST /api/models (solo admin)
func CreateModelHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateModelRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		view, err := CreateModel(database.DB, body.Name, body.Organs)
		if err != nil {
			return mapServiceError(err)
		}
		return c.Status(fiber.StatusCreated).JSON(view)
	}
}

// DELETE /api/models/:id (solo admin)
func DeleteModelHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Identificador inválido")
		}

		if err := DeleteModel(database.DB, uint(id)); err != nil {
			return mapServiceError(err)
		}
		return c.JSON(fiber.Map{"message": "Modelo eliminado"})
	}
}

// GET /api/organs
func ListOrgansHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		views, err := ListOrgans(database.DB)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar los órganos")
		}
		return c.JSON(views)
	}
}
