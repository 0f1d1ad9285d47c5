package catalog

import (
	"mundebate-backend/internal/database"
	"mundebate-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GET /api/countries
func ListCountriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var countries []models.Country
		if err := database.DB.Order("name asc").Find(&countries).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar los países")
		}
		return c.JSON(countries)
	}
}

// GET /api/countries/quality-scale
func QualityScaleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var scales []models.QualityScale
		if err := database.DB.Order("value asc").Find(&scales).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo consultar la escala de calidad")
		}
		return c.JSON(scales)
	}
}
