package audit

import (
	"mundebate-backend/internal/database"

	"github.com/gofiber/fiber/v2"
)

// GET /api/records/:id/audit (solo admin)
func ListRecordAuditHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Identificador inválido")
		}

		entries, err := ListForRecord(database.DB, uint(id))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo consultar la auditoría")
		}

		return c.JSON(entries)
	}
}
