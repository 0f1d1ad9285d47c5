package users

import (
	"errors"
	"time"

	"mundebate-backend/internal/database"
	"mundebate-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type UserResponse struct {
	ID        uint            `json:"id"`
	Username  string          `json:"username"`
	Role      models.UserRole `json:"role"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
}

type CreateUserRequest struct {
	Username string          `json:"username"`
	Password string          `json:"password"`
	Role     models.UserRole `json:"role"`
}

func toResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrInvalidRole),
		errors.Is(err, ErrDuplicateUsername),
		errors.Is(err, ErrProtectedUser):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	default:
		return err
	}
}

// GET /api/users (solo admin)
func ListUsersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := List(database.DB)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar los usuarios")
		}

		res := make([]UserResponse, 0, len(list))
		for i := range list {
			res = append(res, toResponse(&list[i]))
		}
		return c.JSON(res)
	}
}

// POST /api/users (solo admin)
func CreateUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateUserRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		user, err := Create(database.DB, body.Username, body.Password, body.Role)
		if err != nil {
			return mapServiceError(err)
		}
		return c.Status(fiber.StatusCreated).JSON(toResponse(user))
	}
}

// PUT /api/users/:id (solo admin)
func UpdateUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Identificador inválido")
		}

		var body UpdateInput
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		user, err := Update(database.DB, uint(id), body)
		if err != nil {
			return mapServiceError(err)
		}
		return c.JSON(toResponse(user))
	}
}

// DELETE /api/users/:id (solo admin)
func DeleteUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Identificador inválido")
		}

		if err := Delete(database.DB, uint(id)); err != nil {
			return mapServiceError(err)
		}
		return c.JSON(fiber.Map{"message": "Usuario eliminado"})
	}
}
