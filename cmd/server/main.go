package main

import (
	"log"
	"strings"

	"mundebate-backend/internal/audit"
	"mundebate-backend/internal/auth"
	"mundebate-backend/internal/catalog"
	"mundebate-backend/internal/config"
	"mundebate-backend/internal/database"
	"mundebate-backend/internal/models"
	"mundebate-backend/internal/records"
	"mundebate-backend/internal/simulation"
	"mundebate-backend/internal/users"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Error inesperado:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Error inesperado del servidor",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Público
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Rutas autenticadas
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	adminOnly := auth.RequireRole(models.RoleAdmin)

	// Gestión de usuarios
	protected.Get("/users", adminOnly, users.ListUsersHandler())
	protected.Post("/users", adminOnly, users.CreateUserHandler())
	protected.Put("/users/:id", adminOnly, users.UpdateUserHandler())
	protected.Delete("/users/:id", adminOnly, users.DeleteUserHandler())

	// Modelos
	protected.Get("/models", simulation.ListModelsHandler())
	protected.Get("/models/:id", simulation.GetModelHandler())
	protected.Post("/models", adminOnly, simulation.CreateModelHandler())
	protected.Delete("/models/:id", adminOnly, simulation.DeleteModelHandler())

	// Órganos y catálogo
	protected.Get("/organs", simulation.ListOrgansHandler())
	protected.Get("/countries", catalog.ListCountriesHandler())
	protected.Get("/countries/quality-scale", catalog.QualityScaleHandler())

	// Registros y ranking
	protected.Get("/records/model/:modelId", records.ListRecordsHandler())
	protected.Get("/records/ranking/:modelId", records.RankingHandler())
	protected.Get("/records/:id/audit", adminOnly, audit.ListRecordAuditHandler())
	protected.Post("/records", records.CreateRecordHandler())
	protected.Delete("/records/:id", records.DeleteRecordHandler())

	log.Println("Servidor escuchando en el puerto", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
