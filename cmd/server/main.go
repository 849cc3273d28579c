package main

import (
	"log"
	"strings"

	"timecard-backend/internal/audit"
	"timecard-backend/internal/auth"
	"timecard-backend/internal/config"
	"timecard-backend/internal/database"
	"timecard-backend/internal/employees"
	"timecard-backend/internal/models"
	"timecard-backend/internal/reports"

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
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
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

	// Public auth
	api.Post("/auth/register-super-admin", auth.RegisterSuperAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Rapor API'si (salt okunur)
	protected.Get("/projects", reports.ListProjectsHandler())
	protected.Get("/users", reports.ListUsersHandler())
	protected.Get("/timecards", reports.ListTimecardsHandler())
	protected.Get("/reports/project-timeline.csv", reports.ProjectTimelineHandler())

	// Çalışan yönetimi (PUT kendi içinde super admin / kendisi kontrolü yapar)
	protected.Get("/employees", employees.ListEmployeesHandler())
	protected.Get("/employees/:username", employees.GetEmployeeHandler())
	protected.Put("/employees/:username", employees.UpdateEmployeeHandler())

	// Audit logs
	adminRoutes := protected.Group("")
	adminRoutes.Use(auth.RequireRole(models.RoleSuperAdmin))
	adminRoutes.Get("/audit-logs", audit.ListAuditLogsHandler())

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
