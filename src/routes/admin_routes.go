package routes

import (
	"github.com/gofiber/fiber/v2"

	"Backend-BenefitsIntake/src/controllers"
	"Backend-BenefitsIntake/src/middleware"
	"Backend-BenefitsIntake/src/services/submissions"
)

// AdminRoutes defines the reviewer dashboard endpoints. All of them sit
// behind the JWT middleware.
func AdminRoutes(app *fiber.App, service *submissions.Service) {
	ctrl := controllers.NewAdminController(service)

	admin := app.Group("/admin", middleware.AuthJWT)
	admin.Get("/submissions", ctrl.GetSubmissions)
	admin.Get("/submissions/query", ctrl.QuerySubmissions)
	admin.Get("/submissions/export", ctrl.ExportSubmissions)
	admin.Get("/stats", ctrl.GetStats)
}
