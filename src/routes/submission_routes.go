package routes

import (
	"github.com/gofiber/fiber/v2"

	"Backend-BenefitsIntake/src/controllers"
	"Backend-BenefitsIntake/src/services/submissions"
)

// SubmissionRoutes defines the public intake endpoint.
func SubmissionRoutes(app *fiber.App, service *submissions.Service) {
	ctrl := controllers.NewSubmissionController(service)

	app.Post("/submissions", ctrl.CreateSubmission)
}
