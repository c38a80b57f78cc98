package routes

import (
	"github.com/gofiber/fiber/v2"

	"Backend-BenefitsIntake/src/controllers"
	"Backend-BenefitsIntake/src/services/uploads"
)

// UploadRoutes defines the file storage endpoints.
func UploadRoutes(app *fiber.App, storage *uploads.Service) {
	ctrl := controllers.NewUploadController(storage)

	uploadRoutes := app.Group("/uploads")
	uploadRoutes.Post("/", ctrl.UploadFile)        // store one file
	uploadRoutes.Get("/:filename", ctrl.ServeFile) // serve by generated name
}
