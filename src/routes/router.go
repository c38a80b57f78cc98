package routes

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"Backend-BenefitsIntake/src/services/submissions"
	"Backend-BenefitsIntake/src/services/uploads"
)

// InitRoutes wires every module's routes onto the app.
func InitRoutes(app *fiber.App, db *mongo.Database) {
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./public/uploads"
	}
	storage := uploads.NewService(uploadDir)
	intake := submissions.NewService(db, storage, submissions.PolicyFromEnv())

	SubmissionRoutes(app, intake)
	UploadRoutes(app, storage)
	AdminRoutes(app, intake)
	AuthRoutes(app, db)

	// liveness check
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
