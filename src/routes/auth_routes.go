package routes

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"Backend-BenefitsIntake/src/controllers"
	"Backend-BenefitsIntake/src/services/admins"
)

// AuthRoutes defines admin authentication and seeds the default reviewer
// account when configured.
func AuthRoutes(app *fiber.App, db *mongo.Database) {
	svc := admins.NewService(db)
	svc.EnsureDefaultAdmin(context.Background())

	ctrl := controllers.NewAuthController(svc)

	auth := app.Group("/auth")
	auth.Post("/login", ctrl.Login)
}
