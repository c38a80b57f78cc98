package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"Backend-BenefitsIntake/src/utils"
)

// AuthJWT guards the admin dashboard routes.
func AuthJWT(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing or invalid Authorization header"})
	}

	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := utils.ParseJWT(tokenStr)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token", "detail": err.Error()})
	}

	c.Locals("adminId", claims.AdminID)
	c.Locals("email", claims.Email)

	return c.Next()
}
