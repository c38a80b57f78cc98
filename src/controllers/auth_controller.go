package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"Backend-BenefitsIntake/src/services/admins"
	"Backend-BenefitsIntake/src/utils"
)

type AuthController struct {
	admins *admins.Service
}

func NewAuthController(service *admins.Service) *AuthController {
	return &AuthController{admins: service}
}

type loginIn struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates a reviewer and issues the dashboard JWT.
// @Summary      Admin login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/login [post]
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var in loginIn
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	admin, err := ctrl.admins.Authenticate(c.Context(), in.Email, in.Password)
	if err != nil {
		if errors.Is(err, admins.ErrInvalidCredentials) {
			return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		log.Println("❌ Error authenticating admin:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Login failed")
	}

	token, err := utils.GenerateJWT(admin.ID.Hex(), admin.Email)
	if err != nil {
		log.Println("❌ Error signing token:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Login failed")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"admin": fiber.Map{
			"name":  admin.Name,
			"email": admin.Email,
		},
	})
}
