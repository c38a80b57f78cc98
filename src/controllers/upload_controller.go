package controllers

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/gofiber/fiber/v2"

	"Backend-BenefitsIntake/src/services/uploads"
	"Backend-BenefitsIntake/src/utils"
)

type UploadController struct {
	storage *uploads.Service
}

func NewUploadController(storage *uploads.Service) *UploadController {
	return &UploadController{storage: storage}
}

// UploadFile stores a single identification image.
// @Summary      Upload a file
// @Description  Stores an uploaded file and returns its retrieval path
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "File to upload"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Failure      500   {object}  map[string]interface{}
// @Router       /uploads [post]
func (ctrl *UploadController) UploadFile(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded",
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		log.Println("❌ Error opening upload:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to upload file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		log.Println("❌ Error reading upload:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to upload file")
	}

	fileURL, err := ctrl.storage.Store(data, fileHeader.Filename)
	if err != nil {
		log.Println("❌ Error storing upload:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to upload file")
	}

	log.Printf("✅ File stored: %s (%d bytes)", fileURL, len(data))
	return c.JSON(fiber.Map{
		"success": true,
		"fileUrl": fileURL,
		"message": "File uploaded successfully",
	})
}

// ServeFile returns a stored file by its filename-only key.
func (ctrl *UploadController) ServeFile(c *fiber.Ctx) error {
	filename := c.Params("filename")

	data, contentType, err := ctrl.storage.Retrieve(filename)
	if err != nil {
		switch {
		case errors.Is(err, uploads.ErrInvalidFilename):
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid filename")
		case errors.Is(err, uploads.ErrNotFound):
			return utils.HandleError(c, fiber.StatusNotFound, "File not found")
		default:
			log.Println("❌ Error serving file:", err)
			return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to serve file")
		}
	}

	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", filename))
	c.Set(fiber.HeaderCacheControl, "public, max-age=31536000")
	return c.Send(data)
}
