package controllers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"Backend-BenefitsIntake/src/models"
	"Backend-BenefitsIntake/src/services/submissions"
)

type SubmissionController struct {
	service *submissions.Service
}

func NewSubmissionController(service *submissions.Service) *SubmissionController {
	return &SubmissionController{service: service}
}

// CreateSubmission handles the intake form.
// @Summary      Submit an application
// @Description  Accepts a JSON or multipart intake payload and returns the generated reference number
// @Tags         submissions
// @Accept       json,multipart/form-data
// @Produce      json
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Failure      500   {object}  map[string]interface{}
// @Router       /submissions [post]
func (ctrl *SubmissionController) CreateSubmission(c *fiber.Ctx) error {
	var in models.Submission

	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		in = submissionFromForm(c)

		// FormFile errors just mean the field was not provided
		front, _ := c.FormFile("driverLicenseFront")
		back, _ := c.FormFile("driverLicenseBack")

		if err := ctrl.service.AttachLicenseFiles(&in, front, back); err != nil {
			log.Println("❌ Error storing license images:", err)
			return submissionFailure(c)
		}
	} else {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input: " + err.Error()})
		}
		// JSON clients either pass an upload-service path through, or any
		// other non-empty value collapses to the placeholder marker.
		in.DriverLicenseFront = normalizeLicenseField(in.DriverLicenseFront)
		in.DriverLicenseBack = normalizeLicenseField(in.DriverLicenseBack)
	}

	referenceNumber, err := ctrl.service.Create(c.Context(), &in)
	if err != nil {
		log.Println("❌ Error submitting application:", err)
		return submissionFailure(c)
	}

	return c.JSON(fiber.Map{
		"success":         true,
		"message":         "Application submitted successfully",
		"referenceNumber": referenceNumber,
	})
}

// submissionFailure is the single generic intake error. Storage and database
// faults are deliberately not distinguished in the response.
func submissionFailure(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "Failed to submit application. Please try again later.",
	})
}

func normalizeLicenseField(value string) string {
	if value == "" || strings.HasPrefix(value, "/uploads/") {
		return value
	}
	return models.FileUploadedPlaceholder
}

func submissionFromForm(c *fiber.Ctx) models.Submission {
	return models.Submission{
		Name:             c.FormValue("name"),
		Email:            c.FormValue("email"),
		Gender:           c.FormValue("gender"),
		PhoneNumber:      c.FormValue("phoneNumber"),
		BirthCity:        c.FormValue("birthCity"),
		SSN:              c.FormValue("ssn"),
		MotherFullName:   c.FormValue("motherFullName"),
		FatherFullName:   c.FormValue("fatherFullName"),
		MotherMaidenName: c.FormValue("motherMaidenName"),
		PastDueAmount:    c.FormValue("pastDueAmount"),
		Evicted:          c.FormValue("evicted"),
		AppliedBefore:    c.FormValue("appliedBefore"),
		SocialSecurity:   c.FormValue("socialSecurity"),
		IDVerified:       c.FormValue("idVerified"),
	}
}
