package controllers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"Backend-BenefitsIntake/src/database"
	"Backend-BenefitsIntake/src/jobs"
	"Backend-BenefitsIntake/src/models"
	"Backend-BenefitsIntake/src/services/submissions"
	"Backend-BenefitsIntake/src/utils"
)

type AdminController struct {
	service *submissions.Service
}

func NewAdminController(service *submissions.Service) *AdminController {
	return &AdminController{service: service}
}

// GetSubmissions returns the whole submission set, newest first. Filtering,
// sorting and paging of this payload happen on the dashboard.
func (ctrl *AdminController) GetSubmissions(c *fiber.Ctx) error {
	subs, err := ctrl.service.ListAll(c.Context())
	if err != nil {
		log.Println("❌ Error fetching submissions:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch submissions",
		})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"submissions": subs,
	})
}

// QuerySubmissions is the server-side variant of the dashboard query:
// same search, ordering and paging semantics behind query parameters.
// @Summary      Query submissions
// @Tags         admin
// @Produce      json
// @Param        search  query  string  false  "Search term"
// @Param        sortBy  query  string  false  "name | email | createdAt | referenceNumber"
// @Param        order   query  string  false  "asc | desc"
// @Param        page    query  int     false  "Page number"
// @Param        limit   query  int     false  "Items per page"
// @Success      200  {object}  models.PaginatedResponse
// @Router       /admin/submissions/query [get]
func (ctrl *AdminController) QuerySubmissions(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query parameters")
	}

	subs, err := ctrl.service.ListAll(c.Context())
	if err != nil {
		log.Println("❌ Error fetching submissions:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch submissions")
	}

	return c.JSON(submissions.Query(subs, params))
}

// ExportSubmissions streams the filtered set as a CSV download.
func (ctrl *AdminController) ExportSubmissions(c *fiber.Ctx) error {
	subs, err := ctrl.service.ListAll(c.Context())
	if err != nil {
		log.Println("❌ Error fetching submissions:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch submissions")
	}

	filtered := submissions.Filter(subs, c.Query("search"))
	csvContent, err := submissions.ExportCSV(filtered)
	if err != nil {
		log.Println("❌ Error exporting submissions:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to export submissions")
	}

	filename := submissions.ExportFilename(time.Now())
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.SendString(csvContent)
}

// GetStats reads the intake counters the worker maintains in Redis.
func (ctrl *AdminController) GetStats(c *fiber.Ctx) error {
	if database.RedisClient == nil {
		return utils.HandleError(c, fiber.StatusServiceUnavailable, "Stats not available")
	}

	ctx := c.Context()
	total, err := database.RedisClient.Get(ctx, jobs.StatsTotalKey).Int64()
	if err != nil && err != redis.Nil {
		log.Println("❌ Error reading stats:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to read stats")
	}
	today, err := database.RedisClient.Get(ctx, jobs.DailyStatsKey(time.Now())).Int64()
	if err != nil && err != redis.Nil {
		log.Println("❌ Error reading stats:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to read stats")
	}

	return c.JSON(fiber.Map{
		"total": total,
		"today": today,
	})
}
