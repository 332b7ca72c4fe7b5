package dashboard

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/omnayani33/SRMS/app/config"
	"github.com/omnayani33/SRMS/app/database"
	"github.com/omnayani33/SRMS/app/models"
)

// GetDashboardStatsAPI returns the admin dashboard summary.
func GetDashboardStatsAPI(c *fiber.Ctx) error {
	stats, err := database.GetDashboardStats(config.GetDB())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}

// GetGradeDistributionAPI returns the result count per grade label.
func GetGradeDistributionAPI(c *fiber.Ctx) error {
	distribution, err := database.GetGradeDistribution(config.GetDB())
	if err != nil {
		return err
	}
	return c.JSON(distribution)
}

// GetSubjectPerformanceAPI returns the average percentage per subject.
func GetSubjectPerformanceAPI(c *fiber.Ctx) error {
	performance, err := database.GetSubjectPerformance(config.GetDB())
	if err != nil {
		return err
	}
	return c.JSON(performance)
}

// GetMonthlyResultsAPI returns result counts per month for the past year.
func GetMonthlyResultsAPI(c *fiber.Ctx) error {
	counts, err := database.GetMonthlyResultCounts(config.GetDB(), time.Now())
	if err != nil {
		return err
	}
	if counts == nil {
		counts = []*models.MonthlyCount{}
	}
	return c.JSON(counts)
}
