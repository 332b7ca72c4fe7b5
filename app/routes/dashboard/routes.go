package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/omnayani33/SRMS/app/routes/auth"
)

// SetupDashboardRoutes sets up the admin aggregation read API.
func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware, auth.AdminOnly)

	api.Get("/stats", GetDashboardStatsAPI)
	api.Get("/grade-distribution", GetGradeDistributionAPI)
	api.Get("/subject-performance", GetSubjectPerformanceAPI)
	api.Get("/monthly-results", GetMonthlyResultsAPI)
}
