package server

import (
	"github.com/black-vein/oracle/backend/internal/server/middleware"
	"github.com/black-vein/oracle/backend/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	// The alert feed carries no sensitive detail beyond what the trigger
	// publishes, so it sits outside the authenticated API group.
	e.GET("/ws/alerts", routes.AlertsSocketHandler)

	apiRoutes := e.Group("/api", middleware.AuthMiddleware)

	// Criminal routes
	apiRoutes.GET("/criminals", routes.GetCriminalsHandler)
	apiRoutes.GET("/criminals/search", routes.SearchCriminalsHandler)
	apiRoutes.GET("/criminals/stats", routes.GetCriminalStatsHandler)
	apiRoutes.GET("/criminals/wanted", routes.GetWantedCriminalsHandler)
	apiRoutes.GET("/criminals/:id", routes.GetCriminalHandler)
	apiRoutes.GET("/criminals/:id/timeline", routes.GetCriminalTimelineHandler)
	apiRoutes.POST("/criminals", routes.PostCriminalHandler, middleware.RequirePermission("criminal.create"))
	apiRoutes.PATCH("/criminals/:id", routes.PatchCriminalHandler, middleware.RequirePermission("criminal.update"))
	apiRoutes.DELETE("/criminals/:id", routes.DeleteCriminalHandler, middleware.RequirePermission("criminal.delete"))
	apiRoutes.POST("/criminals/:id/photo", routes.PostCriminalPhotoHandler, middleware.RequirePermission("criminal.upload:photo"))
	apiRoutes.GET("/criminals/:id/photo-link", routes.GetCriminalPhotoLinkHandler)

	// Connection and network routes
	apiRoutes.GET("/connections/:id", routes.GetConnectionsHandler)
	apiRoutes.GET("/connections/:id/map", routes.GetNetworkMapHandler)
	apiRoutes.POST("/connections", routes.PostConnectionHandler, middleware.RequirePermission("connection.create"))
	apiRoutes.DELETE("/connections/:id", routes.DeleteConnectionHandler, middleware.RequirePermission("connection.delete"))

	// Thana routes
	apiRoutes.GET("/thanas", routes.GetThanasHandler)
	apiRoutes.GET("/thanas/:id", routes.GetThanaHandler)
	apiRoutes.POST("/thanas", routes.PostThanaHandler, middleware.RequirePermission("thana.manage"))
	apiRoutes.PATCH("/thanas/:id", routes.PatchThanaHandler, middleware.RequirePermission("thana.manage"))
	apiRoutes.DELETE("/thanas/:id", routes.DeleteThanaHandler, middleware.RequirePermission("thana.manage"))

	// Officer routes
	apiRoutes.GET("/officers", routes.GetOfficersHandler)
	apiRoutes.GET("/officers/:id", routes.GetOfficerHandler)
	apiRoutes.GET("/ranks", routes.GetRanksHandler)
	apiRoutes.POST("/officers", routes.PostOfficerHandler, middleware.RequirePermission("officer.manage"))
	apiRoutes.PATCH("/officers/:id", routes.PatchOfficerHandler, middleware.RequirePermission("officer.manage"))
	apiRoutes.DELETE("/officers/:id", routes.DeleteOfficerHandler, middleware.RequirePermission("officer.manage"))

	// Jail routes
	apiRoutes.GET("/jails", routes.GetJailsHandler)
	apiRoutes.GET("/jails/:id", routes.GetJailHandler)
	apiRoutes.GET("/jails/:id/prisoners", routes.GetJailPrisonersHandler)
	apiRoutes.POST("/jails", routes.PostJailHandler, middleware.RequirePermission("jail.manage"))
	apiRoutes.PATCH("/jails/:id", routes.PatchJailHandler, middleware.RequirePermission("jail.manage"))
	apiRoutes.DELETE("/jails/:id", routes.DeleteJailHandler, middleware.RequirePermission("jail.manage"))

	// Arrest routes
	apiRoutes.GET("/arrests", routes.GetArrestsHandler)
	apiRoutes.GET("/arrests/stats", routes.GetArrestStatsHandler)
	apiRoutes.GET("/arrests/:id", routes.GetArrestHandler)
	apiRoutes.POST("/arrests", routes.PostArrestHandler, middleware.RequirePermission("arrest.create"))
	apiRoutes.PATCH("/arrests/:id/status", routes.PatchArrestStatusHandler, middleware.RequirePermission("arrest.update"))

	// Bail routes
	apiRoutes.GET("/bail", routes.GetBailRecordsHandler)
	apiRoutes.GET("/bail/stats", routes.GetBailStatsHandler)
	apiRoutes.GET("/bail/:id", routes.GetBailHandler)
	apiRoutes.POST("/bail", routes.PostBailHandler, middleware.RequirePermission("bail.grant"))
	apiRoutes.PATCH("/bail/:id", routes.PatchBailHandler, middleware.RequirePermission("bail.update"))
	apiRoutes.PATCH("/bail/:id/status", routes.PatchBailStatusHandler, middleware.RequireAnyPermission("bail.update", "bail.revoke"))

	// Incarceration routes
	apiRoutes.GET("/incarcerations", routes.GetIncarcerationsHandler)
	apiRoutes.GET("/incarcerations/:id", routes.GetIncarcerationHandler)
	apiRoutes.POST("/incarcerations", routes.PostIncarcerationHandler, middleware.RequirePermission("incarceration.admit"))
	apiRoutes.PATCH("/incarcerations/:id/cell", routes.PatchIncarcerationCellHandler, middleware.RequirePermission("incarceration.transfer"))
	apiRoutes.PATCH("/incarcerations/:id/release", routes.PatchIncarcerationReleaseHandler, middleware.RequirePermission("incarceration.release"))

	// Case routes
	apiRoutes.GET("/cases", routes.GetCasesHandler)
	apiRoutes.GET("/cases/:id", routes.GetCaseHandler)
	apiRoutes.POST("/cases", routes.PostCaseHandler, middleware.RequirePermission("case.create"))
	apiRoutes.PATCH("/cases/:id/status", routes.PatchCaseStatusHandler, middleware.RequirePermission("case.update"))
	apiRoutes.DELETE("/cases/:id", routes.DeleteCaseHandler, middleware.RequirePermission("case.delete"))

	// GD report routes
	apiRoutes.GET("/reports", routes.GetGdReportsHandler)
	apiRoutes.GET("/reports/summary", routes.GetGdReportSummaryHandler)
	apiRoutes.GET("/reports/:id", routes.GetGdReportHandler)
	apiRoutes.POST("/reports", routes.PostGdReportHandler)
	apiRoutes.PATCH("/reports/:id/status", routes.PatchGdReportStatusHandler, middleware.RequirePermission("report.review"))

	// User routes
	apiRoutes.GET("/users", routes.GetUsersHandler)
	apiRoutes.GET("/users/:id", routes.GetUserHandler)

	// Organization routes
	apiRoutes.GET("/organizations", routes.GetOrganizationsHandler)
	apiRoutes.GET("/organizations/:id", routes.GetOrganizationHandler)
	apiRoutes.POST("/organizations", routes.PostOrganizationHandler, middleware.RequirePermission("criminal.update"))
	apiRoutes.POST("/organizations/:id/members", routes.PostOrganizationMemberHandler, middleware.RequirePermission("criminal.update"))

	// Incident and alert routes
	apiRoutes.GET("/incidents", routes.GetIncidentsHandler)
	apiRoutes.POST("/incidents", routes.PostIncidentHandler, middleware.RequirePermission("incident.create"))
	apiRoutes.POST("/incidents/:id/participants", routes.PostIncidentParticipantHandler, middleware.RequirePermission("incident.create"))
	apiRoutes.GET("/alerts", routes.GetAlertsHandler)
	apiRoutes.PATCH("/alerts/:id/handled", routes.PatchAlertHandledHandler, middleware.RequirePermission("alert.handle"))

	// Analytics routes
	apiRoutes.GET("/analytics/cases", routes.GetThanaCaseSummaryHandler)
	apiRoutes.GET("/analytics/occupancy", routes.GetJailOccupancyHandler)
	apiRoutes.GET("/analytics/risk", routes.GetRiskDistributionHandler)
	apiRoutes.GET("/analytics/arrest-trends", routes.GetArrestTrendsHandler)
	apiRoutes.GET("/analytics/workload", routes.GetOfficerWorkloadHandler)
	apiRoutes.GET("/dashboard", routes.GetDashboardHandler)
}
