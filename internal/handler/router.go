package handler

import (
	"github.com/gin-gonic/gin"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Batches           *BatchHandler
	Students          *StudentHandler
	Scores            *ScoreHandler
	Opportunities     *OpportunityHandler
	TeamLeaders       *TeamLeaderHandler
	Users             *UserHandler
	Spocs             *SpocHandler
	Domains           *KeyedLookupHandler
	EpicLevels        *KeyedLookupHandler
	UserTypes         *KeyedLookupHandler
	EligibilityStatus *LabelLookupHandler
	BatchStatus       *LabelLookupHandler
	PlacementStatus   *LabelLookupHandler
	Dashboards        *DashboardHandler
	Reports           *ReportHandler
	Trainers          *TrainerHandler
	Health            *HealthHandler
	Metrics           *MetricsHandler
}

// Register mounts all routes on the engine.
func Register(r *gin.Engine, h Handlers) {
	r.GET("/health", h.Health.Health)
	r.GET("/ready", h.Health.Ready)
	r.GET("/metrics", h.Metrics.Prometheus)

	batches := r.Group("/batches")
	{
		batches.GET("", h.Batches.List)
		batches.POST("", h.Batches.Create)
		batches.POST("/:bookingId", h.Batches.Transfer)
		batches.GET("/name/:batchName", h.Batches.GetByName)
		batches.GET("/:id", h.Batches.Get)
		batches.PUT("/:id", h.Batches.Update)
		batches.DELETE("/:id", h.Batches.Delete)
	}

	students := r.Group("/students")
	{
		students.GET("", h.Students.Filter)
		students.POST("", h.Students.Create)
		students.GET("/allStudents", h.Students.List)
		students.GET("/filter", h.Students.FilterByBatch)
		students.GET("/placed", h.Students.Placed)
		students.GET("/stats", h.Dashboards.PlacementStats)
		students.GET("/graphs", h.Dashboards.PlacementGraphs)
		students.GET("/batch/:batchName", h.Students.ByBatch)
		students.GET("/epic/:batchName", h.Students.EpicByBatch)
		students.POST("/bulkAdd/:batchName", h.Students.BulkImport)
		students.GET("/:bookingId", h.Students.Get)
		students.PUT("/:bookingId", h.Students.Update)
		students.PUT("/:bookingId/placement", h.Students.SetPlacementFlag)
		students.DELETE("/:bookingId", h.Students.Delete)
	}

	scores := r.Group("/scores")
	{
		scores.GET("", h.Scores.List)
		scores.POST("", h.Scores.Submit)
		scores.GET("/:bookingId", h.Scores.Get)
		scores.PUT("/:bookingId", h.Scores.Update)
	}

	opportunities := r.Group("/opportunities")
	{
		opportunities.GET("", h.Opportunities.List)
		opportunities.POST("", h.Opportunities.Create)
		opportunities.GET("/:id", h.Opportunities.Get)
		opportunities.PUT("/:id", h.Opportunities.Update)
		opportunities.DELETE("/:id", h.Opportunities.Delete)
		opportunities.POST("/:id/students", h.Opportunities.AppendStudents)
		opportunities.PUT("/:id/students", h.Opportunities.AssignStudents)
	}

	teamLeaders := r.Group("/teamLeader")
	{
		teamLeaders.GET("", h.TeamLeaders.List)
		teamLeaders.POST("", h.TeamLeaders.Create)
		teamLeaders.GET("/:id", h.TeamLeaders.Get)
		teamLeaders.PUT("/:id", h.TeamLeaders.Update)
		teamLeaders.DELETE("/:id", h.TeamLeaders.Delete)
	}

	users := r.Group("/users")
	{
		users.GET("", h.Users.List)
		users.POST("", h.Users.Create)
		users.GET("/:id", h.Users.Get)
		users.PUT("/:id", h.Users.Update)
		users.DELETE("/:id", h.Users.Delete)
	}

	spocs := r.Group("/spocs")
	{
		spocs.GET("", h.Spocs.List)
		spocs.POST("", h.Spocs.Create)
		spocs.GET("/:id", h.Spocs.Get)
		spocs.PUT("/:id", h.Spocs.Update)
		spocs.DELETE("/:id", h.Spocs.Delete)
	}

	registerKeyedLookup(r.Group("/domain"), h.Domains)
	registerKeyedLookup(r.Group("/user"), h.UserTypes)
	registerKeyedLookup(r.Group("/epic"), h.EpicLevels)
	registerLabelLookup(r.Group("/eligibilityStatus"), h.EligibilityStatus)
	registerLabelLookup(r.Group("/batch_status"), h.BatchStatus)
	registerLabelLookup(r.Group("/placement"), h.PlacementStatus)

	r.GET("/domain/summary", h.Dashboards.DomainSummaries)

	owner := r.Group("/owner")
	{
		owner.GET("/dashboard/counts", h.Dashboards.OwnerCounts)
		owner.GET("/dashboard/graphs", h.Dashboards.OwnerGraphs)

		reports := owner.Group("/reports")
		reports.GET("/domains", h.Reports.Domains)
		reports.GET("/batchesByDomain/:domain", h.Reports.BatchesByDomain)
		reports.GET("/batches/:batchNo", h.Reports.BatchReport)
		reports.GET("/placements/:domain", h.Reports.Placements)
		reports.GET("/epic/:domain", h.Reports.Epic)
		reports.GET("/yet-to-place/:domain", h.Reports.YetToPlace)
		reports.GET("/students/:bookingId", h.Reports.Student)
	}

	sme := r.Group("/sme")
	{
		sme.GET("/dashboard/:domain", h.Dashboards.Sme)
		sme.GET("/epic/:domain", h.Dashboards.Epic)
		sme.GET("/domains", h.Dashboards.DomainSummaries)
		sme.GET("/students", h.Students.List)
		sme.POST("/students", h.Students.Create)
		sme.GET("/students/search", h.Students.SearchByBatchNo)
		sme.GET("/students/batch/:batchNo", h.Students.ByBatchNo)
		sme.GET("/students/:bookingId", h.Students.Get)
		sme.PUT("/students/:bookingId", h.Students.Update)
		sme.DELETE("/students/:bookingId", h.Students.Delete)
		sme.GET("/trainers", h.Trainers.List)
		sme.GET("/trainers/assignments/:batchNo", h.Trainers.Assignments)
		sme.POST("/trainers/assignments/:batchNo", h.Trainers.Assign)
	}
}

func registerKeyedLookup(g *gin.RouterGroup, h *KeyedLookupHandler) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func registerLabelLookup(g *gin.RouterGroup, h *LabelLookupHandler) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}
