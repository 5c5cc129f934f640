package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"liftboard/workout-planner/internal/service"
)

// SetupRoutes registers the API surface. The catalog and template routes
// are public; everything touching a user's plan sits behind the JWT
// middleware.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	catalogService service.CatalogService,
	planService service.PlanService,
) {
	catalogHandler := NewCatalogHandler(catalogService)
	planHandler := NewPlanHandler(planService, catalogService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		// --- Library Routes (public) ---
		exerciseGroup := apiV1.Group("/exercises")
		{
			exerciseGroup.GET("", catalogHandler.ListExercises)
			exerciseGroup.GET("/:id", catalogHandler.GetExercise)
		}
		apiV1.GET("/templates", catalogHandler.ListTemplates)
	}

	// --- Plan Routes (authenticated) ---
	planGroup := apiV1.Group("/plan")
	planGroup.Use(authMiddleware)
	{
		planGroup.GET("", planHandler.GetPlan)
		planGroup.PUT("/days", planHandler.SetTrainingDays)
		planGroup.PUT("/current-day", planHandler.SetCurrentDay)

		planGroup.POST("/exercises/:exerciseId/toggle", planHandler.ToggleExercise)
		planGroup.POST("/exercises/:exerciseId/sets", planHandler.AddSet)
		planGroup.DELETE("/exercises/:exerciseId/sets/:index", planHandler.RemoveSet)
		planGroup.PATCH("/exercises/:exerciseId/sets/:index", planHandler.UpdateSet)

		planGroup.POST("/entries/:index/move", planHandler.MoveExercise)

		planGroup.POST("/copy", planHandler.CopyDay)
		planGroup.POST("/paste", planHandler.PasteDay)
		planGroup.POST("/clear", planHandler.ClearDay)

		planGroup.POST("/template", planHandler.ApplyTemplate)

		planGroup.GET("/export", planHandler.Export)
		planGroup.POST("/export/archive", planHandler.ArchiveExport)
		planGroup.DELETE("/export/archive", planHandler.DeleteArchive)
		planGroup.POST("/import", planHandler.Import)

		planGroup.GET("/days/:day/volume", planHandler.DayVolume)
	}
}
