package api

import (
	"net/http"

	"github.com/eidergdc/treinano-sub001/internal/service"

	"github.com/gin-gonic/gin"
)

// Services groups the service dependencies of the HTTP API.
type Services struct {
	Auth      service.AuthService
	Sessions  service.SessionService
	Exercises service.ExerciseService
	Analytics service.AnalyticsService
}

// SetupRoutes registers every route. metricsHandler is mounted at /metrics
// when not nil.
func SetupRoutes(router *gin.Engine, jwtSecret string, services Services, metricsHandler http.Handler) {
	authHandler := NewAuthHandler(services.Auth)
	sessionHandler := NewSessionHandler(services.Sessions)
	exerciseHandler := NewExerciseHandler(services.Exercises)
	analyticsHandler := NewAnalyticsHandler(services.Analytics)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	if metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(metricsHandler))
	}

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", authHandler.Me)

		// --- Session Routes ---
		sessionGroup := protected.Group("/sessions")
		{
			sessionGroup.POST("", sessionHandler.LogSession)
			sessionGroup.GET("", sessionHandler.ListSessions)
			sessionGroup.GET("/:id", sessionHandler.GetSession)
			sessionGroup.DELETE("/:id", sessionHandler.DeleteSession)
		}

		// --- Exercise Routes ---
		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.POST("", exerciseHandler.CreateExercise)
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			exerciseGroup.DELETE("/:id", exerciseHandler.DeleteExercise)
			exerciseGroup.POST("/:id/image", exerciseHandler.RequestImageUpload)
			exerciseGroup.GET("/:id/image", exerciseHandler.GetImageURL)
		}

		// --- Analytics Routes ---
		analyticsGroup := protected.Group("/analytics")
		{
			analyticsGroup.GET("/week", analyticsHandler.GetWeek)
			analyticsGroup.GET("/weeks", analyticsHandler.GetRecentWeeks)
			analyticsGroup.GET("/calendar", analyticsHandler.GetCalendarMonth)
			analyticsGroup.GET("/calendar/day", analyticsHandler.GetSessionsOnDay)
			analyticsGroup.GET("/progress", analyticsHandler.GetProgress)
		}
	}
}
