package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/routinely/backend/api/handler"
)

type Handlers struct {
	Auth        *apiHandler.AuthHandler
	Activity    *apiHandler.ActivityHandler
	ActivityLog *apiHandler.ActivityLogHandler
	Health      *apiHandler.HealthHandler
}

func New(handlers Handlers, authMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Auth routes
	r.POST("/api/v1/auth/register", handlers.Auth.Register)
	r.POST("/api/v1/auth/login", handlers.Auth.Login)
	r.POST("/api/v1/auth/refresh", handlers.Auth.Refresh)
	r.POST("/api/v1/auth/logout", authMiddleware(handlers.Auth.Logout))
	r.GET("/api/v1/auth/profile", authMiddleware(handlers.Auth.Profile))

	// Activities
	r.GET("/api/v1/activities", authMiddleware(handlers.Activity.List))
	r.POST("/api/v1/activities", authMiddleware(handlers.Activity.Create))
	r.GET("/api/v1/activities/grouped", authMiddleware(handlers.Activity.Grouped))
	r.GET("/api/v1/activities/categories", authMiddleware(handlers.Activity.Categories))
	r.GET("/api/v1/activities/{id}", authMiddleware(handlers.Activity.Get))
	r.PUT("/api/v1/activities/{id}", authMiddleware(handlers.Activity.Update))
	r.DELETE("/api/v1/activities/{id}", authMiddleware(handlers.Activity.Delete))

	// Activity logs. Static segments are registered before the {id} routes
	// so the fasthttp router never treats them as log IDs.
	r.GET("/api/v1/activity-logs", authMiddleware(handlers.ActivityLog.List))
	r.POST("/api/v1/activity-logs", authMiddleware(handlers.ActivityLog.Create))
	r.GET("/api/v1/activity-logs/today", authMiddleware(handlers.ActivityLog.Today))
	r.GET("/api/v1/activity-logs/pending", authMiddleware(handlers.ActivityLog.Pending))
	r.POST("/api/v1/activity-logs/generate", authMiddleware(handlers.ActivityLog.Generate))
	r.POST("/api/v1/activity-logs/generate-today", authMiddleware(handlers.ActivityLog.GenerateToday))
	r.GET("/api/v1/activity-logs/excluded-intervals", authMiddleware(handlers.ActivityLog.ListExclusions))
	r.POST("/api/v1/activity-logs/excluded-intervals", authMiddleware(handlers.ActivityLog.AddExclusion))
	r.DELETE("/api/v1/activity-logs/excluded-intervals/{id}", authMiddleware(handlers.ActivityLog.DeleteExclusion))
	r.GET("/api/v1/activity-logs/{id}", authMiddleware(handlers.ActivityLog.Get))
	r.PATCH("/api/v1/activity-logs/{id}/status", authMiddleware(handlers.ActivityLog.UpdateStatus))
	r.GET("/api/v1/activity-logs/{id}/comments", authMiddleware(handlers.ActivityLog.ListComments))
	r.POST("/api/v1/activity-logs/{id}/comments", authMiddleware(handlers.ActivityLog.AddComment))
	r.DELETE("/api/v1/activity-logs/{id}/comments/{commentId}", authMiddleware(handlers.ActivityLog.DeleteComment))

	return r
}
