package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"talentflow/handlers"
)

// RegisterCalendarRoutes registers raw calendar endpoints.
func RegisterCalendarRoutes(r *gin.Engine, calendarHandler *handlers.CalendarHandler) {
	api := r.Group("/api/calendar")
	{
		api.POST("/events", calendarHandler.GetEventsHandler)
		api.POST("/schedule-interview", calendarHandler.ScheduleInterviewHandler)
	}
}

// RegisterAvailabilityRoutes registers the availability engine endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, availabilityHandler *handlers.AvailabilityHandler) {
	api := r.Group("/api/calendar")
	{
		api.POST("/available-slots", availabilityHandler.AvailableSlotsHandler)
		api.GET("/proposal/:proposalID", availabilityHandler.GetProposalHandler)
		api.POST("/availability", availabilityHandler.GetAvailabilityHandler)
		api.POST("/summary", availabilityHandler.SummaryHandler)
		api.GET("/next-slot", availabilityHandler.NextSlotHandler)
		api.POST("/validate-slot", availabilityHandler.ValidateSlotHandler)
		api.POST("/outreach-draft", availabilityHandler.OutreachDraftHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Talentflow"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, calendarHandler *handlers.CalendarHandler, availabilityHandler *handlers.AvailabilityHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCalendarRoutes(r, calendarHandler)
	RegisterAvailabilityRoutes(r, availabilityHandler)
}
