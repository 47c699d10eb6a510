package routes

import (
	"net/http"
	"time"

	"bookwise/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers needed for route registration.
type HandlerBundle struct {
	Chat          *handlers.ChatHandler
	Calendar      *handlers.CalendarHandler
	Conversations *handlers.ConversationHandler
	Bookings      *handlers.BookingHandler
}

// RegisterChatRoutes registers the conversational booking endpoint.
func RegisterChatRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/chat", hb.Chat.Chat)
	}
}

// RegisterCalendarRoutes registers availability and direct-booking endpoints.
func RegisterCalendarRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/calendar")
	{
		api.GET("/availability", hb.Calendar.Availability)
		api.POST("/book", hb.Calendar.Book)
	}
}

// RegisterHistoryRoutes registers conversation and booking record endpoints.
func RegisterHistoryRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/conversations", hb.Conversations.List)
		api.GET("/conversations/:id/messages", hb.Conversations.Messages)
		api.GET("/bookings", hb.Bookings.List)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "message": "Hi, I'm Bookwise"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterChatRoutes(r, hb)
	RegisterCalendarRoutes(r, hb)
	RegisterHistoryRoutes(r, hb)
	RegisterHealthRoute(r)
}
