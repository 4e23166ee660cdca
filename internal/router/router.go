package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/OsaidZaher/webDev-Y3-FoodApp-sub000/internal/auth"
	"github.com/OsaidZaher/webDev-Y3-FoodApp-sub000/internal/history"
	"github.com/OsaidZaher/webDev-Y3-FoodApp-sub000/internal/insights"
	"github.com/OsaidZaher/webDev-Y3-FoodApp-sub000/internal/middleware"
	"github.com/OsaidZaher/webDev-Y3-FoodApp-sub000/internal/places"
	"github.com/OsaidZaher/webDev-Y3-FoodApp-sub000/internal/recognition"
)

// Handlers collects the route handlers wired by NewRouter.
type Handlers struct {
	Auth        *auth.Handler
	Recognition *recognition.Handler
	Places      *places.Handler
	History     *history.Handler
	Insights    *insights.Handler
}

func NewRouter(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── AUTH ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)

		protected := authGroup.Group("/protected")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/ping", func(c *gin.Context) {
				c.JSON(200, gin.H{"message": "pong"})
			})
		}
	}

	// ───────────────────────── RECOGNITION ─────────────────────────
	recognize := r.Group("/recognize")
	recognize.Use(middleware.OptionalAuth())
	{
		recognize.POST("", h.Recognition.Recognize)
	}

	// ───────────────────────── RESTAURANTS ─────────────────────────
	restaurants := r.Group("/restaurants")
	restaurants.Use(middleware.OptionalAuth())
	{
		restaurants.GET("/search", h.Places.Search)
		restaurants.GET("/:id", h.Places.Details)
	}

	// ───────────────────────── HISTORY ─────────────────────────
	historyGroup := r.Group("/history")
	historyGroup.Use(middleware.OptionalAuth())
	{
		historyGroup.GET("/classifications", h.History.ListClassifications)
		historyGroup.DELETE("/classifications", h.History.ClearClassifications)
		historyGroup.DELETE("/classifications/:id", h.History.DeleteClassification)

		historyGroup.POST("/restaurants", h.History.RecordView)
		historyGroup.GET("/restaurants", h.History.ListViewed)
		historyGroup.DELETE("/restaurants", h.History.ClearViewed)
		historyGroup.DELETE("/restaurants/:id", h.History.DeleteViewed)
	}

	// ───────────────────────── INSIGHTS ─────────────────────────
	insightGroup := r.Group("/")
	insightGroup.Use(middleware.OptionalAuth())
	{
		insightGroup.GET("/insights", h.Insights.Get)
		insightGroup.GET("/recommendations", h.Insights.Recommendations)
		insightGroup.GET("/recommendations/ai", h.Insights.AIRecommendations)
	}

	return r
}
