package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"systemfit/leveling-app/internal/service"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	playerService service.PlayerService,
	planService service.PlanService,
	chatService service.ChatService,
) {

	authHandler := NewAuthHandler(authService)
	playerHandler := NewPlayerHandler(playerService, planService)
	planHandler := NewPlanHandler(planService, playerService)
	chatHandler := NewChatHandler(chatService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

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
		// --- Player Routes ---
		playerGroup := protected.Group("/player")
		{
			playerGroup.GET("", playerHandler.GetMe)
			playerGroup.GET("/history", playerHandler.GetHistory)
			playerGroup.PUT("/focus", playerHandler.SetFocus)
			playerGroup.PUT("/gender", playerHandler.SetGender)
		}

		// --- Workout Plan Routes ---
		planGroup := protected.Group("/plans")
		{
			planGroup.POST("/generate", planHandler.Generate)
			planGroup.POST("/complete", planHandler.Complete)
		}
		protected.POST("/exercises/alternatives", planHandler.Alternatives)

		// --- Skill Routes ---
		skillGroup := protected.Group("/skills")
		{
			skillGroup.GET("", playerHandler.GetSkills)
			skillGroup.POST("/:id/master", playerHandler.MasterSkill)
			skillGroup.GET("/:id/analysis", playerHandler.GetSkillAnalysis)
		}

		protected.GET("/splits", playerHandler.GetSplits)

		// --- System Chat Routes ---
		chatGroup := protected.Group("/chat")
		{
			chatGroup.POST("", chatHandler.Chat)
			chatGroup.POST("/search", chatHandler.Search)
			chatGroup.POST("/analyze-image", chatHandler.AnalyzeImage)
			chatGroup.POST("/visualize", chatHandler.Visualize)
			chatGroup.DELETE("/history", chatHandler.ClearHistory)
		}
	}
}
