package router

import (
	"prompthub/handlers"
	"prompthub/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(promptHandler *handlers.PromptHandler, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.Logger())

	if len(allowedOrigins) > 0 {
		router.Use(middleware.CORS(allowedOrigins))
	}

	router.GET("/", promptHandler.Root)

	api := router.Group("/api")
	{
		prompts := api.Group("/prompts")
		{
			prompts.GET("", promptHandler.GetPrompts)
			prompts.POST("", promptHandler.CreatePrompt)
			prompts.GET("/:id", promptHandler.GetPrompt)
			prompts.PUT("/:id", promptHandler.UpdatePrompt)
			prompts.DELETE("/:id", promptHandler.DeletePrompt)
			prompts.POST("/:id/like", promptHandler.LikePrompt)
		}

		api.GET("/meta", promptHandler.GetMeta)
	}

	return router
}
