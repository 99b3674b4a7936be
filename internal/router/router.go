package router

import (
	"time"

	"github.com/firstbites/agent-api/internal/config"
	"github.com/firstbites/agent-api/internal/handlers"
	"github.com/firstbites/agent-api/internal/logger"
	"github.com/firstbites/agent-api/internal/metrics"
	"github.com/firstbites/agent-api/internal/middleware"
	"github.com/firstbites/agent-api/internal/recipesource"
	"github.com/firstbites/agent-api/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter sets up the Gin router.
func SetupRouter(cfg *config.Config, source recipesource.Source) *gin.Engine {
	// Create default Gin router
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowCredentials = true
	corsConfig.AllowOrigins = []string{
		"https://agent.firstbites.app",
		"https://www.firstbites.app",
		"https://firstbites.app",
	}
	r.Use(cors.New(corsConfig))

	// Add request ID middleware for request correlation
	r.Use(logger.RequestIDMiddleware())

	// Ping route for testing
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Prometheus scrape endpoint
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Service and handler wiring. The upstream client is the only
	// collaborator; everything downstream of it is stateless.
	searchService := service.NewSearchService(cfg, source)
	searchHandler := handlers.NewSearchHandler(searchService)

	recipeService := service.NewRecipeService(cfg, source)
	recipeHandler := handlers.NewRecipeHandler(recipeService)

	interactionService := service.NewInteractionService(cfg, source)
	interactionHandler := handlers.NewInteractionHandler(interactionService)

	// Group for read-only tool routes
	apiPublic := r.Group("/v1")
	apiPublic.Use(middleware.RateLimitByIP(10, 20, 5*time.Minute, 15*time.Minute))
	{
		// Run the search pipeline
		apiPublic.POST("/recipes/search", searchHandler.SearchRecipes)
		// Get the featured list
		apiPublic.GET("/recipes/featured", recipeHandler.FeaturedRecipes)
		// Get a single recipe by its ID
		apiPublic.GET("/recipes/:recipe_id", recipeHandler.GetRecipe)
	}

	// Group for write routes, gated on the caller identifier header
	apiGuarded := r.Group("/v1")
	apiGuarded.Use(middleware.CheckIDHeader(cfg.EnvVars.IDHeader))
	apiGuarded.Use(middleware.RateLimitByIP(5, 10, 5*time.Minute, 15*time.Minute))
	{
		// Toggle a like on a recipe
		apiGuarded.PUT("/recipes/:recipe_id/like", interactionHandler.ToggleLike)
		// Toggle a bookmark on a recipe
		apiGuarded.PUT("/recipes/:recipe_id/bookmark", interactionHandler.ToggleBookmark)
	}

	return r
}
