package main

import (
	"os"
	"runtime"

	"github.com/firstbites/agent-api/internal/config"
	"github.com/firstbites/agent-api/internal/logger"
	"github.com/firstbites/agent-api/internal/recipesource"
	"github.com/firstbites/agent-api/internal/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// init is called before the main function.
func init() {
	// Initialize structured logger (dev mode if GIN_MODE != release)
	isDev := os.Getenv("GIN_MODE") != "release"
	logger.Init(isDev)

	// Configure the runtime
	ConfigureRuntime()
}

// Entry point for the API.
func main() {
	defer logger.Sync()

	// Load the config
	var cfg *config.Config
	if c, err := config.LoadConfig(); err != nil {
		logger.Get().Fatal("failed to load config", zap.Error(err))
	} else {
		cfg = c
	}

	// Check that all ENV variables are set
	if err := cfg.CheckConfigEnvFields(); err != nil {
		logger.Get().Fatal("missing required config fields", zap.Error(err))
	}

	// Load summary templates from YAML
	summaries, err := config.LoadSummaries("configs/summaries.yaml")
	if err != nil {
		logger.Get().Fatal("failed to load summary templates", zap.Error(err))
	}
	cfg.Summaries = summaries

	// Create the upstream recipe API client
	source := recipesource.NewClient(cfg.EnvVars.RecipeAPIBaseURL, cfg.EnvVars.RecipeAPIKey)

	// Create a new gin router
	gin.SetMode(gin.ReleaseMode)
	r := router.SetupRouter(cfg, source)

	// Run the server
	logger.Get().Info("starting server", zap.String("port", cfg.EnvVars.Port))
	r.Run(":" + cfg.EnvVars.Port)
}

// ConfigureRuntime sets the number of operating system threads.
func ConfigureRuntime() {
	nuCPU := runtime.NumCPU()
	runtime.GOMAXPROCS(nuCPU)
	logger.Get().Info("runtime configured", zap.Int("cpus", nuCPU))
}
