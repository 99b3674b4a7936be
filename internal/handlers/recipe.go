package handlers

import (
	"net/http"
	"strconv"

	"github.com/firstbites/agent-api/internal/logger"
	"github.com/firstbites/agent-api/internal/models"
	"github.com/firstbites/agent-api/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecipeHandler handles recipe detail and featured-list requests.
type RecipeHandler struct {
	Service *service.RecipeService
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(recipeService *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{Service: recipeService}
}

// GetRecipe handles GET /v1/recipes/:recipe_id?lang=...
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipeID := c.Param("recipe_id")
	if recipeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe ID"})
		return
	}

	recipe, err := h.Service.GetRecipeByID(c.Request.Context(), recipeID, c.Query("lang"))
	if err != nil {
		status := statusForError(err)
		if status >= 500 {
			logger.Get().Error("failed to get recipe", zap.String("recipe_id", recipeID), zap.Error(err))
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

// FeaturedRecipes handles GET /v1/recipes/featured?age_group=&limit=&lang=
func (h *RecipeHandler) FeaturedRecipes(c *gin.Context) {
	var ageGroup *models.AgeGroup
	if raw := c.Query("age_group"); raw != "" {
		ageGroup = models.ParseStageLabel(raw)
		if ageGroup == nil {
			g := models.AgeGroup(raw)
			if g.StageNumber() == 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid age group"})
				return
			}
			ageGroup = &g
		}
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	recipes, err := h.Service.FeaturedRecipes(c.Request.Context(), ageGroup, limit, c.Query("lang"))
	if err != nil {
		status := statusForError(err)
		if status >= 500 {
			logger.Get().Error("failed to list featured recipes", zap.Error(err))
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}
