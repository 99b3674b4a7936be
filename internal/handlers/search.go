package handlers

import (
	"net/http"

	"github.com/firstbites/agent-api/internal/logger"
	"github.com/firstbites/agent-api/internal/models"
	"github.com/firstbites/agent-api/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SearchHandler handles recipe search requests.
type SearchHandler struct {
	Service *service.SearchService
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{Service: searchService}
}

// SearchRecipes handles POST /v1/recipes/search. The body is a
// SearchCriteria document; normalization and validation happen in the
// service.
func (h *SearchHandler) SearchRecipes(c *gin.Context) {
	var criteria models.SearchCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid search criteria"})
		return
	}

	result, err := h.Service.Search(c.Request.Context(), criteria)
	if err != nil {
		status := statusForError(err)
		if status >= 500 {
			logger.Get().Error("search pipeline failed", zap.String("query", criteria.Query), zap.Error(err))
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}
