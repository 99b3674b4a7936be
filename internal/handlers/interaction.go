package handlers

import (
	"context"
	"net/http"

	"github.com/firstbites/agent-api/internal/logger"
	"github.com/firstbites/agent-api/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InteractionHandler handles like and bookmark toggles.
type InteractionHandler struct {
	Service *service.InteractionService
}

// NewInteractionHandler creates a new InteractionHandler.
func NewInteractionHandler(interactionService *service.InteractionService) *InteractionHandler {
	return &InteractionHandler{Service: interactionService}
}

type toggleRequest struct {
	Active bool `json:"active"`
}

// ToggleLike handles PUT /v1/recipes/:recipe_id/like with body
// {"active": true|false}.
func (h *InteractionHandler) ToggleLike(c *gin.Context) {
	h.toggle(c, "like", h.Service.SetLike)
}

// ToggleBookmark handles PUT /v1/recipes/:recipe_id/bookmark with body
// {"active": true|false}.
func (h *InteractionHandler) ToggleBookmark(c *gin.Context) {
	h.toggle(c, "bookmark", h.Service.SetBookmark)
}

func (h *InteractionHandler) toggle(c *gin.Context, kind string, set func(ctx context.Context, recipeID string, active bool) error) {
	recipeID := c.Param("recipe_id")
	if recipeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe ID"})
		return
	}

	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := set(c.Request.Context(), recipeID, req.Active); err != nil {
		status := statusForError(err)
		if status >= 500 {
			logger.Get().Error("failed to toggle interaction",
				zap.String("kind", kind),
				zap.String("recipe_id", recipeID),
				zap.Error(err))
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "active": req.Active})
}
