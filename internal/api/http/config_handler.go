package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reversi/internal/match"
)

// @Summary Get evaluator weights
// @Description Returns the adjustable evaluator weights (mobility factor, corner bonus)
// @Tags Config
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /config/weights [get]
func GetWeightsHandler(mgr *match.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"weights": mgr.Weights()})
	}
}

// @Summary Update evaluator weights
// @Description Replace the adjustable evaluator weights; takes effect on the next search
// @Tags Config
// @Accept json
// @Produce json
// @Param request body http.UpdateWeightsRequest true "Weights"
// @Success 200 {object} map[string]interface{}
// @Router /config/weights [post]
func UpdateWeightsHandler(mgr *match.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateWeightsRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		mgr.UpdateWeights(req.Weights)
		c.JSON(http.StatusOK, gin.H{"weights": mgr.Weights()})
	}
}

// @Summary Get engine configuration
// @Description Returns the AI toggle, search depth and dispatch delay
// @Tags Config
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /config/ai [get]
func GetAIConfigHandler(mgr *match.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ai": mgr.AIConfig()})
	}
}

// @Summary Update engine configuration
// @Description Adjust the AI toggle, search depth and dispatch delay at runtime
// @Tags Config
// @Accept json
// @Produce json
// @Param request body http.UpdateAIRequest true "Engine config"
// @Success 200 {object} map[string]interface{}
// @Router /config/ai [post]
func UpdateAIConfigHandler(mgr *match.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateAIRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		mgr.UpdateAIConfig(match.AIConfig{
			Enabled: req.Enabled,
			Depth:   req.Depth,
			DelayMs: req.DelayMs,
		})
		c.JSON(http.StatusOK, gin.H{"ai": mgr.AIConfig()})
	}
}
