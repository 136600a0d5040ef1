package http

import (
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"

	"reversi/internal/api/ws"
	"reversi/internal/match"
)

func NewRouter(mgr *match.Manager, hub *ws.Hub) *gin.Engine {
	r := gin.Default()

	// WebSocket for live state updates
	r.GET("/ws", hub.HandleWS)

	// --- MATCH ENDPOINTS ---
	r.POST("/matches", CreateMatchHandler(mgr))
	r.GET("/matches/:code", StateHandler(mgr))
	r.POST("/matches/:code/move", MoveHandler(mgr))
	r.POST("/matches/:code/reset", ResetHandler(mgr))
	r.GET("/matches/:code/legal-moves", LegalMovesHandler(mgr))
	r.GET("/matches/:code/board.svg", BoardSVGHandler(mgr))
	r.POST("/matches/:code/players", SetPlayersHandler(mgr))

	// --- CONFIG ENDPOINTS ---
	r.GET("/config/weights", GetWeightsHandler(mgr))
	r.POST("/config/weights", UpdateWeightsHandler(mgr))
	r.GET("/config/ai", GetAIConfigHandler(mgr))
	r.POST("/config/ai", UpdateAIConfigHandler(mgr))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
