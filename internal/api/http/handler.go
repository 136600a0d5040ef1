package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reversi/internal/game"
	"reversi/internal/match"
)

// @Summary Create a match
// @Description Start a new game at the opening position. Player types default from server config; "mcts" is rejected as unimplemented.
// @Tags Match
// @Accept json
// @Produce json
// @Param request body http.CreateMatchRequest true "Player types"
// @Success 200 {object} map[string]interface{}
// @Router /matches [post]
func CreateMatchHandler(mgr *match.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateMatchRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		m, err := mgr.CreateMatch(req.BlackType, req.WhiteType)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"code": m.Code(), "match": m.Snapshot()})
	}
}

// @Summary Get match state
// @Description Read-only snapshot: board, side to move, status, piece counts, thinking flag, player types
// @Tags Match
// @Produce json
// @Param code path string true "Match code"
// @Success 200 {object} map[string]interface{}
// @Router /matches/{code} [get]
func StateHandler(mgr *match.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, ok := mgr.Get(c.Param("code"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "match not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"match": m.Snapshot()})
	}
}

// @Summary Drop a piece
// @Description Apply a human move. Illegal placements, finished games and machine turns are rejected with no state change.
// @Tags Match
// @Accept json
// @Produce json
// @Param code path string true "Match code"
// @Param request body http.MoveRequest true "Target cell"
// @Success 200 {object} map[string]interface{}
// @Router /matches/{code}/move [post]
func MoveHandler(mgr *match.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, ok := mgr.Get(c.Param("code"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "match not found"})
			return
		}
		var req MoveRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		snap, applied := mgr.HumanDrop(m, req.Row, req.Col)
		if !applied {
			c.JSON(http.StatusBadRequest, gin.H{"error": "move rejected", "match": snap})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "match": snap})
	}
}

// @Summary Reset a match
// @Description Unconditionally return to the opening position; any in-flight engine result is discarded.
// @Tags Match
// @Produce json
// @Param code path string true "Match code"
// @Success 200 {object} map[string]interface{}
// @Router /matches/{code}/reset [post]
func ResetHandler(mgr *match.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, ok := mgr.Get(c.Param("code"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "match not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"match": mgr.Reset(m)})
	}
}

// @Summary List legal moves
// @Description All legal placements for the side currently to move
// @Tags Match
// @Produce json
// @Param code path string true "Match code"
// @Success 200 {object} map[string]interface{}
// @Router /matches/{code}/legal-moves [get]
func LegalMovesHandler(mgr *match.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, ok := mgr.Get(c.Param("code"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "match not found"})
			return
		}
		snap := m.Snapshot()
		side := game.Black
		if snap.ToMove == game.White.String() {
			side = game.White
		}
		moves := game.LegalMoves(snap.Board, side)
		if moves == nil {
			moves = []game.Move{}
		}
		c.JSON(http.StatusOK, gin.H{"toMove": snap.ToMove, "moves": moves})
	}
}

// @Summary Set player types
// @Description Reconfigure who controls each side; "mcts" is reported as a configuration error.
// @Tags Config
// @Accept json
// @Produce json
// @Param code path string true "Match code"
// @Param request body http.SetPlayersRequest true "Player types"
// @Success 200 {object} map[string]interface{}
// @Router /matches/{code}/players [post]
func SetPlayersHandler(mgr *match.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, ok := mgr.Get(c.Param("code"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "match not found"})
			return
		}
		var req SetPlayersRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		snap, err := mgr.SetPlayers(m, req.BlackType, req.WhiteType)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"match": snap})
	}
}
