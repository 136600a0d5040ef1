package http

import (
	"net/http"

	svg "github.com/ajstarks/svgo"
	"github.com/gin-gonic/gin"

	"reversi/internal/game"
	"reversi/internal/match"
)

const (
	cellPx   = 48
	marginPx = 8
	boardPx  = game.Size*cellPx + 2*marginPx
)

// @Summary Render the board
// @Description Current position as an SVG image
// @Tags Match
// @Produce image/svg+xml
// @Param code path string true "Match code"
// @Success 200 {string} string "SVG document"
// @Router /matches/{code}/board.svg [get]
func BoardSVGHandler(mgr *match.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, ok := mgr.Get(c.Param("code"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "match not found"})
			return
		}
		snap := m.Snapshot()

		c.Header("Content-Type", "image/svg+xml")
		c.Status(http.StatusOK)
		canvas := svg.New(c.Writer)
		canvas.Start(boardPx, boardPx)
		canvas.Rect(0, 0, boardPx, boardPx, "fill:#2e7d32")
		for i := 0; i <= game.Size; i++ {
			p := marginPx + i*cellPx
			canvas.Line(marginPx, p, boardPx-marginPx, p, "stroke:#1b4d1e;stroke-width:2")
			canvas.Line(p, marginPx, p, boardPx-marginPx, "stroke:#1b4d1e;stroke-width:2")
		}
		for r := 0; r < game.Size; r++ {
			for col := 0; col < game.Size; col++ {
				cx := marginPx + col*cellPx + cellPx/2
				cy := marginPx + r*cellPx + cellPx/2
				switch snap.Board[r][col] {
				case game.Black:
					canvas.Circle(cx, cy, cellPx/2-4, "fill:#111")
				case game.White:
					canvas.Circle(cx, cy, cellPx/2-4, "fill:#fafafa;stroke:#999")
				}
			}
		}
		canvas.End()
	}
}
