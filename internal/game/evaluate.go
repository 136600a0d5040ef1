package game

import "reversi/internal/config"

// positional is the classic Othello weight table: corners dominate, cells
// adjacent to corners are liabilities until the corner is taken.
var positional = [Size][Size]int{
	{100, -20, 10, 5, 5, 10, -20, 100},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{10, -2, 5, 1, 1, 5, -2, 10},
	{5, -2, 1, 1, 1, 1, -2, 5},
	{5, -2, 1, 1, 1, 1, -2, 5},
	{10, -2, 5, 1, 1, 5, -2, 10},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{100, -20, 10, 5, 5, 10, -20, 100},
}

var corners = [4][2]int{{0, 0}, {0, Size - 1}, {Size - 1, 0}, {Size - 1, Size - 1}}

// Evaluate scores a position, positive for White and negative for Black.
// The polarity is fixed: it does not depend on whose turn it is, only on
// board content. Three terms: positional table, legal-move differential,
// and a flat bonus per owned corner.
func Evaluate(b Board, w config.EvalWeights) int {
	score := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			switch b[r][c] {
			case White:
				score += positional[r][c]
			case Black:
				score -= positional[r][c]
			}
		}
	}
	score += (len(LegalMoves(b, White)) - len(LegalMoves(b, Black))) * w.Mobility
	for _, corner := range corners {
		switch b[corner[0]][corner[1]] {
		case White:
			score += w.Corner
		case Black:
			score -= w.Corner
		}
	}
	return score
}
