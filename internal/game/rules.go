package game

// Move is a placement for the side to move. Captured cells are recomputed
// on application and never stored.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// flipsIn walks one ray from (row,col) and returns the opponent cells it
// would capture: one or more contiguous opponent pieces terminated by a
// piece of side. Walking off the board or onto an empty cell captures
// nothing in that direction.
func flipsIn(b Board, side Cell, row, col, dr, dc int) []Move {
	opp := side.Opponent()
	var flips []Move
	r, c := row+dr, col+dc
	for InBounds(r, c) && b[r][c] == opp {
		flips = append(flips, Move{Row: r, Col: c})
		r += dr
		c += dc
	}
	if len(flips) > 0 && InBounds(r, c) && b[r][c] == side {
		return flips
	}
	return nil
}

// Legal reports whether side may place at (row,col). Out-of-range or
// occupied targets fail closed; otherwise at least one of the eight rays
// must capture.
func Legal(b Board, side Cell, row, col int) bool {
	if !InBounds(row, col) || b[row][col] != Empty {
		return false
	}
	for _, d := range directions {
		if flipsIn(b, side, row, col, d[0], d[1]) != nil {
			return true
		}
	}
	return false
}

// Apply places side at (row,col) and flips every captured piece, returning
// the resulting board. An illegal placement returns the input unchanged;
// callers that care get the verdict from Legal. The input board is never
// touched, so positions under search stay intact.
func Apply(b Board, side Cell, row, col int) Board {
	if !InBounds(row, col) || b[row][col] != Empty {
		return b
	}
	captured := false
	next := b
	for _, d := range directions {
		for _, f := range flipsIn(b, side, row, col, d[0], d[1]) {
			next[f.Row][f.Col] = side
			captured = true
		}
	}
	if !captured {
		return b
	}
	next[row][col] = side
	return next
}

// LegalMoves lists every legal placement for side in row-major order.
func LegalMoves(b Board, side Cell) []Move {
	var moves []Move
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if Legal(b, side, r, c) {
				moves = append(moves, Move{Row: r, Col: c})
			}
		}
	}
	return moves
}

// HasAnyMove reports whether side has at least one legal placement.
func HasAnyMove(b Board, side Cell) bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if Legal(b, side, r, c) {
				return true
			}
		}
	}
	return false
}
