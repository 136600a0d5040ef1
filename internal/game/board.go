package game

// Size is the board edge length.
const Size = 8

type Cell int8

const (
	Empty Cell = iota
	Black
	White
)

func (c Cell) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "empty"
}

// Opponent returns the other side. Calling it for Empty is a caller bug;
// it is never a valid side.
func (c Cell) Opponent() Cell {
	if c == Black {
		return White
	}
	return Black
}

// Board is a plain value: assigning it copies it, and two boards compare
// equal iff every cell matches. The search relies on this and only ever
// works on copies.
type Board [Size][Size]Cell

// NewBoard returns the canonical opening position.
func NewBoard() Board {
	var b Board
	b[3][3], b[4][4] = White, White
	b[3][4], b[4][3] = Black, Black
	return b
}

func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// Counts returns the number of black, white and empty cells.
func (b Board) Counts() (black, white, empty int) {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			switch b[r][c] {
			case Black:
				black++
			case White:
				white++
			default:
				empty++
			}
		}
	}
	return
}

func (b Board) Count(side Cell) int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] == side {
				n++
			}
		}
	}
	return n
}
