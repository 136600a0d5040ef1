package match

import "fmt"

// PlayerType says who supplies moves for a side.
type PlayerType string

const (
	PlayerHuman   PlayerType = "human"
	PlayerMinimax PlayerType = "minimax"
	// PlayerMCTS is a declared strategy with no engine behind it.
	// Configuring it is reported as an error, never silently routed to
	// the minimax search.
	PlayerMCTS PlayerType = "mcts"
)

func ParsePlayerType(s string) (PlayerType, error) {
	switch PlayerType(s) {
	case PlayerHuman, PlayerMinimax:
		return PlayerType(s), nil
	case PlayerMCTS:
		return "", fmt.Errorf("player type %q is not implemented", s)
	}
	return "", fmt.Errorf("unknown player type %q", s)
}
