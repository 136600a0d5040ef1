package config

import (
	"os"
	"strconv"
)

// EvalWeights tunes the static evaluator. The positional table is fixed;
// only the mobility and corner terms are adjustable.
type EvalWeights struct {
	Mobility int `json:"mobility"`
	Corner   int `json:"corner"`
}

type Config struct {
	HTTPAddr string

	// Search depth in plies. Depth is the only bound on search cost,
	// so keep it low enough for interactive response (5-6 tops).
	SearchDepth int

	// Pause before the engine starts searching, so the reply does not
	// land the same instant the human move does. Zero is fine.
	AIDelayMs int

	AIEnabled bool

	// Default player types for new matches: "human", "minimax", "mcts".
	BlackPlayer string
	WhitePlayer string

	Weights EvalWeights
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func Load() Config {
	return Config{
		HTTPAddr:    getenvStr("HTTP_ADDR", ":8080"),
		SearchDepth: getenvInt("AI_DEPTH", 4),
		AIDelayMs:   getenvInt("AI_DELAY_MS", 500),
		AIEnabled:   getenvBool("AI_ENABLED", true),
		BlackPlayer: getenvStr("BLACK_PLAYER", "human"),
		WhitePlayer: getenvStr("WHITE_PLAYER", "minimax"),
		Weights: EvalWeights{
			Mobility: getenvInt("W_MOBILITY", 10),
			Corner:   getenvInt("W_CORNER", 50),
		},
	}
}
