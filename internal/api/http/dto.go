package http

import "reversi/internal/config"

// CreateMatchRequest represents the payload for POST /matches. Empty
// types fall back to the server defaults.
type CreateMatchRequest struct {
	BlackType string `json:"blackType"`
	WhiteType string `json:"whiteType"`
}

// MoveRequest represents a human placement.
type MoveRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// SetPlayersRequest reconfigures who controls each side.
type SetPlayersRequest struct {
	BlackType string `json:"blackType"`
	WhiteType string `json:"whiteType"`
}

// UpdateWeightsRequest replaces the adjustable evaluator weights.
type UpdateWeightsRequest struct {
	Weights config.EvalWeights `json:"weights"`
}

// UpdateAIRequest adjusts the engine at runtime.
type UpdateAIRequest struct {
	Enabled bool `json:"enabled"`
	Depth   int  `json:"depth"`
	DelayMs int  `json:"delayMs"`
}
