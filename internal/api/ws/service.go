package ws

import "reversi/internal/match"

type GameService interface {
	Get(code string) (*match.Match, bool)
	HumanDrop(m *match.Match, row, col int) (match.Snapshot, bool)
	Reset(m *match.Match) match.Snapshot
}
