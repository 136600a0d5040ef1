package match

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"reversi/internal/game"
)

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusOver       Status = "over"
)

// Match owns the authoritative state of one game. All mutation goes
// through its methods under the lock; everyone else sees snapshots.
type Match struct {
	mu        sync.Mutex
	id        string
	code      string
	createdAt time.Time

	board     game.Board
	toMove    game.Cell
	status    Status
	blackType PlayerType
	whiteType PlayerType
	lastMove  *game.Move

	// thinking is true while an engine search is outstanding for the
	// current position.
	thinking bool

	// gen advances on every applied move and on reset. An engine result
	// computed for an older gen is stale and gets discarded.
	gen uint64
}

// Snapshot is the read-only view handed to transports and the UI.
type Snapshot struct {
	ID        string     `json:"id"`
	Code      string     `json:"code"`
	Board     game.Board `json:"board"`
	ToMove    string     `json:"toMove"`
	Status    Status     `json:"status"`
	Black     int        `json:"black"`
	White     int        `json:"white"`
	Empty     int        `json:"empty"`
	Thinking  bool       `json:"thinking"`
	BlackType PlayerType `json:"blackType"`
	WhiteType PlayerType `json:"whiteType"`
	LastMove  *game.Move `json:"lastMove,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// DropResult reports what a placement did to the match.
type DropResult struct {
	Applied bool
	// Passed means the opponent had no reply and the turn skipped back.
	Passed bool
	Over   bool

	Next     game.Cell
	Snapshot Snapshot
}

func New(code string, black, white PlayerType) *Match {
	return &Match{
		id:        uuid.NewString(),
		code:      code,
		createdAt: time.Now(),
		board:     game.NewBoard(),
		toMove:    game.Black,
		status:    StatusInProgress,
		blackType: black,
		whiteType: white,
	}
}

func (m *Match) ID() string   { return m.id }
func (m *Match) Code() string { return m.code }

func (m *Match) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *Match) snapshotLocked() Snapshot {
	black, white, empty := m.board.Counts()
	return Snapshot{
		ID:        m.id,
		Code:      m.code,
		Board:     m.board,
		ToMove:    m.toMove.String(),
		Status:    m.status,
		Black:     black,
		White:     white,
		Empty:     empty,
		Thinking:  m.thinking,
		BlackType: m.blackType,
		WhiteType: m.whiteType,
		LastMove:  m.lastMove,
		CreatedAt: m.createdAt,
	}
}

func (m *Match) typeOf(side game.Cell) PlayerType {
	if side == game.Black {
		return m.blackType
	}
	return m.whiteType
}

// DropHuman applies a placement coming from outside the engine. It is
// refused while a search is outstanding or when the side to move is not
// human-controlled; refusal leaves the board untouched.
func (m *Match) DropHuman(row, col int) DropResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.thinking || m.typeOf(m.toMove) != PlayerHuman {
		return DropResult{Snapshot: m.snapshotLocked()}
	}
	return m.dropLocked(row, col)
}

// DropIfCurrent applies an engine result, but only if the position it was
// computed for is still the current one. Whatever happens, the thinking
// flag for that dispatch is cleared.
func (m *Match) DropIfCurrent(gen uint64, row, col int) (DropResult, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.gen {
		return DropResult{Snapshot: m.snapshotLocked()}, false
	}
	m.thinking = false
	res := m.dropLocked(row, col)
	return res, res.Applied
}

// dropLocked is the single mutation path: validate, apply, recount,
// advance the turn, then resolve passes. Termination is inferred purely
// from neither side having a move; a full board is never checked
// directly.
func (m *Match) dropLocked(row, col int) DropResult {
	if m.status != StatusInProgress || !game.Legal(m.board, m.toMove, row, col) {
		return DropResult{Snapshot: m.snapshotLocked()}
	}
	mover := m.toMove
	m.board = game.Apply(m.board, mover, row, col)
	mv := game.Move{Row: row, Col: col}
	m.lastMove = &mv
	m.gen++

	res := DropResult{Applied: true}
	next := mover.Opponent()
	if !game.HasAnyMove(m.board, next) {
		if game.HasAnyMove(m.board, mover) {
			next = mover
			res.Passed = true
		} else {
			m.status = StatusOver
			res.Over = true
		}
	}
	m.toMove = next

	res.Next = next
	res.Snapshot = m.snapshotLocked()
	return res
}

// Reset unconditionally returns to the opening position. The generation
// bump invalidates any search still in flight.
func (m *Match) Reset() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.board = game.NewBoard()
	m.toMove = game.Black
	m.status = StatusInProgress
	m.thinking = false
	m.lastMove = nil
	m.gen++
	return m.snapshotLocked()
}

func (m *Match) SetPlayers(black, white PlayerType) Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blackType = black
	m.whiteType = white
	return m.snapshotLocked()
}

// PendingTurn describes the position the engine would have to answer:
// ok is false when the game is over or a search is already outstanding.
func (m *Match) PendingTurn() (gen uint64, b game.Board, side game.Cell, ptype PlayerType, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.status != StatusInProgress || m.thinking {
		return 0, game.Board{}, 0, "", false
	}
	return m.gen, m.board, m.toMove, m.typeOf(m.toMove), true
}

// ThinkBegin raises the thinking flag for the given position. It fails
// when the position has moved on in the meantime.
func (m *Match) ThinkBegin(gen uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.gen || m.status != StatusInProgress || m.thinking {
		return false
	}
	m.thinking = true
	return true
}

// ThinkEnd clears the thinking flag without applying a move, for searches
// that came back empty-handed.
func (m *Match) ThinkEnd(gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if gen == m.gen {
		m.thinking = false
	}
}
