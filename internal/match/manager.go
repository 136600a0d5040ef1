package match

import (
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"reversi/internal/config"
	"reversi/internal/game"
)

type Store interface {
	GetMatch(code string) (*Match, bool)
	SaveMatch(m *Match)
}

// Manager sequences every match: it validates and applies drops, runs pass
// resolution through the match itself, and dispatches the engine when the
// side to move is machine-controlled.
type Manager struct {
	store    Store
	searcher *game.Searcher

	mu        sync.RWMutex
	hub       Broadcaster
	aiEnabled bool
	delay     time.Duration
	defBlack  PlayerType
	defWhite  PlayerType
}

func NewManager(s Store, cfg config.Config) *Manager {
	defBlack, err := ParsePlayerType(cfg.BlackPlayer)
	if err != nil {
		log.Printf("config: %v, defaulting black to human", err)
		defBlack = PlayerHuman
	}
	defWhite, err := ParsePlayerType(cfg.WhitePlayer)
	if err != nil {
		log.Printf("config: %v, defaulting white to minimax", err)
		defWhite = PlayerMinimax
	}
	return &Manager{
		store:     s,
		searcher:  game.NewSearcher(cfg.SearchDepth, cfg.Weights, time.Now().UnixNano()),
		aiEnabled: cfg.AIEnabled,
		delay:     time.Duration(cfg.AIDelayMs) * time.Millisecond,
		defBlack:  defBlack,
		defWhite:  defWhite,
	}
}

func (mgr *Manager) SetBroadcaster(b Broadcaster) {
	mgr.mu.Lock()
	mgr.hub = b
	mgr.mu.Unlock()
}

func (mgr *Manager) broadcast(code, event string, data interface{}) {
	mgr.mu.RLock()
	hub := mgr.hub
	mgr.mu.RUnlock()
	if hub != nil {
		hub.Broadcast(code, event, data)
	}
}

// CreateMatch starts a new game. Empty type strings fall back to the
// configured defaults; the unimplemented mcts type is rejected here.
func (mgr *Manager) CreateMatch(blackType, whiteType string) (*Match, error) {
	mgr.mu.RLock()
	black, white := mgr.defBlack, mgr.defWhite
	mgr.mu.RUnlock()
	var err error
	if blackType != "" {
		if black, err = ParsePlayerType(blackType); err != nil {
			return nil, fmt.Errorf("black: %w", err)
		}
	}
	if whiteType != "" {
		if white, err = ParsePlayerType(whiteType); err != nil {
			return nil, fmt.Errorf("white: %w", err)
		}
	}
	code := randCode(6)
	for {
		if _, taken := mgr.store.GetMatch(code); !taken {
			break
		}
		code = randCode(6)
	}
	m := New(code, black, white)
	mgr.store.SaveMatch(m)
	mgr.scheduleAI(m)
	return m, nil
}

func (mgr *Manager) Get(code string) (*Match, bool) {
	return mgr.store.GetMatch(code)
}

// HumanDrop forwards a move intent from the UI. Illegal placements, a
// finished game, an outstanding search, or a machine-controlled turn all
// come back as ok=false with the state unchanged.
func (mgr *Manager) HumanDrop(m *Match, row, col int) (Snapshot, bool) {
	res := m.DropHuman(row, col)
	if !res.Applied {
		return res.Snapshot, false
	}
	mgr.store.SaveMatch(m)
	mgr.broadcast(m.Code(), "move", res.Snapshot)
	mgr.afterMove(m, res)
	return res.Snapshot, true
}

func (mgr *Manager) Reset(m *Match) Snapshot {
	snap := m.Reset()
	mgr.store.SaveMatch(m)
	mgr.broadcast(m.Code(), "reset", snap)
	mgr.scheduleAI(m)
	return snap
}

func (mgr *Manager) SetPlayers(m *Match, blackType, whiteType string) (Snapshot, error) {
	black, err := ParsePlayerType(blackType)
	if err != nil {
		return Snapshot{}, fmt.Errorf("black: %w", err)
	}
	white, err := ParsePlayerType(whiteType)
	if err != nil {
		return Snapshot{}, fmt.Errorf("white: %w", err)
	}
	snap := m.SetPlayers(black, white)
	mgr.store.SaveMatch(m)
	mgr.broadcast(m.Code(), "players", snap)
	mgr.scheduleAI(m)
	return snap, nil
}

func (mgr *Manager) afterMove(m *Match, res DropResult) {
	if res.Passed {
		mgr.broadcast(m.Code(), "pass", res.Snapshot)
	}
	if res.Over {
		mgr.broadcast(m.Code(), "game-over", res.Snapshot)
		return
	}
	mgr.scheduleAI(m)
}

// scheduleAI dispatches a search when the side to move is machine-driven.
// The search runs on its own goroutine against a board copy; the result
// comes back through DropIfCurrent, which drops it if the position has
// changed since dispatch.
func (mgr *Manager) scheduleAI(m *Match) {
	if !mgr.AIEnabled() {
		return
	}
	gen, board, side, ptype, ok := m.PendingTurn()
	if !ok {
		return
	}
	switch ptype {
	case PlayerMinimax:
	case PlayerMCTS:
		// Explicit dead end: dispatch never falls back to minimax for a
		// strategy nobody implemented.
		log.Printf("match %s: %s is configured as mcts, which has no engine; waiting", m.Code(), side)
		return
	default:
		return
	}
	if !m.ThinkBegin(gen) {
		return
	}
	mgr.broadcast(m.Code(), "thinking", m.Snapshot())
	delay := mgr.Delay()
	go func() {
		if delay > 0 {
			time.Sleep(delay)
		}
		mv, found := mgr.searcher.BestMove(board, side)
		if !found {
			// Pass resolution already guaranteed a move exists whenever a
			// turn reaches the engine, so this is a skip, not an error.
			m.ThinkEnd(gen)
			return
		}
		res, applied := m.DropIfCurrent(gen, mv.Row, mv.Col)
		if !applied {
			log.Printf("match %s: discarding stale engine move (%d,%d)", m.Code(), mv.Row, mv.Col)
			return
		}
		mgr.store.SaveMatch(m)
		mgr.broadcast(m.Code(), "ai-move", res.Snapshot)
		mgr.afterMove(m, res)
	}()
}

func (mgr *Manager) AIEnabled() bool {
	mgr.mu.RLock()
	defer mgr.mu.RUnlock()
	return mgr.aiEnabled
}

func (mgr *Manager) Delay() time.Duration {
	mgr.mu.RLock()
	defer mgr.mu.RUnlock()
	return mgr.delay
}

// AIConfig is the runtime-adjustable engine configuration.
type AIConfig struct {
	Enabled bool `json:"enabled"`
	Depth   int  `json:"depth"`
	DelayMs int  `json:"delayMs"`
}

func (mgr *Manager) AIConfig() AIConfig {
	mgr.mu.RLock()
	defer mgr.mu.RUnlock()
	return AIConfig{
		Enabled: mgr.aiEnabled,
		Depth:   mgr.searcher.Depth(),
		DelayMs: int(mgr.delay / time.Millisecond),
	}
}

func (mgr *Manager) UpdateAIConfig(c AIConfig) {
	mgr.mu.Lock()
	mgr.aiEnabled = c.Enabled
	mgr.delay = time.Duration(c.DelayMs) * time.Millisecond
	mgr.mu.Unlock()
	mgr.searcher.SetDepth(c.Depth)
}

func (mgr *Manager) Weights() config.EvalWeights {
	return mgr.searcher.Weights()
}

func (mgr *Manager) UpdateWeights(w config.EvalWeights) {
	mgr.searcher.SetWeights(w)
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

var (
	codeMu  sync.Mutex
	codeRng = rand.New(rand.NewSource(time.Now().UnixNano()))
)

func randCode(n int) string {
	codeMu.Lock()
	defer codeMu.Unlock()
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[codeRng.Intn(len(letters))]
	}
	return string(b)
}
