package match

import (
	"testing"

	"github.com/google/uuid"

	"reversi/internal/game"
)

func newHumanMatch() *Match {
	return New("TEST01", PlayerHuman, PlayerHuman)
}

func TestNewMatchOpeningState(t *testing.T) {
	m := newHumanMatch()
	snap := m.Snapshot()
	if snap.Status != StatusInProgress {
		t.Fatalf("status = %v, want in_progress", snap.Status)
	}
	if snap.ToMove != "black" {
		t.Fatalf("toMove = %s, want black", snap.ToMove)
	}
	if snap.Black != 2 || snap.White != 2 || snap.Empty != 60 {
		t.Fatalf("counts = %d/%d/%d, want 2/2/60", snap.Black, snap.White, snap.Empty)
	}
	if snap.Board != game.NewBoard() {
		t.Fatalf("board is not the opening position")
	}
}

func TestMatchIdentity(t *testing.T) {
	m := newHumanMatch()
	snap := m.Snapshot()
	if snap.ID == "" || snap.ID != m.ID() {
		t.Fatalf("snapshot id = %q, want the match id %q", snap.ID, m.ID())
	}
	if _, err := uuid.Parse(snap.ID); err != nil {
		t.Fatalf("match id %q is not a uuid: %v", snap.ID, err)
	}
	// A reset starts the position over, not the match: the id sticks.
	if after := m.Reset(); after.ID != snap.ID {
		t.Fatalf("reset changed the match id from %q to %q", snap.ID, after.ID)
	}
	if other := newHumanMatch(); other.ID() == m.ID() {
		t.Fatalf("two matches share id %q", m.ID())
	}
}

func TestDropScenario(t *testing.T) {
	m := newHumanMatch()
	res := m.DropHuman(2, 3)
	if !res.Applied {
		t.Fatalf("legal opening move rejected")
	}
	snap := res.Snapshot
	if snap.Black != 4 || snap.White != 1 || snap.Empty != 59 {
		t.Fatalf("counts = %d/%d/%d, want 4/1/59", snap.Black, snap.White, snap.Empty)
	}
	if snap.ToMove != "white" {
		t.Fatalf("toMove = %s, want white", snap.ToMove)
	}
	if snap.LastMove == nil || *snap.LastMove != (game.Move{Row: 2, Col: 3}) {
		t.Fatalf("lastMove = %v, want (2,3)", snap.LastMove)
	}
}

func TestDropIllegalIsNoop(t *testing.T) {
	m := newHumanMatch()
	before := m.Snapshot()
	for _, rc := range [][2]int{{3, 3}, {0, 0}, {-1, 2}, {8, 8}} {
		res := m.DropHuman(rc[0], rc[1])
		if res.Applied {
			t.Fatalf("illegal drop (%d,%d) was applied", rc[0], rc[1])
		}
	}
	after := m.Snapshot()
	if after.Board != before.Board || after.ToMove != before.ToMove {
		t.Fatalf("rejected drops changed state")
	}
}

func TestDropRejectedOnMachineTurn(t *testing.T) {
	m := New("TEST02", PlayerMinimax, PlayerHuman)
	if res := m.DropHuman(2, 3); res.Applied {
		t.Fatalf("human drop accepted while a machine side is to move")
	}
}

func TestDropRejectedWhileThinking(t *testing.T) {
	m := newHumanMatch()
	gen, _, _, _, ok := m.PendingTurn()
	if !ok || !m.ThinkBegin(gen) {
		t.Fatalf("could not raise the thinking flag")
	}
	if res := m.DropHuman(2, 3); res.Applied {
		t.Fatalf("human drop accepted while a search is outstanding")
	}
}

// The position is wired so that black's move at (0,0) leaves white
// without a reply while black still has one: the turn must skip back.
// Black's follow-up at (1,0) then strands white entirely, which is the
// double-pass terminal condition.
func passPosition() *Match {
	m := newHumanMatch()
	var b game.Board
	b[0][1] = game.White
	b[0][2] = game.Black
	b[2][0] = game.White
	for r := 3; r < game.Size; r++ {
		b[r][0] = game.Black
	}
	b[0][4] = game.White
	m.board = b
	m.toMove = game.Black
	return m
}

func TestPassResolutionSkipsBack(t *testing.T) {
	m := passPosition()
	res := m.DropHuman(0, 0)
	if !res.Applied {
		t.Fatalf("black (0,0) should be legal")
	}
	if !res.Passed {
		t.Fatalf("white has no reply, expected a pass")
	}
	if res.Over {
		t.Fatalf("black still has a move, game must not end")
	}
	if res.Next != game.Black || res.Snapshot.ToMove != "black" {
		t.Fatalf("turn did not skip back to black")
	}
}

func TestDoublePassIsTerminal(t *testing.T) {
	m := passPosition()
	if res := m.DropHuman(0, 0); !res.Passed {
		t.Fatalf("setup: expected white to pass")
	}
	res := m.DropHuman(1, 0)
	if !res.Applied {
		t.Fatalf("black (1,0) should be legal")
	}
	if !res.Over || res.Snapshot.Status != StatusOver {
		t.Fatalf("neither side can move, expected terminal state")
	}
	if after := m.DropHuman(0, 3); after.Applied {
		t.Fatalf("drop accepted after the game ended")
	}
}

func TestResetRestoresOpening(t *testing.T) {
	m := newHumanMatch()
	m.DropHuman(2, 3)
	snap := m.Reset()
	if snap.Board != game.NewBoard() || snap.ToMove != "black" ||
		snap.Status != StatusInProgress || snap.Thinking {
		t.Fatalf("reset did not restore the opening state: %+v", snap)
	}
	if snap.Black != 2 || snap.White != 2 || snap.Empty != 60 {
		t.Fatalf("counts after reset = %d/%d/%d, want 2/2/60", snap.Black, snap.White, snap.Empty)
	}
}

func TestStaleEngineResultDiscarded(t *testing.T) {
	m := New("TEST03", PlayerMinimax, PlayerHuman)
	gen, _, _, _, ok := m.PendingTurn()
	if !ok || !m.ThinkBegin(gen) {
		t.Fatalf("could not start thinking")
	}
	m.Reset()
	if _, applied := m.DropIfCurrent(gen, 2, 3); applied {
		t.Fatalf("stale engine result was applied after reset")
	}
	snap := m.Snapshot()
	if snap.Board != game.NewBoard() || snap.Thinking {
		t.Fatalf("stale delivery disturbed the reset state")
	}
}

func TestCurrentEngineResultApplies(t *testing.T) {
	m := New("TEST04", PlayerMinimax, PlayerHuman)
	gen, board, side, ptype, ok := m.PendingTurn()
	if !ok || side != game.Black || ptype != PlayerMinimax {
		t.Fatalf("pending turn = %v/%v ok=%v", side, ptype, ok)
	}
	if board != game.NewBoard() {
		t.Fatalf("pending board is not the authoritative position")
	}
	if !m.ThinkBegin(gen) {
		t.Fatalf("could not start thinking")
	}
	if !m.Snapshot().Thinking {
		t.Fatalf("thinking flag not visible in snapshot")
	}
	res, applied := m.DropIfCurrent(gen, 2, 3)
	if !applied || res.Snapshot.Thinking {
		t.Fatalf("current engine result rejected or thinking flag stuck")
	}
	if res.Snapshot.Black != 4 {
		t.Fatalf("engine move was not applied")
	}
}
