package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkraev/lanedash/internal/core"
	"github.com/mkraev/lanedash/internal/sim"
)

func testSnapshot(state sim.State) sim.Snapshot {
	return sim.Snapshot{
		State:        state,
		Lane:         1,
		PlayerTop:    560,
		PlayerBottom: 608,
		PlayerWidth:  40,
		Energy:       80,
		Score:        5,
		Best:         9,
		Speed:        260,
		FieldWidth:   360,
		FieldHeight:  640,
		Lanes:        3,
	}
}

func TestDrawRunningShowsPlayerAndHUD(t *testing.T) {
	s := core.NewScreen(80, 30)
	Draw(s, testSnapshot(sim.StateRunning), "")

	out := s.String()
	if !strings.ContainsRune(out, PlayerChar) {
		t.Error("expected player glyph on screen")
	}
	if !strings.Contains(s.Row(0), "Score: 5  Best: 9") {
		t.Errorf("HUD row missing score, got %q", s.Row(0))
	}
}

func TestDrawEntitiesUseKindGlyphs(t *testing.T) {
	snap := testSnapshot(sim.StateRunning)
	snap.Entities = []sim.EntityView{
		{Kind: sim.KindObstacle, Lane: 0, Y: 100, Size: 44},
		{Kind: sim.KindPositive, Lane: 1, Y: 300, Size: 28},
		{Kind: sim.KindNegative, Lane: 2, Y: 400, Size: 28},
	}

	s := core.NewScreen(80, 30)
	Draw(s, snap, "")

	out := s.String()
	for _, r := range []rune{ObstacleChar, PositiveChar, NegativeChar} {
		if !strings.ContainsRune(out, r) {
			t.Errorf("expected glyph %q on screen", r)
		}
	}
}

func TestDrawSkipsEntitiesAboveField(t *testing.T) {
	snap := testSnapshot(sim.StateRunning)
	snap.Entities = []sim.EntityView{
		{Kind: sim.KindPositive, Lane: 0, Y: -70, Size: 28},
	}

	s := core.NewScreen(80, 30)
	Draw(s, snap, "")

	if strings.ContainsRune(s.String(), PositiveChar) {
		t.Error("entity above the field should not be drawn")
	}
}

func TestDrawStateOverlays(t *testing.T) {
	cases := []struct {
		state sim.State
		want  string
	}{
		{sim.StateIdle, "LANE DASH"},
		{sim.StatePaused, "PAUSED"},
		{sim.StateGameOver, "GAME OVER"},
	}

	for _, tc := range cases {
		s := core.NewScreen(80, 30)
		Draw(s, testSnapshot(tc.state), "")
		if !strings.Contains(s.String(), tc.want) {
			t.Errorf("state %v: expected overlay %q", tc.state, tc.want)
		}
	}
}

func TestDrawBannerOnlyWhileRunning(t *testing.T) {
	s := core.NewScreen(80, 30)
	Draw(s, testSnapshot(sim.StateRunning), "MAGNET!")
	if !strings.Contains(s.String(), "MAGNET!") {
		t.Error("expected banner while running")
	}

	s = core.NewScreen(80, 30)
	Draw(s, testSnapshot(sim.StateGameOver), "MAGNET!")
	if strings.Contains(s.String(), "MAGNET!") {
		t.Error("banner should not be drawn after game over")
	}
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()

	cases := []struct {
		key  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}, core.ActionRight},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionStart},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}, core.ActionPause},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.ActionNone},
	}

	for _, tc := range cases {
		if got := km.MapKey(tc.key); got != tc.want {
			t.Errorf("MapKey(%q) = %v, expected %v", tc.key.String(), got, tc.want)
		}
	}
}
