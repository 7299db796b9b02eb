package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/colorgate/internal/config"
	"github.com/vovakirdan/colorgate/internal/core"
	"github.com/vovakirdan/colorgate/internal/games/colorgate"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, intro config.IntroConfig) (Model, *colorgate.Game) {
	t.Helper()
	cfg := config.DefaultColorGateConfig()
	game, err := colorgate.NewGame(cfg, nil)
	require.NoError(t, err)

	m := NewModel(game, cfg.PaletteColors(), core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 7}, intro, nil)
	m.Init()
	return m, game
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{runes("a"), core.ActionLeft, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{runes("d"), core.ActionRight, false},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionSwitchColor, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{runes("r"), core.ActionRestart, false},
		{runes("q"), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runes("z"), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.msg.String(), func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			assert.Equal(t, tc.action, action)
			assert.Equal(t, tc.quit, quit)
		})
	}
}

func TestHoldTracker(t *testing.T) {
	h := NewHoldTracker(100 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	assert.False(t, h.Held(core.ActionLeft, t0))

	h.Press(core.ActionLeft, t0)
	assert.True(t, h.Held(core.ActionLeft, t0.Add(50*time.Millisecond)))
	assert.False(t, h.Held(core.ActionLeft, t0.Add(100*time.Millisecond)), "hold expires without repeats")

	h.Press(core.ActionLeft, t0)
	h.Press(core.ActionRight, t0.Add(10*time.Millisecond))
	assert.False(t, h.Held(core.ActionLeft, t0.Add(20*time.Millisecond)), "opposite key releases")
	assert.True(t, h.Held(core.ActionRight, t0.Add(20*time.Millisecond)))

	frame := core.NewInputFrame()
	h.Apply(&frame, t0.Add(20*time.Millisecond))
	assert.True(t, frame.Has(core.ActionRight))
	assert.False(t, frame.Has(core.ActionLeft))

	h.Release()
	assert.False(t, h.Held(core.ActionRight, t0.Add(20*time.Millisecond)))
}

func TestNewHoldTrackerDefault(t *testing.T) {
	h := NewHoldTracker(0)
	t0 := time.Unix(0, 0)
	h.Press(core.ActionRight, t0)

	assert.True(t, h.Held(core.ActionRight, t0.Add(DefaultHoldDuration-time.Millisecond)))
	assert.False(t, h.Held(core.ActionRight, t0.Add(DefaultHoldDuration)))
}

func TestModelIntroFlow(t *testing.T) {
	m, game := newTestModel(t, config.IntroConfig{PopupSeconds: 0.5, PopupText: "Made with Go"})
	assert.Equal(t, phaseWelcome, m.phase)
	assert.Contains(t, m.View(), "Press Enter to play")

	// Ticks do not leave the welcome page
	m = update(t, m, TickMsg(time.Now()))
	assert.Equal(t, phaseWelcome, m.phase)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, phasePopup, m.phase)
	assert.Equal(t, 5, m.popupTicks)
	assert.Contains(t, m.View(), "Made with Go")

	for range 5 {
		m = update(t, m, TickMsg(time.Now()))
	}
	require.Equal(t, phasePlaying, m.phase)
	assert.False(t, m.game.State().Started)

	m = update(t, m, TickMsg(time.Now()))
	assert.True(t, m.gameState.Running)
	assert.Equal(t, 1, game.Snapshot().Frame)
	assert.Contains(t, m.View(), "Score: 0")
}

func TestModelPopupSkippedByKey(t *testing.T) {
	m, _ := newTestModel(t, config.IntroConfig{PopupSeconds: 2, PopupText: "credits"})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, phasePopup, m.phase)

	m = update(t, m, runes("x"))
	assert.Equal(t, phasePlaying, m.phase)
}

func TestModelNoPopup(t *testing.T) {
	m, _ := newTestModel(t, config.IntroConfig{})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, phasePlaying, m.phase)
}

func TestModelHeldKeyMovesPlayer(t *testing.T) {
	m, game := newTestModel(t, config.IntroConfig{})
	now := time.Unix(500, 0)
	m.clock = func() time.Time { return now }

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg(now))
	require.True(t, m.gameState.Running)
	x0 := game.Snapshot().PlayerX

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, TickMsg(now))
	m = update(t, m, TickMsg(now))
	assert.Equal(t, x0+10, game.Snapshot().PlayerX)

	now = now.Add(time.Second)
	m = update(t, m, TickMsg(now))
	assert.Equal(t, x0+10, game.Snapshot().PlayerX, "hold expired")
}

func TestModelGameOverReleasesHeldKeys(t *testing.T) {
	m, _ := newTestModel(t, config.IntroConfig{})
	now := time.Unix(500, 0)
	m.clock = func() time.Time { return now }

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})

	// The frozen clock keeps right held, pinning the player to the wall
	for i := 0; i < 20000 && !m.gameState.GameOver; i++ {
		m = update(t, m, TickMsg(now))
	}
	require.True(t, m.gameState.GameOver)
	assert.False(t, m.holds.Held(core.ActionRight, now))
}

func TestModelClickChangesColor(t *testing.T) {
	m, game := newTestModel(t, config.IntroConfig{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg(time.Now()))

	before := game.Snapshot().PlayerColor
	m = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, TickMsg(time.Now()))
	assert.NotEqual(t, before, game.Snapshot().PlayerColor)
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, config.IntroConfig{})

	next, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Empty(t, next.View())
}

func TestModelResizeKeepsSession(t *testing.T) {
	m, _ := newTestModel(t, config.IntroConfig{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg(time.Now()))
	require.True(t, m.gameState.Running)

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 100, m.screen.Width())
	assert.Equal(t, 39, m.screen.Height())
	assert.True(t, m.game.State().Running)
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawText(0, 1, "cd")

	out := RenderScreen(s)
	assert.Contains(t, out, "a")
	assert.Contains(t, out, "cd")
}
