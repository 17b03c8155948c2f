package cli

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModel(t *testing.T) *EditorModel {
	t.Helper()
	c := New(&bytes.Buffer{}, LogInfo)
	return NewEditorModel(c.Logger, "demo", nil, nil)
}

func TestEditorModelWiresDefaultPatch(t *testing.T) {
	m := testModel(t)
	m.lastTick = time.Now()

	// First frame submits the nodes; wiring runs after it, once pins exist.
	m.step(m.lastTick.Add(framePeriod))
	m.step(m.lastTick.Add(2 * framePeriod))

	g := m.ctx.FindGraph("demo")
	require.NotNil(t, g)
	assert.Equal(t, 3, g.ConnectionCount())
}

func TestEditorModelProducesFrame(t *testing.T) {
	m := testModel(t)
	m.lastTick = time.Now()
	m.step(m.lastTick.Add(framePeriod))

	assert.NotEmpty(t, m.frame)
	assert.NotEmpty(t, m.View())
}

func TestEditorModelWheelAccumulates(t *testing.T) {
	m := testModel(t)
	m.applyMouse(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	m.applyMouse(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	m.applyMouse(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	assert.Equal(t, float32(1), m.wheel)

	m.lastTick = time.Now()
	m.step(m.lastTick.Add(framePeriod))
	assert.Zero(t, m.wheel)
}

func TestEditorModelMouseButtons(t *testing.T) {
	m := testModel(t)
	m.applyMouse(tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionPress, X: 5, Y: 5})
	assert.True(t, m.buttons[0])

	m.applyMouse(tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	assert.False(t, m.buttons[0])
}

func TestEditorModelWindowResize(t *testing.T) {
	m := testModel(t)
	model, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	resized := model.(*EditorModel)
	assert.Equal(t, 120, resized.width)
	assert.Equal(t, 38, resized.height)
}

func TestEditorModelQuitKey(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
}
