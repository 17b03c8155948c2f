package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/nodecanvas/pkg/draw"
	"github.com/matzehuels/nodecanvas/pkg/editor"
)

// Status bar styles
var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5FD7FF"))
)

// framePeriod is the editor tick rate. Thirty frames per second keeps zoom
// easing smooth without saturating slow terminals.
const framePeriod = time.Second / 30

// Demo pin types.
const (
	pinScalar editor.PinType = iota
	pinSignal
)

// tickMsg drives one editor frame.
type tickMsg time.Time

// themeMsg carries a reloaded theme from the watcher goroutine into the
// bubbletea loop.
type themeMsg struct {
	style editor.Style
	cfg   editor.Settings
}

// =============================================================================
// EditorModel - Demo Graph Session
// =============================================================================

// EditorModel is the bubbletea model hosting a demo graph session.
type EditorModel struct {
	logger *log.Logger
	ctx    *editor.Context
	canvas *canvas

	graphName string
	width     int
	height    int
	focused   bool
	lastTick  time.Time

	// Input accumulated between ticks.
	mousePos  draw.Vec2
	lastMouse draw.Vec2
	buttons   [3]bool
	prev      [3]bool
	wheel     float32
	mods      draw.Mod
	keyPress  draw.Key

	// Node anchors, fed back by the editor on drag.
	posSource draw.Vec2
	posGain   draw.Vec2
	posMix    draw.Vec2
	posSink   draw.Vec2

	pins  map[string]editor.PinRef
	wired bool

	frame string
}

// NewEditorModel creates the demo model. The theme, if non-nil, is applied
// to the graph before the first frame.
func NewEditorModel(logger *log.Logger, graphName string, style *editor.Style, cfg *editor.Settings) *EditorModel {
	ctx := editor.NewContext()
	g := ctx.Graph(graphName)
	g.SetValidation(func(a, b *editor.Pin) bool {
		return a.Type() == b.Type()
	})
	if style != nil && cfg != nil {
		g.SetTheme(*style, *cfg)
	}

	s := g.Style()
	return &EditorModel{
		logger:    logger,
		ctx:       ctx,
		canvas:    newCanvas(80, 24, s.TextWidth, s.TextHeight),
		graphName: graphName,
		width:     80,
		height:    24,
		focused:   true,
		posSource: draw.Vec2{X: 40, Y: 60},
		posGain:   draw.Vec2{X: 260, Y: 40},
		posMix:    draw.Vec2{X: 260, Y: 200},
		posSink:   draw.Vec2{X: 500, Y: 120},
		pins:      make(map[string]editor.PinRef),
	}
}

func (m *EditorModel) Init() tea.Cmd {
	m.lastTick = time.Now()
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(framePeriod, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "f":
			m.keyPress = draw.KeyBringToFront
		}

	case tea.MouseMsg:
		m.applyMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = maxInt(msg.Height-2, 4) // reserve the status bar
		m.canvas.Resize(m.width, m.height)

	case tea.FocusMsg:
		m.focused = true
	case tea.BlurMsg:
		m.focused = false

	case themeMsg:
		m.ctx.Graph(m.graphName).SetTheme(msg.style, msg.cfg)
		m.logger.Info("Theme reloaded")

	case tickMsg:
		m.step(time.Time(msg))
		return m, tick()
	}
	return m, nil
}

// applyMouse folds a terminal mouse event into the pending input snapshot.
func (m *EditorModel) applyMouse(msg tea.MouseMsg) {
	s := m.ctx.Graph(m.graphName).Style()
	m.mousePos = draw.Vec2{
		X: float32(msg.X)*s.TextWidth + s.TextWidth/2,
		Y: float32(msg.Y)*s.TextHeight + s.TextHeight/2,
	}

	m.mods = 0
	if msg.Ctrl {
		m.mods |= draw.ModCtrl
	}
	if msg.Shift {
		m.mods |= draw.ModShift
	}
	if msg.Alt {
		m.mods |= draw.ModAlt
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.wheel++
		return
	case tea.MouseButtonWheelDown:
		m.wheel--
		return
	}

	idx := -1
	switch msg.Button {
	case tea.MouseButtonLeft:
		idx = int(draw.MouseLeft)
	case tea.MouseButtonMiddle:
		idx = int(draw.MouseMiddle)
	case tea.MouseButtonRight:
		idx = int(draw.MouseRight)
	}
	if idx < 0 {
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		m.buttons[idx] = true
	case tea.MouseActionRelease:
		m.buttons[idx] = false
	}
}

// step runs one editor frame and rasterizes it.
func (m *EditorModel) step(now time.Time) {
	in := &draw.Input{
		MousePos:      m.mousePos,
		MouseDelta:    m.mousePos.Sub(m.lastMouse),
		Wheel:         m.wheel,
		Mods:          m.mods,
		DeltaTime:     float32(now.Sub(m.lastTick).Seconds()),
		Pressed:       m.keyPress,
		WindowFocused: m.focused,
	}
	for b := 0; b < 3; b++ {
		in.SetButton(draw.MouseButton(b), m.buttons[b], m.buttons[b] && !m.prev[b], !m.buttons[b] && m.prev[b])
	}
	m.prev = m.buttons
	m.lastMouse = m.mousePos
	m.lastTick = now
	m.wheel = 0
	m.keyPress = draw.KeyNone

	g := m.ctx.Graph(m.graphName)
	s := g.Style()
	bounds := draw.Rect{Max: draw.Vec2{
		X: float32(m.width) * s.TextWidth,
		Y: float32(m.height) * s.TextHeight,
	}}

	m.ctx.BeginGraph(m.graphName, bounds, in)
	m.submitNodes()
	list := m.ctx.EndGraph()

	if !m.wired {
		m.wireDefaults()
		m.wired = true
	}

	m.canvas.Clear()
	m.canvas.Render(list.Commands())
	m.frame = m.canvas.String()
}

// submitNodes declares the demo patch: a source feeding a gain and a mixer,
// both feeding the sink.
func (m *EditorModel) submitNodes() {
	header := draw.RGB(0x2A, 0x52, 0x7A)
	headerHov := draw.RGB(0x33, 0x63, 0x94)
	headerAct := draw.RGB(0x3D, 0x74, 0xAD)

	m.ctx.BeginNode("source", &m.posSource)
	m.ctx.BeginNodeHeader("Source", header, headerHov, headerAct)
	m.ctx.EndNodeHeader()
	m.ctx.BeginPin("out", pinScalar, editor.DirectionOutput, editor.PinFlagNone)
	m.pins["source.out"] = m.ctx.PinRef()
	m.ctx.Text("out")
	m.ctx.EndPin()
	m.ctx.EndNode()

	m.ctx.BeginNode("gain", &m.posGain)
	m.ctx.BeginNodeHeader("Gain", header, headerHov, headerAct)
	m.ctx.EndNodeHeader()
	m.ctx.BeginPin("in", pinScalar, editor.DirectionInput, editor.PinFlagNone)
	m.pins["gain.in"] = m.ctx.PinRef()
	m.ctx.Text("in")
	m.ctx.EndPin()
	m.ctx.BeginPin("out", pinScalar, editor.DirectionOutput, editor.PinFlagNone)
	m.pins["gain.out"] = m.ctx.PinRef()
	m.ctx.Text("out")
	m.ctx.EndPin()
	m.ctx.EndNode()

	m.ctx.BeginNode("mix", &m.posMix)
	m.ctx.BeginNodeHeader("Mix", header, headerHov, headerAct)
	m.ctx.EndNodeHeader()
	m.ctx.BeginPin("a", pinScalar, editor.DirectionInput, editor.PinFlagNone)
	m.pins["mix.a"] = m.ctx.PinRef()
	m.ctx.Text("a")
	m.ctx.EndPin()
	m.ctx.BeginPin("b", pinScalar, editor.DirectionInput, editor.PinFlagNone)
	m.pins["mix.b"] = m.ctx.PinRef()
	m.ctx.Text("b")
	m.ctx.EndPin()
	m.ctx.BeginPin("out", pinSignal, editor.DirectionOutput, editor.PinFlagNone)
	m.pins["mix.out"] = m.ctx.PinRef()
	m.ctx.Text("out")
	m.ctx.EndPin()
	m.ctx.EndNode()

	m.ctx.BeginNode("sink", &m.posSink)
	m.ctx.BeginNodeHeader("Sink", header, headerHov, headerAct)
	m.ctx.EndNodeHeader()
	m.ctx.BeginPin("in", pinSignal, editor.DirectionInput, editor.PinFlagNone)
	m.pins["sink.in"] = m.ctx.PinRef()
	m.ctx.Text("in")
	m.ctx.EndPin()
	m.ctx.EndNode()
}

// wireDefaults connects the starting patch after the first frame, once every
// pin has an identity.
func (m *EditorModel) wireDefaults() {
	m.ctx.BeginGraphPostOp(m.graphName)
	m.ctx.MakeConnection(m.pins["source.out"], m.pins["gain.in"])
	m.ctx.MakeConnection(m.pins["gain.out"], m.pins["mix.a"])
	m.ctx.MakeConnection(m.pins["mix.out"], m.pins["sink.in"])
	m.ctx.EndGraphPostOp()
}

func (m *EditorModel) View() string {
	g := m.ctx.FindGraph(m.graphName)
	status := statusStyle.Render(fmt.Sprintf(
		"  zoom %.2f  connections %d  |  drag nodes · wheel zoom · middle-drag pan · alt+click break · f raise · q quit",
		g.Camera().Scale, g.ConnectionCount(),
	))
	return m.frame + "\n" + titleStyle.Render("  nodecanvas") + status
}
