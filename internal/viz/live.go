package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/guptarohit/asciigraph"

	"github.com/avekker/pendlab/internal/config"
	"github.com/avekker/pendlab/internal/pendulum"
)

const (
	defaultCanvasW = 64
	defaultCanvasH = 22
	statsWidth     = 38
	energyCapacity = 600
	kickFlash      = 30 // frames the impulse arrow stays on screen

	// maxStepsPerFrame caps catch-up work after a stall so one slow
	// frame cannot freeze the UI integrating thousands of steps.
	maxStepsPerFrame = 5000
)

type TickMsg time.Time

// Model is the interactive simulation view: a walk stepped in real
// time, drawn through an orbiting camera, with a stats panel beside it.
type Model struct {
	req    pendulum.Request
	view   config.ViewConfig
	walk   *pendulum.Walk
	sample pendulum.Sample
	err    error

	canvas *Canvas
	camera Camera
	theme  Theme
	st     styles

	trail  []mgl64.Vec3
	energy []float64
	carry  float64 // fractional integration steps owed to the next frame

	paused      bool
	showHelp    bool
	showVectors bool
	showEnergy  bool

	kick    mgl64.Vec3
	kickAge int
}

// NewModel validates the request and builds the initial view state.
func NewModel(req pendulum.Request, view config.ViewConfig) (Model, error) {
	walk, err := pendulum.NewWalk(req)
	if err != nil {
		return Model{}, err
	}

	if view.FPS <= 0 {
		view.FPS = config.DefaultFPS
	}
	if view.Trail <= 0 {
		view.Trail = config.DefaultTrail
	}
	if view.KickSize <= 0 {
		view.KickSize = 0.5
	}

	cam := NewCamera(3 * req.Params.Length)
	cam.Yaw = view.CameraYaw
	cam.Rotate(0, view.CameraPitch-cam.Pitch)
	if view.Zoom > 0 {
		cam.Zoom = view.Zoom
	}

	th := ThemeByName(view.Theme)
	m := Model{
		req:         req,
		view:        view,
		walk:        walk,
		sample:      walk.Sample(),
		canvas:      NewCanvas(defaultCanvasW, defaultCanvasH),
		camera:      cam,
		theme:       th,
		st:          newStyles(th),
		trail:       make([]mgl64.Vec3, 0, view.Trail),
		energy:      make([]float64, 0, energyCapacity),
		showVectors: view.ShowVectors,
		showEnergy:  view.ShowEnergy,
	}
	m.pushTrail()
	m.pushEnergy()
	return m, nil
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.view.FPS), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input and frame ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		if !m.paused && m.err == nil {
			m.advance()
		}
		if m.kickAge > 0 {
			m.kickAge--
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		if m.err == nil {
			m.paused = !m.paused
		}
	case "r":
		m.reset()
	case "?":
		m.showHelp = !m.showHelp
	case "t":
		m.theme = NextTheme(m.theme.Name)
		m.st = newStyles(m.theme)
	case "v":
		m.showVectors = !m.showVectors
	case "e":
		m.showEnergy = !m.showEnergy
	case "left", "h":
		m.camera.Rotate(-0.1, 0)
	case "right", "l":
		m.camera.Rotate(0.1, 0)
	case "up", "k":
		m.camera.Rotate(0, 0.1)
	case "down", "j":
		m.camera.Rotate(0, -0.1)
	case "+", "=":
		m.camera.ZoomIn()
	case "-", "_":
		m.camera.ZoomOut()
	case "x":
		m.kickBob(mgl64.Vec3{1, 0, 0})
	case "X":
		m.kickBob(mgl64.Vec3{-1, 0, 0})
	case "y":
		m.kickBob(mgl64.Vec3{0, 1, 0})
	case "Y":
		m.kickBob(mgl64.Vec3{0, -1, 0})
	case "z":
		m.kickBob(mgl64.Vec3{0, 0, 1})
	case "Z":
		m.kickBob(mgl64.Vec3{0, 0, -1})
	}
	return m, nil
}

// advance integrates the walk by one frame of wall time. The step grid
// rarely divides the frame interval evenly, so the remainder carries
// over instead of drifting.
func (m *Model) advance() {
	m.carry += 1 / (float64(m.view.FPS) * m.walk.Params().Step)
	steps := int(m.carry)
	m.carry -= float64(steps)
	if steps > maxStepsPerFrame {
		steps = maxStepsPerFrame
	}

	for i := 0; i < steps; i++ {
		s := m.walk.Next()
		m.sample = s
		if !s.State.IsValid() {
			m.err = &pendulum.InstabilityError{Step: s.Step, Time: s.Time}
			m.paused = true
			return
		}
	}
	if steps > 0 {
		m.pushTrail()
		m.pushEnergy()
	}
}

func (m *Model) pushTrail() {
	pos := pendulum.BobPosition(m.walk.Kind(), m.sample.State, m.walk.Params().Length)
	m.trail = append(m.trail, pos)
	if n := m.view.Trail; len(m.trail) > n {
		m.trail = m.trail[len(m.trail)-n:]
	}
}

func (m *Model) pushEnergy() {
	m.energy = append(m.energy, m.sample.Energy)
	if len(m.energy) > energyCapacity {
		m.energy = m.energy[1:]
	}
}

// reset rebuilds the walk from the original request.
func (m *Model) reset() {
	walk, err := pendulum.NewWalk(m.req)
	if err != nil {
		m.err = err
		return
	}
	m.walk = walk
	m.sample = walk.Sample()
	m.err = nil
	m.paused = false
	m.carry = 0
	m.trail = m.trail[:0]
	m.energy = m.energy[:0]
	m.kick = mgl64.Vec3{}
	m.kickAge = 0
	m.pushTrail()
	m.pushEnergy()
}

func (m *Model) kickBob(dir mgl64.Vec3) {
	if m.err != nil {
		return
	}
	imp := dir.Mul(m.view.KickSize)
	m.walk.Kick(imp)
	m.sample = m.walk.Sample()
	m.kick = imp
	m.kickAge = kickFlash
}

// View renders the scene and stats panels.
func (m Model) View() string {
	p := m.walk.Params()

	m.canvas.Clear()
	f := Frame{
		Pos:         pendulum.BobPosition(m.walk.Kind(), m.sample.State, p.Length),
		Vel:         pendulum.BobVelocity(m.walk.Kind(), m.sample.State, p.Length),
		Trail:       m.trail,
		Length:      p.Length,
		Gravity:     p.Gravity,
		ShowVectors: m.showVectors,
	}
	if m.kickAge > 0 {
		f.Impulse = m.kick
	}
	DrawScene(m.canvas, m.camera, f)

	title := m.st.title.Render("pendlab · " + m.walk.Kind().String())
	main := lipgloss.JoinHorizontal(lipgloss.Top,
		m.st.canvas.Render(m.canvas.String()),
		m.st.stats.Render(m.stats()),
	)

	out := title + "\n" + main + "\n" + m.st.help.Render(shortHelp)
	if m.showHelp {
		out += "\n" + m.st.help.Render(longHelp)
	}
	return out
}

func (m Model) stats() string {
	var b strings.Builder

	switch {
	case m.err != nil:
		b.WriteString(m.st.bad.Render("unstable") + "\n")
		b.WriteString(m.st.value.Render(m.err.Error()) + "\n\n")
	case m.paused:
		b.WriteString(m.st.warn.Render("paused") + "\n\n")
	default:
		b.WriteString(m.st.good.Render("running") + "\n\n")
	}

	row := func(label, value string) {
		b.WriteString(m.st.label.Render(label) + m.st.value.Render(value) + "\n")
	}
	row("time", fmt.Sprintf("%9.2f s", m.sample.Time))
	row("energy", fmt.Sprintf("%9.3f J/kg", m.sample.Energy))
	for i, name := range m.walk.Kind().Labels() {
		row(name, fmt.Sprintf("%9.3f", m.sample.State[i]))
	}
	row("theme", m.theme.Name)

	if m.walk.FellBack() {
		b.WriteString("\n" + m.st.warn.Render("pole fallback: cartesian") + "\n")
	}

	if m.showEnergy && len(m.energy) > 1 {
		chart := asciigraph.Plot(m.energy,
			asciigraph.Height(4),
			asciigraph.Width(28),
			asciigraph.Caption("energy"))
		b.WriteString("\n" + m.st.graph.Render(chart) + "\n")
	}
	return b.String()
}

const shortHelp = "space pause · r reset · x/y/z kick · ? help · q quit"

const longHelp = `  space        pause / resume
  r            restart the run
  x/X y/Y z/Z  kick the bob along the ±axis
  arrows hjkl  orbit the camera
  + / -        zoom in / out
  v            force vectors on/off
  e            energy chart on/off
  t            next theme
  q            quit`

// Run starts the interactive viewer and blocks until it exits.
func Run(req pendulum.Request, view config.ViewConfig) error {
	m, err := NewModel(req, view)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
