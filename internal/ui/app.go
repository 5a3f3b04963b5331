// Package ui is the terminal trainer: keypad digits stand in for mouse
// strokes and are fed through the same recognition engine as the pad.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/runecast/internal/gesture"
	"github.com/appengine-ltd/runecast/internal/recognition"
	"github.com/appengine-ltd/runecast/internal/runes"
	"github.com/appengine-ltd/runecast/internal/spells"
)

const (
	maxDigits     = 32
	maxLogLines   = 8
	strokeStep    = 120
	sampleSpacing = 40 * time.Millisecond
)

// History receives every analysed gesture and cast. The SQLite store
// satisfies it.
type History interface {
	RecordGesture(ctx context.Context, sessionID string, g recognition.GestureResult) error
	RecordCast(ctx context.Context, sessionID string, c recognition.CastResult) error
}

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string

	Book      *spells.Book
	Engine    recognition.Config
	Log       recognition.Logger
	History   History
	SessionID string
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	m := newTrainerModel(a.cfg, time.Now)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

var (
	violet     = lipgloss.NewStyle().Foreground(lipgloss.Color("141"))
	brightGold = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	dim        = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	danger     = lipgloss.NewStyle().Foreground(lipgloss.Color("167"))
	slot       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("60")).Width(9).Align(lipgloss.Center)
)

// trainer is the engine plus the collaborators the terminal provides.
type trainer struct {
	engine *recognition.Engine
	held   bool
	cursor time.Time
	events []string
}

func (t *trainer) PrecastHeld() bool { return t.held }

func (t *trainer) PlayRune(r runes.Rune) { t.note("♪ " + r.String()) }
func (t *trainer) PlayFizzle()           { t.note("fizzle") }

func (t *trainer) ReportCheat(code runes.CheatCode) { t.note("cheat " + code.String()) }

func (t *trainer) Cast(req recognition.CastRequest) bool {
	msg := "cast " + spells.DisplayName(req.Spell.String())
	if req.Power > 0 {
		msg += fmt.Sprintf(" (power %d)", req.Power)
	}
	if req.Precast() {
		msg += " [precast]"
	}
	t.note(msg)
	return true
}

func (t *trainer) note(msg string) {
	t.events = append(t.events, msg)
	if len(t.events) > maxLogLines {
		t.events = t.events[len(t.events)-maxLogLines:]
	}
}

type historyErrMsg struct {
	err error
}

type trainerModel struct {
	cfg   AppConfig
	t     *trainer
	clock func() time.Time

	digits string
	last   *recognition.GestureResult
	raw    []gesture.Point
	status string

	width  int
	height int
}

func newTrainerModel(cfg AppConfig, clock func() time.Time) trainerModel {
	t := &trainer{}
	if cfg.Engine.MaxPoints == 0 {
		cfg.Engine = recognition.DefaultConfig()
	}
	t.engine = recognition.New(cfg.Book, cfg.Engine, recognition.Collaborators{
		Input:  t,
		Audio:  t,
		Caster: t,
		Cheats: t,
		Log:    cfg.Log,
	})
	return trainerModel{cfg: cfg, t: t, clock: clock}
}

func (m trainerModel) Init() tea.Cmd {
	return nil
}

func (m trainerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case historyErrMsg:
		m.status = fmt.Sprintf("history write failed: %v", msg.err)
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m trainerModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "1", "2", "3", "4", "6", "7", "8", "9":
		if len(m.digits) < maxDigits {
			m.digits += key
		}
		m.status = ""
		return m, nil
	case "backspace":
		if m.digits != "" {
			m.digits = m.digits[:len(m.digits)-1]
		}
		return m, nil
	case "enter":
		return m.draw()
	case "c":
		res := m.t.engine.AnalyseSpell()
		if res.Spell == spells.SpellNone {
			m.status = "no spell for " + runesOrEmpty(res.Runes)
		} else {
			m.status = ""
		}
		return m, m.recordCast(res)
	case "p":
		m.t.held = !m.t.held
		return m, nil
	case "m":
		if m.t.engine.Memorize() {
			m.status = "memorized " + runes.Join(m.t.engine.Memorized())
		} else {
			m.status = "nothing to memorize"
		}
		return m, nil
	case "l":
		if m.t.engine.Recall() {
			m.status = "recalled " + runes.Join(m.t.engine.Symbols())
		} else {
			m.status = "nothing memorized"
		}
		return m, nil
	case "r":
		m.t.engine.Reset()
		m.digits = ""
		m.last = nil
		m.raw = nil
		m.status = "reset"
		return m, nil
	}
	return m, nil
}

// draw turns the typed digits into a synthetic stroke and analyses it.
func (m trainerModel) draw() (tea.Model, tea.Cmd) {
	if m.digits == "" {
		m.status = "type a direction first (1-9, no 5)"
		return m, nil
	}
	path, err := gesture.PathFromDigits(m.digits, gesture.Point{}, strokeStep)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}

	start := m.clock()
	if !start.After(m.t.cursor) {
		start = m.t.cursor.Add(sampleSpacing)
	}
	res := m.t.engine.Trace(path, start, sampleSpacing)
	m.t.cursor = start.Add(time.Duration(len(path)) * sampleSpacing)

	m.last = &res
	m.raw = path
	m.digits = ""
	switch res.Outcome {
	case recognition.OutcomeFailed:
		m.status = fmt.Sprintf("unknown symbol %s", res.Digits)
	default:
		m.status = ""
	}
	return m, m.recordGesture(res)
}

func (m trainerModel) recordGesture(g recognition.GestureResult) tea.Cmd {
	h := m.cfg.History
	if h == nil {
		return nil
	}
	session := m.cfg.SessionID
	return func() tea.Msg {
		if err := h.RecordGesture(context.Background(), session, g); err != nil {
			return historyErrMsg{err: err}
		}
		return nil
	}
}

func (m trainerModel) recordCast(c recognition.CastResult) tea.Cmd {
	h := m.cfg.History
	if h == nil {
		return nil
	}
	session := m.cfg.SessionID
	return func() tea.Msg {
		if err := h.RecordCast(context.Background(), session, c); err != nil {
			return historyErrMsg{err: err}
		}
		return nil
	}
}

func (m trainerModel) View() string {
	var b strings.Builder
	b.WriteString(brightGold.Render("RUNECAST") + dim.Render("  trainer  "+m.cfg.Version) + "\n\n")

	b.WriteString(m.slotsView() + "\n")

	precast := dim.Render("precast off")
	if m.t.held {
		precast = brightGold.Render("precast ON")
	}
	memo := ""
	if m.t.engine.Memorizing() {
		memo = violet.Render("  memorizing")
	}
	b.WriteString(precast + memo + "\n\n")

	b.WriteString("direction: " + violet.Render(m.digits) + dim.Render("_") + "\n")

	if m.last != nil {
		b.WriteString("\n" + m.gestureView() + "\n")
	}

	if len(m.t.events) > 0 {
		b.WriteString("\n")
		for _, ev := range m.t.events {
			b.WriteString(dim.Render("· ") + ev + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + danger.Render(m.status) + "\n")
	}
	b.WriteString("\n" + dim.Render("1-9 direction · enter draw · c cast · p precast · m memorize · l recall · r reset · q quit") + "\n")
	return b.String()
}

func (m trainerModel) slotsView() string {
	symbols := m.t.engine.Symbols()
	cells := make([]string, spells.MaxSymbols)
	for i := range cells {
		label := " "
		if i < len(symbols) {
			label = symbols[i].String()
		}
		cells[i] = slot.Render(label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m trainerModel) gestureView() string {
	res := m.last
	verdict := danger.Render("no match")
	switch {
	case res.Match.Kind == runes.MatchRune:
		verdict = brightGold.Render(res.Match.Rune.String())
	case res.Match.Kind == runes.MatchCheat:
		verdict = violet.Render("cheat " + res.Match.Cheat.String())
	}
	header := fmt.Sprintf("%s → %s", res.Digits, verdict)

	art := renderStrokeANSI(m.raw, res.Path, 24, 8)
	if art == "" {
		return header
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.TrimRight(art, "\n"), "  "+header)
}

func runesOrEmpty(seq []runes.Rune) string {
	if len(seq) == 0 {
		return "an empty sequence"
	}
	return runes.Join(seq)
}
