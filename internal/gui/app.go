// Package gui is the raylib drawing pad: the mouse draws gestures that the
// recognition engine turns into runes and spells.
package gui

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/runecast/internal/gesture"
	padtheme "github.com/appengine-ltd/runecast/internal/gui/theme"
	"github.com/appengine-ltd/runecast/internal/recognition"
	"github.com/appengine-ltd/runecast/internal/replay"
	"github.com/appengine-ltd/runecast/internal/runes"
	"github.com/appengine-ltd/runecast/internal/spells"
)

const (
	effectTTL    = 2500 * time.Millisecond
	ghostTTL     = 1500 * time.Millisecond
	maxEffects   = 6
	castQueueCap = 8
)

type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

// History receives every analysed gesture and cast.
type History interface {
	RecordGesture(ctx context.Context, sessionID string, g recognition.GestureResult) error
	RecordCast(ctx context.Context, sessionID string, c recognition.CastResult) error
}

type AppConfig struct {
	Version       string
	Book          *spells.Book
	Engine        recognition.Config
	Log           Logger
	History       History
	SessionID     string
	SoundDir      string
	FontDir       string
	RecordingsDir string
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	p := newPad(a.cfg, time.Now)
	return p.Run()
}

// effect is a transient message such as a cast or a fizzle.
type effect struct {
	text  string
	color rl.Color
	at    time.Time
}

type pad struct {
	cfg   AppConfig
	clock func() time.Time

	engine   *recognition.Engine
	casts    *castQueue
	sounds   *soundBank
	recorder *replay.Recorder

	width  int32
	height int32

	drawing  bool
	ghost    []gesture.Point
	ghostAt  time.Time
	last     *recognition.GestureResult
	effects  []effect
	status   string
	statusAt time.Time
}

func newPad(cfg AppConfig, clock func() time.Time) *pad {
	p := &pad{
		cfg:    cfg,
		clock:  clock,
		casts:  newCastQueue(castQueueCap),
		sounds: &soundBank{},
		width:  1100,
		height: 720,
	}
	p.recorder = replay.NewRecorder("pad", clock())
	p.newEngine()
	return p
}

// newEngine wires the engine to the pad's collaborators. It is called again
// once the audio device is up so the sound bank is live.
func (p *pad) newEngine() {
	if p.cfg.Engine.MaxPoints == 0 {
		p.cfg.Engine = recognition.DefaultConfig()
	}
	var log recognition.Logger
	if p.cfg.Log != nil {
		log = p.cfg.Log
	}
	p.engine = recognition.New(p.cfg.Book, p.cfg.Engine, recognition.Collaborators{
		Input:  keyboardInput{},
		Audio:  p.sounds,
		Caster: p.casts,
		Cheats: p,
		Log:    log,
	})
}

func (p *pad) ReportCheat(code runes.CheatCode) {
	p.pushEffect("cheat "+code.String(), AppTheme.Arcane)
}

func (p *pad) Run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(p.width, p.height, "runecast")
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)
	initTypography(p.cfg.FontDir)
	rl.InitAudioDevice()
	p.sounds = loadSoundBank(p.cfg.SoundDir)
	p.newEngine()

	for !rl.WindowShouldClose() {
		p.width = int32(rl.GetScreenWidth())
		p.height = int32(rl.GetScreenHeight())

		p.update()

		rl.BeginDrawing()
		rl.ClearBackground(AppTheme.Background)
		p.draw()
		rl.EndDrawing()
	}

	p.sounds.Unload()
	rl.CloseAudioDevice()
	shutdownTypography()
	rl.CloseWindow()
	return nil
}

func (p *pad) padRect() rl.Rectangle {
	side := float32(300)
	return rl.NewRectangle(spaceL, spaceL+56, float32(p.width)-side-3*spaceL, float32(p.height)-2*spaceL-150)
}

func (p *pad) update() {
	now := p.clock()
	mouse := rl.GetMousePosition()
	pt := gesture.Point{X: int(mouse.X), Y: int(mouse.Y)}

	switch {
	case rl.IsMouseButtonPressed(rl.MouseButtonLeft) && rl.CheckCollisionPointRec(mouse, p.padRect()):
		p.drawing = true
		p.engine.BeginGesture()
		p.recorder.BeginGesture(now)
		p.engine.AddPoint(pt, now)
		p.recorder.AddSample(pt, now)
	case p.drawing && rl.IsMouseButtonDown(rl.MouseButtonLeft):
		p.engine.AddPoint(pt, now)
		p.recorder.AddSample(pt, now)
	case p.drawing && rl.IsMouseButtonReleased(rl.MouseButtonLeft):
		p.drawing = false
		p.ghost = p.engine.Stroke()
		p.ghostAt = now
		res := p.engine.AnalyseSymbol()
		p.recorder.EndGesture(shiftDown())
		p.last = &res
		if res.Outcome == recognition.OutcomeFailed {
			p.setStatus(fmt.Sprintf("unknown symbol %s", res.Digits), now)
		}
		p.recordGesture(res)
	}

	if !p.drawing && (rl.IsMouseButtonPressed(rl.MouseButtonRight) || rl.IsKeyPressed(rl.KeyEnter)) {
		precast := shiftDown()
		res := p.engine.AnalyseSpell()
		p.recorder.Action(replay.StepCast, now, precast)
		if res.Spell == spells.SpellNone {
			p.pushEffect("fizzle", AppTheme.Danger)
		} else if !res.OK {
			p.pushEffect("too many spells in flight", AppTheme.Warning)
		}
		p.recordCast(res)
	}

	switch {
	case PlainKeyPressed(rl.KeyM):
		if p.engine.Memorize() {
			p.recorder.Action(replay.StepMemorize, now, false)
			p.setStatus("memorized "+runes.Join(p.engine.Memorized()), now)
		}
	case PlainKeyPressed(rl.KeyL):
		if p.engine.Recall() {
			p.recorder.Action(replay.StepRecall, now, false)
			p.setStatus("recalled "+runes.Join(p.engine.Symbols()), now)
		}
	case ShiftKeyPressed(rl.KeyR):
		p.engine.Reset()
		p.recorder = replay.NewRecorder("pad", now)
		p.setStatus("reset, recording restarted", now)
	case PlainKeyPressed(rl.KeyR):
		p.engine.Reset()
		p.recorder.Action(replay.StepReset, now, false)
		p.setStatus("reset", now)
	case PlainKeyPressed(rl.KeyS):
		p.saveRecording(now)
	}

	p.drainCasts(now)
	p.expire(now)
}

func (p *pad) drainCasts(now time.Time) {
	for {
		req, ok := p.casts.Dequeue()
		if !ok {
			return
		}
		text := "cast " + spells.DisplayName(req.Spell.String())
		if req.Precast() {
			text += " (precast)"
		}
		p.pushEffect(text, AppTheme.Accent)
		if p.cfg.Log != nil {
			p.cfg.Log.Infof("cast %s power=%d precast=%t", req.Spell, req.Power, req.Precast())
		}
	}
}

func (p *pad) pushEffect(text string, clr rl.Color) {
	p.effects = append(p.effects, effect{text: text, color: clr, at: p.clock()})
	if len(p.effects) > maxEffects {
		p.effects = p.effects[len(p.effects)-maxEffects:]
	}
}

func (p *pad) expire(now time.Time) {
	kept := p.effects[:0]
	for _, e := range p.effects {
		if now.Sub(e.at) < effectTTL {
			kept = append(kept, e)
		}
	}
	p.effects = kept
	if len(p.ghost) > 0 && now.Sub(p.ghostAt) >= ghostTTL {
		p.ghost = nil
	}
}

func (p *pad) setStatus(msg string, now time.Time) {
	p.status = msg
	p.statusAt = now
}

func (p *pad) saveRecording(now time.Time) {
	if p.recorder.Len() == 0 {
		p.setStatus("nothing recorded yet", now)
		return
	}
	dir := p.cfg.RecordingsDir
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, "runecast-"+now.Format("20060102-150405")+".json")
	if err := replay.Save(path, p.recorder.Recording()); err != nil {
		p.setStatus("save failed: "+err.Error(), now)
		if p.cfg.Log != nil {
			p.cfg.Log.Warnf("save recording: %v", err)
		}
		return
	}
	p.setStatus("saved "+path, now)
}

func (p *pad) recordGesture(g recognition.GestureResult) {
	if p.cfg.History == nil {
		return
	}
	if err := p.cfg.History.RecordGesture(context.Background(), p.cfg.SessionID, g); err != nil && p.cfg.Log != nil {
		p.cfg.Log.Warnf("record gesture: %v", err)
	}
}

func (p *pad) recordCast(c recognition.CastResult) {
	if p.cfg.History == nil {
		return
	}
	if err := p.cfg.History.RecordCast(context.Background(), p.cfg.SessionID, c); err != nil && p.cfg.Log != nil {
		p.cfg.Log.Warnf("record cast: %v", err)
	}
}

func (p *pad) draw() {
	now := p.clock()
	drawText("RUNECAST", int32(spaceL), int32(spaceL), typeScale.Title, AppTheme.TextPrimary)
	drawText(p.cfg.Version, int32(spaceL)+measureText("RUNECAST", typeScale.Title)+12, int32(spaceL)+10, typeScale.Small, AppTheme.TextMuted)

	area := p.padRect()
	DrawPanel(area, "", p.drawing)
	p.drawStroke(now)

	p.drawSlots(rl.NewRectangle(area.X, area.Y+area.Height+spaceM, area.Width, 56))

	used := 100 * p.engineSamples() / max(p.cfg.Engine.MaxPoints, 1)
	DrawMeter("ink", used, rl.NewRectangle(area.X, area.Y+area.Height+spaceM+70, 240, 30), MeterThresholds{})
	if p.engine.Precast() || shiftDown() {
		drawText("PRECAST", int32(area.X+260), int32(area.Y+area.Height+spaceM+70), typeScale.Body, AppTheme.Accent)
	}

	side := rl.NewRectangle(area.X+area.Width+spaceL, area.Y, float32(p.width)-area.X-area.Width-2*spaceL, area.Height)
	p.drawSidebar(side, now)
}

func (p *pad) engineSamples() int {
	if !p.drawing {
		return 0
	}
	return len(p.engine.Stroke())
}

func (p *pad) drawStroke(now time.Time) {
	if p.drawing {
		drawPolyline(p.engine.Stroke(), 3, AppTheme.Arcane)
		return
	}
	if len(p.ghost) > 0 {
		alpha := fadeAlpha(now.Sub(p.ghostAt), ghostTTL)
		drawPolyline(p.ghost, 2, rl.Fade(AppTheme.Arcane, alpha*0.5))
		if p.last != nil {
			drawPolyline(p.last.Path, 3, rl.Fade(AppTheme.Accent, alpha))
			for _, v := range p.last.Path {
				rl.DrawCircle(int32(v.X), int32(v.Y), 4, rl.Fade(AppTheme.Accent, alpha))
			}
		}
	}
}

func drawPolyline(points []gesture.Point, thickness float32, clr rl.Color) {
	for i := 1; i < len(points); i++ {
		a := rl.NewVector2(float32(points[i-1].X), float32(points[i-1].Y))
		b := rl.NewVector2(float32(points[i].X), float32(points[i].Y))
		rl.DrawLineEx(a, b, thickness, clr)
	}
}

func (p *pad) drawSlots(rect rl.Rectangle) {
	symbols := p.engine.Symbols()
	w := (rect.Width - float32(spells.MaxSymbols-1)*spaceS) / float32(spells.MaxSymbols)
	for i := 0; i < spells.MaxSymbols; i++ {
		cell := rl.NewRectangle(rect.X+float32(i)*(w+spaceS), rect.Y, w, rect.Height)
		state := padtheme.SlotEmpty
		label := ""
		if i < len(symbols) {
			label = symbols[i].String()
			state = padtheme.SlotFilled
			if i == len(symbols)-1 {
				state = padtheme.SlotNewest
			}
		}
		padtheme.DrawRuneSlot(cell, state, label)
	}
}

func (p *pad) drawSidebar(rect rl.Rectangle, now time.Time) {
	DrawPanel(rect, "Last gesture", false)
	x := int32(rect.X + spaceM)
	y := int32(rect.Y+spaceS) + typeScale.Header + 24
	line := textLineHeight(typeScale.Body)

	if p.last != nil {
		drawText("digits  "+p.last.Digits, x, y, typeScale.Body, AppTheme.TextPrimary)
		y += line
		switch p.last.Match.Kind {
		case runes.MatchRune:
			drawGlyphText(p.last.Match.Rune.String(), x, y, AppTheme.Accent)
			y += textLineHeight(typeScale.Glyph)
		case runes.MatchCheat:
			drawText("cheat "+p.last.Match.Cheat.String(), x, y, typeScale.Body, AppTheme.Arcane)
			y += line
		default:
			drawText("no match", x, y, typeScale.Body, AppTheme.Danger)
			y += line
		}
	} else {
		padtheme.DrawHintText("draw inside the pad", x, y)
		y += line
	}

	y += line / 2
	for _, e := range p.effects {
		alpha := fadeAlpha(now.Sub(e.at), effectTTL)
		drawText(e.text, x, y, typeScale.Body, rl.Fade(e.color, alpha))
		y += line
	}

	if p.status != "" && now.Sub(p.statusAt) < 2*effectTTL {
		drawText(p.status, x, int32(rect.Y+rect.Height)-2*line, typeScale.Small, AppTheme.Warning)
	}
	padtheme.DrawHintText("LMB draw · RMB/Enter cast · Shift precast", x, int32(rect.Y+rect.Height)-line)
	padtheme.DrawHintText("M memorize · L recall · R reset · S save", x, int32(rect.Y+rect.Height)+4)
}

// fadeAlpha is 1 for fresh items and falls linearly to 0 at ttl.
func fadeAlpha(age, ttl time.Duration) float32 {
	if ttl <= 0 || age >= ttl {
		return 0
	}
	if age <= 0 {
		return 1
	}
	return 1 - float32(age)/float32(ttl)
}
