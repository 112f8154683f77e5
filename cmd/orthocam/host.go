package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mgnsk/orthocam/internal/client"
	"github.com/mgnsk/orthocam/internal/input"
	"github.com/mgnsk/orthocam/internal/notify"
	"github.com/mgnsk/orthocam/internal/scene"
	"github.com/mgnsk/orthocam/internal/settings"
	"github.com/sirupsen/logrus"
)

const (
	hudRows       = 2
	statusTimeout = 2 * time.Second
	turnDegrees   = 5
)

var (
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleCube     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleForm     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkSlateGray)
	styleSelected = styleForm.Reverse(true)
)

type host struct {
	screen   tcell.Screen
	client   *client.Client
	player   *scene.Player
	queue    *input.Queue
	bindings input.Bindings
	lang     notify.Lang
	status   *notify.QueueSink
	log      logrus.FieldLogger

	clock       *client.StepClock
	form        *settings.Form
	started     time.Time
	message     string
	messageTime time.Time
	showHelp    bool
}

func (h *host) init() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	h.screen = screen
	return nil
}

func (h *host) cleanup() {
	h.client.Shutdown()
	h.screen.Fini()
}

func (h *host) openForm() {
	if h.form == nil {
		h.form = settings.Open(h.client.Camera(), h.player)
	}
}

func (h *host) closeForm() {
	if h.form.Close() {
		h.log.Info("camera options changed")
	}
	h.form = nil
}

func (h *host) run(stepPeriod, framePeriod time.Duration) {
	steps := time.NewTicker(stepPeriod)
	defer steps.Stop()
	frames := time.NewTicker(framePeriod)
	defer frames.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	h.started = time.Now()
	h.clock = client.NewStepClock(stepPeriod, h.started)

	for {
		select {
		case ev, ok := <-events:
			if !ok || !h.handleEvent(ev) {
				return
			}

		case now := <-steps.C:
			h.client.PreStep()
			h.client.PostStep(h.queue.Drain(now))
			h.clock.Step(now)

		case now := <-frames.C:
			for _, m := range h.status.Drain() {
				h.message = h.lang.Translate(m)
				h.messageTime = now
			}
			h.draw(now)
		}
	}
}

// handleEvent returns false when the host should quit.
func (h *host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if h.form != nil {
			h.handleFormKey(ev)
			return true
		}
		return h.handleKey(ev)

	case *tcell.EventResize:
		h.screen.Sync()
	}

	return true
}

func (h *host) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		return false
	case tcell.KeyF5:
		h.player.CyclePerspective()
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	r := ev.Rune()
	if a, ok := h.bindings.Lookup(r); ok {
		h.queue.Press(a, time.Now())
		return true
	}

	switch r {
	case 'q':
		return false
	case 'h':
		h.player.Turn(turnDegrees, 0)
	case 'l':
		h.player.Turn(-turnDegrees, 0)
	case 'k':
		h.player.Turn(0, turnDegrees)
	case 'j':
		h.player.Turn(0, -turnDegrees)
	case 'p':
		h.player.CyclePerspective()
	case '?':
		h.showHelp = !h.showHelp
	}

	return true
}

func (h *host) handleFormKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		h.closeForm()
	case tcell.KeyUp:
		h.form.Prev()
	case tcell.KeyDown, tcell.KeyTab:
		h.form.Next()
	case tcell.KeyLeft:
		h.form.Adjust(-1)
	case tcell.KeyRight:
		h.form.Adjust(1)
	case tcell.KeyEnter:
		h.form.Activate()
	case tcell.KeyRune:
		if a, ok := h.bindings.Lookup(ev.Rune()); ok && a == input.OpenOptions {
			h.closeForm()
		} else if ev.Rune() == ' ' {
			h.form.Activate()
		}
	}
}

func (h *host) draw(now time.Time) {
	h.screen.Clear()

	width, height := h.screen.Size()
	viewHeight := height - hudRows
	if width > 0 && viewHeight > 0 {
		h.drawScene(h.uniforms(now, width, viewHeight), width, viewHeight)
	}

	h.drawHUD(width, height)
	if h.form != nil {
		h.drawForm()
	}

	h.screen.Show()
}

// uniforms builds the frame's matrices. Terminal cells are about twice as tall as wide.
func (h *host) uniforms(now time.Time, width, height int) scene.Uniforms {
	fraction := h.clock.Fraction(now)
	w, ht := float32(width), float32(height*2)

	u := scene.Uniforms{
		Projection: h.player.Projection(w / ht),
		View:       h.player.View(),
		Model:      scene.CubeModel(float32(now.Sub(h.started).Seconds())),
	}
	if m, ok := h.client.Render(fraction, w, ht); ok {
		u.Projection = m
	}
	if rot, ok := h.client.FixedView(fraction); ok {
		u.View = h.player.ViewFrom(rot)
	}

	return u
}

func (h *host) drawScene(u scene.Uniforms, width, height int) {
	block, err := scene.DecodeUniforms(u.Bytes())
	if err != nil {
		h.log.WithError(err).Error("uniform upload")
		return
	}

	for _, s := range scene.ProjectCube(block, width, height) {
		s.Cells(func(x, y int) {
			if x >= 0 && x < width && y >= 0 && y < height {
				h.screen.SetContent(x, y, '█', nil, styleCube)
			}
		})
	}
}

func (h *host) drawHUD(width, height int) {
	cam := h.client.Camera()

	state := "OFF"
	if cam.Enabled() {
		state = "ON"
	}
	yaw, pitch := h.player.Look()
	top := fmt.Sprintf(" ortho %s  scale %.1f x %.1f  fixed %t (%.0f, %.0f)  %s  look (%.0f, %.0f)",
		state,
		cam.CurrentScaleX(), cam.CurrentScaleY(),
		cam.Fixed(), cam.CurrentFixedYaw(), cam.CurrentFixedPitch(),
		h.player.Perspective(),
		yaw, pitch,
	)

	bottom := " " + h.message
	if h.message == "" || time.Since(h.messageTime) > statusTimeout {
		bottom = " ? help  hjkl look  F5 perspective  q quit"
	}
	if h.showHelp {
		bottom = " " + h.help()
	}

	h.drawLine(0, height-2, width, top, styleHUD)
	h.drawLine(0, height-1, width, bottom, styleHUD)
}

func (h *host) help() string {
	var parts []string
	for _, a := range input.Actions() {
		if r, ok := h.bindings.Key(a); ok {
			parts = append(parts, fmt.Sprintf("%c %s", r, h.lang.Text(a.TranslationKey())))
		}
	}
	return strings.Join(parts, "  ")
}

func (h *host) drawForm() {
	fields := h.form.Fields()

	labelWidth := 0
	for _, f := range fields {
		if n := len(h.lang.Text(f.TranslationKey())); n > labelWidth {
			labelWidth = n
		}
	}
	width := labelWidth + 12

	h.drawLine(1, 0, width, " "+h.lang.Text("orthocamera.config.title"), styleForm.Bold(true))
	for i, f := range fields {
		style := styleForm
		if i == h.form.Selected() {
			style = styleSelected
		}
		text := fmt.Sprintf(" %-*s %9s", labelWidth, h.lang.Text(f.TranslationKey()), h.form.Value(i))
		h.drawLine(1, i+1, width, text, style)
	}
}

func (h *host) drawLine(x, y, width int, text string, style tcell.Style) {
	col := 0
	for _, r := range text {
		if col >= width {
			return
		}
		h.screen.SetContent(x+col, y, r, nil, style)
		col++
	}
	for ; col < width; col++ {
		h.screen.SetContent(x+col, y, ' ', nil, style)
	}
}
