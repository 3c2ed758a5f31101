// Package term is a terminal front end for a session built on tcell.
//
// Each cell takes two terminal columns so the board looks roughly square.
// Clicking a cell toggles it; space plays or pauses, n steps once, r resets,
// s fills the board randomly and q or Esc quits.
package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"lifegrid/internal/core"
	"lifegrid/internal/render"
	"lifegrid/internal/session"
)

const cellWidth = 2

const help = "click: toggle  space: play/pause  n: step  r: reset  s: random  q: quit"

var (
	aliveStyle  = tcell.StyleDefault.Background(tcell.ColorYellow)
	deadStyle   = tcell.StyleDefault.Background(tcell.ColorLightGray)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	helpStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// UI binds a tcell screen to a session.
type UI struct {
	screen  tcell.Screen
	session *session.Session
	runner  *session.Runner

	ctx       context.Context
	seed      int64
	mouseDown bool
}

// New builds a UI that steps s every interval while playing. The screen must
// already be initialized.
func New(screen tcell.Screen, s *session.Session, interval time.Duration, seed int64) *UI {
	u := &UI{screen: screen, session: s, ctx: context.Background(), seed: seed}
	u.runner = session.NewRunner(s, interval, func(f session.Frame) {
		// Redraw on the event goroutine; a full queue only drops a redraw.
		_ = screen.PostEvent(tcell.NewEventInterrupt(f))
	})
	return u
}

// Run draws the board and handles events until the user quits or ctx is
// cancelled.
func (u *UI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	u.ctx = ctx
	defer u.runner.Stop()

	if u.session.Playing() {
		u.runner.Start(ctx)
	}
	u.Draw()

	go func() {
		<-ctx.Done()
		_ = u.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	for {
		ev := u.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}
		if u.Handle(ev) {
			return nil
		}
	}
}

// Handle applies one event and reports whether the UI should quit.
func (u *UI) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return u.handleKey(ev)
	case *tcell.EventMouse:
		u.handleMouse(ev)
	case *tcell.EventResize:
		u.screen.Sync()
	case *tcell.EventInterrupt:
	}
	u.Draw()
	return false
}

func (u *UI) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}
	switch ev.Rune() {
	case 'q':
		return true
	case ' ':
		u.TogglePlay()
	case 'n':
		u.session.Step()
	case 'r':
		u.runner.Stop()
		u.session.Reset()
	case 's':
		u.seed++
		u.session.Randomize(u.seed)
	}
	u.Draw()
	return false
}

// TogglePlay starts the runner when paused and stops it when playing.
func (u *UI) TogglePlay() {
	if u.runner.Running() {
		u.runner.Stop()
		return
	}
	u.runner.Start(u.ctx)
}

func (u *UI) handleMouse(ev *tcell.EventMouse) {
	pressed := ev.Buttons()&tcell.Button1 != 0
	wasDown := u.mouseDown
	u.mouseDown = pressed
	if !pressed || wasDown {
		return
	}
	x, y := ev.Position()
	core.ToggleAt(u.session, cellWidth, 1, x, y)
}

// Draw paints the board, status line and key help.
func (u *UI) Draw() {
	f := u.session.Frame()
	u.screen.Clear()
	for row := range f.Grid {
		for col, alive := range f.Grid[row] {
			style := deadStyle
			if alive {
				style = aliveStyle
			}
			for i := 0; i < cellWidth; i++ {
				u.screen.SetContent(col*cellWidth+i, row, ' ', nil, style)
			}
		}
	}
	size := u.session.Size()
	drawText(u.screen, 0, size.H+1, statusStyle, render.Status(f))
	drawText(u.screen, 0, size.H+2, helpStyle, help)
	u.screen.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
