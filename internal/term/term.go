// Package term runs a Session in a terminal using tcell.
package term

import (
	"fmt"
	"io"
	"log"

	"github.com/gdamore/tcell/v2"

	"mad-life/internal/app"
	"mad-life/internal/sims/life"
)

// Cell styles: live cells green, dead cells gray. Each cell is two columns
// wide so the grid looks square.
var (
	aliveStyle  = tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorBlack)
	deadStyle   = tcell.StyleDefault.Background(tcell.ColorGray).Foreground(tcell.ColorBlack)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

const cellColumns = 2

// Host draws the grid, maps keys and clicks onto the Session and redraws
// whenever the grid changes. Playback ticks arrive on timer goroutines; the
// grid's own lock serialises them against edits from the event loop.
type Host struct {
	screen  tcell.Screen
	session *app.Session
	log     *log.Logger

	buf      []uint8
	lastBtns tcell.ButtonMask
}

// New returns a Host drawing session on screen. screen must already be
// initialised.
func New(screen tcell.Screen, session *app.Session, logger *log.Logger) *Host {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	h := &Host{screen: screen, session: session, log: logger}
	session.Sim.OnChange(func([]life.Change) {
		// Dropped interrupts are fine: a redraw is already queued.
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	return h
}

// Run processes events until the user quits or the screen is finalised.
func (h *Host) Run() error {
	h.screen.EnableMouse()
	h.Draw()
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if h.Handle(ev) {
			h.session.Ctrl.Stop()
			return nil
		}
		h.Draw()
	}
}

// Handle applies one event and reports whether the user asked to quit.
func (h *Host) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)
	case *tcell.EventMouse:
		h.handleMouse(ev)
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return false
}

func (h *Host) handleKey(ev *tcell.EventKey) bool {
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
		h.session.ToggleRun()
		h.log.Printf("term: playback %v", h.session.Ctrl.State())
	case 'n':
		h.session.StepOnce()
	case 'r':
		h.session.Randomize()
	case 's':
		h.session.Reseed()
	case 'c':
		h.session.Clear()
	case '+', '=':
		h.session.NudgeSpeed(1)
	case '-':
		h.session.NudgeSpeed(-1)
	}
	return false
}

func (h *Host) handleMouse(ev *tcell.EventMouse) {
	btns := ev.Buttons()
	pressed := btns&tcell.Button1 != 0 && h.lastBtns&tcell.Button1 == 0
	h.lastBtns = btns
	if !pressed {
		return
	}
	col, row := ev.Position()
	x, y := col/cellColumns, row
	if !h.session.Sim.Size().Contains(x, y) {
		return
	}
	if err := h.session.ToggleCell(x, y); err != nil {
		h.log.Printf("term: %v", err)
	}
}

// Draw renders the grid and the status line.
func (h *Host) Draw() {
	size := h.session.Sim.Size()
	h.buf = h.session.Sim.Snapshot(h.buf)
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			style := deadStyle
			if h.buf[y*size.W+x] != 0 {
				style = aliveStyle
			}
			for c := 0; c < cellColumns; c++ {
				h.screen.SetContent(x*cellColumns+c, y, ' ', nil, style)
			}
		}
	}
	h.drawStatus(size.H)
	h.screen.Show()
}

func (h *Host) drawStatus(row int) {
	ctrl := h.session.Ctrl
	status := fmt.Sprintf("%-7s gen %-6d pop %-5d every %-6v  [space] run  [n] step  [r] random  [s] reseed  [c] clear  [+/-] speed  [q] quit",
		ctrl.State(), h.session.Sim.Generation(), h.session.Sim.Population(), ctrl.Interval())
	w, _ := h.screen.Size()
	col := 0
	for _, r := range status {
		if col >= w {
			break
		}
		h.screen.SetContent(col, row, r, nil, statusStyle)
		col++
	}
	for ; col < w; col++ {
		h.screen.SetContent(col, row, ' ', nil, statusStyle)
	}
}
