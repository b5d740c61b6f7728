package render

import (
	"settlers/board"
	"settlers/event"
)

// Painter repaints the whole surface from the latest board snapshot. It must
// never mutate game state.
type Painter interface {
	Paint(*board.Board)
}

// PainterFunc adapts a function to the Painter interface.
type PainterFunc func(*board.Board)

func (f PainterFunc) Paint(b *board.Board) {
	f(b)
}

// Scheduler decouples repainting from state mutation: it subscribes to every
// board entity's statechange, marks itself dirty, and repaints at most once
// per frame tick.
type Scheduler struct {
	board   *board.Board
	painter Painter
	dirty   bool
}

func NewScheduler(b *board.Board, p Painter) *Scheduler {
	s := &Scheduler{board: b, painter: p, dirty: true}
	for _, c := range b.Cells {
		c.AddObserver(s)
	}
	for _, n := range b.Nodes {
		n.AddObserver(s)
	}
	for _, c := range b.Connectors {
		c.AddObserver(s)
	}
	return s
}

// HandleEvent marks the surface dirty. It never consumes the event so other
// observers still see it.
func (s *Scheduler) HandleEvent(e event.Event) bool {
	if e.Kind == event.StateChange {
		s.dirty = true
	}
	return false
}

// Tick is called once per animation frame. It repaints only when something
// changed since the last frame and reports whether it painted.
func (s *Scheduler) Tick() bool {
	if !s.dirty {
		return false
	}
	s.dirty = false
	s.painter.Paint(s.board)
	return true
}
