// Package render adapts game state to a canvas-like surface: it lays the hex
// grid out in pixel space, resolves pointer coordinates back to board
// entities and repaints once per frame tick when anything changed.
package render

import (
	"math"

	"settlers/board"
)

// HitKind tags which layer a pointer hit resolved to.
type HitKind int

const (
	HitNone HitKind = iota
	HitNode
	HitConnector
	HitCell
)

// Hit is the closed set of click targets on the board.
type Hit struct {
	Kind      HitKind
	Node      *board.Node
	Connector *board.Connector
	Cell      *board.Cell
}

// ClickSink receives resolved clicks and reports whether it handled them.
// The game's click dispatcher implements this.
type ClickSink interface {
	HandleNodeClick(*board.Node) bool
	HandleConnectorClick(*board.Connector) bool
	HandleCellClick(*board.Cell) bool
}

type point struct {
	x, y float64
}

// Scene maps the board graph into pixel space. Pointy-top hexes, axial cell
// coordinates, the configured size is the hex circumradius.
type Scene struct {
	board   *board.Board
	size    float64
	originX float64
	originY float64

	cellCenters map[*board.Cell]point
	nodePoints  map[*board.Node]point
}

func NewScene(b *board.Board, size, originX, originY float64) *Scene {
	s := &Scene{
		board:       b,
		size:        size,
		originX:     originX,
		originY:     originY,
		cellCenters: make(map[*board.Cell]point, len(b.Cells)),
		nodePoints:  make(map[*board.Node]point, len(b.Nodes)),
	}
	for _, c := range b.Cells {
		s.cellCenters[c] = point{
			x: originX + size*math.Sqrt(3)*(float64(c.X)+float64(c.Y)/2),
			y: originY + size*1.5*float64(c.Y),
		}
	}
	// A node's corner point is the centroid of its cells' centers; for the
	// three mutually adjacent cells of an interior corner that is exactly
	// the shared vertex.
	for _, n := range b.Nodes {
		var p point
		for _, c := range n.Cells {
			center := s.cellCenters[c]
			p.x += center.x
			p.y += center.y
		}
		p.x /= float64(len(n.Cells))
		p.y /= float64(len(n.Cells))
		s.nodePoints[n] = p
	}
	return s
}

// CellCenter returns the pixel center of a cell.
func (s *Scene) CellCenter(c *board.Cell) (float64, float64) {
	p := s.cellCenters[c]
	return p.x, p.y
}

// NodePoint returns the pixel position of a building site.
func (s *Scene) NodePoint(n *board.Node) (float64, float64) {
	p := s.nodePoints[n]
	return p.x, p.y
}

// NodeAt resolves a pointer position to the nearest node within its hit
// radius, or nil.
func (s *Scene) NodeAt(x, y float64) *board.Node {
	return nearest(s.nodePoints, x, y, s.size*0.3)
}

// ConnectorAt resolves a pointer position to the nearest connector midpoint
// within its hit radius, or nil.
func (s *Scene) ConnectorAt(x, y float64) *board.Connector {
	var best *board.Connector
	bestDist := s.size * 0.3
	for _, c := range s.board.Connectors {
		a, b := s.nodePoints[c.NodeA], s.nodePoints[c.NodeB]
		mid := point{x: (a.x + b.x) / 2, y: (a.y + b.y) / 2}
		if d := math.Hypot(mid.x-x, mid.y-y); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// CellAt resolves a pointer position to the cell whose center is nearest,
// provided the point falls inside its hex.
func (s *Scene) CellAt(x, y float64) *board.Cell {
	var best *board.Cell
	bestDist := s.size * math.Sqrt(3) / 2 // inradius
	for _, c := range s.board.Cells {
		center := s.cellCenters[c]
		if d := math.Hypot(center.x-x, center.y-y); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// Locate resolves a pointer position to the topmost board entity, node over
// connector over cell.
func (s *Scene) Locate(x, y float64) Hit {
	if n := s.NodeAt(x, y); n != nil {
		return Hit{Kind: HitNode, Node: n}
	}
	if c := s.ConnectorAt(x, y); c != nil {
		return Hit{Kind: HitConnector, Connector: c}
	}
	if c := s.CellAt(x, y); c != nil {
		return Hit{Kind: HitCell, Cell: c}
	}
	return Hit{}
}

// Dispatch resolves a click and feeds it through the layers in priority
// order. A higher-priority hit suppresses the lower layers only when its
// handler reports the click handled; otherwise the click falls through.
func (s *Scene) Dispatch(sink ClickSink, x, y float64) bool {
	if n := s.NodeAt(x, y); n != nil && sink.HandleNodeClick(n) {
		return true
	}
	if c := s.ConnectorAt(x, y); c != nil && sink.HandleConnectorClick(c) {
		return true
	}
	if c := s.CellAt(x, y); c != nil && sink.HandleCellClick(c) {
		return true
	}
	return false
}

func nearest[T comparable](points map[T]point, x, y, radius float64) T {
	var best T
	bestDist := radius
	for entity, p := range points {
		if d := math.Hypot(p.x-x, p.y-y); d < bestDist {
			best, bestDist = entity, d
		}
	}
	return best
}
