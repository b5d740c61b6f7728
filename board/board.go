package board

import (
	"fmt"

	"settlers/event"
)

// Cell is a hex tile. Position is axial (X = column, Y = row). Value is the
// dice sum that makes the cell produce; desert and ocean cells have none.
// Cells are created once at board build time and only the robber and
// selection flags change afterwards.
type Cell struct {
	event.Emitter
	X, Y     int
	Terrain  Terrain
	Value    int
	Robber   bool
	Selected bool

	nodes []*Node
}

// Nodes returns the building sites on the cell's corners, in registration
// order.
func (c *Cell) Nodes() []*Node {
	return c.nodes
}

// SetRobber moves the robber flag and notifies observers.
func (c *Cell) SetRobber(v bool) {
	if c.Robber == v {
		return
	}
	c.Robber = v
	c.Fire(event.Event{Kind: event.StateChange, Data: c})
}

// SetSelected toggles the selection highlight and notifies observers when the
// flag actually changes.
func (c *Cell) SetSelected(v bool) {
	if c.Selected == v {
		return
	}
	c.Selected = v
	c.Fire(event.Event{Kind: event.StateChange, Data: c})
}

// Node is a building site at the junction of 2-3 cells. Owner is a player id,
// 0 while unowned; it is set exactly once for the lifetime of the game.
type Node struct {
	event.Emitter
	Cells    []*Cell
	Owner    int
	Selected bool

	siblings   []*Node
	connectors []*Connector
}

// Siblings returns the nodes one connector away. The set is precomputed at
// construction time since the topology never changes.
func (n *Node) Siblings() []*Node {
	return n.siblings
}

// Connectors returns the road sites incident to the node.
func (n *Node) Connectors() []*Connector {
	return n.connectors
}

// SetOwner assigns the node to a player and notifies observers. Ownership is
// never cleared or transferred.
func (n *Node) SetOwner(player int) {
	if n.Owner != 0 {
		panic("board: node owner already set")
	}
	n.Owner = player
	n.Fire(event.Event{Kind: event.StateChange, Data: n})
}

func (n *Node) SetSelected(v bool) {
	if n.Selected == v {
		return
	}
	n.Selected = v
	n.Fire(event.Event{Kind: event.StateChange, Data: n})
}

// Connector is a road site linking two adjacent nodes. Cells holds the 1-2
// cells common to both endpoints.
type Connector struct {
	event.Emitter
	NodeA, NodeB *Node
	Cells        []*Cell
	Owner        int
	Selected     bool
}

// Touches reports whether n is one of the connector's endpoints.
func (c *Connector) Touches(n *Node) bool {
	return c.NodeA == n || c.NodeB == n
}

// Other returns the endpoint opposite n.
func (c *Connector) Other(n *Node) *Node {
	if c.NodeA == n {
		return c.NodeB
	}
	return c.NodeA
}

func (c *Connector) SetOwner(player int) {
	if c.Owner != 0 {
		panic("board: connector owner already set")
	}
	c.Owner = player
	c.Fire(event.Event{Kind: event.StateChange, Data: c})
}

func (c *Connector) SetSelected(v bool) {
	if c.Selected == v {
		return
	}
	c.Selected = v
	c.Fire(event.Event{Kind: event.StateChange, Data: c})
}

// CellDescriptor describes one cell of a layout. Value must be 0 for desert
// and ocean cells.
type CellDescriptor struct {
	X, Y    int
	Terrain Terrain
	Value   int
}

// NodeDescriptor lists the indices of the cells forming a node.
type NodeDescriptor struct {
	Cells []int
}

// ConnectorDescriptor lists the indices of a connector's endpoint nodes.
type ConnectorDescriptor struct {
	NodeA, NodeB int
}

// Layout is the topology handed over by a board provider.
type Layout struct {
	Cells      []CellDescriptor
	Nodes      []NodeDescriptor
	Connectors []ConnectorDescriptor
}

// Board is the static game graph. It is immutable after New except for the
// robber, ownership and selection flags on its entities.
type Board struct {
	Cells      []*Cell
	Nodes      []*Node
	Connectors []*Connector
}

// New builds the board graph from a layout: cells first, then nodes (each
// registering with its cells), then connectors (each registering with its
// endpoints; its cell set is the intersection of the endpoints' cells). The
// desert cell starts with the robber. A malformed layout is a construction
// error since the graph cannot be repaired later.
func New(layout Layout) (*Board, error) {
	b := &Board{}

	desert := -1
	for i, cd := range layout.Cells {
		if cd.Terrain.Produces() && cd.Value == 0 {
			return nil, fmt.Errorf("board: cell %d (%s) has no production value", i, cd.Terrain)
		}
		if !cd.Terrain.Produces() && cd.Value != 0 {
			return nil, fmt.Errorf("board: cell %d (%s) must not have a production value", i, cd.Terrain)
		}
		if cd.Terrain == Desert {
			if desert >= 0 {
				return nil, fmt.Errorf("board: more than one desert cell (%d and %d)", desert, i)
			}
			desert = i
		}
		b.Cells = append(b.Cells, &Cell{X: cd.X, Y: cd.Y, Terrain: cd.Terrain, Value: cd.Value})
	}
	if desert < 0 {
		return nil, fmt.Errorf("board: layout has no desert cell for the robber")
	}
	b.Cells[desert].Robber = true

	for i, nd := range layout.Nodes {
		if len(nd.Cells) < 2 || len(nd.Cells) > 3 {
			return nil, fmt.Errorf("board: node %d has %d cells, want 2-3", i, len(nd.Cells))
		}
		node := &Node{}
		for _, ci := range nd.Cells {
			if ci < 0 || ci >= len(b.Cells) {
				return nil, fmt.Errorf("board: node %d references unknown cell %d", i, ci)
			}
			cell := b.Cells[ci]
			node.Cells = append(node.Cells, cell)
			cell.nodes = append(cell.nodes, node)
		}
		b.Nodes = append(b.Nodes, node)
	}

	for i, cd := range layout.Connectors {
		if cd.NodeA < 0 || cd.NodeA >= len(b.Nodes) || cd.NodeB < 0 || cd.NodeB >= len(b.Nodes) {
			return nil, fmt.Errorf("board: connector %d references unknown node", i)
		}
		if cd.NodeA == cd.NodeB {
			return nil, fmt.Errorf("board: connector %d links node %d to itself", i, cd.NodeA)
		}
		a, bNode := b.Nodes[cd.NodeA], b.Nodes[cd.NodeB]
		conn := &Connector{NodeA: a, NodeB: bNode, Cells: commonCells(a, bNode)}
		if len(conn.Cells) < 1 || len(conn.Cells) > 2 {
			return nil, fmt.Errorf("board: connector %d has %d common cells, want 1-2", i, len(conn.Cells))
		}
		a.connectors = append(a.connectors, conn)
		bNode.connectors = append(bNode.connectors, conn)
		a.siblings = append(a.siblings, bNode)
		bNode.siblings = append(bNode.siblings, a)
		b.Connectors = append(b.Connectors, conn)
	}

	return b, nil
}

// Robber returns the cell currently holding the robber.
func (b *Board) Robber() *Cell {
	for _, c := range b.Cells {
		if c.Robber {
			return c
		}
	}
	panic("board: no robber cell")
}

func commonCells(a, b *Node) []*Cell {
	var cells []*Cell
	for _, ca := range a.Cells {
		for _, cb := range b.Cells {
			if ca == cb {
				cells = append(cells, ca)
			}
		}
	}
	return cells
}
