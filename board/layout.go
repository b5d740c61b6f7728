package board

import "sort"

// StandardLayout returns the fixed beginner board: the 19 land cells listed
// in landCells surrounded by a ring of ocean cells, with node and connector
// descriptors derived from cell adjacency in deterministic order.
func StandardLayout() Layout {
	layout := Layout{Cells: append([]CellDescriptor(nil), landCells...)}

	// Ocean ring one step beyond the land hexagon.
	for y := -oceanRadius; y <= oceanRadius; y++ {
		for x := -oceanRadius; x <= oceanRadius; x++ {
			if hexDistance(x, y) != oceanRadius {
				continue
			}
			layout.Cells = append(layout.Cells, CellDescriptor{X: x, Y: y, Terrain: Ocean})
		}
	}

	index := make(map[[2]int]int, len(layout.Cells))
	for i, cd := range layout.Cells {
		index[[2]int{cd.X, cd.Y}] = i
	}

	// A node sits wherever three mutually adjacent cells meet and at least
	// one of them is land. Walking the cells in list order and the six
	// corner direction pairs in order keeps the numbering stable.
	seen := make(map[[3]int]bool)
	for i, cd := range layout.Cells {
		for d := 0; d < 6; d++ {
			d1, d2 := hexDirections[d], hexDirections[(d+1)%6]
			j, ok1 := index[[2]int{cd.X + d1[0], cd.Y + d1[1]}]
			k, ok2 := index[[2]int{cd.X + d2[0], cd.Y + d2[1]}]
			if !ok1 || !ok2 {
				continue
			}
			triple := sortedTriple(i, j, k)
			if seen[triple] {
				continue
			}
			if !layout.Cells[triple[0]].Terrain.Land() &&
				!layout.Cells[triple[1]].Terrain.Land() &&
				!layout.Cells[triple[2]].Terrain.Land() {
				continue
			}
			seen[triple] = true
			layout.Nodes = append(layout.Nodes, NodeDescriptor{Cells: triple[:]})
		}
	}

	// A connector joins the two nodes sharing a pair of adjacent cells.
	pairs := make(map[[2]int][]int)
	for ni, nd := range layout.Nodes {
		for a := 0; a < len(nd.Cells); a++ {
			for b := a + 1; b < len(nd.Cells); b++ {
				key := [2]int{nd.Cells[a], nd.Cells[b]}
				if key[0] > key[1] {
					key[0], key[1] = key[1], key[0]
				}
				pairs[key] = append(pairs[key], ni)
			}
		}
	}
	keys := make([][2]int, 0, len(pairs))
	for key := range pairs {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] {
			return keys[i][0] < keys[j][0]
		}
		return keys[i][1] < keys[j][1]
	})
	for _, key := range keys {
		nodes := pairs[key]
		if len(nodes) != 2 {
			continue // coastline pair with a single corner on land
		}
		layout.Connectors = append(layout.Connectors, ConnectorDescriptor{NodeA: nodes[0], NodeB: nodes[1]})
	}

	return layout
}

const oceanRadius = 3

var hexDirections = [6][2]int{
	{1, 0}, {1, -1}, {0, -1}, {-1, 0}, {-1, 1}, {0, 1},
}

func hexDistance(x, y int) int {
	ax, ay, az := abs(x), abs(y), abs(x+y)
	d := ax
	if ay > d {
		d = ay
	}
	if az > d {
		d = az
	}
	return d
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sortedTriple(a, b, c int) [3]int {
	t := [3]int{a, b, c}
	if t[0] > t[1] {
		t[0], t[1] = t[1], t[0]
	}
	if t[1] > t[2] {
		t[1], t[2] = t[2], t[1]
	}
	if t[0] > t[1] {
		t[0], t[1] = t[1], t[0]
	}
	return t
}

// The fixed beginner arrangement, rows top to bottom in axial coordinates.
var landCells = []CellDescriptor{
	{X: 0, Y: -2, Terrain: Ore, Value: 10},
	{X: 1, Y: -2, Terrain: Sheep, Value: 2},
	{X: 2, Y: -2, Terrain: Wood, Value: 9},
	{X: -1, Y: -1, Terrain: Wheat, Value: 12},
	{X: 0, Y: -1, Terrain: Brick, Value: 6},
	{X: 1, Y: -1, Terrain: Sheep, Value: 4},
	{X: 2, Y: -1, Terrain: Brick, Value: 10},
	{X: -2, Y: 0, Terrain: Wheat, Value: 9},
	{X: -1, Y: 0, Terrain: Wood, Value: 11},
	{X: 0, Y: 0, Terrain: Desert},
	{X: 1, Y: 0, Terrain: Wood, Value: 3},
	{X: 2, Y: 0, Terrain: Ore, Value: 8},
	{X: -2, Y: 1, Terrain: Wood, Value: 8},
	{X: -1, Y: 1, Terrain: Ore, Value: 3},
	{X: 0, Y: 1, Terrain: Wheat, Value: 4},
	{X: 1, Y: 1, Terrain: Sheep, Value: 5},
	{X: -2, Y: 2, Terrain: Brick, Value: 5},
	{X: -1, Y: 2, Terrain: Wheat, Value: 6},
	{X: 0, Y: 2, Terrain: Sheep, Value: 11},
}
