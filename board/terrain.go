package board

// Terrain is the tile type of a cell. The first five values double as the
// resource card types handed out when a cell produces.
type Terrain int

const (
	Wood Terrain = iota
	Brick
	Wheat
	Sheep
	Ore
	Desert
	Ocean
)

func (t Terrain) String() string {
	switch t {
	case Wood:
		return "wood"
	case Brick:
		return "brick"
	case Wheat:
		return "wheat"
	case Sheep:
		return "sheep"
	case Ore:
		return "ore"
	case Desert:
		return "desert"
	case Ocean:
		return "ocean"
	default:
		return "unknown"
	}
}

// Produces reports whether the terrain yields resource cards.
func (t Terrain) Produces() bool {
	return t <= Ore
}

// Land reports whether the robber can sit on the terrain.
func (t Terrain) Land() bool {
	return t != Ocean
}

// Resources lists every card-producing terrain.
var Resources = []Terrain{Wood, Brick, Wheat, Sheep, Ore}
