package game

// Step is the game phase. Exactly one step is active at a time and it
// determines which entities are legally selectable.
type Step int

const (
	StepSetupVillage Step = iota
	StepSetupRoad
	StepTurn
	StepRobberDiscard
	StepRobberPlace
)

func (s Step) String() string {
	switch s {
	case StepSetupVillage:
		return "setup_village"
	case StepSetupRoad:
		return "setup_road"
	case StepTurn:
		return "turn"
	case StepRobberDiscard:
		return "robber_discard"
	case StepRobberPlace:
		return "robber_place"
	default:
		return "unknown"
	}
}

// Action names what the primary control invokes when clicked. The control's
// label and enabled state are a pure function of this value.
type Action int

const (
	ActionSetupVillage Action = iota
	ActionSetupRoad
	ActionRollDice
	ActionNextTurn
	ActionRobberSelect
	ActionRobberDiscard
	ActionRobberPlace
)

func (a Action) String() string {
	switch a {
	case ActionSetupVillage:
		return "setup_village"
	case ActionSetupRoad:
		return "setup_road"
	case ActionRollDice:
		return "roll_dice"
	case ActionNextTurn:
		return "next_turn"
	case ActionRobberSelect:
		return "robber_select"
	case ActionRobberDiscard:
		return "robber_discard"
	case ActionRobberPlace:
		return "robber_place"
	default:
		return "unknown"
	}
}

// setupOrder maps player count to the snake-draft offsets from the first
// player, indexed by setup turn. Each player places twice, once ascending and
// once descending.
var setupOrder = map[int][]int{
	2: {0, 1, 1, 0},
	3: {0, 1, 2, 2, 1, 0},
	4: {0, 1, 2, 3, 3, 2, 1, 0},
	5: {0, 1, 2, 3, 4, 4, 3, 2, 1, 0},
	6: {0, 1, 2, 3, 4, 5, 5, 4, 3, 2, 1, 0},
}
