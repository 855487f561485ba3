package persistent

// State classifies a two-chain queue by which of its chains hold values.
type State uint8

// A queue is always in exactly one of these states.
const (
	Empty        State = iota // both chains empty
	FrontOnly                 // only the front chain holds values
	BackOnly                  // only the back chain holds values
	BothNonEmpty              // both chains hold values
)

// StateOf classifies a queue from the emptiness of its front and back chain.
func StateOf(frontEmpty, backEmpty bool) State {
	switch {
	case frontEmpty && backEmpty:
		return Empty
	case backEmpty:
		return FrontOnly
	case frontEmpty:
		return BackOnly
	}
	return BothNonEmpty
}

func (s State) String() string {
	switch s {
	case Empty:
		return "EMPTY"
	case FrontOnly:
		return "FRONT-ONLY"
	case BackOnly:
		return "BACK-ONLY"
	case BothNonEmpty:
		return "BOTH-NONEMPTY"
	}
	return "<unknown state>"
}
