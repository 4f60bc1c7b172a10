package entity

// Mark is the token a player places in a cell.
type Mark string

const (
	NoMark Mark = ""
	Circle Mark = "circle"
	Cross  Mark = "cross"
)

// Opposite returns the mark of the other player.
func (that Mark) Opposite() Mark {
	switch that {
	case Circle:
		return Cross
	case Cross:
		return Circle
	default:
		return NoMark
	}
}

func (that Mark) IsValid() bool {
	return that == Circle || that == Cross
}

func (that Mark) String() string {
	switch that {
	case Circle:
		return "Circle"
	case Cross:
		return "Cross"
	default:
		return "-"
	}
}
