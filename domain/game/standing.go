package game

// Standing is a player's social rank, derived from the previous
// round's finish order. It drives the card exchange and scoring and is
// fully recomputed at the end of every round.
type Standing int

const (
	Unassigned Standing = iota
	President
	VicePresident
	Neutral
	ViceScum
	Scum
)

// String returns the display label for the standing.
func (s Standing) String() string {
	switch s {
	case President:
		return "President"
	case VicePresident:
		return "Vice-President"
	case Neutral:
		return "Neutral"
	case ViceScum:
		return "Vice-Scum"
	case Scum:
		return "Scum"
	default:
		return "Unassigned"
	}
}
