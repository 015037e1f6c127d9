package card

import "fmt"

// Suit identifies one of the four french suits.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Symbol returns the unicode glyph for the suit.
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Rank is a card rank encoded by its comparison value: Three is the
// lowest (0) and Two the highest (12). Comparisons must always go
// through the value, never through any other ordering.
type Rank int

const (
	Three Rank = iota
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
	Two
)

// Label returns the face label of the rank ("3".."10", "J", "Q", "K", "A", "2").
func (r Rank) Label() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	case Two:
		return "2"
	default:
		return fmt.Sprintf("%d", int(r)+3)
	}
}

// Card is an immutable playing card. Two cards are equal iff both suit
// and rank match, so Card works directly as a map key.
type Card struct {
	Suit Suit
	Rank Rank
}

// Value returns the comparison value of the card (0-12, higher wins).
func (c Card) Value() int {
	return int(c.Rank)
}

// IsThreeOfSpades reports whether this is the 3♠, the one card that
// beats any other single.
func (c Card) IsThreeOfSpades() bool {
	return c.Suit == Spades && c.Rank == Three
}

// String renders the card like "3♣" or "A♠".
func (c Card) String() string {
	return c.Rank.Label() + c.Suit.Symbol()
}
