package card

import (
	"errors"
	"math/rand"
)

// ErrInvalidPlayerCount is returned when dealing to fewer than 3 or
// more than 8 players.
var ErrInvalidPlayerCount = errors.New("player count must be between 3 and 8")

const (
	// MinPlayers is the smallest supported table size.
	MinPlayers = 3
	// MaxPlayers is the largest supported table size.
	MaxPlayers = 8
	// DeckSize is the number of cards in a full deck.
	DeckSize = 52
)

// Deck holds the 52 cards in their current order.
type Deck struct {
	Cards []Card
}

// NewDeck returns a full deck in canonical order: suit-major, rank-minor.
func NewDeck() Deck {
	cards := make([]Card, 0, DeckSize)
	for s := Clubs; s <= Spades; s++ {
		for r := Three; r <= Two; r++ {
			cards = append(cards, Card{Suit: s, Rank: r})
		}
	}
	return Deck{Cards: cards}
}

// Shuffle permutes the deck in place. Uniformity matters here,
// cryptographic strength does not.
func (d *Deck) Shuffle() {
	rand.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Deal splits the deck round-robin: card i goes to hand i mod n, so
// hand sizes never differ by more than one card. The deck order is
// left untouched.
func (d Deck) Deal(numPlayers int) ([][]Card, error) {
	if numPlayers < MinPlayers || numPlayers > MaxPlayers {
		return nil, ErrInvalidPlayerCount
	}
	hands := make([][]Card, numPlayers)
	for i, c := range d.Cards {
		p := i % numPlayers
		hands[p] = append(hands[p], c)
	}
	return hands, nil
}
