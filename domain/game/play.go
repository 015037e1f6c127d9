package game

import (
	"fmt"
	"strings"

	"president/domain/card"
)

// Play is one turn's contribution to a trick: 1-4 cards of a single
// rank, tagged with the player who made it.
type Play struct {
	Cards  []card.Card
	Player *Player
	Rank   card.Rank
}

// NewPlay validates the card set and builds a Play.
func NewPlay(cards []card.Card, player *Player) (Play, error) {
	if len(cards) == 0 {
		return Play{}, ErrEmptyPlay
	}
	rank := cards[0].Rank
	for _, c := range cards[1:] {
		if c.Rank != rank {
			return Play{}, ErrMixedRanks
		}
	}
	return Play{Cards: cards, Player: player, Rank: rank}, nil
}

// Value returns the comparison value of the play's rank.
func (p Play) Value() int {
	return int(p.Rank)
}

// Beats reports whether this play beats other. Counts must match: a
// pair of twos never beats a single three. A lone 3♠ beats any single
// and is beaten by none.
func (p Play) Beats(other Play) bool {
	if len(p.Cards) != len(other.Cards) {
		return false
	}
	if len(p.Cards) == 1 && p.Cards[0].IsThreeOfSpades() {
		return true
	}
	if len(other.Cards) == 1 && other.Cards[0].IsThreeOfSpades() {
		return false
	}
	return p.Value() > other.Value()
}

func (p Play) String() string {
	labels := make([]string, len(p.Cards))
	for i, c := range p.Cards {
		labels[i] = c.String()
	}
	return fmt.Sprintf("%s plays %s", p.Player.Name, strings.Join(labels, ", "))
}
