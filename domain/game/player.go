package game

import (
	"fmt"
	"sort"

	"president/domain/card"
)

// Player holds one seat's state: the hand, the running score, the
// social standing from the previous round and the per-trick pass flag.
type Player struct {
	Name      string
	Hand      []card.Card
	Score     int
	Standing  Standing
	HasPassed bool
}

// NewPlayer returns a player with an empty hand and no standing.
func NewPlayer(name string) *Player {
	return &Player{Name: name}
}

// AddCards appends cards to the hand.
func (p *Player) AddCards(cards []card.Card) {
	p.Hand = append(p.Hand, cards...)
}

// RemoveCards takes the given cards out of the hand. Every card must be
// present; ErrCardNotInHand signals a desynchronization between the
// decision source and the hand and is fatal to the current game.
func (p *Player) RemoveCards(cards []card.Card) error {
	for _, c := range cards {
		found := -1
		for i, h := range p.Hand {
			if h == c {
				found = i
				break
			}
		}
		if found == -1 {
			return fmt.Errorf("%w: %s", ErrCardNotInHand, c)
		}
		p.Hand = append(p.Hand[:found], p.Hand[found+1:]...)
	}
	return nil
}

// SortHand orders the hand ascending by value. A lone 3♠ (no other 3
// held) moves to the end: it is the strongest single in the game, and
// the tail position keeps ChooseCardsToGive treating it as such.
func (p *Player) SortHand() {
	sort.SliceStable(p.Hand, func(i, j int) bool {
		return p.Hand[i].Value() < p.Hand[j].Value()
	})
	threes := 0
	for _, c := range p.Hand {
		if c.Rank == card.Three {
			threes++
		}
	}
	if threes == 1 && len(p.Hand) > 0 && p.Hand[0].IsThreeOfSpades() {
		lone := p.Hand[0]
		p.Hand = append(p.Hand[1:], lone)
	}
}

// HasCard reports whether the player holds the exact card.
func (p *Player) HasCard(suit card.Suit, rank card.Rank) bool {
	for _, c := range p.Hand {
		if c.Suit == suit && c.Rank == rank {
			return true
		}
	}
	return false
}

// HasThreeOfClubs reports whether the player holds the 3♣, which marks
// the opening leader of a round.
func (p *Player) HasThreeOfClubs() bool {
	return p.HasCard(card.Clubs, card.Three)
}

// ValidPlays enumerates the playable card sets against the current
// play, or every leadable set when current is nil. One candidate is
// emitted per rank and size; suits never discriminate a legal play.
// An empty result means the player must pass.
func (p *Player) ValidPlays(current *Play) [][]card.Card {
	if current == nil {
		return p.leadPlays()
	}
	return p.beatingPlays(current)
}

func (p *Player) leadPlays() [][]card.Card {
	groups := p.rankGroups()
	var plays [][]card.Card
	for r := card.Three; r <= card.Two; r++ {
		cards := groups[r]
		if len(cards) == 0 {
			continue
		}
		plays = append(plays, cards[:1])
		if len(cards) >= 2 {
			plays = append(plays, cards[:2])
		}
		if len(cards) >= 3 {
			plays = append(plays, cards[:3])
		}
		if len(cards) == 4 {
			plays = append(plays, cards[:4])
		}
	}
	return plays
}

func (p *Player) beatingPlays(current *Play) [][]card.Card {
	need := len(current.Cards)

	if need == 1 {
		// Nothing beats a lone 3♠.
		if current.Cards[0].IsThreeOfSpades() {
			return nil
		}
		// A held 3♠ is the unique winning answer to any single.
		for _, c := range p.Hand {
			if c.IsThreeOfSpades() {
				return [][]card.Card{{c}}
			}
		}
	}

	groups := p.rankGroups()
	var plays [][]card.Card
	for r := card.Three; r <= card.Two; r++ {
		cards := groups[r]
		if int(r) > current.Value() && len(cards) >= need {
			plays = append(plays, cards[:need])
		}
	}
	return plays
}

func (p *Player) rankGroups() map[card.Rank][]card.Card {
	groups := make(map[card.Rank][]card.Card)
	for _, c := range p.Hand {
		groups[c.Rank] = append(groups[c.Rank], c)
	}
	return groups
}

// ChooseCardsToGive returns the num strongest cards under the hand
// sorting policy, for the mandatory surrender side of the exchange.
func (p *Player) ChooseCardsToGive(num int) ([]card.Card, error) {
	if num > len(p.Hand) {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrInsufficientCards, num, len(p.Hand))
	}
	p.SortHand()
	strongest := make([]card.Card, num)
	copy(strongest, p.Hand[len(p.Hand)-num:])
	return strongest, nil
}

// HandEmpty reports whether the player is out of cards.
func (p *Player) HandEmpty() bool {
	return len(p.Hand) == 0
}

func (p *Player) String() string {
	return fmt.Sprintf("%s (%d cards)", p.Name, len(p.Hand))
}
