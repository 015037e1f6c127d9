package game

import (
	"fmt"

	"president/domain/card"
)

// Trick runs one cycle of plays until only the highest play stands
// unchallenged. It is created with the players holding cards at trick
// start and discarded once the winner is known.
type Trick struct {
	Plays   []Play
	Current *Play
	Active  []*Player
}

// NewTrick starts a trick among the given players. Every participant's
// pass flag is cleared so no state leaks from the previous trick.
func NewTrick(players []*Player) *Trick {
	active := make([]*Player, len(players))
	copy(active, players)
	for _, p := range active {
		p.HasPassed = false
	}
	return &Trick{Active: active}
}

// CanPlay reports whether player may legally play cards right now:
// not passed, part of this trick, a same-rank set held in hand, and
// beating the current play if one exists.
func (t *Trick) CanPlay(player *Player, cards []card.Card) bool {
	if player.HasPassed || !t.isActive(player) {
		return false
	}
	play, err := NewPlay(cards, player)
	if err != nil {
		return false
	}
	for _, c := range cards {
		held := false
		for _, h := range player.Hand {
			if h == c {
				held = true
				break
			}
		}
		if !held {
			return false
		}
	}
	if t.Current == nil {
		return true
	}
	return play.Beats(*t.Current)
}

// AddPlay appends a play to the trick and makes it the play to beat.
// Callers are expected to have checked CanPlay; this re-validates the
// beat relation anyway.
func (t *Trick) AddPlay(play Play) error {
	if t.Current != nil && !play.Beats(*t.Current) {
		return fmt.Errorf("%w: %s", ErrPlayDoesNotBeat, play)
	}
	t.Plays = append(t.Plays, play)
	t.Current = &t.Plays[len(t.Plays)-1]
	return nil
}

// Pass marks the player as out of this trick.
func (t *Trick) Pass(player *Player) error {
	if !t.isActive(player) {
		return fmt.Errorf("%w: %s", ErrPlayerNotActive, player.Name)
	}
	player.HasPassed = true
	return nil
}

// IsComplete reports whether the trick is over: at least one play has
// been made and at most one participant has not passed.
func (t *Trick) IsComplete() bool {
	if t.Current == nil {
		return false
	}
	return t.remaining() <= 1
}

// Winner returns the player holding the highest play once the trick is
// complete, or nil before that.
func (t *Trick) Winner() *Player {
	if !t.IsComplete() || t.Current == nil {
		return nil
	}
	return t.Current.Player
}

func (t *Trick) remaining() int {
	n := 0
	for _, p := range t.Active {
		if !p.HasPassed {
			n++
		}
	}
	return n
}

func (t *Trick) isActive(player *Player) bool {
	for _, p := range t.Active {
		if p == player {
			return true
		}
	}
	return false
}
