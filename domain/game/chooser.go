package game

import "president/domain/card"

// PlayChooser supplies one trick decision: return one of the valid
// card sets to play it, or nil to pass. The engine blocks on the call,
// so interactive implementations may prompt freely.
type PlayChooser interface {
	ChoosePlay(player *Player, valid [][]card.Card, current *Play) ([]card.Card, error)
}

// GiveBackChooser picks the cards the President or Vice-President
// returns to their counterpart during the exchange. The surrendering
// side (Scum, Vice-Scum) is never given a choice.
type GiveBackChooser interface {
	ChooseGiveBack(player *Player, num int, counterpart string) ([]card.Card, error)
}

// AutoChooser plays the first valid set and passes otherwise. It keeps
// the engine runnable without any interactive layer.
type AutoChooser struct{}

// ChoosePlay returns the first valid play, or nil when none exists.
func (AutoChooser) ChoosePlay(_ *Player, valid [][]card.Card, _ *Play) ([]card.Card, error) {
	if len(valid) == 0 {
		return nil, nil
	}
	return valid[0], nil
}

// AutoGiveBack returns the num weakest cards under the hand sorting
// policy. It is the default exchange behavior.
type AutoGiveBack struct{}

// ChooseGiveBack picks the weakest cards from the sorted hand.
func (AutoGiveBack) ChooseGiveBack(player *Player, num int, _ string) ([]card.Card, error) {
	if num > len(player.Hand) {
		return nil, ErrInsufficientCards
	}
	player.SortHand()
	weakest := make([]card.Card, num)
	copy(weakest, player.Hand[:num])
	return weakest, nil
}
