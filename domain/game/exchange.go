package game

import (
	"fmt"

	"president/domain/card"
)

// Exchange records one completed card transfer so the caller can
// announce it.
type Exchange struct {
	From     *Player
	To       *Player
	Given    []card.Card // strongest cards surrendered by From
	Returned []card.Card // cards To sent back
}

// exchangeCards runs the rank-based exchange after dealing: the Scum
// surrenders its 2 strongest cards to the President who returns any 2,
// and likewise Vice-Scum and Vice-President with 1 card. Each exchange
// only fires when both sides exist and hold enough cards, so hand
// sizes are unchanged by construction.
func (g *Game) exchangeCards() ([]Exchange, error) {
	var president, vicePresident, viceScum, scum *Player
	for _, p := range g.Players {
		switch p.Standing {
		case President:
			president = p
		case VicePresident:
			vicePresident = p
		case ViceScum:
			viceScum = p
		case Scum:
			scum = p
		}
	}

	var exchanges []Exchange
	if president != nil && scum != nil && len(scum.Hand) >= 2 && len(president.Hand) >= 2 {
		ex, err := g.exchangePair(scum, president, 2)
		if err != nil {
			return exchanges, err
		}
		exchanges = append(exchanges, ex)
	}
	if vicePresident != nil && viceScum != nil && len(viceScum.Hand) >= 1 && len(vicePresident.Hand) >= 1 {
		ex, err := g.exchangePair(viceScum, vicePresident, 1)
		if err != nil {
			return exchanges, err
		}
		exchanges = append(exchanges, ex)
	}
	return exchanges, nil
}

func (g *Game) exchangePair(low, high *Player, num int) (Exchange, error) {
	given, err := low.ChooseCardsToGive(num)
	if err != nil {
		return Exchange{}, fmt.Errorf("exchange %s -> %s: %w", low.Name, high.Name, err)
	}
	if err := low.RemoveCards(given); err != nil {
		return Exchange{}, err
	}
	high.AddCards(given)

	chooser := g.GiveBack
	if chooser == nil {
		chooser = AutoGiveBack{}
	}
	returned, err := chooser.ChooseGiveBack(high, num, low.Name)
	if err != nil {
		return Exchange{}, fmt.Errorf("exchange %s -> %s: %w", high.Name, low.Name, err)
	}
	if err := high.RemoveCards(returned); err != nil {
		return Exchange{}, err
	}
	low.AddCards(returned)
	low.SortHand()
	high.SortHand()

	return Exchange{From: low, To: high, Given: given, Returned: returned}, nil
}
