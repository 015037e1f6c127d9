package game

import (
	"errors"
	"testing"

	"president/domain/card"
)

func TestSortHandAscending(t *testing.T) {
	p := NewPlayer("Alice")
	p.Hand = []card.Card{
		{Suit: card.Hearts, Rank: card.Two},
		{Suit: card.Clubs, Rank: card.Five},
		{Suit: card.Spades, Rank: card.Jack},
		{Suit: card.Diamonds, Rank: card.Four},
	}
	p.SortHand()
	want := []card.Rank{card.Four, card.Five, card.Jack, card.Two}
	for i, r := range want {
		if p.Hand[i].Rank != r {
			t.Fatalf("position %d: expected %v, got %v", i, r, p.Hand[i].Rank)
		}
	}
}

func TestSortHandLoneThreeOfSpadesMovesToEnd(t *testing.T) {
	p := NewPlayer("Alice")
	p.Hand = []card.Card{
		{Suit: card.Spades, Rank: card.Three},
		{Suit: card.Hearts, Rank: card.King},
		{Suit: card.Clubs, Rank: card.Seven},
	}
	p.SortHand()
	last := p.Hand[len(p.Hand)-1]
	if !last.IsThreeOfSpades() {
		t.Errorf("expected lone 3♠ at the end, hand ends with %s", last)
	}
}

func TestSortHandMultipleThreesStaySorted(t *testing.T) {
	p := NewPlayer("Alice")
	p.Hand = []card.Card{
		{Suit: card.Spades, Rank: card.Three},
		{Suit: card.Hearts, Rank: card.Three},
		{Suit: card.Clubs, Rank: card.King},
	}
	p.SortHand()
	if p.Hand[len(p.Hand)-1].Rank == card.Three {
		t.Error("3♠ must stay in sorted position when another 3 is held")
	}
}

func TestHasThreeOfClubs(t *testing.T) {
	p := NewPlayer("Alice")
	p.Hand = []card.Card{{Suit: card.Clubs, Rank: card.Three}}
	if !p.HasThreeOfClubs() {
		t.Error("3♣ not found")
	}
	p.Hand = []card.Card{{Suit: card.Spades, Rank: card.Three}}
	if p.HasThreeOfClubs() {
		t.Error("3♠ must not count as 3♣")
	}
}

func TestRemoveCards(t *testing.T) {
	p := NewPlayer("Alice")
	five := card.Card{Suit: card.Hearts, Rank: card.Five}
	king := card.Card{Suit: card.Clubs, Rank: card.King}
	p.Hand = []card.Card{five, king}
	if err := p.RemoveCards([]card.Card{five}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Hand) != 1 || p.Hand[0] != king {
		t.Errorf("expected only %s to remain, hand is %v", king, p.Hand)
	}
}

func TestRemoveCardsNotInHand(t *testing.T) {
	p := NewPlayer("Alice")
	p.Hand = []card.Card{{Suit: card.Hearts, Rank: card.Five}}
	missing := card.Card{Suit: card.Spades, Rank: card.Ace}
	if err := p.RemoveCards([]card.Card{missing}); !errors.Is(err, ErrCardNotInHand) {
		t.Fatalf("expected ErrCardNotInHand, got %v", err)
	}
}

func TestValidPlaysLeading(t *testing.T) {
	p := NewPlayer("Alice")
	p.Hand = []card.Card{
		{Suit: card.Hearts, Rank: card.Five},
		{Suit: card.Clubs, Rank: card.Five},
		{Suit: card.Spades, Rank: card.Nine},
	}
	plays := p.ValidPlays(nil)
	// One single per rank plus the pair of fives.
	if len(plays) != 3 {
		t.Fatalf("expected 3 plays, got %d: %v", len(plays), plays)
	}
	sizes := map[card.Rank][]int{}
	for _, play := range plays {
		sizes[play[0].Rank] = append(sizes[play[0].Rank], len(play))
	}
	if got := sizes[card.Five]; len(got) != 2 {
		t.Errorf("expected single and pair of 5s, got sizes %v", got)
	}
	if got := sizes[card.Nine]; len(got) != 1 || got[0] != 1 {
		t.Errorf("expected only a single 9, got sizes %v", got)
	}
}

func TestValidPlaysLeadingOneSinglePerRank(t *testing.T) {
	p := NewPlayer("Alice")
	p.Hand = []card.Card{
		{Suit: card.Hearts, Rank: card.Five},
		{Suit: card.Clubs, Rank: card.Five},
	}
	plays := p.ValidPlays(nil)
	singles := 0
	for _, play := range plays {
		if len(play) == 1 {
			singles++
		}
	}
	if singles != 1 {
		t.Errorf("expected exactly one single for the rank, got %d", singles)
	}
}

func TestValidPlaysMustBeatSingle(t *testing.T) {
	opponent := NewPlayer("Bob")
	current := mustPlay(t, opponent, card.Card{Suit: card.Hearts, Rank: card.Nine})

	p := NewPlayer("Alice")
	p.Hand = []card.Card{
		{Suit: card.Clubs, Rank: card.Five},
		{Suit: card.Spades, Rank: card.Jack},
		{Suit: card.Diamonds, Rank: card.Two},
	}
	plays := p.ValidPlays(&current)
	if len(plays) != 2 {
		t.Fatalf("expected 2 beating plays, got %d", len(plays))
	}
	for _, play := range plays {
		if play[0].Value() <= current.Value() {
			t.Errorf("play %v does not beat a 9", play)
		}
	}
}

func TestValidPlaysThreeOfSpadesAgainstHighestSingle(t *testing.T) {
	opponent := NewPlayer("Bob")
	current := mustPlay(t, opponent, card.Card{Suit: card.Hearts, Rank: card.Two})

	p := NewPlayer("Alice")
	p.Hand = []card.Card{
		{Suit: card.Spades, Rank: card.Three},
		{Suit: card.Clubs, Rank: card.Seven},
	}
	plays := p.ValidPlays(&current)
	if len(plays) != 1 {
		t.Fatalf("expected exactly one play, got %d", len(plays))
	}
	if len(plays[0]) != 1 || !plays[0][0].IsThreeOfSpades() {
		t.Errorf("expected [3♠], got %v", plays[0])
	}
}

func TestValidPlaysNothingBeatsLoneThreeOfSpades(t *testing.T) {
	opponent := NewPlayer("Bob")
	current := mustPlay(t, opponent, card.Card{Suit: card.Spades, Rank: card.Three})

	p := NewPlayer("Alice")
	p.Hand = []card.Card{
		{Suit: card.Hearts, Rank: card.Two},
		{Suit: card.Clubs, Rank: card.Ace},
	}
	if plays := p.ValidPlays(&current); len(plays) != 0 {
		t.Errorf("expected no responses to a lone 3♠, got %v", plays)
	}
}

func TestValidPlaysAgainstPairOfQueens(t *testing.T) {
	opponent := NewPlayer("Bob")
	current := mustPlay(t, opponent,
		card.Card{Suit: card.Hearts, Rank: card.Queen},
		card.Card{Suit: card.Clubs, Rank: card.Queen},
	)

	p := NewPlayer("Alice")
	p.Hand = []card.Card{
		{Suit: card.Hearts, Rank: card.King},
		{Suit: card.Clubs, Rank: card.King},
		{Suit: card.Spades, Rank: card.Ace},
		{Suit: card.Diamonds, Rank: card.Ace},
	}
	plays := p.ValidPlays(&current)
	if len(plays) != 2 {
		t.Fatalf("expected pair of kings and pair of aces, got %d plays", len(plays))
	}
	if plays[0][0].Rank != card.King || plays[1][0].Rank != card.Ace {
		t.Errorf("expected King then Ace pairs, got %v", plays)
	}

	singlesOnly := NewPlayer("Carol")
	singlesOnly.Hand = []card.Card{
		{Suit: card.Hearts, Rank: card.Ace},
		{Suit: card.Clubs, Rank: card.Two},
	}
	if plays := singlesOnly.ValidPlays(&current); len(plays) != 0 {
		t.Errorf("singles cannot answer a pair, got %v", plays)
	}
}

func TestChooseCardsToGiveStrongest(t *testing.T) {
	p := NewPlayer("Alice")
	p.Hand = []card.Card{
		{Suit: card.Hearts, Rank: card.Four},
		{Suit: card.Clubs, Rank: card.Two},
		{Suit: card.Spades, Rank: card.King},
		{Suit: card.Diamonds, Rank: card.Seven},
	}
	cards, err := p.ChooseCardsToGive(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}
	if cards[0].Rank != card.King || cards[1].Rank != card.Two {
		t.Errorf("expected the K and the 2, got %v", cards)
	}
}

func TestChooseCardsToGiveLoneThreeOfSpadesIsStrongest(t *testing.T) {
	p := NewPlayer("Alice")
	p.Hand = []card.Card{
		{Suit: card.Spades, Rank: card.Three},
		{Suit: card.Hearts, Rank: card.King},
	}
	cards, err := p.ChooseCardsToGive(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cards[0].IsThreeOfSpades() {
		t.Errorf("expected the lone 3♠ to count as strongest, got %s", cards[0])
	}
}

func TestChooseCardsToGiveInsufficient(t *testing.T) {
	p := NewPlayer("Alice")
	p.Hand = []card.Card{{Suit: card.Hearts, Rank: card.Four}}
	if _, err := p.ChooseCardsToGive(2); !errors.Is(err, ErrInsufficientCards) {
		t.Fatalf("expected ErrInsufficientCards, got %v", err)
	}
}
