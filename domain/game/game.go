package game

import (
	"fmt"
	"sort"

	"president/domain/card"
)

// maxTrickSweeps bounds the turn rotation of one trick. A trick always
// terminates well before this; hitting the cap means a rules bug.
const maxTrickSweeps = 100

// Game owns the roster and drives rounds. Round state (finish order,
// hands) is reset by SetupRound; scores and standings persist across
// rounds.
type Game struct {
	Players      []*Player
	TotalRounds  int
	CurrentRound int
	Finished     []*Player

	// GiveBack decides the President's and Vice-President's exchange
	// give-backs. Nil means the automatic weakest-cards policy.
	GiveBack GiveBackChooser
}

// NewGame builds a game for 3-8 named players over at least one round.
func NewGame(playerNames []string, totalRounds int) (*Game, error) {
	if len(playerNames) < card.MinPlayers || len(playerNames) > card.MaxPlayers {
		return nil, card.ErrInvalidPlayerCount
	}
	if totalRounds < 1 {
		return nil, ErrInvalidRoundCount
	}
	players := make([]*Player, len(playerNames))
	for i, name := range playerNames {
		players[i] = NewPlayer(name)
	}
	return &Game{Players: players, TotalRounds: totalRounds}, nil
}

// SetupRound resets hands and pass flags, deals a fresh shuffled deck
// round-robin, sorts every hand, and past the first round runs the
// card exchange driven by the previous round's standings. It returns
// the exchanges performed so the caller can announce them.
func (g *Game) SetupRound() ([]Exchange, error) {
	for _, p := range g.Players {
		p.Hand = nil
		p.HasPassed = false
	}

	deck := card.NewDeck()
	deck.Shuffle()
	hands, err := deck.Deal(len(g.Players))
	if err != nil {
		return nil, err
	}
	for i, p := range g.Players {
		p.AddCards(hands[i])
		p.SortHand()
	}

	var exchanges []Exchange
	if g.CurrentRound > 1 {
		exchanges, err = g.exchangeCards()
		if err != nil {
			return exchanges, err
		}
	}

	g.Finished = nil
	return exchanges, nil
}

// FindStartingLeader returns the holder of the 3♣, who opens the
// round. With a full deal this always exists.
func (g *Game) FindStartingLeader() (*Player, error) {
	for _, p := range g.Players {
		if p.HasThreeOfClubs() {
			return p, nil
		}
	}
	return nil, ErrNoLeaderFound
}

// ActivePlayers returns the players still holding cards, in roster
// order.
func (g *Game) ActivePlayers() []*Player {
	var active []*Player
	for _, p := range g.Players {
		if !p.HandEmpty() {
			active = append(active, p)
		}
	}
	return active
}

// PlayTrick runs one trick to completion, asking chooser for every
// decision. Players emptying their hand are appended to the finish
// order as they go out. Returns the trick winner, who leads next, or
// nil when the trick produced no play.
func (g *Game) PlayTrick(leader *Player, chooser PlayChooser) (*Player, error) {
	active := g.ActivePlayers()
	if len(active) == 0 {
		return nil, nil
	}
	order := rotateToLeader(active, leader)
	trick := NewTrick(active)
	for sweep := 0; sweep < maxTrickSweeps && !trick.IsComplete(); sweep++ {
		for _, p := range order {
			if trick.IsComplete() {
				break
			}
			if p.HasPassed || p.HandEmpty() {
				continue
			}

			valid := p.ValidPlays(trick.Current)
			cards, err := chooser.ChoosePlay(p, valid, trick.Current)
			if err != nil {
				return nil, fmt.Errorf("choosing play for %s: %w", p.Name, err)
			}
			if len(cards) == 0 || !trick.CanPlay(p, cards) {
				if err := trick.Pass(p); err != nil {
					return nil, err
				}
				continue
			}

			play, err := NewPlay(cards, p)
			if err != nil {
				return nil, err
			}
			if err := trick.AddPlay(play); err != nil {
				return nil, err
			}
			if err := p.RemoveCards(cards); err != nil {
				return nil, err
			}
			if p.HandEmpty() {
				g.MarkFinished(p)
			}
		}
	}

	return trick.Winner(), nil
}

// MarkFinished appends p to the finish order, skipping duplicates.
func (g *Game) MarkFinished(p *Player) {
	for _, f := range g.Finished {
		if f == p {
			return
		}
	}
	g.Finished = append(g.Finished, p)
}

// BeginRound advances to the next round and sets it up, returning the
// exchanges performed.
func (g *Game) BeginRound() ([]Exchange, error) {
	g.CurrentRound++
	return g.SetupRound()
}

// FinishRound closes the current round: the last player still holding
// cards is appended to the finish order, then standings and scores are
// applied. Callers drive tricks between BeginRound and FinishRound.
func (g *Game) FinishRound() {
	if remaining := g.ActivePlayers(); len(remaining) == 1 {
		g.MarkFinished(remaining[0])
	}
	g.AssignRanks()
	g.CalculateScores(g.CurrentRound == g.TotalRounds)
}

// PlayRound plays one full round: setup, tricks until a single player
// holds cards, then standings and scores.
func (g *Game) PlayRound(chooser PlayChooser) error {
	if _, err := g.BeginRound(); err != nil {
		return err
	}

	leader, err := g.FindStartingLeader()
	if err != nil {
		return err
	}
	for len(g.ActivePlayers()) > 1 {
		winner, err := g.PlayTrick(leader, chooser)
		if err != nil {
			return err
		}
		if winner != nil {
			leader = winner
		}
	}
	g.FinishRound()
	return nil
}

// Play runs every round and returns the game winner, or nil on a tie.
func (g *Game) Play(chooser PlayChooser) (*Player, error) {
	for g.CurrentRound < g.TotalRounds {
		if err := g.PlayRound(chooser); err != nil {
			return nil, err
		}
	}
	return g.Winner(), nil
}

// AssignRanks recomputes every standing from the finish order: first
// finisher President, last Scum, and with 4 or more players the second
// and second-to-last become Vice-President and Vice-Scum. A no-op
// while fewer than two players have finished.
func (g *Game) AssignRanks() {
	if len(g.Finished) < 2 {
		return
	}
	for _, p := range g.Players {
		p.Standing = Neutral
	}
	g.Finished[0].Standing = President
	g.Finished[len(g.Finished)-1].Standing = Scum
	if len(g.Players) >= 4 {
		g.Finished[1].Standing = VicePresident
		g.Finished[len(g.Finished)-2].Standing = ViceScum
	}
}

// CalculateScores awards the round's President 1 point, or
// max(2, totalRounds-2) on the final round. Nobody else scores.
func (g *Game) CalculateScores(isFinalRound bool) {
	if len(g.Finished) == 0 {
		return
	}
	president := g.Finished[0]
	if isFinalRound {
		bonus := g.TotalRounds - 2
		if bonus < 2 {
			bonus = 2
		}
		president.Score += bonus
	} else {
		president.Score++
	}
}

// Winner returns the unique player with the highest score, or nil when
// the maximum is tied. Callers needing a non-nil result must break the
// tie themselves.
func (g *Game) Winner() *Player {
	if len(g.Players) == 0 {
		return nil
	}
	best := g.Players[0]
	tied := false
	for _, p := range g.Players[1:] {
		if p.Score > best.Score {
			best = p
			tied = false
		} else if p.Score == best.Score {
			tied = true
		}
	}
	if tied {
		return nil
	}
	return best
}

// Scores returns the roster sorted by score, highest first. The order
// among equal scores follows the roster.
func (g *Game) Scores() []*Player {
	sorted := make([]*Player, len(g.Players))
	copy(sorted, g.Players)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	return sorted
}

// rotateToLeader reorders players to start at leader, falling back to
// the first player when leader is absent (already out of cards).
func rotateToLeader(players []*Player, leader *Player) []*Player {
	start := 0
	for i, p := range players {
		if p == leader {
			start = i
			break
		}
	}
	order := make([]*Player, 0, len(players))
	for i := range players {
		order = append(order, players[(start+i)%len(players)])
	}
	return order
}
