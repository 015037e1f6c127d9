package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"president/domain/card"
	"president/domain/game"
)

// colorCard renders a card with red or black suit coloring.
func colorCard(c card.Card) string {
	if c.Suit == card.Hearts || c.Suit == card.Diamonds {
		return pterm.LightRed(c.String())
	}
	return pterm.White(c.String())
}

func colorCards(cards []card.Card) string {
	labels := make([]string, len(cards))
	for i, c := range cards {
		labels[i] = colorCard(c)
	}
	return strings.Join(labels, " ")
}

// playLabel names a play by its size.
func playLabel(n int) string {
	switch n {
	case 1:
		return "Single"
	case 2:
		return "Pair"
	case 3:
		return "Triple"
	default:
		return "Quad"
	}
}

func standingLabel(s game.Standing) string {
	switch s {
	case game.President:
		return pterm.LightYellow(s.String())
	case game.VicePresident:
		return pterm.Yellow(s.String())
	case game.ViceScum:
		return pterm.Gray(s.String())
	case game.Scum:
		return pterm.LightRed(s.String())
	default:
		return pterm.White(s.String())
	}
}

func printHand(p *game.Player) {
	p.SortHand()
	pterm.DefaultBox.WithTitle(p.Name + "'s hand").WithTitleTopLeft().
		Printfln("%s\n%s", colorCards(p.Hand), pterm.Gray(fmt.Sprintf("Total: %d cards", len(p.Hand))))
	pterm.Println()
}

func printCurrentPlay(current *game.Play) {
	box := pterm.DefaultBox.WithTitle("Current Play").WithTitleTopCenter()
	if current == nil {
		box.Println(pterm.Gray("No current play - you can lead with any cards"))
	} else {
		box.Printfln("%s played: %s (%s)",
			pterm.Cyan(current.Player.Name), colorCards(current.Cards), playLabel(len(current.Cards)))
	}
	pterm.Println()
}

func printRankings(players []*game.Player) {
	data := pterm.TableData{{"Player", "Rank", "Cards"}}
	for _, p := range players {
		data = append(data, []string{p.Name, standingLabel(p.Standing), strconv.Itoa(len(p.Hand))})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Println()
}

func printScores(g *game.Game) {
	data := pterm.TableData{{"#", "Player", "Score"}}
	for i, p := range g.Scores() {
		name := p.Name
		if i == 0 {
			name = pterm.LightYellow(name)
		}
		data = append(data, []string{strconv.Itoa(i + 1), name, strconv.Itoa(p.Score)})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Println()
}

func printRoundResults(finished []*game.Player) {
	data := pterm.TableData{{"Position", "Player", "Rank"}}
	for i, p := range finished {
		data = append(data, []string{strconv.Itoa(i + 1), p.Name, standingLabel(p.Standing)})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Println()
}

func printExchanges(exchanges []game.Exchange) {
	for _, ex := range exchanges {
		pterm.Info.Printfln("%s (%s) gives %s to %s (%s)",
			ex.From.Name, ex.From.Standing, colorCards(ex.Given), ex.To.Name, ex.To.Standing)
		pterm.Info.Printfln("%s (%s) gives %s back to %s",
			ex.To.Name, ex.To.Standing, colorCards(ex.Returned), ex.From.Name)
	}
	pterm.Println()
}

func printRules() {
	rules := strings.Join([]string{
		"• Be the first to get rid of all your cards",
		"• Must beat the current play or pass",
		"• 2 is the highest card, 3 is lowest",
		"• 3♠ beats everything when played alone",
		"• Winner becomes President, last becomes Scum",
		"• Card exchanges happen between rounds",
	}, "\n")
	pterm.DefaultBox.WithTitle("How to Play").WithTitleTopCenter().Println(rules)
	pterm.Println()
}

// clearScreen wipes the terminal so the next hot-seat player cannot
// scroll back to the previous hand.
func clearScreen() {
	pterm.Print("\033[H\033[2J")
}

func pause(message string) {
	pterm.DefaultInteractiveTextInput.WithDefaultText(pterm.Gray(message + " (press Enter)")).Show()
	pterm.Println()
}
