package main

import (
	"fmt"

	"github.com/pterm/pterm"

	"president/domain/card"
	"president/domain/game"
)

const passOption = "Pass"

// maxPromptRetries bounds the re-prompt loop on malformed selections.
const maxPromptRetries = 10

// hotSeatChooser prompts the player at the terminal for every trick
// decision. Each turn clears the screen first so hands stay hidden
// from the other seats.
type hotSeatChooser struct{}

func (hotSeatChooser) ChoosePlay(p *game.Player, valid [][]card.Card, current *game.Play) ([]card.Card, error) {
	clearScreen()
	pterm.DefaultSection.Printfln("%s's Turn", p.Name)
	printHand(p)
	printCurrentPlay(current)

	if len(valid) == 0 {
		pterm.Warning.Println("No valid plays available - you must pass")
		pause("Press Enter to pass")
		return nil, nil
	}

	options := make([]string, 0, len(valid)+1)
	byOption := make(map[string][]card.Card, len(valid))
	for _, cards := range valid {
		label := fmt.Sprintf("%s (%s)", colorCards(cards), playLabel(len(cards)))
		options = append(options, label)
		byOption[label] = cards
	}
	// The leader must open the trick and may not pass.
	if current != nil {
		options = append(options, passOption)
	}

	choice, err := pterm.DefaultInteractiveSelect.
		WithDefaultText("Select your play").
		WithOptions(options).
		Show()
	if err != nil {
		return nil, err
	}
	if choice == passOption {
		pterm.Printfln("%s passes", pterm.Gray(p.Name))
		return nil, nil
	}

	cards := byOption[choice]
	pterm.Printfln("%s plays: %s", pterm.Cyan(p.Name), colorCards(cards))
	if len(cards) == len(p.Hand) {
		pterm.Success.Printfln("%s is out of cards!", p.Name)
	}
	pause("Pass to next player")
	return cards, nil
}

// hotSeatGiveBack lets the President or Vice-President pick the cards
// to send back during the exchange.
type hotSeatGiveBack struct{}

func (hotSeatGiveBack) ChooseGiveBack(p *game.Player, num int, counterpart string) ([]card.Card, error) {
	clearScreen()
	pterm.DefaultSection.Printfln("Card Exchange: %s's Turn", p.Name)
	pterm.Printfln("%s, choose %d card(s) to give to %s", pterm.Cyan(p.Name), num, pterm.LightYellow(counterpart))
	pterm.Println()
	printHand(p)

	options := make([]string, len(p.Hand))
	byOption := make(map[string]card.Card, len(p.Hand))
	for i, c := range p.Hand {
		label := c.String()
		options[i] = label
		byOption[label] = c
	}

	for retry := 0; retry < maxPromptRetries; retry++ {
		chosen, err := pterm.DefaultInteractiveMultiselect.
			WithDefaultText(fmt.Sprintf("Select exactly %d card(s)", num)).
			WithOptions(options).
			Show()
		if err != nil {
			return nil, err
		}
		if len(chosen) != num {
			pterm.Error.Printfln("Please select exactly %d card(s), got %d", num, len(chosen))
			continue
		}
		cards := make([]card.Card, num)
		for i, label := range chosen {
			cards[i] = byOption[label]
		}
		pterm.Printfln("%s gives to %s: %s", pterm.Cyan(p.Name), pterm.LightYellow(counterpart), colorCards(cards))
		pause("Press Enter to continue")
		return cards, nil
	}
	return nil, fmt.Errorf("no valid selection after %d attempts", maxPromptRetries)
}
