package main

import (
	"flag"
	"log/slog"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"president/domain/card"
	"president/domain/game"
)

func main() {
	playersFlag := flag.Int("players", 0, "number of players (3-8, 0 = ask)")
	roundsFlag := flag.Int("rounds", 0, "number of rounds (0 = ask)")
	autoFlag := flag.Bool("auto", false, "play every seat automatically")
	flag.Parse()

	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	for {
		clearScreen()
		printWelcome()

		if !*autoFlag {
			if show, _ := pterm.DefaultInteractiveConfirm.
				WithDefaultText("Would you like to see the rules?").
				WithDefaultValue(true).Show(); show {
				printRules()
				pause("Press Enter to continue")
			}
		}

		numPlayers := askCount(*playersFlag, "Number of players (3-8)", 4, card.MinPlayers, card.MaxPlayers)
		numRounds := askCount(*roundsFlag, "Number of rounds to play", 3, 1, 1000)
		names := askNames(numPlayers, *autoFlag)

		g, err := game.NewGame(names, numRounds)
		if err != nil {
			logger.Error("could not create game", "error", err)
			return
		}

		if *autoFlag {
			if err := runAuto(g); err != nil {
				logger.Error("game failed", "error", err)
				return
			}
		} else {
			g.GiveBack = hotSeatGiveBack{}
			if err := runInteractive(g); err != nil {
				logger.Error("game failed", "error", err)
				return
			}
		}

		printFinale(g)

		again, _ := pterm.DefaultInteractiveConfirm.
			WithDefaultText("Play again?").
			WithDefaultValue(false).Show()
		if !again {
			pterm.Println()
			pterm.Println("Thanks for playing President!")
			return
		}
	}
}

func printWelcome() {
	pterm.Println()
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("P", pterm.FgLightYellow.ToStyle()),
		putils.LettersFromStringWithStyle("resident", pterm.FgCyan.ToStyle()),
	).Render()
	pterm.Println()
}

// askCount resolves a numeric setting: the flag value wins when it is
// already in range, otherwise the user is prompted until it is.
func askCount(flagValue int, prompt string, def, min, max int) int {
	if flagValue >= min && flagValue <= max {
		return flagValue
	}
	for {
		answer, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText(prompt).
			WithDefaultValue(strconv.Itoa(def)).Show()
		n, err := strconv.Atoi(answer)
		if err == nil && n >= min && n <= max {
			pterm.Println()
			return n
		}
		pterm.Error.Printfln("Please enter a number between %d and %d", min, max)
	}
}

func askNames(numPlayers int, auto bool) []string {
	names := make([]string, numPlayers)
	for i := range names {
		def := "Player " + strconv.Itoa(i+1)
		if auto {
			names[i] = def
			continue
		}
		name, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText("Player " + strconv.Itoa(i+1) + " name").
			WithDefaultValue(def).Show()
		if name == "" {
			name = def
		}
		names[i] = name
	}
	pterm.Println()
	return names
}

// runInteractive plays all rounds at the terminal, mirroring the
// engine's round loop with announcements between the steps.
func runInteractive(g *game.Game) error {
	chooser := hotSeatChooser{}
	for g.CurrentRound < g.TotalRounds {
		clearScreen()
		pterm.DefaultSection.Printfln("ROUND %d of %d", g.CurrentRound+1, g.TotalRounds)
		if g.CurrentRound > 0 {
			pterm.Println("Current rankings:")
			printRankings(g.Players)
			pause("Press Enter to deal")
		}

		exchanges, err := g.BeginRound()
		if err != nil {
			return err
		}
		if len(exchanges) > 0 {
			clearScreen()
			pterm.DefaultSection.Println("Card Exchange")
			printExchanges(exchanges)
			pause("Press Enter to continue")
		}

		leader, err := g.FindStartingLeader()
		if err != nil {
			return err
		}
		clearScreen()
		pterm.Info.Printfln("%s has the 3♣ and starts!", pterm.Cyan(leader.Name))
		pause("Press Enter to begin")

		for len(g.ActivePlayers()) > 1 {
			winner, err := g.PlayTrick(leader, chooser)
			if err != nil {
				return err
			}
			if winner != nil {
				leader = winner
				pterm.Success.Printfln("%s wins the trick!", winner.Name)
				pause("Press Enter for the next trick")
			}
		}
		g.FinishRound()

		clearScreen()
		pterm.DefaultSection.Println("Round Results")
		printRoundResults(g.Finished)
		printScores(g)
		if g.CurrentRound < g.TotalRounds {
			cont, _ := pterm.DefaultInteractiveConfirm.
				WithDefaultText("Continue to next round?").
				WithDefaultValue(true).Show()
			if !cont {
				return nil
			}
		}
	}
	return nil
}

// runAuto plays every seat with the automatic chooser and prints a
// short summary per round.
func runAuto(g *game.Game) error {
	for g.CurrentRound < g.TotalRounds {
		if err := g.PlayRound(game.AutoChooser{}); err != nil {
			return err
		}
		pterm.DefaultSection.Printfln("ROUND %d of %d", g.CurrentRound, g.TotalRounds)
		printRoundResults(g.Finished)
	}
	return nil
}

func printFinale(g *game.Game) {
	clearScreen()
	pterm.DefaultSection.Println("GAME OVER")
	printScores(g)
	if winner := g.Winner(); winner != nil {
		pterm.DefaultBox.WithTitle("Winner").WithTitleTopCenter().
			Println(pterm.LightYellow(winner.Name + " WINS THE GAME!"))
	} else {
		pterm.Warning.Println("Game ended in a tie!")
	}
	pterm.Println()
}
