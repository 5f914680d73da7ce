package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/lox/holdem-advisor/internal/cards"
	"github.com/lox/holdem-advisor/internal/ranges"
)

type EquityCmd struct {
	Hand       string `arg:"" help:"Hero hole cards (e.g. 'AcKd')"`
	Board      string `short:"b" help:"Community board cards (e.g. 'Td7s8h')"`
	Opponents  int    `short:"o" help:"Number of opponents" default:"1"`
	Iterations int    `short:"i" help:"Number of Monte Carlo iterations" default:"100000"`
	Seed       *int64 `help:"Random seed for reproducible results"`
}

func (c *EquityCmd) Run() error {
	hole, err := cards.ParseCards(c.Hand)
	if err != nil {
		return fmt.Errorf("invalid hand: %w", err)
	}
	if len(hole) != 2 {
		return fmt.Errorf("hand must contain exactly 2 cards, got %d", len(hole))
	}

	var board []cards.Card
	if c.Board != "" {
		board, err = cards.ParseCards(c.Board)
		if err != nil {
			return fmt.Errorf("invalid board: %w", err)
		}
		if len(board) > 5 {
			return fmt.Errorf("board cannot have more than 5 cards")
		}
	}

	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}

	start := time.Now()
	result := ranges.SimulateEquityParallel([2]cards.Card{hole[0], hole[1]}, board, c.Opponents, c.Iterations, seed)
	elapsed := time.Since(start)

	lower, upper := result.ConfidenceInterval()

	fmt.Println(headerStyle.Render(fmt.Sprintf("Equity for %s%s vs %d opponent(s)", hole[0], hole[1], c.Opponents)))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("Equity"), valueStyle.Render(fmt.Sprintf("%.2f%%", result.Equity()*100)))
	fmt.Fprintf(w, "%s\t%.2f%% - %.2f%%\n", labelStyle.Render("95% interval"), lower*100, upper*100)
	fmt.Fprintf(w, "%s\t%d wins, %d ties\n", labelStyle.Render("Outcomes"), result.Wins, result.Ties)
	fmt.Fprintf(w, "%s\t%d in %s\n", labelStyle.Render("Simulations"), result.TotalSimulations, elapsed.Round(time.Millisecond))
	return w.Flush()
}
