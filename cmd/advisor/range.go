package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/lox/holdem-advisor/internal/cards"
	"github.com/lox/holdem-advisor/internal/ranges"
)

type RangeCmd struct {
	Mode       string  `arg:"" help:"Range type" enum:"open,3bet,coldcall"`
	Position   int     `help:"Table position, 0 = earliest" default:"0"`
	InPosition bool    `help:"3-bettor has position on the opener (3bet mode)"`
	Board      string  `help:"Community board cards for bet sizing (e.g. 'Td7s2h')"`
	Pot        float64 `help:"Current pot size" default:"100"`
	Stack      float64 `help:"Effective remaining stack" default:"300"`
}

func (c *RangeCmd) Run() error {
	helper := ranges.NewConstructionHelper()

	var r ranges.Range
	switch c.Mode {
	case "open":
		r = helper.OpeningRange(c.Position)
	case "3bet":
		r = helper.ThreeBetRange(c.Position, c.InPosition)
	case "coldcall":
		r = helper.ColdCallRange(c.Position)
	}

	combos := r.Combos()
	sort.Slice(combos, func(i, j int) bool { return combos[i] < combos[j] })

	fmt.Println(headerStyle.Render(fmt.Sprintf("%s range, position %d", c.Mode, c.Position)))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("Combos"), valueStyle.Render(fmt.Sprintf("%d", r.TotalCombos())))

	if c.Board != "" {
		board, err := cards.ParseCards(c.Board)
		if err != nil {
			return fmt.Errorf("invalid board: %w", err)
		}
		var hand cards.Hand
		for _, card := range board {
			hand.AddCard(card)
		}

		engine := ranges.NewEngine()
		sizing := engine.OptimalBetSizing(r, hand, c.Pot, c.Stack)
		fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("Strategy"), valueStyle.Render(sizing.Strategy.String()))
		fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("Sizing"), valueStyle.Render(
			fmt.Sprintf("min %.1f / optimal %.1f / max %.1f", sizing.MinSize, sizing.OptimalSize, sizing.MaxSize)))
		fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("Rationale"), sizing.Rationale)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	for i, combo := range combos {
		if i > 0 && i%10 == 0 {
			fmt.Println()
		}
		fmt.Printf("%-6s", combo)
	}
	fmt.Println()
	return nil
}
