package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/lox/holdem-advisor/internal/holdem"
	"github.com/lox/holdem-advisor/internal/odds"
)

type OddsCmd struct {
	Call     float64 `arg:"" help:"Amount to call"`
	Pot      float64 `arg:"" help:"Current pot size"`
	Stack    float64 `help:"Effective remaining stack" default:"100"`
	Street   string  `help:"Current street" enum:"preflop,flop,turn,river" default:"flop"`
	Equity   float64 `help:"Estimated equity against the opponent's range" default:"0.35"`
	Strength float64 `help:"Current hand strength in [0,1]" default:"0.4"`
	DeadRisk float64 `help:"Risk of drawing dead in [0,1]" default:"0.1"`
	Draw     bool    `help:"Hero is on a draw"`
}

func (c *OddsCmd) Run() error {
	street, err := holdem.ParseStreet(c.Street)
	if err != nil {
		return err
	}

	engine := odds.NewEngine()
	eval := engine.EffectiveOdds(c.Call, c.Pot, c.Stack, c.Equity, street, c.Strength, c.DeadRisk, c.Draw)

	fmt.Println(headerStyle.Render("Pot Odds"))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("Direct odds"), valueStyle.Render(fmt.Sprintf("%.1f%%", eval.DirectOdds*100)))
	fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("Implied odds"), valueStyle.Render(fmt.Sprintf("%.1f%%", eval.ImpliedOdds*100)))
	fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("Reverse implied"), valueStyle.Render(fmt.Sprintf("%.1f%%", eval.ReverseImpliedOdds*100)))
	fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("Required equity"), valueStyle.Render(fmt.Sprintf("%.1f%%", eval.RequiredEquity*100)))
	fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("Break-even pot"), valueStyle.Render(fmt.Sprintf("%.1f", eval.BreakEvenPot)))
	fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("Confidence"), valueStyle.Render(fmt.Sprintf("%.2f", eval.Confidence)))

	verdict := badStyle.Render("fold")
	if eval.Profitable {
		verdict = goodStyle.Render("call")
	}
	fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("Verdict"), verdict)
	return w.Flush()
}

type SPRCmd struct {
	Stack    float64 `arg:"" help:"Effective stack size"`
	Pot      float64 `arg:"" help:"Current pot size"`
	Strength float64 `help:"Current hand strength in [0,1]" default:"0.5"`
	Bluff    bool    `help:"Size for a bluff instead of a value bet"`
}

func (c *SPRCmd) Run() error {
	calc := odds.NewSPRCalculator()
	ratio := calc.Ratio(c.Stack, c.Pot)
	category := calc.Category(ratio)
	size := calc.OptimalBetSize(c.Pot, c.Stack, c.Strength, !c.Bluff)

	fmt.Println(headerStyle.Render("Stack-to-Pot Ratio"))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("SPR"), valueStyle.Render(fmt.Sprintf("%.2f", ratio)))
	fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("Category"), valueStyle.Render(category.Description()))
	fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("Suggested bet"), valueStyle.Render(fmt.Sprintf("%.1f", size)))
	return w.Flush()
}
