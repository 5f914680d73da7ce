package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/lox/holdem-advisor/internal/bluff"
	"github.com/lox/holdem-advisor/internal/cards"
	"github.com/lox/holdem-advisor/internal/holdem"
	"github.com/lox/holdem-advisor/internal/texture"
)

type BluffCmd struct {
	Board      string   `arg:"" help:"Community board cards (e.g. 'Td7s2h')"`
	Pot        float64  `help:"Current pot size" default:"100"`
	Aggression float64  `help:"Opponent aggression factor (bets+raises / calls)" default:"1.5"`
	VPIP       float64  `help:"Opponent VPIP rate" default:"0.25"`
	Hands      int      `help:"Hands observed for this opponent" default:"30"`
	History    []string `help:"Betting history entries as street:action:amount (e.g. flop:bet:50)"`
}

func (c *BluffCmd) Run() error {
	board, err := cards.ParseCards(c.Board)
	if err != nil {
		return fmt.Errorf("invalid board: %w", err)
	}

	history, err := parseHistory(c.History)
	if err != nil {
		return err
	}

	engine := bluff.NewEngine()
	indicator := engine.Infer(holdem.OpponentModel{
		AggressionFactor: c.Aggression,
		VPIP:             c.VPIP,
		HandsObserved:    c.Hands,
	}, texture.AnalyzeCards(board), history, c.Pot)

	fmt.Println(headerStyle.Render("Bluff Inference"))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("Bluff probability"), valueStyle.Render(fmt.Sprintf("%.1f%%", indicator.Probability*100)))
	fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("Confidence"), valueStyle.Render(fmt.Sprintf("%.2f", indicator.Confidence)))
	if len(indicator.Signals) > 0 {
		names := make([]string, len(indicator.Signals))
		for i, s := range indicator.Signals {
			names[i] = string(s)
		}
		fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("Signals"), strings.Join(names, ", "))
	}

	var advice string
	switch bluff.Recommend(indicator.Probability) {
	case bluff.WidenCallingRange:
		advice = goodStyle.Render("widen calling range")
	case bluff.TightenCallingRange:
		advice = badStyle.Render("tighten calling range")
	default:
		advice = "defer to pot odds"
	}
	fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("Recommendation"), advice)
	return w.Flush()
}

// parseHistory converts street:action:amount entries into a betting history.
func parseHistory(entries []string) ([]holdem.BetAction, error) {
	var history []holdem.BetAction
	for _, entry := range entries {
		parts := strings.Split(entry, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("history entry %q: want street:action:amount", entry)
		}
		street, err := holdem.ParseStreet(parts[0])
		if err != nil {
			return nil, fmt.Errorf("history entry %q: %w", entry, err)
		}
		kind, err := holdem.ParseActionKind(parts[1])
		if err != nil {
			return nil, fmt.Errorf("history entry %q: %w", entry, err)
		}
		amount, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, fmt.Errorf("history entry %q: bad amount: %w", entry, err)
		}
		history = append(history, holdem.BetAction{Street: street, Kind: kind, Amount: amount})
	}
	return history, nil
}
