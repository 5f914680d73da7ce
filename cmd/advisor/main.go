package main

import (
	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Odds    OddsCmd          `cmd:"" help:"Evaluate pot odds for a call decision"`
	SPR     SPRCmd           `cmd:"" name:"spr" help:"Stack-to-pot ratio analysis and bet sizing"`
	Bluff   BluffCmd         `cmd:"" help:"Infer bluff probability from opponent behaviour"`
	Range   RangeCmd         `cmd:"" help:"Positional range construction and bet sizing"`
	Equity  EquityCmd        `cmd:"" help:"Monte Carlo equity against random hands"`
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	goodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	badStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	valueStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("advisor"),
		kong.Description("Decision support for Texas Hold'em"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
