package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	charmlog "github.com/charmbracelet/log"
	"github.com/rs/zerolog"

	"github.com/lox/holdem-advisor/internal/config"
	"github.com/lox/holdem-advisor/internal/profile"
	"github.com/lox/holdem-advisor/internal/results"
	"github.com/lox/holdem-advisor/internal/tourney"
	"github.com/lox/holdem-advisor/internal/verify"
)

type CLI struct {
	Config      string `kong:"default='verify.hcl',help='HCL configuration file'"`
	Tiers       string `kong:"help='Comma-separated difficulty tiers (easy,medium,hard,expert), overrides config'"`
	Tournaments int    `kong:"help='Number of tournaments to run, overrides config'"`
	Hands       int    `kong:"help='Hands per tournament, overrides config'"`
	Chips       int    `kong:"help='Starting chips per seat, overrides config'"`
	Seed        *int64 `kong:"help='Random seed for reproducible runs'"`
	Output      string `kong:"help='Results file path, overrides config'"`
	Debug       bool   `kong:"help='Enable debug logging'"`
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	aheadStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	behindStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	onTrackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("verify"),
		kong.Description("Self-play verification for AI opponent profiles"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	cfg, err := config.Load(cli.Config)
	if err != nil {
		kctx.Fatalf("Failed to load config: %v", err)
	}
	applyOverrides(cfg, &cli)

	level := zerolog.InfoLevel
	if cli.Debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()

	selection := profile.NewSelection()
	tiers, err := parseTiers(cfg.Verification.Tiers)
	if err != nil {
		kctx.Fatalf("%v", err)
	}
	selection.SelectAll(tiers...)
	if selection.Len() < 2 {
		kctx.Fatalf("Need at least 2 profiles to verify, got %d", selection.Len())
	}

	runnerLog := charmlog.New(os.Stderr)
	runnerLog.SetLevel(charmlog.WarnLevel)
	if cli.Debug {
		runnerLog.SetLevel(charmlog.DebugLevel)
	}

	seed := cfg.Verification.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	store := results.NewStore(cfg.Output.ResultsFile)
	harness := verify.NewHarness(tourney.Factory(seed, runnerLog), store, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Warn().Msg("Interrupted, stopping verification")
		cancel()
	}()

	snapshots := harness.Run(ctx, selection.Profiles(), verify.Config{
		TournamentCount:    cfg.Verification.Tournaments,
		HandsPerTournament: cfg.Verification.HandsPerTournament,
		StartingChips:      cfg.Verification.StartingChips,
	})

	var last verify.Snapshot
	for snap := range snapshots {
		last = snap
		if !snap.Final {
			logger.Info().
				Int("game", snap.CurrentGame).
				Str("progress", fmt.Sprintf("%.0f%%", snap.Progress*100)).
				Dur("elapsed", snap.Elapsed).
				Msg("Tournament complete")
		}
	}

	if len(last.Results) == 0 {
		kctx.Fatalf("Verification produced no results")
	}
	displayResults(last)
	if last.Final {
		logger.Info().Str("file", cfg.Output.ResultsFile).Msg("Results persisted")
	}
}

func applyOverrides(cfg *config.Config, cli *CLI) {
	if cli.Tiers != "" {
		cfg.Verification.Tiers = strings.Split(cli.Tiers, ",")
	}
	if cli.Tournaments > 0 {
		cfg.Verification.Tournaments = cli.Tournaments
	}
	if cli.Hands > 0 {
		cfg.Verification.HandsPerTournament = cli.Hands
	}
	if cli.Chips > 0 {
		cfg.Verification.StartingChips = cli.Chips
	}
	if cli.Seed != nil {
		cfg.Verification.Seed = *cli.Seed
	}
	if cli.Output != "" {
		cfg.Output.ResultsFile = cli.Output
	}
}

func parseTiers(names []string) ([]profile.Difficulty, error) {
	var tiers []profile.Difficulty
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		tier, ok := profile.TierByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown difficulty tier %q", name)
		}
		tiers = append(tiers, tier)
	}
	return tiers, nil
}

func displayResults(snap verify.Snapshot) {
	fmt.Println()
	fmt.Println(headerStyle.Render("Verification Results"))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, headerStyle.Render("Profile")+"\t"+
		headerStyle.Render("Expected")+"\t"+
		headerStyle.Render("Actual")+"\t"+
		headerStyle.Render("Deviation")+"\t"+
		headerStyle.Render("Status"))

	for _, r := range snap.Results {
		var style lipgloss.Style
		switch r.Status {
		case verify.StatusAhead:
			style = aheadStyle
		case verify.StatusBehind:
			style = behindStyle
		default:
			style = onTrackStyle
		}
		fmt.Fprintf(w, "%s\t%d\t%.2f\t%+d\t%s\n",
			r.ProfileName, r.ExpectedRank, r.ActualRank, r.Deviation,
			style.Render(string(r.Status)))
	}
	w.Flush()
	fmt.Println()
}
