package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version    kong.VersionFlag `short:"v" help:"Show version"`
	Human      HumanCmd         `cmd:"" help:"Play a game against an agent in the terminal"`
	Game       GameCmd          `cmd:"" help:"Play one game among registered agents"`
	Tournament TournamentCmd    `cmd:"" help:"Play many games and tally the winners"`
	Time       TimeCmd          `cmd:"" help:"Measure an agent's decision latency against a baseline"`
	Bots       BotsCmd          `cmd:"" help:"List registered agents"`
}

func main() {
	// .env only supplies defaults for MONKEYSTUD_* variables
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn("Failed to load .env", "error", err)
	}

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("monkeystud"),
		kong.Description("Three-card stud for autonomous poker agents"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.Bind(&cli.Globals),
	)
	cli.Globals.Out = os.Stdout
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
