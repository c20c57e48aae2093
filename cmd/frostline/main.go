package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/appengine-ltd/frostline/internal/calendar"
	"github.com/appengine-ltd/frostline/internal/game"
)

// version, commit, date are injected at build time (see .goreleaser.yaml).
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		seed        int64
		seasonDays  int
		seasonName  string
		climateName string
		shelter     int
		playerName  string
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Int64Var(&seed, "seed", 0, "simulation seed (0 picks one)")
	flag.IntVar(&seasonDays, "season-days", 14, "length of a season in days")
	flag.StringVar(&seasonName, "season", "autumn", "starting season (spring|summer|autumn|winter)")
	flag.StringVar(&climateName, "climate", "temperate", "climate profile (temperate|boreal)")
	flag.IntVar(&shelter, "shelter", 0, "shelter quality 0..3")
	flag.StringVar(&playerName, "name", "survivor", "character name")
	flag.Parse()

	if showVersion {
		fmt.Printf("Frostline %s (%s) %s\n", version, commit, date)
		return
	}

	config := game.DefaultSessionConfig()
	config.Seed = seed
	config.SeasonDays = seasonDays
	config.ShelterQuality = shelter
	config.PlayerName = playerName

	season, err := parseSeason(seasonName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	config.StartSeason = season

	climate, err := parseClimate(climateName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	config.Climate = climate

	session, err := game.NewSession(config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	console := newConsole(session, os.Stdin, os.Stdout)
	if err := console.run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseSeason(raw string) (calendar.Season, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "spring":
		return calendar.Spring, nil
	case "summer":
		return calendar.Summer, nil
	case "autumn", "fall":
		return calendar.Autumn, nil
	case "winter":
		return calendar.Winter, nil
	default:
		return 0, fmt.Errorf("unknown season: %s", raw)
	}
}

func parseClimate(raw string) (game.ClimateProfile, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "temperate":
		return game.TemperateClimate(), nil
	case "boreal":
		return game.BorealClimate(), nil
	default:
		return game.ClimateProfile{}, fmt.Errorf("unknown climate: %s", raw)
	}
}
