package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"cluedo-toolbox/internal/cli"
	"cluedo-toolbox/internal/config"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
)

func main() {
	// 1. Environment (.env is loaded by the autoload import), then flags on top
	settings := config.LoadSettings()
	logLevel := flag.String("loglevel", settings.LogLevel, "Set logging level (debug, info, warn, error)")
	players := flag.Int("players", settings.Players, "Number of players at the table (3-6)")
	configPath := flag.String("config", settings.ConfigPath, "Card catalog file (.json or .yaml); empty uses the built-in catalog")
	flag.Parse()

	// 2. Set up top-level dependencies (Logger)
	log := logrus.New()
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, ForceColors: true})

	// 3. Load the card catalog
	gameConfig, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	catalog, err := gameConfig.Catalog()
	if err != nil {
		log.Fatalf("Invalid card catalog: %v", err)
	}

	// 4. Create the CLI, injecting the logger
	ui := cli.NewCLI(log)

	// 5. Run the application
	randSource := rand.New(rand.NewSource(time.Now().UnixNano()))
	if err := ui.Run(flag.Args(), catalog, *players, randSource); err != nil {
		log.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}
}
