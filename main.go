package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/tunegrab/tunegrab/internal"
	"github.com/tunegrab/tunegrab/pkg/logger"
)

var log = logger.Get("Main")

// main is the entry point to the program. Configuration is read from an
// optional YAML file and the environment (including a .env file when
// present), then the Tunegrab service is run until interrupted.
func main() {
	godotenv.Load()

	configPath := flag.String("config", "", "path to an optional YAML configuration file")
	flag.Parse()

	config := internal.TunegrabConfig{}
	var err error
	if *configPath != "" {
		err = config.LoadFromFile(*configPath)
	} else {
		err = config.LoadFromEnv()
	}
	if err != nil {
		log.Emit(logger.FATAL, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := internal.New(config).Run(ctx); err != nil {
		log.Emit(logger.FATAL, "Tunegrab encountered an unrecoverable error: %v\n", err)
		os.Exit(1)
	}

	log.Emit(logger.STOP, "Tunegrab stopped\n")
}
