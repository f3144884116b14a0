package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"permissioned-registry/client"
	"permissioned-registry/internal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"golang.org/x/term"
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Registry terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run loads the configuration and hands the command line to the CLI.
// Keeping os.Exit out of here lets deferred cleanup run.
func run() (int, error) {
	// A missing .env file is fine, the environment may already be set.
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return client.ExitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return client.ExitConfig, fmt.Errorf("config error: %w", err)
	}

	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	colours := term.IsTerminal(int(os.Stdout.Fd()))
	cli := client.New(config, log, os.Stdout, os.Stderr, colours)
	return cli.Run(ctx, os.Args[1:])
}
