// Command ly-gateway serves the Legislative Yuan open data API (v2) as MCP
// tools over stdio.
//
// Stdout belongs to the MCP transport, so every log line goes to stderr:
// human-readable when stderr is a terminal, JSON otherwise.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/lygovtw/ly-gateway/internal/config"
	"github.com/lygovtw/ly-gateway/internal/lyapi"
	"github.com/lygovtw/ly-gateway/internal/tools"
)

// version is stamped by the release build via -ldflags.
var version = "dev"

func main() {
	// Optional: a .env in the working directory seeds the environment
	// before config resolution. Missing file is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ly-gateway: %v\n", err)
		os.Exit(1)
	}

	setupLogging(cfg.LogLevel)

	client := lyapi.NewClient(
		lyapi.WithBaseURL(cfg.BaseURL),
		lyapi.WithTimeout(cfg.Timeout()),
	)

	srv := tools.NewServer(client, version)

	log.Info().
		Str("version", version).
		Str("base_url", cfg.BaseURL).
		Dur("timeout", cfg.Timeout()).
		Msg("serving MCP over stdio")

	if err := server.ServeStdio(srv); err != nil {
		log.Error().Err(err).Msg("stdio server terminated")
		os.Exit(1)
	}
}

func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	var out io.Writer = os.Stderr
	if term.IsTerminal(int(os.Stderr.Fd())) {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
}
