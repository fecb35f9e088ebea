// main is the entry point of the Student Report Card Generator.
//
// STARTUP SEQUENCE:
//  1. Load configuration (optional file, environment, defaults)
//  2. Initialise the logger on stderr
//  3. Run one interactive session on stdin/stdout
//  4. Exit 0, or exit 1 if the console could not be read
//
// RUNNING:
//
//	go run ./cmd/report-card
//
// or with a config file:
//
//	go run ./cmd/report-card --config=config/local.yaml
package main

import (
	"bufio"
	"log/slog"
	"os"

	"github.com/aanand-mishra/report-card/internal/app"
	"github.com/aanand-mishra/report-card/internal/config"
	"github.com/aanand-mishra/report-card/internal/report"
)

func main() {
	cfg := config.MustLoad()

	// stdout carries the console session, so logs go to stderr.
	log := setupLogger(cfg.Env, cfg.LogLevel)
	slog.SetDefault(log)

	log.Debug("starting report-card",
		slog.String("env", cfg.Env),
		slog.Int("label_width", cfg.LabelWidth))

	// Prompts flush this writer before blocking on input.
	out := bufio.NewWriter(os.Stdout)

	session := app.Session{
		Log:       log,
		Formatter: report.New(cfg.LabelWidth),
	}
	err := session.Run(os.Stdin, out)
	if flushErr := out.Flush(); err == nil {
		err = flushErr
	}
	if err != nil {
		log.Error("session aborted", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// Development (dev): human-readable text output.
// Staging and production: machine-readable JSON output.
func setupLogger(env, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	switch env {
	case "prod", "staging":
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	default: // "dev" and anything unrecognised
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
}

func parseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelWarn
	}
	return l
}
