package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"sparkcalc/app"
	"sparkcalc/calc"
	"sparkcalc/internal/buildinfo"
	"sparkcalc/internal/config"
)

func main() {
	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, interactive))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, interactive bool) int {
	fs := flag.NewFlagSet("sparkcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a YAML config file (default $"+config.EnvPath+" or ~/.sparkcalc/config.yaml)")
	mode := fs.String("mode", "", "initial angle mode: deg or rad")
	logLevel := fs.String("log-level", "", "log level (debug, info, warn, error)")
	showVersion := fs.Bool("version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintln(stdout, buildinfo.String())
		return 0
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if *mode != "" {
		cfg.AngleMode = *mode
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	logger := newLogger(stderr, cfg.LogLevel)
	logger.Info().Str("version", buildinfo.Short()).Str("mode", cfg.Mode().String()).Msg("starting")

	engine := calc.NewEngine(cfg.Engine(), logger)
	sess := app.NewSession(engine, cfg.HistorySize, logger)

	prompt := ""
	if interactive {
		prompt = "> "
	}
	if err := app.Run(sess, stdin, stdout, prompt); err != nil {
		logger.Error().Err(err).Msg("session ended")
		return 1
	}
	return 0
}

func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

func newLogger(w io.Writer, levelName string) zerolog.Logger {
	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		level = zerolog.InfoLevel
	}
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: noColor}).
		With().Timestamp().Str("service", "sparkcalc").Logger().
		Level(level)
}
