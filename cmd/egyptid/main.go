// Command egyptid validates and inspects Egyptian identifiers: bank cards,
// national IDs and mobile numbers.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrymomot/egyptid/core/config"
	"github.com/dmitrymomot/egyptid/core/i18n"
	"github.com/dmitrymomot/egyptid/core/logger"
)

const serviceName = "egyptid"

// Config is read from the environment and an optional .env file.
type Config struct {
	Lang       string `env:"EGYPTID_LANG" envDefault:"en"`
	LogLevel   string `env:"EGYPTID_LOG_LEVEL" envDefault:"warn"`
	Env        string `env:"EGYPTID_ENV" envDefault:"production"`
	CardLength int    `env:"EGYPTID_TEST_CARD_LENGTH" envDefault:"16"`
}

// errRejected marks input that was checked and found invalid. The command has
// already printed the reason.
var errRejected = errors.New("input rejected")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(stderr, "egyptid:", err)
		return err
	}

	a := newApp(cfg, newLogger(cfg, stderr), time.Now)

	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errRejected) {
			fmt.Fprintln(stderr, "egyptid:", err)
		}
		return err
	}
	return nil
}

func newLogger(cfg Config, w io.Writer) *slog.Logger {
	env := logger.WithProduction(serviceName)
	if cfg.Env == "development" {
		env = logger.WithDevelopment(serviceName)
	}
	return logger.New(
		env,
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithOutput(w),
	)
}

type app struct {
	cfg      Config
	log      *slog.Logger
	now      func() time.Time
	lang     i18n.Lang
	langFlag string
	json     bool
}

func newApp(cfg Config, log *slog.Logger, now func() time.Time) *app {
	return &app{
		cfg:  cfg,
		log:  log,
		now:  now,
		lang: i18n.ParseLang(cfg.Lang),
	}
}
