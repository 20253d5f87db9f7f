// Package cmd implements the CLI application to manage a supply ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/etnz/supply"
	"github.com/etnz/supply/date"
	"github.com/etnz/supply/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Environment variables read as the default value of the global flags.
const (
	EnvDir     = "SUPPLY_DIR"
	EnvToday   = "SUPPLY_TODAY"
	EnvVerbose = "SUPPLY_VERBOSE"
)

// offsetFile holds the number of days "today" has been advanced by.
const offsetFile = ".today_offset"

// App holds the global flags shared by every command.
type App struct {
	Dir     string
	Today   string
	Verbose bool
}

// NewApp returns an App with defaults from the environment. A .env file in
// the working directory is loaded first, if any.
func NewApp() *App {
	// A missing .env is fine: configuration can come from the environment.
	_ = godotenv.Load()
	verbose, _ := strconv.ParseBool(getenvWithDefault(EnvVerbose, "false"))
	return &App{
		Dir:     getenvWithDefault(EnvDir, "."),
		Today:   os.Getenv(EnvToday),
		Verbose: verbose,
	}
}

// SetFlags declares the global flags on f.
func (a *App) SetFlags(f *flag.FlagSet) {
	f.StringVar(&a.Dir, "dir", a.Dir, "data directory of the ledger (env "+EnvDir+")")
	f.StringVar(&a.Today, "today", a.Today, "use this date as today, YYYY-MM-DD (env "+EnvToday+")")
	f.BoolVar(&a.Verbose, "v", a.Verbose, "log every change made to the data files (env "+EnvVerbose+")")
}

// Clock returns the clock of the store: the -today date, or the system date,
// advanced by the offset stored with advancedate.
func (a *App) Clock() (date.Clock, error) {
	base := date.System
	if a.Today != "" {
		on, err := date.Parse(a.Today)
		if err != nil {
			return nil, fmt.Errorf("invalid -today: %w", err)
		}
		base = date.Fixed(on)
	}
	offset, err := a.offset()
	if err != nil {
		return nil, err
	}
	return date.Offset(base, offset), nil
}

func (a *App) offset() (int, error) {
	filename := filepath.Join(a.Dir, offsetFile)
	data, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	days, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("invalid day offset in %q: %w", filename, err)
	}
	return days, nil
}

// advance adds days to the stored day offset.
func (a *App) advance(days int) error {
	current, err := a.offset()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(a.Dir, offsetFile), []byte(strconv.Itoa(current+days)), 0644)
}

// Open opens the store in the data directory. The caller must Sync the
// returned logger.
func (a *App) Open() (*supply.Store, *zap.Logger, error) {
	log, err := logger.New(a.Verbose)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot create logger: %w", err)
	}
	clock, err := a.Clock()
	if err != nil {
		return nil, log, err
	}
	store, err := supply.Open(supply.DefaultConfig(a.Dir), clock, logger.Named(log, "store"))
	if err != nil {
		return nil, log, err
	}
	return store, log, nil
}

func getenvWithDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
