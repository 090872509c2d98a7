package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mattn/go-isatty"

	"github.com/katebianchi/mealweek/internal/cli"
	"github.com/katebianchi/mealweek/internal/db"
	"github.com/katebianchi/mealweek/internal/domain"
	"github.com/katebianchi/mealweek/internal/logger"
	"github.com/katebianchi/mealweek/internal/repository"
	"github.com/katebianchi/mealweek/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	debug := false
	if v := os.Getenv("MEALWEEK_DEBUG"); v != "" {
		debug, _ = strconv.ParseBool(v)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}
	logDir := filepath.Join(home, ".mealweek")
	if err := logger.Init(logger.Config{Debug: debug, Dir: logDir}); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	// The ledger is session-lifetime only: both backends start empty and
	// die with the process.
	var meals repository.MealRepo
	backend := os.Getenv("MEALWEEK_BACKEND")
	switch backend {
	case "", "memory":
		backend = "memory"
		meals = repository.NewMemoryMealRepo()
	case "sqlite":
		database, err := db.OpenMemoryDB()
		if err != nil {
			return fmt.Errorf("opening ledger database: %w", err)
		}
		defer database.Close()
		meals = repository.NewSQLiteMealRepo(database)
	default:
		return fmt.Errorf("unknown MEALWEEK_BACKEND %q (want memory or sqlite)", backend)
	}
	logger.Debug("ledger backend selected", "backend", backend)

	planner := service.NewPlannerService(meals)
	planner.Subscribe(func(d domain.Day) {
		logger.Info("ledger changed", "day", d)
	})

	app := &cli.App{
		Planner: planner,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
		LogDir: logDir,
	}

	return cli.NewRootCmd(app).Execute()
}
