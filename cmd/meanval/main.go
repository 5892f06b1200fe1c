package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/meanval/meanval/internal/cli"
	"github.com/meanval/meanval/internal/persist"
	"github.com/meanval/meanval/internal/store"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.meanval/meanval.db
	dbPath := os.Getenv("MEANVAL_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".meanval", "meanval.db")
	}
	log := zap.NewNop()
	if os.Getenv("MEANVAL_DEBUG") != "" {
		var err error
		log, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
	}
	defer log.Sync()

	slot, err := persist.OpenSQLite(dbPath, persist.DefaultNamespace)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer slot.Close()

	st := store.Open(context.Background(), slot, log)
	defer st.Flush()

	app := &cli.App{
		Store: st,
		IsInteractive: isatty.IsTerminal(os.Stdin.Fd()) ||
			isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}

	return cli.NewRootCmd(app).Execute()
}
