package main

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/limaJavier/stablemarriage/internal/config"
	"github.com/limaJavier/stablemarriage/internal/logging"
	"github.com/limaJavier/stablemarriage/pkg/marriage"
	"github.com/limaJavier/stablemarriage/pkg/prefio"
)

func main() {
	cfg, err := config.Load(config.Flags(os.Args[0]), os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot load configuration: %v\n", err)
		os.Exit(2)
	}
	logger := logging.ZapLogger(cfg.Development)

	if err := generate(cfg, logger); err != nil {
		logger.Error(err, "cannot generate preference tables")
		os.Exit(1)
	}
}

// generate writes a pair of random tables per size. A single source is shared across sizes, so the
// tables of a size depend on every size generated before it.
func generate(cfg config.Config, logger logr.Logger) error {
	if err := os.MkdirAll(cfg.TablesDir, 0755); err != nil {
		return fmt.Errorf("cannot create tables directory: %w", err)
	}

	rng := marriage.NewRand(cfg.Seed)
	for _, size := range cfg.Sizes {
		group1, group2 := marriage.NumberedGroups(size)
		session, err := marriage.New(group1, group2, marriage.WithRand(rng))
		if err != nil {
			return err
		}

		pref1Path, pref2Path := prefio.TablePaths(cfg.TablesDir, cfg.Seed, size)
		if err := prefio.WritePreferencesFile(pref1Path, session.Group1(), session.Pref1()); err != nil {
			return err
		}
		if err := prefio.WritePreferencesFile(pref2Path, session.Group2(), session.Pref2()); err != nil {
			return err
		}
		logger.Info("tables written", "size", size, "pref1", pref1Path, "pref2", pref2Path)
	}
	return nil
}
