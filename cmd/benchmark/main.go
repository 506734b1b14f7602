package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/go-logr/logr"
	"github.com/limaJavier/stablemarriage/internal/config"
	"github.com/limaJavier/stablemarriage/internal/logging"
	"github.com/limaJavier/stablemarriage/pkg/marriage"
	"github.com/limaJavier/stablemarriage/pkg/prefio"
	"github.com/samber/lo"
)

type BenchmarkResult struct {
	Matcher string
	Size    int
	Mean    time.Duration
}

func main() {
	cfg, err := config.Load(config.Flags(os.Args[0]), os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot load configuration: %v\n", err)
		os.Exit(2)
	}
	logger := logging.ZapLogger(cfg.Development)

	results, err := benchmark(cfg, logger)
	if err != nil {
		logger.Error(err, "benchmark failed")
		os.Exit(1)
	}

	if err := writeResults(cfg.Output, results); err != nil {
		logger.Error(err, "cannot write results", "output", cfg.Output)
		os.Exit(1)
	}
	logger.Info("results written", "output", cfg.Output)
}

func benchmark(cfg config.Config, logger logr.Logger) ([]BenchmarkResult, error) {
	matcher, err := marriage.MatcherByName(cfg.Matcher)
	if err != nil {
		return nil, err
	}

	results := make([]BenchmarkResult, 0, len(cfg.Sizes))
	for _, size := range cfg.Sizes {
		session, err := loadSession(cfg, size, marriage.WithMatcher(matcher))
		if err != nil {
			return nil, err
		}

		logger.Info("benchmarking", "matcher", cfg.Matcher, "size", size, "reps", cfg.Reps)
		mean := measure(cfg.Reps, func() { session.FindStableMatching(false) })

		if stable, err := session.CheckStability(nil); err != nil {
			return nil, err
		} else if !stable {
			return nil, fmt.Errorf("unstable matching for size %d", size)
		}

		results = append(results, BenchmarkResult{Matcher: cfg.Matcher, Size: size, Mean: mean})
	}
	return results, nil
}

// loadSession reads the tables generated for size, or generates them from the configured seed when
// they are missing.
func loadSession(cfg config.Config, size int, opts ...marriage.Option) (*marriage.Session, error) {
	pref1Path, pref2Path := prefio.TablePaths(cfg.TablesDir, cfg.Seed, size)

	group1, pref1, err1 := prefio.ReadPreferencesFile(pref1Path)
	group2, pref2, err2 := prefio.ReadPreferencesFile(pref2Path)
	if errors.Is(err1, fs.ErrNotExist) || errors.Is(err2, fs.ErrNotExist) {
		group1, group2 = marriage.NumberedGroups(size)
		return marriage.New(group1, group2, append(opts, marriage.WithSeed(cfg.Seed))...)
	} else if err := errors.Join(err1, err2); err != nil {
		return nil, err
	}

	return marriage.New(group1, group2, append(opts, marriage.WithPreferences(pref1, pref2))...)
}

// measure runs fn reps times and returns the mean wall clock time
func measure(reps int, fn func()) time.Duration {
	durations := lo.Times(reps, func(_ int) time.Duration {
		start := time.Now()
		fn()
		return time.Since(start)
	})
	return lo.Sum(durations) / time.Duration(reps)
}

// writeResults writes the results as CSV into path. A failure to close the file is reported.
func writeResults(path string, results []BenchmarkResult) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create CSV file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("cannot close CSV file: %w", closeErr)
		}
	}()

	return toCsv(file, results)
}

func toCsv(w io.Writer, results []BenchmarkResult) error {
	writer := csv.NewWriter(w)

	header := []string{"matcher", "n", "t"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}

	for _, result := range results {
		record := []string{
			result.Matcher,
			strconv.Itoa(result.Size),
			strconv.FormatFloat(result.Mean.Seconds(), 'f', 9, 64),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("cannot write CSV record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
