package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/limaJavier/stablemarriage/internal/config"
	"github.com/limaJavier/stablemarriage/pkg/marriage"
	"github.com/limaJavier/stablemarriage/pkg/prefio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCsv(t *testing.T) {
	var buffer bytes.Buffer
	results := []BenchmarkResult{
		{Matcher: "rank", Size: 4, Mean: 1500 * time.Nanosecond},
		{Matcher: "rank", Size: 100, Mean: 2 * time.Millisecond},
	}

	require.NoError(t, toCsv(&buffer, results))

	assert.Equal(t, "matcher,n,t\nrank,4,0.000001500\nrank,100,0.002000000\n", buffer.String())
}

func TestWriteResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "execution_time.csv")
	results := []BenchmarkResult{{Matcher: "walk", Size: 4, Mean: time.Second}}

	require.NoError(t, writeResults(path, results))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "matcher,n,t\nwalk,4,1.000000000\n", string(content))
}

func TestWriteResultsUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "execution_time.csv")

	err := writeResults(path, nil)

	assert.Error(t, err)
	assert.NoFileExists(t, path)
}

func TestMeasure(t *testing.T) {
	calls := 0

	mean := measure(3, func() { calls++ })

	assert.Equal(t, 3, calls)
	assert.GreaterOrEqual(t, mean, time.Duration(0))
}

func TestLoadSessionGeneratesMissingTables(t *testing.T) {
	cfg := config.Config{Seed: 5, TablesDir: t.TempDir()}

	session, err := loadSession(cfg, 6)
	require.NoError(t, err)

	expected, err := marriage.New(session.Group1(), session.Group2(), marriage.WithSeed(5))
	require.NoError(t, err)
	assert.Equal(t, 6, session.Size())
	assert.Equal(t, expected.Pref1(), session.Pref1())
	assert.Equal(t, expected.Pref2(), session.Pref2())
}

func TestLoadSessionReadsTables(t *testing.T) {
	//** Arrange
	cfg := config.Config{Seed: 5, TablesDir: t.TempDir()}
	group1 := marriage.Group{"a0", "a1"}
	group2 := marriage.Group{"b0", "b1"}
	pref1 := marriage.PreferenceTable{"a0": {"b0", "b1"}, "a1": {"b1", "b0"}}
	pref2 := marriage.PreferenceTable{"b0": {"a1", "a0"}, "b1": {"a0", "a1"}}
	pref1Path, pref2Path := prefio.TablePaths(cfg.TablesDir, cfg.Seed, 2)
	require.NoError(t, prefio.WritePreferencesFile(pref1Path, group1, pref1))
	require.NoError(t, prefio.WritePreferencesFile(pref2Path, group2, pref2))

	//** Act
	session, err := loadSession(cfg, 2)

	//** Assert
	require.NoError(t, err)
	assert.Equal(t, pref1, session.Pref1())
	assert.Equal(t, pref2, session.Pref2())
}

func TestBenchmark(t *testing.T) {
	for _, matcher := range marriage.MatcherNames() {
		t.Run(matcher, func(t *testing.T) {
			cfg := config.Config{Seed: 5, Sizes: []int{0, 4, 20}, Reps: 2, TablesDir: t.TempDir(), Matcher: matcher}

			results, err := benchmark(cfg, logr.Discard())

			require.NoError(t, err)
			require.Len(t, results, 3)
			for i, result := range results {
				assert.Equal(t, matcher, result.Matcher)
				assert.Equal(t, cfg.Sizes[i], result.Size)
			}
		})
	}
}

func TestBenchmarkUnknownMatcher(t *testing.T) {
	cfg := config.Config{Seed: 5, Sizes: []int{4}, Reps: 1, TablesDir: t.TempDir(), Matcher: "gale"}

	_, err := benchmark(cfg, logr.Discard())

	assert.ErrorIs(t, err, marriage.ErrUnknownMatcher)
}
