package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/limaJavier/stablemarriage/internal/logging"
	"github.com/limaJavier/stablemarriage/pkg/marriage"
	"github.com/limaJavier/stablemarriage/pkg/prefio"
	"github.com/spf13/pflag"
)

type arguments struct {
	file         string
	pref1Path    string
	pref2Path    string
	size         int
	seed         int64
	reverseRoles bool
	matcher      string
	outFile      string
	development  bool
}

type output struct {
	Matching marriage.Matching `json:"matching"`
	Stable   bool              `json:"stable"`
	Score1   int               `json:"score1"`
	Score2   int               `json:"score2"`
}

func main() {
	args := parseArguments()
	logger := logging.ZapLogger(args.development)

	if err := run(args, logger); err != nil {
		logger.Error(err, "cannot solve instance")
		os.Exit(1)
	}
}

func parseArguments() arguments {
	var args arguments
	pflag.StringVar(&args.file, "file", "", "Path to a JSON or YAML instance file")
	pflag.StringVar(&args.pref1Path, "pref1", "", "Path to the CSV preference table of group 1 (requires --pref2)")
	pflag.StringVar(&args.pref2Path, "pref2", "", "Path to the CSV preference table of group 2 (requires --pref1)")
	pflag.IntVar(&args.size, "size", 0, "Size of the groups to generate random preferences for, when no input is given")
	pflag.Int64Var(&args.seed, "seed", 5, "Seed used to randomise preferences")
	pflag.BoolVar(&args.reverseRoles, "reverse", false, "Let group 2 propose instead of group 1")
	pflag.StringVar(&args.matcher, "matcher", "rank", fmt.Sprintf("Matcher to use, one of %q", marriage.MatcherNames()))
	pflag.StringVar(&args.outFile, "out", "", "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	pflag.BoolVar(&args.development, "development", false, "Human readable debug logging")
	pflag.Parse()
	args.matcher = strings.ToLower(args.matcher)
	return args
}

func run(args arguments, logger logr.Logger) error {
	matcher, err := marriage.MatcherByName(args.matcher)
	if err != nil {
		return err
	}

	//** Build session
	session, err := buildSession(args, marriage.WithMatcher(matcher), marriage.WithLogger(logger), marriage.WithSeed(args.seed))
	if err != nil {
		return err
	}
	logger.V(1).Info("session ready", "size", session.Size(), "matcher", args.matcher, "reverse", args.reverseRoles)

	//** Solve and evaluate
	matching := session.FindStableMatching(args.reverseRoles)
	stable, err := session.CheckStability(nil)
	if err != nil {
		return err
	}
	score, err := session.ScoreMatching(nil)
	if err != nil {
		return err
	}

	//** Write output
	outputJson, err := json.Marshal(output{
		Matching: matching,
		Stable:   stable,
		Score1:   score.Group1,
		Score2:   score.Group2,
	})
	if err != nil {
		return fmt.Errorf("an error occurred while building output json: %w", err)
	}

	if args.outFile == "" {
		fmt.Println(string(outputJson))
		return nil
	}
	if err := os.WriteFile(args.outFile, outputJson, 0666); err != nil {
		return fmt.Errorf("an error occurred while writing to the output file: %w", err)
	}
	return nil
}

func buildSession(args arguments, opts ...marriage.Option) (*marriage.Session, error) {
	switch {
	case args.file != "":
		instance, err := prefio.InstanceFromFile(args.file)
		if err != nil {
			return nil, err
		}
		return instance.Session(opts...)

	case args.pref1Path != "" || args.pref2Path != "":
		if args.pref1Path == "" || args.pref2Path == "" {
			return nil, fmt.Errorf("%w: --pref1 and --pref2 must be given together", marriage.ErrMissingArgument)
		}
		group1, pref1, err := prefio.ReadPreferencesFile(args.pref1Path)
		if err != nil {
			return nil, err
		}
		group2, pref2, err := prefio.ReadPreferencesFile(args.pref2Path)
		if err != nil {
			return nil, err
		}
		return marriage.New(group1, group2, append(opts, marriage.WithPreferences(pref1, pref2))...)

	case args.size > 0:
		group1, group2 := marriage.NumberedGroups(args.size)
		return marriage.New(group1, group2, opts...)
	}

	return nil, errors.New("an input must be specified: --file, --pref1/--pref2 or --size")
}
