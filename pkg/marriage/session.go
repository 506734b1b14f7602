// Package marriage solves the stable marriage problem between two groups of equal size by
// deferred acceptance, as described by Gale and Shapley and analysed by Knuth.
//
// A Session validates its groups and preference tables on construction, generates random
// tables when none are supplied, and caches the last matching and score it computed.
package marriage

import (
	"fmt"
	"maps"
	"math/rand"

	"github.com/go-logr/logr"
)

// Session holds a validated instance together with the last matching and score computed for it.
type Session struct {
	group1, group2 Group
	pref1, pref2   PreferenceTable
	matching       Matching
	score          *Score

	matcher Matcher
	logger  logr.Logger
}

type options struct {
	pref1, pref2 PreferenceTable
	matching     Matching
	rng          *rand.Rand
	matcher      Matcher
	logger       logr.Logger
}

// Option customises a Session under construction.
type Option func(*options)

// WithPreferences supplies both preference tables. Supplying only one of them is an error.
func WithPreferences(pref1, pref2 PreferenceTable) Option {
	return func(o *options) {
		o.pref1, o.pref2 = pref1, pref2
	}
}

// WithMatching supplies an initial matching, keyed by group2 members.
func WithMatching(matching Matching) Option {
	return func(o *options) {
		o.matching = matching
	}
}

// WithRand sets the source used to randomise preferences when no tables are supplied.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithSeed is WithRand with a fresh source seeded with seed.
func WithSeed(seed int64) Option {
	return WithRand(NewRand(seed))
}

// WithMatcher sets the acceptance strategy; the rank-table matcher is used otherwise.
func WithMatcher(matcher Matcher) Option {
	return func(o *options) {
		o.matcher = matcher
	}
}

// WithLogger sets the logger receiving non-fatal diagnostics such as unstable matchings.
func WithLogger(logger logr.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New validates the groups, then the preference tables (randomised when both are omitted), then
// the initial matching, failing on the first violation.
func New(group1, group2 Group, opts ...Option) (*Session, error) {
	o := options{
		matcher: NewRankTableMatcher(),
		logger:  logr.Discard(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	//** Groups
	if err := CheckGroups(group1, group2); err != nil {
		return nil, err
	}
	session := &Session{
		group1:  append(Group{}, group1...),
		group2:  append(Group{}, group2...),
		matcher: o.matcher,
		logger:  o.logger,
	}

	//** Preferences
	switch {
	case o.pref1 == nil && o.pref2 == nil:
		session.pref1, session.pref2 = RandomPreferences(session.group1, session.group2, o.rng)
	case o.pref1 == nil || o.pref2 == nil:
		return nil, fmt.Errorf("%w: preference tables must be provided as a pair", ErrMissingArgument)
	default:
		if err := CheckPreferences(group1, group2, o.pref1, o.pref2); err != nil {
			return nil, err
		}
		session.pref1, session.pref2 = o.pref1.Clone(), o.pref2.Clone()
	}

	//** Matching
	if o.matching != nil {
		if err := CheckMatching(group2, group1, o.matching); err != nil {
			return nil, err
		}
		session.matching = o.matching.Clone()
	}

	return session, nil
}

// Group1 returns a copy of the first group.
func (session *Session) Group1() Group {
	return append(Group{}, session.group1...)
}

// Group2 returns a copy of the second group.
func (session *Session) Group2() Group {
	return append(Group{}, session.group2...)
}

// Size returns the number of members in each group
func (session *Session) Size() int {
	return len(session.group1)
}

// Pref1 returns a copy of the first group's preference table.
func (session *Session) Pref1() PreferenceTable {
	return session.pref1.Clone()
}

// Pref2 returns a copy of the second group's preference table.
func (session *Session) Pref2() PreferenceTable {
	return session.pref2.Clone()
}

// Matching returns the last matching supplied or computed, or nil if there is none.
func (session *Session) Matching() Matching {
	return session.matching.Clone()
}

// Score returns the last score computed for the session's matching.
func (session *Session) Score() (Score, bool) {
	if session.score == nil {
		return Score{}, false
	}
	return *session.score, true
}

// FindStableMatching computes a stable matching, stores it as the session's matching and returns it.
// With reverseRoles set, group2 proposes instead of group1; the result is keyed by group2 either way.
func (session *Session) FindStableMatching(reverseRoles bool) Matching {
	session.matching = session.matcher.Match(session.group1, session.group2, session.pref1, session.pref2, reverseRoles)
	session.score = nil
	return session.matching.Clone()
}

// CheckStability reports whether matching is stable. A nil matching stands for the session's matching.
func (session *Session) CheckStability(matching Matching) (bool, error) {
	matching, _, err := session.resolve(matching)
	if err != nil {
		return false, err
	}
	return CheckStability(session.group1, session.group2, session.pref1, session.pref2, matching), nil
}

// ScoreMatching scores matching, or the session's matching when nil. Scoring an unstable matching
// logs a warning and still returns its score. The score is cached when it belongs to the session's matching.
func (session *Session) ScoreMatching(matching Matching) (Score, error) {
	matching, own, err := session.resolve(matching)
	if err != nil {
		return Score{}, err
	}

	score, stable := ScoreMatching(session.group1, session.group2, session.pref1, session.pref2, matching)
	if !stable {
		session.logger.Info("matching is not stable", "score1", score.Group1, "score2", score.Group2)
	}

	if own {
		session.score = &score
	}
	return score, nil
}

// resolve picks the matching to evaluate and tells whether it equals the session's one
func (session *Session) resolve(matching Matching) (Matching, bool, error) {
	if matching == nil {
		if session.matching == nil {
			return nil, false, ErrNoMatchingAvailable
		}
		return session.matching, true, nil
	}

	if err := CheckMatching(session.group2, session.group1, matching); err != nil {
		return nil, false, err
	}
	return matching, session.matching != nil && maps.Equal(matching, session.matching), nil
}
