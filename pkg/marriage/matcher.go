package marriage

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// Matcher computes a stable matching between two groups by deferred acceptance.
//
// The members of group1 propose, unless reverseRoles is set, in which case the members of group2 do.
// Either way the returned matching is keyed by group2 members. Inputs are expected to be valid.
type Matcher interface {
	Match(group1, group2 Group, pref1, pref2 PreferenceTable, reverseRoles bool) Matching
}

var matchers = map[string]func() Matcher{
	"rank": NewRankTableMatcher,
	"walk": NewListWalkMatcher,
}

// MatcherByName returns the matcher registered under name ("rank" or "walk")
func MatcherByName(name string) (Matcher, error) {
	newMatcher, ok := matchers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q, allowed values are %q", ErrUnknownMatcher, name, MatcherNames())
	}
	return newMatcher(), nil
}

// MatcherNames returns the registered matcher names in sorted order
func MatcherNames() []string {
	names := lo.Keys(matchers)
	slices.Sort(names)
	return names
}

// FindStableMatching runs deferred acceptance with the default matcher.
func FindStableMatching(group1, group2 Group, pref1, pref2 PreferenceTable, reverseRoles bool) Matching {
	return NewRankTableMatcher().Match(group1, group2, pref1, pref2, reverseRoles)
}
