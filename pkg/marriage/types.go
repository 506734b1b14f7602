package marriage

import (
	"maps"
	"slices"

	"github.com/samber/lo"
)

// Group is an ordered sequence of distinct identifiers. The empty identifier is reserved.
type Group []string

// PreferenceTable maps every member of one group to its ranking of the other group, most preferred first.
type PreferenceTable map[string][]string

// Matching is a bijection between two groups, keyed by group2 members with their group1 partner as value.
type Matching map[string]string

// Score holds the sum of the partners' ranks for each group. Lower is better.
type Score struct {
	Group1 int
	Group2 int
}

// Clone returns a copy of the table that shares no slices with the receiver
func (pref PreferenceTable) Clone() PreferenceTable {
	if pref == nil {
		return nil
	}
	return lo.MapValues(pref, func(ranking []string, _ string) []string {
		return slices.Clone(ranking)
	})
}

// Rank returns the position of candidate in member's ranking, or -1 if absent.
func (pref PreferenceTable) Rank(member, candidate string) int {
	return slices.Index(pref[member], candidate)
}

// Clone returns a copy of the matching, or nil for a nil matching.
func (matching Matching) Clone() Matching {
	return maps.Clone(matching)
}

// Inverse returns the matching keyed by group1 members.
func (matching Matching) Inverse() map[string]string {
	return lo.Invert(matching)
}
