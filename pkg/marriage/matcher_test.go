package marriage

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onsi/gomega"
)

func allMatchers() map[string]Matcher {
	return lo.SliceToMap(MatcherNames(), func(name string) (string, Matcher) {
		return name, lo.Must(MatcherByName(name))
	})
}

func TestFindStableMatchingTwoByTwo(t *testing.T) {
	group1, group2, pref1, pref2 := twoByTwo()

	for name, matcher := range allMatchers() {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, Matching{"b0": "a0", "b1": "a1"}, matcher.Match(group1, group2, pref1, pref2, false))
			assert.Equal(t, Matching{"b0": "a1", "b1": "a0"}, matcher.Match(group1, group2, pref1, pref2, true))
		})
	}
}

func TestFindStableMatchingDisplacesPartners(t *testing.T) {
	// a1 takes b0 away from a0, who then settles for b1
	group1 := Group{"a0", "a1", "a2"}
	group2 := Group{"b0", "b1", "b2"}
	pref1 := PreferenceTable{
		"a0": {"b0", "b1", "b2"},
		"a1": {"b0", "b2", "b1"},
		"a2": {"b1", "b0", "b2"},
	}
	pref2 := PreferenceTable{
		"b0": {"a1", "a0", "a2"},
		"b1": {"a0", "a2", "a1"},
		"b2": {"a0", "a1", "a2"},
	}

	for name, matcher := range allMatchers() {
		t.Run(name, func(t *testing.T) {
			matching := matcher.Match(group1, group2, pref1, pref2, false)

			assert.Equal(t, Matching{"b0": "a1", "b1": "a0", "b2": "a2"}, matching)
			assert.True(t, CheckStability(group1, group2, pref1, pref2, matching))
		})
	}
}

func TestFindStableMatchingEmpty(t *testing.T) {
	for _, reverseRoles := range []bool{false, true} {
		matching := FindStableMatching(Group{}, Group{}, PreferenceTable{}, PreferenceTable{}, reverseRoles)

		assert.NotNil(t, matching)
		assert.Empty(t, matching)
	}
}

func TestFindStableMatchingProperties(t *testing.T) {
	g := gomega.NewWithT(t)

	for seed := range int64(40) {
		n := int(seed%12) + 1
		group1, group2, pref1, pref2 := randomInstance(n, seed)

		for _, reverseRoles := range []bool{false, true} {
			expected := FindStableMatching(group1, group2, pref1, pref2, reverseRoles)

			// Bijection
			g.Expect(lo.Keys(expected)).To(gomega.ConsistOf(group2))
			g.Expect(lo.Values(expected)).To(gomega.ConsistOf(group1))
			g.Expect(CheckMatching(group2, group1, expected)).To(gomega.Succeed())

			// Stability with respect to the original tables
			g.Expect(CheckStability(group1, group2, pref1, pref2, expected)).To(gomega.BeTrue())

			// Determinism, whatever the acceptance strategy
			for name, matcher := range allMatchers() {
				actual := matcher.Match(group1, group2, pref1, pref2, reverseRoles)
				assert.Empty(t, cmp.Diff(expected, actual), "matcher %v, seed %d, reversed %v", name, seed, reverseRoles)
			}
		}
	}
}

func TestFindStableMatchingIsProposerOptimal(t *testing.T) {
	for seed := range int64(30) {
		//** Arrange
		n := int(seed%6) + 1
		group1, group2, pref1, pref2 := randomInstance(n, seed)
		stableMatchings := allStableMatchings(group1, group2, pref1, pref2)
		require.NotEmpty(t, stableMatchings)

		//** Act
		group1Proposing := FindStableMatching(group1, group2, pref1, pref2, false)
		group2Proposing := FindStableMatching(group1, group2, pref1, pref2, true)

		//** Assert
		proposed := group1Proposing.Inverse()
		for _, stable := range stableMatchings {
			inverse := stable.Inverse()
			for _, a := range group1 {
				assert.LessOrEqual(t, pref1.Rank(a, proposed[a]), pref1.Rank(a, inverse[a]), "seed %d, member %v", seed, a)
			}
			for _, b := range group2 {
				assert.LessOrEqual(t, pref2.Rank(b, group2Proposing[b]), pref2.Rank(b, stable[b]), "seed %d, member %v", seed, b)
			}
		}
	}
}

func TestFindStableMatchingLeavesPreferencesUntouched(t *testing.T) {
	group1, group2, pref1, pref2 := randomInstance(8, 3)
	original1, original2 := pref1.Clone(), pref2.Clone()

	for _, matcher := range allMatchers() {
		matcher.Match(group1, group2, pref1, pref2, false)
		matcher.Match(group1, group2, pref1, pref2, true)
	}

	assert.Equal(t, original1, pref1)
	assert.Equal(t, original2, pref2)
}

func TestMatcherByName(t *testing.T) {
	assert.Equal(t, []string{"rank", "walk"}, MatcherNames())

	matcher, err := MatcherByName("walk")
	assert.NoError(t, err)
	assert.IsType(t, &listWalkMatcher{}, matcher)

	_, err = MatcherByName("brute-force")
	assert.ErrorIs(t, err, ErrUnknownMatcher)
}
