package marriage

type rankTableMatcher struct{}

// NewRankTableMatcher returns a Matcher whose disposers compare proposers through precomputed ranks.
func NewRankTableMatcher() Matcher {
	return &rankTableMatcher{}
}

func (matcher *rankTableMatcher) Match(group1, group2 Group, pref1, pref2 PreferenceTable, reverseRoles bool) Matching {
	return match(group1, group2, pref1, pref2, reverseRoles, rankTableAcceptance)
}

func rankTableAcceptance(rankings [][]int) func(b, a, current int) bool {
	n := len(rankings)
	ranks := make([][]int, n)
	for b, ranking := range rankings {
		ranks[b] = make([]int, n)
		for rank, proposer := range ranking {
			ranks[b][proposer] = rank
		}
	}

	rank := func(b, proposer int) int {
		if proposer == unmatched {
			return n // Appended after every real proposer
		}
		return ranks[b][proposer]
	}

	return func(b, a, current int) bool {
		return rank(b, a) < rank(b, current)
	}
}
