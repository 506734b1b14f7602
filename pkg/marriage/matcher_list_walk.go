package marriage

type listWalkMatcher struct{}

// NewListWalkMatcher returns a Matcher whose disposers scan their ranking from the top until they
// meet either the proposer or their current partner. It needs no rank tables.
func NewListWalkMatcher() Matcher {
	return &listWalkMatcher{}
}

func (matcher *listWalkMatcher) Match(group1, group2 Group, pref1, pref2 PreferenceTable, reverseRoles bool) Matching {
	return match(group1, group2, pref1, pref2, reverseRoles, listWalkAcceptance)
}

func listWalkAcceptance(rankings [][]int) func(b, a, current int) bool {
	return func(b, a, current int) bool {
		for _, suitor := range rankings[b] {
			if suitor == a {
				return true
			} else if suitor == current {
				return false
			}
		}
		return true // current is unmatched, which sits at the end of every list
	}
}
