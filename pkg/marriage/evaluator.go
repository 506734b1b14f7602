package marriage

// CheckStability reports whether matching has no blocking pair with respect to pref1 and pref2.
//
// For every member a of group2, each suitor B that a ranks above its partner is checked: if B also
// ranks a above its own partner, (B, a) is a blocking pair. Lists are only scanned as far as needed,
// so no rank tables are built. Inputs are expected to be valid.
func CheckStability(group1, group2 Group, pref1, pref2 PreferenceTable, matching Matching) bool {
	return checkStability(group2, pref1, pref2, matching)
}

// ScoreMatching sums, over every pair, the rank each partner holds in the other's list.
// The second result reports whether the matching is stable; an unstable matching is still scored.
func ScoreMatching(group1, group2 Group, pref1, pref2 PreferenceTable, matching Matching) (Score, bool) {
	var score Score
	for _, a := range group2 {
		partner := matching[a]
		score.Group1 += pref1.Rank(partner, a)
		score.Group2 += pref2.Rank(a, partner)
	}

	return score, checkStability(group2, pref1, pref2, matching)
}

func checkStability(group2 Group, pref1, pref2 PreferenceTable, matching Matching) bool {
	inverse := matching.Inverse()

	for _, a := range group2 {
		partner := matching[a]
		for _, suitor := range pref2[a] {
			if suitor == partner {
				break
			}
			if prefers(pref1[suitor], a, inverse[suitor]) {
				return false
			}
		}
	}

	return true
}

// prefers reports whether ranking puts candidate above current, stopping at whichever comes first
func prefers(ranking []string, candidate, current string) bool {
	for _, member := range ranking {
		if member == candidate {
			return true
		} else if member == current {
			return false
		}
	}
	return false
}
