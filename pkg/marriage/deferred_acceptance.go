package marriage

import "github.com/samber/lo"

// unmatched is the partner slot of a disposer who has not accepted anyone yet.
// It ranks after every real proposer.
const unmatched = -1

// acceptance builds, from the disposers' rankings (as proposer indices), the rule deciding whether
// disposer b takes proposer a over its current partner, which may be unmatched.
type acceptance func(rankings [][]int) func(b, a, current int) bool

// match orients the run and keeps the result keyed by group2
func match(group1, group2 Group, pref1, pref2 PreferenceTable, reverseRoles bool, accept acceptance) Matching {
	if !reverseRoles {
		return deferredAcceptance(group1, group2, pref1, pref2, accept)
	}
	return lo.Invert(deferredAcceptance(group2, group1, pref2, pref1, accept))
}

// deferredAcceptance returns the proposer-optimal stable matching, keyed by disposers.
//
// Proposers enter one at a time in group order. The active proposer offers to the head of its
// private list; once accepted, the partner it displaced (if any) becomes the active proposer, and a
// rejected proposer drops the head for good. Lists only shrink, so there are at most n² offers.
func deferredAcceptance(proposers, disposers Group, proposerPrefs, disposerPrefs PreferenceTable, accept acceptance) Matching {
	n := len(proposers)
	proposerIndex, disposerIndex := indices(proposers), indices(disposers)

	//** Private working copies, translated to indices
	proposals := make([][]int, n)
	for i, proposer := range proposers {
		proposals[i] = lo.Map(proposerPrefs[proposer], func(disposer string, _ int) int { return disposerIndex[disposer] })
	}
	rankings := make([][]int, n)
	for j, disposer := range disposers {
		rankings[j] = lo.Map(disposerPrefs[disposer], func(proposer string, _ int) int { return proposerIndex[proposer] })
	}
	prefers := accept(rankings)

	partners := make([]int, n)
	for j := range partners {
		partners[j] = unmatched
	}

	//** Fundamental algorithm
	for k := range n {
		a := k
		for a != unmatched {
			b := proposals[a][0] // a's favourite among those who have not rejected it

			if current := partners[b]; prefers(b, a, current) {
				partners[b] = a
				a = current // The displaced partner (or nobody) proposes next
			}

			if a != unmatched {
				proposals[a] = proposals[a][1:] // b rejected a
			}
		}
	}

	matching := make(Matching, n)
	for j, disposer := range disposers {
		matching[disposer] = proposers[partners[j]]
	}
	return matching
}

// indices maps each member to its position in the group
func indices(group Group) map[string]int {
	index := make(map[string]int, len(group))
	for i, member := range group {
		index[member] = i
	}
	return index
}
