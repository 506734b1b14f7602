package marriage

// twoByTwo is a small instance where each side gets its first choice when it proposes
func twoByTwo() (Group, Group, PreferenceTable, PreferenceTable) {
	group1 := Group{"a0", "a1"}
	group2 := Group{"b0", "b1"}
	pref1 := PreferenceTable{
		"a0": {"b0", "b1"},
		"a1": {"b1", "b0"},
	}
	pref2 := PreferenceTable{
		"b0": {"a1", "a0"},
		"b1": {"a0", "a1"},
	}
	return group1, group2, pref1, pref2
}

// sharedFavourites is an instance where everybody agrees on who is most desirable
func sharedFavourites() (Group, Group, PreferenceTable, PreferenceTable) {
	group1 := Group{"a0", "a1"}
	group2 := Group{"b0", "b1"}
	pref1 := PreferenceTable{
		"a0": {"b0", "b1"},
		"a1": {"b0", "b1"},
	}
	pref2 := PreferenceTable{
		"b0": {"a0", "a1"},
		"b1": {"a0", "a1"},
	}
	return group1, group2, pref1, pref2
}

func randomInstance(n int, seed int64) (Group, Group, PreferenceTable, PreferenceTable) {
	group1, group2 := NumberedGroups(n)
	pref1, pref2 := RandomPreferences(group1, group2, NewRand(seed))
	return group1, group2, pref1, pref2
}

// allStableMatchings enumerates every bijection between the groups and keeps the stable ones
func allStableMatchings(group1, group2 Group, pref1, pref2 PreferenceTable) []Matching {
	stable := make([]Matching, 0)
	for _, permutation := range permutations(group1) {
		matching := make(Matching, len(group2))
		for i, member := range group2 {
			matching[member] = permutation[i]
		}
		if CheckStability(group1, group2, pref1, pref2, matching) {
			stable = append(stable, matching)
		}
	}
	return stable
}

func permutations(group Group) [][]string {
	if len(group) == 0 {
		return [][]string{{}}
	}
	result := make([][]string, 0)
	for i, head := range group {
		rest := append(append(Group{}, group[:i]...), group[i+1:]...)
		for _, tail := range permutations(rest) {
			result = append(result, append([]string{head}, tail...))
		}
	}
	return result
}
