package marriage

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// reservedIdentifier cannot name a group member
const reservedIdentifier = ""

// CheckGroups verifies that group1 and group2 form a valid pair: same size, no duplicates and no reserved identifier.
func CheckGroups(group1, group2 Group) error {
	if len(group1) != len(group2) {
		return fmt.Errorf("%w: groups must be of same size: %d != %d", ErrInvalidGroup, len(group1), len(group2))
	}

	for _, group := range []Group{group1, group2} {
		if duplicates := lo.FindDuplicates(group); len(duplicates) > 0 {
			return fmt.Errorf("%w: groups must not contain duplicates: %q", ErrInvalidGroup, duplicates)
		}
		if lo.Contains(group, reservedIdentifier) {
			return fmt.Errorf("%w: group members cannot have name %q", ErrInvalidGroup, reservedIdentifier)
		}
	}

	return nil
}

// CheckPreferences verifies that pref1 ranks group2 for every member of group1 and pref2 ranks group1 for every member of group2.
func CheckPreferences(group1, group2 Group, pref1, pref2 PreferenceTable) error {
	if err := checkTable(pref1, group1, group2, "pref1"); err != nil {
		return err
	}
	return checkTable(pref2, group2, group1, "pref2")
}

func checkTable(pref PreferenceTable, members, candidates Group, name string) error {
	//** Keys of the table must match the group
	if !sameElements(lo.Keys(pref), members) {
		return fmt.Errorf("%w: keys of %v must match group: %q", ErrInvalidPreference, name, members)
	}

	//** Every ranking must hold each candidate exactly once
	for _, member := range members {
		if !sameElements(pref[member], candidates) {
			return fmt.Errorf("%w: %v[%q] must rank every member of the other group exactly once: %q", ErrInvalidPreference, name, member, pref[member])
		}
	}

	return nil
}

// CheckMatching verifies that matching is a bijection whose keys are group2 and whose values are group1.
func CheckMatching(group2, group1 Group, matching Matching) error {
	if matching == nil {
		return fmt.Errorf("%w: matching must not be nil", ErrInvalidMatching)
	}

	if !sameElements(lo.Keys(matching), group2) {
		return fmt.Errorf("%w: keys of matching must be members of group 2", ErrInvalidMatching)
	}

	values := lo.Values(matching)
	if duplicates := lo.FindDuplicates(values); len(duplicates) > 0 {
		return fmt.Errorf("%w: members of group 1 matched more than once: %q", ErrInvalidMatching, duplicates)
	}
	if !sameElements(values, group1) {
		return fmt.Errorf("%w: values of matching must be members of group 1", ErrInvalidMatching)
	}

	return nil
}

// sameElements compares two slices as multisets
func sameElements(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	sortedA, sortedB := slices.Clone(a), slices.Clone(b)
	slices.Sort(sortedA)
	slices.Sort(sortedB)
	return slices.Equal(sortedA, sortedB)
}
