package marriage

import (
	"math/rand"
	"slices"
	"strconv"
	"time"

	"github.com/samber/lo"
)

// NewRand returns a pseudo-random source seeded with seed, for reproducible preference tables.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// RandomPreferences draws a uniformly random ranking of group2 for every member of group1, then a
// uniformly random ranking of group1 for every member of group2. Groups are expected to be valid.
//
// Rankings are drawn in group order from rng, so the same seed always yields the same tables.
// A nil rng is replaced by a time-seeded source.
func RandomPreferences(group1, group2 Group, rng *rand.Rand) (pref1, pref2 PreferenceTable) {
	if rng == nil {
		rng = NewRand(time.Now().UnixNano())
	}
	pref1 = randomTable(group1, group2, rng)
	pref2 = randomTable(group2, group1, rng)
	return pref1, pref2
}

func randomTable(members, candidates Group, rng *rand.Rand) PreferenceTable {
	pref := make(PreferenceTable, len(members))
	for _, member := range members {
		ranking := slices.Clone([]string(candidates))
		rng.Shuffle(len(ranking), func(i, j int) { // Fisher-Yates
			ranking[i], ranking[j] = ranking[j], ranking[i]
		})
		pref[member] = ranking
	}
	return pref
}

// NumberedGroups returns the groups a0..a{n-1} and b0..b{n-1}.
func NumberedGroups(n int) (group1, group2 Group) {
	group1 = lo.Times(n, func(i int) string { return "a" + strconv.Itoa(i) })
	group2 = lo.Times(n, func(i int) string { return "b" + strconv.Itoa(i) })
	return group1, group2
}
