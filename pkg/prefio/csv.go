package prefio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/limaJavier/stablemarriage/pkg/marriage"
	"github.com/samber/lo"
)

// WritePreferences writes pref as a table whose header row holds the members, in group order, and
// whose i-th row holds every member's i-th choice.
func WritePreferences(w io.Writer, members marriage.Group, pref marriage.PreferenceTable) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(members); err != nil {
		return fmt.Errorf("cannot write header: %w", err)
	}

	for rank := range len(members) {
		row := lo.Map(members, func(member string, _ int) string {
			if ranking := pref[member]; rank < len(ranking) {
				return ranking[rank]
			}
			return ""
		})
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("cannot write rank %d: %w", rank, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// ReadPreferences reads a table written by WritePreferences. The members are returned in header order.
// The table is not validated.
func ReadPreferences(r io.Reader) (marriage.Group, marriage.PreferenceTable, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll() // Ragged rows are rejected by the reader
	if err != nil {
		return nil, nil, fmt.Errorf("cannot parse preference table: %w", err)
	}

	if len(records) == 0 {
		return marriage.Group{}, marriage.PreferenceTable{}, nil
	}

	members := marriage.Group(records[0])
	pref := make(marriage.PreferenceTable, len(members))
	for column, member := range members {
		pref[member] = lo.Map(records[1:], func(row []string, _ int) string { return row[column] })
	}

	return members, pref, nil
}

// WritePreferencesFile creates or truncates path and writes pref into it with WritePreferences.
func WritePreferencesFile(path string, members marriage.Group, pref marriage.PreferenceTable) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create preference file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("cannot close preference file: %w", closeErr)
		}
	}()

	return WritePreferences(file, members, pref)
}

// ReadPreferencesFile reads a table written by WritePreferencesFile.
func ReadPreferencesFile(path string) (marriage.Group, marriage.PreferenceTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open preference file: %w", err)
	}
	defer file.Close()

	return ReadPreferences(file)
}

// TablePaths names the pair of table files generated for groups of size n from seed.
func TablePaths(dir string, seed int64, n int) (pref1Path, pref2Path string) {
	pref1Path = filepath.Join(dir, fmt.Sprintf("pref1-seed%d-n%d.csv", seed, n))
	pref2Path = filepath.Join(dir, fmt.Sprintf("pref2-seed%d-n%d.csv", seed, n))
	return pref1Path, pref2Path
}
