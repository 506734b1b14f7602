package marriage

import "errors"

var (
	// ErrInvalidGroup indicates groups of different size, duplicated members or a reserved identifier.
	ErrInvalidGroup = errors.New("marriage: invalid group")
	// ErrInvalidPreference indicates a preference table that does not match its group or the opposite group.
	ErrInvalidPreference = errors.New("marriage: invalid preference table")
	// ErrInvalidMatching indicates a matching that is not a bijection between group2 and group1.
	ErrInvalidMatching = errors.New("marriage: invalid matching")
	// ErrMissingArgument indicates that only one of the two preference tables was supplied.
	ErrMissingArgument = errors.New("marriage: missing argument")
	// ErrNoMatchingAvailable indicates that no matching was supplied nor computed.
	ErrNoMatchingAvailable = errors.New("marriage: no matching found")
	// ErrUnknownMatcher indicates a matcher name that is not registered.
	ErrUnknownMatcher = errors.New("marriage: unknown matcher")
)
