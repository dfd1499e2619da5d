package deposit

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidDiscoveryYear is logged when a discovery year falls outside
	// [MinDiscoveryYear, current year].
	ErrInvalidDiscoveryYear = errors.New("invalid discovery year")

	// ErrInvalidQuantity is logged when an extracted quantity is negative or an
	// extraction amount is not positive.
	ErrInvalidQuantity = errors.New("invalid quantity value")

	// ErrUnknownCategory is returned when a category name cannot be parsed.
	ErrUnknownCategory = errors.New("unknown category")
)

// ErrorLog is an append-only record of rejected mutations.
type ErrorLog struct {
	entries []error
}

func (l *ErrorLog) add(err error) {
	l.entries = append(l.entries, err)
}

// Len returns the number of recorded entries.
func (l *ErrorLog) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the recorded entries in insertion order.
func (l *ErrorLog) Entries() []error {
	out := make([]error, len(l.entries))
	copy(out, l.entries)
	return out
}

// Err joins all entries into a single error, or returns nil if the log is empty.
func (l *ErrorLog) Err() error {
	return errors.Join(l.entries...)
}

// String renders one entry per line, each terminated by a newline.
func (l *ErrorLog) String() string {
	var sb strings.Builder
	for _, e := range l.entries {
		sb.WriteString(e.Error())
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (l *ErrorLog) clone() ErrorLog {
	return ErrorLog{entries: l.Entries()}
}
