package core

import "github.com/google/uuid"

// RunID identifies a single engine run in log output.
type RunID string

// NewRunID returns a fresh random identifier.
func NewRunID() RunID {
	return RunID(uuid.NewString())
}

// Short returns the first block of the identifier, enough to tell runs apart
// in a terminal.
func (id RunID) Short() string {
	s := string(id)
	if len(s) > 8 {
		return s[:8]
	}
	return s
}

func (id RunID) String() string {
	return string(id)
}

// Valid reports whether id parses as a UUID.
func (id RunID) Valid() bool {
	return uuid.Validate(string(id)) == nil
}
