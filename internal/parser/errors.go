package parser

import "fmt"

// MalformedTokenError reports a change token with no digit run. It is
// fatal: the whole parse aborts, no partial log is produced.
type MalformedTokenError struct {
	Token string
}

func (e *MalformedTokenError) Error() string {
	return fmt.Sprintf("no quantity found in %q", e.Token)
}

// MalformedRowError reports a raw log row with no cells. Fatal, like
// MalformedTokenError.
type MalformedRowError struct {
	Index int
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("log row %d is empty", e.Index)
}
