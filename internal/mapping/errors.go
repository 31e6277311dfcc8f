package mapping

import "fmt"

// Error reports a rule failure. The rule's own error stays reachable through
// errors.Is and errors.As.
type Error struct {
	Input  string
	Key    string
	Target string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("could not map %s (%s) to a %s: %v", e.Input, e.Key, e.Target, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
