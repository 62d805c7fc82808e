package colormod

import "fmt"

// UnresolvedError describes a construct that could not be interpreted
// as part of a color-mod() expression. It carries the offending token's
// raw text and its byte offset within the declaration value.
type UnresolvedError struct {
	Message string
	Token   string
	Offset  int
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("%s: %q at offset %d", e.Message, e.Token, e.Offset)
}
