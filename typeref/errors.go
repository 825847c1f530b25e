package typeref

import "fmt"

type ErrorKind string

const (
	// UnterminatedTypeRef means no named type was found within MaxDepth
	// wrappers, or the chain ended in a wrapper.
	UnterminatedTypeRef ErrorKind = "UnterminatedTypeRef"
	// MalformedTypeRef means the chain holds a kind that cannot appear where it
	// does.
	MalformedTypeRef ErrorKind = "MalformedTypeRef"
)

type Error struct {
	Kind     ErrorKind
	TypeName string
	Depth    int
	Reason   string
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnterminatedTypeRef:
		return fmt.Sprintf("unterminated type reference: no named type after %d wrappers (max %d)", e.Depth, MaxDepth)
	case MalformedTypeRef:
		if e.TypeName != "" {
			return fmt.Sprintf("malformed type reference at depth %d (%s): %s", e.Depth, e.TypeName, e.Reason)
		}
		return fmt.Sprintf("malformed type reference at depth %d: %s", e.Depth, e.Reason)
	}
	return fmt.Sprintf("type reference error %s", e.Kind)
}
