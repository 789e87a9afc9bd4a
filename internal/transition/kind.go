// Package transition holds the guard rules for relationship state changes.
// Every rule is a pure function of the actor, the current state and the
// decision time; none of them touch storage.
package transition

// Kind tags why a transition was denied.
type Kind string

const (
	KindNone              Kind = ""
	KindSelfReference     Kind = "self_reference"
	KindAlreadyExists     Kind = "already_exists"
	KindAlreadyRegistered Kind = "already_registered"
	KindInvalidState      Kind = "invalid_state"
	KindForbidden         Kind = "forbidden"
	KindNotFound          Kind = "not_found"
	KindNotRegistered     Kind = "not_registered"
	KindDeadlinePassed    Kind = "deadline_passed"
	KindFull              Kind = "full"
	KindNotOpen           Kind = "not_open"
)

var messages = map[Kind]string{
	KindSelfReference:     "cannot create a relationship with yourself",
	KindAlreadyExists:     "relationship already exists",
	KindAlreadyRegistered: "already registered for this event",
	KindInvalidState:      "action not allowed in the current state",
	KindForbidden:         "not allowed to perform this action",
	KindNotFound:          "relationship not found",
	KindNotRegistered:     "not registered for this event",
	KindDeadlinePassed:    "deadline has passed",
	KindFull:              "event is full",
	KindNotOpen:           "not open",
}

// parent maps narrower kinds onto the broader kind they specialise.
var parent = map[Kind]Kind{
	KindAlreadyRegistered: KindAlreadyExists,
	KindNotRegistered:     KindNotFound,
}

func (k Kind) Message() string {
	if m, ok := messages[k]; ok {
		return m
	}
	return string(k)
}

// Violation is the error form of a denied Outcome.
type Violation struct {
	Kind   Kind
	Detail string
}

func (v *Violation) Error() string {
	if v.Detail != "" {
		return v.Detail
	}
	return v.Kind.Message()
}

// Is matches sentinels of the same kind, and of the parent kind.
func (v *Violation) Is(target error) bool {
	t, ok := target.(*Violation)
	if !ok {
		return false
	}
	return t.Kind == v.Kind || parent[v.Kind] == t.Kind
}

var (
	ErrSelfReference     = &Violation{Kind: KindSelfReference}
	ErrAlreadyExists     = &Violation{Kind: KindAlreadyExists}
	ErrAlreadyRegistered = &Violation{Kind: KindAlreadyRegistered}
	ErrInvalidState      = &Violation{Kind: KindInvalidState}
	ErrForbidden         = &Violation{Kind: KindForbidden}
	ErrNotFound          = &Violation{Kind: KindNotFound}
	ErrNotRegistered     = &Violation{Kind: KindNotRegistered}
	ErrDeadlinePassed    = &Violation{Kind: KindDeadlinePassed}
	ErrFull              = &Violation{Kind: KindFull}
	ErrNotOpen           = &Violation{Kind: KindNotOpen}
)

// Deny builds a Violation with an optional detail message.
func Deny(kind Kind, detail string) *Violation {
	return &Violation{Kind: kind, Detail: detail}
}
