package mmb

import "github.com/trivial-rs/mmb-parser/internal/errs"

// Kind classifies why a parse operation failed.
type Kind = errs.Kind

const (
	// InvalidCommand marks an opcode whose low 6 bits do not decode to a
	// member of its vocabulary, or a header whose magic tag does not read
	// "MM0B".
	InvalidCommand = errs.InvalidCommand
	// Memory marks a Visitor declining a binder-slice reservation.
	Memory = errs.Memory
	// Framing marks a fixed-width read running off the end of its
	// enclosing slice, a declared length that overruns its buffer, or an
	// out-of-bounds section pointer.
	Framing = errs.Framing
)

// ParseError is returned by every failing operation in this package. Pos is
// the byte offset, relative to the slice the failing operation was given, at
// which the failure was detected. Recover it with errors.As, or compare
// against a Kind with errors.Is(err, &mmb.ParseError{Kind: mmb.Framing}).
type ParseError = errs.ParseError
