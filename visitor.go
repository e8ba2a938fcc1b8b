package mmb

// UnifyStream receives the decoded commands of one term or theorem's unify
// sub-stream, in order, ending with a pushed UnifyEnd command. Done reports
// the (start, end) range the stream was given once pushing is complete.
type UnifyStream interface {
	Push(Command[Unify])
	Done() Range
}

// ProofStream receives the decoded commands of one statement's proof
// sub-stream, in order, ending with a pushed ProofEnd command.
type ProofStream interface {
	Push(Command[Proof])
	Done() Range
}

// Visitor receives the parsed contents of an artifact as Visit walks it, in
// file order: sorts, then terms, then theorems, then the statement stream.
// Binder and Sort are left generic so callers can materialize whatever
// representation suits them, mirroring the associated types of the format
// this reader is modeled on.
type Visitor[B any, S any] interface {
	// Binder converts one binder's raw 8-byte word into B.
	Binder(raw uint64) B
	// SortKind converts one sort table byte into S.
	SortKind(raw uint8) S
	// Reserve grows the binder arena by n slots and returns a writable view
	// onto the new slots plus their starting index. ok is false if the
	// arena has no room left.
	Reserve(n int) (slice []B, start int, ok bool)

	// NewUnify starts a fresh scratch sink for one term or theorem's unify
	// sub-stream.
	NewUnify() UnifyStream
	// NewProof starts a fresh scratch sink for one statement's proof
	// sub-stream.
	NewProof() ProofStream

	// Sort is invoked once per sort table entry, in table order.
	Sort(s S)
	// Term is invoked once per term table entry. sortByte is the record's
	// raw sort-table byte, definition bit included; callers that only care
	// about the definition bit can test sortByte&0x80 != 0. unifyBytes is
	// the term's raw unify sub-stream, empty when sortByte carries no
	// definition bit. unify is the range, within the stream most recently
	// returned by NewUnify, that unifyBytes was decoded into; it is the
	// zero Range when unifyBytes is empty.
	Term(sortByte uint8, binders Range, retTy B, unifyBytes []byte, unify Range) error
	// Theorem is invoked once per theorem table entry. unifyBytes is the
	// theorem's raw unify sub-stream, and unify is the range within the
	// stream most recently returned by NewUnify holding its commands.
	Theorem(binders Range, unifyBytes []byte, unify Range) error
	// Statement is invoked once per statement frame in the proof section,
	// in stream order. proof is nil if the statement carried no proof
	// sub-stream (bytes remaining in the frame after the inner opcode).
	Statement(kind Statement, offset int, frame []byte, proof *Range) error
}
