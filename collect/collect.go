// Package collect provides a reference mmb.Visitor that materializes a
// parsed Artifact's sorts, terms, theorems, and statements into plain Go
// values, for callers that want a concrete result rather than a callback
// walk. It exists as a convenience and as the integration-test vehicle for
// the rest of this module; nothing else in this module depends on it.
package collect

import (
	mmb "github.com/trivial-rs/mmb-parser"
	"github.com/trivial-rs/mmb-parser/arena"
)

// Binder is the collected representation of one binder word: the raw
// 8-byte value, uninterpreted.
type Binder uint64

// Sort is the collected representation of one sort table byte.
type Sort uint8

// Term is one collected term table entry.
type Term struct {
	SortByte   uint8
	Binders    []Binder
	RetType    Binder
	UnifyBytes []byte
	Unify      []mmb.Command[mmb.Unify]
}

// IsDef reports whether this term's sort byte carries the definition bit.
func (t Term) IsDef() bool { return t.SortByte&0x80 != 0 }

// Theorem is one collected theorem table entry.
type Theorem struct {
	Binders    []Binder
	UnifyBytes []byte
	Unify      []mmb.Command[mmb.Unify]
}

// Statement is one collected statement-stream frame.
type Statement struct {
	Kind   mmb.Statement
	Offset int
	Frame  []byte
	Proof  []mmb.Command[mmb.Proof] // nil if the frame carried no proof sub-stream
}

// Collector is an mmb.Visitor[Binder, Sort] that appends every visited
// entry to its exported slices, in file order.
type Collector struct {
	arena *arena.Arena[Binder]

	Sorts      []Sort
	Terms      []Term
	Theorems   []Theorem
	Statements []Statement

	pendingUnify *unifySink
	pendingProof *proofSink
}

// New returns a Collector with an unbounded binder arena.
func New() *Collector {
	return &Collector{arena: arena.New[Binder]()}
}

// NewLimited returns a Collector whose binder arena refuses reservations
// once it would hold more than maxBinders elements, exercising the Memory
// error path a hostile or corrupt artifact can trigger.
func NewLimited(maxBinders int) *Collector {
	return &Collector{arena: arena.NewLimited[Binder](maxBinders)}
}

func (c *Collector) Binder(raw uint64) Binder { return Binder(raw) }
func (c *Collector) SortKind(raw uint8) Sort  { return Sort(raw) }

func (c *Collector) Reserve(n int) ([]Binder, int, bool) {
	return c.arena.Reserve(n)
}

func (c *Collector) NewUnify() mmb.UnifyStream {
	s := &unifySink{}
	c.pendingUnify = s
	return s
}

func (c *Collector) NewProof() mmb.ProofStream {
	s := &proofSink{}
	c.pendingProof = s
	return s
}

func (c *Collector) Sort(s Sort) {
	c.Sorts = append(c.Sorts, s)
}

func (c *Collector) Term(sortByte uint8, binders mmb.Range, retTy Binder, unifyBytes []byte, unify mmb.Range) error {
	b := append([]Binder(nil), c.arena.Slice(binders.Start, binders.End)...)

	var u []mmb.Command[mmb.Unify]
	if sortByte&0x80 != 0 {
		u = c.pendingUnify.commands[unify.Start:unify.End]
	}

	c.Terms = append(c.Terms, Term{SortByte: sortByte, Binders: b, RetType: retTy, UnifyBytes: unifyBytes, Unify: u})
	return nil
}

func (c *Collector) Theorem(binders mmb.Range, unifyBytes []byte, unify mmb.Range) error {
	b := append([]Binder(nil), c.arena.Slice(binders.Start, binders.End)...)
	u := c.pendingUnify.commands[unify.Start:unify.End]

	c.Theorems = append(c.Theorems, Theorem{Binders: b, UnifyBytes: unifyBytes, Unify: u})
	return nil
}

func (c *Collector) Statement(kind mmb.Statement, offset int, frame []byte, proof *mmb.Range) error {
	frameCopy := append([]byte(nil), frame...)

	var p []mmb.Command[mmb.Proof]
	if proof != nil {
		p = c.pendingProof.commands[proof.Start:proof.End]
	}

	c.Statements = append(c.Statements, Statement{Kind: kind, Offset: offset, Frame: frameCopy, Proof: p})
	return nil
}

type unifySink struct {
	commands []mmb.Command[mmb.Unify]
}

func (s *unifySink) Push(c mmb.Command[mmb.Unify]) {
	s.commands = append(s.commands, c)
}

func (s *unifySink) Done() mmb.Range {
	return mmb.Range{Start: 0, End: len(s.commands)}
}

type proofSink struct {
	commands []mmb.Command[mmb.Proof]
}

func (s *proofSink) Push(c mmb.Command[mmb.Proof]) {
	s.commands = append(s.commands, c)
}

func (s *proofSink) Done() mmb.Range {
	return mmb.Range{Start: 0, End: len(s.commands)}
}
