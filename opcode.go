//go:build go1.24

package mmb

import (
	"fmt"

	"github.com/trivial-rs/mmb-parser/internal/wire"
)

// Command is a decoded opcode and its zero-extended operand, generic over
// which of the three opcode vocabularies (Statement, Proof, Unify) it
// belongs to. It is an alias of wire.Command so that UnifyStream and
// ProofStream implementations satisfy wire.Sink without an adapter.
type Command[K any] = wire.Command[K]

// Range is an index range, e.g. into a binder arena or a command stream.
// It is an alias of wire.Range for the same reason as Command.
type Range = wire.Range

// Statement, Proof, and Unify share the same on-disk opcode byte layout
// (low 6 bits select the kind, top 2 bits select the operand width) but
// occupy disjoint kind spaces: a byte valid in one vocabulary says nothing
// about its validity in another. Interpreting what a given kind *means* is
// left to callers; the reader only identifies kind, operand, and stream
// boundaries. Statement reserves kind 0 as invalid; Proof and Unify instead
// give kind 0 to their sub-stream terminator (ProofEnd, UnifyEnd), since a
// sub-stream's own End command is what a 0x00 opcode byte decodes to.
//
// The specific kind values below are this reader's own vocabulary
// assignment (see DESIGN.md): the on-disk meaning of a statement/proof/unify
// byte is defined by the verifier that produced the file, not by this
// package, so any assignment that gives Proof/Unify a distinguished,
// zero-valued End is conformant.
type Statement uint8

// Proof is the opcode vocabulary carried by a statement's proof sub-stream.
type Proof uint8

// Unify is the opcode vocabulary carried by a term or theorem's unify
// sub-stream.
type Unify uint8

const (
	StatementSort Statement = iota + 1
	StatementTermDef
	StatementAxiom
	StatementThm
	StatementDef
	StatementLocalDef
	StatementLocalTermDef
	StatementLocalThm
)

const (
	// ProofEnd terminates a proof sub-stream. It is the zero value: an
	// opcode byte of 0x00 decodes to ProofEnd, not to an invalid kind.
	ProofEnd Proof = iota
	ProofTerm
	ProofTermSave
	ProofRef
	ProofDummy
	ProofThm
	ProofThmSave
	ProofHyp
	ProofConv
	ProofRefl
	ProofSym
	ProofCong
	ProofUnfold
	ProofSave
)

const (
	// UnifyEnd terminates a unify sub-stream. It is the zero value: an
	// opcode byte of 0x00 decodes to UnifyEnd, not to an invalid kind.
	UnifyEnd Unify = iota
	UnifyTerm
	UnifyTermSave
	UnifyRef
	UnifyDummy
	UnifyHyp
)

func (s Statement) String() string {
	switch s {
	case StatementSort:
		return "Sort"
	case StatementTermDef:
		return "TermDef"
	case StatementAxiom:
		return "Axiom"
	case StatementThm:
		return "Thm"
	case StatementDef:
		return "Def"
	case StatementLocalDef:
		return "LocalDef"
	case StatementLocalTermDef:
		return "LocalTermDef"
	case StatementLocalThm:
		return "LocalThm"
	default:
		return fmt.Sprintf("Statement(%d)", uint8(s))
	}
}

func (p Proof) String() string {
	switch p {
	case ProofEnd:
		return "End"
	case ProofTerm:
		return "Term"
	case ProofTermSave:
		return "TermSave"
	case ProofRef:
		return "Ref"
	case ProofDummy:
		return "Dummy"
	case ProofThm:
		return "Thm"
	case ProofThmSave:
		return "ThmSave"
	case ProofHyp:
		return "Hyp"
	case ProofConv:
		return "Conv"
	case ProofRefl:
		return "Refl"
	case ProofSym:
		return "Sym"
	case ProofCong:
		return "Cong"
	case ProofUnfold:
		return "Unfold"
	case ProofSave:
		return "Save"
	default:
		return fmt.Sprintf("Proof(%d)", uint8(p))
	}
}

func (u Unify) String() string {
	switch u {
	case UnifyEnd:
		return "End"
	case UnifyTerm:
		return "Term"
	case UnifyTermSave:
		return "TermSave"
	case UnifyRef:
		return "Ref"
	case UnifyDummy:
		return "Dummy"
	case UnifyHyp:
		return "Hyp"
	default:
		return fmt.Sprintf("Unify(%d)", uint8(u))
	}
}

// statementFromByte converts a masked (low 6 bits) opcode byte to a
// Statement kind. Any non-zero kind is accepted: this package does not
// restrict which statement kinds a valid file may contain, beyond the
// universal rule that kind zero is invalid.
func statementFromByte(b byte) (Statement, bool) {
	if b == 0 {
		return 0, false
	}
	return Statement(b), true
}

// proofFromByte converts a masked (low 6 bits) opcode byte to a Proof kind.
// Unlike statementFromByte, byte 0 is a valid kind: it is ProofEnd, the
// proof sub-stream's terminator.
func proofFromByte(b byte) (Proof, bool) {
	return Proof(b), true
}

// unifyFromByte converts a masked (low 6 bits) opcode byte to a Unify kind.
// Byte 0 is a valid kind: it is UnifyEnd, the unify sub-stream's terminator.
func unifyFromByte(b byte) (Unify, bool) {
	return Unify(b), true
}
