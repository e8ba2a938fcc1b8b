package mmb

import "github.com/trivial-rs/mmb-parser/internal/wire"

func isUnifyEnd(u Unify) bool { return u == UnifyEnd }
func isProofEnd(p Proof) bool { return p == ProofEnd }

// Visit walks a parsed Artifact's sort table, term table, theorem table, and
// statement stream, in that order, delivering each entry to v. It stops and
// returns the first error encountered, whether from malformed input or from
// v itself (e.g. a declined arena reservation).
func Visit[B any, S any](a *Artifact, v Visitor[B, S]) error {
	wire.ScanSorts(a.sorts, v.SortKind, v.Sort)

	newUnify := func() wire.ProofSink[Unify] { return v.NewUnify() }

	err := wire.ScanTerms(
		a.file, a.terms, int(a.Header.NumTerms),
		v.Reserve, v.Binder,
		unifyFromByte, isUnifyEnd, newUnify,
		func(sortByte uint8, binders Range, retTy B, unifyBytes []byte, unifyRange Range) error {
			return v.Term(sortByte, binders, retTy, unifyBytes, unifyRange)
		},
	)
	if err != nil {
		return err
	}

	err = wire.ScanTheorems(
		a.file, a.theorems, int(a.Header.NumTheorems),
		v.Reserve, v.Binder,
		unifyFromByte, isUnifyEnd, newUnify,
		func(binders Range, unifyBytes []byte, unifyRange Range) error {
			return v.Theorem(binders, unifyBytes, unifyRange)
		},
	)
	if err != nil {
		return err
	}

	newProof := func() wire.ProofSink[Proof] { return v.NewProof() }
	_, err = wire.ScanStatements(
		a.proofs,
		statementFromByte, proofFromByte, isProofEnd, newProof,
		v.Statement,
	)
	return err
}
