// Package mmb provides a pure Go reader for the MMB binary proof-artifact
// format used by the mm0 metamathematical verifier. It parses a single
// complete in-memory buffer into an Artifact descriptor and a set of
// zero-copy table and stream scanners; nothing in this package allocates a
// copy of the input, and nothing here performs file I/O.
//
// The package supports:
//   - Header parsing (magic, version, counts, section pointers)
//   - Sort, term, and theorem table scanning
//   - The statement/proof byte-code stream, including its length-prefixed
//     framing
//   - The unify byte-code sub-stream carried by definitions and theorems
//   - The optional debug index and its name table
//
// Basic usage:
//
//	a, err := mmb.Parse(file)
//	if err != nil {
//		return err
//	}
//	err = mmb.Visit(a, myVisitor)
//
// Visit delivers every sort, term, theorem, and statement to a Visitor
// implementation supplied by the caller; this package defines no default
// visitor, matching the Visitor-as-polymorphism-substitute of the format it
// reads. See the collect package for a reference Visitor that materializes
// an Artifact's contents into plain Go values.
package mmb
