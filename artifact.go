package mmb

import (
	"github.com/trivial-rs/mmb-parser/index"
	"github.com/trivial-rs/mmb-parser/internal/wire"
)

// HeaderSize is the byte size of the fixed MMB header, before the sort
// table.
const HeaderSize = wire.HeaderSize

// Header holds the version and counts decoded from the fixed 40-byte prefix
// of an MMB file. The section pointers are resolved into slices by Parse and
// are not kept here.
type Header struct {
	Version     uint8
	NumSorts    uint8
	NumTerms    uint32
	NumTheorems uint32
}

// Artifact is a parsed MMB file: a thin, zero-copy view over the caller's
// buffer plus the resolved byte ranges of its sections. It performs no
// allocation beyond the Header and the four derived slices; Visit is what
// actually walks the sort table, term table, theorem table, and statement
// stream.
type Artifact struct {
	file []byte

	Header Header

	sorts    []byte
	terms    []byte
	theorems []byte
	proofs   []byte
	indexPtr int // 0 if the file carries no index section
}

// Parse validates an MMB file's header and resolves its section pointers. It
// does not yet decode the sort table, term table, theorem table, or
// statement stream; call Visit for that.
func Parse(file []byte) (*Artifact, error) {
	h, cur, err := wire.ParseHeader(file)
	if err != nil {
		return nil, err
	}

	sorts, err := wire.TakeAt(file, cur.Pos(), int(h.NumSorts))
	if err != nil {
		return nil, err
	}

	terms, err := wire.TakeAt(file, int(h.TermsPtr), int(h.NumTerms)*8)
	if err != nil {
		return nil, err
	}

	theorems, err := wire.TakeAt(file, int(h.TheoremsPtr), int(h.NumTheorems)*8)
	if err != nil {
		return nil, err
	}

	proofs, err := wire.SliceAt(file, int(h.ProofsPtr))
	if err != nil {
		return nil, err
	}

	return &Artifact{
		file: file,
		Header: Header{
			Version:     h.Version,
			NumSorts:    h.NumSorts,
			NumTerms:    h.NumTerms,
			NumTheorems: h.NumTheorems,
		},
		sorts:    sorts,
		terms:    terms,
		theorems: theorems,
		proofs:   proofs,
		indexPtr: int(h.IndexPtr),
	}, nil
}

// HasIndex reports whether the file declared a non-zero index pointer.
func (a *Artifact) HasIndex() bool { return a.indexPtr != 0 }

// Index parses and returns the file's index descriptor. It returns
// ok=false, with a nil error, if the file declared no index section.
func (a *Artifact) Index() (desc *index.Descriptor, ok bool, err error) {
	if a.indexPtr == 0 {
		return nil, false, nil
	}
	desc, err = index.Parse(a.file, a.indexPtr)
	if err != nil {
		return nil, false, err
	}
	return desc, true, nil
}

// NameTable is a convenience that parses the index (if present) and
// resolves its name table.
func (a *Artifact) NameTable() (*index.NameTable, bool, error) {
	desc, ok, err := a.Index()
	if err != nil || !ok {
		return nil, ok, err
	}
	return desc.NameTable(int(a.Header.NumSorts), int(a.Header.NumTerms), int(a.Header.NumTheorems))
}

// File returns the complete underlying buffer the artifact was parsed from,
// for resolving index-section pointers that reach back into the file.
func (a *Artifact) File() []byte { return a.file }
