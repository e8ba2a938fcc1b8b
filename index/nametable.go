package index

import (
	"encoding/binary"

	"github.com/trivial-rs/mmb-parser/internal/errs"
	"github.com/trivial-rs/mmb-parser/internal/wire"
)

// nameEntrySize is the on-disk byte size of one name entry: decl_ptr (u64),
// name_ptr (u64).
const nameEntrySize = 16

// Name is one decoded name entry: the declaration it names, and the
// resolved NUL-terminated (exclusive) name bytes.
type Name struct {
	DeclPtr uint64
	Name    []byte
}

// NameTable partitions a name table's entry vector into sort, term, and
// theorem sub-sections, in that file order.
type NameTable struct {
	Sorts    NameSection
	Terms    NameSection
	Theorems NameSection
}

// NameTable resolves the index's name-table entry, if present, and
// partitions its entries according to numSorts, numTerms, and numTheorems.
func (d *Descriptor) NameTable(numSorts, numTerms, numTheorems int) (*NameTable, bool, error) {
	entry, ok := d.Find(NameTableID)
	if !ok {
		return nil, false, nil
	}

	total := numSorts + numTerms + numTheorems
	block, err := wire.TakeAt(d.file, int(entry.Ptr), total*nameEntrySize)
	if err != nil {
		return nil, false, err
	}

	sorts := block[:numSorts*nameEntrySize]
	block = block[numSorts*nameEntrySize:]
	terms := block[:numTerms*nameEntrySize]
	block = block[numTerms*nameEntrySize:]
	theorems := block[:numTheorems*nameEntrySize]

	return &NameTable{
		Sorts:    NameSection{file: d.file, entries: sorts},
		Terms:    NameSection{file: d.file, entries: terms},
		Theorems: NameSection{file: d.file, entries: theorems},
	}, true, nil
}

// NameSection is one sort/term/theorem partition of a name table, exposing
// random-access lookup and forward iteration over its entries.
type NameSection struct {
	file    []byte
	entries []byte
}

// Len returns the number of name entries in this section.
func (s NameSection) Len() int { return len(s.entries) / nameEntrySize }

// Get decodes and resolves the i-th name entry.
func (s NameSection) Get(i int) (Name, error) {
	if i < 0 || i >= s.Len() {
		return Name{}, errs.New(errs.Framing, i*nameEntrySize)
	}
	b := s.entries[i*nameEntrySize : i*nameEntrySize+nameEntrySize]
	declPtr := binary.LittleEndian.Uint64(b[0:8])
	namePtr := binary.LittleEndian.Uint64(b[8:16])

	tail, err := wire.SliceAt(s.file, int(namePtr))
	if err != nil {
		return Name{}, err
	}
	name, err := wire.NulTerminated(tail, int(namePtr))
	if err != nil {
		return Name{}, err
	}

	return Name{DeclPtr: declPtr, Name: name}, nil
}

// Iter returns a forward iterator over this section's name entries.
func (s NameSection) Iter() *NameIterator {
	return &NameIterator{s: s}
}

// NameIterator walks a NameSection's entries in file order.
type NameIterator struct {
	s NameSection
	i int
}

// Next resolves and returns the next name entry, or ok=false once the
// section is exhausted. err is non-nil if resolution fails; the iterator
// should not be advanced further after an error.
func (it *NameIterator) Next() (name Name, ok bool, err error) {
	if it.i >= it.s.Len() {
		return Name{}, false, nil
	}
	n, err := it.s.Get(it.i)
	if err != nil {
		return Name{}, false, err
	}
	it.i++
	return n, true, nil
}
