// Package index implements the optional debug index section: a typed
// table of sub-indexes, of which the name table (see nametable.go) is the
// only kind this reader resolves. Lookup is navigated independently of the
// main sort/term/theorem/statement walk, mirroring how the original reader
// keeps index traversal out of Visitor's required operations.
package index

import (
	"encoding/binary"

	"github.com/trivial-rs/mmb-parser/internal/errs"
	"github.com/trivial-rs/mmb-parser/internal/wire"
)

// entrySize is the on-disk byte size of one index table entry: id (u32),
// 4 bytes padding, ptr (u64).
const entrySize = 16

// NameTableID is the id value ("Name" read little-endian as a u32) that
// marks an index entry as a name table.
const NameTableID = 0x656d614e

// Entry is one decoded index table entry.
type Entry struct {
	ID  uint32
	Ptr uint64
}

// Descriptor is the optional index section: a file-order vector of typed
// entries, each pointing elsewhere in the file to the sub-index it
// describes.
type Descriptor struct {
	file    []byte
	entries []byte
}

// Parse reads the index section starting at ptr: a u64 entry count followed
// by that many 16-byte entries.
func Parse(file []byte, ptr int) (*Descriptor, error) {
	head, err := wire.SliceAt(file, ptr)
	if err != nil {
		return nil, err
	}
	if len(head) < 8 {
		return nil, errs.New(errs.Framing, ptr)
	}
	numEntries := binary.LittleEndian.Uint64(head)

	entries, err := wire.TakeAt(file, ptr+8, int(numEntries)*entrySize)
	if err != nil {
		return nil, err
	}

	return &Descriptor{file: file, entries: entries}, nil
}

// Len returns the number of entries in the index.
func (d *Descriptor) Len() int { return len(d.entries) / entrySize }

// At decodes the i-th entry.
func (d *Descriptor) At(i int) Entry {
	b := d.entries[i*entrySize : i*entrySize+entrySize]
	return Entry{
		ID:  binary.LittleEndian.Uint32(b[0:4]),
		Ptr: binary.LittleEndian.Uint64(b[8:16]),
	}
}

// Iter returns a forward iterator over the index's entries.
func (d *Descriptor) Iter() *EntryIterator {
	return &EntryIterator{d: d}
}

// EntryIterator walks a Descriptor's entries in file order.
type EntryIterator struct {
	d *Descriptor
	i int
}

// Next returns the next entry, or ok=false once the index is exhausted.
func (it *EntryIterator) Next() (entry Entry, ok bool) {
	if it.i >= it.d.Len() {
		return Entry{}, false
	}
	e := it.d.At(it.i)
	it.i++
	return e, true
}

// Find returns the first entry with the given id.
func (d *Descriptor) Find(id uint32) (Entry, bool) {
	it := d.Iter()
	for {
		e, ok := it.Next()
		if !ok {
			return Entry{}, false
		}
		if e.ID == id {
			return e, true
		}
	}
}
