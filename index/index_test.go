package index

import (
	"encoding/binary"
	"testing"
)

func u64le(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

func nulName(s string) []byte {
	return append([]byte(s), 0)
}

func TestDescriptor_FindNameTable(t *testing.T) {
	// Layout: [8 bytes padding][index section][name-table block][names]
	var file []byte
	file = append(file, make([]byte, 8)...) // unrelated leading bytes

	indexPtr := len(file)
	// num_entries = 1
	file = append(file, u64le(1)...)
	// placeholder for the one entry, patched below once nameTablePtr is known
	entryOff := len(file)
	file = append(file, make([]byte, entrySize)...)

	nameTablePtr := len(file)
	// one sort entry, one term entry, zero theorem entries
	sortNamePtr := 0 // patched below
	termNamePtr := 0

	sortEntryOff := len(file)
	file = append(file, make([]byte, nameEntrySize)...) // sort entry
	termEntryOff := len(file)
	file = append(file, make([]byte, nameEntrySize)...) // term entry

	sortNamePtr = len(file)
	file = append(file, nulName("s")...)
	termNamePtr = len(file)
	file = append(file, nulName("t")...)

	binary.LittleEndian.PutUint64(file[sortEntryOff+8:sortEntryOff+16], uint64(sortNamePtr))
	binary.LittleEndian.PutUint64(file[termEntryOff+8:termEntryOff+16], uint64(termNamePtr))

	// patch the index entry: id="Name", ptr=nameTablePtr
	binary.LittleEndian.PutUint32(file[entryOff:entryOff+4], NameTableID)
	binary.LittleEndian.PutUint64(file[entryOff+8:entryOff+16], uint64(nameTablePtr))

	desc, err := Parse(file, indexPtr)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if desc.Len() != 1 {
		t.Fatalf("Len = %d, want 1", desc.Len())
	}
	entry, ok := desc.Find(NameTableID)
	if !ok {
		t.Fatal("expected a name-table entry")
	}
	if entry.ID != NameTableID {
		t.Fatalf("ID = 0x%x, want 0x%x", entry.ID, NameTableID)
	}

	nt, ok, err := desc.NameTable(1, 1, 0)
	if err != nil {
		t.Fatalf("NameTable: %v", err)
	}
	if !ok {
		t.Fatal("expected a name table")
	}
	if nt.Sorts.Len() != 1 || nt.Terms.Len() != 1 || nt.Theorems.Len() != 0 {
		t.Fatalf("section lengths = %d/%d/%d", nt.Sorts.Len(), nt.Terms.Len(), nt.Theorems.Len())
	}

	sortName, err := nt.Sorts.Get(0)
	if err != nil {
		t.Fatalf("Sorts.Get: %v", err)
	}
	if string(sortName.Name) != "s" {
		t.Fatalf("sort name = %q, want %q", sortName.Name, "s")
	}

	termName, err := nt.Terms.Get(0)
	if err != nil {
		t.Fatalf("Terms.Get: %v", err)
	}
	if string(termName.Name) != "t" {
		t.Fatalf("term name = %q, want %q", termName.Name, "t")
	}
}

func TestDescriptor_NoMatchingEntry(t *testing.T) {
	var file []byte
	indexPtr := len(file)
	file = append(file, u64le(0)...) // zero entries

	desc, err := Parse(file, indexPtr)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := desc.Find(NameTableID); ok {
		t.Fatal("expected no name-table entry")
	}
	if _, ok, err := desc.NameTable(0, 0, 0); err != nil || ok {
		t.Fatalf("NameTable: ok=%v err=%v, want ok=false err=nil", ok, err)
	}
}

func TestEntryIterator(t *testing.T) {
	var file []byte
	indexPtr := len(file)
	file = append(file, u64le(2)...)
	e0 := len(file)
	file = append(file, make([]byte, entrySize*2)...)
	binary.LittleEndian.PutUint32(file[e0:e0+4], 111)
	binary.LittleEndian.PutUint32(file[e0+entrySize:e0+entrySize+4], 222)

	desc, err := Parse(file, indexPtr)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	it := desc.Iter()
	var ids []uint32
	for {
		e, ok := it.Next()
		if !ok {
			break
		}
		ids = append(ids, e.ID)
	}
	if len(ids) != 2 || ids[0] != 111 || ids[1] != 222 {
		t.Fatalf("ids = %v", ids)
	}
}

func TestNameSection_MissingNul(t *testing.T) {
	var file []byte
	indexPtr := len(file)
	file = append(file, u64le(1)...)
	entryOff := len(file)
	file = append(file, make([]byte, entrySize)...)

	nameTablePtr := len(file)
	sortEntryOff := len(file)
	file = append(file, make([]byte, nameEntrySize)...)
	namePtr := len(file)
	file = append(file, []byte("no terminator")...) // no NUL byte

	binary.LittleEndian.PutUint64(file[sortEntryOff+8:sortEntryOff+16], uint64(namePtr))
	binary.LittleEndian.PutUint32(file[entryOff:entryOff+4], NameTableID)
	binary.LittleEndian.PutUint64(file[entryOff+8:entryOff+16], uint64(nameTablePtr))

	desc, err := Parse(file, indexPtr)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	nt, ok, err := desc.NameTable(1, 0, 0)
	if err != nil || !ok {
		t.Fatalf("NameTable: ok=%v err=%v", ok, err)
	}
	if _, err := nt.Sorts.Get(0); err == nil {
		t.Fatal("expected error for missing NUL terminator")
	}
}
