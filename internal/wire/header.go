package wire

import "github.com/trivial-rs/mmb-parser/internal/errs"

// HeaderSize is the byte size of the fixed MMB header, before the sort table.
const HeaderSize = 40

// Magic is the 4-byte tag every MMB file starts with ("MM0B").
var Magic = [4]byte{0x4D, 0x4D, 0x30, 0x42}

// Header holds the fixed-size fields of an MMB file header, decoded but not
// yet resolved into section views.
type Header struct {
	Version     uint8
	NumSorts    uint8
	NumTerms    uint32
	NumTheorems uint32
	TermsPtr    uint32
	TheoremsPtr uint32
	ProofsPtr   uint32
	IndexPtr    uint64
}

// ParseHeader validates the magic tag and decodes the 40-byte header. It
// returns the header and a cursor positioned immediately after it, i.e. at
// the start of the sort table.
func ParseHeader(file []byte) (Header, Cursor, error) {
	c := NewCursor(file, 0)

	if err := c.Tag(Magic[:]); err != nil {
		return Header{}, Cursor{}, err
	}

	var h Header
	var err error

	if h.Version, err = c.U8(); err != nil {
		return Header{}, Cursor{}, err
	}
	if h.NumSorts, err = c.U8(); err != nil {
		return Header{}, Cursor{}, err
	}
	if err = c.Skip(2); err != nil { // reserved
		return Header{}, Cursor{}, err
	}
	if h.NumTerms, err = c.U32(); err != nil {
		return Header{}, Cursor{}, err
	}
	if h.NumTheorems, err = c.U32(); err != nil {
		return Header{}, Cursor{}, err
	}
	if h.TermsPtr, err = c.U32(); err != nil {
		return Header{}, Cursor{}, err
	}
	if h.TheoremsPtr, err = c.U32(); err != nil {
		return Header{}, Cursor{}, err
	}
	if h.ProofsPtr, err = c.U32(); err != nil {
		return Header{}, Cursor{}, err
	}
	if err = c.Skip(4); err != nil { // reserved
		return Header{}, Cursor{}, err
	}
	if h.IndexPtr, err = c.U64(); err != nil {
		return Header{}, Cursor{}, err
	}

	if c.Pos() != HeaderSize {
		// Defensive: the field list above must exactly cover HeaderSize bytes.
		return Header{}, Cursor{}, errs.New(errs.Framing, c.Pos())
	}

	return h, c, nil
}
