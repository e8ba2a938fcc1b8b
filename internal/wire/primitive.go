// Package wire implements the byte-level mechanics of the MMB format: fixed
// width little-endian reads, the header layout, the three opcode
// vocabularies, and the table/statement scanners. It mirrors the role
// internal/container plays for the RIFF container format this module was
// adapted from: every type here is a zero-copy view into a caller-owned
// buffer, and nothing here allocates persistent state.
package wire

import (
	"encoding/binary"

	"github.com/trivial-rs/mmb-parser/internal/errs"
)

// Cursor is a read-only walk over a byte slice that tracks the absolute
// offset of its current position within the original file buffer, so that
// errors can report where in the file they occurred.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor starts a cursor over buf at the given absolute position.
func NewCursor(buf []byte, pos int) Cursor {
	return Cursor{buf: buf, pos: pos}
}

// Pos returns the cursor's current absolute offset in the file.
func (c Cursor) Pos() int { return c.pos }

// Len returns the number of unread bytes.
func (c Cursor) Len() int { return len(c.buf) }

// Rest returns the unread tail of the cursor as a borrowed slice.
func (c Cursor) Rest() []byte { return c.buf }

func (c *Cursor) framing() error { return errs.New(errs.Framing, c.pos) }

// U8 reads one byte.
func (c *Cursor) U8() (uint8, error) {
	if len(c.buf) < 1 {
		return 0, c.framing()
	}
	v := c.buf[0]
	c.buf = c.buf[1:]
	c.pos++
	return v, nil
}

// U16 reads a little-endian uint16.
func (c *Cursor) U16() (uint16, error) {
	if len(c.buf) < 2 {
		return 0, c.framing()
	}
	v := binary.LittleEndian.Uint16(c.buf)
	c.buf = c.buf[2:]
	c.pos += 2
	return v, nil
}

// U32 reads a little-endian uint32.
func (c *Cursor) U32() (uint32, error) {
	if len(c.buf) < 4 {
		return 0, c.framing()
	}
	v := binary.LittleEndian.Uint32(c.buf)
	c.buf = c.buf[4:]
	c.pos += 4
	return v, nil
}

// U64 reads a little-endian uint64.
func (c *Cursor) U64() (uint64, error) {
	if len(c.buf) < 8 {
		return 0, c.framing()
	}
	v := binary.LittleEndian.Uint64(c.buf)
	c.buf = c.buf[8:]
	c.pos += 8
	return v, nil
}

// Skip discards n bytes (used for reserved/padding fields).
func (c *Cursor) Skip(n int) error {
	_, err := c.Take(n)
	return err
}

// Take returns the next n bytes as a borrowed subslice and advances past them.
func (c *Cursor) Take(n int) ([]byte, error) {
	if n < 0 || len(c.buf) < n {
		return nil, c.framing()
	}
	head := c.buf[:n]
	c.buf = c.buf[n:]
	c.pos += n
	return head, nil
}

// Tag matches a literal byte prefix, failing with InvalidCommand (not
// Framing) since a magic-tag mismatch is a content error, not a truncation
// (truncation is reported separately when the buffer is simply too short).
func (c *Cursor) Tag(want []byte) error {
	if len(c.buf) < len(want) {
		return c.framing()
	}
	for i, b := range want {
		if c.buf[i] != b {
			return errs.New(errs.InvalidCommand, c.pos)
		}
	}
	c.buf = c.buf[len(want):]
	c.pos += len(want)
	return nil
}

// NulTerminated returns the subslice up to (not including) the first zero
// byte in buf, failing with Framing if none is found. This is the
// authoritative (exclusive) convention used by the index's name lookups.
func NulTerminated(buf []byte, pos int) ([]byte, error) {
	for i, b := range buf {
		if b == 0 {
			return buf[:i], nil
		}
	}
	return nil, errs.New(errs.Framing, pos)
}

// SliceAt returns the tail of file starting at offset, equivalent to
// take(offset) followed by returning the remainder. offset must be in
// [0, len(file)].
func SliceAt(file []byte, offset int) ([]byte, error) {
	if offset < 0 || offset > len(file) {
		return nil, errs.New(errs.Framing, offset)
	}
	return file[offset:], nil
}

// TakeAt returns the n bytes of file starting at offset.
func TakeAt(file []byte, offset, n int) ([]byte, error) {
	tail, err := SliceAt(file, offset)
	if err != nil {
		return nil, err
	}
	if n < 0 || len(tail) < n {
		return nil, errs.New(errs.Framing, offset)
	}
	return tail[:n], nil
}
