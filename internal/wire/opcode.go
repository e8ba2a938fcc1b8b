package wire

import (
	"encoding/binary"

	"github.com/trivial-rs/mmb-parser/internal/errs"
)

// Command is a decoded opcode together with its zero-extended operand. It is
// generic over the target vocabulary's kind type so that the same decode
// routine serves the statement, proof, and unify opcode spaces.
type Command[K any] struct {
	Kind    K
	Operand uint32
}

// operandWidth maps an opcode byte's top two bits to the number of operand
// bytes that follow it: 00->0, 01->1, 10->2, 11->4.
func operandWidth(opcode byte) int {
	switch opcode & 0xC0 {
	case 0x00:
		return 0
	case 0x40:
		return 1
	case 0x80:
		return 2
	default: // 0xC0
		return 4
	}
}

// DecodeCommand decodes one opcode byte plus its variable-width operand from
// buf, converting the low 6 bits to the target vocabulary via convert. It
// returns the command and the unread remainder of buf.
func DecodeCommand[K any](buf []byte, pos int, convert func(byte) (K, bool)) (Command[K], []byte, error) {
	if len(buf) < 1 {
		return Command[K]{}, nil, errs.New(errs.Framing, pos)
	}
	opcode := buf[0]
	rest := buf[1:]

	kind, ok := convert(opcode & 0x3F)
	if !ok {
		return Command[K]{}, nil, errs.New(errs.InvalidCommand, pos)
	}

	width := operandWidth(opcode)
	if len(rest) < width {
		return Command[K]{}, nil, errs.New(errs.Framing, pos+1)
	}

	var operand uint32
	switch width {
	case 0:
		operand = 0
	case 1:
		operand = uint32(rest[0])
	case 2:
		operand = uint32(binary.LittleEndian.Uint16(rest))
	case 4:
		operand = binary.LittleEndian.Uint32(rest)
	}

	return Command[K]{Kind: kind, Operand: operand}, rest[width:], nil
}

// ParseSkip peeks the length-prefix opcode at the start of buf and returns
// its operand, interpreted as the byte length of the frame that the opcode
// itself heads (header bytes included). It never advances past the opcode
// byte: the caller re-reads the same header when it decodes the frame's
// inner statement opcode, then takes ParseSkip's returned length from the
// very start of buf. This double read is load-bearing, not an oversight.
//
// A kind of zero, or a zero-length frame (top two bits 00), both signal the
// statement-stream terminator and are reported as StmntEnd rather than as a
// genuine decode failure.
func ParseSkip(buf []byte, pos int) (length uint32, err error) {
	if len(buf) < 1 {
		return 0, errs.New(errs.Framing, pos)
	}
	opcode := buf[0]
	if opcode&0x3F == 0 {
		return 0, errs.New(errs.StmntEnd, pos)
	}

	switch opcode & 0xC0 {
	case 0x00:
		return 0, errs.New(errs.StmntEnd, pos)
	case 0x40:
		if len(buf) < 2 {
			return 0, errs.New(errs.Framing, pos+1)
		}
		return uint32(buf[1]), nil
	case 0x80:
		if len(buf) < 3 {
			return 0, errs.New(errs.Framing, pos+1)
		}
		return uint32(binary.LittleEndian.Uint16(buf[1:3])), nil
	default: // 0xC0
		if len(buf) < 5 {
			return 0, errs.New(errs.Framing, pos+1)
		}
		return binary.LittleEndian.Uint32(buf[1:5]), nil
	}
}
