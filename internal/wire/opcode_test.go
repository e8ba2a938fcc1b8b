package wire

import (
	"testing"

	"github.com/trivial-rs/mmb-parser/internal/errs"
)

func isStmntEnd(err error) bool {
	pe, ok := err.(*errs.ParseError)
	return ok && pe.Kind == errs.StmntEnd
}

type testKind uint8

func testConvert(b byte) (testKind, bool) {
	if b == 0 {
		return 0, false
	}
	return testKind(b), true
}

func TestDecodeCommand_NoOperand(t *testing.T) {
	buf := []byte{0x01} // kind 1, width selector 00
	cmd, rest, err := DecodeCommand(buf, 0, testConvert)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.Kind != 1 || cmd.Operand != 0 {
		t.Fatalf("got %+v", cmd)
	}
	if len(rest) != 0 {
		t.Fatalf("rest = %d bytes, want 0", len(rest))
	}
}

func TestDecodeCommand_OneByteOperand(t *testing.T) {
	buf := []byte{0x02 | 0x40, 0xAB} // kind 2, width selector 01
	cmd, rest, err := DecodeCommand(buf, 0, testConvert)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.Kind != 2 || cmd.Operand != 0xAB {
		t.Fatalf("got %+v", cmd)
	}
	if len(rest) != 0 {
		t.Fatalf("rest = %d bytes, want 0", len(rest))
	}
}

func TestDecodeCommand_FourByteOperand(t *testing.T) {
	buf := []byte{0x03 | 0xC0, 0x01, 0x02, 0x03, 0x04, 0xFF}
	cmd, rest, err := DecodeCommand(buf, 0, testConvert)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.Operand != 0x04030201 {
		t.Fatalf("operand = 0x%x, want 0x04030201", cmd.Operand)
	}
	if len(rest) != 1 || rest[0] != 0xFF {
		t.Fatalf("rest = %v, want [0xFF]", rest)
	}
}

func TestDecodeCommand_InvalidKind(t *testing.T) {
	buf := []byte{0x00}
	_, _, err := DecodeCommand(buf, 5, testConvert)
	pe, ok := err.(*errs.ParseError)
	if !ok || pe.Kind != errs.InvalidCommand {
		t.Fatalf("expected InvalidCommand, got %v", err)
	}
}

func TestDecodeCommand_Truncated(t *testing.T) {
	buf := []byte{}
	_, _, err := DecodeCommand(buf, 0, testConvert)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestDecodeCommand_TruncatedOperand(t *testing.T) {
	buf := []byte{0x01 | 0x80} // width selector 10, needs 2 operand bytes
	_, _, err := DecodeCommand(buf, 0, testConvert)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestParseSkip_KindZero(t *testing.T) {
	buf := []byte{0x00}
	_, err := ParseSkip(buf, 0)
	if !isStmntEnd(err) {
		t.Fatalf("expected StmntEnd, got %v", err)
	}
}

func TestParseSkip_ZeroWidth(t *testing.T) {
	buf := []byte{0x05} // kind 5, width selector 00
	_, err := ParseSkip(buf, 0)
	if !isStmntEnd(err) {
		t.Fatalf("expected StmntEnd, got %v", err)
	}
}

func TestParseSkip_NeverAdvances(t *testing.T) {
	buf := []byte{0x05 | 0x40, 0x03, 0xAA, 0xBB, 0xCC} // kind 5, 1-byte operand = 3
	length, err := ParseSkip(buf, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if length != 3 {
		t.Fatalf("length = %d, want 3", length)
	}
	// ParseSkip must not have consumed anything: re-reading buf from the
	// start must still see the same opcode byte.
	if buf[0] != 0x05|0x40 {
		t.Fatalf("buf mutated unexpectedly")
	}
}

func TestParseSkip_TwoByteOperand(t *testing.T) {
	buf := []byte{0x05 | 0x80, 0x34, 0x12}
	length, err := ParseSkip(buf, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if length != 0x1234 {
		t.Fatalf("length = 0x%x, want 0x1234", length)
	}
}

func TestParseSkip_Truncated(t *testing.T) {
	buf := []byte{0x05 | 0xC0, 0x01, 0x02}
	_, err := ParseSkip(buf, 0)
	if err == nil {
		t.Fatal("expected error")
	}
}
