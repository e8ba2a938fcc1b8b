package wire

import "github.com/trivial-rs/mmb-parser/internal/errs"

// Sink receives decoded commands from a sub-stream walk. It mirrors the
// visitor's UnifyStream/ProofStream scratch sinks: push one command at a
// time, with no return value, so the reader never materializes a slice of
// commands itself.
type Sink[K any] interface {
	Push(Command[K])
}

// RunUntilEnd decodes commands from buf one at a time, pushing each to sink,
// until a command whose kind satisfies isEnd is pushed. It returns the
// number of bytes consumed (including the terminating command) and how many
// commands were pushed.
func RunUntilEnd[K any](buf []byte, pos int, convert func(byte) (K, bool), isEnd func(K) bool, sink Sink[K]) (consumed int, count int, err error) {
	left := buf
	offset := 0

	for {
		cmd, rest, derr := DecodeCommand(left, pos+offset, convert)
		if derr != nil {
			return 0, 0, derr
		}
		consumedThis := len(left) - len(rest)
		offset += consumedThis
		left = rest
		count++
		sink.Push(cmd)

		if isEnd(cmd.Kind) {
			return offset, count, nil
		}
	}
}

// mustConsumeAll is a defensive check used by callers that expect a
// sub-stream to end exactly at the boundary of its enclosing slice.
func mustConsumeAll(consumed, want, pos int) error {
	if consumed != want {
		return errs.New(errs.Framing, pos)
	}
	return nil
}
