package wire

import "github.com/trivial-rs/mmb-parser/internal/errs"

// ScanStatements walks the proof section's length-prefixed statement frames
// in file order. For each frame it decodes the inner statement opcode,
// walks any trailing proof sub-stream to its End, and invokes onStatement.
// It returns the official proof-section slice (the bytes actually spanned
// by frames, which may be shorter than proofs if the caller over-sliced the
// tail of the file) once it reaches the terminator frame or the end of
// proofs.
func ScanStatements[St any, Pf any](
	proofs []byte,
	stConvert func(byte) (St, bool),
	pfConvert func(byte) (Pf, bool),
	pfIsEnd func(Pf) bool,
	newProof func() ProofSink[Pf],
	onStatement func(kind St, offset int, frame []byte, proof *Range) error,
) ([]byte, error) {
	left := proofs
	offset := 0

	for {
		if len(left) == 0 {
			return proofs[:offset], nil
		}
		length, err := ParseSkip(left, offset)
		if err != nil {
			if pe, ok := err.(*errs.ParseError); ok && pe.Kind == errs.StmntEnd {
				return proofs[:offset], nil
			}
			return nil, err
		}

		if int(length) > len(left) {
			return nil, errs.New(errs.Framing, offset)
		}
		frame := left[:length]

		cmd, rest, err := DecodeCommand(frame, offset, stConvert)
		if err != nil {
			return nil, err
		}

		var proofRange *Range
		if len(rest) > 0 {
			sink := newProof()
			consumed, _, err := RunUntilEnd(rest, offset+(len(frame)-len(rest)), pfConvert, pfIsEnd, sink)
			if err != nil {
				return nil, err
			}
			if err := mustConsumeAll(consumed, len(rest), offset); err != nil {
				return nil, err
			}
			r := sink.Done()
			proofRange = &r
		}

		if err := onStatement(cmd.Kind, offset, frame, proofRange); err != nil {
			return nil, err
		}

		offset += len(frame)
		left = left[length:]
	}
}
