package wire

import (
	"encoding/binary"

	"github.com/trivial-rs/mmb-parser/internal/errs"
)

// definitionBit marks a term's sort byte as belonging to a definition,
// meaning a unify sub-stream follows its binders and return type.
const definitionBit = 0x80

// recordSize is the on-disk byte size of one term or theorem record header,
// before following its binders_ptr.
const recordSize = 8

// ScanSorts invokes push once per sort byte, in table order.
func ScanSorts[S any](sorts []byte, convert func(byte) S, push func(S)) {
	for _, b := range sorts {
		push(convert(b))
	}
}

// ProofSink is the scratch sink a unify or proof sub-stream pushes decoded
// commands into. Done reports the (start, end) index range of commands
// pushed since the sink was handed to the caller.
type ProofSink[K any] interface {
	Sink[K]
	Done() Range
}

// Range is an index range, e.g. into a binder arena or a command stream.
type Range struct {
	Start int
	End   int
}

func parseBinders[B any](buf []byte, n int, convert func(uint64) B, slice []B) error {
	for i := 0; i < n; i++ {
		if len(buf) < 8 {
			return errs.New(errs.Framing, 0)
		}
		slice[i] = convert(binary.LittleEndian.Uint64(buf))
		buf = buf[8:]
	}
	return nil
}

// ScanTerms iterates numTerms fixed-size term records starting at terms,
// resolving each record's binders_ptr into file, reserving arena space for
// its binders via reserve, and decoding its unify sub-stream (if it is a
// definition) before invoking onTerm.
func ScanTerms[B any, Uf any](
	file, terms []byte,
	numTerms int,
	reserve func(n int) (slice []B, start int, ok bool),
	binderConv func(uint64) B,
	unifyConvert func(byte) (Uf, bool),
	unifyIsEnd func(Uf) bool,
	newUnify func() ProofSink[Uf],
	onTerm func(sortByte uint8, binders Range, retTy B, unifyBytes []byte, unifyRange Range) error,
) error {
	left := terms
	for i := 0; i < numTerms; i++ {
		if len(left) < recordSize {
			return errs.New(errs.Framing, 0)
		}
		numArgs := int(binary.LittleEndian.Uint16(left[0:2]))
		sort := left[2]
		ptrBinders := int(binary.LittleEndian.Uint32(left[4:8]))

		block, err := SliceAt(file, ptrBinders)
		if err != nil {
			return err
		}
		if len(block) < numArgs*8+8 {
			return errs.New(errs.Framing, ptrBinders)
		}

		slice, start, ok := reserve(numArgs)
		if !ok {
			return errs.New(errs.Memory, ptrBinders)
		}
		if err := parseBinders(block, numArgs, binderConv, slice); err != nil {
			return err
		}

		retTy := binderConv(binary.LittleEndian.Uint64(block[numArgs*8 : numArgs*8+8]))
		afterRet := block[numArgs*8+8:]

		var unifyBytes []byte
		var unifyRange Range
		if sort&definitionBit != 0 {
			sink := newUnify()
			consumed, count, err := RunUntilEnd(afterRet, ptrBinders+numArgs*8+8, unifyConvert, unifyIsEnd, sink)
			if err != nil {
				return err
			}
			unifyBytes = afterRet[:consumed]
			r := sink.Done()
			unifyRange = r
			_ = count
		}

		if err := onTerm(sort, Range{Start: start, End: start + numArgs}, retTy, unifyBytes, unifyRange); err != nil {
			return err
		}

		left = left[recordSize:]
	}
	return nil
}

// ScanTheorems iterates numTheorems fixed-size theorem records, identical to
// ScanTerms but without a return-type word and with the unify sub-stream
// unconditionally present.
func ScanTheorems[B any, Uf any](
	file, theorems []byte,
	numTheorems int,
	reserve func(n int) (slice []B, start int, ok bool),
	binderConv func(uint64) B,
	unifyConvert func(byte) (Uf, bool),
	unifyIsEnd func(Uf) bool,
	newUnify func() ProofSink[Uf],
	onTheorem func(binders Range, unifyBytes []byte, unifyRange Range) error,
) error {
	left := theorems
	for i := 0; i < numTheorems; i++ {
		if len(left) < recordSize {
			return errs.New(errs.Framing, 0)
		}
		numArgs := int(binary.LittleEndian.Uint16(left[0:2]))
		ptrBinders := int(binary.LittleEndian.Uint32(left[4:8]))

		block, err := SliceAt(file, ptrBinders)
		if err != nil {
			return err
		}
		if len(block) < numArgs*8 {
			return errs.New(errs.Framing, ptrBinders)
		}

		slice, start, ok := reserve(numArgs)
		if !ok {
			return errs.New(errs.Memory, ptrBinders)
		}
		if err := parseBinders(block, numArgs, binderConv, slice); err != nil {
			return err
		}

		afterBinders := block[numArgs*8:]

		sink := newUnify()
		consumed, count, err := RunUntilEnd(afterBinders, ptrBinders+numArgs*8, unifyConvert, unifyIsEnd, sink)
		if err != nil {
			return err
		}
		unifyBytes := afterBinders[:consumed]
		unifyRange := sink.Done()
		_ = count

		if err := onTheorem(Range{Start: start, End: start + numArgs}, unifyBytes, unifyRange); err != nil {
			return err
		}

		left = left[recordSize:]
	}
	return nil
}
