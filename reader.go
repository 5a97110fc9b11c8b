package x64dec

import (
	"encoding/binary"
)

// The architectural limit on the length of an instruction.
const MaxInstLen = 15

// reader is a forward-only cursor over a window of at most MaxInstLen bytes.
type reader struct {
	b []byte
	i int
	// the caller supplied at least MaxInstLen bytes, so running off the end means the
	// instruction is too long rather than truncated
	capped bool
}

func newReader(src []byte) reader {
	if len(src) >= MaxInstLen {
		return reader{b: src[:MaxInstLen], capped: true}
	}
	return reader{b: src}
}

func (r *reader) Len() int { return r.i }

func (r *reader) need(n int) error {
	if len(r.b)-r.i >= n {
		return nil
	}
	if r.capped {
		return errTooLong
	}
	return ErrTruncated
}

func (r *reader) Peek() (byte, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	return r.b[r.i], nil
}

func (r *reader) Byte() (byte, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.b[r.i]
	r.i++
	return v, nil
}

func (r *reader) Int8() (int8, error) {
	v, err := r.Byte()
	return int8(v), err
}

func (r *reader) Uint16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.b[r.i:])
	r.i += 2
	return v, nil
}

func (r *reader) Uint32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.b[r.i:])
	r.i += 4
	return v, nil
}

func (r *reader) Uint64() (uint64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(r.b[r.i:])
	r.i += 8
	return v, nil
}
