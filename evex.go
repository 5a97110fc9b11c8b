package x64dec

import (
	. "github.com/wdamron/x64dec/internal/flags"
)

// evexPrefix holds the fields of the three payload bytes following 62.
type evexPrefix struct {
	present bool
	vvvv    byte // EVEX.V':vvvv, uninverted
	ll      byte // EVEX.L'L
	b       bool
	z       bool
	aaa     byte

	rounding Rounding
	bcst     bool
}

// decodeEVEX reads the EVEX payload and opcode, and selects the entry for EVEX.mm and EVEX.pp.
func (d *decoder) decodeEVEX() (*opEntry, error) {
	var p [3]byte
	for i := range p {
		b, err := d.r.Byte()
		if err != nil {
			return nil, err
		}
		p[i] = b
	}
	// 66, F2, F3, and REX are encoded within the payload.
	if d.rex != 0 || d.col != colNone || d.pfx.Lock {
		return nil, errInvalid
	}
	p0, p1, p2 := p[0], p[1], p[2]
	mm := p0 & 3
	if p0&0x0c != 0 || mm == 0 || p1&0x04 == 0 {
		return nil, errInvalid
	}

	d.evex = evexPrefix{
		present: true,
		vvvv:    ^p1>>3&0xf | (^p2>>3&1)<<4,
		ll:      p2 >> 5 & 3,
		b:       p2&0x10 != 0,
		z:       p2&0x80 != 0,
		aaa:     p2 & 7,
	}
	d.w = p1&0x80 != 0
	d.rr = (^p0>>7&1)<<3 | (^p0>>4&1)<<4
	d.xx = (^p0 >> 6 & 1) << 3
	d.bb = (^p0 >> 5 & 1) << 3
	d.vx = (^p0 >> 6 & 1) << 4

	opc, err := d.r.Byte()
	if err != nil {
		return nil, err
	}
	d.opc = opc
	e, ok := evexMaps[mm-1][p1&3][opc]
	if !ok {
		return nil, errInvalid
	}
	return d.choose(nil, &e)
}

// evexCheck validates the EVEX payload against the selected entry, and sets the vector
// length, embedded rounding, and broadcast.
func (d *decoder) evexCheck(e *opEntry) error {
	ev := &d.evex
	flags := e.flags
	if hasFlag(flags, EVEX_W0) && d.w || hasFlag(flags, EVEX_W1) && !d.w {
		return errInvalid
	}
	if ev.vvvv != 0 && !usesVVVV(e) {
		return errInvalid
	}
	if ev.aaa != 0 && hasFlag(flags, NO_MASK) {
		return errInvalid
	}
	if ev.z {
		dst := e.args[0]
		if ev.aaa == 0 || dst == aKG || d.mod != 3 && (dst == aWx || dst == aMx) {
			return errInvalid
		}
	}

	switch {
	case ev.b && d.mod == 3:
		switch {
		case hasFlag(flags, ER):
			ev.rounding = RoundNearest + Rounding(ev.ll)
		case hasFlag(flags, SAE):
			ev.rounding = RoundSAE
		default:
			return errInvalid
		}
		d.vl = 64
		return nil
	case ev.b:
		if !hasFlag(flags, BCST) {
			return errInvalid
		}
		ev.bcst = true
	}
	switch {
	case hasFlag(flags, LIG):
		d.vl = 16
		return nil
	case ev.ll == 3:
		return errInvalid
	}
	d.vl = 16 << ev.ll
	return nil
}

func usesVVVV(e *opEntry) bool {
	for _, k := range e.args {
		if k == aHx || k == aHdq {
			return true
		}
	}
	return false
}

// disp8Scale returns N for the compressed disp8*N displacement of EVEX memory operands.
func (d *decoder) disp8Scale(e *opEntry) int64 {
	if !d.evex.present {
		return 1
	}
	elem := int64(d.elemSize())
	switch {
	case hasFlag(e.flags, TUPLE_FV):
		if d.evex.bcst {
			return elem
		}
		return int64(d.vl)
	case hasFlag(e.flags, TUPLE_FVM):
		return int64(d.vl)
	case hasFlag(e.flags, TUPLE_T1S):
		return elem
	}
	return 1
}

// Element size in bytes of a broadcast or scalar EVEX operand.
func (d *decoder) elemSize() uint8 {
	if d.w {
		return 8
	}
	return 4
}
