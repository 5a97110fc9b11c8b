package x64dec

import (
	. "github.com/wdamron/x64dec/internal/flags"
)

// decoder holds the state of a single Decode call.
type decoder struct {
	r   reader
	pfx Prefixes
	col int // mandatory-prefix column: the last of 66, F3, F2
	rex byte

	opc byte

	// ModRM
	hasModRM bool
	modrm    byte
	mod      byte
	reg      byte
	rm       byte

	// Register-number extensions from REX or EVEX, already shifted into place.
	w  bool
	rr byte // ModRM.reg: REX.R/EVEX.R (bit 3), EVEX.R' (bit 4)
	xx byte // SIB.index: REX.X/EVEX.X (bit 3)
	bb byte // ModRM.rm, SIB.base, opcode register: REX.B/EVEX.B (bit 3)
	vx byte // vector ModRM.rm: EVEX.X (bit 4)

	evex evexPrefix

	opSize   uint8 // bytes
	addrSize uint8 // bytes
	vl       uint8 // vector length in bytes
	mem      Mem
}

// Decode decodes the single instruction at the start of src, in 64-bit mode.
//
// Encodings no instruction accepts decode successfully as INVALID, with Len set to the number
// of bytes examined. ErrTruncated is returned if src ends before the instruction does. If src
// holds at least 15 bytes and the instruction is longer, the result is INVALID with Len 15.
// ErrUnsupported is returned for VEX and XOP encoded instructions.
func Decode(src []byte) (Inst, error) {
	d := decoder{r: newReader(src)}
	inst, err := d.decode()
	switch err {
	case nil:
		return inst, nil
	case errInvalid:
		return Inst{Op: INVALID, Len: d.r.Len()}, nil
	case errTooLong:
		return Inst{Op: INVALID, Len: MaxInstLen}, nil
	}
	return Inst{}, err
}

func (d *decoder) decode() (Inst, error) {
	if err := d.scanPrefixes(); err != nil {
		return Inst{}, err
	}
	d.addrSize = 8
	if d.pfx.AddrSize {
		d.addrSize = 4
	}
	d.w = d.rex&rexW != 0
	d.rr = (d.rex & rexR) << 1
	d.xx = (d.rex & rexX) << 2
	d.bb = (d.rex & rexB) << 3

	opc, err := d.r.Byte()
	if err != nil {
		return Inst{}, err
	}
	d.opc = opc

	var e *opEntry
	switch opc {
	case 0x0f:
		e, err = d.escape()
	case 0x62:
		e, err = d.decodeEVEX()
	case 0xc4, 0xc5:
		return Inst{}, ErrUnsupported
	case 0x8f:
		var next byte
		if next, err = d.r.Peek(); err != nil {
			return Inst{}, err
		}
		if next>>3&7 != 0 {
			return Inst{}, ErrUnsupported
		}
		e, err = d.choose(nil, &oneByte[opc])
	case 0x90:
		e = d.nop()
	default:
		e, err = d.choose(nil, &oneByte[opc])
	}
	if err != nil {
		return Inst{}, err
	}
	return d.finish(e)
}

// escape dispatches the 0F, 0F 38, and 0F 3A maps.
func (d *decoder) escape() (*opEntry, error) {
	opc, err := d.r.Byte()
	if err != nil {
		return nil, err
	}
	table := &twoByte
	switch opc {
	case 0x38:
		table = &map0F38
	case 0x3a:
		table = &map0F3A
	}
	if table != &twoByte {
		if opc, err = d.r.Byte(); err != nil {
			return nil, err
		}
	}
	d.opc = opc
	var prefixed *opEntry
	if d.col != colNone {
		prefixed = &table[d.col][opc]
	}
	return d.choose(prefixed, &table[colNone][opc])
}

// nop selects between nop, pause, and xchg for opcode 90.
func (d *decoder) nop() *opEntry {
	switch {
	case d.bb != 0:
		return &xchgR8
	case d.col == colF3:
		d.consumeMandatory()
		return &pauseForm
	}
	return &oneByte[0x90]
}

// choose resolves the mandatory-prefix candidate, falling back to the unprefixed entry when
// the prefixed cell is empty or rejects the encoding. A prefix which selects the entry is
// consumed.
func (d *decoder) choose(prefixed, base *opEntry) (*opEntry, error) {
	if prefixed != nil && !prefixed.empty() {
		e, err := d.resolve(prefixed)
		if err != nil {
			return nil, err
		}
		if e != nil {
			d.consumeMandatory()
			return e, nil
		}
	}
	if base.empty() {
		return nil, errInvalid
	}
	e, err := d.resolve(base)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, errInvalid
	}
	return e, nil
}

// resolve narrows an entry through its register forms and group, reading ModRM if needed.
// A nil entry means the encoding is unassigned.
func (d *decoder) resolve(e *opEntry) (*opEntry, error) {
	if e.needsModRM() {
		if err := d.readModRM(); err != nil {
			return nil, err
		}
	}
	if e.rmOps != nil && d.mod == 3 {
		if x, ok := e.rmOps[d.modrm]; ok {
			return &x, nil
		}
	}
	if e.group != nil {
		e = &e.group[d.reg]
	}
	if e.reg != nil && d.mod == 3 {
		e = e.reg
	}
	if e.op == INVALID || d.hasModRM && !e.acceptsMod(d.mod) {
		return nil, nil
	}
	return e, nil
}

func (d *decoder) operandSize(flags uint32) uint8 {
	switch {
	case hasFlag(flags, FORCE64) || d.w:
		return 8
	case d.pfx.OpSize:
		return 2
	case hasFlag(flags, DEFAULT64):
		return 8
	}
	return 4
}

// 32 bits, or 64 bits with REX.W
func (d *decoder) sizeY() uint8 {
	if d.w {
		return 8
	}
	return 4
}

func (d *decoder) finish(e *opEntry) (Inst, error) {
	if d.w && hasFlag(e.flags, WIDE_OP) {
		e = e.wide
	}
	flags := e.flags
	if d.pfx.Lock && (!hasFlag(flags, LOCK) || !d.hasModRM || d.mod == 3) {
		return Inst{}, errInvalid
	}
	if hasFlag(flags, MOD_IGNORED) {
		d.mod = 3
	}
	d.opSize = d.operandSize(flags)
	d.vl = 16
	if d.evex.present {
		if err := d.evexCheck(e); err != nil {
			return Inst{}, err
		}
	}
	if d.hasModRM && d.mod != 3 {
		if err := d.decodeMem(e); err != nil {
			return Inst{}, err
		}
	}

	inst := Inst{
		Op:       e.op,
		Prefix:   d.pfx,
		DataSize: int(d.opSize) * 8,
		AddrSize: int(d.addrSize) * 8,
		Feats:    e.feats,
	}
	for i, k := range e.args {
		if k == aNone {
			break
		}
		arg, err := d.arg(k, flags)
		if err != nil {
			return Inst{}, err
		}
		inst.Args[i] = arg
	}
	if hasFlag(flags, SIZED_OP) {
		inst.Op = sizedOp(e.op, d.opSize)
	}
	if inst.Op == JRCXZ && d.addrSize == 4 {
		inst.Op = JECXZ
	}
	inst.Prefix.REX = d.rex
	if d.evex.present {
		if d.evex.aaa != 0 {
			inst.Mask = mkreg(8, REG_MASK, d.evex.aaa)
		}
		inst.Zeroing = d.evex.z
		inst.Rounding = d.evex.rounding
	}
	inst.Len = d.r.Len()
	return inst, nil
}

func (d *decoder) arg(k argKind, flags uint32) (Arg, error) {
	rex := d.rex != 0
	switch k {
	case aGb:
		return gpr(1, d.reg|d.rr, rex), nil
	case aGw:
		return gpr(2, d.reg|d.rr, rex), nil
	case aGd:
		return gpr(4, d.reg|d.rr, rex), nil
	case aGq:
		return gpr(8, d.reg|d.rr, rex), nil
	case aGv:
		return gpr(d.opSize, d.reg|d.rr, rex), nil
	case aGy:
		return gpr(d.sizeY(), d.reg|d.rr, rex), nil

	case aEb:
		return d.rmArg(1, 1, k, flags), nil
	case aEw:
		return d.rmArg(2, 2, k, flags), nil
	case aEd:
		return d.rmArg(4, 4, k, flags), nil
	case aEq:
		return d.rmArg(8, 8, k, flags), nil
	case aEv:
		return d.rmArg(d.opSize, d.opSize, k, flags), nil
	case aEy:
		return d.rmArg(d.sizeY(), d.sizeY(), k, flags), nil
	case aEdb:
		return d.rmArg(4, 1, k, flags), nil
	case aEdw:
		return d.rmArg(4, 2, k, flags), nil
	case aEvw:
		return d.rmArg(d.opSize, 2, k, flags), nil

	case aM:
		return d.memArg(0, k, flags), nil
	case aMb:
		return d.memArg(1, k, flags), nil
	case aMw:
		return d.memArg(2, k, flags), nil
	case aMd:
		return d.memArg(4, k, flags), nil
	case aMq:
		return d.memArg(8, k, flags), nil
	case aMdq:
		return d.memArg(16, k, flags), nil
	case aMt:
		return d.memArg(10, k, flags), nil
	case aMp:
		return d.memArg(d.opSize+2, k, flags), nil
	case aMx:
		return d.memArg(d.vl, k, flags), nil
	case aMy:
		return d.memArg(d.sizeY(), k, flags), nil
	case aMcx:
		return d.memArg(d.sizeY()*2, k, flags), nil

	case aRv:
		return gpr(d.opSize, d.rm|d.bb, true), nil
	case aRy:
		return gpr(d.sizeY(), d.rm|d.bb, true), nil
	case aRq:
		return gpr(8, d.rm|d.bb, true), nil

	case aSw, aSwd:
		if d.reg > 5 || k == aSwd && d.reg == 1 {
			return nil, errInvalid
		}
		return mkreg(2, REG_SEGMENT, d.reg), nil
	case aCq:
		return mkreg(8, REG_CONTROL, d.reg|d.rr), nil
	case aDq:
		return mkreg(8, REG_DEBUG, d.reg|d.rr), nil

	case aPq:
		return mkreg(8, REG_MMX, d.reg), nil
	case aQq:
		if d.mod == 3 {
			return mkreg(8, REG_MMX, d.rm), nil
		}
		return d.memArg(8, k, flags), nil
	case aQd:
		if d.mod == 3 {
			return mkreg(8, REG_MMX, d.rm), nil
		}
		return d.memArg(4, k, flags), nil
	case aNq:
		return mkreg(8, REG_MMX, d.rm), nil

	case aVx:
		return vecreg(d.vl, d.reg|d.rr), nil
	case aVdq:
		return vecreg(16, d.reg|d.rr), nil
	case aWx:
		return d.rmVec(d.vl, d.vl, k, flags), nil
	case aWq:
		return d.rmVec(16, 8, k, flags), nil
	case aWd:
		return d.rmVec(16, 4, k, flags), nil
	case aWw:
		return d.rmVec(16, 2, k, flags), nil
	case aUx:
		return vecreg(d.vl, d.rm|d.bb|d.vx), nil
	case aHx:
		return vecreg(d.vl, d.evex.vvvv), nil
	case aHdq:
		return vecreg(16, d.evex.vvvv), nil
	case aKG:
		return mkreg(8, REG_MASK, d.reg), nil

	case aIb, aIbs, aIbu, aIw, aIz, aIv, aJb, aJz, aOb, aOv:
		return d.immediate(k)

	case aZb:
		return gpr(1, d.opc&7|d.bb, rex), nil
	case aZv:
		return gpr(d.opSize, d.opc&7|d.bb, rex), nil
	case aZq:
		return gpr(8, d.opc&7|d.bb, rex), nil
	case aZy:
		return gpr(d.sizeY(), d.opc&7|d.bb, rex), nil

	case aAL:
		return AL, nil
	case aAX:
		return AX, nil
	case aRAX:
		return gpr(d.opSize, 0, rex), nil
	case aEAXio:
		if d.opSize == 2 {
			return AX, nil
		}
		return EAX, nil
	case aCL:
		return CL, nil
	case aDX:
		return DX, nil
	case aOne:
		return Uimm8(1), nil
	case aFS:
		return FS, nil
	case aGS:
		return GS, nil
	case aXMM0:
		return X0, nil
	case aST0:
		return F0, nil
	case aSTi:
		return mkreg(10, REG_FP, d.rm), nil
	}
	return nil, errInvalid
}
