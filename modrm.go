package x64dec

import (
	. "github.com/wdamron/x64dec/internal/flags"
)

func (d *decoder) readModRM() error {
	if d.hasModRM {
		return nil
	}
	b, err := d.r.Byte()
	if err != nil {
		return err
	}
	d.hasModRM = true
	d.modrm = b
	d.mod, d.reg, d.rm = b>>6, b>>3&7, b&7
	return nil
}

// decodeMem reads the SIB byte and displacement of a memory operand.
func (d *decoder) decodeMem(e *opEntry) error {
	m := Mem{Seg: d.pfx.Seg, AddrSize: d.addrSize, Scale: 1}
	var dispWidth uint8
	switch {
	case d.rm == 4:
		sib, err := d.r.Byte()
		if err != nil {
			return err
		}
		scale, index, base := sib>>6, sib>>3&7|d.xx, sib&7
		// index 4 without REX.X means no index
		if index != 4 {
			m.Index = gpr(d.addrSize, index, true)
			m.Scale = 1 << scale
		}
		if base == 5 && d.mod == 0 {
			dispWidth = 4
		} else {
			m.Base = gpr(d.addrSize, base|d.bb, true)
		}
	case d.rm == 5 && d.mod == 0:
		dispWidth = 4
		// with 32-bit addressing this is an absolute disp32
		if d.addrSize == 8 {
			m.Base = RIP
		}
	default:
		m.Base = gpr(d.addrSize, d.rm|d.bb, true)
	}
	switch d.mod {
	case 1:
		dispWidth = 1
	case 2:
		dispWidth = 4
	}

	switch dispWidth {
	case 1:
		v, err := d.r.Int8()
		if err != nil {
			return err
		}
		m.Disp = int64(v) * d.disp8Scale(e)
	case 4:
		v, err := d.r.Uint32()
		if err != nil {
			return err
		}
		m.Disp = int64(int32(v))
	}
	m.DispWidth = dispWidth
	d.mem = m
	return nil
}

// rmArg returns the general register or memory operand selected by ModRM.rm.
func (d *decoder) rmArg(regWidth, memWidth uint8, k argKind, flags uint32) Arg {
	if d.mod == 3 {
		return gpr(regWidth, d.rm|d.bb, d.rex != 0)
	}
	return d.memArg(memWidth, k, flags)
}

// rmVec returns the vector register or memory operand selected by ModRM.rm.
func (d *decoder) rmVec(regWidth, memWidth uint8, k argKind, flags uint32) Arg {
	if d.mod == 3 {
		return vecreg(regWidth, d.rm|d.bb|d.vx)
	}
	return d.memArg(memWidth, k, flags)
}

func (d *decoder) memArg(width uint8, k argKind, flags uint32) Mem {
	m := d.mem
	m.Width = width
	if d.evex.bcst {
		elem := d.elemSize()
		m.Width = elem
		m.Hint = SizeHint(elem)
		m.Broadcast = d.vl / elem
		return m
	}
	if kinds[k].hint || hasFlag(flags, HINT_MEM) {
		m.Hint = SizeHint(width)
	}
	return m
}
