package x64dec

// immediate reads an immediate, relative displacement, or moffs argument.
func (d *decoder) immediate(k argKind) (Arg, error) {
	switch k {
	case aIb:
		v, err := d.r.Int8()
		return Imm8(v), err
	case aIbs:
		v, err := d.r.Int8()
		return signExtend(int64(v), d.opSize), err
	case aIbu:
		v, err := d.r.Byte()
		return Uimm8(v), err
	case aIw:
		v, err := d.r.Uint16()
		return Uimm16(v), err
	case aIz:
		if d.opSize == 2 {
			v, err := d.r.Uint16()
			return Imm16(v), err
		}
		v, err := d.r.Uint32()
		return signExtend(int64(int32(v)), d.opSize), err
	case aIv:
		switch d.opSize {
		case 2:
			v, err := d.r.Uint16()
			return Imm16(v), err
		case 4:
			v, err := d.r.Uint32()
			return Imm32(v), err
		}
		v, err := d.r.Uint64()
		return Imm64(v), err
	case aJb:
		v, err := d.r.Int8()
		return Rel8(v), err
	case aJz:
		v, err := d.r.Uint32()
		return Rel32(v), err
	case aOb, aOv:
		return d.moffs(k)
	}
	return nil, errInvalid
}

// moffs reads the absolute address of A0-A3, 8 bytes wide or 4 bytes with 67.
func (d *decoder) moffs(k argKind) (Arg, error) {
	m := Mem{Seg: d.pfx.Seg, Scale: 1, AddrSize: d.addrSize, DispWidth: d.addrSize, Width: 1}
	if k == aOv {
		m.Width = d.opSize
	}
	if d.addrSize == 4 {
		v, err := d.r.Uint32()
		if err != nil {
			return nil, err
		}
		m.Disp = int64(v)
		return m, nil
	}
	v, err := d.r.Uint64()
	if err != nil {
		return nil, err
	}
	m.Disp = int64(v)
	return m, nil
}

// signExtend widens a sign-extended immediate to the operand size.
func signExtend(v int64, size uint8) ImmArg {
	switch size {
	case 2:
		return Imm16(v)
	case 8:
		return Imm64(v)
	}
	return Imm32(v)
}
