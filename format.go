package x64dec

import (
	"strconv"
	"strings"

	. "github.com/wdamron/x64dec/internal/flags"
)

// String returns the canonical Intel-syntax text of the instruction, with lowercase mnemonics
// and registers, hexadecimal immediates, and size keywords where the width is not implied by
// a register argument. An INVALID instruction renders as "invalid".
func (inst Inst) String() string {
	if inst.Op == INVALID {
		return "invalid"
	}
	var b strings.Builder
	if inst.Prefix.Lock {
		b.WriteString("lock ")
	}
	if rep := repPrefix(inst.Op, inst.Prefix.Rep); rep != "" {
		b.WriteString(rep)
		b.WriteByte(' ')
	}
	b.WriteString(inst.Op.String())
	for i, arg := range inst.Args {
		if arg == nil {
			break
		}
		if i == 0 {
			b.WriteByte(' ')
		} else {
			b.WriteString(", ")
		}
		b.WriteString(arg.String())
		if i != 0 {
			continue
		}
		if inst.Mask != 0 {
			b.WriteByte('{')
			b.WriteString(inst.Mask.String())
			b.WriteByte('}')
		}
		if inst.Zeroing {
			b.WriteString("{z}")
		}
	}
	if inst.Rounding != RoundNone {
		b.WriteString(", ")
		b.WriteString(inst.Rounding.String())
	}
	return b.String()
}

// repOps holds the string operations which honor a retained F2/F3 prefix, with the REP or REPE
// flag selecting the keyword for F3.
var repOps = map[Op]uint32{}

func init() {
	for _, e := range oneByte {
		f := e.flags & (REP | REPE)
		if f == 0 {
			continue
		}
		repOps[e.op] = f
		if forms, ok := sizedOps[e.op]; ok {
			for _, op := range forms {
				repOps[op] = f
			}
		}
	}
}

// repPrefix returns the keyword for a retained F2/F3 prefix. Only cmps and scas test the
// flags; on the other string operations both prefixes repeat unconditionally and render "rep".
func repPrefix(op Op, rep RepKind) string {
	f, ok := repOps[op]
	switch {
	case rep == RepNone || !ok:
		return ""
	case f != REPE:
		return "rep"
	case rep == Repnz:
		return "repnz"
	}
	return "repz"
}

func (m Mem) String() string {
	var b strings.Builder
	if h := m.Hint.String(); h != "" {
		b.WriteString(h)
		b.WriteByte(' ')
	}
	if m.Seg != 0 {
		b.WriteString(m.Seg.String())
		b.WriteByte(':')
	}
	b.WriteByte('[')
	if m.IsAbsolute() {
		addr := uint64(m.Disp)
		if m.AddrSize == 4 {
			addr = uint64(uint32(m.Disp))
		}
		b.WriteString(hexUnsigned(addr))
	} else {
		sep := ""
		if m.Base != 0 {
			b.WriteString(m.Base.String())
			sep = " + "
		}
		if m.Index != 0 {
			b.WriteString(sep)
			b.WriteString(m.Index.String())
			if m.Scale > 1 {
				b.WriteString(" * ")
				b.WriteString(itoa(m.Scale))
			}
		}
		switch {
		case m.Disp < 0:
			b.WriteString(" - ")
			b.WriteString(hexUnsigned(uint64(-m.Disp)))
		case m.Disp > 0:
			b.WriteString(" + ")
			b.WriteString(hexUnsigned(uint64(m.Disp)))
		}
	}
	b.WriteByte(']')
	if m.Broadcast != 0 {
		b.WriteString("{1to")
		b.WriteString(itoa(m.Broadcast))
		b.WriteByte('}')
	}
	return b.String()
}

func hexUnsigned(v uint64) string { return "0x" + strconv.FormatUint(v, 16) }

func hexSigned(v int64) string {
	if v < 0 {
		return "-" + hexUnsigned(uint64(-v))
	}
	return hexUnsigned(uint64(v))
}

func (i Imm8) String() string   { return hexSigned(int64(i)) }
func (i Imm16) String() string  { return hexSigned(int64(i)) }
func (i Imm32) String() string  { return hexSigned(int64(i)) }
func (i Imm64) String() string  { return hexSigned(int64(i)) }
func (i Uimm8) String() string  { return hexUnsigned(uint64(i)) }
func (i Uimm16) String() string { return hexUnsigned(uint64(i)) }

func (r Rel8) String() string  { return hexSigned(int64(r)) }
func (r Rel32) String() string { return hexSigned(int64(r)) }
