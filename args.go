package x64dec

// Arg represents a decoded instruction argument.
//
// Any Reg, Mem, Imm8, Imm16, Imm32, Imm64, Uimm8, Uimm16, Rel8, or Rel32 value implements Arg.
type Arg interface {
	isArg()
	String() string
}

// Args holds the arguments of an instruction, destination first. Unused trailing slots are nil.
type Args [4]Arg

// Len returns the number of arguments present.
func (a Args) Len() int {
	for i, arg := range a {
		if arg == nil {
			return i
		}
	}
	return len(a)
}

// SizeHint is the access width of a memory argument in bytes, when it is displayed with a size keyword.
type SizeHint uint8

const (
	NoHint      SizeHint = 0
	HintByte    SizeHint = 1
	HintWord    SizeHint = 2
	HintDword   SizeHint = 4
	HintQword   SizeHint = 8
	HintTbyte   SizeHint = 10
	HintXmmword SizeHint = 16
	HintYmmword SizeHint = 32
	HintZmmword SizeHint = 64
)

// Get the size keyword for the hint, or "" if there is none.
func (h SizeHint) String() string {
	switch h {
	case HintByte:
		return "byte"
	case HintWord:
		return "word"
	case HintDword:
		return "dword"
	case HintQword:
		return "qword"
	case HintTbyte:
		return "tbyte"
	case HintXmmword:
		return "xmmword"
	case HintYmmword:
		return "ymmword"
	case HintZmmword:
		return "zmmword"
	}
	return ""
}

// Mem is a memory-reference argument. Base is RIP (or EIP) for RIP-relative addressing. A Mem
// without Base or Index is an absolute address held in Disp.
//
// Mem implements Arg.
type Mem struct {
	Disp      int64
	Seg       Reg // segment override, or 0
	Base      Reg
	Index     Reg
	Scale     uint8    // 1, 2, 4 or 8
	DispWidth uint8    // encoded displacement width in bytes: 0, 1, 4, or 8 (moffs)
	AddrSize  uint8    // width of the address computation in bytes: 4 or 8
	Width     uint8    // access width in bytes, 0 if the instruction does not access memory
	Hint      SizeHint // size keyword shown by the formatter
	Broadcast uint8    // element count of an EVEX embedded broadcast, 0 if none
}

func (m Mem) isArg() {}

// Check if the address is relative to the instruction pointer.
func (m Mem) IsRIPRelative() bool { return m.Base != 0 && m.Base.Family() == REG_RIP }

// Check if the address is absolute (no base or index register).
func (m Mem) IsAbsolute() bool { return m.Base == 0 && m.Index == 0 }

// ImmArg represents an immediate argument.
//
// Any Imm8, Imm16, Imm32, Imm64, Uimm8, or Uimm16 value implements ImmArg.
type ImmArg interface {
	Arg
	isImm()
	Int64() int64
}

// Imm8 is a signed 8-bit immediate argument.
type Imm8 int8

// Imm16 is a signed 16-bit immediate argument.
type Imm16 int16

// Imm32 is a signed 32-bit immediate argument.
type Imm32 int32

// Imm64 is a signed 64-bit immediate argument.
type Imm64 int64

// Uimm8 is an unsigned 8-bit immediate: shift counts, ports, interrupt vectors and shuffle selectors.
type Uimm8 uint8

// Uimm16 is an unsigned 16-bit immediate: return and frame sizes.
type Uimm16 uint16

func (i Imm8) isArg()   {}
func (i Imm16) isArg()  {}
func (i Imm32) isArg()  {}
func (i Imm64) isArg()  {}
func (i Uimm8) isArg()  {}
func (i Uimm16) isArg() {}

func (i Imm8) isImm()   {}
func (i Imm16) isImm()  {}
func (i Imm32) isImm()  {}
func (i Imm64) isImm()  {}
func (i Uimm8) isImm()  {}
func (i Uimm16) isImm() {}

func (i Imm8) Int64() int64   { return int64(i) }
func (i Imm16) Int64() int64  { return int64(i) }
func (i Imm32) Int64() int64  { return int64(i) }
func (i Imm64) Int64() int64  { return int64(i) }
func (i Uimm8) Int64() int64  { return int64(i) }
func (i Uimm16) Int64() int64 { return int64(i) }

// RelArg represents a relative branch displacement, measured from the end of the instruction.
//
// Any Rel8 or Rel32 value implements RelArg.
type RelArg interface {
	Arg
	isRel()
	Int64() int64
}

// Rel8 is an 8-bit displacement argument.
type Rel8 int8

// Rel32 is a 32-bit displacement argument.
type Rel32 int32

func (r Rel8) isArg()  {}
func (r Rel32) isArg() {}

func (r Rel8) isRel()  {}
func (r Rel32) isRel() {}

func (r Rel8) Int64() int64  { return int64(r) }
func (r Rel32) Int64() int64 { return int64(r) }

var (
	_ Arg    = Mem{}
	_ ImmArg = Imm8(0)
	_ ImmArg = Uimm16(0)
	_ RelArg = Rel32(0)
)
