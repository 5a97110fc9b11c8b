package x64dec

import (
	"github.com/wdamron/x64dec/feats"
)

// Op is an instruction mnemonic. The zero Op is INVALID, which marks an encoding no
// instruction accepts.
type Op uint16

// Get the lowercase mnemonic for the operation.
func (op Op) String() string {
	if op > MaxOp {
		return ""
	}
	nmOffset := opNameOffsets[op]
	var nmEnd uint16
	if op < MaxOp {
		nmEnd = opNameOffsets[op+1]
	} else {
		nmEnd = uint16(len(opNames))
	}
	return opNames[nmOffset:nmEnd]
}

// RepKind is the string-repeat prefix retained by an instruction.
type RepKind uint8

const (
	RepNone RepKind = iota
	Rep             // F3
	Repnz           // F2
)

// Prefixes records the legacy and REX prefixes retained by a decoded instruction. A mandatory
// prefix which selected the instruction is not retained.
type Prefixes struct {
	Lock     bool
	Rep      RepKind
	Seg      Reg // segment override, or 0
	OpSize   bool
	AddrSize bool
	REX      byte // the REX byte in effect, or 0
}

// Rounding is an EVEX embedded rounding or suppress-all-exceptions decoration.
type Rounding uint8

const (
	RoundNone Rounding = iota
	RoundNearest
	RoundDown
	RoundUp
	RoundZero
	RoundSAE
)

func (r Rounding) String() string {
	switch r {
	case RoundNearest:
		return "{rn-sae}"
	case RoundDown:
		return "{rd-sae}"
	case RoundUp:
		return "{ru-sae}"
	case RoundZero:
		return "{rz-sae}"
	case RoundSAE:
		return "{sae}"
	}
	return ""
}

// Inst is a single decoded instruction.
type Inst struct {
	Op       Op
	Args     Args
	Prefix   Prefixes
	Len      int // bytes consumed
	DataSize int // effective operand size in bits
	AddrSize int // effective address size in bits

	// EVEX decorations
	Mask     Reg // opmask applied to the destination, or 0
	Zeroing  bool
	Rounding Rounding

	Feats feats.Feature
}

// Get the absolute target of a relative branch, given the address of the instruction.
func (inst Inst) Target(pc uint64) (uint64, bool) {
	for _, arg := range inst.Args {
		if rel, ok := arg.(RelArg); ok {
			return pc + uint64(inst.Len) + uint64(rel.Int64()), true
		}
	}
	return 0, false
}

// Get the absolute address referenced by a RIP-relative memory argument, given the address of
// the instruction.
func (inst Inst) MemAddr(pc uint64) (uint64, bool) {
	for _, arg := range inst.Args {
		if m, ok := arg.(Mem); ok && m.IsRIPRelative() {
			return pc + uint64(inst.Len) + uint64(m.Disp), true
		}
	}
	return 0, false
}

func hasFlag(flags, flag uint32) bool { return flags&flag != 0 }
