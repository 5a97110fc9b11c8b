package x64flags

// Flags
const (
	DEFAULT uint32 = 0         // this instruction has default decoding
	LOCK    uint32 = 1 << iota // lock prefix is valid with this instruction
	REP                        // a rep prefix renders as "rep"
	REPE                       // rep prefixes render as "repz"/"repnz"

	// note: the first 2 in this block are mutually exclusive
	DEFAULT64 // 16 bit -> OPSIZE , 32-bit -> n/a , 64-bit -> default (push, pop, near branches)
	FORCE64   // operand size is always 64 bits, prefixes are ignored
	SIZED_OP  // the mnemonic changes with the operand size (stosb/stosw/stosd/stosq, movd/movq)
	WIDE_OP   // REX.W (or EVEX.W) selects the entry's wide form

	MEM_ONLY    // ModRM.mod == 3 is not a valid form
	REG_ONLY    // ModRM.mod != 3 is not a valid form
	MOD_IGNORED // ModRM.rm always names a register, regardless of ModRM.mod
	HINT_MEM    // memory operands render with their size keyword

	EVEX_OP   // this instruction is only reachable through the EVEX prefix
	EVEX_W0   // EVEX.W must be 0
	EVEX_W1   // EVEX.W must be 1
	BCST      // EVEX.b on a memory operand selects an embedded broadcast
	ER        // EVEX.b on register operands selects embedded rounding
	SAE       // EVEX.b on register operands suppresses exceptions
	TUPLE_FV  // disp8 scaled by the vector length, or by the element size with broadcast
	TUPLE_FVM // disp8 scaled by the vector length
	TUPLE_T1S // disp8 scaled by the element size
	NO_MASK   // opmask registers are not valid for this instruction
	LIG       // EVEX.L'L is ignored (scalar operations)
)

func FlagName(f uint32) string { return flagNames[f] }

var flagNames = map[uint32]string{
	DEFAULT:     "DEFAULT",
	LOCK:        "LOCK",
	REP:         "REP",
	REPE:        "REPE",
	DEFAULT64:   "DEFAULT64",
	FORCE64:     "FORCE64",
	SIZED_OP:    "SIZED_OP",
	WIDE_OP:     "WIDE_OP",
	MEM_ONLY:    "MEM_ONLY",
	REG_ONLY:    "REG_ONLY",
	MOD_IGNORED: "MOD_IGNORED",
	HINT_MEM:    "HINT_MEM",
	EVEX_OP:     "EVEX_OP",
	EVEX_W0:     "EVEX_W0",
	EVEX_W1:     "EVEX_W1",
	BCST:        "BCST",
	ER:          "ER",
	SAE:         "SAE",
	TUPLE_FV:    "TUPLE_FV",
	TUPLE_FVM:   "TUPLE_FVM",
	TUPLE_T1S:   "TUPLE_T1S",
	NO_MASK:     "NO_MASK",
	LIG:         "LIG",
}
