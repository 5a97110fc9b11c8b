package x64dec

// ConditionCode is the 4-bit condition encoded in the low bits of jcc, setcc, and cmovcc opcodes.
type ConditionCode byte

const (
	CCOverflow    ConditionCode = 0x0
	CCNoOverflow  ConditionCode = 0x1
	CCUnsignedLT  ConditionCode = 0x2
	CCUnsignedGTE ConditionCode = 0x3
	CCEq          ConditionCode = 0x4
	CCNeq         ConditionCode = 0x5
	CCUnsignedLTE ConditionCode = 0x6
	CCUnsignedGT  ConditionCode = 0x7
	CCSign        ConditionCode = 0x8
	CCNoSign      ConditionCode = 0x9
	CCParity      ConditionCode = 0xA
	CCNoParity    ConditionCode = 0xB
	CCSignedLT    ConditionCode = 0xC
	CCSignedGTE   ConditionCode = 0xD
	CCSignedLTE   ConditionCode = 0xE
	CCSignedGT    ConditionCode = 0xF
)

var ccNames = [16]string{"o", "no", "b", "nb", "z", "nz", "na", "a", "s", "ns", "p", "np", "l", "ge", "le", "g"}

// Get the mnemonic suffix for the condition code.
func (cc ConditionCode) String() string { return ccNames[cc&0xf] }

// Invert a condition code.
func (cc ConditionCode) Inverse() ConditionCode { return (cc ^ 1) & 0xf }

var jccTable = [16]Op{
	JO, JNO, JB, JNB, JZ, JNZ, JNA, JA,
	JS, JNS, JP, JNP, JL, JGE, JLE, JG,
}

var setccTable = [16]Op{
	SETO, SETNO, SETB, SETNB, SETZ, SETNZ, SETNA, SETA,
	SETS, SETNS, SETP, SETNP, SETL, SETGE, SETLE, SETG,
}

var cmovccTable = [16]Op{
	CMOVO, CMOVNO, CMOVB, CMOVNB, CMOVZ, CMOVNZ, CMOVNA, CMOVA,
	CMOVS, CMOVNS, CMOVP, CMOVNP, CMOVL, CMOVGE, CMOVLE, CMOVG,
}

// Get the conditional-jump instruction for a condition code.
func Jcc(cc ConditionCode) Op { return jccTable[cc&0xf] }

// Get the conditional-set instruction for a condition code.
func Setcc(cc ConditionCode) Op { return setccTable[cc&0xf] }

// Get the conditional-move instruction for a condition code.
func Cmovcc(cc ConditionCode) Op { return cmovccTable[cc&0xf] }

// Get the condition tested by a jcc, setcc, or cmovcc instruction.
func (op Op) Condition() (ConditionCode, bool) {
	for _, table := range [...]*[16]Op{&jccTable, &setccTable, &cmovccTable} {
		for cc, x := range table {
			if x == op {
				return ConditionCode(cc), true
			}
		}
	}
	return 0, false
}
