package x64dec

import (
	"github.com/wdamron/x64dec/feats"
	. "github.com/wdamron/x64dec/internal/flags"
)

// All tables are populated during package initialization and are read-only afterwards.

var grp1Eb = [8]opEntry{
	gp(ADD, LOCK, aEb, aIb), gp(OR, LOCK, aEb, aIb), gp(ADC, LOCK, aEb, aIb), gp(SBB, LOCK, aEb, aIb),
	gp(AND, LOCK, aEb, aIb), gp(SUB, LOCK, aEb, aIb), gp(XOR, LOCK, aEb, aIb), gp(CMP, 0, aEb, aIb),
}

var grp1Ev = [8]opEntry{
	gp(ADD, LOCK, aEv, aIz), gp(OR, LOCK, aEv, aIz), gp(ADC, LOCK, aEv, aIz), gp(SBB, LOCK, aEv, aIz),
	gp(AND, LOCK, aEv, aIz), gp(SUB, LOCK, aEv, aIz), gp(XOR, LOCK, aEv, aIz), gp(CMP, 0, aEv, aIz),
}

var grp1EvIb = [8]opEntry{
	gp(ADD, LOCK, aEv, aIbs), gp(OR, LOCK, aEv, aIbs), gp(ADC, LOCK, aEv, aIbs), gp(SBB, LOCK, aEv, aIbs),
	gp(AND, LOCK, aEv, aIbs), gp(SUB, LOCK, aEv, aIbs), gp(XOR, LOCK, aEv, aIbs), gp(CMP, 0, aEv, aIbs),
}

var grp1a = [8]opEntry{0: gp(POP, DEFAULT64, aEv)}

// shift groups, indexed by the source kind: Ib, 1, CL
var (
	grp2EbIb = shiftGroup(aEb, aIbu)
	grp2EvIb = shiftGroup(aEv, aIbu)
	grp2Eb1  = shiftGroup(aEb, aOne)
	grp2Ev1  = shiftGroup(aEv, aOne)
	grp2EbCL = shiftGroup(aEb, aCL)
	grp2EvCL = shiftGroup(aEv, aCL)
)

func shiftGroup(dst, src argKind) [8]opEntry {
	return [8]opEntry{
		gp(ROL, 0, dst, src), gp(ROR, 0, dst, src), gp(RCL, 0, dst, src), gp(RCR, 0, dst, src),
		gp(SHL, 0, dst, src), gp(SHR, 0, dst, src), gp(SAL, 0, dst, src), gp(SAR, 0, dst, src),
	}
}

var grp3Eb = [8]opEntry{
	gp(TEST, 0, aEb, aIb), gp(TEST, 0, aEb, aIb), gp(NOT, LOCK, aEb), gp(NEG, LOCK, aEb),
	gp(MUL, 0, aEb), gp(IMUL, 0, aEb), gp(DIV, 0, aEb), gp(IDIV, 0, aEb),
}

var grp3Ev = [8]opEntry{
	gp(TEST, 0, aEv, aIz), gp(TEST, 0, aEv, aIz), gp(NOT, LOCK, aEv), gp(NEG, LOCK, aEv),
	gp(MUL, 0, aEv), gp(IMUL, 0, aEv), gp(DIV, 0, aEv), gp(IDIV, 0, aEv),
}

var grp4 = [8]opEntry{gp(INC, LOCK, aEb), gp(DEC, LOCK, aEb)}

var grp5 = [8]opEntry{
	gp(INC, LOCK, aEv), gp(DEC, LOCK, aEv), gp(CALL, FORCE64, aEq), gp(CALLF, 0, aMp),
	gp(JMP, FORCE64, aEq), gp(JMPF, 0, aMp), gp(PUSH, DEFAULT64, aEv),
}

var grp11Eb = [8]opEntry{0: gp(MOV, 0, aEb, aIb)}
var grp11Ev = [8]opEntry{0: gp(MOV, 0, aEv, aIz)}

var oneByte = [256]opEntry{
	0x00: gp(ADD, LOCK, aEb, aGb), 0x01: gp(ADD, LOCK, aEv, aGv), 0x02: gp(ADD, 0, aGb, aEb), 0x03: gp(ADD, 0, aGv, aEv),
	0x04: gp(ADD, 0, aAL, aIb), 0x05: gp(ADD, 0, aRAX, aIz),
	0x08: gp(OR, LOCK, aEb, aGb), 0x09: gp(OR, LOCK, aEv, aGv), 0x0a: gp(OR, 0, aGb, aEb), 0x0b: gp(OR, 0, aGv, aEv),
	0x0c: gp(OR, 0, aAL, aIb), 0x0d: gp(OR, 0, aRAX, aIz),
	0x10: gp(ADC, LOCK, aEb, aGb), 0x11: gp(ADC, LOCK, aEv, aGv), 0x12: gp(ADC, 0, aGb, aEb), 0x13: gp(ADC, 0, aGv, aEv),
	0x14: gp(ADC, 0, aAL, aIb), 0x15: gp(ADC, 0, aRAX, aIz),
	0x18: gp(SBB, LOCK, aEb, aGb), 0x19: gp(SBB, LOCK, aEv, aGv), 0x1a: gp(SBB, 0, aGb, aEb), 0x1b: gp(SBB, 0, aGv, aEv),
	0x1c: gp(SBB, 0, aAL, aIb), 0x1d: gp(SBB, 0, aRAX, aIz),
	0x20: gp(AND, LOCK, aEb, aGb), 0x21: gp(AND, LOCK, aEv, aGv), 0x22: gp(AND, 0, aGb, aEb), 0x23: gp(AND, 0, aGv, aEv),
	0x24: gp(AND, 0, aAL, aIb), 0x25: gp(AND, 0, aRAX, aIz),
	0x28: gp(SUB, LOCK, aEb, aGb), 0x29: gp(SUB, LOCK, aEv, aGv), 0x2a: gp(SUB, 0, aGb, aEb), 0x2b: gp(SUB, 0, aGv, aEv),
	0x2c: gp(SUB, 0, aAL, aIb), 0x2d: gp(SUB, 0, aRAX, aIz),
	0x30: gp(XOR, LOCK, aEb, aGb), 0x31: gp(XOR, LOCK, aEv, aGv), 0x32: gp(XOR, 0, aGb, aEb), 0x33: gp(XOR, 0, aGv, aEv),
	0x34: gp(XOR, 0, aAL, aIb), 0x35: gp(XOR, 0, aRAX, aIz),
	0x38: gp(CMP, 0, aEb, aGb), 0x39: gp(CMP, 0, aEv, aGv), 0x3a: gp(CMP, 0, aGb, aEb), 0x3b: gp(CMP, 0, aGv, aEv),
	0x3c: gp(CMP, 0, aAL, aIb), 0x3d: gp(CMP, 0, aRAX, aIz),

	0x63: gp(MOVSXD, 0, aGv, aEd),
	0x68: gp(PUSH, DEFAULT64, aIz),
	0x69: gp(IMUL, 0, aGv, aEv, aIz),
	0x6a: gp(PUSH, DEFAULT64, aIbs),
	0x6b: gp(IMUL, 0, aGv, aEv, aIbs),
	0x6c: gp(INSB, REP),
	0x6d: gp(INSD, REP|SIZED_OP),
	0x6e: gp(OUTSB, REP),
	0x6f: gp(OUTSD, REP|SIZED_OP),

	0x80: grp(&grp1Eb),
	0x81: grp(&grp1Ev),
	0x83: grp(&grp1EvIb),
	0x84: gp(TEST, 0, aEb, aGb), 0x85: gp(TEST, 0, aEv, aGv),
	0x86: gp(XCHG, LOCK, aEb, aGb), 0x87: gp(XCHG, LOCK, aEv, aGv),
	0x88: gp(MOV, 0, aEb, aGb), 0x89: gp(MOV, 0, aEv, aGv), 0x8a: gp(MOV, 0, aGb, aEb), 0x8b: gp(MOV, 0, aGv, aEv),
	0x8c: gp(MOV, 0, aEvw, aSw),
	0x8d: gp(LEA, 0, aGv, aM),
	0x8e: gp(MOV, 0, aSwd, aEvw),
	0x8f: grp(&grp1a),

	0x90: gp(NOP, 0),
	0x98: gp(CWDE, SIZED_OP),
	0x99: gp(CDQ, SIZED_OP),
	0x9b: ent(FWAIT, 0, feats.FPU),
	0x9c: gp(PUSHF, DEFAULT64),
	0x9d: gp(POPF, DEFAULT64),
	0x9e: gp(SAHF, 0),
	0x9f: gp(LAHF, 0),

	0xa0: gp(MOV, 0, aAL, aOb), 0xa1: gp(MOV, 0, aRAX, aOv),
	0xa2: gp(MOV, 0, aOb, aAL), 0xa3: gp(MOV, 0, aOv, aRAX),
	0xa4: gp(MOVSB, REP), 0xa5: gp(MOVSD, REP|SIZED_OP),
	0xa6: gp(CMPSB, REPE), 0xa7: gp(CMPSD, REPE|SIZED_OP),
	0xa8: gp(TEST, 0, aAL, aIb), 0xa9: gp(TEST, 0, aRAX, aIz),
	0xaa: gp(STOSB, REP), 0xab: gp(STOSD, REP|SIZED_OP),
	0xac: gp(LODSB, REP), 0xad: gp(LODSD, REP|SIZED_OP),
	0xae: gp(SCASB, REPE), 0xaf: gp(SCASD, REPE|SIZED_OP),

	0xc0: grp(&grp2EbIb),
	0xc1: grp(&grp2EvIb),
	0xc2: gp(RET, DEFAULT64, aIw),
	0xc3: gp(RET, DEFAULT64),
	0xc6: grp(&grp11Eb).withRM(map[byte]opEntry{0xf8: ent(XABORT, 0, feats.RTM, aIbu)}),
	0xc7: grp(&grp11Ev).withRM(map[byte]opEntry{0xf8: ent(XBEGIN, 0, feats.RTM, aJz)}),
	0xc8: gp(ENTER, DEFAULT64, aIw, aIbu),
	0xc9: gp(LEAVE, DEFAULT64),
	0xca: gp(RETF, 0, aIw),
	0xcb: gp(RETF, 0),
	0xcc: gp(INT3, 0),
	0xcd: gp(INT, 0, aIbu),
	0xcf: gp(IRETD, SIZED_OP),

	0xd0: grp(&grp2Eb1),
	0xd1: grp(&grp2Ev1),
	0xd2: grp(&grp2EbCL),
	0xd3: grp(&grp2EvCL),
	0xd7: gp(XLAT, 0),

	0xe0: gp(LOOPNZ, FORCE64, aJb),
	0xe1: gp(LOOPZ, FORCE64, aJb),
	0xe2: gp(LOOP, FORCE64, aJb),
	0xe3: gp(JRCXZ, FORCE64, aJb),
	0xe4: gp(IN, 0, aAL, aIbu),
	0xe5: gp(IN, 0, aEAXio, aIbu),
	0xe6: gp(OUT, 0, aIbu, aAL),
	0xe7: gp(OUT, 0, aIbu, aEAXio),
	0xe8: gp(CALL, FORCE64, aJz),
	0xe9: gp(JMP, FORCE64, aJz),
	0xeb: gp(JMP, FORCE64, aJb),
	0xec: gp(IN, 0, aAL, aDX),
	0xed: gp(IN, 0, aEAXio, aDX),
	0xee: gp(OUT, 0, aDX, aAL),
	0xef: gp(OUT, 0, aDX, aEAXio),

	0xf1: gp(INT1, 0),
	0xf4: gp(HLT, 0),
	0xf5: gp(CMC, 0),
	0xf6: grp(&grp3Eb),
	0xf7: grp(&grp3Ev),
	0xf8: gp(CLC, 0),
	0xf9: gp(STC, 0),
	0xfa: gp(CLI, 0),
	0xfb: gp(STI, 0),
	0xfc: gp(CLD, 0),
	0xfd: gp(STD, 0),
	0xfe: grp(&grp4),
	0xff: grp(&grp5),
}

// Forms of 90 selected by prefixes rather than by table column.
var (
	xchgR8    = gp(XCHG, 0, aZv, aRAX)
	pauseForm = ent(PAUSE, 0, feats.SSE2)
)

// sizedOps maps the 32-bit form of an operation whose mnemonic encodes its operand size to
// its 16, 32, and 64-bit forms.
var sizedOps = map[Op][3]Op{
	INSD:      {INSW, INSD, INSD},
	OUTSD:     {OUTSW, OUTSD, OUTSD},
	MOVSD:     {MOVSW, MOVSD, MOVSQ},
	CMPSD:     {CMPSW, CMPSD, CMPSQ},
	STOSD:     {STOSW, STOSD, STOSQ},
	LODSD:     {LODSW, LODSD, LODSQ},
	SCASD:     {SCASW, SCASD, SCASQ},
	CWDE:      {CBW, CWDE, CDQE},
	CDQ:       {CWD, CDQ, CQO},
	IRETD:     {IRET, IRETD, IRETQ},
	MOVD:      {MOVD, MOVD, MOVQ},
	PEXTRD:    {PEXTRD, PEXTRD, PEXTRQ},
	PINSRD:    {PINSRD, PINSRD, PINSRQ},
	CMPXCHG8B: {CMPXCHG8B, CMPXCHG8B, CMPXCHG16B},
}

func sizedOp(op Op, opSize uint8) Op {
	forms, ok := sizedOps[op]
	if !ok {
		return op
	}
	switch opSize {
	case 2:
		return forms[0]
	case 8:
		return forms[2]
	}
	return forms[1]
}

func init() {
	for cc := 0; cc < 16; cc++ {
		oneByte[0x70+cc] = gp(Jcc(ConditionCode(cc)), FORCE64, aJb)
		twoByte[colNone][0x80+cc] = gp(Jcc(ConditionCode(cc)), FORCE64, aJz)
		twoByte[colNone][0x90+cc] = gp(Setcc(ConditionCode(cc)), HINT_MEM, aEb)
		twoByte[colNone][0x40+cc] = gp(Cmovcc(ConditionCode(cc)), 0, aGv, aEv)
	}
	for r := 0; r < 8; r++ {
		oneByte[0x50+r] = gp(PUSH, DEFAULT64, aZv)
		oneByte[0x58+r] = gp(POP, DEFAULT64, aZv)
		oneByte[0xb0+r] = gp(MOV, 0, aZb, aIb)
		oneByte[0xb8+r] = gp(MOV, 0, aZv, aIv)
		twoByte[colNone][0xc8+r] = gp(BSWAP, 0, aZy)
		if r > 0 {
			oneByte[0x90+r] = gp(XCHG, 0, aZv, aRAX)
		}
	}
	for i := range x87Mem {
		oneByte[0xd8+i] = grp(&x87Mem[i]).withRM(x87Reg[i])
	}
}
