package x64dec

import (
	"github.com/wdamron/x64dec/feats"
)

func fpu(op Op, args ...argKind) opEntry { return ent(op, 0, feats.FPU, args...) }

// Memory forms of D8-DF, indexed by opcode-0xD8 and ModRM.reg.
var x87Mem = [8][8]opEntry{
	{fpu(FADD, aMd), fpu(FMUL, aMd), fpu(FCOM, aMd), fpu(FCOMP, aMd), fpu(FSUB, aMd), fpu(FSUBR, aMd), fpu(FDIV, aMd), fpu(FDIVR, aMd)},
	{fpu(FLD, aMd), {}, fpu(FST, aMd), fpu(FSTP, aMd), fpu(FLDENV, aM), fpu(FLDCW, aMw), fpu(FNSTENV, aM), fpu(FNSTCW, aMw)},
	{fpu(FIADD, aMd), fpu(FIMUL, aMd), fpu(FICOM, aMd), fpu(FICOMP, aMd), fpu(FISUB, aMd), fpu(FISUBR, aMd), fpu(FIDIV, aMd), fpu(FIDIVR, aMd)},
	{fpu(FILD, aMd), fpu(FISTTP, aMd), fpu(FIST, aMd), fpu(FISTP, aMd), {}, fpu(FLD, aMt), {}, fpu(FSTP, aMt)},
	{fpu(FADD, aMq), fpu(FMUL, aMq), fpu(FCOM, aMq), fpu(FCOMP, aMq), fpu(FSUB, aMq), fpu(FSUBR, aMq), fpu(FDIV, aMq), fpu(FDIVR, aMq)},
	{fpu(FLD, aMq), fpu(FISTTP, aMq), fpu(FST, aMq), fpu(FSTP, aMq), fpu(FRSTOR, aM), {}, fpu(FNSAVE, aM), fpu(FNSTSW, aMw)},
	{fpu(FIADD, aMw), fpu(FIMUL, aMw), fpu(FICOM, aMw), fpu(FICOMP, aMw), fpu(FISUB, aMw), fpu(FISUBR, aMw), fpu(FIDIV, aMw), fpu(FIDIVR, aMw)},
	{fpu(FILD, aMw), fpu(FISTTP, aMw), fpu(FIST, aMw), fpu(FISTP, aMw), fpu(FBLD, aMt), fpu(FILD, aMq), fpu(FBSTP, aMt), fpu(FISTP, aMq)},
}

// Register forms taking st(i), indexed by opcode-0xD8 and ModRM.reg.
var x87Rows = [8][8]opEntry{
	{fpu(FADD, aST0, aSTi), fpu(FMUL, aST0, aSTi), fpu(FCOM, aST0, aSTi), fpu(FCOMP, aST0, aSTi), fpu(FSUB, aST0, aSTi), fpu(FSUBR, aST0, aSTi), fpu(FDIV, aST0, aSTi), fpu(FDIVR, aST0, aSTi)},
	{fpu(FLD, aSTi), fpu(FXCH, aSTi)},
	{fpu(FCMOVB, aST0, aSTi), fpu(FCMOVE, aST0, aSTi), fpu(FCMOVBE, aST0, aSTi), fpu(FCMOVU, aST0, aSTi)},
	{fpu(FCMOVNB, aST0, aSTi), fpu(FCMOVNE, aST0, aSTi), fpu(FCMOVNBE, aST0, aSTi), fpu(FCMOVNU, aST0, aSTi), {}, fpu(FUCOMI, aST0, aSTi), fpu(FCOMI, aST0, aSTi)},
	{fpu(FADD, aSTi, aST0), fpu(FMUL, aSTi, aST0), {}, {}, fpu(FSUBR, aSTi, aST0), fpu(FSUB, aSTi, aST0), fpu(FDIVR, aSTi, aST0), fpu(FDIV, aSTi, aST0)},
	{fpu(FFREE, aSTi), {}, fpu(FST, aSTi), fpu(FSTP, aSTi), fpu(FUCOM, aSTi), fpu(FUCOMP, aSTi)},
	{fpu(FADDP, aSTi, aST0), fpu(FMULP, aSTi, aST0), {}, {}, fpu(FSUBRP, aSTi, aST0), fpu(FSUBP, aSTi, aST0), fpu(FDIVRP, aSTi, aST0), fpu(FDIVP, aSTi, aST0)},
	{5: fpu(FUCOMIP, aST0, aSTi), 6: fpu(FCOMIP, aST0, aSTi)},
}

// Register forms without st(i), keyed by opcode and ModRM.
var x87Fixed = map[[2]byte]opEntry{
	{0xd9, 0xd0}: fpu(FNOP),
	{0xd9, 0xe0}: fpu(FCHS),
	{0xd9, 0xe1}: fpu(FABS),
	{0xd9, 0xe4}: fpu(FTST),
	{0xd9, 0xe5}: fpu(FXAM),
	{0xd9, 0xe8}: fpu(FLD1),
	{0xd9, 0xe9}: fpu(FLDL2T),
	{0xd9, 0xea}: fpu(FLDL2E),
	{0xd9, 0xeb}: fpu(FLDPI),
	{0xd9, 0xec}: fpu(FLDLG2),
	{0xd9, 0xed}: fpu(FLDLN2),
	{0xd9, 0xee}: fpu(FLDZ),
	{0xd9, 0xf0}: fpu(F2XM1),
	{0xd9, 0xf1}: fpu(FYL2X),
	{0xd9, 0xf2}: fpu(FPTAN),
	{0xd9, 0xf3}: fpu(FPATAN),
	{0xd9, 0xf4}: fpu(FXTRACT),
	{0xd9, 0xf5}: fpu(FPREM1),
	{0xd9, 0xf6}: fpu(FDECSTP),
	{0xd9, 0xf7}: fpu(FINCSTP),
	{0xd9, 0xf8}: fpu(FPREM),
	{0xd9, 0xf9}: fpu(FYL2XP1),
	{0xd9, 0xfa}: fpu(FSQRT),
	{0xd9, 0xfb}: fpu(FSINCOS),
	{0xd9, 0xfc}: fpu(FRNDINT),
	{0xd9, 0xfd}: fpu(FSCALE),
	{0xd9, 0xfe}: fpu(FSIN),
	{0xd9, 0xff}: fpu(FCOS),
	{0xda, 0xe9}: fpu(FUCOMPP),
	{0xdb, 0xe2}: fpu(FNCLEX),
	{0xdb, 0xe3}: fpu(FNINIT),
	{0xde, 0xd9}: fpu(FCOMPP),
	{0xdf, 0xe0}: fpu(FNSTSW, aAX),
}

// x87Reg holds every register form of D8-DF keyed by ModRM, indexed by opcode-0xD8.
var x87Reg = func() (m [8]map[byte]opEntry) {
	for i := range m {
		m[i] = make(map[byte]opEntry, 64)
		for reg, e := range x87Rows[i] {
			if e.op == INVALID {
				continue
			}
			for st := 0; st < 8; st++ {
				m[i][byte(0xc0|reg<<3|st)] = e
			}
		}
	}
	for k, e := range x87Fixed {
		m[k[0]-0xd8][k[1]] = e
	}
	return m
}()
