package x64dec

import (
	"github.com/wdamron/x64dec/feats"
	. "github.com/wdamron/x64dec/internal/flags"
)

var grp6 = [8]opEntry{
	gp(SLDT, 0, aEvw), gp(STR, 0, aEvw), gp(LLDT, 0, aEw), gp(LTR, 0, aEw),
	gp(VERR, 0, aEw), gp(VERW, 0, aEw),
}

var grp7 = [8]opEntry{
	gp(SGDT, 0, aM), gp(SIDT, 0, aM), gp(LGDT, 0, aM), gp(LIDT, 0, aM),
	gp(SMSW, 0, aEvw), {}, gp(LMSW, 0, aEw), gp(INVLPG, HINT_MEM, aMb),
}

// Register forms of 0F 01, keyed by ModRM.
var grp7Reg = map[byte]opEntry{
	0xc1: ent(VMCALL, 0, feats.VMX),
	0xc2: ent(VMLAUNCH, 0, feats.VMX),
	0xc3: ent(VMRESUME, 0, feats.VMX),
	0xc4: ent(VMXOFF, 0, feats.VMX),
	0xc8: ent(MONITOR, 0, feats.SSE3),
	0xc9: ent(MWAIT, 0, feats.SSE3),
	0xca: ent(CLAC, 0, feats.SMAP),
	0xcb: ent(STAC, 0, feats.SMAP),
	0xcf: ent(ENCLS, 0, feats.X64_IMPLICIT),
	0xd0: ent(XGETBV, 0, feats.XSAVE),
	0xd1: ent(XSETBV, 0, feats.XSAVE),
	0xd5: ent(XEND, 0, feats.RTM),
	0xd6: ent(XTEST, 0, feats.RTM),
	0xd7: ent(ENCLU, 0, feats.X64_IMPLICIT),
	0xee: ent(RDPKRU, 0, feats.PKU),
	0xef: ent(WRPKRU, 0, feats.PKU),
	0xf8: gp(SWAPGS, 0),
	0xf9: ent(RDTSCP, 0, feats.RDTSCP),
	0xfa: ent(MONITORX, 0, feats.AMD),
	0xfb: ent(MWAITX, 0, feats.AMD),
	0xfc: ent(CLZERO, 0, feats.AMD),
}

var grpPrefetchAMD = [8]opEntry{
	ent(PREFETCH, HINT_MEM, feats.AMD, aMb),
	ent(PREFETCHW, HINT_MEM, feats.AMD, aMb),
}

var grp16 = [8]opEntry{
	ent(PREFETCHNTA, 0, feats.SSE, aMb),
	ent(PREFETCH0, 0, feats.SSE, aMb),
	ent(PREFETCH1, 0, feats.SSE, aMb),
	ent(PREFETCH2, 0, feats.SSE, aMb),
	gp(NOP, HINT_MEM, aEv), gp(NOP, HINT_MEM, aEv), gp(NOP, HINT_MEM, aEv), gp(NOP, HINT_MEM, aEv),
}

var (
	grp12    = [8]opEntry{2: mmx(PSRLW, aNq, aIbu), 4: mmx(PSRAW, aNq, aIbu), 6: mmx(PSLLW, aNq, aIbu)}
	grp12x   = [8]opEntry{2: sse2(PSRLW, aUx, aIbu), 4: sse2(PSRAW, aUx, aIbu), 6: sse2(PSLLW, aUx, aIbu)}
	grp13    = [8]opEntry{2: mmx(PSRLD, aNq, aIbu), 4: mmx(PSRAD, aNq, aIbu), 6: mmx(PSLLD, aNq, aIbu)}
	grp13x   = [8]opEntry{2: sse2(PSRLD, aUx, aIbu), 4: sse2(PSRAD, aUx, aIbu), 6: sse2(PSLLD, aUx, aIbu)}
	grp14    = [8]opEntry{2: mmx(PSRLQ, aNq, aIbu), 6: mmx(PSLLQ, aNq, aIbu)}
	grp14x   = [8]opEntry{2: sse2(PSRLQ, aUx, aIbu), 3: sse2(PSRLDQ, aUx, aIbu), 6: sse2(PSLLQ, aUx, aIbu), 7: sse2(PSLLDQ, aUx, aIbu)}
	grp8     = [8]opEntry{4: gp(BT, 0, aEv, aIbu), 5: gp(BTS, LOCK, aEv, aIbu), 6: gp(BTR, LOCK, aEv, aIbu), 7: gp(BTC, LOCK, aEv, aIbu)}
	grp15F3  = [8]opEntry{ent(RDFSBASE, 0, feats.FSGSBASE, aRy), ent(RDGSBASE, 0, feats.FSGSBASE, aRy), ent(WRFSBASE, 0, feats.FSGSBASE, aRy), ent(WRGSBASE, 0, feats.FSGSBASE, aRy)}
	grp15x66 = [8]opEntry{6: gp(CLWB, HINT_MEM, aMb), 7: gp(CLFLUSHOPT, HINT_MEM, aMb)}
)

var grp15 = [8]opEntry{
	ent(FXSAVE, MEM_ONLY, feats.FPU, aM),
	ent(FXRSTOR, MEM_ONLY, feats.FPU, aM),
	ent(LDMXCSR, 0, feats.SSE, aMd),
	ent(STMXCSR, 0, feats.SSE, aMd),
	ent(XSAVE, MEM_ONLY, feats.XSAVE, aM),
	ent(XRSTOR, MEM_ONLY, feats.XSAVE, aM),
	ent(XSAVEOPT, MEM_ONLY, feats.XSAVE, aM),
	ent(CLFLUSH, HINT_MEM, feats.SSE2, aMb),
}

// Register forms of 0F AE, keyed by ModRM.
var grp15Reg = func() map[byte]opEntry {
	m := make(map[byte]opEntry, 24)
	for i := byte(0); i < 8; i++ {
		m[0xe8+i] = sse2(LFENCE)
		m[0xf0+i] = sse2(MFENCE)
		m[0xf8+i] = sse(SFENCE)
	}
	return m
}()

var grp9 = [8]opEntry{
	1: gp(CMPXCHG8B, LOCK|SIZED_OP, aMcx),
	6: ent(VMPTRLD, 0, feats.VMX, aMq).withReg(ent(RDRAND, 0, feats.RDRAND, aRv)),
	7: ent(VMPTRST, 0, feats.VMX, aMq).withReg(ent(RDSEED, 0, feats.RDSEED, aRv)),
}

var grp9x66 = [8]opEntry{6: ent(VMCLEAR, 0, feats.VMX, aMq)}

var grp9F3 = [8]opEntry{
	6: ent(VMXON, 0, feats.VMX, aMq),
	7: opEntry{reg: &opEntry{op: RDPID, feats: feats.RDTSCP, args: [4]argKind{aRq}}},
}

// endbr64 and endbr32; other F3 0F 1E forms fall back to the hint nop.
var cetReg = map[byte]opEntry{
	0xfa: ent(ENDBR64, 0, feats.CET),
	0xfb: ent(ENDBR32, 0, feats.CET),
}

var twoByte = [numCols][256]opEntry{
	colNone: {
		0x00: grp(&grp6),
		0x01: grp(&grp7).withRM(grp7Reg),
		0x02: gp(LAR, 0, aGv, aEdw),
		0x03: gp(LSL, 0, aGv, aEdw),
		0x05: gp(SYSCALL, 0),
		0x06: gp(CLTS, 0),
		0x07: gp(SYSRET, 0),
		0x08: gp(INVD, 0),
		0x09: gp(WBINVD, 0),
		0x0b: gp(UD2, 0),
		0x0d: grp(&grpPrefetchAMD),
		0x0e: ent(FEMMS, 0, feats.AMD),

		0x10: sse(MOVUPS, aVx, aWx),
		0x11: sse(MOVUPS, aWx, aVx),
		0x12: sse(MOVLPS, aVx, aMq).withReg(sse(MOVHLPS, aVx, aUx)),
		0x13: sse(MOVLPS, aMq, aVx),
		0x14: sse(UNPCKLPS, aVx, aWx),
		0x15: sse(UNPCKHPS, aVx, aWx),
		0x16: sse(MOVHPS, aVx, aMq).withReg(sse(MOVLHPS, aVx, aUx)),
		0x17: sse(MOVHPS, aMq, aVx),
		0x18: grp(&grp16),
		0x19: gp(NOP, HINT_MEM, aEv),
		0x1a: gp(NOP, HINT_MEM, aEv),
		0x1b: gp(NOP, HINT_MEM, aEv),
		0x1c: gp(NOP, HINT_MEM, aEv),
		0x1d: gp(NOP, HINT_MEM, aEv),
		0x1e: gp(NOP, HINT_MEM, aEv),
		0x1f: gp(NOP, HINT_MEM, aEv),

		0x20: gp(MOV, MOD_IGNORED, aRq, aCq),
		0x21: gp(MOV, MOD_IGNORED, aRq, aDq),
		0x22: gp(MOV, MOD_IGNORED, aCq, aRq),
		0x23: gp(MOV, MOD_IGNORED, aDq, aRq),
		0x28: sse(MOVAPS, aVx, aWx),
		0x29: sse(MOVAPS, aWx, aVx),
		0x2a: sse(CVTPI2PS, aVx, aQq),
		0x2b: sse(MOVNTPS, aMx, aVx),
		0x2c: sse(CVTTPS2PI, aPq, aWq),
		0x2d: sse(CVTPS2PI, aPq, aWq),
		0x2e: sse(UCOMISS, aVx, aWd),
		0x2f: sse(COMISS, aVx, aWd),

		0x30: gp(WRMSR, 0),
		0x31: gp(RDTSC, 0),
		0x32: gp(RDMSR, 0),
		0x33: gp(RDPMC, 0),
		0x34: gp(SYSENTER, 0),
		0x35: gp(SYSEXIT, 0),
		0x37: ent(GETSEC, 0, feats.SMX),

		0x50: sse(MOVMSKPS, aGd, aUx),
		0x51: sse(SQRTPS, aVx, aWx),
		0x52: sse(RSQRTPS, aVx, aWx),
		0x53: sse(RCPPS, aVx, aWx),
		0x54: sse(ANDPS, aVx, aWx),
		0x55: sse(ANDNPS, aVx, aWx),
		0x56: sse(ORPS, aVx, aWx),
		0x57: sse(XORPS, aVx, aWx),
		0x58: sse(ADDPS, aVx, aWx),
		0x59: sse(MULPS, aVx, aWx),
		0x5a: sse2(CVTPS2PD, aVx, aWq),
		0x5b: sse2(CVTDQ2PS, aVx, aWx),
		0x5c: sse(SUBPS, aVx, aWx),
		0x5d: sse(MINPS, aVx, aWx),
		0x5e: sse(DIVPS, aVx, aWx),
		0x5f: sse(MAXPS, aVx, aWx),

		0x6e: ent(MOVD, SIZED_OP|HINT_MEM, feats.MMX, aPq, aEy),
		0x6f: mmx(MOVQ, aPq, aQq),
		0x70: sse(PSHUFW, aPq, aQq, aIbu),
		0x71: grp(&grp12),
		0x72: grp(&grp13),
		0x73: grp(&grp14),
		0x77: mmx(EMMS),
		0x78: ent(VMREAD, 0, feats.VMX, aEq, aGq),
		0x79: ent(VMWRITE, 0, feats.VMX, aGq, aEq),
		0x7e: ent(MOVD, SIZED_OP|HINT_MEM, feats.MMX, aEy, aPq),
		0x7f: mmx(MOVQ, aQq, aPq),

		0xa0: gp(PUSH, DEFAULT64, aFS),
		0xa1: gp(POP, DEFAULT64, aFS),
		0xa2: gp(CPUID, 0),
		0xa3: gp(BT, 0, aEv, aGv),
		0xa4: gp(SHLD, 0, aEv, aGv, aIbu),
		0xa5: gp(SHLD, 0, aEv, aGv, aCL),
		0xa8: gp(PUSH, DEFAULT64, aGS),
		0xa9: gp(POP, DEFAULT64, aGS),
		0xaa: gp(RSM, 0),
		0xab: gp(BTS, LOCK, aEv, aGv),
		0xac: gp(SHRD, 0, aEv, aGv, aIbu),
		0xad: gp(SHRD, 0, aEv, aGv, aCL),
		0xae: grp(&grp15).withRM(grp15Reg),
		0xaf: gp(IMUL, 0, aGv, aEv),

		0xb0: gp(CMPXCHG, LOCK, aEb, aGb),
		0xb1: gp(CMPXCHG, LOCK, aEv, aGv),
		0xb2: gp(LSS, 0, aGv, aMp),
		0xb3: gp(BTR, LOCK, aEv, aGv),
		0xb4: gp(LFS, 0, aGv, aMp),
		0xb5: gp(LGS, 0, aGv, aMp),
		0xb6: gp(MOVZX, HINT_MEM, aGv, aEb),
		0xb7: gp(MOVZX, HINT_MEM, aGv, aEw),
		0xb9: gp(UD1, 0, aGv, aEv),
		0xba: grp(&grp8),
		0xbb: gp(BTC, LOCK, aEv, aGv),
		0xbc: gp(BSF, 0, aGv, aEv),
		0xbd: gp(BSR, 0, aGv, aEv),
		0xbe: gp(MOVSX, HINT_MEM, aGv, aEb),
		0xbf: gp(MOVSX, HINT_MEM, aGv, aEw),

		0xc0: gp(XADD, LOCK, aEb, aGb),
		0xc1: gp(XADD, LOCK, aEv, aGv),
		0xc2: sse(CMPPS, aVx, aWx, aIbu),
		0xc3: ent(MOVNTI, 0, feats.SSE2, aMy, aGy),
		0xc4: ent(PINSRW, HINT_MEM, feats.SSE, aPq, aEdw, aIbu),
		0xc5: sse(PEXTRW, aGd, aNq, aIbu),
		0xc6: sse(SHUFPS, aVx, aWx, aIbu),
		0xc7: grp(&grp9),

		0xd7: sse(PMOVMSKB, aGd, aNq),
		0xe7: sse(MOVNTQ, aMq, aPq),
		0xf7: sse(MASKMOVQ, aPq, aNq),
		0xff: gp(UD0, 0, aGd, aEd),
	},

	col66: {
		0x10: sse2(MOVUPD, aVx, aWx),
		0x11: sse2(MOVUPD, aWx, aVx),
		0x12: sse2(MOVLPD, aVx, aMq),
		0x13: sse2(MOVLPD, aMq, aVx),
		0x14: sse2(UNPCKLPD, aVx, aWx),
		0x15: sse2(UNPCKHPD, aVx, aWx),
		0x16: sse2(MOVHPD, aVx, aMq),
		0x17: sse2(MOVHPD, aMq, aVx),
		0x28: sse2(MOVAPD, aVx, aWx),
		0x29: sse2(MOVAPD, aWx, aVx),
		0x2a: sse2(CVTPI2PD, aVx, aQq),
		0x2b: sse2(MOVNTPD, aMx, aVx),
		0x2c: sse2(CVTTPD2PI, aPq, aWx),
		0x2d: sse2(CVTPD2PI, aPq, aWx),
		0x2e: sse2(UCOMISD, aVx, aWq),
		0x2f: sse2(COMISD, aVx, aWq),

		0x50: sse2(MOVMSKPD, aGd, aUx),
		0x51: sse2(SQRTPD, aVx, aWx),
		0x54: sse2(ANDPD, aVx, aWx),
		0x55: sse2(ANDNPD, aVx, aWx),
		0x56: sse2(ORPD, aVx, aWx),
		0x57: sse2(XORPD, aVx, aWx),
		0x58: sse2(ADDPD, aVx, aWx),
		0x59: sse2(MULPD, aVx, aWx),
		0x5a: sse2(CVTPD2PS, aVx, aWx),
		0x5b: sse2(CVTPS2DQ, aVx, aWx),
		0x5c: sse2(SUBPD, aVx, aWx),
		0x5d: sse2(MINPD, aVx, aWx),
		0x5e: sse2(DIVPD, aVx, aWx),
		0x5f: sse2(MAXPD, aVx, aWx),

		0x6c: sse2(PUNPCKLQDQ, aVx, aWx),
		0x6d: sse2(PUNPCKHQDQ, aVx, aWx),
		0x6e: ent(MOVD, SIZED_OP|HINT_MEM, feats.SSE2, aVx, aEy),
		0x6f: sse2(MOVDQA, aVx, aWx),
		0x70: sse2(PSHUFD, aVx, aWx, aIbu),
		0x71: grp(&grp12x),
		0x72: grp(&grp13x),
		0x73: grp(&grp14x),
		0x7c: sse3(HADDPD, aVx, aWx),
		0x7d: sse3(HSUBPD, aVx, aWx),
		0x7e: ent(MOVD, SIZED_OP|HINT_MEM, feats.SSE2, aEy, aVx),
		0x7f: sse2(MOVDQA, aWx, aVx),

		0xae: grp(&grp15x66),
		0xc2: sse2(CMPPD, aVx, aWx, aIbu),
		0xc4: ent(PINSRW, HINT_MEM, feats.SSE2, aVx, aEdw, aIbu),
		0xc5: sse2(PEXTRW, aGd, aUx, aIbu),
		0xc6: sse2(SHUFPD, aVx, aWx, aIbu),
		0xc7: grp(&grp9x66),

		0xd0: sse3(ADDSUBPD, aVx, aWx),
		0xd6: sse2(MOVQ, aWq, aVx),
		0xd7: sse2(PMOVMSKB, aGd, aUx),
		0xe6: sse2(CVTTPD2DQ, aVx, aWx),
		0xe7: sse2(MOVNTDQ, aMx, aVx),
		0xf7: sse2(MASKMOVDQU, aVx, aUx),
	},

	colF3: {
		0x10: sse(MOVSS, aVx, aWd),
		0x11: sse(MOVSS, aWd, aVx),
		0x12: sse3(MOVSLDUP, aVx, aWx),
		0x16: sse3(MOVSHDUP, aVx, aWx),
		0x1e: opEntry{rmOps: cetReg},
		0x2a: sse(CVTSI2SS, aVx, aEy),
		0x2c: sse(CVTTSS2SI, aGy, aWd),
		0x2d: sse(CVTSS2SI, aGy, aWd),
		0x51: sse(SQRTSS, aVx, aWd),
		0x52: sse(RSQRTSS, aVx, aWd),
		0x53: sse(RCPSS, aVx, aWd),
		0x58: sse(ADDSS, aVx, aWd),
		0x59: sse(MULSS, aVx, aWd),
		0x5a: sse2(CVTSS2SD, aVx, aWd),
		0x5b: sse2(CVTTPS2DQ, aVx, aWx),
		0x5c: sse(SUBSS, aVx, aWd),
		0x5d: sse(MINSS, aVx, aWd),
		0x5e: sse(DIVSS, aVx, aWd),
		0x5f: sse(MAXSS, aVx, aWd),
		0x6f: sse2(MOVDQU, aVx, aWx),
		0x70: sse2(PSHUFHW, aVx, aWx, aIbu),
		0x7e: sse2(MOVQ, aVx, aWq),
		0x7f: sse2(MOVDQU, aWx, aVx),
		0xae: grp(&grp15F3),
		0xb8: ent(POPCNT, 0, feats.POPCNT, aGv, aEv),
		0xbc: ent(TZCNT, 0, feats.BMI1, aGv, aEv),
		0xbd: ent(LZCNT, 0, feats.LZCNT, aGv, aEv),
		0xc2: sse(CMPSS, aVx, aWd, aIbu),
		0xc7: grp(&grp9F3),
		0xd6: sse2(MOVQ2DQ, aVx, aNq),
		0xe6: sse2(CVTDQ2PD, aVx, aWq),
	},

	colF2: {
		0x10: sse2(MOVSD, aVx, aWq),
		0x11: sse2(MOVSD, aWq, aVx),
		0x12: sse3(MOVDDUP, aVx, aWq),
		0x2a: sse2(CVTSI2SD, aVx, aEy),
		0x2c: sse2(CVTTSD2SI, aGy, aWq),
		0x2d: sse2(CVTSD2SI, aGy, aWq),
		0x51: sse2(SQRTSD, aVx, aWq),
		0x58: sse2(ADDSD, aVx, aWq),
		0x59: sse2(MULSD, aVx, aWq),
		0x5a: sse2(CVTSD2SS, aVx, aWq),
		0x5c: sse2(SUBSD, aVx, aWq),
		0x5d: sse2(MINSD, aVx, aWq),
		0x5e: sse2(DIVSD, aVx, aWq),
		0x5f: sse2(MAXSD, aVx, aWq),
		0x70: sse2(PSHUFLW, aVx, aWx, aIbu),
		0x7c: sse3(HADDPS, aVx, aWx),
		0x7d: sse3(HSUBPS, aVx, aWx),
		0xc2: sse2(CMPSD, aVx, aWq, aIbu),
		0xd0: sse3(ADDSUBPS, aVx, aWx),
		0xd6: sse2(MOVDQ2Q, aPq, aUx),
		0xe6: sse2(CVTPD2DQ, aVx, aWx),
		0xf0: sse3(LDDQU, aVx, aMx),
	},
}

// Integer SIMD operations encoded as Pq, Qq without a prefix (MMX) and as Vx, Wx with 66 (SSE2).
var simdIntOps = map[byte]Op{
	0x60: PUNPCKLBW, 0x61: PUNPCKLWD, 0x62: PUNPCKLDQ, 0x63: PACKSSWB,
	0x64: PCMPGTB, 0x65: PCMPGTW, 0x66: PCMPGTD, 0x67: PACKUSWB,
	0x68: PUNPCKHBW, 0x69: PUNPCKHWD, 0x6a: PUNPCKHDQ, 0x6b: PACKSSDW,
	0x74: PCMPEQB, 0x75: PCMPEQW, 0x76: PCMPEQD,
	0xd1: PSRLW, 0xd2: PSRLD, 0xd3: PSRLQ, 0xd4: PADDQ, 0xd5: PMULLW,
	0xd8: PSUBUSB, 0xd9: PSUBUSW, 0xda: PMINUB, 0xdb: PAND,
	0xdc: PADDUSB, 0xdd: PADDUSW, 0xde: PMAXUB, 0xdf: PANDN,
	0xe0: PAVGB, 0xe1: PSRAW, 0xe2: PSRAD, 0xe3: PAVGW, 0xe4: PMULHUW, 0xe5: PMULHW,
	0xe8: PSUBSB, 0xe9: PSUBSW, 0xea: PMINSW, 0xeb: POR,
	0xec: PADDSB, 0xed: PADDSW, 0xee: PMAXSW, 0xef: PXOR,
	0xf1: PSLLW, 0xf2: PSLLD, 0xf3: PSLLQ, 0xf4: PMULUDQ, 0xf5: PMADDWD, 0xf6: PSADBW,
	0xf8: PSUBB, 0xf9: PSUBW, 0xfa: PSUBD, 0xfb: PSUBQ, 0xfc: PADDB, 0xfd: PADDW, 0xfe: PADDD,
}

// MMX-register forms introduced after MMX
var mmxFeats = map[Op]feats.Feature{
	PAVGB: feats.SSE, PAVGW: feats.SSE, PMAXSW: feats.SSE, PMAXUB: feats.SSE,
	PMINSW: feats.SSE, PMINUB: feats.SSE, PMULHUW: feats.SSE, PSADBW: feats.SSE,
	PADDQ: feats.SSE2, PSUBQ: feats.SSE2, PMULUDQ: feats.SSE2,
}

func init() {
	for opc, op := range simdIntOps {
		f, ok := mmxFeats[op]
		if !ok {
			f = feats.MMX
		}
		twoByte[colNone][opc] = ent(op, 0, f, aPq, aQq)
		twoByte[col66][opc] = sse2(op, aVx, aWx)
	}
}
