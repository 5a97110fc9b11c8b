package x64dec

import (
	"github.com/wdamron/x64dec/feats"
	. "github.com/wdamron/x64dec/internal/flags"
)

func avx512(op Op, flags uint32, args ...argKind) opEntry {
	return ent(op, flags|EVEX_OP, feats.AVX512F, args...)
}

func avx512dq(op Op, flags uint32, args ...argKind) opEntry {
	return ent(op, flags|EVEX_OP, feats.AVX512DQ, args...)
}

// Packed arithmetic with broadcast, embedded rounding, and a vvvv source.
func evexArith(ps, pd Op, extra uint32) (opEntry, opEntry) {
	f := TUPLE_FV | BCST | extra
	return avx512(ps, f|EVEX_W0, aVx, aHx, aWx), avx512(pd, f|EVEX_W1, aVx, aHx, aWx)
}

// Scalar arithmetic with embedded rounding.
func evexScalar(ss, sd Op, extra uint32) (opEntry, opEntry) {
	f := TUPLE_T1S | LIG | extra
	return avx512(ss, f|EVEX_W0, aVdq, aHdq, aWd), avx512(sd, f|EVEX_W1, aVdq, aHdq, aWq)
}

// Integer operations whose element width follows EVEX.W.
func evexIntW(d, q Op, args ...argKind) opEntry {
	return avx512(d, TUPLE_FV|BCST|EVEX_W0, args...).withWide(avx512(q, TUPLE_FV|BCST|EVEX_W1, args...))
}

// evexMaps holds EVEX opcode maps 1-3 (0F, 0F 38, 0F 3A), indexed by map-1 and EVEX.pp.
var evexMaps [3][numCols]map[byte]opEntry

func init() {
	m1 := [numCols]map[byte]opEntry{
		colNone: {
			0x10: avx512(VMOVUPS, TUPLE_FVM|EVEX_W0, aVx, aWx),
			0x11: avx512(VMOVUPS, TUPLE_FVM|EVEX_W0, aWx, aVx),
			0x28: avx512(VMOVAPS, TUPLE_FVM|EVEX_W0, aVx, aWx),
			0x29: avx512(VMOVAPS, TUPLE_FVM|EVEX_W0, aWx, aVx),
			0x2b: avx512(VMOVNTPS, TUPLE_FVM|EVEX_W0|NO_MASK, aMx, aVx),
			0x51: avx512(VSQRTPS, TUPLE_FV|BCST|ER|EVEX_W0, aVx, aWx),
			0x54: avx512dq(VANDPS, TUPLE_FV|BCST|EVEX_W0, aVx, aHx, aWx),
			0x57: avx512dq(VXORPS, TUPLE_FV|BCST|EVEX_W0, aVx, aHx, aWx),
		},
		col66: {
			0x10: avx512(VMOVUPD, TUPLE_FVM|EVEX_W1, aVx, aWx),
			0x11: avx512(VMOVUPD, TUPLE_FVM|EVEX_W1, aWx, aVx),
			0x28: avx512(VMOVAPD, TUPLE_FVM|EVEX_W1, aVx, aWx),
			0x29: avx512(VMOVAPD, TUPLE_FVM|EVEX_W1, aWx, aVx),
			0x2b: avx512(VMOVNTPD, TUPLE_FVM|EVEX_W1|NO_MASK, aMx, aVx),
			0x51: avx512(VSQRTPD, TUPLE_FV|BCST|ER|EVEX_W1, aVx, aWx),
			0x54: avx512dq(VANDPD, TUPLE_FV|BCST|EVEX_W1, aVx, aHx, aWx),
			0x57: avx512dq(VXORPD, TUPLE_FV|BCST|EVEX_W1, aVx, aHx, aWx),
			0x6f: avx512(VMOVDQA32, TUPLE_FVM|EVEX_W0, aVx, aWx).withWide(avx512(VMOVDQA64, TUPLE_FVM|EVEX_W1, aVx, aWx)),
			0x7f: avx512(VMOVDQA32, TUPLE_FVM|EVEX_W0, aWx, aVx).withWide(avx512(VMOVDQA64, TUPLE_FVM|EVEX_W1, aWx, aVx)),
			0x76: avx512(VPCMPEQD, TUPLE_FV|BCST|EVEX_W0, aKG, aHx, aWx),
			0xd4: avx512(VPADDQ, TUPLE_FV|BCST|EVEX_W1, aVx, aHx, aWx),
			0xdb: evexIntW(VPANDD, VPANDQ, aVx, aHx, aWx),
			0xe7: avx512(VMOVNTDQ, TUPLE_FVM|EVEX_W0|NO_MASK, aMx, aVx),
			0xeb: evexIntW(VPORD, VPORQ, aVx, aHx, aWx),
			0xef: evexIntW(VPXORD, VPXORQ, aVx, aHx, aWx),
			0xfa: avx512(VPSUBD, TUPLE_FV|BCST|EVEX_W0, aVx, aHx, aWx),
			0xfb: avx512(VPSUBQ, TUPLE_FV|BCST|EVEX_W1, aVx, aHx, aWx),
			0xfe: avx512(VPADDD, TUPLE_FV|BCST|EVEX_W0, aVx, aHx, aWx),
		},
		colF3: {
			0x6f: avx512(VMOVDQU32, TUPLE_FVM|EVEX_W0, aVx, aWx).withWide(avx512(VMOVDQU64, TUPLE_FVM|EVEX_W1, aVx, aWx)),
			0x7f: avx512(VMOVDQU32, TUPLE_FVM|EVEX_W0, aWx, aVx).withWide(avx512(VMOVDQU64, TUPLE_FVM|EVEX_W1, aWx, aVx)),
		},
		colF2: {},
	}

	for _, a := range []struct {
		opc    byte
		ps, pd Op
		ss, sd Op
		extra  uint32
	}{
		{0x58, VADDPS, VADDPD, VADDSS, VADDSD, ER},
		{0x59, VMULPS, VMULPD, VMULSS, VMULSD, ER},
		{0x5c, VSUBPS, VSUBPD, VSUBSS, VSUBSD, ER},
		{0x5d, VMINPS, VMINPD, VMINSS, VMINSD, SAE},
		{0x5e, VDIVPS, VDIVPD, VDIVSS, VDIVSD, ER},
		{0x5f, VMAXPS, VMAXPD, VMAXSS, VMAXSD, SAE},
	} {
		m1[colNone][a.opc], m1[col66][a.opc] = evexArith(a.ps, a.pd, a.extra)
		m1[colF3][a.opc], m1[colF2][a.opc] = evexScalar(a.ss, a.sd, a.extra)
	}
	m1[colF3][0x51], m1[colF2][0x51] = evexScalar(VSQRTSS, VSQRTSD, ER)

	m2 := [numCols]map[byte]opEntry{
		col66: {
			0x18: avx512(VBROADCASTSS, TUPLE_T1S|EVEX_W0, aVx, aWd),
			0x19: avx512(VBROADCASTSD, TUPLE_T1S|EVEX_W1, aVx, aWq),
			0x29: avx512(VPCMPEQQ, TUPLE_FV|BCST|EVEX_W1, aKG, aHx, aWx),
			0x2a: avx512(VMOVNTDQA, TUPLE_FVM|EVEX_W0|NO_MASK, aVx, aMx),
			0x40: avx512(VPMULLD, TUPLE_FV|BCST|EVEX_W0, aVx, aHx, aWx).withWide(avx512dq(VPMULLQ, TUPLE_FV|BCST|EVEX_W1, aVx, aHx, aWx)),
			0x58: avx512(VPBROADCASTD, TUPLE_T1S|EVEX_W0, aVx, aWd),
			0x59: avx512(VPBROADCASTQ, TUPLE_T1S|EVEX_W1, aVx, aWq),
			0x64: evexIntW(VPBLENDMD, VPBLENDMQ, aVx, aHx, aWx),
		},
	}

	m3 := [numCols]map[byte]opEntry{
		col66: {
			0x03: evexIntW(VALIGND, VALIGNQ, aVx, aHx, aWx, aIbu),
			0x1e: evexIntW(VPCMPUD, VPCMPUQ, aKG, aHx, aWx, aIbu),
			0x1f: evexIntW(VPCMPD, VPCMPQ, aKG, aHx, aWx, aIbu),
		},
	}

	evexMaps = [3][numCols]map[byte]opEntry{m1, m2, m3}
}
