package x64dec

import (
	"github.com/wdamron/x64dec/feats"
	. "github.com/wdamron/x64dec/internal/flags"
)

var map0F38 = [numCols][256]opEntry{
	colNone: {
		0xc8: ent(SHA1NEXTE, 0, feats.SHA, aVx, aWx),
		0xc9: ent(SHA1MSG1, 0, feats.SHA, aVx, aWx),
		0xca: ent(SHA1MSG2, 0, feats.SHA, aVx, aWx),
		0xcb: ent(SHA256RNDS2, 0, feats.SHA, aVx, aWx, aXMM0),
		0xcc: ent(SHA256MSG1, 0, feats.SHA, aVx, aWx),
		0xcd: ent(SHA256MSG2, 0, feats.SHA, aVx, aWx),
		0xf0: ent(MOVBE, MEM_ONLY, feats.MOVBE, aGv, aEv),
		0xf1: ent(MOVBE, MEM_ONLY, feats.MOVBE, aEv, aGv),
	},
	col66: {
		0x10: sse41(PBLENDVB, aVx, aWx, aXMM0),
		0x14: sse41(BLENDVPS, aVx, aWx, aXMM0),
		0x15: sse41(BLENDVPD, aVx, aWx, aXMM0),
		0x17: sse41(PTEST, aVx, aWx),
		0x20: sse41(PMOVSXBW, aVx, aWq),
		0x21: sse41(PMOVSXBD, aVx, aWd),
		0x22: sse41(PMOVSXBQ, aVx, aWw),
		0x23: sse41(PMOVSXWD, aVx, aWq),
		0x24: sse41(PMOVSXWQ, aVx, aWd),
		0x25: sse41(PMOVSXDQ, aVx, aWq),
		0x28: sse41(PMULDQ, aVx, aWx),
		0x29: sse41(PCMPEQQ, aVx, aWx),
		0x2a: sse41(MOVNTDQA, aVx, aMx),
		0x2b: sse41(PACKUSDW, aVx, aWx),
		0x30: sse41(PMOVZXBW, aVx, aWq),
		0x31: sse41(PMOVZXBD, aVx, aWd),
		0x32: sse41(PMOVZXBQ, aVx, aWw),
		0x33: sse41(PMOVZXWD, aVx, aWq),
		0x34: sse41(PMOVZXWQ, aVx, aWd),
		0x35: sse41(PMOVZXDQ, aVx, aWq),
		0x37: sse42(PCMPGTQ, aVx, aWx),
		0x38: sse41(PMINSB, aVx, aWx),
		0x39: sse41(PMINSD, aVx, aWx),
		0x3a: sse41(PMINUW, aVx, aWx),
		0x3b: sse41(PMINUD, aVx, aWx),
		0x3c: sse41(PMAXSB, aVx, aWx),
		0x3d: sse41(PMAXSD, aVx, aWx),
		0x3e: sse41(PMAXUW, aVx, aWx),
		0x3f: sse41(PMAXUD, aVx, aWx),
		0x40: sse41(PMULLD, aVx, aWx),
		0x41: sse41(PHMINPOSUW, aVx, aWx),
		0x80: ent(INVEPT, 0, feats.VMX, aGq, aMdq),
		0x81: ent(INVVPID, 0, feats.VMX, aGq, aMdq),
		0x82: gp(INVPCID, 0, aGq, aMdq),
		0xdb: ent(AESIMC, 0, feats.AES, aVx, aWx),
		0xdc: ent(AESENC, 0, feats.AES, aVx, aWx),
		0xdd: ent(AESENCLAST, 0, feats.AES, aVx, aWx),
		0xde: ent(AESDEC, 0, feats.AES, aVx, aWx),
		0xdf: ent(AESDECLAST, 0, feats.AES, aVx, aWx),
		0xf6: gp(ADCX, 0, aGy, aEy),
	},
	colF3: {
		0xf6: gp(ADOX, 0, aGy, aEy),
	},
	colF2: {
		0xf0: ent(CRC32, HINT_MEM, feats.SSE42, aGy, aEb),
		0xf1: ent(CRC32, HINT_MEM, feats.SSE42, aGy, aEv),
	},
}

// SSSE3 operations encoded as Pq, Qq without a prefix and as Vx, Wx with 66.
var ssse3Ops = map[byte]Op{
	0x00: PSHUFB, 0x01: PHADDW, 0x02: PHADDD, 0x03: PHADDSW,
	0x04: PMADDUBSW, 0x05: PHSUBW, 0x06: PHSUBD, 0x07: PHSUBSW,
	0x08: PSIGNB, 0x09: PSIGNW, 0x0a: PSIGND, 0x0b: PMULHRSW,
	0x1c: PABSB, 0x1d: PABSW, 0x1e: PABSD,
}

var map0F3A = [numCols][256]opEntry{
	colNone: {
		0x0f: ssse3(PALIGNR, aPq, aQq, aIbu),
		0xcc: ent(SHA1RNDS4, 0, feats.SHA, aVx, aWx, aIbu),
	},
	col66: {
		0x08: sse41(ROUNDPS, aVx, aWx, aIbu),
		0x09: sse41(ROUNDPD, aVx, aWx, aIbu),
		0x0a: sse41(ROUNDSS, aVx, aWd, aIbu),
		0x0b: sse41(ROUNDSD, aVx, aWq, aIbu),
		0x0c: sse41(BLENDPS, aVx, aWx, aIbu),
		0x0d: sse41(BLENDPD, aVx, aWx, aIbu),
		0x0e: sse41(PBLENDW, aVx, aWx, aIbu),
		0x0f: ssse3(PALIGNR, aVx, aWx, aIbu),
		0x14: ent(PEXTRB, HINT_MEM, feats.SSE41, aEdb, aVx, aIbu),
		0x15: ent(PEXTRW, HINT_MEM, feats.SSE41, aEdw, aVx, aIbu),
		0x16: ent(PEXTRD, HINT_MEM|SIZED_OP, feats.SSE41, aEy, aVx, aIbu),
		0x17: ent(EXTRACTPS, HINT_MEM, feats.SSE41, aEd, aVx, aIbu),
		0x20: ent(PINSRB, HINT_MEM, feats.SSE41, aVx, aEdb, aIbu),
		0x21: sse41(INSERTPS, aVx, aWd, aIbu),
		0x22: ent(PINSRD, HINT_MEM|SIZED_OP, feats.SSE41, aVx, aEy, aIbu),
		0x40: sse41(DPPS, aVx, aWx, aIbu),
		0x41: sse41(DPPD, aVx, aWx, aIbu),
		0x42: sse41(MPSADBW, aVx, aWx, aIbu),
		0x44: ent(PCLMULQDQ, 0, feats.PCLMULQDQ, aVx, aWx, aIbu),
		0x60: sse42(PCMPESTRM, aVx, aWx, aIbu),
		0x61: sse42(PCMPESTRI, aVx, aWx, aIbu),
		0x62: sse42(PCMPISTRM, aVx, aWx, aIbu),
		0x63: sse42(PCMPISTRI, aVx, aWx, aIbu),
		0xdf: ent(AESKEYGENASSIST, 0, feats.AES, aVx, aWx, aIbu),
	},
}

func init() {
	for opc, op := range ssse3Ops {
		map0F38[colNone][opc] = ssse3(op, aPq, aQq)
		map0F38[col66][opc] = ssse3(op, aVx, aWx)
	}
}
