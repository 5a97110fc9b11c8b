package x64dec

import (
	"github.com/wdamron/x64dec/feats"
	. "github.com/wdamron/x64dec/internal/flags"
)

// argKind describes where an argument is encoded and how wide it is.
//
// Naming follows the operand-type letters of the architecture manuals:
//
// 	G : general register in ModRM.reg
// 	E : general register or memory in ModRM.rm
// 	M : memory in ModRM.rm
// 	R : general register in ModRM.rm
// 	S : segment register in ModRM.reg
// 	C : control register in ModRM.reg
// 	D : debug register in ModRM.reg
// 	P : mmx register in ModRM.reg
// 	Q : mmx register or memory in ModRM.rm
// 	N : mmx register in ModRM.rm
// 	V : vector register in ModRM.reg
// 	W : vector register or memory in ModRM.rm
// 	U : vector register in ModRM.rm
// 	H : vector register in EVEX.vvvv
// 	I : immediate
// 	J : relative displacement
// 	O : absolute address (moffs)
// 	Z : general register in the low 3 bits of the opcode
//
// 	b : byte, w : word, d : dword, q : qword, t : tbyte, dq : 16 bytes
// 	v : operand size (16, 32, or 64 bits)
// 	y : 32 bits, or 64 bits with REX.W
// 	z : 16 or 32 bits (32 bits sign-extended for 64-bit operands)
// 	x : vector length
type argKind uint8

const (
	aNone argKind = iota

	aGb
	aGw
	aGd
	aGq
	aGv
	aGy

	aEb
	aEw
	aEd
	aEq
	aEv
	aEy
	aEdb // r32 or m8
	aEdw // r32 or m16
	aEvw // rv or m16

	aM
	aMb
	aMw
	aMd
	aMq
	aMdq
	aMt
	aMp // far pointer
	aMx
	aMy
	aMcx // m64, or m128 with REX.W

	aRv
	aRy
	aRq

	aSw
	aSwd // loaded segment register: cs is not a valid destination
	aCq
	aDq

	aPq
	aQq
	aQd
	aNq

	aVx
	aVdq // always xmm
	aWx
	aWq
	aWd
	aWw
	aUx
	aHx
	aHdq // always xmm
	aKG  // opmask register in ModRM.reg

	aIb
	aIbs // sign-extended to the operand size
	aIbu
	aIw
	aIz
	aIv
	aJb
	aJz
	aOb
	aOv

	aZb
	aZv
	aZq
	aZy

	aAL
	aAX
	aRAX   // accumulator of the operand size
	aEAXio // ax or eax
	aCL
	aDX
	aOne
	aFS
	aGS
	aXMM0
	aST0
	aSTi

	numArgKinds
)

type kindInfo struct {
	modrm   bool // the argument is encoded in ModRM
	memOnly bool
	regOnly bool
	hint    bool // memory forms always display their size keyword
}

var kinds = [numArgKinds]kindInfo{
	aGb: {modrm: true}, aGw: {modrm: true}, aGd: {modrm: true}, aGq: {modrm: true}, aGv: {modrm: true}, aGy: {modrm: true},

	aEb: {modrm: true}, aEw: {modrm: true}, aEd: {modrm: true}, aEq: {modrm: true}, aEv: {modrm: true}, aEy: {modrm: true},
	aEdb: {modrm: true}, aEdw: {modrm: true}, aEvw: {modrm: true},

	aM:   {modrm: true, memOnly: true},
	aMb:  {modrm: true, memOnly: true, hint: true},
	aMw:  {modrm: true, memOnly: true, hint: true},
	aMd:  {modrm: true, memOnly: true, hint: true},
	aMq:  {modrm: true, memOnly: true, hint: true},
	aMdq: {modrm: true, memOnly: true, hint: true},
	aMt:  {modrm: true, memOnly: true, hint: true},
	aMp:  {modrm: true, memOnly: true},
	aMx:  {modrm: true, memOnly: true, hint: true},
	aMy:  {modrm: true, memOnly: true},
	aMcx: {modrm: true, memOnly: true, hint: true},

	aRv: {modrm: true, regOnly: true}, aRy: {modrm: true, regOnly: true}, aRq: {modrm: true, regOnly: true},

	aSw: {modrm: true}, aSwd: {modrm: true}, aCq: {modrm: true}, aDq: {modrm: true},

	aPq: {modrm: true}, aQq: {modrm: true, hint: true}, aQd: {modrm: true}, aNq: {modrm: true, regOnly: true},

	aVx: {modrm: true}, aVdq: {modrm: true},
	aWx: {modrm: true, hint: true}, aWq: {modrm: true}, aWd: {modrm: true}, aWw: {modrm: true},
	aUx: {modrm: true, regOnly: true},
	aKG: {modrm: true},

	aSTi: {modrm: true, regOnly: true},
}

// opEntry describes one cell of an opcode table.
type opEntry struct {
	op    Op
	flags uint32
	feats feats.Feature
	args  [4]argKind

	group *[8]opEntry      // resolved by ModRM.reg
	reg   *opEntry         // replaces this entry when ModRM.mod == 3
	rmOps map[byte]opEntry // register forms keyed by the whole ModRM byte
	wide  *opEntry         // replaces this entry when REX.W or EVEX.W is set
}

func (e *opEntry) empty() bool {
	return e.op == INVALID && e.group == nil && e.rmOps == nil && e.reg == nil
}

// Check if the entry reads a ModRM byte.
func (e *opEntry) needsModRM() bool {
	if e.group != nil || e.rmOps != nil || e.reg != nil {
		return true
	}
	for _, k := range e.args {
		if kinds[k].modrm {
			return true
		}
	}
	return false
}

// Check if the entry accepts the form selected by ModRM.mod.
func (e *opEntry) acceptsMod(mod byte) bool {
	if mod == 3 && hasFlag(e.flags, MEM_ONLY) || mod != 3 && hasFlag(e.flags, REG_ONLY) {
		return false
	}
	if hasFlag(e.flags, MOD_IGNORED) {
		return true
	}
	for _, k := range e.args {
		if mod == 3 && kinds[k].memOnly || mod != 3 && kinds[k].regOnly {
			return false
		}
	}
	return true
}

func ent(op Op, flags uint32, f feats.Feature, args ...argKind) opEntry {
	e := opEntry{op: op, flags: flags, feats: f}
	copy(e.args[:], args)
	return e
}

func gp(op Op, flags uint32, args ...argKind) opEntry {
	return ent(op, flags, feats.X64_IMPLICIT, args...)
}

func mmx(op Op, args ...argKind) opEntry   { return ent(op, 0, feats.MMX, args...) }
func sse(op Op, args ...argKind) opEntry   { return ent(op, 0, feats.SSE, args...) }
func sse2(op Op, args ...argKind) opEntry  { return ent(op, 0, feats.SSE2, args...) }
func sse3(op Op, args ...argKind) opEntry  { return ent(op, 0, feats.SSE3, args...) }
func ssse3(op Op, args ...argKind) opEntry { return ent(op, 0, feats.SSSE3, args...) }
func sse41(op Op, args ...argKind) opEntry { return ent(op, 0, feats.SSE41, args...) }
func sse42(op Op, args ...argKind) opEntry { return ent(op, 0, feats.SSE42, args...) }

func grp(g *[8]opEntry) opEntry { return opEntry{group: g} }

// Attach a register form, selected when ModRM.mod == 3.
func (e opEntry) withReg(r opEntry) opEntry {
	e.reg = &r
	return e
}

// Attach a form selected by REX.W or EVEX.W.
func (e opEntry) withWide(w opEntry) opEntry {
	e.flags |= WIDE_OP
	e.wide = &w
	return e
}

// Attach register forms keyed by the whole ModRM byte.
func (e opEntry) withRM(m map[byte]opEntry) opEntry {
	e.rmOps = m
	return e
}
