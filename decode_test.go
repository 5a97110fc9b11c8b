package x64dec

import (
	"encoding/hex"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/arch/x86/x86asm"

	"github.com/wdamron/x64dec/feats"
)

func code(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	if err != nil {
		t.Fatalf("bad test input %q: %v", s, err)
	}
	return b
}

func decodeText(t *testing.T) func(in, expect string) {
	return func(in, expect string) {
		t.Helper()
		inst, err := Decode(code(t, in))
		if err != nil {
			t.Fatalf("decode %s: %v (expected %s)", in, err, expect)
		}
		if text := inst.String(); text != expect {
			t.Fatalf("decode %s = %s --- expected %s", in, text, expect)
		}
	}
}

func TestSystem(t *testing.T) {
	check := decodeText(t)
	check("45 0f 22 c8", "mov cr9, r8")
	check("45 0f 20 c8", "mov r8, cr9")
	check("40 0f 22 c8", "mov cr1, rax")
	check("0f 22 c8", "mov cr1, rax")
	check("44 0f 22 cf", "mov cr9, rdi")
	check("0f 22 cf", "mov cr1, rdi")
	check("0f 20 c8", "mov rax, cr1")
	// ModRM.mod is ignored
	check("0f 20 08", "mov rax, cr1")

	check("45 0f 23 c8", "mov dr9, r8")
	check("45 0f 21 c8", "mov r8, dr9")
	check("40 0f 23 c8", "mov dr1, rax")
	check("0f 23 c8", "mov dr1, rax")
	check("0f 21 c8", "mov rax, dr1")
	check("44 0f 23 cf", "mov dr9, rdi")
	check("0f 23 cf", "mov dr1, rdi")

	check("0f 30", "wrmsr")
	check("0f 31", "rdtsc")
	check("0f 32", "rdmsr")
	check("0f 33", "rdpmc")
	check("0f 34", "sysenter")
	check("0f 35", "sysexit") // not "sysret": 0F 35 is sysexit, sysret is 0F 07
	check("0f 37", "getsec")
	check("0f 05", "syscall")
	check("48 0f 05", "syscall")
	check("66 0f 05", "syscall")
	check("f2 0f 05", "syscall") // not "sysret": F2 is an ignored prefix here
	check("0f 07", "sysret")
	check("0f a2", "cpuid")
	check("0f 01 f8", "swapgs")
	check("0f 01 d0", "xgetbv")
	check("0f 01 38", "invlpg byte [rax]")
	check("0f ae f0", "mfence")
	check("0f ae e8", "lfence")
	check("0f ae f8", "sfence")
	check("f3 0f 1e fa", "endbr64")
	check("f3 0f 1e fb", "endbr32")
	check("f3 0f c7 f8", "rdpid rax")
}

func TestArithmetic(t *testing.T) {
	check := decodeText(t)
	check("81 ec 10 03 00 00", "sub esp, 0x310")
	check("0f af c2", "imul eax, edx")
	check("48 83 c4 08", "add rsp, 0x8")
	check("48 f7 d8", "neg rax")
	check("f7 f1", "div ecx")
	check("48 69 c0 e8 03 00 00", "imul rax, rax, 0x3e8")
	check("6b c0 fe", "imul eax, eax, -0x2")
	check("d1 e0", "shl eax, 0x1")
	check("48 c1 f8 3f", "sar rax, 0x3f")
	check("d3 e8", "shr eax, cl")
	check("ff c0", "inc eax")
	check("fe c8", "dec al")
}

func TestEDecode(t *testing.T) {
	check := decodeText(t)
	check("ff 75 b8", "push [rbp - 0x48]")
	check("ff 75 08", "push [rbp + 0x8]")
}

func TestSSE(t *testing.T) {
	check := decodeText(t)
	check("0f 28 d0", "movaps xmm2, xmm0")
	check("66 0f 28 d0", "movapd xmm2, xmm0")
	check("66 0f 28 00", "movapd xmm0, xmmword [rax]")
	check("4f 66 0f 28 00", "movapd xmm0, xmmword [rax]")
	check("66 4f 0f 28 00", "movapd xmm8, xmmword [r8]")
	check("67 4f 66 0f 28 00", "movapd xmm0, xmmword [eax]")
	check("67 66 4f 0f 28 00", "movapd xmm8, xmmword [r8d]")
	check("66 0f 29 00", "movapd xmmword [rax], xmm0")
	check("66 0f ef c0", "pxor xmm0, xmm0")
	check("f2 0f 10 0c c6", "movsd xmm1, [rsi + rax * 8]")
	check("f3 0f 10 04 86", "movss xmm0, [rsi + rax * 4]")
	check("f2 0f 59 c8", "mulsd xmm1, xmm0")
	check("f3 0f 59 c8", "mulss xmm1, xmm0")
	check("f2 4f 0f 59 c8", "mulsd xmm9, xmm8")
	check("f2 0f 11 0c c7", "movsd [rdi + rax * 8], xmm1")
	check("f2 48 0f 2a c0", "cvtsi2sd xmm0, rax")
	check("66 0f 3a 16 c0 01", "pextrd eax, xmm0, 0x1")
	check("66 48 0f 3a 16 c0 01", "pextrq rax, xmm0, 0x1")
	check("66 0f 38 00 c1", "pshufb xmm0, xmm1")
	check("0f 38 00 c1", "pshufb mm0, mm1")
	check("66 0f 3a 0f c1 08", "palignr xmm0, xmm1, 0x8")
	check("66 0f 38 17 c1", "ptest xmm0, xmm1")
	check("66 0f 38 dc c1", "aesenc xmm0, xmm1")
	check("f2 0f 38 f1 c1", "crc32 eax, ecx")
	check("f2 48 0f 38 f0 00", "crc32 rax, byte [rax]")
}

func TestMov(t *testing.T) {
	check := decodeText(t)
	// moffs is 8 bytes wide in 64-bit mode; "a1 93 62 c4 00" alone is truncated rather than
	// "mov eax, [0xc46293]", which needs the 67 prefix
	check("a1 93 62 c4 00 12 34 12 34", "mov eax, [0x3412341200c46293]")
	check("67 a1 93 62 c4 00", "mov eax, [0xc46293]")
	check("48 c7 04 24 00 00 00 00", "mov [rsp], 0x0")
	check("48 89 44 24 08", "mov [rsp + 0x8], rax")
	check("48 89 44 24 18", "mov [rsp + 0x18], rax")
	check("48 89 43 18", "mov [rbx + 0x18], rax")
	check("48 c7 43 10 00 00 00 00", "mov [rbx + 0x10], 0x0")
	check("49 89 4e 08", "mov [r14 + 0x8], rcx")
	check("48 8b 32", "mov rsi, [rdx]")
	check("49 89 46 10", "mov [r14 + 0x10], rax")
	check("4d 0f 43 ec 49", "cmovnb r13, r12")
	check("0f b6 06", "movzx eax, byte [rsi]")
	check("0f b7 06", "movzx eax, word [rsi]")
	check("89 55 94", "mov [rbp - 0x6c], edx")
	check("65 4c 89 04 25 a8 01 00 00", "mov gs:[0x1a8], r8")
	check("0f be 83 b4 00 00 00", "movsx eax, byte [rbx + 0xb4]")
	check("48 63 04 ba", "movsxd rax, [rdx + rdi * 4]")
	check("48 b8 88 77 66 55 44 33 22 11", "mov rax, 0x1122334455667788")
	check("b0 ff", "mov al, -0x1")
	check("8c d8", "mov eax, ds")
	check("8e d8", "mov ds, eax")
	check("8b 05 f0 ff ff ff", "mov eax, [rip - 0x10]")
}

func TestStack(t *testing.T) {
	check := decodeText(t)
	check("66 41 50", "push r8w")
	check("5b", "pop rbx")
	check("41 5e", "pop r14")
	check("68 7f 63 c4 00", "push 0xc4637f")
	check("6a f0", "push -0x10")
	check("8f c0", "pop rax")
	check("0f a0", "push fs")
	check("0f a1", "pop fs")
	check("c8 10 00 01", "enter 0x10, 0x1")
	check("c9", "leave")
}

func TestPrefixes(t *testing.T) {
	check := decodeText(t)
	check("66 41 31 c0", "xor r8w, ax")
	check("66 41 32 c0", "xor al, r8b")
	check("40 32 c5", "xor al, bpl")
	check("32 c5", "xor al, ch")
	check("f0 01 00", "lock add [rax], eax")
	check("f0 48 0f c1 08", "lock xadd [rax], rcx")
	check("f0 0f c7 08", "lock cmpxchg8b qword [rax]")
	check("f0 48 0f c7 08", "lock cmpxchg16b xmmword [rax]")
	check("f3 48 ab", "rep stosq")
	check("f3 48 a5", "rep movsq")
	check("f3 a6", "repz cmpsb")
	check("f2 ae", "repnz scasb")
	check("f2 a6", "repnz cmpsb")
	// F2 repeats movs, stos, lods, ins, and outs like F3
	check("f2 a4", "rep movsb")
	check("f2 48 ab", "rep stosq")
	check("f2 6c", "rep insb")
	check("f3 aa", "rep stosb")
	check("66 ad", "lodsw")
	check("f2 0f 05", "syscall")
}

func TestControlFlow(t *testing.T) {
	check := decodeText(t)
	check("73 31", "jnb 0x31")
	check("72 5a", "jb 0x5a")
	check("0f 86 8b 01 00 00", "jna 0x18b")
	check("74 47", "jz 0x47")
	check("eb fe", "jmp -0x2")
	check("e8 00 00 00 00", "call 0x0")
	check("ff 15 7e 72 24 00", "call [rip + 0x24727e]")
	check("ff e0", "jmp rax")
	check("c3", "ret")
	check("c2 08 00", "ret 0x8")
	check("e3 10", "jrcxz 0x10")
	check("67 e3 10", "jecxz 0x10")
	check("e2 fe", "loop -0x2")
	check("cc", "int3")
	check("cd 80", "int 0x80")
}

func TestTestCmp(t *testing.T) {
	check := decodeText(t)
	check("48 3d 01 f0 ff ff", "cmp rax, -0xfff")
	check("3d 01 f0 ff ff", "cmp eax, -0xfff")
	check("48 83 f8 ff", "cmp rax, -0x1")
	check("48 39 c6", "cmp rsi, rax")
	check("f6 c2 18", "test dl, 0x18")
	check("a8 01", "test al, 0x1")
	check("0f 94 c0", "setz al")
	check("0f 9f 45 00", "setg byte [rbp]")
}

func TestBitwise(t *testing.T) {
	check := decodeText(t)
	check("41 0f bc d3", "bsf edx, r11d")
	check("48 0f a3 d0", "bt rax, rdx")
	check("48 0f ab d0", "bts rax, rdx")
	check("0f ba e0 05", "bt eax, 0x5")
	check("f3 48 0f b8 c1", "popcnt rax, rcx")
	check("f3 0f bd c1", "lzcnt eax, ecx")
	check("0f c8", "bswap eax")
	check("49 0f c9", "bswap r9")
}

func TestMisc(t *testing.T) {
	check := decodeText(t)
	check("9c", "pushf")
	check("48 98", "cdqe")
	check("98", "cwde")
	check("66 98", "cbw")
	check("48 99", "cqo")
	// not "nop cs:[rax + rax]" for both: the word keyword follows 66, and cs: appears only
	// with the 2E prefix
	check("66 2e 0f 1f 84 00 00 00 00 00", "nop word cs:[rax + rax]")
	check("66 0f 1f 44 00 00", "nop word [rax + rax]")
	check("48 8d a4 c7 20 00 00 12", "lea rsp, [rdi + rax * 8 + 0x12000020]")
	check("33 c0", "xor eax, eax")
	check("48 8d 53 08", "lea rdx, [rbx + 0x8]")
	check("31 c9", "xor ecx, ecx")
	check("48 29 c8", "sub rax, rcx")
	check("48 03 0b", "add rcx, [rbx]")
	check("48 8d 0c 12", "lea rcx, [rdx + rdx]")
	check("f3 45 0f bc d7", "tzcnt r10d, r15d")
	check("90", "nop")
	check("f3 90", "pause")
	check("41 90", "xchg r8d, eax")
	check("49 90", "xchg r8, rax")
	check("48 91", "xchg rcx, rax")
	check("f4", "hlt")
	check("0f 0b", "ud2")
	check("0f 01 d6", "xtest")
	check("c7 f8 00 00 00 00", "xbegin 0x0")
	check("c6 f8 01", "xabort 0x1")
}

func TestEVEX(t *testing.T) {
	check := decodeText(t)
	// scaled indexes render "rax * 2" everywhere, not "rax*2"
	check("62 f2 7d 48 2a 44 40 01", "vmovntdqa zmm0, zmmword [rax + rax * 2 + 0x40]")
	check("62 f2 7d 08 2a 44 40 01", "vmovntdqa xmm0, xmmword [rax + rax * 2 + 0x10]")
	check("62 f2 7d 28 2a 44 40 01", "vmovntdqa ymm0, ymmword [rax + rax * 2 + 0x20]")
	check("62 f1 7c 48 10 40 01", "vmovups zmm0, zmmword [rax + 0x40]")
	check("62 f1 6c 48 58 cb", "vaddps zmm1, zmm2, zmm3")
	check("62 f1 6c c9 58 cb", "vaddps zmm1{k1}{z}, zmm2, zmm3")
	check("62 f1 6c 49 58 cb", "vaddps zmm1{k1}, zmm2, zmm3")
	check("62 f1 6c 18 58 cb", "vaddps zmm1, zmm2, zmm3, {rn-sae}")
	check("62 f1 6c 78 58 cb", "vaddps zmm1, zmm2, zmm3, {rz-sae}")
	check("62 f1 6c 58 58 08", "vaddps zmm1, zmm2, dword [rax]{1to16}")
	check("62 f1 6c 58 58 48 01", "vaddps zmm1, zmm2, dword [rax + 0x4]{1to16}")
	check("62 f1 ed 58 58 08", "vaddpd zmm1, zmm2, qword [rax]{1to8}")
	check("62 f1 6c 18 5f cb", "vmaxps zmm1, zmm2, zmm3, {sae}")
	check("62 f1 ed 48 d4 cb", "vpaddq zmm1, zmm2, zmm3")
	check("62 f1 6d 48 db cb", "vpandd zmm1, zmm2, zmm3")
	check("62 f1 ed 48 db cb", "vpandq zmm1, zmm2, zmm3")
	check("62 f1 6d 48 76 cb", "vpcmpeqd k1, zmm2, zmm3")
	check("62 e1 6c 48 58 cb", "vaddps zmm17, zmm2, zmm3")
	check("62 f1 6e 08 58 4a 01", "vaddss xmm1, xmm2, [rdx + 0x4]")
	// scalar operations ignore EVEX.L'L, including the reserved length 3
	check("62 f1 6e 68 58 ca", "vaddss xmm1, xmm2, xmm2")
	check("62 f1 6e 68 58 4a 01", "vaddss xmm1, xmm2, [rdx + 0x4]")
	check("62 f1 ef 48 5e ca", "vdivsd xmm1, xmm2, xmm2")
	check("62 f1 6e 78 58 ca", "vaddss xmm1, xmm2, xmm2, {rz-sae}")
	check("62 f3 6d 48 03 cb 02", "valignd zmm1, zmm2, zmm3, 0x2")

	// invalid EVEX encodings
	for _, in := range []string{
		"62 f1 6c c8 58 cb",    // zeroing without a mask
		"62 f1 ed 48 fe cb",    // EVEX.W1 on a W0 instruction
		"62 f2 7d 49 2a 44 40 01", // masked non-temporal load
		"62 f1 6c 48 10 c1",    // vvvv on a two-operand instruction
		"62 f1 6c 68 58 cb",    // vector length 512 << 1
		"62 f2 7d 68 18 c1",    // vector length 512 << 1 on a broadcast
		"62 f1 7c 58 28 cb",    // EVEX.b on a register move
		"62 f1 7c 48 a0 c1",    // unassigned
		"62 f9 6c 48 58 cb",    // reserved payload bits
	} {
		inst, err := Decode(code(t, in))
		if err != nil {
			t.Fatalf("decode %s: %v", in, err)
		}
		if inst.Op != INVALID {
			t.Fatalf("decode %s = %s --- expected invalid", in, inst)
		}
	}

	// legacy prefixes before EVEX
	inst, err := Decode(code(t, "66 62 f1 6c 48 58 cb"))
	if err != nil || inst.Op != INVALID || inst.Len != 5 {
		t.Fatalf("66 62: %v, %v, %d", inst, err, inst.Len)
	}
}

func TestX87(t *testing.T) {
	check := decodeText(t)
	check("d9 e8", "fld1")
	check("d9 ee", "fldz")
	check("d9 d0", "fnop")
	check("d8 c1", "fadd st(0), st(1)")
	check("dc c1", "fadd st(1), st(0)")
	check("de f9", "fdivp st(1), st(0)")
	check("dd d8", "fstp st(0)")
	check("d9 c9", "fxch st(1)")
	check("dd 00", "fld qword [rax]")
	check("d9 00", "fld dword [rax]")
	check("db 28", "fld tbyte [rax]")
	check("df 3c 24", "fistp qword [rsp]")
	check("df e0", "fnstsw ax")
	check("dd 38", "fnstsw word [rax]")
	check("da e9", "fucompp")
	check("9b", "fwait")
	check("d9 d1", "invalid")
	check("d9 08", "invalid")
}

func TestPrefixed0F(t *testing.T) {
	check := decodeText(t)
	check("0f 02 c0", "lar eax, eax")
	check("48 0f 02 c0", "lar rax, eax")
	check("0f 03 c0", "lsl eax, eax")
	check("48 0f 03 c0", "lsl rax, eax") // not "lsl rax, rax": the selector source is 32 bits
	check("0f 12 0f", "movlps xmm1, qword [rdi]")
	check("0f 12 c0", "movhlps xmm0, xmm0")
	check("0f 13 c0", "invalid")
	// ModRM.reg 0 is xmm0, not "xmm1"
	check("0f 14 00", "unpcklps xmm0, xmmword [rax]")
	check("0f 15 00", "unpckhps xmm0, xmmword [rax]")
	check("0f 16 0f", "movhps xmm1, qword [rdi]")
	check("0f 16 c0", "movlhps xmm0, xmm0")
	check("0f 17 c0", "invalid")
	check("0f 18 c0", "invalid")
	check("0f 18 00", "prefetchnta byte [rax]")
	// /1 /2 /3 are prefetcht0, t1, t2: not "prefetch1", "prefetch2", "prefetch2"
	check("0f 18 08", "prefetch0 byte [rax]")
	check("0f 18 10", "prefetch1 byte [rax]")
	check("0f 18 18", "prefetch2 byte [rax]")
	check("0f 18 20", "nop dword [rax]")
	check("4f 0f 18 20", "nop qword [r8]") // not "nop dword [rax]": REX.W and REX.B apply
	for _, opc := range []string{"19", "1a", "1b", "1c", "1d", "1e", "1f"} {
		check("0f "+opc+" 20", "nop dword [rax]")
	}
	check("0f 36", "invalid")
	check("0f 60 00", "punpcklbw mm0, qword [rax]")
	check("0f 61 00", "punpcklwd mm0, qword [rax]")
	check("0f 62 00", "punpckldq mm0, qword [rax]")
	check("0f 63 00", "packsswb mm0, qword [rax]")
	check("0f 64 00", "pcmpgtb mm0, qword [rax]")
	check("0f 65 00", "pcmpgtw mm0, qword [rax]")
	check("0f 66 00", "pcmpgtd mm0, qword [rax]")
	check("0f 67 00", "packuswb mm0, qword [rax]")
	check("0f 68 00", "punpckhbw mm0, qword [rax]")
	check("0f 69 00", "punpckhwd mm0, qword [rax]") // not "punpckhbd", which does not exist
	check("0f 6a 00", "punpckhdq mm0, qword [rax]")
	check("0f 6b 00", "packssdw mm0, qword [rax]")
	check("0f 6c", "invalid")
	check("0f 6d", "invalid")
	// "0f 6e" and "0f 6f" without a ModRM byte are truncated
	check("0f 6e 00", "movd mm0, dword [rax]")
	check("0f 6f 00", "movq mm0, qword [rax]") // not "movd": 0F 6F always moves 64 bits
	check("48 0f 6e c0", "movq mm0, rax")
	check("66 0f 6e c0", "movd xmm0, eax")
	check("66 48 0f 7e c0", "movq rax, xmm0")
	check("0f 70 00 7f", "pshufw mm0, qword [rax], 0x7f")
	check("0f 71 d0 7f", "psrlw mm0, 0x7f")
	check("0f 71 e0 7f", "psraw mm0, 0x7f")
	check("0f 71 f0 7f", "psllw mm0, 0x7f")
	check("0f 72 d0 7f", "psrld mm0, 0x7f")
	check("0f 72 e0 7f", "psrad mm0, 0x7f")
	check("0f 72 f0 7f", "pslld mm0, 0x7f")
	check("0f a4 c0 11", "shld eax, eax, 0x11")
	check("0f a5 c0", "shld eax, eax, cl")
	check("0f a5 c9", "shld ecx, ecx, cl")
}

func TestPrefixed660F(t *testing.T) {
	check := decodeText(t)
	check("66 0f 10 c0", "movupd xmm0, xmm0")
	check("66 48 0f 10 c0", "movupd xmm0, xmm0")
	check("66 49 0f 10 c0", "movupd xmm0, xmm8")
	// REX.X has no effect on a register operand
	check("66 4a 0f 10 c0", "movupd xmm0, xmm0") // not "xmm0, xmm8": REX.X never extends ModRM.rm
	check("66 4c 0f 10 c0", "movupd xmm8, xmm0")
	check("66 4d 0f 10 c0", "movupd xmm8, xmm8")
	check("f2 66 66 4d 0f 10 c0", "movupd xmm8, xmm8")
}

func TestPrefixedF20F(t *testing.T) {
	check := decodeText(t)
	check("f2 0f 16 cf", "movlhps xmm1, xmm7")
	check("f2 4d 0f 16 cf", "movlhps xmm9, xmm15")
	check("40 66 f2 66 4d 0f 16 cf", "movlhps xmm9, xmm15")
}

func TestPrefixedF30F(t *testing.T) {
	check := decodeText(t)
	check("f3 0f 16 cf", "movshdup xmm1, xmm7")
	check("f3 4d 0f 16 cf", "movshdup xmm9, xmm15")
}

func TestInvalid(t *testing.T) {
	check := func(in string, length int) {
		t.Helper()
		inst, err := Decode(code(t, in))
		if err != nil {
			t.Fatalf("decode %s: %v", in, err)
		}
		if inst.Op != INVALID || inst.Len != length {
			t.Fatalf("decode %s = %s (len %d) --- expected invalid (len %d)", in, inst, inst.Len, length)
		}
		if inst.String() != "invalid" {
			t.Fatalf("invalid renders as %q", inst.String())
		}
	}
	check("0f 13 c0", 3)
	check("0f 6c", 2)
	check("0f 36", 2)
	check("f0 01 c0", 3)   // lock on a register destination
	check("f0 90", 2)      // lock on nop
	check("8c f8", 2)      // segment register 7
	check("8e c8", 2)      // cs cannot be loaded
	check("8e f0", 2)      // segment register 6
	check("06", 1)         // push es is not encodable in 64-bit mode
	check("d6", 1)         // salc
	check("8d c0", 2)      // lea with a register source
	check("0f 01 d8 c3", 3) // vmrun, unassigned here
}

func TestErrors(t *testing.T) {
	for _, in := range []string{"", "48", "66 f2", "0f", "0f 38", "81 ec 10", "e8 00 00", "48 b8 00 00", "62 f1", "ff 75", "a1 93 62 c4 00", "0f 6e", "0f 6f"} {
		_, err := Decode(code(t, in))
		if !errors.Is(err, ErrTruncated) {
			t.Fatalf("decode %q: expected ErrTruncated, found %v", in, err)
		}
	}
	for _, in := range []string{"c5 f8 10 00", "c4 e2 79 18 00", "8f e9 78 c2 c0", "66 c5 f8 77"} {
		_, err := Decode(code(t, in))
		if !errors.Is(err, ErrUnsupported) {
			t.Fatalf("decode %q: expected ErrUnsupported, found %v", in, err)
		}
	}
	// the byte after 8F selects between pop and XOP
	if _, err := Decode(code(t, "8f")); !errors.Is(err, ErrTruncated) {
		t.Fatalf("decode 8f: expected ErrTruncated, found %v", err)
	}
}

func TestMaxLength(t *testing.T) {
	// 14 prefixes and a 1-byte opcode fit
	in := code(t, strings.Repeat("66 ", 14)+"90")
	inst, err := Decode(in)
	if err != nil || inst.Op != NOP || inst.Len != 15 {
		t.Fatalf("15 bytes: %v, %v, %d", inst, err, inst.Len)
	}
	// 15 prefixes never reach an opcode
	in = code(t, strings.Repeat("66 ", 15)+"90")
	inst, err = Decode(in)
	if err != nil || inst.Op != INVALID || inst.Len != MaxInstLen {
		t.Fatalf("16 bytes: %v, %v, %d", inst, err, inst.Len)
	}
	// an immediate crossing the limit
	in = code(t, strings.Repeat("2e ", 7)+"48 b8 00 00 00 00 00 00 00 00")
	inst, err = Decode(in)
	if err != nil || inst.Op != INVALID || inst.Len != MaxInstLen {
		t.Fatalf("17 bytes: %v, %v, %d", inst, err, inst.Len)
	}
	// with fewer than 15 bytes available the same input is truncated
	if _, err := Decode(in[:12]); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, found %v", err)
	}
}

func TestTrailingBytes(t *testing.T) {
	for _, in := range []string{"90", "48 8b 44 24 08", "0f 13 c0", "62 f1 6c 58 58 08", "f3 48 ab", "66 2e 0f 1f 84 00 00 00 00 00"} {
		b := code(t, in)
		want, err := Decode(b)
		if err != nil {
			t.Fatal(err)
		}
		padded := append(append([]byte(nil), b...), 0xcc, 0x0f, 0x05, 0x66, 0x90, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff)
		got, err := Decode(padded)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("decode %s with trailing bytes (-want +got):\n%s", in, diff)
		}
		if got.Len != len(b) {
			t.Fatalf("decode %s: len %d, expected %d", in, got.Len, len(b))
		}
	}
}

func TestDeterminism(t *testing.T) {
	b := code(t, "62 f1 6c c9 58 cb")
	want, _ := Decode(b)
	var wg sync.WaitGroup
	errs := make(chan string, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				got, err := Decode(b)
				if err != nil || !cmp.Equal(want, got) {
					errs <- got.String()
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for s := range errs {
		t.Fatalf("concurrent decode differs: %s", s)
	}
}

func TestREXRedundancy(t *testing.T) {
	ignore := cmpopts.IgnoreFields(Inst{}, "Len", "Prefix")
	for _, pair := range [][2]string{
		{"40 0f 22 c8", "0f 22 c8"},
		{"40 0f 20 c8", "0f 20 c8"},
		{"48 0f 22 c8", "0f 22 c8"},
		{"40 48 8b 32", "48 8b 32"},
	} {
		a, err := Decode(code(t, pair[0]))
		if err != nil {
			t.Fatal(err)
		}
		b, err := Decode(code(t, pair[1]))
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(a, b, ignore); diff != "" {
			t.Fatalf("%s vs %s (-a +b):\n%s", pair[0], pair[1], diff)
		}
	}
}

func TestStructure(t *testing.T) {
	check := func(in string, want Inst) {
		t.Helper()
		got, err := Decode(code(t, in))
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("decode %s (-want +got):\n%s", in, diff)
		}
	}
	check("48 8b 44 24 08", Inst{
		Op:       MOV,
		Args:     Args{RAX, Mem{Base: RSP, Disp: 8, Scale: 1, DispWidth: 1, AddrSize: 8, Width: 8}},
		Prefix:   Prefixes{REX: 0x48},
		Len:      5,
		DataSize: 64,
		AddrSize: 64,
		Feats:    feats.X64_IMPLICIT,
	})
	check("66 2e 0f 1f 84 00 00 00 00 00", Inst{
		Op:       NOP,
		Args:     Args{Mem{Seg: CS, Base: RAX, Index: RAX, Scale: 1, DispWidth: 4, AddrSize: 8, Width: 2, Hint: HintWord}},
		Prefix:   Prefixes{Seg: CS, OpSize: true},
		Len:      10,
		DataSize: 16,
		AddrSize: 64,
		Feats:    feats.X64_IMPLICIT,
	})
	// the mandatory prefix is not retained
	check("66 0f 28 d0", Inst{
		Op:       MOVAPD,
		Args:     Args{X2, X0},
		Len:      4,
		DataSize: 32,
		AddrSize: 64,
		Feats:    feats.SSE2,
	})
	check("62 f1 6c c9 58 cb", Inst{
		Op:       VADDPS,
		Args:     Args{Z1, Z2, Z3},
		Len:      6,
		DataSize: 32,
		AddrSize: 64,
		Mask:     K1,
		Zeroing:  true,
		Feats:    feats.AVX512F,
	})
	check("67 a1 93 62 c4 00", Inst{
		Op:       MOV,
		Args:     Args{EAX, Mem{Disp: 0xc46293, Scale: 1, DispWidth: 4, AddrSize: 4, Width: 4}},
		Prefix:   Prefixes{AddrSize: true},
		Len:      6,
		DataSize: 32,
		AddrSize: 32,
		Feats:    feats.X64_IMPLICIT,
	})
}

func TestTarget(t *testing.T) {
	inst, err := Decode(code(t, "0f 86 8b 01 00 00"))
	if err != nil {
		t.Fatal(err)
	}
	if target, ok := inst.Target(0x1000); !ok || target != 0x1000+6+0x18b {
		t.Fatalf("target = %#x, %v", target, ok)
	}
	inst, _ = Decode(code(t, "eb fe"))
	if target, ok := inst.Target(0x2000); !ok || target != 0x2000 {
		t.Fatalf("target = %#x, %v", target, ok)
	}
	inst, _ = Decode(code(t, "ff 15 7e 72 24 00"))
	if _, ok := inst.Target(0); ok {
		t.Fatal("indirect call has no relative target")
	}
	if addr, ok := inst.MemAddr(0x1000); !ok || addr != 0x1000+6+0x24727e {
		t.Fatalf("mem addr = %#x, %v", addr, ok)
	}
	if !inst.Args[0].(Mem).IsRIPRelative() {
		t.Fatal("expected a RIP-relative operand")
	}
}

func TestDataSize(t *testing.T) {
	for _, c := range []struct {
		in   string
		size int
	}{
		{"66 41 50", 16},
		{"50", 64},
		{"89 c0", 32},
		{"48 89 c0", 64},
		{"66 89 c0", 16},
		{"ff 15 00 00 00 00", 64},
	} {
		inst, err := Decode(code(t, c.in))
		if err != nil {
			t.Fatal(err)
		}
		if inst.DataSize != c.size {
			t.Fatalf("decode %s: data size %d, expected %d", c.in, inst.DataSize, c.size)
		}
	}
}

// Instruction lengths agree with x86asm wherever both decoders accept the input.
func TestLengthsMatchX86asm(t *testing.T) {
	inputs := []string{
		"45 0f 22 c8", "81 ec 10 03 00 00", "0f af c2", "ff 75 b8", "66 0f 28 00", "67 4f 66 0f 28 00",
		"f2 0f 10 0c c6", "48 c7 04 24 00 00 00 00", "65 4c 89 04 25 a8 01 00 00", "48 63 04 ba",
		"66 41 50", "68 7f 63 c4 00", "0f 86 8b 01 00 00", "ff 15 7e 72 24 00", "48 3d 01 f0 ff ff",
		"66 2e 0f 1f 84 00 00 00 00 00", "48 8d a4 c7 20 00 00 12", "f3 48 ab", "f3 45 0f bc d7",
		"0f 70 00 7f", "0f a4 c0 11", "66 0f 3a 16 c0 01", "a1 93 62 c4 00 12 34 12 34",
		"48 b8 88 77 66 55 44 33 22 11", "c8 10 00 01", "dd 00", "d9 e8", "f0 48 0f c1 08",
	}
	for _, in := range inputs {
		b := code(t, in)
		inst, err := Decode(b)
		if err != nil || inst.Op == INVALID {
			t.Fatalf("decode %s: %v %v", in, inst, err)
		}
		ref, err := x86asm.Decode(b, 64)
		if err != nil {
			continue
		}
		if ref.Len != inst.Len {
			t.Fatalf("decode %s: len %d, x86asm %d (%s)", in, inst.Len, ref.Len, x86asm.IntelSyntax(ref, 0, nil))
		}
	}
}
