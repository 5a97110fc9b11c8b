package main

// go run gen.go > ../ops.generated.go

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/template"
)

// mnemonics lists every operation the decode tables produce. INVALID is always Op 0.
var mnemonics = []string{
	"adc", "adcx", "add", "addpd", "addps", "addsd", "addss", "addsubpd", "addsubps", "adox",
	"aesdec", "aesdeclast", "aesenc", "aesenclast", "aesimc", "aeskeygenassist", "and", "andnpd", "andnps", "andpd",
	"andps", "blendpd", "blendps", "blendvpd", "blendvps", "bsf", "bsr", "bswap", "bt", "btc",
	"btr", "bts", "call", "callf", "cbw", "cdq", "cdqe", "clac", "clc", "cld",
	"clflush", "clflushopt", "cli", "clts", "clwb", "clzero", "cmc", "cmova", "cmovb", "cmovg",
	"cmovge", "cmovl", "cmovle", "cmovna", "cmovnb", "cmovno", "cmovnp", "cmovns", "cmovnz", "cmovo",
	"cmovp", "cmovs", "cmovz", "cmp", "cmppd", "cmpps", "cmpsb", "cmpsd", "cmpsq", "cmpss",
	"cmpsw", "cmpxchg", "cmpxchg16b", "cmpxchg8b", "comisd", "comiss", "cpuid", "cqo", "crc32", "cvtdq2pd",
	"cvtdq2ps", "cvtpd2dq", "cvtpd2pi", "cvtpd2ps", "cvtpi2pd", "cvtpi2ps", "cvtps2dq", "cvtps2pd", "cvtps2pi", "cvtsd2si",
	"cvtsd2ss", "cvtsi2sd", "cvtsi2ss", "cvtss2sd", "cvtss2si", "cvttpd2dq", "cvttpd2pi", "cvttps2dq", "cvttps2pi", "cvttsd2si",
	"cvttss2si", "cwd", "cwde", "dec", "div", "divpd", "divps", "divsd", "divss", "dppd",
	"dpps", "emms", "encls", "enclu", "endbr32", "endbr64", "enter", "extractps", "f2xm1", "fabs",
	"fadd", "faddp", "fbld", "fbstp", "fchs", "fcmovb", "fcmovbe", "fcmove", "fcmovnb", "fcmovnbe",
	"fcmovne", "fcmovnu", "fcmovu", "fcom", "fcomi", "fcomip", "fcomp", "fcompp", "fcos", "fdecstp",
	"fdiv", "fdivp", "fdivr", "fdivrp", "femms", "ffree", "fiadd", "ficom", "ficomp", "fidiv",
	"fidivr", "fild", "fimul", "fincstp", "fist", "fistp", "fisttp", "fisub", "fisubr", "fld",
	"fld1", "fldcw", "fldenv", "fldl2e", "fldl2t", "fldlg2", "fldln2", "fldpi", "fldz", "fmul",
	"fmulp", "fnclex", "fninit", "fnop", "fnsave", "fnstcw", "fnstenv", "fnstsw", "fpatan", "fprem",
	"fprem1", "fptan", "frndint", "frstor", "fscale", "fsin", "fsincos", "fsqrt", "fst", "fstp",
	"fsub", "fsubp", "fsubr", "fsubrp", "ftst", "fucom", "fucomi", "fucomip", "fucomp", "fucompp",
	"fwait", "fxam", "fxch", "fxrstor", "fxsave", "fxtract", "fyl2x", "fyl2xp1", "getsec", "haddpd",
	"haddps", "hlt", "hsubpd", "hsubps", "idiv", "imul", "in", "inc", "insb", "insd",
	"insertps", "insw", "int", "int1", "int3", "invd", "invept", "invlpg", "invpcid", "invvpid",
	"iret", "iretd", "iretq", "ja", "jb", "jecxz", "jg", "jge", "jl", "jle",
	"jmp", "jmpf", "jna", "jnb", "jno", "jnp", "jns", "jnz", "jo", "jp",
	"jrcxz", "js", "jz", "lahf", "lar", "lddqu", "ldmxcsr", "lea", "leave", "lfence",
	"lfs", "lgdt", "lgs", "lidt", "lldt", "lmsw", "lodsb", "lodsd", "lodsq", "lodsw",
	"loop", "loopnz", "loopz", "lsl", "lss", "ltr", "lzcnt", "maskmovdqu", "maskmovq", "maxpd",
	"maxps", "maxsd", "maxss", "mfence", "minpd", "minps", "minsd", "minss", "monitor", "monitorx",
	"mov", "movapd", "movaps", "movbe", "movd", "movddup", "movdq2q", "movdqa", "movdqu", "movhlps",
	"movhpd", "movhps", "movlhps", "movlpd", "movlps", "movmskpd", "movmskps", "movntdq", "movntdqa", "movnti",
	"movntpd", "movntps", "movntq", "movq", "movq2dq", "movsb", "movsd", "movshdup", "movsldup", "movsq",
	"movss", "movsw", "movsx", "movsxd", "movupd", "movups", "movzx", "mpsadbw", "mul", "mulpd",
	"mulps", "mulsd", "mulss", "mwait", "mwaitx", "neg", "nop", "not", "or", "orpd",
	"orps", "out", "outsb", "outsd", "outsw", "pabsb", "pabsd", "pabsw", "packssdw", "packsswb",
	"packusdw", "packuswb", "paddb", "paddd", "paddq", "paddsb", "paddsw", "paddusb", "paddusw", "paddw",
	"palignr", "pand", "pandn", "pause", "pavgb", "pavgw", "pblendvb", "pblendw", "pclmulqdq", "pcmpeqb",
	"pcmpeqd", "pcmpeqq", "pcmpeqw", "pcmpestri", "pcmpestrm", "pcmpgtb", "pcmpgtd", "pcmpgtq", "pcmpgtw", "pcmpistri",
	"pcmpistrm", "pextrb", "pextrd", "pextrq", "pextrw", "phaddd", "phaddsw", "phaddw", "phminposuw", "phsubd",
	"phsubsw", "phsubw", "pinsrb", "pinsrd", "pinsrq", "pinsrw", "pmaddubsw", "pmaddwd", "pmaxsb", "pmaxsd",
	"pmaxsw", "pmaxub", "pmaxud", "pmaxuw", "pminsb", "pminsd", "pminsw", "pminub", "pminud", "pminuw",
	"pmovmskb", "pmovsxbd", "pmovsxbq", "pmovsxbw", "pmovsxdq", "pmovsxwd", "pmovsxwq", "pmovzxbd", "pmovzxbq", "pmovzxbw",
	"pmovzxdq", "pmovzxwd", "pmovzxwq", "pmuldq", "pmulhrsw", "pmulhuw", "pmulhw", "pmulld", "pmullw", "pmuludq",
	"pop", "popcnt", "popf", "por", "prefetch", "prefetch0", "prefetch1", "prefetch2", "prefetchnta", "prefetchw",
	"psadbw", "pshufb", "pshufd", "pshufhw", "pshuflw", "pshufw", "psignb", "psignd", "psignw", "pslld",
	"pslldq", "psllq", "psllw", "psrad", "psraw", "psrld", "psrldq", "psrlq", "psrlw", "psubb",
	"psubd", "psubq", "psubsb", "psubsw", "psubusb", "psubusw", "psubw", "ptest", "punpckhbw", "punpckhdq",
	"punpckhqdq", "punpckhwd", "punpcklbw", "punpckldq", "punpcklqdq", "punpcklwd", "push", "pushf", "pxor", "rcl",
	"rcpps", "rcpss", "rcr", "rdfsbase", "rdgsbase", "rdmsr", "rdpid", "rdpkru", "rdpmc", "rdrand",
	"rdseed", "rdtsc", "rdtscp", "ret", "retf", "rol", "ror", "roundpd", "roundps", "roundsd",
	"roundss", "rsm", "rsqrtps", "rsqrtss", "sahf", "sal", "sar", "sbb", "scasb", "scasd",
	"scasq", "scasw", "seta", "setb", "setg", "setge", "setl", "setle", "setna", "setnb",
	"setno", "setnp", "setns", "setnz", "seto", "setp", "sets", "setz", "sfence", "sgdt",
	"sha1msg1", "sha1msg2", "sha1nexte", "sha1rnds4", "sha256msg1", "sha256msg2", "sha256rnds2", "shl", "shld", "shr",
	"shrd", "shufpd", "shufps", "sidt", "sldt", "smsw", "sqrtpd", "sqrtps", "sqrtsd", "sqrtss",
	"stac", "stc", "std", "sti", "stmxcsr", "stosb", "stosd", "stosq", "stosw", "str",
	"sub", "subpd", "subps", "subsd", "subss", "swapgs", "syscall", "sysenter", "sysexit", "sysret",
	"test", "tzcnt", "ucomisd", "ucomiss", "ud0", "ud1", "ud2", "unpckhpd", "unpckhps", "unpcklpd",
	"unpcklps", "vaddpd", "vaddps", "vaddsd", "vaddss", "valignd", "valignq", "vandpd", "vandps", "vbroadcastsd",
	"vbroadcastss", "vdivpd", "vdivps", "vdivsd", "vdivss", "verr", "verw", "vmaxpd", "vmaxps", "vmaxsd",
	"vmaxss", "vmcall", "vmclear", "vminpd", "vminps", "vminsd", "vminss", "vmlaunch", "vmovapd", "vmovaps",
	"vmovdqa32", "vmovdqa64", "vmovdqu32", "vmovdqu64", "vmovntdq", "vmovntdqa", "vmovntpd", "vmovntps", "vmovupd", "vmovups",
	"vmptrld", "vmptrst", "vmread", "vmresume", "vmulpd", "vmulps", "vmulsd", "vmulss", "vmwrite", "vmxoff",
	"vmxon", "vpaddd", "vpaddq", "vpandd", "vpandq", "vpblendmd", "vpblendmq", "vpbroadcastd", "vpbroadcastq", "vpcmpd",
	"vpcmpeqd", "vpcmpeqq", "vpcmpq", "vpcmpud", "vpcmpuq", "vpmulld", "vpmullq", "vpord", "vporq", "vpsubd",
	"vpsubq", "vpxord", "vpxorq", "vsqrtpd", "vsqrtps", "vsqrtsd", "vsqrtss", "vsubpd", "vsubps", "vsubsd",
	"vsubss", "vxorpd", "vxorps", "wbinvd", "wrfsbase", "wrgsbase", "wrmsr", "wrpkru", "xabort", "xadd",
	"xbegin", "xchg", "xend", "xgetbv", "xlat", "xor", "xorpd", "xorps", "xrstor", "xsave",
	"xsaveopt", "xsetbv", "xtest",
}

const opsTemplate = `// Code generated by gen/gen.go; DO NOT EDIT.

package x64dec

const (
	INVALID Op = iota
{{- range .Names}}
	{{.}}
{{- end}}
)

// MaxOp is the largest defined Op.
const MaxOp = {{.Last}}

const opNames = "{{.Flat}}"

var opNameOffsets = [MaxOp + 1]uint16{
{{- range .Offsets}}
	{{.}},
{{- end}}
}
`

func main() {
	ms := append([]string(nil), mnemonics...)
	sort.Strings(ms)
	for i := 1; i < len(ms); i++ {
		if ms[i] == ms[i-1] {
			fmt.Fprintf(os.Stderr, "duplicate mnemonic %q\n", ms[i])
			os.Exit(1)
		}
	}

	names := make([]string, len(ms))
	flat := "invalid"
	offsets := []int{0}
	for i, m := range ms {
		names[i] = strings.ToUpper(m)
		offsets = append(offsets, len(flat))
		flat += m
	}
	if len(flat) > 1<<16-1 {
		fmt.Fprintln(os.Stderr, "mnemonic table exceeds uint16 offsets")
		os.Exit(1)
	}

	// 16 offsets per line
	var rows []string
	for i := 0; i < len(offsets); i += 16 {
		end := i + 16
		if end > len(offsets) {
			end = len(offsets)
		}
		row := make([]string, 0, 16)
		for _, off := range offsets[i:end] {
			row = append(row, fmt.Sprintf("%d", off))
		}
		rows = append(rows, strings.Join(row, ", "))
	}

	t := template.Must(template.New("ops").Parse(opsTemplate))
	err := t.Execute(os.Stdout, struct {
		Names   []string
		Last    string
		Flat    string
		Offsets []string
	}{
		Names:   names,
		Last:    names[len(names)-1],
		Flat:    flat,
		Offsets: rows,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
