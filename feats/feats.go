// package feats classifies decoded instructions by the CPU feature they require.
package feats

import "strings"

type Feature uint64

// CPU Features
const (
	X64_IMPLICIT Feature = 0
	FPU          Feature = 1 << (iota - 1)
	MMX
	SSE
	SSE2
	SSE3
	SSSE3
	SSE41
	SSE42
	VMX
	SMX
	AES
	PCLMULQDQ
	SHA
	POPCNT
	LZCNT
	BMI1
	RDRAND
	RDSEED
	RDTSCP
	MOVBE
	FSGSBASE
	XSAVE
	RTM
	PKU
	CET
	SMAP
	AVX512F
	AVX512DQ
	// AMD-only instructions (monitorx, mwaitx, clzero, femms-era prefetch)
	AMD
)

const AllFeatures Feature = AMD<<1 - 1

func FeatName(f Feature) string { return featNames[f] }

// String lists the names of all features in f, separated by "|".
func (f Feature) String() string {
	if f == X64_IMPLICIT {
		return featNames[X64_IMPLICIT]
	}
	var names []string
	for bit := FPU; bit != 0 && bit <= AMD; bit <<= 1 {
		if f&bit != 0 {
			names = append(names, featNames[bit])
		}
	}
	return strings.Join(names, "|")
}

var featNames = map[Feature]string{
	X64_IMPLICIT: "X64_IMPLICIT",
	FPU:          "FPU",
	MMX:          "MMX",
	SSE:          "SSE",
	SSE2:         "SSE2",
	SSE3:         "SSE3",
	SSSE3:        "SSSE3",
	SSE41:        "SSE41",
	SSE42:        "SSE42",
	VMX:          "VMX",
	SMX:          "SMX",
	AES:          "AES",
	PCLMULQDQ:    "PCLMULQDQ",
	SHA:          "SHA",
	POPCNT:       "POPCNT",
	LZCNT:        "LZCNT",
	BMI1:         "BMI1",
	RDRAND:       "RDRAND",
	RDSEED:       "RDSEED",
	RDTSCP:       "RDTSCP",
	MOVBE:        "MOVBE",
	FSGSBASE:     "FSGSBASE",
	XSAVE:        "XSAVE",
	RTM:          "RTM",
	PKU:          "PKU",
	CET:          "CET",
	SMAP:         "SMAP",
	AVX512F:      "AVX512F",
	AVX512DQ:     "AVX512DQ",
	AMD:          "AMD",
}
