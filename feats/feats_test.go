package feats

import "testing"

func TestFeatureString(t *testing.T) {
	check := func(f Feature, expect string) {
		t.Helper()
		if s := f.String(); s != expect {
			t.Fatalf("feature %#x = %s --- expected %s", uint64(f), s, expect)
		}
	}
	check(X64_IMPLICIT, "X64_IMPLICIT")
	check(SSE2, "SSE2")
	check(SSE41|AES, "SSE41|AES")
	check(AVX512F|AVX512DQ, "AVX512F|AVX512DQ")
	check(AMD, "AMD")

	for bit := FPU; bit <= AMD; bit <<= 1 {
		if FeatName(bit) == "" {
			t.Fatalf("feature %#x has no name", uint64(bit))
		}
		if AllFeatures&bit == 0 {
			t.Fatalf("AllFeatures is missing %s", FeatName(bit))
		}
	}
}
