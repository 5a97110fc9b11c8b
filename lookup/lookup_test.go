package x64declookup

import (
	"testing"

	"github.com/wdamron/x64dec"
)

func TestLookup(t *testing.T) {
	op, ok := Op("mov")
	if !ok || op != x64dec.MOV {
		t.Fatal("failed to find mov")
	}
	op, ok = Op("MOV")
	if !ok || op != x64dec.MOV {
		t.Fatal("failed to find MOV")
	}
	op, ok = Op("VMovDQA64")
	if !ok || op != x64dec.VMOVDQA64 {
		t.Fatal("failed to find VMovDQA64")
	}
	for _, name := range []string{"", "invalid", "movx", "averyveryverylongmnemonic"} {
		if _, ok := Op(name); ok {
			t.Fatalf("unexpected match for %q", name)
		}
	}
}

func TestLookupRoundTrip(t *testing.T) {
	for op := x64dec.Op(1); op <= x64dec.MaxOp; op++ {
		name := op.String()
		if name == "" {
			t.Fatalf("op %d has no name", op)
		}
		got, ok := Op(name)
		if !ok || got != op {
			t.Fatalf("Op(%q) = %v, %v; expected %v", name, got, ok, op)
		}
	}
}
