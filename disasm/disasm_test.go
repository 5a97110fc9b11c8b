package disasm

import (
	"errors"
	"testing"

	"github.com/wdamron/x64dec"
)

func TestCode(t *testing.T) {
	code := []byte{
		0x48, 0x8b, 0x44, 0x24, 0x08, // mov rax, [rsp + 0x8]
		0x0f, 0x6c, // reserved
		0x48, 0x01, 0xd8, // add rax, rbx
		0x75, 0xf4, // jnz
		0xc3, // ret
	}
	var texts []string
	var pcs []uint64
	err := Code(code, 0x1000, func(pc uint64, inst x64dec.Inst) bool {
		pcs = append(pcs, pc)
		texts = append(texts, inst.String())
		if inst.Op == x64dec.JNZ {
			target, ok := inst.Target(pc)
			if !ok || target != 0x1000 {
				t.Fatalf("jnz target = %#x, %v; expected 0x1000", target, ok)
			}
		}
		return true
	})
	if err != nil {
		t.Fatal(err)
	}
	expect := []string{"mov rax, [rsp + 0x8]", "invalid", "add rax, rbx", "jnz -0xc", "ret"}
	if len(texts) != len(expect) {
		t.Fatalf("expected %v instructions, found %v: %q", len(expect), len(texts), texts)
	}
	for i := range expect {
		if texts[i] != expect[i] {
			t.Fatalf("Expected instruction: %s --- found %s", expect[i], texts[i])
		}
	}
	expectPCs := []uint64{0x1000, 0x1005, 0x1007, 0x100a, 0x100c}
	for i := range expectPCs {
		if pcs[i] != expectPCs[i] {
			t.Fatalf("instruction %d at %#x, expected %#x", i, pcs[i], expectPCs[i])
		}
	}
}

func TestCodeStop(t *testing.T) {
	n := 0
	err := Code([]byte{0x90, 0x90, 0x90}, 0, func(uint64, x64dec.Inst) bool {
		n++
		return n < 2
	})
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("expected 2 calls, found %v", n)
	}
}

func TestCodeTruncated(t *testing.T) {
	err := Code([]byte{0x90, 0x48, 0x8b}, 0x400000, func(uint64, x64dec.Inst) bool { return true })
	if !errors.Is(err, x64dec.ErrTruncated) {
		t.Fatalf("expected ErrTruncated, found %v", err)
	}
	if err.Error() != "decode at 0x400001: x64dec: truncated instruction" {
		t.Fatalf("unexpected error text: %v", err)
	}
}

func TestFuncArgument(t *testing.T) {
	if err := Func(nil, nil); err == nil {
		t.Fatal("expected an error for a nil function-value")
	}
	if err := Func(42, nil); err == nil {
		t.Fatal("expected an error for a non-function value")
	}
	var f func()
	if err := SetFunctionCode(f, nil); err == nil {
		t.Fatal("expected an error for a non-pointer destination")
	}
}
