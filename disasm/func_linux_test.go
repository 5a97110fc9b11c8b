//go:build linux && amd64

package disasm

import (
	"os"
	"testing"

	"golang.org/x/arch/x86/x86asm"
	"golang.org/x/sys/unix"

	"github.com/wdamron/x64dec"
)

// Under the register ABI, the arguments arrive in RAX and RBX and the result returns in RAX.
var sumCode = []byte{
	0x48, 0x01, 0xd8, // add rax, rbx
	0xc3, // ret
}

func TestFunc(t *testing.T) {
	mem, err := unix.Mmap(-1, 0, os.Getpagesize(), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		t.Fatalf("sys/unix.Mmap failed: %v", err)
	}

	defer unix.Munmap(mem)

	copy(mem, sumCode)

	if err := unix.Mprotect(mem, unix.PROT_READ|unix.PROT_EXEC); err != nil {
		t.Fatalf("sys/unix.Mprotect failed: %v", err)
	}

	sum := (func(a, b int) int)(nil)
	if err := SetFunctionCode(&sum, mem); err != nil {
		t.Fatal(err)
	}

	for i := -5; i <= 5; i++ {
		for j := -5; j <= 5; j++ {
			if s := sum(i, j); s != i+j {
				t.Fatalf("sum(%v, %v) = %v", i, j, s)
			}
		}
	}

	var insts []x64dec.Inst
	takeWhile := func(inst x64dec.Inst) bool {
		insts = append(insts, inst)
		return true // RET + padding should be automatically detected
	}
	if err := Func(sum, takeWhile); err != nil {
		t.Fatal(err)
	}
	if len(insts) != 2 {
		t.Fatalf("expected %v instructions, found %v", 2, len(insts))
	}
	check := func(expect string, inst x64dec.Inst) {
		if inst.String() != expect {
			t.Fatalf("Expected instruction: %s --- found %s", expect, inst)
		}
	}
	check("add rax, rbx", insts[0])
	check("ret", insts[1])

	// the lengths agree with x86asm
	n := 0
	for _, inst := range insts {
		ref, err := x86asm.Decode(mem[n:], 64)
		if err != nil {
			t.Fatal(err)
		}
		if ref.Len != inst.Len {
			t.Fatalf("length mismatch at %d: %d, x86asm %d", n, inst.Len, ref.Len)
		}
		n += inst.Len
	}
}
