// Package disasm walks x86-64 machine code with the x64dec decoder.
//
// Code decodes a byte slice at a given address, and Func decodes the machine code of a live Go
// function-value until its RET and trailing padding. SetFunctionCode points a function-value
// at executable memory, which makes hand-written code callable from Go:
//
// 	mem, _ := unix.Mmap(-1, 0, os.Getpagesize(), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
// 	copy(mem, []byte{0x48, 0x01, 0xd8, 0xc3}) // add rax, rbx; ret
// 	unix.Mprotect(mem, unix.PROT_READ|unix.PROT_EXEC)
//
// 	sum := (func(a, b int) int)(nil)
// 	disasm.SetFunctionCode(&sum, mem)
//
// 	disasm.Func(sum, func(inst x64dec.Inst) bool {
// 		fmt.Println(inst)
// 		return true
// 	})
// 	// Outputs:
// 	//
// 	// 	add rax, rbx
// 	// 	ret
package disasm
