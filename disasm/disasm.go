package disasm

import (
	"bytes"
	"fmt"
	"reflect"
	"unsafe"

	"github.com/wdamron/x64dec"
)

// Code decodes instructions from code until fn returns false or the input is exhausted. pc is
// the address of the first byte; fn receives the address of each instruction.
//
// Invalid encodings are passed to fn as INVALID instructions. If the input ends within an
// instruction, the returned error wraps x64dec.ErrTruncated.
func Code(code []byte, pc uint64, fn func(pc uint64, inst x64dec.Inst) bool) error {
	n := 0
	for n < len(code) {
		end := n + x64dec.MaxInstLen
		if end > len(code) {
			end = len(code)
		}
		inst, err := x64dec.Decode(code[n:end])
		if err != nil {
			return fmt.Errorf("decode at %#x: %w", pc+uint64(n), err)
		}
		if !fn(pc+uint64(n), inst) {
			return nil
		}
		n += inst.Len
	}
	return nil
}

// Disassemble instructions from funcValue until while returns false. A maximum of 4096 bytes
// may be decoded. This function is entirely unsafe.
//
// funcValue must be a non-nil Go function-value.
func Func(funcValue interface{}, while func(x64dec.Inst) bool) error {
	// See "Go 1.1 Function Calls":
	// https://docs.google.com/document/d/1bMwCey-gmqZVTpRax-ESeVuZGmjwbocYs1iHplK-cjo/pub
	type interfaceHeader struct {
		typ  uintptr
		addr **[]byte
	}
	v := reflect.ValueOf(funcValue)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		return fmt.Errorf("Argument for Func must be a non-nil function-value")
	}
	header := *(*interfaceHeader)(unsafe.Pointer(&funcValue))
	code := (*[maxFuncLen]byte)(unsafe.Pointer(*header.addr))
	n := 0
	for n < maxFuncLen {
		end := n + x64dec.MaxInstLen
		if end > maxFuncLen {
			end = maxFuncLen
		}
		inst, err := x64dec.Decode(code[n:end])
		if err != nil {
			return fmt.Errorf("decode at +%#x: %w", n, err)
		}
		if !while(inst) {
			return nil
		}
		if inst.Op == x64dec.RET && endsFunc(code[:], n+inst.Len) {
			return nil
		}
		n += inst.Len
	}
	return nil
}

const maxFuncLen = 4096

// endsFunc checks if the bytes from n to the next 16-byte boundary are padding.
func endsFunc(code []byte, n int) bool {
	if n&15 == 0 {
		return true
	}
	pad := 16 - (n & 15) // functions are typically aligned to a 16-byte boundary
	if n+pad > len(code) {
		return true
	}
	return bytes.Equal(code[n:n+pad], pad00[:pad]) || bytes.Equal(code[n:n+pad], padcc[:pad])
}

// Manually allocated memory is typically zeroed
var pad00 = [...]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}

// The Go compiler seems to pad functions with 0xCC bytes to a 16-byte alignment boundary
var padcc = [...]byte{0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc}

// Set the executable code for dstAddr. This function is entirely unsafe.
//
// dstAddr must be a pointer to a function value.
// executable must be marked with PROT_EXEC privileges through a MPROTECT system-call.
func SetFunctionCode(dstAddr interface{}, executable []byte) error {
	type interfaceHeader struct {
		typ  uintptr
		addr **[]byte
	}
	v := reflect.ValueOf(dstAddr)
	if !v.IsValid() || v.Kind() != reflect.Ptr || v.IsNil() || !v.Elem().CanSet() || v.Elem().Kind() != reflect.Func {
		return fmt.Errorf("Destination for SetFunctionCode must be a pointer to a function-value")
	}
	header := *(*interfaceHeader)(unsafe.Pointer(&dstAddr))
	*header.addr = &executable
	return nil
}
