// package x64dec provides an x86-64 instruction decoder and Intel-syntax formatter in Go
//
// usage example:
//
// 	package example
//
// 	import (
// 		"errors"
// 		"fmt"
//
// 		"github.com/wdamron/x64dec"
// 	)
//
// 	func Print(code []byte) error {
// 		for len(code) > 0 {
// 			inst, err := x64dec.Decode(code)
// 			if errors.Is(err, x64dec.ErrTruncated) {
// 				return fmt.Errorf("%d trailing bytes: %w", len(code), err)
// 			}
// 			if err != nil {
// 				return err
// 			}
// 			fmt.Println(inst) // e.g. "mov [rsp + 0x18], rax"
// 			code = code[inst.Len:]
// 		}
// 		return nil
// 	}
//
// Decoding is limited to 64-bit mode. Legacy, REX, and EVEX encoded instructions are decoded,
// including the general-purpose, x87, MMX, SSE through SSE4.2, and common AVX-512 foundation
// instructions. VEX and XOP encodings return ErrUnsupported.
//
// Encodings which no instruction accepts (reserved opcodes, invalid ModRM forms, misplaced
// lock prefixes) are not errors: they decode as an Inst with Op INVALID, and Len set to the
// number of bytes examined, so a caller can skip them and resynchronize.
package x64dec
