// Command x64dis decodes x86-64 machine code and prints one instruction per line.
//
// Input comes from a raw binary file (--file), from hex arguments, or from hex text piped on
// stdin:
//
// 	x64dis 48 8b 44 24 08 c3
// 	x64dis --addr 0x401000 --file code.bin --offset 0x40 --length 64
// 	echo "0x48,0x01,0xd8" | x64dis -o yaml
//
// Every flag may also be given as an X64DIS_* environment variable, e.g. X64DIS_OUTPUT=json.
package main

import "os"

// Errors are printed by the command itself.
func main() {
	if err := newRootCommand(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
