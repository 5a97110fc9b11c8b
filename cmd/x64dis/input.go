package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

var errNoInput = errors.New("no input: pass hex bytes, --file, or pipe hex text on stdin")

// readInput selects the code to decode: the file, then the hex arguments, then piped stdin.
func readInput(p *params, args []string, stdin io.Reader) ([]byte, error) {
	switch {
	case p.file != "":
		return readFile(p.file, p.offset, p.length)
	case len(args) != 0:
		return parseHex(strings.Join(args, " "))
	case stdin != nil && !isTerminal(stdin):
		text, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return parseHex(string(text))
	}
	return nil, errNoInput
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func readFile(name string, offset, length int64) ([]byte, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	if offset < 0 || offset > int64(len(data)) {
		return nil, fmt.Errorf("offset %#x is outside %s (%d bytes)", offset, name, len(data))
	}
	data = data[offset:]
	if length < 0 {
		return nil, fmt.Errorf("negative length %d", length)
	}
	if length != 0 && length < int64(len(data)) {
		data = data[:length]
	}
	return data, nil
}

// parseHex accepts hex byte text separated by whitespace or commas, with optional 0x prefixes.
func parseHex(text string) ([]byte, error) {
	var b strings.Builder
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	for _, f := range fields {
		if strings.HasPrefix(f, "0x") || strings.HasPrefix(f, "0X") {
			f = f[2:]
		}
		if len(f)%2 != 0 {
			return nil, fmt.Errorf("odd number of hex digits in %q", f)
		}
		b.WriteString(f)
	}
	code, err := hex.DecodeString(b.String())
	if err != nil {
		return nil, fmt.Errorf("parse hex input: %w", err)
	}
	if len(code) == 0 {
		return nil, errNoInput
	}
	return code, nil
}
