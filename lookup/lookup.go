package x64declookup

import (
	"github.com/wdamron/x64dec"
)

const maxMnemonicLength = 16

var opMap = func() map[string]x64dec.Op {
	m := make(map[string]x64dec.Op, int(x64dec.MaxOp))
	for op := x64dec.Op(1); op <= x64dec.MaxOp; op++ {
		m[op.String()] = op
	}
	return m
}()

// Lookup the operation for a mnemonic. The mnemonic will be converted to lowercase if necessary.
func Op(mnemonic string) (x64dec.Op, bool) {
	if len(mnemonic) > 0 && len(mnemonic) < maxMnemonicLength {
		op, ok := opMap[lowerCase(mnemonic)]
		return op, ok
	}
	return x64dec.INVALID, false
}

func lowerCase(s string) string {
	var b [maxMnemonicLength]byte
	var ch byte
	_ = b[len(s)] // lift bounds-checks out of the loop below (golang.org/issue/14808)
	i, changed := 0, false
loop: // functions containing for-loops cannot currently be inlined (golang.org/issue/14768)
	ch = s[i]
	b[i] = ch
	if 'A' <= ch && ch <= 'Z' {
		b[i] = ch + 'a' - 'A'
		changed = true
	}
	i++
	if i < len(s) {
		goto loop
	}
	if !changed {
		return s
	}
	return string(b[:len(s)])
}
