package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/arch/x86/x86asm"
	"gopkg.in/yaml.v3"

	"github.com/wdamron/x64dec"
)

type record struct {
	Addr     uint64   `yaml:"addr" json:"addr"`
	Bytes    string   `yaml:"bytes" json:"bytes"`
	Text     string   `yaml:"text" json:"text"`
	Op       string   `yaml:"op" json:"op"`
	Len      int      `yaml:"len" json:"len"`
	Operands []string `yaml:"operands,omitempty" json:"operands,omitempty"`
	Target   *uint64  `yaml:"target,omitempty" json:"target,omitempty"`
	X86asm   string   `yaml:"x86asm,omitempty" json:"x86asm,omitempty"`
}

func newRecord(pc uint64, raw []byte, inst x64dec.Inst) record {
	rec := record{
		Addr:  pc,
		Bytes: hexBytes(raw),
		Text:  inst.String(),
		Op:    inst.Op.String(),
		Len:   inst.Len,
	}
	for _, arg := range inst.Args {
		if arg == nil {
			break
		}
		rec.Operands = append(rec.Operands, arg.String())
	}
	if target, ok := inst.Target(pc); ok {
		rec.Target = &target
	}
	return rec
}

func badRecord(pc uint64, raw []byte) record {
	return record{Addr: pc, Bytes: hexBytes(raw), Text: "(bad)", Len: len(raw)}
}

// compare renders the instruction at the start of code with x86asm.
func compare(code []byte, pc uint64) string {
	inst, err := x86asm.Decode(code, 64)
	if err != nil {
		return "(" + err.Error() + ")"
	}
	return x86asm.IntelSyntax(inst, pc, nil)
}

func hexBytes(raw []byte) string {
	s := hex.EncodeToString(raw)
	var b strings.Builder
	for i := 0; i < len(s); i += 2 {
		if i != 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s[i : i+2])
	}
	return b.String()
}

// Room for 10 bytes; longer encodings push the text right.
const bytesColumn = 29

func write(w io.Writer, format string, recs []record) error {
	switch format {
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(recs); err != nil {
			return err
		}
		return enc.Close()
	case outputJSON:
		if recs == nil {
			recs = []record{}
		}
		bs, err := json.MarshalIndent(recs, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(bs))
		return err
	}
	for _, rec := range recs {
		line := fmt.Sprintf("%08x  %-*s  %s", rec.Addr, bytesColumn, rec.Bytes, rec.Text)
		if rec.Target != nil {
			line += fmt.Sprintf("  ; -> %#x", *rec.Target)
		}
		if rec.X86asm != "" {
			line += "  | " + rec.X86asm
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
