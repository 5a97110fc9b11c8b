package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wdamron/x64dec"
	"github.com/wdamron/x64dec/disasm"
)

const (
	outputText = "text"
	outputYAML = "yaml"
	outputJSON = "json"
)

type params struct {
	file     string
	offset   int64
	length   int64
	addr     uint64
	output   string
	compare  bool
	count    int
	logLevel string
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	p := &params{}
	cmd := &cobra.Command{
		Use:           "x64dis [flags] [hex...]",
		Short:         "Disassemble x86-64 machine code",
		Long:          "Decode x86-64 machine code from a file, hex arguments, or stdin, and print Intel-syntax instructions.",
		SilenceUsage:  true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := bindEnvironment(cmd); err != nil {
				return err
			}
			switch p.output {
			case outputText, outputYAML, outputJSON:
			default:
				return fmt.Errorf("unknown output format %q (want text, yaml, or json)", p.output)
			}
			if p.count < 0 {
				return fmt.Errorf("negative count %d", p.count)
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			log, err := newLogger(p.logLevel, stderr)
			if err != nil {
				return err
			}
			code, err := readInput(p, args, stdin)
			if err != nil {
				return err
			}
			recs, runErr := run(p, code, log)
			if err := write(stdout, p.output, recs); err != nil {
				return err
			}
			return runErr
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	f := cmd.Flags()
	f.StringVarP(&p.file, "file", "f", "", "raw binary input file")
	f.Int64Var(&p.offset, "offset", 0, "start offset in the file")
	f.Int64Var(&p.length, "length", 0, "bytes to read (0 = to end)")
	f.Uint64Var(&p.addr, "addr", 0, "address of the first byte")
	f.StringVarP(&p.output, "output", "o", outputText, "output format: text | yaml | json")
	f.BoolVar(&p.compare, "compare", false, "append x86asm Intel syntax for each instruction")
	f.IntVarP(&p.count, "count", "n", 0, "stop after n instructions (0 = all)")
	f.StringVar(&p.logLevel, "log-level", "warn", "log level: error, warn, info, or debug")
	return cmd
}

func newLogger(level string, w io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return log, nil
}

// run decodes code into output records. A truncated tail becomes a final "(bad)" record; any
// other decoding error stops the run and is returned with the records decoded before it.
// Returned errors are printed by cobra.
func run(p *params, code []byte, log *logrus.Logger) ([]record, error) {
	var recs []record
	next := p.addr
	err := disasm.Code(code, p.addr, func(pc uint64, inst x64dec.Inst) bool {
		raw := code[pc-p.addr : pc-p.addr+uint64(inst.Len)]
		rec := newRecord(pc, raw, inst)
		if p.compare {
			rec.X86asm = compare(code[pc-p.addr:], pc)
		}
		entry := log.WithFields(logrus.Fields{"addr": fmt.Sprintf("%#x", pc), "len": inst.Len})
		if inst.Op == x64dec.INVALID {
			entry.Warn("invalid instruction")
		} else {
			entry.Debug(rec.Text)
		}
		recs = append(recs, rec)
		next = pc + uint64(inst.Len)
		return p.count == 0 || len(recs) < p.count
	})
	switch {
	case errors.Is(err, x64dec.ErrTruncated):
		log.WithField("addr", fmt.Sprintf("%#x", next)).Warn(err)
		recs = append(recs, badRecord(next, code[next-p.addr:]))
	case err != nil:
		return recs, err
	}
	log.WithField("count", len(recs)).Info("decoded")
	return recs, nil
}
