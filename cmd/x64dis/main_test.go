package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/wdamron/x64dec"
)

func execute(t *testing.T, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand(stdin, &stdout, &stderr)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestTextOutput(t *testing.T) {
	out, _, err := execute(t, nil, "48 8b 44 24 08", "0f 6c", "c3")
	require.NoError(t, err)
	got := lines(out)
	require.Len(t, got, 3)
	require.Equal(t, "00000000  48 8b 44 24 08                 mov rax, [rsp + 0x8]", got[0])
	require.Equal(t, "00000005  0f 6c                          invalid", got[1])
	require.Equal(t, "00000007  c3                             ret", got[2])
}

func TestBranchTarget(t *testing.T) {
	out, _, err := execute(t, nil, "--addr", "0x1000", "90 75 fd")
	require.NoError(t, err)
	got := lines(out)
	require.Len(t, got, 2)
	require.True(t, strings.HasPrefix(got[1], "00001001  75 fd"), got[1])
	require.True(t, strings.HasSuffix(got[1], "jnz -0x3  ; -> 0x1000"), got[1])
}

func TestHexSeparators(t *testing.T) {
	for _, in := range []string{"0x48,0x01,0xd8", "4801d8", "48 01\td8", "0X48, 01 ,D8"} {
		code, err := parseHex(in)
		require.NoError(t, err, in)
		require.Equal(t, []byte{0x48, 0x01, 0xd8}, code, in)
	}
	_, err := parseHex("480")
	require.Error(t, err)
	_, err = parseHex("zz")
	require.Error(t, err)
	_, err = parseHex(" , ")
	require.ErrorIs(t, err, errNoInput)
}

func TestStdinYAML(t *testing.T) {
	out, _, err := execute(t, strings.NewReader("0x48,0x01,0xd8\n0xc3\n"), "-o", "yaml")
	require.NoError(t, err)
	var recs []record
	require.NoError(t, yaml.Unmarshal([]byte(out), &recs))
	require.Len(t, recs, 2)
	require.Equal(t, record{
		Addr:     0,
		Bytes:    "48 01 d8",
		Text:     "add rax, rbx",
		Op:       "add",
		Len:      3,
		Operands: []string{"rax", "rbx"},
	}, recs[0])
	require.Equal(t, "ret", recs[1].Text)
	require.Equal(t, uint64(3), recs[1].Addr)
}

func TestEnvironmentJSON(t *testing.T) {
	t.Setenv("X64DIS_OUTPUT", "json")
	t.Setenv("X64DIS_ADDR", "4096")
	out, _, err := execute(t, nil, "eb fe")
	require.NoError(t, err)
	var recs []record
	require.NoError(t, json.Unmarshal([]byte(out), &recs))
	require.Len(t, recs, 1)
	require.Equal(t, "jmp", recs[0].Op)
	require.Equal(t, uint64(0x1000), recs[0].Addr)
	require.NotNil(t, recs[0].Target)
	require.Equal(t, uint64(0x1000), *recs[0].Target)

	// flags given on the command line win
	out, _, err = execute(t, nil, "-o", "text", "eb fe")
	require.NoError(t, err)
	require.Contains(t, out, "jmp -0x2  ; -> 0x1000")
}

func TestTruncatedTail(t *testing.T) {
	out, logs, err := execute(t, nil, "90 48 8b")
	require.NoError(t, err)
	got := lines(out)
	require.Len(t, got, 2)
	require.True(t, strings.HasSuffix(got[0], "nop"), got[0])
	require.True(t, strings.HasPrefix(got[1], "00000001  48 8b"), got[1])
	require.True(t, strings.HasSuffix(got[1], "(bad)"), got[1])
	require.Contains(t, logs, "truncated instruction")
}

func TestUnsupported(t *testing.T) {
	out, _, err := execute(t, nil, "90 c5 f8 77")
	require.ErrorIs(t, err, x64dec.ErrUnsupported)
	require.Len(t, lines(out), 1)
}

func TestCount(t *testing.T) {
	out, _, err := execute(t, nil, "-n", "2", "90 90 90 90")
	require.NoError(t, err)
	require.Len(t, lines(out), 2)
}

func TestFileInput(t *testing.T) {
	name := filepath.Join(t.TempDir(), "code.bin")
	require.NoError(t, os.WriteFile(name, []byte{0xcc, 0xcc, 0x48, 0x01, 0xd8, 0xc3, 0xcc}, 0o644))

	out, _, err := execute(t, nil, "--file", name, "--offset", "2", "--length", "4", "--addr", "0x2")
	require.NoError(t, err)
	got := lines(out)
	require.Len(t, got, 2)
	require.True(t, strings.HasPrefix(got[0], "00000002  48 01 d8"), got[0])
	require.True(t, strings.HasSuffix(got[1], "ret"), got[1])

	_, _, err = execute(t, nil, "--file", name, "--offset", "8")
	require.Error(t, err)
	_, _, err = execute(t, nil, "--file", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestCompare(t *testing.T) {
	out, _, err := execute(t, nil, "--compare", "48 01 d8")
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(lines(out)[0], "add rax, rbx  | add rax, rbx"), out)
}

func TestDebugLog(t *testing.T) {
	_, logs, err := execute(t, nil, "--log-level", "debug", "0f 6c c3")
	require.NoError(t, err)
	require.Contains(t, logs, "invalid instruction")
	require.Contains(t, logs, "msg=ret")
}

func TestBadFlags(t *testing.T) {
	_, _, err := execute(t, nil, "-o", "xml", "90")
	require.Error(t, err)
	_, _, err = execute(t, nil, "--log-level", "loud", "90")
	require.Error(t, err)
	_, _, err = execute(t, nil, "--count=-1", "90")
	require.Error(t, err)
	_, _, err = execute(t, nil)
	require.ErrorIs(t, err, errNoInput)
}

func TestErrorsReported(t *testing.T) {
	for _, args := range [][]string{
		{"-o", "xml", "90"},
		{"--log-level", "loud", "90"},
		{"--bogus", "90"},
		{"zz"},
		{"c5 f8 77"},
	} {
		_, logs, err := execute(t, nil, args...)
		require.Error(t, err, "%q", args)
		require.Contains(t, logs, err.Error(), "%q", args)
	}

	_, logs, _ := execute(t, nil, "-o", "xml", "90")
	require.Contains(t, logs, `unknown output format "xml"`)
}
