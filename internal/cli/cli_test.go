package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cxykevin/tinyjson/config/structs"
	"github.com/cxykevin/tinyjson/product"
)

func newTestCLI(t *testing.T) *CLI {
	cfg := structs.BuildDefault(structs.Config{})
	cfg.Storage.DataPath = t.TempDir()
	cfg.Storage.DBFile = ":memory:"
	c := New(&cfg)
	t.Cleanup(func() { c.Close() })
	return c
}

func execute(c *CLI, args ...string) (string, error) {
	var out bytes.Buffer
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeInput(t *testing.T, name string, content string) string {
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestVersion(t *testing.T) {
	out, err := execute(newTestCLI(t), "--version")
	if err != nil {
		t.Fatalf("--version failed: %v", err)
	}
	if out != product.UserAgent+"\n" {
		t.Errorf("unexpected version output %q", out)
	}
}

func TestCheck(t *testing.T) {
	c := newTestCLI(t)
	good := writeInput(t, "good.json", ` {"a": [1, 2, true, null, "x"]} `)
	bad := writeInput(t, "bad.json", `{"a":1} x`)
	empty := writeInput(t, "empty.json", ``)

	out, err := execute(c, "check", good)
	if err != nil {
		t.Fatalf("check of a valid file failed: %v", err)
	}
	if out != good+": ok\n" {
		t.Errorf("unexpected output %q", out)
	}

	out, err = execute(c, "check", good, bad, empty, filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, ErrFailed) {
		t.Errorf("Expected ErrFailed, got %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines, got %q", out)
	}
	if lines[1] != bad+": error: root_not_singular at offset 8" {
		t.Errorf("unexpected line %q", lines[1])
	}
	if lines[2] != empty+": error: expect_value at offset 0" {
		t.Errorf("unexpected line %q", lines[2])
	}
	if !strings.Contains(lines[3], "error:") {
		t.Errorf("missing file should be reported, got %q", lines[3])
	}
}

func TestCheckSizeLimit(t *testing.T) {
	c := newTestCLI(t)
	c.cfg.Codec.MaxInputSize = 4
	out, err := execute(c, "check", writeInput(t, "big.json", `[1,2,3]`))
	if !errors.Is(err, ErrFailed) || !strings.Contains(out, "input too large") {
		t.Errorf("Expected size limit failure, got %q %v", out, err)
	}
}

func TestFmt(t *testing.T) {
	c := newTestCLI(t)
	in := writeInput(t, "in.json", "{ \"k\" : [ 1e6 , \"\\u00e9\" ] }")
	out, err := execute(c, "fmt", in)
	if err != nil {
		t.Fatalf("fmt failed: %v", err)
	}
	if out != "{\"k\":[1000000,\"\xC3\xA9\"]}\n" {
		t.Errorf("unexpected fmt output %q", out)
	}

	dst := filepath.Join(t.TempDir(), "out.json")
	if _, err := execute(c, "fmt", in, "-o", dst); err != nil {
		t.Fatalf("fmt -o failed: %v", err)
	}
	data, _ := os.ReadFile(dst)
	if string(data) != "{\"k\":[1000000,\"\xC3\xA9\"]}" {
		t.Errorf("unexpected file content %q", data)
	}

	if _, err := execute(c, "fmt", writeInput(t, "bad.json", `[1,2,]`)); err == nil || !strings.Contains(err.Error(), "missing_comma_or_square_bracket") {
		t.Errorf("Expected syntax error, got %v", err)
	}
}

func TestFmtTranscodes(t *testing.T) {
	c := newTestCLI(t)
	in := writeInput(t, "latin1.json", "[\"caf\xE9\"]")
	out, err := execute(c, "fmt", in)
	if err != nil {
		t.Fatalf("fmt failed: %v", err)
	}
	if out != "[\"caf\xC3\xA9\"]\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestPrint(t *testing.T) {
	c := newTestCLI(t)
	in := writeInput(t, "in.json", `{"a":[1,"x"]}`)
	out, err := execute(c, "print", in, "--indent", "  ")
	if err != nil {
		t.Fatalf("print failed: %v", err)
	}
	expected := "{\n    a: [\n      0: 1,\n      1: \"x\",\n    ],\n  },\n"
	if out != expected {
		t.Errorf("unexpected print output %q", out)
	}
}

func TestEval(t *testing.T) {
	c := newTestCLI(t)
	in := writeInput(t, "in.json", `{"a":[1,2,true,null,"x"]}`)
	out, err := execute(c, "eval", in, `len(a) + a[1]`)
	if err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	if out != "7\n" {
		t.Errorf("unexpected eval output %q", out)
	}
	if _, err := execute(c, "eval", in, `a[`); err == nil {
		t.Errorf("invalid expression should fail")
	}
}

func TestStore(t *testing.T) {
	c := newTestCLI(t)
	in := writeInput(t, "doc.json", ` [ 1 , {"b" : null} ] `)

	out, err := execute(c, "store", "put", "first", in)
	if err != nil {
		t.Fatalf("store put failed: %v", err)
	}
	if out != "stored first (array, 14 bytes)\n" {
		t.Errorf("unexpected put output %q", out)
	}
	if _, err := execute(c, "store", "put", "second", in); err != nil {
		t.Fatalf("store put failed: %v", err)
	}

	out, err = execute(c, "store", "get", "first")
	if err != nil || out != "[1,{\"b\":null}]\n" {
		t.Errorf("store get = %q, %v", out, err)
	}
	out, err = execute(c, "store", "get", "first", "--tree")
	if err != nil || !strings.Contains(out, "b: null,") {
		t.Errorf("store get --tree = %q, %v", out, err)
	}

	out, err = execute(c, "store", "ls")
	if err != nil {
		t.Fatalf("store ls failed: %v", err)
	}
	if !strings.Contains(out, "first") || !strings.Contains(out, "second") || !strings.Contains(out, "array") {
		t.Errorf("unexpected ls output %q", out)
	}

	out, err = execute(c, "store", "rm", "first")
	if err != nil || out != "removed first\n" {
		t.Errorf("store rm = %q, %v", out, err)
	}
	if _, err := execute(c, "store", "get", "first"); err == nil {
		t.Errorf("removed document should be gone")
	}
}

func TestBench(t *testing.T) {
	c := newTestCLI(t)
	in := writeInput(t, "in.json", `{"a":[1,2,3],"s":"text"}`)
	out, err := execute(c, "bench", in, "-n", "5")
	if err != nil {
		t.Fatalf("bench failed: %v", err)
	}
	for _, want := range []string{"iterations: 5", "input: 24 bytes", "output: 24 bytes", "decode:", "encode:"} {
		if !strings.Contains(out, want) {
			t.Errorf("bench output should contain %q, got %q", want, out)
		}
	}
	if _, err := execute(c, "bench", in, "-n", "0"); err == nil {
		t.Errorf("zero iterations should fail")
	}
}

func TestThroughput(t *testing.T) {
	if throughput(1e6, 2, 0) != 0 {
		t.Errorf("zero duration should report 0")
	}
	if got := throughput(1e6, 2, 1e9); got != 2 {
		t.Errorf("Expected 2 MB/s, got %f", got)
	}
}

func TestLog(t *testing.T) {
	c := newTestCLI(t)
	path := writeInput(t, "test.log", "2025/12/07 14:04:35 [DEBUG][cli] noisy\n"+
		"2025/12/07 14:04:36 [ERROR][storage] failed\n"+
		"not a log line\n")
	out, err := execute(c, "log", path, "--level", "info")
	if err != nil {
		t.Fatalf("log failed: %v", err)
	}
	expected := "2025/12/07 14:04:36 [ERROR] [storage] failed\n[LINE 3] not a log line\n"
	if out != expected {
		t.Errorf("unexpected log output %q", out)
	}
}

func TestLogFollowCanceled(t *testing.T) {
	c := newTestCLI(t)
	path := writeInput(t, "test.log", "2025/12/07 14:04:35 [INFO][cli] first\n")
	ctx, cancel := context.WithTimeout(context.Background(), 2*followInterval)
	defer cancel()

	var out bytes.Buffer
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetArgs([]string{"log", path, "-f"})
	go func() {
		time.Sleep(followInterval / 2)
		f, _ := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
		f.WriteString("2025/12/07 14:04:36 [INFO][cli] second\n")
		f.Close()
	}()
	err := root.ExecuteContext(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected deadline error, got %v", err)
	}
	if !strings.Contains(out.String(), "first") || !strings.Contains(out.String(), "second") {
		t.Errorf("follow should print new entries, got %q", out.String())
	}
}
