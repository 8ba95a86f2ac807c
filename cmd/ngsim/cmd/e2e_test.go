package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const e2eNetlist = `* divider testbench
VDD vdd 0 1.8
R1 vdd out 1k
R2 out 0 1k
XR1 out 0 rmod w=1u
`

func writeNetlist(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "divider.sp")
	if err := os.WriteFile(path, []byte(e2eNetlist), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// runCommand executes the root command with args and returns captured stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w

	var buf bytes.Buffer
	done := make(chan struct{})
	go func() {
		io.Copy(&buf, r)
		close(done)
	}()

	rootCmd.SetArgs(args)
	execErr := rootCmd.Execute()

	w.Close()
	os.Stdout = old
	<-done
	return buf.String(), execErr
}

func TestParseE2E(t *testing.T) {
	path := writeNetlist(t)

	out, err := runCommand(t, "parse", path)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	for _, want := range []string{"4 elements", "vdd", "resistor", "subcircuit", "root"} {
		if !strings.Contains(out, want) {
			t.Errorf("parse output missing %q:\n%s", want, out)
		}
	}
}

func TestCleanE2E(t *testing.T) {
	path := writeNetlist(t)

	out, err := runCommand(t, "clean", path)
	if err != nil {
		t.Fatalf("clean: %v", err)
	}
	if !strings.Contains(out, "vdd vdd 0 1.8") {
		t.Errorf("clean output not normalized:\n%s", out)
	}
	if strings.Contains(out, "VDD") {
		t.Errorf("clean output kept uppercase:\n%s", out)
	}
}

func TestFilterE2E(t *testing.T) {
	path := writeNetlist(t)

	out, err := runCommand(t, "filter", path, "instance=r.*")
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("filter matched %d lines, want 2:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "r1 ") || !strings.HasPrefix(lines[1], "r2 ") {
		t.Errorf("filter output = %v, want r1 and r2", lines)
	}
}

func TestAlterE2E(t *testing.T) {
	path := writeNetlist(t)

	out, err := runCommand(t, "alter", path, "-f", "instance=vdd", "--args", "3.3")
	if err != nil {
		t.Fatalf("alter: %v", err)
	}
	if !strings.Contains(out, "vdd vdd 0 3.3") {
		t.Errorf("alter did not rewrite source value:\n%s", out)
	}
	if strings.Contains(out, "vdd vdd 0 1.8") {
		t.Errorf("alter output kept original value:\n%s", out)
	}
}
