package control

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/christoph-weiser/ngsim/pkg/netlist"
	"github.com/christoph-weiser/ngsim/pkg/sim"
)

func TestExternalNormalizes(t *testing.T) {
	ctl := FromString(".control\nTRAN  1n 1u\nrun\n.endc\n")
	want := ".control\ntran 1n 1u\nrun\n.endc"
	if got := ctl.Netlist(); got != want {
		t.Errorf("Netlist() = %q, want %q", got, want)
	}
}

func TestExternalFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "control.sp")
	if err := os.WriteFile(path, []byte(".control\nrun\n.endc\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	ctl, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	if !strings.Contains(ctl.Netlist(), ".control") {
		t.Errorf("Netlist() = %q, missing .control", ctl.Netlist())
	}
}

func TestLogicalAssemble(t *testing.T) {
	tran := sim.New(sim.Tran("1n", "1u", "", "", false))
	tran.Prints = []string{"v(out)"}
	tran.Outputs = []string{"v(out)", "v(in)"}
	tran.Measure = []string{"meas tran tr rise v(out) val=0.9 td=0"}

	ctl := NewLogical(tran)
	ctl.NgOptions = []Option{{Key: "num_threads", Value: "4"}}
	ctl.SimOptions = []Option{{Key: "temp", Value: "27"}, {Key: "noacct"}}
	ctl.Includes = []string{"/pdk/models.lib"}

	text := ctl.Netlist()

	wantOrder := []string{
		".control",
		"set filetype=ascii",
		"set wr_singlescale",
		"set wr_vecnames",
		"set num_threads=4",
		"set ngbehavior=hsa",
		"save all",
		"tran 1n 1u",
		"echo --- start TRAN ---",
		"print v(out)",
		"wrdata ./tran_output.csv v(out) v(in)",
		"meas tran tr rise v(out) val=0.9 td=0",
		"echo --- end TRAN ---",
		"exit",
		".endc",
		".option temp=27",
		".option noacct",
		".include \"/pdk/models.lib\"",
		"\n.end\n",
	}
	pos := -1
	for _, want := range wantOrder {
		idx := strings.Index(text, want)
		if idx < 0 {
			t.Fatalf("assembled section missing %q:\n%s", want, text)
		}
		if idx < pos {
			t.Errorf("%q appears out of order", want)
		}
		pos = idx
	}
}

func TestLogicalSweepNumInOutputFile(t *testing.T) {
	tran := sim.New(sim.Tran("1n", "1u", "", "", false))
	tran.Outputs = []string{"v(out)"}

	ctl := NewLogical(tran)
	ctl.SweepNum = 3
	if !strings.Contains(ctl.Netlist(), "wrdata ./tran_3_output.csv v(out)") {
		t.Errorf("sweep number missing from output file:\n%s", ctl.Netlist())
	}
}

func TestWriteSimNetlist(t *testing.T) {
	cir, err := netlist.FromString("r1 in out 1k\n")
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	ctl := FromString(".control\nrun\n.endc\n")

	path := filepath.Join(t.TempDir(), "sim.cir")
	if err := WriteSimNetlist(cir, ctl, path); err != nil {
		t.Fatalf("WriteSimNetlist: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	if !strings.Contains(text, "r1 in out 1k") || !strings.Contains(text, ".control") {
		t.Errorf("combined netlist incomplete:\n%s", text)
	}
}
