package xschem

import (
	"strings"
	"testing"
)

const exported = `** sch_path: /designs/divider.sch
R1 vdd out 1k
R2 out 0 1k
**** begin user architecture code
.control
tran 1n 1u
plot v(out)
run
.endc
**** end user architecture code
V1 vdd 0 1.8
.end
`

func TestExtractCircuit(t *testing.T) {
	got := ExtractCircuit(exported)

	for _, want := range []string{"R1 vdd out 1k", "R2 out 0 1k", "V1 vdd 0 1.8"} {
		if !strings.Contains(got, want) {
			t.Errorf("extracted circuit missing %q:\n%s", want, got)
		}
	}
	for _, dropped := range []string{".control", "tran 1n 1u", "begin user architecture code"} {
		if strings.Contains(got, dropped) {
			t.Errorf("extracted circuit still contains %q:\n%s", dropped, got)
		}
	}
}

func TestExtractControl(t *testing.T) {
	got := ExtractControl(exported, false)

	for _, want := range []string{".control", "tran 1n 1u", "plot v(out)", "run", ".endc"} {
		if !strings.Contains(got, want) {
			t.Errorf("extracted control missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "R1 vdd out 1k") {
		t.Errorf("extracted control contains circuit lines:\n%s", got)
	}
}

func TestExtractControlSkipsPlots(t *testing.T) {
	got := ExtractControl(exported, true)
	if strings.Contains(got, "plot v(out)") {
		t.Errorf("plot statement not skipped:\n%s", got)
	}
	if !strings.Contains(got, "tran 1n 1u") {
		t.Errorf("analysis command lost while skipping plots:\n%s", got)
	}
}
