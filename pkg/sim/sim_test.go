package sim

import (
	"testing"
)

func TestNewDerivesIdentifier(t *testing.T) {
	s := New(Tran("1n", "1u", "", "", false))
	if s.Identifier != "TRAN" {
		t.Errorf("Identifier = %q, want TRAN", s.Identifier)
	}
	if s.Cmd != "tran 1n 1u" {
		t.Errorf("Cmd = %q, want tran 1n 1u", s.Cmd)
	}
}

func TestCommandBuilders(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"tran basic", Tran("1n", "1u", "", "", false), "tran 1n 1u"},
		{"tran full", Tran("1n", "1u", "100n", "10n", true), "tran 1n 1u tstart=100n tmax=10n uic"},
		{"dc", DC("vdd", "0", "1.8", "0.1"), "dc vdd 0 1.8 0.1"},
		{"ac", AC("dec", 10, "1", "1meg"), "ac dec 10 1 1meg"},
		{"tf", TF("v(out)", "VIN"), "tf v(out) vin"},
		{"pz", PZ("in", "0", "out", "0", "vol", "pz"), "pz in 0 out 0 vol pz"},
		{"noise", Noise("out", "vin", "dec", 10, "1", "1meg", 1), "noise v(out) vin dec 10 1 1meg 1"},
		{"noise diff", NoiseDiff("outp", "outn", "vin", "dec", 10, "1", "1meg", 1), "noise v(outp,outn) vin dec 10 1 1meg 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}
