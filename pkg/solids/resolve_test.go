package solids

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		opts []Opt
		want float64
	}{
		{"empty", nil, 0},
		{"all unset", []Opt{{}, {}, {}}, 0},
		{"first set wins", []Opt{Some(2), Some(1)}, 2},
		{"skips unset", []Opt{{}, Some(1)}, 1},
		{"explicit zero is a value", []Opt{Some(0), Some(5)}, 0},
		{"falls through to last", []Opt{{}, {}, Some(7)}, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.opts...); got != tt.want {
				t.Errorf("Resolve() = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestOptIsSet(t *testing.T) {
	if (Opt{}).IsSet() {
		t.Error("zero Opt reports set")
	}
	if !Some(0).IsSet() {
		t.Error("Some(0) reports unset")
	}
}

func TestOptTimes(t *testing.T) {
	if got := Resolve(Some(3).times(2)); got != 6 {
		t.Errorf("Some(3).times(2) resolves to %g, want 6", got)
	}
	if (Opt{}).times(2).IsSet() {
		t.Error("unset Opt became set after times()")
	}
}
