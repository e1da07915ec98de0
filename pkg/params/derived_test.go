package params

import (
	"errors"
	"testing"
)

func TestDerivedValues(t *testing.T) {
	s, err := New(map[string]any{
		"body_width":     30.0,
		"body_thickness": 5.0,
		"clearance":      0.25,
		"wall_thickness": 2.5,
		"sleeve_length":  60.0,
		"bolt_position":  12.0,
		"cap_height":     8.0,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		key  string
		want float64
	}{
		{"sleeve_inner_width", 30.5},
		{"sleeve_inner_thickness", 5.5},
		{"sleeve_outer_width", 35.5},
		{"sleeve_outer_thickness", 10.5},
		{"bolt_length", 10.5},
		{"half_bolt_length", 5.25},
		{"cap_pocket_depth", 5.5},
		{"retention_offset", 48},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := s.Float(tt.key); got != tt.want {
				t.Errorf("%s = %g, want %g", tt.key, got, tt.want)
			}
		})
	}
}

func TestDerivedFollowsOverrides(t *testing.T) {
	a, err := New(map[string]any{"clearance": 0.5})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	b, err := New(map[string]any{"clearance": 1.0})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if a.Float("sleeve_inner_width") >= b.Float("sleeve_inner_width") {
		t.Errorf("sleeve_inner_width did not grow with clearance: %g vs %g",
			a.Float("sleeve_inner_width"), b.Float("sleeve_inner_width"))
	}
}

func TestMeshCellsDraftMode(t *testing.T) {
	normal, err := New(map[string]any{"resolution": 200.0})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := normal.Float("mesh_cells"); got != 200 {
		t.Errorf("mesh_cells = %g, want 200", got)
	}

	draft, err := New(map[string]any{"resolution": 200.0, "draft": true})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := draft.Float("mesh_cells"); got != draftCells {
		t.Errorf("draft mesh_cells = %g, want %d", got, draftCells)
	}
}

func TestDerivedKeysOrder(t *testing.T) {
	keys := DerivedKeys()
	if len(keys) != len(derivations) {
		t.Fatalf("DerivedKeys() returned %d keys, want %d", len(keys), len(derivations))
	}
	for i, d := range derivations {
		if keys[i] != d.key {
			t.Errorf("DerivedKeys()[%d] = %q, want %q", i, keys[i], d.key)
		}
	}
}

// withDerivations temporarily swaps the derivation table so resolution
// failure modes can be exercised.
func withDerivations(t *testing.T, extra []derivation) {
	t.Helper()
	savedTable, savedIndex := derivations, derivationIndex
	derivations = append(append([]derivation{}, savedTable...), extra...)
	derivationIndex = make(map[string]int, len(derivations))
	for i, d := range derivations {
		derivationIndex[d.key] = i
	}
	t.Cleanup(func() {
		derivations, derivationIndex = savedTable, savedIndex
	})
}

func TestDerivedCycleFails(t *testing.T) {
	withDerivations(t, []derivation{
		{key: "loop_a", deps: []string{"loop_b"}, fn: func(s *Set) float64 { return s.Float("loop_b") }},
		{key: "loop_b", deps: []string{"loop_a"}, fn: func(s *Set) float64 { return s.Float("loop_a") }},
	})

	_, err := New(nil)
	if err == nil {
		t.Fatal("New() error = nil, want DerivationError for cycle")
	}
	var de *DerivationError
	if !errors.As(err, &de) {
		t.Fatalf("New() error type = %T, want *DerivationError", err)
	}
}

func TestDerivedMissingDependencyFails(t *testing.T) {
	withDerivations(t, []derivation{
		{key: "dangling", deps: []string{"no_such_param"}, fn: func(s *Set) float64 { return 0 }},
	})

	_, err := New(nil)
	var de *DerivationError
	if !errors.As(err, &de) {
		t.Fatalf("New() error = %v, want *DerivationError", err)
	}
	if de.Key != "dangling" {
		t.Errorf("error key = %q, want %q", de.Key, "dangling")
	}
}

func TestDerivedChainUsesDerivedDeps(t *testing.T) {
	// sleeve_outer_width depends on the derived sleeve_inner_width; make
	// sure resolution order follows the DAG, not table order.
	withDerivations(t, []derivation{
		{key: "late_chain", deps: []string{"sleeve_outer_width"},
			fn: func(s *Set) float64 { return s.Float("sleeve_outer_width") + 1 }},
	})

	s, err := New(nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got, want := s.Float("late_chain"), s.Float("sleeve_outer_width")+1; got != want {
		t.Errorf("late_chain = %g, want %g", got, want)
	}
}
