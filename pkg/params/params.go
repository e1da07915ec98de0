// Package params implements the Parameter Set: a registry of documented
// primary parameters, fail-fast validation of user overrides, and a layer
// of derived parameters resolved over a dependency DAG. A resolved Set is
// immutable; every shape builder and part assembler reads from the same
// Set and never from ambient state.
package params

import (
	"fmt"
	"strconv"
	"strings"
)

// ConfigError reports an invalid or unknown primary parameter.
// It always names the offending key.
type ConfigError struct {
	Key    string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("parameter %q: %s", e.Key, e.Reason)
}

// DerivationError reports a derived parameter whose definition cannot be
// resolved (cyclic or missing dependency).
type DerivationError struct {
	Key    string
	Reason string
}

func (e *DerivationError) Error() string {
	return fmt.Sprintf("derived parameter %q: %s", e.Key, e.Reason)
}

// Set is an immutable, fully resolved parameter mapping. Primary values
// come from the registry defaults plus user overrides; derived values are
// computed once at construction in dependency order.
type Set struct {
	floats map[string]float64
	bools  map[string]bool
	enums  map[string]string
}

// Default returns a Set resolved from registry defaults alone.
func Default() *Set {
	s, err := New(nil)
	if err != nil {
		panic(fmt.Sprintf("params: defaults do not resolve: %v", err))
	}
	return s
}

// New builds a Set from the registry defaults overlaid with the given
// overrides. Overrides may hold float64, int, bool or string values
// (strings are coerced per the key's declared kind, so CLI and script
// sources can pass everything as text). Validation is fail-fast: the
// first unknown key, unrecognized enum value, non-numeric or out-of-range
// value aborts with a ConfigError before any geometry work begins.
func New(overrides map[string]any) (*Set, error) {
	s := &Set{
		floats: make(map[string]float64, len(defs)),
		bools:  make(map[string]bool),
		enums:  make(map[string]string),
	}
	for _, d := range defs {
		switch d.Kind {
		case KindFloat:
			s.floats[d.Key] = d.Float
		case KindBool:
			s.bools[d.Key] = d.Bool
		case KindEnum:
			s.enums[d.Key] = d.Enum
		}
	}

	// Apply overrides in registry order so error reporting is stable
	// regardless of map iteration order.
	for _, d := range defs {
		v, ok := overrides[d.Key]
		if !ok {
			continue
		}
		if err := s.apply(d, v); err != nil {
			return nil, err
		}
	}
	for key := range overrides {
		if _, ok := defIndex[key]; !ok {
			return nil, &ConfigError{Key: key, Reason: "unknown parameter"}
		}
	}

	if err := s.resolveDerived(); err != nil {
		return nil, err
	}
	return s, nil
}

// apply validates one override value against its definition and stores it.
func (s *Set) apply(d Def, v any) error {
	switch d.Kind {
	case KindFloat:
		f, err := toFloat(v)
		if err != nil {
			return &ConfigError{Key: d.Key, Reason: err.Error()}
		}
		if f < d.Min || f > d.Max {
			return &ConfigError{Key: d.Key,
				Reason: fmt.Sprintf("value %g outside valid range [%g, %g]", f, d.Min, d.Max)}
		}
		s.floats[d.Key] = f

	case KindBool:
		b, err := toBool(v)
		if err != nil {
			return &ConfigError{Key: d.Key, Reason: err.Error()}
		}
		s.bools[d.Key] = b

	case KindEnum:
		str, ok := v.(string)
		if !ok {
			return &ConfigError{Key: d.Key, Reason: fmt.Sprintf("expected one of %v, got %T", d.Domain, v)}
		}
		for _, dom := range d.Domain {
			if str == dom {
				s.enums[d.Key] = str
				return nil
			}
		}
		return &ConfigError{Key: d.Key,
			Reason: fmt.Sprintf("unrecognized value %q, expected one of %s", str, strings.Join(d.Domain, ", "))}
	}
	return nil
}

// Float returns a float parameter (primary or derived).
// Unknown keys panic: asking for an undeclared parameter is a programming
// error, not a configuration error.
func (s *Set) Float(key string) float64 {
	v, ok := s.floats[key]
	if !ok {
		panic(fmt.Sprintf("params: no float parameter %q", key))
	}
	return v
}

// Bool returns a boolean parameter.
func (s *Set) Bool(key string) bool {
	v, ok := s.bools[key]
	if !ok {
		panic(fmt.Sprintf("params: no bool parameter %q", key))
	}
	return v
}

// Enum returns an enum parameter value.
func (s *Set) Enum(key string) string {
	v, ok := s.enums[key]
	if !ok {
		panic(fmt.Sprintf("params: no enum parameter %q", key))
	}
	return v
}

// toFloat coerces an override value to float64.
func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("non-numeric value %q", n)
		}
		return f, nil
	}
	return 0, fmt.Errorf("non-numeric value of type %T", v)
}

// toBool coerces an override value to bool.
func toBool(v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		p, err := strconv.ParseBool(strings.TrimSpace(b))
		if err != nil {
			return false, fmt.Errorf("expected true/false, got %q", b)
		}
		return p, nil
	}
	return false, fmt.Errorf("expected true/false, got %T", v)
}
