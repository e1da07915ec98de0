package engine

import (
	"fmt"
	"strings"

	"github.com/chazu/scabbard/pkg/params"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// preprocessSource transforms parameter-script source before passing it to
// zygomys:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal),
//     so parameter keys can be written as keywords without registering
//     symbols.
//  2. ; line comments -> // comments (zygomys has no Lisp-style comments).
//  3. Kebab-case to underscore outside of strings: body-width is a key,
//     not a subtraction.
//
// All transformations respect string literal boundaries.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Copy double-quoted string literals untouched.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments.
		if b[i] == ';' {
			result = append(result, '/', '/')
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword", preserving := assignment.
		if b[i] == ':' && i+1 < len(b) {
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, b[i+1:j]...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isLetter(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// keyName extracts a parameter key from a Sexp: either a preprocessed
// keyword (:body-width) or a plain string ("body_width"). Kebab-case is
// normalized to the registry's underscore form.
func keyName(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", fmt.Errorf("expected parameter key, got %T (%s)", s, s.SexpString(nil))
	}
	name := strings.TrimPrefix(str.S, kwPrefix)
	return strings.ReplaceAll(name, "-", "_"), nil
}

// toValue converts a script Sexp into an overlay value.
func toValue(s zygo.Sexp) (any, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	case *zygo.SexpBool:
		return v.Val, nil
	case *zygo.SexpStr:
		return strings.TrimPrefix(v.S, kwPrefix), nil
	}
	return nil, fmt.Errorf("expected number, bool or string, got %T (%s)", s, s.SexpString(nil))
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the parameter-script builtins into a zygomys
// environment. The builtins write into the provided overlay during
// evaluation.
func registerBuiltins(env *zygo.Zlisp, overlay map[string]any) {

	// -----------------------------------------------------------------------
	// (param :body-width 30)
	// -----------------------------------------------------------------------
	env.AddFunction("param", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("param requires a key and a value, got %d arguments", len(args))
		}
		key, err := keyName(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("param: %w", err)
		}
		if _, ok := params.Lookup(key); !ok {
			return zygo.SexpNull, fmt.Errorf("param: unknown parameter %q", key)
		}
		v, err := toValue(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("param: %s: %w", key, err)
		}
		overlay[key] = v
		return args[1], nil
	})

	// -----------------------------------------------------------------------
	// (default :body-width) — registry default, for arithmetic
	// -----------------------------------------------------------------------
	env.AddFunction("default", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("default requires a key argument")
		}
		key, err := keyName(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("default: %w", err)
		}
		def, ok := params.Lookup(key)
		if !ok {
			return zygo.SexpNull, fmt.Errorf("default: unknown parameter %q", key)
		}
		switch def.Kind {
		case params.KindFloat:
			return &zygo.SexpFloat{Val: def.Float}, nil
		case params.KindBool:
			return &zygo.SexpBool{Val: def.Bool}, nil
		default:
			return &zygo.SexpStr{S: def.Enum}, nil
		}
	})
}
