package engine

import "testing"

func TestPreprocessSource(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lisp comment", "; note\n(x)", "// note\n(x)"},
		{"double semicolon", ";; note", "// note"},
		{"keyword", "(param :body-width 1)", `(param "__kw_body-width" 1)`},
		{"keyword keeps digits", "(:o2)", `("__kw_o2")`},
		{"assignment preserved", "x := 5", "x := 5"},
		{"bare kebab identifier", "(def body-width 1)", "(def body_width 1)"},
		{"subtraction untouched", "(- 5 2)", "(- 5 2)"},
		{"string literal untouched", `(print "a-b :c ; d")`, `(print "a-b :c ; d")`},
		{"escaped quote in string", `"a\"b-c"`, `"a\"b-c"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := preprocessSource(tt.in); got != tt.want {
				t.Errorf("preprocessSource(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestKeyNameNormalizesKebab(t *testing.T) {
	source := `(param :slot-right-factor 1.5)`
	e := NewEngine()
	overlay, evalErrs, err := e.Evaluate(source)
	if err != nil || len(evalErrs) != 0 {
		t.Fatalf("Evaluate() = %v, %v", evalErrs, err)
	}
	if overlay["slot_right_factor"] != 1.5 {
		t.Errorf("overlay = %v, want slot_right_factor 1.5", overlay)
	}
}

func TestDefaultBuiltinKinds(t *testing.T) {
	// A bool default feeds straight back into a param call.
	source := `(param :draft (default :draft))`
	e := NewEngine()
	overlay, evalErrs, err := e.Evaluate(source)
	if err != nil || len(evalErrs) != 0 {
		t.Fatalf("Evaluate() = %v, %v", evalErrs, err)
	}
	if overlay["draft"] != false {
		t.Errorf("overlay = %v, want draft false", overlay)
	}
}
