package commands

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverlayEmptyPath(t *testing.T) {
	overlay, err := loadOverlay("")
	if err != nil {
		t.Fatalf("loadOverlay(\"\") error = %v", err)
	}
	if overlay != nil {
		t.Errorf("overlay = %v, want nil", overlay)
	}
}

func TestLoadOverlayYAML(t *testing.T) {
	path := writeFile(t, "p.yaml", "body_width: 24\n")
	overlay, err := loadOverlay(path)
	if err != nil {
		t.Fatalf("loadOverlay() error = %v", err)
	}
	if overlay["body_width"] != 24 {
		t.Errorf("overlay = %v, want body_width 24", overlay)
	}
}

func TestLoadOverlayScript(t *testing.T) {
	path := writeFile(t, "p.lisp", "(param :body-width 24)\n")
	overlay, err := loadOverlay(path)
	if err != nil {
		t.Fatalf("loadOverlay() error = %v", err)
	}
	if overlay["body_width"] != float64(24) {
		t.Errorf("overlay = %v, want body_width 24", overlay)
	}
}

func TestLoadOverlayScriptError(t *testing.T) {
	path := writeFile(t, "p.lisp", "(param :no-such-knob 1)\n")
	if _, err := loadOverlay(path); err == nil {
		t.Error("loadOverlay(bad script) error = nil")
	}
}

func TestLoadOverlayUnsupportedExtension(t *testing.T) {
	path := writeFile(t, "p.toml", "body_width = 24\n")
	if _, err := loadOverlay(path); err == nil {
		t.Error("loadOverlay(.toml) error = nil")
	}
}
