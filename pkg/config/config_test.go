package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"cardsheet/pkg/errors"
	"cardsheet/pkg/sheet"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cardsheet.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[defaults]
sheet = "A4"
scale = 0.9

[sheets]
TAROT = [612, 936]

[margins]
left = 20
right = 20
top = 20
bottom = 40
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Defaults.Sheet != "A4" {
		t.Errorf("default sheet = %q", cfg.Defaults.Sheet)
	}
	if cfg.Defaults.Scale != 0.9 {
		t.Errorf("default scale = %g", cfg.Defaults.Scale)
	}
	if dims := cfg.Sheets["TAROT"]; len(dims) != 2 || dims[0] != 612 || dims[1] != 936 {
		t.Errorf("custom sheet = %v", dims)
	}

	m := cfg.ResolveMargins()
	if !m.Left.Equal(decimal.NewFromInt(20)) || !m.Bottom.Equal(decimal.NewFromInt(40)) {
		t.Errorf("margins = left %s, bottom %s", m.Left, m.Bottom)
	}
}

func TestLoad_Optional(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "absent.toml")} {
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%q): %v", path, err)
		}
		if cfg.Defaults.Sheet != "" || cfg.Margins != nil {
			t.Errorf("Load(%q) should be empty, got %+v", path, cfg)
		}
	}
}

func TestLoad_Malformed(t *testing.T) {
	if _, err := Load(writeConfig(t, "[defaults\nsheet=")); err == nil {
		t.Error("expected error for malformed toml")
	}
}

func TestResolveSheet(t *testing.T) {
	cfg := &Config{Sheets: map[string][]int64{"TAROT": {612, 936}}}

	s, err := cfg.ResolveSheet("tarot")
	if err != nil {
		t.Fatalf("ResolveSheet: %v", err)
	}
	if s.Name != "TAROT" || s.Width != 612 || s.Height != 936 {
		t.Errorf("custom sheet = %+v", s)
	}

	// Built-ins still resolve.
	s, err = cfg.ResolveSheet("letter")
	if err != nil {
		t.Fatalf("ResolveSheet: %v", err)
	}
	if s != sheet.Letter {
		t.Errorf("got %+v, want LETTER", s)
	}

	if _, err := cfg.ResolveSheet("TABLOID"); !errors.Is(err, errors.ErrCodeInvalidSheetSize) {
		t.Errorf("expected INVALID_SHEET_SIZE, got %v", err)
	}
}

func TestResolveSheet_BadDimensions(t *testing.T) {
	cfg := &Config{Sheets: map[string][]int64{"BAD": {612}}}
	if _, err := cfg.ResolveSheet("BAD"); !errors.Is(err, errors.ErrCodeInvalidSheetSize) {
		t.Errorf("expected INVALID_SHEET_SIZE, got %v", err)
	}
}

func TestResolveMargins_Defaults(t *testing.T) {
	cfg := &Config{}
	if m := cfg.ResolveMargins(); !m.Bottom.Equal(decimal.NewFromInt(36)) {
		t.Errorf("expected default bottom 36, got %s", m.Bottom)
	}
}
