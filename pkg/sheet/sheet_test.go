package sheet

import (
	"testing"

	"github.com/shopspring/decimal"

	"cardsheet/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		want Size
	}{
		{"LETTER", Letter},
		{"letter", Letter},
		{"Legal", Legal},
		{"a4", A4},
	}

	for _, tt := range tests {
		got, err := Parse(tt.name)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestParse_Unknown(t *testing.T) {
	_, err := Parse("TABLOID")
	if !errors.Is(err, errors.ErrCodeInvalidSheetSize) {
		t.Errorf("expected INVALID_SHEET_SIZE, got %v", err)
	}
}

func TestCustom(t *testing.T) {
	s, err := Custom("tarot", 612, 936)
	if err != nil {
		t.Fatalf("Custom: %v", err)
	}
	if s.Name != "TAROT" {
		t.Errorf("name = %q, want TAROT", s.Name)
	}
	if s.Width != 612 || s.Height != 936 {
		t.Errorf("dimensions = %dx%d", s.Width, s.Height)
	}

	for _, dims := range [][2]int64{{0, 100}, {100, 0}, {-10, 100}} {
		if _, err := Custom("bad", dims[0], dims[1]); !errors.Is(err, errors.ErrCodeInvalidSheetSize) {
			t.Errorf("Custom(%v): expected INVALID_SHEET_SIZE, got %v", dims, err)
		}
	}
}

func TestBuiltinDimensions(t *testing.T) {
	tests := []struct {
		size          Size
		width, height int64
	}{
		{Letter, 612, 792},
		{Legal, 612, 1008},
		{A4, 595, 842},
	}

	for _, tt := range tests {
		if tt.size.Width != tt.width || tt.size.Height != tt.height {
			t.Errorf("%s = %dx%d, want %dx%d", tt.size.Name, tt.size.Width, tt.size.Height, tt.width, tt.height)
		}
	}
}

func TestDefaultMargins(t *testing.T) {
	m := DefaultMargins()
	if !m.Valid() {
		t.Fatal("default margins must be valid")
	}
	if !m.Left.Equal(decimal.NewFromInt(18)) || !m.Bottom.Equal(decimal.NewFromInt(36)) {
		t.Errorf("unexpected defaults: left %s, bottom %s", m.Left, m.Bottom)
	}
}

func TestMargins_Valid(t *testing.T) {
	m := DefaultMargins()
	m.Top = decimal.NewFromInt(-1)
	if m.Valid() {
		t.Error("negative margin should be invalid")
	}
}

func TestSize_String(t *testing.T) {
	if got := Letter.String(); got != "LETTER (612x792 pt)" {
		t.Errorf("String() = %q", got)
	}
}
