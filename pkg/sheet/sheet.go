// Package sheet defines output paper sizes and margin minimums.
package sheet

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"cardsheet/pkg/errors"
)

// Size is an output paper size in points. The dimensions describe the base
// (portrait) orientation; the layout planner may rotate it.
type Size struct {
	Name   string
	Width  int64
	Height int64
}

// Built-in paper sizes, in PDF units (72 per inch).
var (
	Letter = Size{Name: "LETTER", Width: 612, Height: 792}
	Legal  = Size{Name: "LEGAL", Width: 612, Height: 1008}
	A4     = Size{Name: "A4", Width: 595, Height: 842}
)

// Named returns the built-in sizes in display order.
func Named() []Size {
	return []Size{Letter, Legal, A4}
}

// Parse resolves a named built-in size, case-insensitively.
func Parse(name string) (Size, error) {
	for _, s := range Named() {
		if strings.EqualFold(name, s.Name) {
			return s, nil
		}
	}
	return Size{}, errors.New(errors.ErrCodeInvalidSheetSize,
		"unknown sheet size %q (built-in: LETTER, LEGAL, A4)", name)
}

// Custom creates a custom paper size. Both dimensions must be positive.
func Custom(name string, width, height int64) (Size, error) {
	if width <= 0 || height <= 0 {
		return Size{}, errors.New(errors.ErrCodeInvalidSheetSize,
			"custom sheet size %q must have positive dimensions, got %dx%d", name, width, height)
	}
	return Size{Name: strings.ToUpper(name), Width: width, Height: height}, nil
}

// WidthDec returns the width as a decimal.
func (s Size) WidthDec() decimal.Decimal { return decimal.NewFromInt(s.Width) }

// HeightDec returns the height as a decimal.
func (s Size) HeightDec() decimal.Decimal { return decimal.NewFromInt(s.Height) }

// String returns the size formatted as "NAME (WxH pt)".
func (s Size) String() string {
	return fmt.Sprintf("%s (%dx%d pt)", s.Name, s.Width, s.Height)
}

// Margins holds the minimum margins on each side of a sheet, in points.
// These are floors: the planner grows the left and bottom margins to center
// the card grid.
type Margins struct {
	Left   decimal.Decimal
	Right  decimal.Decimal
	Top    decimal.Decimal
	Bottom decimal.Decimal
}

// DefaultMargins returns the standard print margins: a quarter inch on the
// left, right and top, and half an inch on the bottom for printer trim.
func DefaultMargins() Margins {
	return Margins{
		Left:   decimal.NewFromInt(18),
		Right:  decimal.NewFromInt(18),
		Top:    decimal.NewFromInt(18),
		Bottom: decimal.NewFromInt(36),
	}
}

// Valid reports whether no margin is negative.
func (m Margins) Valid() bool {
	return !m.Left.IsNegative() && !m.Right.IsNegative() &&
		!m.Top.IsNegative() && !m.Bottom.IsNegative()
}
