// Package card defines the data model for individual cards: their intrinsic
// size, the interactive regions attached to their page, and the handle the
// rest of the system passes around.
//
// All geometry is in PDF units (points, 72 per inch) and uses decimal
// arithmetic so that repeated translations across many cells never drift.
package card

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Size is the intrinsic width and height of a card in points.
// It is immutable once decoded from the source document.
type Size struct {
	Width  decimal.Decimal
	Height decimal.Decimal
}

// NewSize creates a Size from float dimensions as reported by a PDF media box.
func NewSize(width, height float64) Size {
	return Size{
		Width:  decimal.NewFromFloat(width),
		Height: decimal.NewFromFloat(height),
	}
}

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool {
	return s.Width.IsPositive() && s.Height.IsPositive()
}

// Key returns a stable grouping key. Two cards share a key exactly when they
// share an intrinsic size.
func (s Size) Key() string {
	return s.Width.String() + "x" + s.Height.String()
}

// String returns the size formatted as "WxH pt".
func (s Size) String() string {
	return fmt.Sprintf("%sx%s pt", s.Width, s.Height)
}

// Rect is an axis-aligned rectangle in page coordinates (lower-left origin).
type Rect struct {
	LLX decimal.Decimal
	LLY decimal.Decimal
	URX decimal.Decimal
	URY decimal.Decimal
}

// NewRect creates a Rect from float coordinates.
func NewRect(llx, lly, urx, ury float64) Rect {
	return Rect{
		LLX: decimal.NewFromFloat(llx),
		LLY: decimal.NewFromFloat(lly),
		URX: decimal.NewFromFloat(urx),
		URY: decimal.NewFromFloat(ury),
	}
}

// Translated returns the rectangle shifted by (tx, ty): both x coordinates
// move by tx and both y coordinates by ty.
func (r Rect) Translated(tx, ty decimal.Decimal) Rect {
	return Rect{
		LLX: r.LLX.Add(tx),
		LLY: r.LLY.Add(ty),
		URX: r.URX.Add(tx),
		URY: r.URY.Add(ty),
	}
}

// Region is an interactive rectangle attached to a card page, typically an
// annotation left behind by an editable card template. Regions must move in
// lockstep with their card when it is placed on a sheet.
type Region struct {
	// Subtype is the PDF annotation subtype (e.g. "Text", "Widget").
	Subtype string

	// Rect is the region's bounding rectangle in the card's own coordinates.
	Rect Rect

	// Contents is the annotation's text content, if any.
	Contents string

	// Open is the annotation's auto-open flag. Composition forces it to
	// false so widgets do not pop open on the merged sheet.
	Open bool
}

// Info is the decoded description of a single-page source document.
type Info struct {
	Size    Size
	Regions []Region
}

// Card is a handle to one single-page source document and its decoded info.
// The composition core only reads it.
type Card struct {
	// Name is the normalized (lowercased, rule-stripped) card name.
	Name string

	// Path is the location of the source PDF.
	Path string

	// Size is the intrinsic page size.
	Size Size

	// Regions are the interactive regions attached to the page.
	Regions []Region
}
