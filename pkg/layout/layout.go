// Package layout computes the grid arrangement of same-size cards on a sheet.
//
// Planning is a pure function of (card size, sheet size, margins, scale): it
// evaluates the grid under both sheet orientations, keeps the one that fits
// more cards, and grows the anchor margins so the grid sits centered on the
// page. Same inputs always produce the same Layout; there is no I/O and no
// shared state.
package layout

import (
	"github.com/shopspring/decimal"

	"cardsheet/pkg/card"
	"cardsheet/pkg/errors"
	"cardsheet/pkg/sheet"
)

// Orientation of the physical sheet relative to its base size.
const (
	Portrait  = "portrait"
	Landscape = "landscape"
)

// Layout describes how one size-group of cards is arranged on output sheets.
// It is derived once per (card size, sheet size, scale) triple and never
// mutated.
type Layout struct {
	// Orientation of the base sheet size.
	Orientation string

	// SheetWidth and SheetHeight are the resolved output page dimensions,
	// already swapped when Orientation is Landscape.
	SheetWidth  decimal.Decimal
	SheetHeight decimal.Decimal

	// Grid shape.
	Rows          int
	Cols          int
	CardsPerSheet int

	// CardWidth and CardHeight are the scaled cell dimensions.
	CardWidth  decimal.Decimal
	CardHeight decimal.Decimal

	// Scale is the uniform scale factor applied to card content.
	Scale decimal.Decimal

	// LeftMargin and BottomMargin are the resolved margins after centering.
	// They are always at least the configured minimums.
	LeftMargin   decimal.Decimal
	BottomMargin decimal.Decimal
}

var two = decimal.NewFromInt(2)

// Plan computes the optimal grid for cards of the given intrinsic size on the
// given sheet at the given scale. It returns a LAYOUT_INFEASIBLE error when
// not even a single card fits; callers skip that size-group and continue.
func Plan(size card.Size, paper sheet.Size, margins sheet.Margins, scale decimal.Decimal) (Layout, error) {
	if !scale.IsPositive() {
		return Layout{}, errors.New(errors.ErrCodeInvalidScale,
			"scale must be positive, got %s", scale)
	}

	scaledW := scale.Mul(size.Width)
	scaledH := scale.Mul(size.Height)

	// Usable span on each axis of the base (portrait) sheet.
	availX := paper.WidthDec().Sub(margins.Left).Sub(margins.Right)
	availY := paper.HeightDec().Sub(margins.Top).Sub(margins.Bottom)

	// Portrait: grid axes match the sheet axes.
	colsP := fitCount(availX, scaledW)
	rowsP := fitCount(availY, scaledH)

	// Landscape: the sheet is rotated 90 degrees, so the card width runs
	// along the sheet's long axis and the card height along its short one.
	colsL := fitCount(availY, scaledW)
	rowsL := fitCount(availX, scaledH)

	// Ties favor portrait.
	useLandscape := colsL*rowsL > colsP*rowsP

	l := Layout{
		Scale:      scale,
		CardWidth:  scaledW,
		CardHeight: scaledH,
	}

	if useLandscape {
		l.Orientation = Landscape
		l.Cols = colsL
		l.Rows = rowsL
	} else {
		l.Orientation = Portrait
		l.Cols = colsP
		l.Rows = rowsP
	}

	if l.Cols < 1 || l.Rows < 1 {
		return Layout{}, errors.New(errors.ErrCodeLayoutInfeasible,
			"sheet %s too small for card size %s at scale %s", paper, size, scale)
	}
	l.CardsPerSheet = l.Rows * l.Cols

	if useLandscape {
		l.SheetWidth = paper.HeightDec()
		l.SheetHeight = paper.WidthDec()

		// On the rotated sheet the vertical axis is the base width, so the
		// bottom margin anchors at the base left minimum; the horizontal
		// axis is the base height, anchored at the top minimum.
		leftoverV := availX.Sub(scaledH.Mul(decimal.NewFromInt(int64(l.Rows))))
		l.BottomMargin = margins.Left.Add(leftoverV.Div(two))

		leftoverH := availY.Sub(scaledW.Mul(decimal.NewFromInt(int64(l.Cols))))
		l.LeftMargin = margins.Top.Add(leftoverH.Div(two))
	} else {
		l.SheetWidth = paper.WidthDec()
		l.SheetHeight = paper.HeightDec()

		leftoverH := availX.Sub(scaledW.Mul(decimal.NewFromInt(int64(l.Cols))))
		l.LeftMargin = margins.Left.Add(leftoverH.Div(two))

		leftoverV := availY.Sub(scaledH.Mul(decimal.NewFromInt(int64(l.Rows))))
		l.BottomMargin = margins.Bottom.Add(leftoverV.Div(two))
	}

	return l, nil
}

// fitCount returns how many cells of the given length fit in the available
// span, never negative. Decimal division is exact whenever the quotient is a
// whole number, so a span of exactly n cells always yields n.
func fitCount(avail, cell decimal.Decimal) int {
	if !avail.IsPositive() || !cell.IsPositive() {
		return 0
	}
	return int(avail.Div(cell).IntPart())
}
