// Package compose turns size-groups and their layouts into a placement plan:
// which sheet each card lands on, at which cell, with which translation, and
// how its interactive regions move along.
//
// The plan is pure data. Executing it against an actual PDF writer lives in
// pkg/pdfio, which keeps the arithmetic here fully testable without touching
// documents.
package compose

import (
	"github.com/shopspring/decimal"

	"cardsheet/pkg/card"
	"cardsheet/pkg/layout"
)

// Sheet is one output page to be allocated, with resolved dimensions.
type Sheet struct {
	Width  decimal.Decimal
	Height decimal.Decimal
}

// Placement fixes one card to one grid cell on one sheet.
type Placement struct {
	Card *card.Card

	// SheetIndex is the zero-based index into Plan.Sheets.
	SheetIndex int

	// Cell coordinates: row 0 is the bottom row, column 0 the left column.
	Row int
	Col int

	// TX and TY translate the card's origin to its cell, in points from the
	// sheet's lower-left corner.
	TX decimal.Decimal
	TY decimal.Decimal

	// CardWidth and CardHeight are the scaled dimensions the card occupies.
	CardWidth  decimal.Decimal
	CardHeight decimal.Decimal

	// Scale is the uniform content scale.
	Scale decimal.Decimal

	// Regions are the card's interactive regions, already translated by
	// (TX, TY) and with their open flag forced off.
	Regions []card.Region
}

// Plan is the complete composition of a run: all sheets in output order and
// every card placement across all size-groups.
type Plan struct {
	Sheets     []Sheet
	Placements []Placement
}

// Composer accumulates placements for successive size-groups into one plan.
// Groups are composed in the order they are added; sheets are never shared
// between groups, so each group starts on a fresh sheet.
type Composer struct {
	plan Plan
}

// NewComposer creates an empty composer.
func NewComposer() *Composer {
	return &Composer{}
}

// AddGroup walks one size-group under its layout, allocating sheets on demand
// and assigning cells in row-major order: left to right, then bottom to top.
// The group must be non-empty and the layout must be feasible (rows and cols
// at least 1); both are guaranteed by the caller's grouping and planning.
func (c *Composer) AddGroup(group []*card.Card, l layout.Layout) {
	for i, cd := range group {
		cell := i % l.CardsPerSheet
		if cell == 0 {
			c.plan.Sheets = append(c.plan.Sheets, Sheet{
				Width:  l.SheetWidth,
				Height: l.SheetHeight,
			})
		}

		row := cell / l.Cols
		col := cell % l.Cols

		tx := l.LeftMargin.Add(l.CardWidth.Mul(decimal.NewFromInt(int64(col))))
		ty := l.BottomMargin.Add(l.CardHeight.Mul(decimal.NewFromInt(int64(row))))

		c.plan.Placements = append(c.plan.Placements, Placement{
			Card:       cd,
			SheetIndex: len(c.plan.Sheets) - 1,
			Row:        row,
			Col:        col,
			TX:         tx,
			TY:         ty,
			CardWidth:  l.CardWidth,
			CardHeight: l.CardHeight,
			Scale:      l.Scale,
			Regions:    translateRegions(cd.Regions, tx, ty),
		})
	}
}

// Plan returns the accumulated plan.
func (c *Composer) Plan() Plan {
	return c.plan
}

// SheetCount returns how many sheets have been allocated so far.
func (c *Composer) SheetCount() int {
	return len(c.plan.Sheets)
}

// translateRegions shifts every region by the card's translation and forces
// the auto-open flag off, so widgets neither render at their pre-merge
// position nor pop open on the merged sheet.
func translateRegions(regions []card.Region, tx, ty decimal.Decimal) []card.Region {
	if len(regions) == 0 {
		return nil
	}
	out := make([]card.Region, len(regions))
	for i, r := range regions {
		r.Rect = r.Rect.Translated(tx, ty)
		r.Open = false
		out[i] = r
	}
	return out
}
