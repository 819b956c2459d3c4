package compose

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"cardsheet/pkg/card"
	"cardsheet/pkg/layout"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func rectEqual(a, b card.Rect) bool {
	return a.LLX.Equal(b.LLX) && a.LLY.Equal(b.LLY) &&
		a.URX.Equal(b.URX) && a.URY.Equal(b.URY)
}

// testLayout is a 2-col x 2-row portrait LETTER grid with 200x280 cells.
func testLayout() layout.Layout {
	return layout.Layout{
		Orientation:   layout.Portrait,
		SheetWidth:    dec("612"),
		SheetHeight:   dec("792"),
		Rows:          2,
		Cols:          2,
		CardsPerSheet: 4,
		CardWidth:     dec("200"),
		CardHeight:    dec("280"),
		Scale:         dec("1"),
		LeftMargin:    dec("106"),
		BottomMargin:  dec("89"),
	}
}

func makeCards(n int) []*card.Card {
	cards := make([]*card.Card, n)
	for i := range cards {
		cards[i] = &card.Card{
			Name: fmt.Sprintf("card-%d", i),
			Path: fmt.Sprintf("card-%d.pdf", i),
			Size: card.NewSize(200, 280),
		}
	}
	return cards
}

func TestAddGroup_CellAssignment(t *testing.T) {
	comp := NewComposer()
	comp.AddGroup(makeCards(5), testLayout())
	plan := comp.Plan()

	if len(plan.Sheets) != 2 {
		t.Fatalf("expected 2 sheets for 5 cards at 4 per sheet, got %d", len(plan.Sheets))
	}
	if len(plan.Placements) != 5 {
		t.Fatalf("expected 5 placements, got %d", len(plan.Placements))
	}

	tests := []struct {
		idx        int
		sheetIndex int
		row, col   int
		tx, ty     string
	}{
		{0, 0, 0, 0, "106", "89"},
		{1, 0, 0, 1, "306", "89"},
		{2, 0, 1, 0, "106", "369"},
		{3, 0, 1, 1, "306", "369"},
		{4, 1, 0, 0, "106", "89"}, // fifth card starts the second sheet
	}

	for _, tt := range tests {
		p := plan.Placements[tt.idx]
		if p.SheetIndex != tt.sheetIndex {
			t.Errorf("card %d: sheet %d, want %d", tt.idx, p.SheetIndex, tt.sheetIndex)
		}
		if p.Row != tt.row || p.Col != tt.col {
			t.Errorf("card %d: cell (%d,%d), want (%d,%d)", tt.idx, p.Row, p.Col, tt.row, tt.col)
		}
		if !p.TX.Equal(dec(tt.tx)) || !p.TY.Equal(dec(tt.ty)) {
			t.Errorf("card %d: translation (%s,%s), want (%s,%s)", tt.idx, p.TX, p.TY, tt.tx, tt.ty)
		}
	}
}

func TestAddGroup_PreservesOrder(t *testing.T) {
	cards := makeCards(7)
	comp := NewComposer()
	comp.AddGroup(cards, testLayout())

	for i, p := range comp.Plan().Placements {
		if p.Card != cards[i] {
			t.Fatalf("placement %d holds %s, want %s", i, p.Card.Name, cards[i].Name)
		}
	}
}

func TestAddGroup_TranslatesRegions(t *testing.T) {
	l := testLayout()
	c := &card.Card{
		Name: "annotated",
		Size: card.NewSize(200, 280),
		Regions: []card.Region{
			{Subtype: "Text", Rect: card.NewRect(10, 10, 50, 30), Contents: "note", Open: true},
		},
	}

	comp := NewComposer()
	comp.AddGroup([]*card.Card{c}, l)
	p := comp.Plan().Placements[0]

	if len(p.Regions) != 1 {
		t.Fatalf("expected 1 region, got %d", len(p.Regions))
	}
	r := p.Regions[0]
	want := card.NewRect(116, 99, 156, 119) // shifted by (106, 89)
	if !rectEqual(r.Rect, want) {
		t.Errorf("region rect %+v, want %+v", r.Rect, want)
	}
	if r.Open {
		t.Error("region open flag must be forced off")
	}
	if r.Contents != "note" {
		t.Errorf("region contents %q, want %q", r.Contents, "note")
	}

	// The card's own regions must be untouched.
	if !c.Regions[0].Open || !rectEqual(c.Regions[0].Rect, card.NewRect(10, 10, 50, 30)) {
		t.Error("source card regions were mutated")
	}
}

func TestTranslateRegions(t *testing.T) {
	regions := []card.Region{
		{Subtype: "Text", Rect: card.NewRect(10, 10, 50, 30), Open: true},
	}

	out := translateRegions(regions, dec("36"), dec("54"))

	if !rectEqual(out[0].Rect, card.NewRect(46, 64, 86, 84)) {
		t.Errorf("translated rect = %+v, want (46,64,86,84)", out[0].Rect)
	}
	if out[0].Open {
		t.Error("open flag must be forced off")
	}

	if translateRegions(nil, dec("1"), dec("1")) != nil {
		t.Error("no regions should translate to no regions")
	}
}

func TestAddGroup_GroupsNeverShareSheets(t *testing.T) {
	comp := NewComposer()

	// First group leaves its last sheet half empty.
	comp.AddGroup(makeCards(2), testLayout())

	small := testLayout()
	small.CardWidth = dec("100")
	small.CardHeight = dec("140")
	comp.AddGroup(makeCards(3), small)

	plan := comp.Plan()
	if len(plan.Sheets) != 2 {
		t.Fatalf("expected 2 sheets, got %d", len(plan.Sheets))
	}
	for i, p := range plan.Placements[2:] {
		if p.SheetIndex != 1 {
			t.Errorf("second-group card %d landed on sheet %d, want 1", i, p.SheetIndex)
		}
	}
}

func TestComposer_SheetCount(t *testing.T) {
	comp := NewComposer()
	if comp.SheetCount() != 0 {
		t.Fatalf("empty composer has %d sheets", comp.SheetCount())
	}
	comp.AddGroup(makeCards(9), testLayout())
	if comp.SheetCount() != 3 {
		t.Errorf("expected 3 sheets for 9 cards at 4 per sheet, got %d", comp.SheetCount())
	}
}
