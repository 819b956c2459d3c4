package pdfio

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"
	"github.com/shopspring/decimal"

	"cardsheet/pkg/compose"
	"cardsheet/pkg/errors"
)

// Writer renders a composition plan into a single output PDF.
type Writer struct {
	logger *log.Logger
}

// NewWriter creates a Writer.
func NewWriter(logger *log.Logger) *Writer {
	return &Writer{logger: logger}
}

// Write executes the plan and writes the result to outPath.
//
// The document is first built into a temp file next to the destination and
// renamed into place only after everything succeeded, so a failing run never
// leaves a partial file and never clobbers an existing output.
func (w *Writer) Write(ctx context.Context, plan compose.Plan, outPath string) error {
	if len(plan.Sheets) == 0 {
		return errors.New(errors.ErrCodeInternal, "composition plan has no sheets")
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size: gofpdf.SizeType{
			Wd: pt(plan.Sheets[0].Width),
			Ht: pt(plan.Sheets[0].Height),
		},
	})
	pdf.SetAutoPageBreak(false, 0)
	imp := gofpdi.NewImporter()

	perSheet := make([][]compose.Placement, len(plan.Sheets))
	for _, pl := range plan.Placements {
		perSheet[pl.SheetIndex] = append(perSheet[pl.SheetIndex], pl)
	}

	for i, sh := range plan.Sheets {
		pdf.AddPageFormat("P", gofpdf.SizeType{Wd: pt(sh.Width), Ht: pt(sh.Height)})

		for _, pl := range perSheet[i] {
			if err := ctx.Err(); err != nil {
				return err
			}
			tpl := imp.ImportPage(pdf, pl.Card.Path, 1, "/MediaBox")

			// gofpdf's origin is the top-left corner; the plan's ty is
			// measured from the bottom.
			yTop := sh.Height.Sub(pl.TY).Sub(pl.CardHeight)
			imp.UseImportedTemplate(pdf, tpl, pt(pl.TX), pt(yTop), pt(pl.CardWidth), pt(pl.CardHeight))
			w.logger.Debug("placed card",
				"card", pl.Card.Name, "sheet", pl.SheetIndex, "row", pl.Row, "col", pl.Col,
				"tx", pl.TX, "ty", pl.TY)
		}
	}

	if pdf.Err() {
		return errors.Wrap(errors.ErrCodePDFWrite, pdf.Error(), "composing %s", outPath)
	}

	tmp := fmt.Sprintf("%s.%s.tmp", outPath, uuid.NewString())
	if err := pdf.OutputFileAndClose(tmp); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrap(errors.ErrCodePDFWrite, err, "writing %s", outPath)
	}

	if hasRegions(plan) {
		if err := attachRegions(plan, tmp); err != nil {
			_ = os.Remove(tmp)
			return err
		}
	}

	if err := os.Rename(tmp, outPath); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrap(errors.ErrCodePDFWrite, err, "replacing %s", outPath)
	}
	return nil
}

func hasRegions(plan compose.Plan) bool {
	for _, pl := range plan.Placements {
		if len(pl.Regions) > 0 {
			return true
		}
	}
	return false
}

// pt converts a decimal point value for the PDF writer.
func pt(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}
