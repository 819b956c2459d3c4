package pdfio

import (
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"cardsheet/pkg/compose"
	"cardsheet/pkg/errors"
)

// attachRegions rewrites the composed document in place, adding each
// placement's translated regions as annotations on its sheet page. The
// regions arrive pre-translated from the composer with their open flag
// already forced off; this pass only serializes them.
//
// gofpdf cannot carry source annotations through a template import, which is
// why this runs as a separate pdfcpu pass over the finished document.
func attachRegions(plan compose.Plan, path string) error {
	pctx, err := api.ReadContextFile(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodePDFWrite, err, "reopening %s for annotations", path)
	}
	if err := pctx.EnsurePageCount(); err != nil {
		return errors.Wrap(errors.ErrCodePDFWrite, err, "paging %s", path)
	}

	for _, pl := range plan.Placements {
		if len(pl.Regions) == 0 {
			continue
		}

		pageDict, _, _, err := pctx.PageDict(pl.SheetIndex+1, false)
		if err != nil {
			return errors.Wrap(errors.ErrCodePDFWrite, err, "page %d of %s", pl.SheetIndex+1, path)
		}

		var annots types.Array
		if obj, found := pageDict.Find("Annots"); found {
			if arr, err := pctx.DereferenceArray(obj); err == nil {
				annots = arr
			}
		}

		for _, r := range pl.Regions {
			d := types.Dict{
				"Type":    types.Name("Annot"),
				"Subtype": types.Name(r.Subtype),
				"Rect": types.NewNumberArray(
					pt(r.Rect.LLX), pt(r.Rect.LLY), pt(r.Rect.URX), pt(r.Rect.URY),
				),
				"Open": types.Boolean(false),
			}
			if r.Contents != "" {
				d["Contents"] = types.StringLiteral(r.Contents)
			}

			ir, err := pctx.IndRefForNewObject(d)
			if err != nil {
				return errors.Wrap(errors.ErrCodePDFWrite, err, "adding annotation to %s", path)
			}
			annots = append(annots, *ir)
		}
		pageDict["Annots"] = annots
	}

	if err := api.WriteContextFile(pctx, path); err != nil {
		return errors.Wrap(errors.ErrCodePDFWrite, err, "rewriting %s with annotations", path)
	}
	return nil
}
