package pdfio

import (
	"context"
	"encoding/json"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/shopspring/decimal"

	"cardsheet/pkg/cache"
	"cardsheet/pkg/card"
	"cardsheet/pkg/errors"
)

// Decoder resolves card PDFs into their intrinsic size and interactive
// regions. Results are cached keyed by path, size and mtime, so unchanged
// card archives decode only once across runs.
type Decoder struct {
	cache  cache.Cache
	logger *log.Logger
}

// NewDecoder creates a Decoder backed by the given cache.
func NewDecoder(c cache.Cache, logger *log.Logger) *Decoder {
	if c == nil {
		c = cache.NewNullCache()
	}
	return &Decoder{cache: c, logger: logger}
}

// cachedCard is the cache payload for one decoded card. Dimensions are
// stored as decimal strings to round-trip exactly.
type cachedCard struct {
	Width   string         `json:"w"`
	Height  string         `json:"h"`
	Regions []cachedRegion `json:"regions,omitempty"`
}

type cachedRegion struct {
	Subtype  string    `json:"subtype"`
	Rect     [4]string `json:"rect"`
	Contents string    `json:"contents,omitempty"`
	Open     bool      `json:"open,omitempty"`
}

// DecodeCard returns the decoded info for a single-page card PDF.
// It fails with MULTI_PAGE_SOURCE when the document does not have exactly
// one page, and with PDF_READ when the document cannot be parsed.
func (d *Decoder) DecodeCard(ctx context.Context, path string) (card.Info, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return card.Info{}, errors.Wrap(errors.ErrCodePDFRead, err, "stat %s", path)
	}
	key := cache.CardKey(path, fi.Size(), fi.ModTime())

	if data, ok, err := d.cache.Get(ctx, key); err == nil && ok {
		if info, err := decodeCached(data); err == nil {
			return info, nil
		}
		// Corrupt entry: fall through to a fresh decode.
		_ = d.cache.Delete(ctx, key)
	}

	info, err := readCard(path)
	if err != nil {
		return card.Info{}, err
	}

	if data, err := encodeCached(info); err == nil {
		_ = d.cache.Set(ctx, key, data, 0)
	}
	return info, nil
}

// readCard decodes a card PDF without consulting the cache.
func readCard(path string) (card.Info, error) {
	pctx, err := api.ReadContextFile(path)
	if err != nil {
		return card.Info{}, errors.Wrap(errors.ErrCodePDFRead, err, "reading %s", path)
	}
	if err := pctx.EnsurePageCount(); err != nil {
		return card.Info{}, errors.Wrap(errors.ErrCodePDFRead, err, "counting pages of %s", path)
	}
	if pctx.PageCount != 1 {
		return card.Info{}, errors.New(errors.ErrCodeMultiPageSource,
			"%s has %d pages, a card source must have exactly one", path, pctx.PageCount)
	}

	pageDict, _, inh, err := pctx.PageDict(1, false)
	if err != nil {
		return card.Info{}, errors.Wrap(errors.ErrCodePDFRead, err, "reading page of %s", path)
	}

	box := inh.MediaBox
	if box == nil {
		box = inh.CropBox
	}
	if box == nil {
		return card.Info{}, errors.New(errors.ErrCodePDFRead, "%s has no page size information", path)
	}

	return card.Info{
		Size:    card.NewSize(box.Width(), box.Height()),
		Regions: readRegions(pctx, pageDict),
	}, nil
}

// readRegions extracts the page's annotations as interactive regions.
// Malformed entries are skipped; a card with a broken annotation is still a
// usable card.
func readRegions(pctx *model.Context, pageDict types.Dict) []card.Region {
	obj, found := pageDict.Find("Annots")
	if !found {
		return nil
	}
	arr, err := pctx.DereferenceArray(obj)
	if err != nil {
		return nil
	}

	var regions []card.Region
	for _, item := range arr {
		annot, err := pctx.DereferenceDict(item)
		if err != nil || annot == nil {
			continue
		}
		rectObj, found := annot.Find("Rect")
		if !found {
			continue
		}
		rectArr, err := pctx.DereferenceArray(rectObj)
		if err != nil || len(rectArr) != 4 {
			continue
		}

		var coords [4]float64
		ok := true
		for i, o := range rectArr {
			coords[i], ok = floatValue(pctx, o)
			if !ok {
				break
			}
		}
		if !ok {
			continue
		}

		r := card.Region{
			Subtype: "Text",
			Rect:    card.NewRect(coords[0], coords[1], coords[2], coords[3]),
		}
		if st := annot.NameEntry("Subtype"); st != nil {
			r.Subtype = *st
		}
		if contents := annot.StringEntry("Contents"); contents != nil {
			r.Contents = *contents
		}
		if open := annot.BooleanEntry("Open"); open != nil {
			r.Open = *open
		}
		regions = append(regions, r)
	}
	return regions
}

// floatValue resolves a PDF numeric object to a float64.
func floatValue(pctx *model.Context, obj types.Object) (float64, bool) {
	o, err := pctx.Dereference(obj)
	if err != nil {
		return 0, false
	}
	switch v := o.(type) {
	case types.Integer:
		return float64(v), true
	case types.Float:
		return v.Value(), true
	}
	return 0, false
}

func encodeCached(info card.Info) ([]byte, error) {
	cc := cachedCard{
		Width:  info.Size.Width.String(),
		Height: info.Size.Height.String(),
	}
	for _, r := range info.Regions {
		cc.Regions = append(cc.Regions, cachedRegion{
			Subtype: r.Subtype,
			Rect: [4]string{
				r.Rect.LLX.String(), r.Rect.LLY.String(),
				r.Rect.URX.String(), r.Rect.URY.String(),
			},
			Contents: r.Contents,
			Open:     r.Open,
		})
	}
	return json.Marshal(cc)
}

func decodeCached(data []byte) (card.Info, error) {
	var cc cachedCard
	if err := json.Unmarshal(data, &cc); err != nil {
		return card.Info{}, err
	}

	var info card.Info
	var err error
	if info.Size.Width, err = decimal.NewFromString(cc.Width); err != nil {
		return card.Info{}, err
	}
	if info.Size.Height, err = decimal.NewFromString(cc.Height); err != nil {
		return card.Info{}, err
	}

	for _, cr := range cc.Regions {
		r := card.Region{Subtype: cr.Subtype, Contents: cr.Contents, Open: cr.Open}
		if r.Rect.LLX, err = decimal.NewFromString(cr.Rect[0]); err != nil {
			return card.Info{}, err
		}
		if r.Rect.LLY, err = decimal.NewFromString(cr.Rect[1]); err != nil {
			return card.Info{}, err
		}
		if r.Rect.URX, err = decimal.NewFromString(cr.Rect[2]); err != nil {
			return card.Info{}, err
		}
		if r.Rect.URY, err = decimal.NewFromString(cr.Rect[3]); err != nil {
			return card.Info{}, err
		}
		info.Regions = append(info.Regions, r)
	}
	return info, nil
}
