// Package catalog builds the lookup from normalized card names to decoded
// card handles by scanning a directory of individual card PDFs, and decodes
// the caller's requested-card list.
//
// Decoding of individual documents is delegated to a Decoder (pkg/pdfio in
// production) so the scan logic stays independent of any PDF library.
package catalog

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"

	"cardsheet/pkg/card"
	"cardsheet/pkg/errors"
)

// Decoder resolves a card file into its intrinsic size and interactive
// regions. Decoding fails with MULTI_PAGE_SOURCE when the document does not
// have exactly one page.
type Decoder interface {
	DecodeCard(ctx context.Context, path string) (card.Info, error)
}

// Catalog maps normalized card names to card handles.
type Catalog struct {
	cards map[string]*card.Card
}

// Scan builds a catalog from every card PDF in dir whose name the rule
// accepts. Files that fail to decode are excluded: multi-page documents
// silently (they are not cards), unreadable ones with a debug log. When two
// files normalize to the same name, the later directory entry wins, matching
// a plain last-write into the lookup.
func Scan(ctx context.Context, dir string, rule Rule, dec Decoder, logger *log.Logger) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSrcDir, err, "scanning card directory %s", dir)
	}

	cat := &Catalog{cards: make(map[string]*card.Card)}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := rule(entry.Name())
		if name == "" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		info, err := dec.DecodeCard(ctx, path)
		if err != nil {
			if errors.Is(err, errors.ErrCodeMultiPageSource) {
				logger.Debug("excluding multi-page document", "file", entry.Name())
			} else {
				logger.Debug("excluding unreadable document", "file", entry.Name(), "err", err)
			}
			continue
		}

		cat.cards[name] = &card.Card{
			Name:    name,
			Path:    path,
			Size:    info.Size,
			Regions: info.Regions,
		}
	}

	return cat, nil
}

// Len returns the number of cards in the catalog.
func (c *Catalog) Len() int {
	return len(c.cards)
}

// Lookup returns the card for a normalized name.
func (c *Catalog) Lookup(name string) (*card.Card, bool) {
	cd, ok := c.cards[name]
	return cd, ok
}

// Match splits the requested names into resolved cards and unknown names.
// Cards come back in request order; unknown names come back sorted for
// stable warning output.
func (c *Catalog) Match(names []string) (found []*card.Card, unknown []string) {
	for _, name := range names {
		if cd, ok := c.cards[name]; ok {
			found = append(found, cd)
		} else {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return found, unknown
}
