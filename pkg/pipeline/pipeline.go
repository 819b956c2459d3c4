// Package pipeline provides the core merge pipeline for cardsheet.
//
// This package implements the complete catalog → group → plan → compose →
// write flow behind every CLI command. Centralizing it keeps the commands
// thin and the behavior identical regardless of which name-extraction rule
// they select.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Resolve: decode the card list, scan the source directory, match names
//  2. Group: partition matched cards into same-size groups
//  3. Compose: plan one grid layout per group and assign every card a cell
//  4. Write: execute the plan into the output document
//
// Stages 1–3 are pure given a Decoder; only Write touches the output file.
//
// # Usage
//
//	runner := pipeline.NewRunner(dec, logger)
//	opts := pipeline.Options{
//	    ListPath:  "deck.txt",
//	    SourceDir: "cards/",
//	    Rule:      catalog.SpellName,
//	    Sheet:     sheet.Letter,
//	}
//	result, err := runner.Execute(ctx, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"cardsheet/pkg/catalog"
	"cardsheet/pkg/errors"
	"cardsheet/pkg/sheet"
)

// Options contains all configuration for one merge run. It is immutable for
// the duration of the run: every derived value (layouts, placements) is a
// function of this value, never of mutable runner state.
type Options struct {
	// ListPath is the requested-cards list (.txt).
	ListPath string

	// SourceDir contains the individual card PDFs.
	SourceDir string

	// Rule extracts card names from file names during the scan.
	Rule catalog.Rule

	// Scale is the uniform card scale factor. Zero means 1.0.
	Scale decimal.Decimal

	// Sheet is the output paper size. A zero value means LETTER.
	Sheet sheet.Size

	// Margins are the minimum margins. A zero value means the defaults.
	Margins sheet.Margins

	// Output is the output document path. Empty derives it from ListPath
	// by swapping the extension to .pdf.
	Output string

	// Logger receives progress and warnings. Nil discards.
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.ListPath == "" {
		return errors.New(errors.ErrCodeInvalidListFormat, "card list path is required")
	}
	if o.SourceDir == "" {
		return errors.New(errors.ErrCodeInvalidSrcDir, "card directory is required")
	}
	if o.Rule == nil {
		o.Rule = catalog.PlainName
	}
	if o.Scale.IsZero() {
		o.Scale = decimal.NewFromInt(1)
	}
	if !o.Scale.IsPositive() {
		return errors.New(errors.ErrCodeInvalidScale, "scale must be positive, got %s", o.Scale)
	}
	if o.Sheet == (sheet.Size{}) {
		o.Sheet = sheet.Letter
	}
	if o.Margins == (sheet.Margins{}) {
		o.Margins = sheet.DefaultMargins()
	}
	if !o.Margins.Valid() {
		return errors.New(errors.ErrCodeInvalidSheetSize, "margins must not be negative")
	}
	if o.Output == "" {
		o.Output = catalog.OutputPath(o.ListPath)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Output is the path of the written document.
	Output string

	// Unknown lists requested names with no catalog match, sorted.
	Unknown []string

	// SkippedSizes lists card sizes whose group could not be laid out on
	// the chosen sheet at the chosen scale.
	SkippedSizes []string

	// Stats contains counts and timings.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Requested     int
	Matched       int
	CatalogSize   int
	Groups        int
	SkippedGroups int
	Sheets        int
	PlacedCards   int

	ResolveTime time.Duration
	ComposeTime time.Duration
	WriteTime   time.Duration
}
