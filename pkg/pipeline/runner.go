package pipeline

import (
	"context"
	"time"

	"cardsheet/pkg/catalog"
	"cardsheet/pkg/compose"
	"cardsheet/pkg/errors"
	"cardsheet/pkg/layout"
	"cardsheet/pkg/pdfio"
)

// Runner executes merge runs. It holds only injected collaborators; all
// per-run state lives in Options and the returned Result.
type Runner struct {
	dec catalog.Decoder
}

// NewRunner creates a runner using the given card decoder.
func NewRunner(dec catalog.Decoder) *Runner {
	return &Runner{dec: dec}
}

// Execute runs the complete pipeline and writes the output document.
//
// Fatal errors (bad list, no known cards, nothing fits) return before the
// output path is touched. Recoverable conditions (unknown names, an
// infeasible size-group) are logged, recorded on the Result, and skipped.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	plan, res, err := r.Plan(ctx, &opts)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	if err := pdfio.NewWriter(opts.Logger).Write(ctx, plan, opts.Output); err != nil {
		return nil, err
	}
	res.Stats.WriteTime = time.Since(start)
	res.Output = opts.Output

	opts.Logger.Info("wrote output",
		"path", opts.Output,
		"sheets", res.Stats.Sheets,
		"cards", res.Stats.PlacedCards)
	return res, nil
}

// Plan runs the resolve, group and compose stages and returns the placement
// plan without writing anything.
func (r *Runner) Plan(ctx context.Context, opts *Options) (compose.Plan, *Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return compose.Plan{}, nil, err
	}
	logger := opts.Logger
	res := &Result{}

	// Resolve: list, catalog, match.
	start := time.Now()
	names, err := catalog.DecodeList(opts.ListPath)
	if err != nil {
		return compose.Plan{}, nil, err
	}
	res.Stats.Requested = len(names)

	cat, err := catalog.Scan(ctx, opts.SourceDir, opts.Rule, r.dec, logger)
	if err != nil {
		return compose.Plan{}, nil, err
	}
	res.Stats.CatalogSize = cat.Len()
	logger.Debug("scanned card directory", "dir", opts.SourceDir, "cards", cat.Len())

	cards, unknown := cat.Match(names)
	res.Unknown = unknown
	res.Stats.Matched = len(cards)
	res.Stats.ResolveTime = time.Since(start)

	if len(unknown) > 0 {
		logger.Warn("some requested cards were not found", "count", len(unknown))
		for _, name := range unknown {
			logger.Warn("unknown card", "name", name)
		}
	}
	if len(cards) == 0 {
		return compose.Plan{}, nil, errors.New(errors.ErrCodeNoKnownCards,
			"none of the %d requested cards were found in %s", len(names), opts.SourceDir)
	}

	// Group and compose.
	start = time.Now()
	groups := compose.GroupBySize(cards)
	res.Stats.Groups = len(groups)

	comp := compose.NewComposer()
	for _, group := range groups {
		size := group[0].Size
		l, err := layout.Plan(size, opts.Sheet, opts.Margins, opts.Scale)
		if err != nil {
			if errors.Is(err, errors.ErrCodeLayoutInfeasible) {
				logger.Warn("skipping size-group",
					"size", size, "cards", len(group), "reason", errors.UserMessage(err))
				res.SkippedSizes = append(res.SkippedSizes, size.String())
				res.Stats.SkippedGroups++
				continue
			}
			return compose.Plan{}, nil, err
		}

		logger.Debug("planned layout",
			"size", size,
			"orientation", l.Orientation,
			"grid", l.Rows*l.Cols,
			"rows", l.Rows, "cols", l.Cols)
		comp.AddGroup(group, l)
	}

	if comp.SheetCount() == 0 {
		return compose.Plan{}, nil, errors.New(errors.ErrCodeLayoutInfeasible,
			"no size-group fits on %s at scale %s", opts.Sheet, opts.Scale)
	}

	plan := comp.Plan()
	res.Stats.Sheets = len(plan.Sheets)
	res.Stats.PlacedCards = len(plan.Placements)
	res.Stats.ComposeTime = time.Since(start)

	return plan, res, nil
}
