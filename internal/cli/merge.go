package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"cardsheet/pkg/catalog"
	"cardsheet/pkg/config"
	"cardsheet/pkg/errors"
	"cardsheet/pkg/pdfio"
	"cardsheet/pkg/pipeline"
)

// mergeFlags holds the command-line flags shared by all merge commands.
type mergeFlags struct {
	list       string  // path to the card list .txt file
	dir        string  // directory containing individual card PDFs
	scale      float64 // card size scale factor
	paper      string  // sheet size name (built-in or from config)
	output     string  // output path override
	configPath string  // explicit config file location
	noCache    bool    // disable the decode cache
}

// mergeCommand creates one merge subcommand bound to a name-extraction rule.
// All three commands share flags and behavior; only the rule differs.
func (c *CLI) mergeCommand(use, short, rule string) *cobra.Command {
	var flags mergeFlags

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runMerge(cmd, rule, &flags)
		},
	}

	cmd.Flags().StringVarP(&flags.list, "list", "l", "", "path to list .txt file")
	cmd.Flags().StringVarP(&flags.dir, "dir", "d", "", "directory containing individual pdf files")
	cmd.Flags().Float64VarP(&flags.scale, "scale", "s", 0, "card size scale factor (default 1.0)")
	cmd.Flags().StringVarP(&flags.paper, "paper", "p", "", "sheet size: LETTER (default), LEGAL, A4, or a name from the config")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output pdf path (default: list path with .pdf extension)")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "config file (default: cardsheet.toml next to the list)")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "decode every card fresh, ignoring the cache")
	_ = cmd.MarkFlagRequired("list")
	_ = cmd.MarkFlagRequired("dir")

	return cmd
}

// runMerge resolves flags and config into pipeline options and executes.
func (c *CLI) runMerge(cmd *cobra.Command, rule string, flags *mergeFlags) error {
	cfg, err := config.Load(resolveConfigPath(flags))
	if err != nil {
		return err
	}

	paperName := flags.paper
	if paperName == "" {
		paperName = cfg.Defaults.Sheet
	}
	if paperName == "" {
		paperName = "LETTER"
	}
	paper, err := cfg.ResolveSheet(paperName)
	if err != nil {
		return err
	}

	scale := flags.scale
	if scale == 0 {
		scale = cfg.Defaults.Scale
	}
	if scale == 0 {
		scale = 1.0
	}

	opts := pipeline.Options{
		ListPath:  flags.list,
		SourceDir: flags.dir,
		Rule:      catalog.RuleByName(rule),
		Scale:     decimal.NewFromFloat(scale),
		Sheet:     paper,
		Margins:   cfg.ResolveMargins(),
		Output:    flags.output,
		Logger:    c.Logger,
	}

	printInfo("Merging cards for %s", flags.list)
	printKeyValue("source", flags.dir)
	printKeyValue("sheet", paper.String())
	printKeyValue("scale", fmt.Sprintf("%g", scale))

	dec := pdfio.NewDecoder(newDecodeCache(flags.noCache), c.Logger)
	runner := pipeline.NewRunner(dec)

	spin := newSpinnerWithContext(cmd.Context(), "composing sheets")
	spin.Start()
	prog := newProgress()
	res, err := runner.Execute(cmd.Context(), opts)
	spin.Stop()
	if err != nil {
		if cmd.Context().Err() != nil {
			printWarning("Cancelled")
			return err
		}
		printError("%s", errors.UserMessage(err))
		return err
	}

	printSuccess("Merged %d cards onto %d sheets%s",
		res.Stats.PlacedCards, res.Stats.Sheets, prog.elapsed())
	if n := len(res.Unknown); n > 0 {
		printWarning("%d requested cards not found: %s", n, strings.Join(res.Unknown, ", "))
	}
	for _, size := range res.SkippedSizes {
		printWarning("skipped cards of size %s: too large for %s", size, paper)
	}
	printFile(res.Output)
	return nil
}

// resolveConfigPath picks the config file: an explicit --config wins,
// otherwise a cardsheet.toml next to the card list is used when present.
func resolveConfigPath(flags *mergeFlags) string {
	if flags.configPath != "" {
		return flags.configPath
	}
	if flags.list == "" {
		return ""
	}
	return filepath.Join(filepath.Dir(flags.list), "cardsheet.toml")
}
