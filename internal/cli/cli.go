// Package cli implements the cardsheet command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"cardsheet/pkg/buildinfo"
	"cardsheet/pkg/cache"
	"cardsheet/pkg/catalog"
)

// appName is the application name used for directories and display.
const appName = "cardsheet"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Cardsheet packs single-card PDFs onto print-ready sheets",
		Long:         `Cardsheet merges individually-authored card PDFs onto standard paper sizes, arranging same-size cards in a centered grid and carrying their interactive regions along.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.mergeCommand("merge-spell-cards", "Merge spell cards from an individual spell-card archive", catalog.RuleSpell))
	root.AddCommand(c.mergeCommand("merge-monster-cards", "Merge monster cards from an individual monster-card archive", catalog.RuleMonster))
	root.AddCommand(c.mergeCommand("merge-cards", "Merge cards whose file names are already card names", catalog.RulePlain))
	root.AddCommand(c.cacheCommand())

	return root
}

// newDecodeCache creates the cache backing card decoding.
func newDecodeCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return fc
}

// cacheDir returns the cache directory using the XDG standard
// (~/.cache/cardsheet/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
