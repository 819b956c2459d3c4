package catalog

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Rule extracts a normalized card name from a file path. It returns "" when
// the file is not a card (wrong extension, or a "!"-prefixed helper file
// shipped alongside card archives).
type Rule func(path string) string

// Rule names accepted by callers selecting a rule.
const (
	RuleSpell   = "spell"
	RuleMonster = "monster"
	RulePlain   = "plain"
)

var (
	spellPrefixRe   = regexp.MustCompile(`^\d*_`)
	monsterSuffixRe = regexp.MustCompile(`\s*\([ls]\)$`) // runs after stem() lowercases
)

// stem returns the lowercased base name without extension, or "" when the
// file is not an individual card PDF.
func stem(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext != ".pdf" {
		return ""
	}
	name := strings.TrimSuffix(base, ext)
	if strings.HasPrefix(name, "!") {
		return ""
	}
	return strings.ToLower(name)
}

// SpellName extracts a spell name from a card file path. It handles the
// individual spell-card archive convention by stripping the leading
// "<digits>_" prefix, e.g. "042_Fireball.pdf" becomes "fireball".
func SpellName(path string) string {
	name := stem(path)
	if name == "" {
		return ""
	}
	return spellPrefixRe.ReplaceAllString(name, "")
}

// MonsterName extracts a monster name from a card file path. It handles the
// individual monster-card archive convention by stripping the trailing
// "(L)"/"(S)" size designator, e.g. "Goblin (S).pdf" becomes "goblin".
func MonsterName(path string) string {
	name := stem(path)
	if name == "" {
		return ""
	}
	return monsterSuffixRe.ReplaceAllString(name, "")
}

// PlainName extracts a card name with no convention-specific stripping.
func PlainName(path string) string {
	return stem(path)
}

// RuleByName resolves a rule selector to its Rule, defaulting to PlainName.
func RuleByName(name string) Rule {
	switch name {
	case RuleSpell:
		return SpellName
	case RuleMonster:
		return MonsterName
	default:
		return PlainName
	}
}
