package catalog

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"cardsheet/pkg/errors"
)

// DecodeList reads a card-list file: one requested card name per line.
//
// The file must have a .txt extension. Lines starting with "!", "#" or "/"
// are comments; whitespace-only lines are ignored. Names are lowercased and
// deduplicated while preserving the order they first appear, so identical
// lists always resolve to identical output.
func DecodeList(path string) ([]string, error) {
	if filepath.Ext(path) != ".txt" {
		return nil, errors.New(errors.ErrCodeInvalidListFormat,
			"card list must be a .txt file, got %q", filepath.Base(path))
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeListNotFound, "could not find card list %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeListNotFound, err, "opening card list %s", path)
	}
	defer f.Close()

	var names []string
	seen := make(map[string]bool)

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if isComment(line) || strings.TrimSpace(line) == "" {
			continue
		}
		name := strings.ToLower(strings.TrimRight(line, " \t\r\n"))
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeListNotFound, err, "reading card list %s", path)
	}

	return names, nil
}

func isComment(line string) bool {
	return strings.HasPrefix(line, "!") ||
		strings.HasPrefix(line, "#") ||
		strings.HasPrefix(line, "/")
}

// OutputPath derives the output document path from a card-list path by
// replacing its extension with .pdf. The output lands next to the list.
func OutputPath(listPath string) string {
	ext := filepath.Ext(listPath)
	return strings.TrimSuffix(listPath, ext) + ".pdf"
}
