package cli

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/toyz/sigmatch/internal/errors"
	"github.com/toyz/sigmatch/internal/generator"
)

// Cleaner removes generated signature-match test files
type Cleaner struct {
	scanner *Scanner
}

// NewCleaner creates a new cleaner
func NewCleaner() *Cleaner {
	return &Cleaner{
		scanner: NewScanner(),
	}
}

// Clean removes every generated test file under the given directories and
// returns the paths it removed. Files without the generated header are left
// alone.
func (c *Cleaner) Clean(patterns []string) ([]string, error) {
	dirs, err := c.scanner.ExpandDirectories(patterns)
	if err != nil {
		return nil, err
	}

	var removed []string
	for _, dir := range dirs {
		path := filepath.Join(dir, generator.GeneratedFileName)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}

		generated, err := hasGeneratedHeader(path)
		if err != nil {
			return removed, errors.Wrapf(errors.FileSystemErrorCode, err, "inspecting %s", path)
		}
		if !generated {
			continue
		}

		if err := os.Remove(path); err != nil {
			return removed, errors.Wrapf(errors.FileSystemErrorCode, err, "removing %s", path)
		}
		removed = append(removed, path)
	}

	return removed, nil
}

// hasGeneratedHeader checks the first line of the file for the generated
// code marker
func hasGeneratedHeader(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return false, scanner.Err()
	}
	return strings.HasPrefix(scanner.Text(), generator.GeneratedHeader), nil
}
