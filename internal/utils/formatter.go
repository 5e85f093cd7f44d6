package utils

import (
	"fmt"
	"go/format"

	"golang.org/x/tools/imports"
)

// FormatGeneratedSource formats generated Go source and fixes up its import
// block. Falls back to plain gofmt formatting when import resolution fails,
// so an unresolvable import path does not hide the generated code from the
// user.
func FormatGeneratedSource(filename string, src []byte) ([]byte, error) {
	formatted, err := imports.Process(filename, src, nil)
	if err == nil {
		return formatted, nil
	}

	gofmted, fmtErr := format.Source(src)
	if fmtErr != nil {
		return nil, fmt.Errorf("generated source for %s is not valid Go: %w (imports error: %v)", filename, fmtErr, err)
	}
	return gofmted, nil
}
