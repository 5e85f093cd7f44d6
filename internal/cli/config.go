package cli

// Config holds the configuration for the CLI generator
type Config struct {
	// Directories is the list of directories to scan for annotated Go files.
	// Supports Go-style "./..." patterns.
	Directories []string

	// ModuleName is the module whose pkg/sigmatch the generated tests
	// import, for forks and vendored copies. Empty means resolve from
	// go.mod, falling back to the canonical path for modules that do not
	// ship pkg/sigmatch themselves.
	ModuleName string

	// Verbose enables detailed logging and the pre-generation lint pass.
	Verbose bool
}
