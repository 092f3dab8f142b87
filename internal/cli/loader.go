package cli

import (
	"fmt"
	"os"

	"vkrustgen/internal/extract"
	"vkrustgen/internal/pyast"
	"vkrustgen/internal/schema"
)

// loadSchema reads the source file in full, parses it, and extracts the
// schema. Extraction errors are collected so one run reports every offending
// field; any error is fatal to the command.
func loadSchema(path string) (*schema.Schema, []error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, []error{fmt.Errorf("reading schema: %w", err)}
	}
	mod, err := pyast.Parse(path, src)
	if err != nil {
		return nil, []error{err}
	}
	s, errs := extract.Extract(mod)
	if len(errs) > 0 {
		return nil, errs
	}
	return s, nil
}
