package fourier

import (
	"fmt"
	"os"
	"strings"

	"github.com/cwbudde/fourier/internal/planner"
)

// Wisdom is an explicit per-length strategy cache. Attach one through
// PlanOptions to reuse choices across plans; export it to carry
// measured verdicts between runs. The engine keeps no hidden global
// state; DefaultWisdom only participates when passed in.
type Wisdom = planner.Wisdom

// NewWisdom creates a new empty wisdom cache.
func NewWisdom() *Wisdom {
	return planner.NewWisdom()
}

// DefaultWisdom is the cache the package-level import/export helpers
// operate on.
func DefaultWisdom() *Wisdom {
	return planner.DefaultWisdom
}

// ImportWisdom loads wisdom data from a file into the default cache.
// The file must be in the format produced by ExportWisdom.
func ImportWisdom(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open wisdom file: %w", err)
	}

	defer f.Close()

	if err := planner.DefaultWisdom.Import(f); err != nil {
		return fmt.Errorf("failed to import wisdom: %w", err)
	}

	return nil
}

// ImportWisdomFromString loads wisdom data from a string into the
// default cache. Useful for embedding wisdom in binaries.
func ImportWisdomFromString(data string) error {
	if err := planner.DefaultWisdom.Import(strings.NewReader(data)); err != nil {
		return fmt.Errorf("failed to import wisdom from string: %w", err)
	}

	return nil
}

// ExportWisdom saves the default cache to a file.
func ExportWisdom(filename string) error {
	return ExportWisdomTo(filename, planner.DefaultWisdom)
}

// ExportWisdomTo saves a specific wisdom cache to a file.
func ExportWisdomTo(filename string, wisdom *Wisdom) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create wisdom file: %w", err)
	}

	defer f.Close()

	if err := wisdom.Export(f); err != nil {
		return fmt.Errorf("failed to export wisdom: %w", err)
	}

	return nil
}

// ClearWisdom removes all entries from the default cache.
func ClearWisdom() {
	planner.DefaultWisdom.Clear()
}

// WisdomLen returns the number of entries in the default cache.
func WisdomLen() int {
	return planner.DefaultWisdom.Len()
}
