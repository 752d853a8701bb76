package planner

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/cwbudde/fourier/internal/fftypes"
)

// wisdomHeader identifies the portable wisdom text format.
const wisdomHeader = "fourier wisdom v1"

// Wisdom is an explicit, opt-in cache of strategy choices keyed by
// transform length. The engine never consults it on its own; callers
// attach it through plan options. Safe for concurrent use.
type Wisdom struct {
	mu      sync.RWMutex
	entries map[int]fftypes.Strategy
}

// NewWisdom creates an empty wisdom cache.
func NewWisdom() *Wisdom {
	return &Wisdom{entries: make(map[int]fftypes.Strategy)}
}

// DefaultWisdom is the process-wide cache used by the package-level
// import/export helpers. Plans only see it when explicitly attached.
var DefaultWisdom = NewWisdom()

// Lookup returns the recorded strategy for length n.
func (w *Wisdom) Lookup(n int) (fftypes.Strategy, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	s, ok := w.entries[n]

	return s, ok
}

// Record stores the strategy for length n, replacing any prior entry.
func (w *Wisdom) Record(n int, s fftypes.Strategy) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.entries[n] = s
}

// Clear removes all entries.
func (w *Wisdom) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.entries = make(map[int]fftypes.Strategy)
}

// Len returns the number of recorded lengths.
func (w *Wisdom) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return len(w.entries)
}

// Export writes the cache in the portable text format: a header line
// followed by one "<length> <strategy>" line per entry, sorted by
// length so exports are reproducible.
func (w *Wisdom) Export(out io.Writer) error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if _, err := fmt.Fprintln(out, wisdomHeader); err != nil {
		return err
	}

	lengths := make([]int, 0, len(w.entries))
	for n := range w.entries {
		lengths = append(lengths, n)
	}
	sort.Ints(lengths)

	for _, n := range lengths {
		if _, err := fmt.Fprintf(out, "%d %s\n", n, w.entries[n]); err != nil {
			return err
		}
	}

	return nil
}

// Import merges entries from the portable text format into the cache.
// Entries with unknown strategies or non-positive lengths are rejected.
func (w *Wisdom) Import(in io.Reader) error {
	scanner := bufio.NewScanner(in)

	if !scanner.Scan() {
		return fmt.Errorf("wisdom: empty input")
	}

	if scanner.Text() != wisdomHeader {
		return fmt.Errorf("wisdom: unrecognized header %q", scanner.Text())
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	line := 1
	for scanner.Scan() {
		line++

		text := scanner.Text()
		if text == "" {
			continue
		}

		var (
			n    int
			name string
		)
		if _, err := fmt.Sscanf(text, "%d %s", &n, &name); err != nil {
			return fmt.Errorf("wisdom: line %d: %w", line, err)
		}

		if n < 1 {
			return fmt.Errorf("wisdom: line %d: invalid length %d", line, n)
		}

		s, ok := fftypes.ParseStrategy(name)
		if !ok {
			return fmt.Errorf("wisdom: line %d: unknown strategy %q", line, name)
		}

		w.entries[n] = s
	}

	return scanner.Err()
}
