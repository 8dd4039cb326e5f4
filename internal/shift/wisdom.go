package shift

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/cwbudde/algo-fftshift/internal/shifttypes"
)

// Wisdom stores the preferred mover per buffer shape, typically recorded from
// benchmark runs. Automatic strategy selection consults DefaultWisdom before
// falling back to heuristics. Safe for concurrent use.
type Wisdom struct {
	mu      sync.RWMutex
	entries map[shapeKey]Strategy
}

type shapeKey struct {
	rows, cols int
}

// DefaultWisdom is the process-wide wisdom cache.
var DefaultWisdom = NewWisdom()

// NewWisdom creates an empty wisdom cache.
func NewWisdom() *Wisdom {
	return &Wisdom{entries: make(map[shapeKey]Strategy)}
}

// Record stores s as the preferred mover for rows x cols buffers. Non-positive
// shapes and the auto tag are ignored.
func (w *Wisdom) Record(rows, cols int, s Strategy) {
	if rows <= 0 || cols <= 0 || s == shifttypes.StrategyAuto {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.entries[shapeKey{rows: rows, cols: cols}] = s
}

// Lookup returns the recorded mover for a shape, if any.
func (w *Wisdom) Lookup(rows, cols int) (Strategy, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	s, ok := w.entries[shapeKey{rows: rows, cols: cols}]

	return s, ok
}

// Len returns the number of recorded shapes.
func (w *Wisdom) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return len(w.entries)
}

// Clear removes all entries.
func (w *Wisdom) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.entries = make(map[shapeKey]Strategy)
}

// Export writes the cache as "rows cols strategy" lines, sorted by shape so
// the output is reproducible.
func (w *Wisdom) Export(out io.Writer) error {
	w.mu.RLock()
	keys := make([]shapeKey, 0, len(w.entries))
	for k := range w.entries {
		keys = append(keys, k)
	}
	entries := make(map[shapeKey]Strategy, len(w.entries))
	for k, v := range w.entries {
		entries[k] = v
	}
	w.mu.RUnlock()

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].rows != keys[j].rows {
			return keys[i].rows < keys[j].rows
		}

		return keys[i].cols < keys[j].cols
	})

	for _, k := range keys {
		if _, err := fmt.Fprintf(out, "%d %d %s\n", k.rows, k.cols, entries[k]); err != nil {
			return err
		}
	}

	return nil
}

// Import merges entries from in. Each line is "rows cols strategy"; blank
// lines and lines starting with # are skipped.
func (w *Wisdom) Import(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	lineNo := 0

	for scanner.Scan() {
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return fmt.Errorf("algoshift: wisdom line %d: expected 3 fields, got %d", lineNo, len(fields))
		}

		rows, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("algoshift: wisdom line %d: bad rows: %w", lineNo, err)
		}

		cols, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("algoshift: wisdom line %d: bad cols: %w", lineNo, err)
		}

		s, ok := shifttypes.ParseStrategy(fields[2])
		if !ok {
			return fmt.Errorf("algoshift: wisdom line %d: unknown strategy %q", lineNo, fields[2])
		}

		w.Record(rows, cols, s)
	}

	return scanner.Err()
}
