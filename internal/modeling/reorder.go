package modeling

import (
	"fmt"

	"tunable/internal/params"
)

// Reorder stacks a name-keyed result into rows following the canonical
// order. Every name in order must be present in the result.
func Reorder(byName map[string][]float64, order []string) ([][]float64, error) {
	out := make([][]float64, 0, len(order))
	for _, name := range order {
		row, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", params.ErrUnknownKey, name)
		}
		out = append(out, row)
	}
	return out, nil
}

// ReorderScalars arranges a name-keyed scalar result into a plain
// sequence following the canonical order.
func ReorderScalars(byName map[string]float64, order []string) ([]float64, error) {
	out := make([]float64, 0, len(order))
	for _, name := range order {
		v, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", params.ErrUnknownKey, name)
		}
		out = append(out, v)
	}
	return out, nil
}

// PerNameFn produces a result keyed by parameter name, in whatever
// order the model finds convenient.
type PerNameFn func(args ...float64) (map[string][]float64, error)

// OrderedBy wraps a per-name producer so it emits rows in canonical
// order. The order is queried per call, so freeze and thaw operations
// between calls are reflected in the output.
func OrderedBy(names func() []string, fn PerNameFn) func(args ...float64) ([][]float64, error) {
	return func(args ...float64) ([][]float64, error) {
		byName, err := fn(args...)
		if err != nil {
			return nil, err
		}
		return Reorder(byName, names())
	}
}
