package params

import (
	"fmt"
	"sort"
	"strconv"
)

type record struct {
	name   string
	value  float64
	frozen bool
	bound  Bound
}

// Store is an ordered, name-keyed collection of scalar parameters.
// Iteration order is fixed at construction (initial names sorted
// lexicographically) and grows append-only as new names are assigned.
// A store is owned by a single model instance and is not safe for
// concurrent use.
type Store struct {
	records []record
	index   map[string]int
}

func NewStore(initial map[string]float64) *Store {
	names := make([]string, 0, len(initial))
	for name := range initial {
		names = append(names, name)
	}
	sort.Strings(names)

	s := &Store{
		records: make([]record, 0, len(names)),
		index:   make(map[string]int, len(names)),
	}
	for _, name := range names {
		s.index[name] = len(s.records)
		s.records = append(s.records, record{name: name, value: initial[name]})
	}
	return s
}

// Len reports the number of free parameters.
func (s *Store) Len() int {
	n := 0
	for _, r := range s.records {
		if !r.frozen {
			n++
		}
	}
	return n
}

// Size reports the total number of parameters, frozen included.
func (s *Store) Size() int { return len(s.records) }

func (s *Store) Get(name string) (float64, error) {
	i, ok := s.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownKey, name)
	}
	return s.records[i].value, nil
}

// At returns the value at positional index i over all parameters in
// store order, frozen or not.
func (s *Store) At(i int) (float64, error) {
	if i < 0 || i >= len(s.records) {
		return 0, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(s.records))
	}
	return s.records[i].value, nil
}

// SetAt overwrites the value at positional index i without touching
// its frozen flag.
func (s *Store) SetAt(i int, value float64) error {
	if i < 0 || i >= len(s.records) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(s.records))
	}
	s.records[i].value = value
	return nil
}

// Set overwrites the named value, preserving its frozen flag, or
// appends a new unfrozen parameter when the name is not yet stored.
func (s *Store) Set(name string, value float64) {
	if i, ok := s.index[name]; ok {
		s.records[i].value = value
		return
	}
	s.index[name] = len(s.records)
	s.records = append(s.records, record{name: name, value: value})
}

func (s *Store) match(pattern string) ([]int, error) {
	g, err := compilePattern(pattern)
	if err != nil {
		return nil, err
	}
	matched := make([]int, 0, len(s.records))
	for i, r := range s.records {
		if g.Match(r.name) {
			matched = append(matched, i)
		}
	}
	return matched, nil
}

// Parameter returns the values of every name matching pattern, in
// store order.
func (s *Store) Parameter(pattern string) ([]float64, error) {
	matched, err := s.match(pattern)
	if err != nil {
		return nil, err
	}
	if len(matched) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParameter, pattern)
	}
	out := make([]float64, len(matched))
	for j, i := range matched {
		out[j] = s.records[i].value
	}
	return out, nil
}

// SetParameter assigns values to every name matching pattern. A single
// value broadcasts to all matches; otherwise values are assigned
// one-to-one in match order and must cover every match. Surplus values
// beyond the match count are ignored.
func (s *Store) SetParameter(pattern string, values ...float64) error {
	matched, err := s.match(pattern)
	if err != nil {
		return err
	}
	if len(matched) == 0 {
		return fmt.Errorf("%w: %q", ErrUnknownParameter, pattern)
	}
	if len(values) == 1 {
		for _, i := range matched {
			s.records[i].value = values[0]
		}
		return nil
	}
	if len(values) < len(matched) {
		return fmt.Errorf("%w: %d values for %d matches of %q", ErrLengthMismatch, len(values), len(matched), pattern)
	}
	for j, i := range matched {
		s.records[i].value = values[j]
	}
	return nil
}

// Lookup resolves a key the way bracket access does in the modeling
// protocol: keys containing '*' or '?' select by pattern, keys that
// parse as integers select by position, anything else by exact name.
func (s *Store) Lookup(key string) ([]float64, error) {
	if isPattern(key) {
		return s.Parameter(key)
	}
	if i, err := strconv.Atoi(key); err == nil {
		v, err := s.At(i)
		if err != nil {
			return nil, err
		}
		return []float64{v}, nil
	}
	v, err := s.Get(key)
	if err != nil {
		return nil, err
	}
	return []float64{v}, nil
}

// Assign routes a key through the same dispatch rule as Lookup. A
// plain unknown name inserts a new parameter; positional and pattern
// targets must already exist.
func (s *Store) Assign(key string, values ...float64) error {
	if isPattern(key) {
		return s.SetParameter(key, values...)
	}
	if len(values) != 1 {
		return fmt.Errorf("%w: %d values for key %q", ErrLengthMismatch, len(values), key)
	}
	if i, err := strconv.Atoi(key); err == nil {
		return s.SetAt(i, values[0])
	}
	s.Set(key, values[0])
	return nil
}

// FreezeParameter marks every name matching pattern as frozen,
// removing it from the active vector.
func (s *Store) FreezeParameter(pattern string) error {
	return s.setFrozen(pattern, true)
}

// ThawParameter clears the frozen flag on every name matching pattern.
func (s *Store) ThawParameter(pattern string) error {
	return s.setFrozen(pattern, false)
}

func (s *Store) setFrozen(pattern string, frozen bool) error {
	matched, err := s.match(pattern)
	if err != nil {
		return err
	}
	if len(matched) == 0 {
		return fmt.Errorf("%w: %q", ErrUnknownParameter, pattern)
	}
	for _, i := range matched {
		s.records[i].frozen = frozen
	}
	return nil
}

// ParameterNames lists the free parameter names in store order.
func (s *Store) ParameterNames() []string {
	names := make([]string, 0, len(s.records))
	for _, r := range s.records {
		if !r.frozen {
			names = append(names, r.name)
		}
	}
	return names
}

// AllParameterNames lists every parameter name in store order, frozen
// included.
func (s *Store) AllParameterNames() []string {
	names := make([]string, len(s.records))
	for i, r := range s.records {
		names[i] = r.name
	}
	return names
}

// Frozen reports whether the named parameter is frozen.
func (s *Store) Frozen(name string) (bool, error) {
	i, ok := s.index[name]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownKey, name)
	}
	return s.records[i].frozen, nil
}
