package params

import "fmt"

// Bound is a per-parameter limit pair. A nil side is open-ended and
// both ends are inclusive: a value exactly on a boundary is valid.
type Bound struct {
	Lower *float64
	Upper *float64
}

// Closed bounds a parameter on both sides.
func Closed(lower, upper float64) Bound {
	return Bound{Lower: &lower, Upper: &upper}
}

// AtLeast bounds a parameter from below only.
func AtLeast(lower float64) Bound {
	return Bound{Lower: &lower}
}

// AtMost bounds a parameter from above only.
func AtMost(upper float64) Bound {
	return Bound{Upper: &upper}
}

func (b Bound) Contains(v float64) bool {
	if b.Lower != nil && v < *b.Lower {
		return false
	}
	if b.Upper != nil && v > *b.Upper {
		return false
	}
	return true
}

// Vector returns the free parameter values in store order. The active
// vector is the coordinate system optimizers and samplers operate in.
func (s *Store) Vector() []float64 {
	out := make([]float64, 0, len(s.records))
	for _, r := range s.records {
		if !r.frozen {
			out = append(out, r.value)
		}
	}
	return out
}

// SetVector assigns vector elements to the free parameters in store
// order. The vector length must equal the free count exactly.
func (s *Store) SetVector(vector []float64) error {
	free := s.Len()
	if len(vector) != free {
		return fmt.Errorf("%w: vector has %d elements for %d free parameters", ErrLengthMismatch, len(vector), free)
	}
	j := 0
	for i := range s.records {
		if s.records[i].frozen {
			continue
		}
		s.records[i].value = vector[j]
		j++
	}
	return nil
}

// Bounds returns the limit pair for each free parameter in store
// order. Parameters without an explicit bound are open on both ends.
func (s *Store) Bounds() []Bound {
	out := make([]Bound, 0, len(s.records))
	for _, r := range s.records {
		if !r.frozen {
			out = append(out, r.bound)
		}
	}
	return out
}

// SetBound attaches a limit pair to every name matching pattern.
func (s *Store) SetBound(pattern string, b Bound) error {
	matched, err := s.match(pattern)
	if err != nil {
		return err
	}
	if len(matched) == 0 {
		return fmt.Errorf("%w: %q", ErrUnknownParameter, pattern)
	}
	for _, i := range matched {
		s.records[i].bound = b
	}
	return nil
}

// CheckVector reports whether every element of a candidate vector lies
// within its free parameter's bounds. A vector of the wrong length is
// never valid.
func (s *Store) CheckVector(vector []float64) bool {
	bounds := s.Bounds()
	if len(vector) != len(bounds) {
		return false
	}
	for i, b := range bounds {
		if !b.Contains(vector[i]) {
			return false
		}
	}
	return true
}
