// Package modeling defines the structural contract a model must
// satisfy for generic optimizer and sampler code to drive it through
// its free parameter vector.
package modeling

import (
	"errors"

	"tunable/internal/params"
)

// ErrNotImplemented is returned by Base when a concrete model has not
// supplied its own evaluation.
var ErrNotImplemented = errors.New("model evaluation not implemented")

// Model is the modeling protocol: the parameter-store surface plus the
// two evaluation hooks. Len reports the free parameter count.
type Model interface {
	Len() int
	Value(args ...float64) ([]float64, error)
	Gradient(args ...float64) ([][]float64, error)
	ParameterNames() []string
	Vector() []float64
	CheckVector(vector []float64) bool
	SetVector(vector []float64) error
	FreezeParameter(pattern string) error
	ThawParameter(pattern string) error
	Parameter(pattern string) ([]float64, error)
	SetParameter(pattern string, values ...float64) error
	Bounds() []params.Bound
}

// Supports reports whether obj implements the full modeling protocol.
// The check is purely structural: interface satisfaction, never type
// identity. A nil or partial implementation yields false without
// panicking.
func Supports(obj any) bool {
	_, ok := obj.(Model)
	return ok
}

// Base carries the parameter-store half of the protocol. Concrete
// models embed it and shadow Value, and usually Gradient as well,
// delegating the latter to a finite-difference estimate over their own
// Value when no analytic form exists.
type Base struct {
	*params.Store
}

func NewBase(initial map[string]float64) Base {
	return Base{Store: params.NewStore(initial)}
}

func (Base) Value(args ...float64) ([]float64, error) {
	return nil, ErrNotImplemented
}

func (Base) Gradient(args ...float64) ([][]float64, error) {
	return nil, ErrNotImplemented
}
