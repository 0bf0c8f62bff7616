// Package tunable exposes a uniform parameter management protocol for
// numerical models: an ordered store of named scalar parameters with
// freeze/thaw and glob-pattern bulk operations, projection of the free
// subset to and from a flat vector, and finite-difference gradient
// estimation and verification over that vector.
package tunable

import (
	"tunable/internal/gradient"
	"tunable/internal/modeling"
	"tunable/internal/params"
)

type (
	// Store is an ordered, name-keyed collection of scalar parameters.
	Store = params.Store
	// Bound is an inclusive per-parameter limit pair; nil sides are open.
	Bound = params.Bound
	// Model is the structural modeling protocol contract.
	Model = modeling.Model
	// Base is the embeddable parameter-store half of the protocol.
	Base = modeling.Base
	// EvaluateFn produces the output a gradient is taken against.
	EvaluateFn = gradient.EvaluateFn
	// PerNameFn produces results keyed by parameter name.
	PerNameFn = modeling.PerNameFn
	// VerifyOptions tunes the gradient verification oracle.
	VerifyOptions = gradient.VerifyOptions
)

var (
	ErrUnknownParameter = params.ErrUnknownParameter
	ErrUnknownKey       = params.ErrUnknownKey
	ErrIndexOutOfRange  = params.ErrIndexOutOfRange
	ErrLengthMismatch   = params.ErrLengthMismatch
	ErrNotImplemented   = modeling.ErrNotImplemented
	ErrGradientMismatch = gradient.ErrGradientMismatch
)

// DefaultStep is the forward-difference perturbation used by
// EstimateGradient.
const DefaultStep = gradient.DefaultStep

// NewStore builds a store from an initial name-to-value mapping. Names
// are ordered lexicographically; later insertions append.
func NewStore(initial map[string]float64) *Store {
	return params.NewStore(initial)
}

// NewBase builds the embeddable store half of a model.
func NewBase(initial map[string]float64) Base {
	return modeling.NewBase(initial)
}

// Match returns the ordered subsequence of names matching a glob
// pattern ('*' any run, '?' one character).
func Match(pattern string, names []string) ([]string, error) {
	return params.Match(pattern, names)
}

func Closed(lower, upper float64) Bound { return params.Closed(lower, upper) }
func AtLeast(lower float64) Bound       { return params.AtLeast(lower) }
func AtMost(upper float64) Bound        { return params.AtMost(upper) }

// SupportsProtocol reports whether obj structurally implements the
// full modeling protocol.
func SupportsProtocol(obj any) bool {
	return modeling.Supports(obj)
}

// EstimateGradient computes the forward finite-difference gradient of
// evaluate with respect to the store's free parameter vector. The
// store is mutated in place and restored before returning; calls on
// the same store must be serialized.
func EstimateGradient(store *Store, evaluate EvaluateFn) ([][]float64, error) {
	return gradient.Estimate(store, evaluate)
}

// EstimateGradientWithStep is EstimateGradient with an explicit
// perturbation step.
func EstimateGradientWithStep(store *Store, evaluate EvaluateFn, step float64) ([][]float64, error) {
	return gradient.EstimateWithStep(store, evaluate, step)
}

// CheckGradient cross-checks a model's Gradient against a centered
// finite-difference estimate of its Value, restoring the model's
// vector on every return path. A mismatch is reported as
// ErrGradientMismatch with the failing parameter's name and index.
func CheckGradient(m Model, args ...float64) error {
	return gradient.Verify(m, args...)
}

// CheckGradientWith is CheckGradient with explicit step and tolerance
// settings.
func CheckGradientWith(m Model, opts VerifyOptions, args ...float64) error {
	return gradient.VerifyWith(m, opts, args...)
}

// Reorder stacks a name-keyed result into rows following canonical
// parameter order.
func Reorder(byName map[string][]float64, order []string) ([][]float64, error) {
	return modeling.Reorder(byName, order)
}

// ReorderScalars arranges a name-keyed scalar result into canonical
// parameter order.
func ReorderScalars(byName map[string]float64, order []string) ([]float64, error) {
	return modeling.ReorderScalars(byName, order)
}

// OrderedBy wraps a per-name producer so it emits rows in canonical
// order, re-reading the order on every call.
func OrderedBy(names func() []string, fn PerNameFn) func(args ...float64) ([][]float64, error) {
	return modeling.OrderedBy(names, fn)
}
