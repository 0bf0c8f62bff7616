// Package gradient estimates derivatives of a model's output with
// respect to its free parameter vector by finite differences, for use
// when an analytic gradient is unavailable or must be cross-checked.
package gradient

import (
	"errors"
	"fmt"
)

// DefaultStep is the forward-difference perturbation applied to each
// free parameter.
const DefaultStep = 1.254e-5

// Target is the slice of the modeling protocol the estimator needs:
// read the active vector and write it back in place.
type Target interface {
	Vector() []float64
	SetVector([]float64) error
}

// EvaluateFn produces the model output the gradient is taken against.
// Callers close over whatever evaluation arguments their model needs.
type EvaluateFn func() ([]float64, error)

// Estimate computes the forward finite-difference gradient of evaluate
// with respect to the target's free parameter vector: one baseline
// evaluation plus one perturbed evaluation per parameter. Row i of the
// result is d(evaluate)/d(vector[i]), with the shape of the baseline
// output.
//
// The target's vector is mutated in place during the sweep and must be
// restored bit-identically after each perturbation before the next
// parameter is evaluated. Estimate is not reentrant per target.
func Estimate(target Target, evaluate EvaluateFn) ([][]float64, error) {
	return EstimateWithStep(target, evaluate, DefaultStep)
}

func EstimateWithStep(target Target, evaluate EvaluateFn, step float64) ([][]float64, error) {
	if step <= 0 {
		return nil, errors.New("step must be > 0")
	}
	if evaluate == nil {
		return nil, errors.New("evaluate function is required")
	}

	vector := target.Vector()
	value0, err := evaluate()
	if err != nil {
		return nil, err
	}

	grad := make([][]float64, len(vector))
	for i, v := range vector {
		vector[i] = v + step
		if err := target.SetVector(vector); err != nil {
			vector[i] = v
			return nil, err
		}
		value, evalErr := evaluate()

		vector[i] = v
		if err := target.SetVector(vector); err != nil {
			return nil, err
		}
		if evalErr != nil {
			return nil, evalErr
		}
		if len(value) != len(value0) {
			return nil, fmt.Errorf("evaluation shape changed at parameter %d: got=%d want=%d", i, len(value), len(value0))
		}

		row := make([]float64, len(value))
		for j := range value {
			row[j] = (value[j] - value0[j]) / step
		}
		grad[i] = row
	}
	return grad, nil
}
