package gradient

import (
	"errors"
	"fmt"
	"math"
)

// VerifyStep is the centered-difference perturbation used by the
// verification oracle.
const VerifyStep = 1.23e-5

const (
	defaultRelTol = 1e-5
	defaultAbsTol = 1e-8
)

// ErrGradientMismatch reports a finite-difference comparison that
// exceeded tolerance. It is a test-oracle failure, not a condition to
// recover from.
var ErrGradientMismatch = errors.New("gradient mismatch")

// VerifiableModel is the slice of the modeling protocol the verifier
// needs. The full protocol interface satisfies it.
type VerifiableModel interface {
	Target
	ParameterNames() []string
	Value(args ...float64) ([]float64, error)
	Gradient(args ...float64) ([][]float64, error)
}

// VerifyOptions tunes the oracle. Zero values select the defaults:
// VerifyStep and an elementwise |a-b| <= AbsTol + RelTol*|b| check
// with RelTol=1e-5, AbsTol=1e-8.
type VerifyOptions struct {
	Step   float64
	RelTol float64
	AbsTol float64
}

// Verify cross-checks a model's own Gradient against a centered
// finite-difference estimate of its Value, two evaluations per free
// parameter.
//
// The model's vector is restored to its pre-call value on every return
// path, success or failure.
func Verify(m VerifiableModel, args ...float64) error {
	return VerifyWith(m, VerifyOptions{}, args...)
}

func VerifyWith(m VerifiableModel, opts VerifyOptions, args ...float64) error {
	step := opts.Step
	if step == 0 {
		step = VerifyStep
	}
	if step <= 0 {
		return errors.New("step must be > 0")
	}
	relTol := opts.RelTol
	if relTol == 0 {
		relTol = defaultRelTol
	}
	absTol := opts.AbsTol
	if absTol == 0 {
		absTol = defaultAbsTol
	}

	grad0, err := m.Gradient(args...)
	if err != nil {
		return err
	}

	vector := m.Vector()
	names := m.ParameterNames()
	if len(grad0) != len(vector) {
		return fmt.Errorf("%w: gradient has %d rows for %d free parameters", ErrGradientMismatch, len(grad0), len(vector))
	}

	for i, v := range vector {
		p, err := evalAt(m, vector, i, v+step, args)
		if err != nil {
			return err
		}
		q, err := evalAt(m, vector, i, v-step, args)
		if err != nil {
			return err
		}
		if len(p) != len(q) || len(p) != len(grad0[i]) {
			return fmt.Errorf("%w: parameter %q (index %d): row has %d elements, value has %d", ErrGradientMismatch, names[i], i, len(grad0[i]), len(p))
		}
		for j := range p {
			centered := 0.5 * (p[j] - q[j]) / step
			if math.Abs(grad0[i][j]-centered) > absTol+relTol*math.Abs(centered) {
				return fmt.Errorf("%w: parameter %q (index %d): got=%g centered=%g", ErrGradientMismatch, names[i], i, grad0[i][j], centered)
			}
		}
	}
	return nil
}

// evalAt evaluates the model with vector[i] temporarily set to x and
// puts both the slice and the model back exactly as they were, even
// when the evaluation fails.
func evalAt(m VerifiableModel, vector []float64, i int, x float64, args []float64) ([]float64, error) {
	orig := vector[i]
	vector[i] = x
	if err := m.SetVector(vector); err != nil {
		vector[i] = orig
		return nil, err
	}
	out, err := m.Value(args...)

	vector[i] = orig
	if restoreErr := m.SetVector(vector); restoreErr != nil && err == nil {
		err = restoreErr
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}
