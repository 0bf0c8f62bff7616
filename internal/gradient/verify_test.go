package gradient

import (
	"errors"
	"math"
	"strings"
	"testing"

	"tunable/internal/params"
)

// expModel computes exp(a*x) + b with an analytic gradient, evaluated
// at the x passed as the first argument.
type expModel struct {
	*params.Store
	gradientSkew float64
	valueErr     error
}

func newExpModel() *expModel {
	return &expModel{Store: params.NewStore(map[string]float64{"a": 0.3, "b": 1.2})}
}

func (m *expModel) Value(args ...float64) ([]float64, error) {
	if m.valueErr != nil {
		return nil, m.valueErr
	}
	x := args[0]
	v := m.Vector()
	return []float64{math.Exp(v[0]*x) + v[1]}, nil
}

func (m *expModel) Gradient(args ...float64) ([][]float64, error) {
	x := args[0]
	v := m.Vector()
	return [][]float64{
		{x*math.Exp(v[0]*x) + m.gradientSkew},
		{1.0},
	}, nil
}

func TestVerifyAcceptsAnalyticGradient(t *testing.T) {
	m := newExpModel()
	if err := Verify(m, 0.7); err != nil {
		t.Fatalf("verify failed: %v", err)
	}
}

func TestVerifyAcceptsForwardEstimate(t *testing.T) {
	s := params.NewStore(map[string]float64{"x": 3.0, "y": 5.0})
	m := &estimatingModel{Store: s}
	if err := Verify(m); err != nil {
		t.Fatalf("verify failed: %v", err)
	}
}

// estimatingModel derives its gradient from the forward estimator, the
// default for models without an analytic form.
type estimatingModel struct {
	*params.Store
}

func (m *estimatingModel) Value(args ...float64) ([]float64, error) {
	v := m.Vector()
	return []float64{v[0]*v[0] + v[1]}, nil
}

func (m *estimatingModel) Gradient(args ...float64) ([][]float64, error) {
	return Estimate(m.Store, func() ([]float64, error) { return m.Value(args...) })
}

func TestVerifyRejectsWrongGradient(t *testing.T) {
	m := newExpModel()
	m.gradientSkew = 0.5

	err := Verify(m, 0.7)
	if !errors.Is(err, ErrGradientMismatch) {
		t.Fatalf("expected gradient mismatch, got %v", err)
	}
	if !strings.Contains(err.Error(), `"a"`) || !strings.Contains(err.Error(), "index 0") {
		t.Fatalf("mismatch must name the failing parameter: %v", err)
	}
}

func TestVerifyRestoresVector(t *testing.T) {
	m := newExpModel()
	before := m.Vector()

	if err := Verify(m, 0.7); err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	after := m.Vector()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("vector not restored at %d: got=%v want=%v", i, after[i], before[i])
		}
	}

	m.gradientSkew = 0.5
	if err := Verify(m, 0.7); err == nil {
		t.Fatal("expected mismatch")
	}
	after = m.Vector()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("vector not restored after failure at %d: got=%v want=%v", i, after[i], before[i])
		}
	}
}

func TestVerifyRestoresVectorOnValueError(t *testing.T) {
	m := newExpModel()
	before := m.Vector()
	boom := errors.New("boom")

	m.valueErr = boom
	if err := Verify(m, 0.7); !errors.Is(err, boom) {
		t.Fatalf("expected value error, got %v", err)
	}
	after := m.Vector()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("vector not restored at %d: got=%v want=%v", i, after[i], before[i])
		}
	}
}

func TestVerifyRejectsRowCountMismatch(t *testing.T) {
	m := &rowMismatchModel{Store: params.NewStore(map[string]float64{"a": 1.0, "b": 2.0})}
	if err := Verify(m); !errors.Is(err, ErrGradientMismatch) {
		t.Fatalf("expected gradient mismatch, got %v", err)
	}
}

type rowMismatchModel struct {
	*params.Store
}

func (m *rowMismatchModel) Value(args ...float64) ([]float64, error) {
	return []float64{0}, nil
}

func (m *rowMismatchModel) Gradient(args ...float64) ([][]float64, error) {
	return [][]float64{{0}}, nil
}

func TestVerifyWithLooseTolerance(t *testing.T) {
	m := newExpModel()
	m.gradientSkew = 0.5
	if err := VerifyWith(m, VerifyOptions{AbsTol: 1.0}, 0.7); err != nil {
		t.Fatalf("loose tolerance should accept the skewed gradient: %v", err)
	}
}
