// Package solve finds the roots of linear and quadratic equations with real coefficients.
package solve

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"strconv"
	"strings"
)

var (
	ErrSolve              = errors.New("solve error")
	ErrNoSolution         = errors.New("no solution")
	ErrDegenerateEquation = errors.New("degenerate equation")
	ErrInvalidCoefficient = errors.New("invalid coefficient")
)

// Error reports a solver failure. Kind is one of ErrNoSolution, ErrDegenerateEquation or
// ErrInvalidCoefficient.
type Error struct {
	Kind     error
	Equation string
}

func (e *Error) Error() string { return fmt.Sprintf("%v: %s: %v", ErrSolve, e.Equation, e.Kind) }

func (e *Error) Unwrap() []error { return []error{ErrSolve, e.Kind} }

// Message collapses a solver error to the text shown to the user.
func Message(err error) string {
	if errors.Is(err, ErrNoSolution) {
		return "No Solution"
	}
	return "Error"
}

// Linear solves a*x + b = 0.
//
// Any a == 0 is reported as ErrNoSolution, including 0*x + 0 = 0 which every x satisfies.
func Linear(a, b float64) (float64, error) {
	if !finite(a, b) {
		return 0, &Error{Kind: ErrInvalidCoefficient, Equation: "linear"}
	}
	if a == 0 {
		return 0, &Error{Kind: ErrNoSolution, Equation: "linear"}
	}
	return -b / a, nil
}

// QuadraticResult holds both roots of a quadratic, the "+" root first. Complex is set when the
// discriminant is negative and the roots are a conjugate pair.
type QuadraticResult struct {
	Roots   [2]complex128
	Complex bool
}

// String renders each root with two decimals, complex roots as re±imi, joined by ", ".
func (r QuadraticResult) String() string {
	parts := make([]string, len(r.Roots))
	for i, z := range r.Roots {
		if !r.Complex {
			parts[i] = fixed2(real(z))
			continue
		}
		im := imag(z)
		sign := "+"
		if im < 0 {
			sign = "-"
		}
		parts[i] = fixed2(real(z)) + sign + fixed2(math.Abs(im)) + "i"
	}
	return strings.Join(parts, ", ")
}

// Quadratic solves a*x^2 + b*x + c = 0. a == 0 is ErrDegenerateEquation; callers wanting the
// single root should use Linear(b, c).
func Quadratic(a, b, c float64) (QuadraticResult, error) {
	if !finite(a, b, c) {
		return QuadraticResult{}, &Error{Kind: ErrInvalidCoefficient, Equation: "quadratic"}
	}
	if a == 0 {
		return QuadraticResult{}, &Error{Kind: ErrDegenerateEquation, Equation: "quadratic"}
	}

	d := b*b - 4*a*c
	if d >= 0 {
		sd := math.Sqrt(d)
		return QuadraticResult{Roots: [2]complex128{
			complex((-b+sd)/(2*a), 0),
			complex((-b-sd)/(2*a), 0),
		}}, nil
	}

	sd := cmplx.Sqrt(complex(d, 0))
	base := complex(-b/(2*a), 0)
	half := complex(real(sd)/(2*a), imag(sd)/(2*a))
	return QuadraticResult{Roots: [2]complex128{base + half, base - half}, Complex: true}, nil
}

func fixed2(x float64) string {
	s := strconv.FormatFloat(x, 'f', 2, 64)
	if s == "-0.00" {
		return "0.00"
	}
	return s
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
