package solve

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinear(t *testing.T) {
	x, err := Linear(2, -4)
	require.NoError(t, err)
	assert.Equal(t, 2.0, x)

	x, err = Linear(-4, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.25, x)

	for _, b := range []float64{5, 0} {
		_, err = Linear(0, b)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrSolve), "err=%v", err)
		assert.True(t, errors.Is(err, ErrNoSolution), "err=%v", err)
		assert.Equal(t, "No Solution", Message(err))
	}

	_, err = Linear(math.NaN(), 1)
	assert.ErrorIs(t, err, ErrInvalidCoefficient)
	assert.Equal(t, "Error", Message(err))
}

func TestQuadratic_RealRoots(t *testing.T) {
	res, err := Quadratic(1, -3, 2)
	require.NoError(t, err)
	assert.False(t, res.Complex)
	assert.Equal(t, [2]complex128{2, 1}, res.Roots)
	assert.Equal(t, "2.00, 1.00", res.String())

	res, err = Quadratic(1, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, "-1.00, -1.00", res.String())

	// With a negative leading coefficient the "+" root is the smaller one.
	res, err = Quadratic(-1, 3, -2)
	require.NoError(t, err)
	assert.Equal(t, "1.00, 2.00", res.String())

	res, err = Quadratic(2, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "0.00, 0.00", res.String())
}

func TestQuadratic_ComplexRoots(t *testing.T) {
	res, err := Quadratic(1, 0, 1)
	require.NoError(t, err)
	assert.True(t, res.Complex)
	assert.Equal(t, complex(0, 1), res.Roots[0])
	assert.Equal(t, complex(0, -1), res.Roots[1])
	assert.Equal(t, "0.00+1.00i, 0.00-1.00i", res.String())

	res, err = Quadratic(1, 2, 5)
	require.NoError(t, err)
	assert.Equal(t, "-1.00+2.00i, -1.00-2.00i", res.String())

	res, err = Quadratic(-1, 0, -4)
	require.NoError(t, err)
	assert.Equal(t, "0.00-2.00i, 0.00+2.00i", res.String())
}

func TestQuadratic_Errors(t *testing.T) {
	_, err := Quadratic(0, 2, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDegenerateEquation), "err=%v", err)
	assert.True(t, errors.Is(err, ErrSolve), "err=%v", err)

	var se *Error
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "quadratic", se.Equation)

	_, err = Quadratic(1, math.Inf(1), 0)
	assert.ErrorIs(t, err, ErrInvalidCoefficient)
}

func TestFixed2(t *testing.T) {
	assert.Equal(t, "0.00", fixed2(-0.001))
	assert.Equal(t, "0.00", fixed2(math.Copysign(0, -1)))
	assert.Equal(t, "-0.01", fixed2(-0.006))
	assert.Equal(t, "1.50", fixed2(1.5))
}
