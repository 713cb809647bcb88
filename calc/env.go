package calc

import "math"

// zeroEpsilon is the magnitude below which a final result is reported as exactly zero.
const zeroEpsilon = 1e-10

// maxFactorial is the largest n for which n! is a finite float64.
const maxFactorial = 170

// Env is the evaluation environment: the fixed built-in table seen through one angle mode.
// It is a value, so each evaluation works on its own snapshot.
type Env struct {
	Mode AngleMode
}

func NewEnv(mode AngleMode) Env { return Env{Mode: mode} }

// Lookup resolves name against the built-in table. Lookups are case-sensitive.
func (e Env) Lookup(name string) (Binding, bool) { return lookupName(name) }

// Constant returns the value of c. Constants do not depend on the angle mode.
func (e Env) Constant(c Constant) float64 { return c.Value() }

// Apply calls f with args.
func (e Env) Apply(f Builtin, args []float64) (float64, error) {
	if !f.valid() {
		return 0, &ParseError{Kind: ErrUnknownFunction, Name: f.String()}
	}
	if len(args) != f.Arity() {
		return 0, &ParseError{Kind: ErrArityMismatch, Name: f.String(), Expected: f.Arity(), Got: len(args)}
	}
	x := args[0]
	name := f.String()
	if f.angleRole() == angleArg {
		x = e.Mode.ToRadians(x)
	}

	var r float64
	switch f {
	case FuncSqrt:
		if x < 0 {
			return 0, domainErr(name)
		}
		r = math.Sqrt(x)
	case FuncAbs:
		r = math.Abs(x)
	case FuncFact:
		v, err := factorial(x)
		if err != nil {
			return 0, err
		}
		r = v
	case FuncLog:
		if x <= 0 {
			return 0, domainErr(name)
		}
		r = math.Log10(x)
	case FuncLn:
		if x <= 0 {
			return 0, domainErr(name)
		}
		r = math.Log(x)
	case FuncExp:
		r = math.Exp(x)
	case FuncSin:
		r = math.Sin(x)
	case FuncCos:
		r = math.Cos(x)
	case FuncTan:
		r = math.Tan(x)
	case FuncAsin:
		if x < -1 || x > 1 {
			return 0, domainErr(name)
		}
		r = math.Asin(x)
	case FuncAcos:
		if x < -1 || x > 1 {
			return 0, domainErr(name)
		}
		r = math.Acos(x)
	case FuncAtan:
		r = math.Atan(x)
	}
	if f.angleRole() == angleResult {
		r = e.Mode.FromRadians(r)
	}
	return checkFinite(name, r)
}

func factorial(x float64) (float64, error) {
	if x < 0 || x != math.Trunc(x) || math.IsNaN(x) {
		return 0, domainErr("fact")
	}
	if x > maxFactorial {
		return 0, &EvalError{Kind: ErrOverflow, Op: "fact"}
	}
	r := 1.0
	for i := 2.0; i <= x; i++ {
		r *= i
	}
	return r, nil
}

func checkFinite(op string, v float64) (float64, error) {
	if math.IsNaN(v) {
		return 0, domainErr(op)
	}
	if math.IsInf(v, 0) {
		return 0, &EvalError{Kind: ErrOverflow, Op: op}
	}
	return v, nil
}

// Snap absorbs floating-point noise: results smaller in magnitude than 1e-10 become exactly 0.
func Snap(v float64) float64 {
	if math.Abs(v) < zeroEpsilon {
		return 0
	}
	return v
}
