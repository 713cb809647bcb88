package calc

// This file contains the expression tree and its evaluator.

import (
	"fmt"
	"math"
)

// Node is a parsed expression. The set of implementations is closed: NumberLit, ConstRef,
// UnaryOp, BinaryOp and Call. Every node owns its children.
type Node interface {
	Eval(env Env) (float64, error)
	node()
}

type NumberLit struct{ Value float64 }

type ConstRef struct{ Const Constant }

type UnaryOp struct {
	Op byte
	X  Node
}

type BinaryOp struct {
	Op    byte
	Left  Node
	Right Node
}

type Call struct {
	Func Builtin
	Args []Node
}

func (NumberLit) node() {}
func (ConstRef) node()  {}
func (UnaryOp) node()   {}
func (BinaryOp) node()  {}
func (Call) node()      {}

// Eval evaluates n in env and applies near-zero suppression to the final result.
func Eval(n Node, env Env) (float64, error) {
	if n == nil {
		return 0, &ParseError{Kind: ErrUnexpectedToken}
	}
	v, err := n.Eval(env)
	if err != nil {
		return 0, err
	}
	return Snap(v), nil
}

func (n NumberLit) Eval(_ Env) (float64, error) { return checkFinite("number", n.Value) }

func (n ConstRef) Eval(env Env) (float64, error) {
	if !n.Const.valid() {
		return 0, &ParseError{Kind: ErrUnknownFunction, Name: n.Const.String()}
	}
	return env.Constant(n.Const), nil
}

func (n UnaryOp) Eval(env Env) (float64, error) {
	x, err := n.X.Eval(env)
	if err != nil {
		return 0, err
	}
	switch n.Op {
	case '+':
		return x, nil
	case '-':
		return -x, nil
	default:
		return 0, fmt.Errorf("%w: unary %q", ErrEval, n.Op)
	}
}

func (n BinaryOp) Eval(env Env) (float64, error) {
	a, err := n.Left.Eval(env)
	if err != nil {
		return 0, err
	}
	b, err := n.Right.Eval(env)
	if err != nil {
		return 0, err
	}

	var r float64
	switch n.Op {
	case '+':
		r = a + b
	case '-':
		r = a - b
	case '*':
		r = a * b
	case '/':
		if b == 0 {
			return 0, &EvalError{Kind: ErrDivisionByZero, Op: "/"}
		}
		r = a / b
	case '^':
		return power(a, b)
	default:
		return 0, fmt.Errorf("%w: binary %q", ErrEval, n.Op)
	}
	return checkFinite(string(n.Op), r)
}

func (n Call) Eval(env Env) (float64, error) {
	args := make([]float64, len(n.Args))
	for i, a := range n.Args {
		v, err := a.Eval(env)
		if err != nil {
			return 0, err
		}
		args[i] = v
	}
	return env.Apply(n.Func, args)
}

// power implements a^b over the reals. Zero to a negative power is a division by zero; a negative
// base only admits integral exponents.
func power(a, b float64) (float64, error) {
	if a == 0 && b < 0 {
		return 0, &EvalError{Kind: ErrDivisionByZero, Op: "^"}
	}
	if a < 0 && b != math.Trunc(b) {
		return 0, domainErr("^")
	}
	return checkFinite("^", math.Pow(a, b))
}
