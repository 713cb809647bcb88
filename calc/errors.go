package calc

import (
	"errors"
	"fmt"
)

var (
	ErrLex   = errors.New("lex error")
	ErrParse = errors.New("parse error")
	ErrEval  = errors.New("eval error")

	ErrUnexpectedCharacter = errors.New("unexpected character")

	ErrUnexpectedToken  = errors.New("unexpected token")
	ErrUnknownFunction  = errors.New("unknown function")
	ErrArityMismatch    = errors.New("arity mismatch")
	ErrUnbalancedParens = errors.New("unbalanced parentheses")

	ErrDomain         = errors.New("domain error")
	ErrDivisionByZero = errors.New("division by zero")
	// ErrOverflow is returned when an intermediate result is not a finite number.
	ErrOverflow = errors.New("overflow")
)

const (
	msgError     = "Error"
	msgDivByZero = "Error: Div by 0"
)

// LexError reports a character no token can start with.
type LexError struct {
	Char   rune
	Offset int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%v: %v %q at offset %d", ErrLex, ErrUnexpectedCharacter, e.Char, e.Offset)
}

func (e *LexError) Unwrap() []error { return []error{ErrLex, ErrUnexpectedCharacter} }

// ParseError reports malformed grammar. Kind is one of ErrUnexpectedToken, ErrUnknownFunction,
// ErrArityMismatch or ErrUnbalancedParens.
type ParseError struct {
	Kind     error
	Token    string
	Name     string
	Expected int
	Got      int
	Offset   int
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrUnknownFunction:
		return fmt.Sprintf("%v: %v %q at offset %d", ErrParse, e.Kind, e.Name, e.Offset)
	case ErrArityMismatch:
		return fmt.Sprintf("%v: %s expects %d argument(s), got %d", ErrParse, e.Name, e.Expected, e.Got)
	case ErrUnbalancedParens:
		return fmt.Sprintf("%v: %v at offset %d", ErrParse, e.Kind, e.Offset)
	default:
		tok := e.Token
		if tok == "" {
			tok = "end of input"
		}
		return fmt.Sprintf("%v: %v %q at offset %d", ErrParse, e.Kind, tok, e.Offset)
	}
}

func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Kind} }

// EvalError reports a run-time failure. Kind is one of ErrDomain, ErrDivisionByZero or ErrOverflow.
type EvalError struct {
	Kind error
	Op   string
}

func (e *EvalError) Error() string { return fmt.Sprintf("%v: %s: %v", ErrEval, e.Op, e.Kind) }

func (e *EvalError) Unwrap() []error { return []error{ErrEval, e.Kind} }

func domainErr(op string) error { return &EvalError{Kind: ErrDomain, Op: op} }

// Message collapses an engine error to the text shown to the user.
func Message(err error) string {
	if errors.Is(err, ErrDivisionByZero) {
		return msgDivByZero
	}
	return msgError
}

// IsErrorMessage reports whether s is one of the strings Message produces.
func IsErrorMessage(s string) bool {
	return s == msgError || s == msgDivByZero
}
