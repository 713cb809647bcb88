package calc

import (
	"errors"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog"

	"sparkcalc/calc/solve"
)

// Config holds the engine settings chosen at construction time.
type Config struct {
	AngleMode AngleMode
	// Precision is the number of significant digits in formatted results (0 = DefaultPrecision).
	Precision int
}

// Engine is the call surface offered to a user interface. It is safe for concurrent use; the angle
// mode is its only mutable state and each evaluation works on a snapshot of it.
type Engine struct {
	mode atomic.Uint32
	prec int
	log  zerolog.Logger
}

func NewEngine(cfg Config, log zerolog.Logger) *Engine {
	prec := cfg.Precision
	if prec <= 0 {
		prec = DefaultPrecision
	}
	e := &Engine{prec: prec, log: log}
	e.mode.Store(uint32(cfg.AngleMode))
	return e
}

func (e *Engine) AngleMode() AngleMode { return AngleMode(e.mode.Load()) }

func (e *Engine) SetAngleMode(m AngleMode) {
	e.mode.Store(uint32(m))
	e.log.Debug().Stringer("mode", m).Msg("angle mode set")
}

// ToggleAngleMode flips between degrees and radians and returns the new mode.
func (e *Engine) ToggleAngleMode() AngleMode {
	for {
		old := e.mode.Load()
		next := AngleMode(old).Toggle()
		if e.mode.CompareAndSwap(old, uint32(next)) {
			e.log.Debug().Stringer("mode", next).Msg("angle mode toggled")
			return next
		}
	}
}

// Calculate evaluates text and returns the unformatted result or a typed error wrapping one of
// ErrLex, ErrParse or ErrEval.
func (e *Engine) Calculate(text string) (float64, error) {
	env := NewEnv(e.AngleMode())

	toks, err := Tokenize(text)
	if err != nil {
		return 0, err
	}
	n, err := parseIn(toks, env)
	if err != nil {
		return 0, err
	}
	if ev := e.log.Debug(); ev.Enabled() {
		ev.Str("expr", text).Str("ast", NodeString(n)).Stringer("mode", env.Mode).Msg("parsed")
	}
	return Eval(n, env)
}

// Result is one evaluation as shown to the user. Value is the unrounded result and is only
// meaningful when OK is set.
type Result struct {
	Text  string
	Value float64
	OK    bool
}

// Evaluate evaluates text and returns the display string: a formatted number, "Error: Div by 0",
// or "Error". Blank input yields "".
func (e *Engine) Evaluate(text string) string { return e.EvaluateResult(text).Text }

// EvaluateResult is Evaluate keeping the value the display string was formatted from.
func (e *Engine) EvaluateResult(text string) (res Result) {
	if strings.TrimSpace(text) == "" {
		return Result{}
	}
	defer func() {
		if r := recover(); r != nil {
			e.log.Error().Interface("panic", r).Str("expr", text).Msg("evaluation panicked")
			res = Result{Text: msgError}
		}
	}()

	v, err := e.Calculate(text)
	if err != nil {
		e.log.Debug().Err(err).Str("expr", text).Msg("evaluation failed")
		return Result{Text: Message(err)}
	}
	res = Result{Text: e.Format(v), Value: v, OK: true}
	e.log.Debug().Str("expr", text).Str("result", res.Text).Msg("evaluated")
	return res
}

// Format renders v with the engine's precision.
func (e *Engine) Format(v float64) string { return FormatPrec(v, e.prec) }

// SolveLinear solves a*x + b = 0 and returns the formatted root or "No Solution".
func (e *Engine) SolveLinear(a, b float64) string {
	x, err := solve.Linear(a, b)
	if err != nil {
		e.log.Debug().Err(err).Float64("a", a).Float64("b", b).Msg("linear solve failed")
		return solve.Message(err)
	}
	return e.Format(Snap(x))
}

// SolveQuadratic solves a*x^2 + b*x + c = 0 and returns both roots joined by ", ". A zero leading
// coefficient falls back to the linear solver.
func (e *Engine) SolveQuadratic(a, b, c float64) string {
	res, err := solve.Quadratic(a, b, c)
	if errors.Is(err, solve.ErrDegenerateEquation) {
		e.log.Debug().Float64("b", b).Float64("c", c).Msg("degenerate quadratic, solving linear")
		return e.SolveLinear(b, c)
	}
	if err != nil {
		e.log.Debug().Err(err).Msg("quadratic solve failed")
		return solve.Message(err)
	}
	return res.String()
}
