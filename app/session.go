package app

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"sparkcalc/calc"
	"sparkcalc/internal/buildinfo"
)

const (
	msgInvalidInput = "Invalid Input"
	msgNoHistory    = "No history yet."
)

// chainPrefixes start a line that continues from the previous result.
var chainPrefixes = []string{"+", "*", "/", "^", "×", "÷", "²", "³"}

var helpLines = []string{
	"enter an expression, e.g. 2+3*4 or sin(90)",
	"a line starting with an operator continues from the last result (*2)",
	":deg, :rad      set the angle mode",
	":mode           toggle the angle mode",
	":lin a b        solve a*x + b = 0",
	":quad a b c     solve a*x^2 + b*x + c = 0",
	":hist           show recent calculations",
	":clear          forget history and the last result",
	":prog           show the last result in binary and hex",
	":version        print the build",
	":quit           leave",
}

// Session turns input lines into output lines on top of a shared Engine. The angle mode lives in
// the Engine, so sessions sharing one see each other's mode changes. A Session itself is not safe
// for concurrent use.
type Session struct {
	ID string

	engine *calc.Engine
	hist   *History
	log    zerolog.Logger

	last     string
	bin, hex string
	done     bool
}

func NewSession(engine *calc.Engine, historySize int, log zerolog.Logger) *Session {
	id := uuid.New().String()
	return &Session{
		ID:     id,
		engine: engine,
		hist:   NewHistory(historySize),
		log:    log.With().Str("session", id).Logger(),
		bin:    "0",
		hex:    "0",
	}
}

// Handle processes one line and returns what should be shown for it.
func (s *Session) Handle(line string) []string {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	if strings.HasPrefix(line, ":") {
		return s.command(strings.TrimSpace(line[1:]))
	}
	return []string{s.evaluate(line)}
}

// Done reports whether :quit was entered.
func (s *Session) Done() bool { return s.done }

func (s *Session) History() *History { return s.hist }

// Last returns the most recent successful result, or "" when there is none.
func (s *Session) Last() string { return s.last }

// Radix returns the binary and hexadecimal view of the last result. Both are empty when that
// result is not an integer representable as int64.
func (s *Session) Radix() (bin, hex string) { return s.bin, s.hex }

func (s *Session) evaluate(line string) string {
	expr := line
	if s.last != "" && chains(line) {
		expr = "(" + s.last + ")" + line
	}

	res := s.engine.EvaluateResult(expr)
	if !res.OK {
		s.log.Debug().Str("expr", expr).Str("result", res.Text).Msg("evaluation rejected")
		s.last = ""
		return res.Text
	}

	s.hist.Push(HistoryEntry{Expression: expr, Result: res.Text})
	s.last = res.Text
	s.bin, s.hex, _ = calc.RadixView(res.Value)
	return res.Text
}

func chains(line string) bool {
	for _, p := range chainPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

func (s *Session) command(cmdline string) []string {
	fields := strings.Fields(cmdline)
	if len(fields) == 0 {
		return []string{"usage: :help"}
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "deg":
		s.engine.SetAngleMode(calc.Degrees)
		return []string{"mode: " + calc.Degrees.String()}
	case "rad":
		s.engine.SetAngleMode(calc.Radians)
		return []string{"mode: " + calc.Radians.String()}
	case "mode":
		return []string{"mode: " + s.engine.ToggleAngleMode().String()}
	case "lin":
		if len(args) != 2 {
			return []string{"usage: :lin a b"}
		}
		v, ok := parseCoefficients(args)
		if !ok {
			return []string{msgInvalidInput}
		}
		return []string{"x = " + s.engine.SolveLinear(v[0], v[1])}
	case "quad":
		if len(args) != 3 {
			return []string{"usage: :quad a b c"}
		}
		v, ok := parseCoefficients(args)
		if !ok {
			return []string{msgInvalidInput}
		}
		return []string{"Roots: " + s.engine.SolveQuadratic(v[0], v[1], v[2])}
	case "hist", "history":
		entries := s.hist.Entries()
		if len(entries) == 0 {
			return []string{msgNoHistory}
		}
		out := make([]string, len(entries))
		for i, e := range entries {
			out[i] = e.String()
		}
		return out
	case "clear":
		s.hist.Clear()
		s.last = ""
		s.bin, s.hex = "0", "0"
		return []string{"cleared"}
	case "prog":
		return []string{"BIN: " + s.bin, "HEX: " + s.hex}
	case "help":
		out := make([]string, 0, len(helpLines)+1)
		out = append(out, helpLines[0], "names: "+strings.Join(calc.Names(), " "))
		return append(out, helpLines[1:]...)
	case "version":
		return []string{buildinfo.String()}
	case "quit", "exit", "q":
		s.done = true
		return nil
	default:
		return []string{fmt.Sprintf("unknown command %q (try :help)", cmd)}
	}
}

func parseCoefficients(args []string) ([]float64, bool) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}
