// Command calceval evaluates one expression, or solves one equation, and prints the result.
//
//	calceval [-mode deg|rad] EXPR...
//	calceval -linear A B
//	calceval -quadratic A B C
//
// Flag parsing stops at the first argument that starts with a minus sign followed by a digit, a
// dot or a parenthesis, so negative operands need no "--". Anything else starting with a minus,
// such as -cos(0), still needs "--". It exits 1 when the result is an error.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"sparkcalc/calc"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("calceval", flag.ContinueOnError)
	fs.SetOutput(stderr)
	mode := fs.String("mode", "deg", "angle mode: deg or rad")
	linear := fs.Bool("linear", false, "solve A*x + B = 0")
	quadratic := fs.Bool("quadratic", false, "solve A*x^2 + B*x + C = 0")
	logLevel := fs.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags, operands := splitOperands(args)
	if err := fs.Parse(flags); err != nil {
		return 2
	}
	operands = append(append([]string(nil), fs.Args()...), operands...)

	m, err := calc.ParseAngleMode(*mode)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).
		With().Timestamp().Str("service", "calceval").Logger().
		Level(level)
	engine := calc.NewEngine(calc.Config{AngleMode: m}, logger)

	var out string
	switch {
	case *linear && *quadratic:
		fmt.Fprintln(stderr, "calceval: -linear and -quadratic are exclusive")
		return 2
	case *linear, *quadratic:
		want := 2
		if *quadratic {
			want = 3
		}
		coef, err := parseCoefficients(operands, want)
		if err != nil {
			fmt.Fprintln(stderr, "calceval:", err)
			return 2
		}
		if *linear {
			out = engine.SolveLinear(coef[0], coef[1])
		} else {
			out = engine.SolveQuadratic(coef[0], coef[1], coef[2])
		}
		if out == "No Solution" {
			fmt.Fprintln(stdout, out)
			return 1
		}
	default:
		expr := strings.Join(operands, " ")
		if strings.TrimSpace(expr) == "" {
			fmt.Fprintln(stderr, "usage: calceval [-mode deg|rad] EXPR")
			return 2
		}
		out = engine.Evaluate(expr)
	}

	fmt.Fprintln(stdout, out)
	if calc.IsErrorMessage(out) {
		return 1
	}
	return 0
}

// splitOperands cuts args before the first negative number or negated expression.
func splitOperands(args []string) (flags, operands []string) {
	for i, a := range args {
		if a == "--" {
			break
		}
		if len(a) > 1 && a[0] == '-' && strings.ContainsRune("0123456789.(", rune(a[1])) {
			return args[:i], args[i:]
		}
	}
	return args, nil
}

func parseCoefficients(args []string, want int) ([]float64, error) {
	if len(args) != want {
		return nil, fmt.Errorf("want %d coefficients, got %d", want, len(args))
	}
	out := make([]float64, want)
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("coefficient %q: %w", a, err)
		}
		out[i] = v
	}
	return out, nil
}
