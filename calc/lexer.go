package calc

import (
	"errors"
	"strconv"
	"unicode/utf8"
)

type TokenKind uint8

const (
	TokEnd TokenKind = iota
	TokNumber
	TokIdent
	TokOperator
	TokLParen
	TokRParen
	TokComma
)

func (k TokenKind) String() string {
	switch k {
	case TokEnd:
		return "end"
	case TokNumber:
		return "number"
	case TokIdent:
		return "identifier"
	case TokOperator:
		return "operator"
	case TokLParen:
		return "("
	case TokRParen:
		return ")"
	case TokComma:
		return ","
	default:
		return "?"
	}
}

// Token is one lexical unit. Offset is the byte offset of the token in the original input.
type Token struct {
	Kind   TokenKind
	Text   string
	Value  float64
	Offset int
}

// glyphs maps display-only characters to the tokens they stand for. Substitution happens per
// token, so a glyph never merges with a neighbouring identifier.
var glyphs = map[rune][]Token{
	'×': {{Kind: TokOperator, Text: "*"}},
	'·': {{Kind: TokOperator, Text: "*"}},
	'÷': {{Kind: TokOperator, Text: "/"}},
	'−': {{Kind: TokOperator, Text: "-"}},
	'√': {{Kind: TokIdent, Text: "sqrt"}},
	'π': {{Kind: TokIdent, Text: "pi"}},
	'²': {{Kind: TokOperator, Text: "^"}, {Kind: TokNumber, Text: "2", Value: 2}},
	'³': {{Kind: TokOperator, Text: "^"}, {Kind: TokNumber, Text: "3", Value: 3}},
}

type lexer struct {
	s   string
	i   int
	out []Token
}

// Tokenize splits input into tokens. The result always ends with a TokEnd token.
func Tokenize(input string) ([]Token, error) {
	l := &lexer{s: input}
	if err := l.run(); err != nil {
		return nil, err
	}
	return l.out, nil
}

func (l *lexer) emit(kind TokenKind, text string, off int) {
	l.out = append(l.out, Token{Kind: kind, Text: text, Offset: off})
}

func (l *lexer) run() error {
	for l.i < len(l.s) {
		start := l.i
		c := l.s[start]

		switch c {
		case ' ', '\t':
			l.i++
			continue
		case '*':
			if start+1 < len(l.s) && l.s[start+1] == '*' {
				l.i += 2
				l.emit(TokOperator, "^", start)
				continue
			}
			l.i++
			l.emit(TokOperator, "*", start)
			continue
		case '+', '-', '/', '^':
			l.i++
			l.emit(TokOperator, string(c), start)
			continue
		case '(':
			l.i++
			l.emit(TokLParen, "(", start)
			continue
		case ')':
			l.i++
			l.emit(TokRParen, ")", start)
			continue
		case ',':
			l.i++
			l.emit(TokComma, ",", start)
			continue
		}

		switch {
		case c == '.' || isDigit(c):
			if err := l.number(); err != nil {
				return err
			}
		case isLetter(c):
			for l.i < len(l.s) && isLetter(l.s[l.i]) {
				l.i++
			}
			l.emit(TokIdent, l.s[start:l.i], start)
		case c >= utf8.RuneSelf:
			r, size := utf8.DecodeRuneInString(l.s[start:])
			sub, ok := glyphs[r]
			if !ok {
				return &LexError{Char: r, Offset: start}
			}
			l.i += size
			for _, t := range sub {
				t.Offset = start
				l.out = append(l.out, t)
			}
		default:
			return &LexError{Char: rune(c), Offset: start}
		}
	}
	l.emit(TokEnd, "", len(l.s))
	return nil
}

// number scans digits with at most one decimal point and an optional exponent. The exponent is
// only consumed when digits follow it, so "2e" is the number 2 followed by the identifier e.
func (l *lexer) number() error {
	start := l.i
	digits := 0
	seenDot := false
	for l.i < len(l.s) {
		c := l.s[l.i]
		if isDigit(c) {
			digits++
			l.i++
			continue
		}
		if c == '.' {
			if seenDot {
				return &LexError{Char: '.', Offset: l.i}
			}
			seenDot = true
			l.i++
			continue
		}
		break
	}
	if digits == 0 {
		return &LexError{Char: '.', Offset: start}
	}

	if l.i < len(l.s) && (l.s[l.i] == 'e' || l.s[l.i] == 'E') {
		j := l.i + 1
		if j < len(l.s) && (l.s[j] == '+' || l.s[j] == '-') {
			j++
		}
		k := j
		for k < len(l.s) && isDigit(l.s[k]) {
			k++
		}
		if k > j {
			l.i = k
		}
	}

	txt := l.s[start:l.i]
	// Out-of-range literals come back as ±Inf and are rejected by the evaluator.
	v, err := strconv.ParseFloat(txt, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return &LexError{Char: rune(l.s[start]), Offset: start}
	}
	l.out = append(l.out, Token{Kind: TokNumber, Text: txt, Value: v, Offset: start})
	return nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isLetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
