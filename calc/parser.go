package calc

type parser struct {
	toks   []Token
	pos    int
	depth  int
	lookup func(name string) (Binding, bool)
}

// ParseString tokenizes and parses s.
func ParseString(s string) (Node, error) {
	toks, err := Tokenize(s)
	if err != nil {
		return nil, err
	}
	return Parse(toks)
}

// Parse builds an expression tree from tokens. A missing trailing TokEnd is implied.
//
// Grammar, lowest precedence first:
//
//	expr    := term (('+'|'-') term)*
//	term    := unary (('*'|'/') unary)*
//	unary   := ('-'|'+') unary | power
//	power   := primary ('^' unary)*      right-associative
//	primary := NUMBER | CONST | FUNC '(' expr (',' expr)* ')' | '(' expr ')'
func Parse(tokens []Token) (Node, error) { return parseIn(tokens, Env{}) }

// parseIn parses tokens, resolving names through env.
func parseIn(tokens []Token, env Env) (Node, error) {
	if n := len(tokens); n == 0 || tokens[n-1].Kind != TokEnd {
		end := 0
		if n > 0 {
			last := tokens[n-1]
			end = last.Offset + len(last.Text)
		}
		tokens = append(tokens[:n:n], Token{Kind: TokEnd, Offset: end})
	}

	p := &parser{toks: tokens, lookup: env.Lookup}
	ex, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	switch cur := p.cur(); cur.Kind {
	case TokEnd:
		return ex, nil
	case TokRParen:
		return nil, &ParseError{Kind: ErrUnbalancedParens, Token: cur.Text, Offset: cur.Offset}
	default:
		return nil, p.unexpected()
	}
}

func (p *parser) cur() Token { return p.toks[p.pos] }

func (p *parser) next() {
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
}

func (p *parser) isOp(ops string) bool {
	t := p.cur()
	if t.Kind != TokOperator || len(t.Text) != 1 {
		return false
	}
	for i := 0; i < len(ops); i++ {
		if t.Text[0] == ops[i] {
			return true
		}
	}
	return false
}

func (p *parser) unexpected() error {
	t := p.cur()
	if t.Kind == TokEnd && p.depth > 0 {
		return &ParseError{Kind: ErrUnbalancedParens, Offset: t.Offset}
	}
	return &ParseError{Kind: ErrUnexpectedToken, Token: t.Text, Offset: t.Offset}
}

func (p *parser) parseExpr() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.isOp("+-") {
		op := p.cur().Text[0]
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = BinaryOp{Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseTerm() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.isOp("*/") {
		op := p.cur().Text[0]
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = BinaryOp{Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (Node, error) {
	if p.isOp("+-") {
		op := p.cur().Text[0]
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return UnaryOp{Op: op, X: x}, nil
	}
	return p.parsePower()
}

func (p *parser) parsePower() (Node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.isOp("^") {
		p.next()
		exp, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return BinaryOp{Op: '^', Left: base, Right: exp}, nil
	}
	return base, nil
}

func (p *parser) parsePrimary() (Node, error) {
	t := p.cur()
	switch t.Kind {
	case TokNumber:
		p.next()
		return NumberLit{Value: t.Value}, nil
	case TokIdent:
		return p.parseName()
	case TokLParen:
		p.next()
		p.depth++
		ex, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.closeParen(); err != nil {
			return nil, err
		}
		return ex, nil
	case TokOperator:
		if p.isOp("+-") {
			return p.parseUnary()
		}
		return nil, p.unexpected()
	case TokRParen:
		if p.depth == 0 {
			return nil, &ParseError{Kind: ErrUnbalancedParens, Token: t.Text, Offset: t.Offset}
		}
		return nil, p.unexpected()
	default:
		return nil, p.unexpected()
	}
}

func (p *parser) closeParen() error {
	if p.cur().Kind != TokRParen {
		return p.unexpected()
	}
	p.next()
	p.depth--
	return nil
}

func (p *parser) parseName() (Node, error) {
	t := p.cur()
	b, ok := p.lookup(t.Text)
	if !ok {
		return nil, &ParseError{Kind: ErrUnknownFunction, Name: t.Text, Token: t.Text, Offset: t.Offset}
	}
	p.next()

	if b.Kind == BindConstant {
		if p.cur().Kind == TokLParen {
			return nil, p.unexpected()
		}
		return ConstRef{Const: b.Const}, nil
	}

	if p.cur().Kind != TokLParen {
		return nil, p.unexpected()
	}
	p.next()
	p.depth++

	var args []Node
	if p.cur().Kind != TokRParen {
		for {
			ex, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, ex)
			if p.cur().Kind == TokComma {
				p.next()
				continue
			}
			break
		}
	}
	if err := p.closeParen(); err != nil {
		return nil, err
	}
	if len(args) != b.Func.Arity() {
		return nil, &ParseError{
			Kind:     ErrArityMismatch,
			Name:     t.Text,
			Token:    t.Text,
			Expected: b.Func.Arity(),
			Got:      len(args),
			Offset:   t.Offset,
		}
	}
	return Call{Func: b.Func, Args: args}, nil
}
