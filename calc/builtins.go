package calc

import "math"

// Builtin is the closed set of functions an expression may call.
type Builtin uint8

const (
	FuncSqrt Builtin = iota + 1
	FuncAbs
	FuncFact
	FuncLog
	FuncLn
	FuncExp
	FuncSin
	FuncCos
	FuncTan
	FuncAsin
	FuncAcos
	FuncAtan
)

// Constant is the closed set of named constants.
type Constant uint8

const (
	ConstPi Constant = iota + 1
	ConstE
)

// angleUse says where the angle mode enters a function: its argument or its result.
type angleUse uint8

const (
	angleNone angleUse = iota
	angleArg
	angleResult
)

// builtinInfo describes a callable in the built-in table.
type builtinInfo struct {
	name  string
	arity int
	angle angleUse
}

var builtinTable = [...]builtinInfo{
	FuncSqrt: {name: "sqrt", arity: 1},
	FuncAbs:  {name: "abs", arity: 1},
	FuncFact: {name: "fact", arity: 1},
	FuncLog:  {name: "log", arity: 1},
	FuncLn:   {name: "ln", arity: 1},
	FuncExp:  {name: "exp", arity: 1},
	FuncSin:  {name: "sin", arity: 1, angle: angleArg},
	FuncCos:  {name: "cos", arity: 1, angle: angleArg},
	FuncTan:  {name: "tan", arity: 1, angle: angleArg},
	FuncAsin: {name: "asin", arity: 1, angle: angleResult},
	FuncAcos: {name: "acos", arity: 1, angle: angleResult},
	FuncAtan: {name: "atan", arity: 1, angle: angleResult},
}

var constantTable = [...]struct {
	name  string
	value float64
}{
	ConstPi: {name: "pi", value: math.Pi},
	ConstE:  {name: "e", value: math.E},
}

func (f Builtin) valid() bool { return f >= FuncSqrt && int(f) < len(builtinTable) }

func (f Builtin) String() string {
	if !f.valid() {
		return "?"
	}
	return builtinTable[f].name
}

// Arity is the number of arguments f takes.
func (f Builtin) Arity() int {
	if !f.valid() {
		return 0
	}
	return builtinTable[f].arity
}

// angleRole reports where the angle mode enters f, angleNone for every function it does not affect.
func (f Builtin) angleRole() angleUse {
	if !f.valid() {
		return angleNone
	}
	return builtinTable[f].angle
}

func (c Constant) valid() bool { return c >= ConstPi && int(c) < len(constantTable) }

func (c Constant) String() string {
	if !c.valid() {
		return "?"
	}
	return constantTable[c].name
}

func (c Constant) Value() float64 {
	if !c.valid() {
		return math.NaN()
	}
	return constantTable[c].value
}

// BindingKind tells whether a name resolves to a constant or a function.
type BindingKind uint8

const (
	BindConstant BindingKind = iota + 1
	BindFunction
)

// Binding is the result of resolving a name against the built-in table.
type Binding struct {
	Kind  BindingKind
	Const Constant
	Func  Builtin
}

var names = func() map[string]Binding {
	m := make(map[string]Binding, len(builtinTable)+len(constantTable))
	for i := range builtinTable {
		f := Builtin(i)
		if f.valid() {
			m[f.String()] = Binding{Kind: BindFunction, Func: f}
		}
	}
	for i := range constantTable {
		c := Constant(i)
		if c.valid() {
			m[c.String()] = Binding{Kind: BindConstant, Const: c}
		}
	}
	return m
}()

func lookupName(name string) (Binding, bool) {
	b, ok := names[name]
	return b, ok
}

// Names returns every name an expression may reference.
func Names() []string {
	out := make([]string, 0, len(names))
	for i := range builtinTable {
		if f := Builtin(i); f.valid() {
			out = append(out, f.String())
		}
	}
	for i := range constantTable {
		if c := Constant(i); c.valid() {
			out = append(out, c.String())
		}
	}
	return out
}
