// Package calc implements the calculator engine: a tokenizer, a recursive-descent parser and an
// evaluator for real-valued expressions, with a degrees/radians angle mode and a canonical result
// formatter.
//
// Nothing here hands user input to an interpreter. Every name an expression can reference is part
// of a closed built-in table, resolved at parse time.
package calc
