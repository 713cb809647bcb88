package calc

import (
	"fmt"
	"strconv"
	"strings"
)

// NodeString renders n as infix text that parses back to an equivalent tree.
func NodeString(n Node) string {
	return nodeStringPrec(n, 0)
}

func nodeStringPrec(n Node, parentPrec int) string {
	switch nn := n.(type) {
	case NumberLit:
		s := strconv.FormatFloat(nn.Value, 'g', -1, 64)
		if strings.HasPrefix(s, "-") && parentPrec >= 4 {
			return "(" + s + ")"
		}
		return s
	case ConstRef:
		return nn.Const.String()
	case UnaryOp:
		prec := 4
		s := string(nn.Op) + nodeStringPrec(nn.X, prec)
		if prec < parentPrec {
			return "(" + s + ")"
		}
		return s
	case BinaryOp:
		prec := binPrec(nn.Op)
		leftPrec := prec
		rightPrec := prec + 1
		if nn.Op == '^' {
			// Right-associative, and binds tighter than unary minus on its left.
			leftPrec = prec + 2
			rightPrec = prec
		}
		s := fmt.Sprintf("%s %c %s", nodeStringPrec(nn.Left, leftPrec), nn.Op, nodeStringPrec(nn.Right, rightPrec))
		if prec < parentPrec {
			return "(" + s + ")"
		}
		return s
	case Call:
		args := make([]string, len(nn.Args))
		for i, a := range nn.Args {
			args[i] = nodeStringPrec(a, 0)
		}
		return nn.Func.String() + "(" + strings.Join(args, ", ") + ")"
	default:
		return "<?>"
	}
}

func binPrec(op byte) int {
	switch op {
	case '+', '-':
		return 1
	case '*', '/':
		return 2
	case '^':
		return 3
	default:
		return 0
	}
}
