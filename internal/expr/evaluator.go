package expr

import (
	"math"

	"github.com/vtsim/paramsub"
)

// Evaluator is the default paramsub.Evaluator: straightforward
// arithmetic reduction, no units tracking beyond what the literal
// scanner already folded into the numeric value.
type Evaluator struct{}

// Evaluate implements paramsub.Evaluator.
func (Evaluator) Evaluate(tree paramsub.ExprTree) (value float64, units string, ok bool) {
	t, isOurs := tree.(*Tree)
	if !isOurs || t.root == nil {
		return 0, "", false
	}
	v, ok := eval(t.root)
	return v, "", ok
}

func eval(n node) (float64, bool) {
	switch v := n.(type) {
	case numberNode:
		return v.value, true
	case identNode:
		return 0, false
	case unaryOpNode:
		x, ok := eval(v.operand)
		if !ok {
			return 0, false
		}
		if v.op == '-' {
			return -x, true
		}
		return x, true
	case binOpNode:
		l, ok := eval(v.left)
		if !ok {
			return 0, false
		}
		r, ok := eval(v.right)
		if !ok {
			return 0, false
		}
		switch v.op {
		case '+':
			return l + r, true
		case '-':
			return l - r, true
		case '*':
			return l * r, true
		case '/':
			if r == 0 {
				return 0, false
			}
			return l / r, true
		case '^':
			return math.Pow(l, r), true
		}
	}
	return 0, false
}
