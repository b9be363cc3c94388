package evaluator

import (
	"github.com/funvibe/patlang/internal/ast"
)

func (e *Evaluator) evalPrefixExpression(node *ast.PrefixExpression, env *Environment) Object {
	right := e.Eval(node.Right, env)
	if isSignal(right) {
		return right
	}

	switch node.Operator {
	case "-":
		switch v := right.(type) {
		case *Integer:
			return &Integer{Value: -v.Value}
		case *Float:
			return &Float{Value: -v.Value}
		}
	case "!":
		return nativeBoolToBooleanObject(!isTruthy(right))
	case "~":
		if v, ok := right.(*Integer); ok {
			return &Integer{Value: ^v.Value}
		}
	}
	return newError(node.Token, "unsupported unary op")
}

func (e *Evaluator) evalInfixExpression(node *ast.InfixExpression, env *Environment) Object {
	left := e.Eval(node.Left, env)
	if isSignal(left) {
		return left
	}

	// && and || short-circuit
	switch node.Operator {
	case "&&":
		if !isTruthy(left) {
			return FALSE
		}
		right := e.Eval(node.Right, env)
		if isSignal(right) {
			return right
		}
		return nativeBoolToBooleanObject(isTruthy(right))
	case "||":
		if isTruthy(left) {
			return TRUE
		}
		right := e.Eval(node.Right, env)
		if isSignal(right) {
			return right
		}
		return nativeBoolToBooleanObject(isTruthy(right))
	}

	right := e.Eval(node.Right, env)
	if isSignal(right) {
		return right
	}
	return e.evalInfixOperands(node, left, right)
}

func (e *Evaluator) evalInfixOperands(node *ast.InfixExpression, left, right Object) Object {
	op := node.Operator

	switch op {
	case "==":
		return nativeBoolToBooleanObject(objectsEqual(left, right))
	case "!=":
		return nativeBoolToBooleanObject(!objectsEqual(left, right))
	}

	li, lInt := left.(*Integer)
	ri, rInt := right.(*Integer)
	if lInt && rInt {
		return e.evalIntegerInfix(node, li.Value, ri.Value)
	}

	lf, lFloat := left.(*Float)
	rf, rFloat := right.(*Float)
	if (lInt || lFloat) && (rInt || rFloat) {
		var a, b float64
		if lFloat {
			a = lf.Value
		} else {
			a = float64(li.Value)
		}
		if rFloat {
			b = rf.Value
		} else {
			b = float64(ri.Value)
		}
		return e.evalFloatInfix(node, a, b)
	}

	if ls, ok := left.(*String); ok {
		if rs, ok := right.(*String); ok && op == "+" {
			return &String{Value: ls.Value + rs.Value}
		}
	}

	return newError(node.Token, "unsupported binary operation")
}

func (e *Evaluator) evalIntegerInfix(node *ast.InfixExpression, a, b int64) Object {
	switch node.Operator {
	case "+":
		return &Integer{Value: a + b}
	case "-":
		return &Integer{Value: a - b}
	case "*":
		return &Integer{Value: a * b}
	case "/":
		if b == 0 {
			return newError(node.Token, "division by zero")
		}
		return &Integer{Value: a / b}
	case "%":
		if b == 0 {
			return newError(node.Token, "modulo by zero")
		}
		return &Integer{Value: a % b}
	case "&":
		return &Integer{Value: a & b}
	case "|":
		return &Integer{Value: a | b}
	case "^":
		return &Integer{Value: a ^ b}
	case "<<":
		return &Integer{Value: a << uint64(b)}
	case ">>":
		return &Integer{Value: a >> uint64(b)}
	case "<":
		return nativeBoolToBooleanObject(a < b)
	case ">":
		return nativeBoolToBooleanObject(a > b)
	case "<=":
		return nativeBoolToBooleanObject(a <= b)
	case ">=":
		return nativeBoolToBooleanObject(a >= b)
	}
	return newError(node.Token, "unsupported binary operation")
}

func (e *Evaluator) evalFloatInfix(node *ast.InfixExpression, a, b float64) Object {
	switch node.Operator {
	case "+":
		return &Float{Value: a + b}
	case "-":
		return &Float{Value: a - b}
	case "*":
		return &Float{Value: a * b}
	case "/":
		return &Float{Value: a / b}
	case "<":
		return nativeBoolToBooleanObject(a < b)
	case ">":
		return nativeBoolToBooleanObject(a > b)
	case "<=":
		return nativeBoolToBooleanObject(a <= b)
	case ">=":
		return nativeBoolToBooleanObject(a >= b)
	}
	// notably % on floats is unsupported
	return newError(node.Token, "unsupported binary operation")
}

func (e *Evaluator) evalTernaryExpression(node *ast.TernaryExpression, env *Environment) Object {
	cond := e.Eval(node.Condition, env)
	if isSignal(cond) {
		return cond
	}
	if isTruthy(cond) {
		return e.Eval(node.Then, env)
	}
	if node.Else != nil {
		return e.Eval(node.Else, env)
	}
	return NIL
}
