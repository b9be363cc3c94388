package evaluator

import (
	"github.com/funvibe/patlang/internal/ast"
)

// evalForExpression: for (name : iterable) { body }. A tuple iterates
// its elements; an integer N iterates 0..N-1. The loop's value is the
// last yielded value, or null.
func (e *Evaluator) evalForExpression(node *ast.ForExpression, env *Environment) Object {
	iterable := e.Eval(node.Iterable, env)
	if isSignal(iterable) {
		return iterable
	}

	itemName := node.ItemName
	if itemName == "" {
		itemName = "_"
	}
	var result Object = NIL

	runBody := func(item Object) (Object, bool) {
		loopEnv := NewEnclosedEnvironment(env)
		loopEnv.Define(itemName, item)
		r := e.evalBlock(node.Body.Statements, loopEnv)
		switch r := r.(type) {
		case *BreakSignal:
			return nil, true
		case *YieldSignal:
			result = r.Value
			return nil, false
		case *ReturnValue, *Error:
			return r, true
		}
		return nil, false
	}

	switch it := iterable.(type) {
	case *Tuple:
		for _, el := range it.Elements {
			if out, stop := runBody(el); stop {
				if out != nil {
					return out
				}
				return result
			}
		}
	case *Integer:
		for i := int64(0); i < it.Value; i++ {
			if out, stop := runBody(&Integer{Value: i}); stop {
				if out != nil {
					return out
				}
				return result
			}
		}
	}
	return result
}

// evalWhileExpression: an optional leading condition is checked before
// each iteration, an optional trailing condition after. A yield skips
// the trailing check and continues.
func (e *Evaluator) evalWhileExpression(node *ast.WhileExpression, env *Environment) Object {
	var result Object = NIL
	for {
		if node.Condition != nil {
			cond := e.Eval(node.Condition, env)
			if isSignal(cond) {
				return cond
			}
			if !isTruthy(cond) {
				break
			}
		}

		loopEnv := NewEnclosedEnvironment(env)
		r := e.evalBlock(node.Body.Statements, loopEnv)
		if _, ok := r.(*BreakSignal); ok {
			break
		}
		if ys, ok := r.(*YieldSignal); ok {
			result = ys.Value
			continue
		}
		if isSignal(r) {
			return r
		}

		if node.PostCond != nil {
			cond := e.Eval(node.PostCond, env)
			if isSignal(cond) {
				return cond
			}
			if !isTruthy(cond) {
				break
			}
		}
	}
	return result
}

// evalSwitchExpression: the selector is evaluated once; the first
// matching case body runs in a child environment and its value becomes
// the switch's value. A break signal is consumed; there is no
// fall-through.
func (e *Evaluator) evalSwitchExpression(node *ast.SwitchExpression, env *Environment) Object {
	selector := e.Eval(node.Selector, env)
	if isSignal(selector) {
		return selector
	}

	var result Object = NIL
	for _, cas := range node.Cases {
		matched := cas.Condition == nil // default always matches
		if !matched {
			cv := e.Eval(cas.Condition, env)
			if isSignal(cv) {
				return cv
			}
			matched = objectsEqual(selector, cv)
		}
		if matched {
			caseEnv := NewEnclosedEnvironment(env)
			r := e.evalBlock(cas.Body, caseEnv)
			if _, ok := r.(*BreakSignal); ok {
				result = NIL
			} else if isSignal(r) {
				return r
			} else {
				result = r
			}
			break
		}
	}
	return result
}
