package evaluator

import (
	"strconv"
	"strings"

	"github.com/funvibe/patlang/internal/ast"
	"github.com/funvibe/patlang/internal/token"
)

func (e *Evaluator) evalCallExpression(node *ast.CallExpression, env *Environment) Object {
	callee := e.Eval(node.Callee, env)
	if isSignal(callee) {
		return callee
	}

	args := make([]Object, 0, len(node.Arguments))
	for _, argNode := range node.Arguments {
		arg := e.Eval(argNode, env)
		if isSignal(arg) {
			return arg
		}
		args = append(args, arg)
	}

	return e.ApplyFunction(callee, args, node.Token)
}

// ApplyFunction dispatches a call on the callee's kind: builtin, user
// function, pattern constructor, or type conversion.
func (e *Evaluator) ApplyFunction(fn Object, args []Object, tok token.Token) Object {
	switch fn := fn.(type) {
	case *Builtin:
		result := fn.Fn(e, args...)
		if result == nil {
			return NIL
		}
		if err, ok := result.(*Error); ok && err.Line == 0 {
			err.Line = tok.Line
			err.Column = tok.Column
		}
		return result

	case *Function:
		callEnv := NewEnclosedEnvironment(fn.Env)
		for i, param := range fn.Decl.Parameters {
			name := param.Name
			if name == "" {
				name = "_"
			}
			if i < len(args) {
				callEnv.Define(name, args[i])
			} else {
				callEnv.Define(name, NIL)
			}
		}
		// excess arguments are silently discarded

		var result Object = NIL
		if fn.Decl.Body != nil {
			result = e.evalBlock(fn.Decl.Body.Statements, callEnv)
		}
		if rv, ok := result.(*ReturnValue); ok {
			return rv.Value
		}
		return result

	case *Module:
		if fn.Def != nil {
			return newPatternInstance(fn.Def, args)
		}

	case *TypeValue:
		if fn.Def != nil {
			return newPatternInstance(fn.Def, args)
		}
		if len(args) == 1 {
			return convertToType(fn.Name, args[0])
		}
		return NIL
	}

	return newError(tok, "not a callable value")
}

func newPatternInstance(def *PatternDef, args []Object) *PatternInstance {
	inst := &PatternInstance{Def: def, Fields: make([]Object, len(def.Fields))}
	for i := range def.Fields {
		if i < len(args) {
			inst.Fields[i] = args[i]
		} else {
			inst.Fields[i] = NIL
		}
	}
	return inst
}

// convertToType is the one-argument conversion behind calling a type
// value, dispatched on the type name's first character.
func convertToType(typeName string, arg Object) Object {
	switch {
	case strings.HasPrefix(typeName, "i"), strings.HasPrefix(typeName, "u"):
		switch v := arg.(type) {
		case *Integer:
			return &Integer{Value: v.Value}
		case *Float:
			return &Integer{Value: int64(v.Value)}
		case *String:
			n, _ := strconv.ParseInt(strings.TrimSpace(v.Value), 10, 64)
			return &Integer{Value: n}
		}
	case strings.HasPrefix(typeName, "f"):
		switch v := arg.(type) {
		case *Float:
			return &Float{Value: v.Value}
		case *Integer:
			return &Float{Value: float64(v.Value)}
		case *String:
			f, _ := strconv.ParseFloat(strings.TrimSpace(v.Value), 64)
			return &Float{Value: f}
		}
	case typeName == "string":
		return &String{Value: arg.Inspect()}
	}
	return NIL
}
