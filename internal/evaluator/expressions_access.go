package evaluator

import (
	"github.com/funvibe/patlang/internal/ast"
)

func (e *Evaluator) evalAssignExpression(node *ast.AssignExpression, env *Environment) Object {
	val := e.Eval(node.Value, env)
	if isSignal(val) {
		return val
	}

	switch target := node.Target.(type) {
	case *ast.Identifier:
		env.Assign(target.Value, val)
		return val

	case *ast.MemberExpression:
		obj := e.Eval(target.Object, env)
		if isSignal(obj) {
			return obj
		}
		switch o := obj.(type) {
		case *PatternInstance:
			if i := o.Def.FieldIndex(target.Name); i >= 0 {
				o.Fields[i] = val
				return val
			}
		case *Scope:
			o.Env.Assign(target.Name, val)
			return val
		case *Module:
			o.Env.Assign(target.Name, val)
			return val
		case *Tuple:
			for i := range o.Elements {
				if o.NameOf(i) == target.Name {
					o.Elements[i] = val
					return val
				}
			}
		}
		return newError(target.Token, "cannot assign to member")

	case *ast.IndexExpression:
		obj := e.Eval(target.Object, env)
		if isSignal(obj) {
			return obj
		}
		idx := e.Eval(target.Index, env)
		if isSignal(idx) {
			return idx
		}
		tuple, okT := obj.(*Tuple)
		index, okI := idx.(*Integer)
		if okT && okI {
			i := index.Value
			if i < 0 {
				i += int64(len(tuple.Elements))
			}
			if i < 0 || i >= int64(len(tuple.Elements)) {
				return newError(target.Token, "tuple index out of range")
			}
			tuple.Elements[i] = val
			return val
		}
		return newError(target.Token, "index assignment not supported for this type")
	}

	return newError(node.Token, "invalid assignment target")
}

func (e *Evaluator) evalMemberExpression(node *ast.MemberExpression, env *Environment) Object {
	obj := e.Eval(node.Object, env)
	if isSignal(obj) {
		return obj
	}

	switch o := obj.(type) {
	case *PatternInstance:
		if i := o.Def.FieldIndex(node.Name); i >= 0 {
			return o.Fields[i]
		}
	case *Scope:
		if v, ok := o.Env.Get(node.Name); ok {
			return v
		}
	case *Module:
		if v, ok := o.Env.Get(node.Name); ok {
			return v
		}
	case *Tuple:
		for i := range o.Elements {
			if o.NameOf(i) == node.Name {
				return o.Elements[i]
			}
		}
	}
	return newError(node.Token, "no member '%s'", node.Name)
}

func (e *Evaluator) evalIndexExpression(node *ast.IndexExpression, env *Environment) Object {
	obj := e.Eval(node.Object, env)
	if isSignal(obj) {
		return obj
	}
	idx := e.Eval(node.Index, env)
	if isSignal(idx) {
		return idx
	}

	tuple, okT := obj.(*Tuple)
	index, okI := idx.(*Integer)
	if okT && okI {
		i := index.Value
		if i < 0 {
			i += int64(len(tuple.Elements))
		}
		if i < 0 || i >= int64(len(tuple.Elements)) {
			return newError(node.Token, "tuple index out of range")
		}
		return tuple.Elements[i]
	}
	return newError(node.Token, "index not supported for this type")
}

// evalTupleLiteral builds a tuple value. An element may be named three
// ways: by the parser (name: expr), as a name = expr assignment, or as a
// name:type annotation from a return tuple.
func (e *Evaluator) evalTupleLiteral(node *ast.TupleLiteral, env *Environment) Object {
	t := &Tuple{Elements: make([]Object, len(node.Elements))}
	names := make([]string, len(node.Elements))
	haveNames := false

	for i, child := range node.Elements {
		if node.Names != nil && node.Names[i] != "" {
			names[i] = node.Names[i]
			haveNames = true
		}

		var val Object
		switch el := child.(type) {
		case *ast.AssignExpression:
			if ident, ok := el.Target.(*ast.Identifier); ok {
				names[i] = ident.Value
				haveNames = true
				val = e.Eval(el.Value, env)
			} else {
				val = e.Eval(el, env)
			}
		case *ast.TypeAnnotation:
			if el.Name != "" {
				names[i] = el.Name
				haveNames = true
			}
			val = e.Eval(el, env)
		default:
			val = e.Eval(child, env)
		}
		if isSignal(val) {
			return val
		}
		t.Elements[i] = val
	}

	if haveNames {
		t.Names = names
	}
	return t
}

// evalTemplateInstantiation: template arguments are retained but not
// checked. A postfix instantiation evaluates to its base; the bare
// prefix form yields a type value for its first argument.
func (e *Evaluator) evalTemplateInstantiation(node *ast.TemplateInstantiation, env *Environment) Object {
	if node.Base != nil {
		return e.Eval(node.Base, env)
	}
	if len(node.Args) > 0 {
		if ta, ok := node.Args[0].(*ast.TypeAnnotation); ok && ta.TypeName != "" {
			return &TypeValue{Name: ta.TypeName}
		}
	}
	return NIL
}
