package evaluator

import (
	"fmt"

	"github.com/funvibe/patlang/internal/token"
)

var (
	NIL   = &Null{}
	TRUE  = &Boolean{Value: true}
	FALSE = &Boolean{Value: false}
)

func nativeBoolToBooleanObject(input bool) *Boolean {
	if input {
		return TRUE
	}
	return FALSE
}

func newError(tok token.Token, format string, args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(format, args...),
		Line:    tok.Line,
		Column:  tok.Column,
	}
}

func isError(obj Object) bool {
	if obj == nil {
		return false
	}
	return obj.Type() == ERROR_OBJ
}

// isSignal reports whether obj is any non-local control transfer.
func isSignal(obj Object) bool {
	if obj == nil {
		return false
	}
	switch obj.Type() {
	case RETURN_VALUE_OBJ, BREAK_SIGNAL_OBJ, YIELD_SIGNAL_OBJ, ERROR_OBJ:
		return true
	}
	return false
}

// isTruthy: null and false are falsy; zero numbers and the empty string
// are falsy; a not-present optional is falsy; everything else is truthy.
func isTruthy(obj Object) bool {
	switch v := obj.(type) {
	case nil, *Null:
		return false
	case *Boolean:
		return v.Value
	case *Integer:
		return v.Value != 0
	case *Float:
		return v.Value != 0.0
	case *String:
		return v.Value != ""
	case *Optional:
		return v.Present
	default:
		return true
	}
}

// typeName returns the reflective type name used by type_of and type().
func typeName(obj Object) string {
	switch obj.(type) {
	case nil, *Null:
		return "null"
	case *Integer:
		return "int"
	case *Float:
		return "float"
	case *String:
		return "string"
	case *Boolean:
		return "bool"
	case *Tuple:
		return "tuple"
	case *Variant:
		return "variant"
	case *Function:
		return "function"
	case *PatternInstance:
		return "pat_inst"
	case *Scope:
		return "scope"
	case *Builtin:
		return "builtin_fn"
	case *Optional:
		return "optional"
	case *TypeValue:
		return "type"
	case *Module:
		return "module"
	}
	return "unknown"
}

// typeOf builds a reflective type value for v. Pattern instances carry
// their definition so the result can construct further instances.
func typeOf(v Object) *TypeValue {
	switch obj := v.(type) {
	case nil, *Null:
		return &TypeValue{Name: "null"}
	case *Integer:
		return &TypeValue{Name: "i64"}
	case *Float:
		return &TypeValue{Name: "f64"}
	case *String:
		return &TypeValue{Name: "string"}
	case *Boolean:
		return &TypeValue{Name: "bool"}
	case *Tuple:
		return &TypeValue{Name: "tuple"}
	case *Variant:
		return &TypeValue{Name: "variant"}
	case *Scope:
		return &TypeValue{Name: "scope"}
	case *Optional:
		return &TypeValue{Name: "optional"}
	case *TypeValue:
		return &TypeValue{Name: "type"}
	case *Builtin:
		return &TypeValue{Name: "function"}
	case *Function:
		return &TypeValue{Name: obj.Name}
	case *PatternInstance:
		return &TypeValue{Name: obj.Def.Name, Def: obj.Def}
	case *Module:
		return &TypeValue{Name: obj.Name}
	}
	return &TypeValue{Name: "unknown"}
}

// deepCopy is the structural copy behind the copy keyword: scalars and
// strings by value, tuples and pattern instances cloned recursively.
// Other compound values (functions, scopes, modules) stay shared.
func deepCopy(v Object) Object {
	switch obj := v.(type) {
	case nil:
		return NIL
	case *Null:
		return NIL
	case *Integer:
		return &Integer{Value: obj.Value}
	case *Float:
		return &Float{Value: obj.Value}
	case *Boolean:
		return nativeBoolToBooleanObject(obj.Value)
	case *String:
		return &String{Value: obj.Value}
	case *Tuple:
		elems := make([]Object, len(obj.Elements))
		for i, el := range obj.Elements {
			elems[i] = deepCopy(el)
		}
		var names []string
		if obj.Names != nil {
			names = append([]string(nil), obj.Names...)
		}
		return &Tuple{Elements: elems, Names: names}
	case *PatternInstance:
		fields := make([]Object, len(obj.Fields))
		for i, f := range obj.Fields {
			fields[i] = deepCopy(f)
		}
		return &PatternInstance{Def: obj.Def, Fields: fields}
	case *Optional:
		if obj.Present {
			return &Optional{Value: deepCopy(obj.Value), Present: true}
		}
		return &Optional{}
	default:
		return v
	}
}
