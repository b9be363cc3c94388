package evaluator

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/funvibe/patlang/internal/config"
)

// Builtins is the registry installed into the global environment at
// start-up.
var Builtins = map[string]*Builtin{
	config.PrintFuncName:   {Name: config.PrintFuncName, Fn: builtinPrint},
	config.PrintlnFuncName: {Name: config.PrintlnFuncName, Fn: builtinPrint},
	config.InputFuncName:   {Name: config.InputFuncName, Fn: builtinInput},
	"int":                  {Name: "int", Fn: builtinInt},
	"float":                {Name: "float", Fn: builtinFloat},
	"string":               {Name: "string", Fn: builtinString},
	"bool":                 {Name: "bool", Fn: builtinBool},
	"is_null":              {Name: "is_null", Fn: builtinIsNull},
	"is_int":               {Name: "is_int", Fn: builtinIsInt},
	"is_float":             {Name: "is_float", Fn: builtinIsFloat},
	"is_string":            {Name: "is_string", Fn: builtinIsString},
	config.TypeOfFuncName:  {Name: config.TypeOfFuncName, Fn: builtinTypeOf},
	config.TypeFuncName:    {Name: config.TypeFuncName, Fn: builtinType},
	"abs":                  {Name: "abs", Fn: builtinAbs},
	"sqrt":                 {Name: "sqrt", Fn: builtinSqrt},
	"pow":                  {Name: "pow", Fn: builtinPow},
	"floor":                {Name: "floor", Fn: builtinFloor},
	"ceil":                 {Name: "ceil", Fn: builtinCeil},
	"min":                  {Name: "min", Fn: builtinMin},
	"max":                  {Name: "max", Fn: builtinMax},
	config.LenFuncName:     {Name: config.LenFuncName, Fn: builtinLen},
	"substr":               {Name: "substr", Fn: builtinSubstr},
	"concat":               {Name: "concat", Fn: builtinConcat},
	config.AssertFuncName:  {Name: config.AssertFuncName, Fn: builtinAssert},
	"uuid":                 {Name: "uuid", Fn: builtinUuid},
	"yaml_encode":          {Name: "yaml_encode", Fn: builtinYamlEncode},
	"yaml_decode":          {Name: "yaml_decode", Fn: builtinYamlDecode},
	"yaml_read":            {Name: "yaml_read", Fn: builtinYamlRead},
	"yaml_write":           {Name: "yaml_write", Fn: builtinYamlWrite},
}

// RegisterBuiltins installs the registry into an environment.
func RegisterBuiltins(env *Environment) {
	for name, b := range Builtins {
		env.Define(name, b)
	}
}

// checkArgc reports an arity problem on the error sink; the builtin then
// returns null, matching the forgiving builtin contract.
func checkArgc(e *Evaluator, args []Object, expected int, name string) bool {
	if len(args) < expected {
		fmt.Fprintf(e.ErrOut, "builtin %s: expected %d args, got %d\n", name, expected, len(args))
		return false
	}
	return true
}

func builtinPrint(e *Evaluator, args ...Object) Object {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.Inspect()
	}
	fmt.Fprintln(e.Out, strings.Join(parts, " "))
	return NIL
}

func builtinInput(e *Evaluator, args ...Object) Object {
	if len(args) > 0 {
		fmt.Fprint(e.Out, args[0].Inspect())
	}
	line, err := e.readLine()
	if err != nil && line == "" {
		return &String{Value: ""}
	}
	return &String{Value: strings.TrimRight(line, "\r\n")}
}

func builtinInt(e *Evaluator, args ...Object) Object {
	if !checkArgc(e, args, 1, "int") {
		return NIL
	}
	switch v := args[0].(type) {
	case *Integer:
		return &Integer{Value: v.Value}
	case *Float:
		return &Integer{Value: int64(v.Value)}
	case *Boolean:
		if v.Value {
			return &Integer{Value: 1}
		}
		return &Integer{Value: 0}
	case *String:
		n, _ := strconv.ParseInt(strings.TrimSpace(v.Value), 10, 64)
		return &Integer{Value: n}
	}
	return NIL
}

func builtinFloat(e *Evaluator, args ...Object) Object {
	if !checkArgc(e, args, 1, "float") {
		return NIL
	}
	switch v := args[0].(type) {
	case *Float:
		return &Float{Value: v.Value}
	case *Integer:
		return &Float{Value: float64(v.Value)}
	case *Boolean:
		if v.Value {
			return &Float{Value: 1.0}
		}
		return &Float{Value: 0.0}
	case *String:
		f, _ := strconv.ParseFloat(strings.TrimSpace(v.Value), 64)
		return &Float{Value: f}
	}
	return NIL
}

func builtinString(e *Evaluator, args ...Object) Object {
	if !checkArgc(e, args, 1, "string") {
		return NIL
	}
	return &String{Value: args[0].Inspect()}
}

func builtinBool(e *Evaluator, args ...Object) Object {
	if !checkArgc(e, args, 1, "bool") {
		return NIL
	}
	return nativeBoolToBooleanObject(isTruthy(args[0]))
}

func builtinIsNull(e *Evaluator, args ...Object) Object {
	if !checkArgc(e, args, 1, "is_null") {
		return NIL
	}
	_, ok := args[0].(*Null)
	return nativeBoolToBooleanObject(ok)
}

func builtinIsInt(e *Evaluator, args ...Object) Object {
	if !checkArgc(e, args, 1, "is_int") {
		return NIL
	}
	_, ok := args[0].(*Integer)
	return nativeBoolToBooleanObject(ok)
}

func builtinIsFloat(e *Evaluator, args ...Object) Object {
	if !checkArgc(e, args, 1, "is_float") {
		return NIL
	}
	_, ok := args[0].(*Float)
	return nativeBoolToBooleanObject(ok)
}

func builtinIsString(e *Evaluator, args ...Object) Object {
	if !checkArgc(e, args, 1, "is_string") {
		return NIL
	}
	_, ok := args[0].(*String)
	return nativeBoolToBooleanObject(ok)
}

func builtinTypeOf(e *Evaluator, args ...Object) Object {
	if !checkArgc(e, args, 1, "type_of") {
		return NIL
	}
	return &String{Value: typeName(args[0])}
}

func builtinType(e *Evaluator, args ...Object) Object {
	if !checkArgc(e, args, 1, "type") {
		return NIL
	}
	return typeOf(args[0])
}

func builtinAbs(e *Evaluator, args ...Object) Object {
	if !checkArgc(e, args, 1, "abs") {
		return NIL
	}
	switch v := args[0].(type) {
	case *Integer:
		if v.Value < 0 {
			return &Integer{Value: -v.Value}
		}
		return &Integer{Value: v.Value}
	case *Float:
		return &Float{Value: math.Abs(v.Value)}
	}
	return NIL
}

func asFloat(obj Object) (float64, bool) {
	switch v := obj.(type) {
	case *Integer:
		return float64(v.Value), true
	case *Float:
		return v.Value, true
	}
	return 0, false
}

func builtinSqrt(e *Evaluator, args ...Object) Object {
	if !checkArgc(e, args, 1, "sqrt") {
		return NIL
	}
	if f, ok := asFloat(args[0]); ok {
		return &Float{Value: math.Sqrt(f)}
	}
	return NIL
}

func builtinPow(e *Evaluator, args ...Object) Object {
	if !checkArgc(e, args, 2, "pow") {
		return NIL
	}
	b, okB := asFloat(args[0])
	x, okX := asFloat(args[1])
	if !okB || !okX {
		return NIL
	}
	return &Float{Value: math.Pow(b, x)}
}

func builtinFloor(e *Evaluator, args ...Object) Object {
	if !checkArgc(e, args, 1, "floor") {
		return NIL
	}
	if f, ok := asFloat(args[0]); ok {
		return &Integer{Value: int64(math.Floor(f))}
	}
	return NIL
}

func builtinCeil(e *Evaluator, args ...Object) Object {
	if !checkArgc(e, args, 1, "ceil") {
		return NIL
	}
	if f, ok := asFloat(args[0]); ok {
		return &Integer{Value: int64(math.Ceil(f))}
	}
	return NIL
}

func builtinMin(e *Evaluator, args ...Object) Object {
	if !checkArgc(e, args, 2, "min") {
		return NIL
	}
	if a, ok := args[0].(*Integer); ok {
		if b, ok := args[1].(*Integer); ok {
			return &Integer{Value: min(a.Value, b.Value)}
		}
	}
	a, okA := asFloat(args[0])
	b, okB := asFloat(args[1])
	if !okA || !okB {
		return NIL
	}
	return &Float{Value: math.Min(a, b)}
}

func builtinMax(e *Evaluator, args ...Object) Object {
	if !checkArgc(e, args, 2, "max") {
		return NIL
	}
	if a, ok := args[0].(*Integer); ok {
		if b, ok := args[1].(*Integer); ok {
			return &Integer{Value: max(a.Value, b.Value)}
		}
	}
	a, okA := asFloat(args[0])
	b, okB := asFloat(args[1])
	if !okA || !okB {
		return NIL
	}
	return &Float{Value: math.Max(a, b)}
}

func builtinLen(e *Evaluator, args ...Object) Object {
	if !checkArgc(e, args, 1, "len") {
		return NIL
	}
	switch v := args[0].(type) {
	case *String:
		return &Integer{Value: int64(len(v.Value))}
	case *Tuple:
		return &Integer{Value: int64(len(v.Elements))}
	}
	return NIL
}

func builtinSubstr(e *Evaluator, args ...Object) Object {
	if !checkArgc(e, args, 3, "substr") {
		return NIL
	}
	s, okS := args[0].(*String)
	start, okStart := args[1].(*Integer)
	length, okLen := args[2].(*Integer)
	if !okS || !okStart || !okLen {
		return NIL
	}
	// saturating bounds
	from := start.Value
	n := length.Value
	slen := int64(len(s.Value))
	if from < 0 {
		from = 0
	}
	if from > slen {
		from = slen
	}
	if n < 0 {
		n = 0
	}
	if from+n > slen {
		n = slen - from
	}
	return &String{Value: s.Value[from : from+n]}
}

func builtinConcat(e *Evaluator, args ...Object) Object {
	var sb strings.Builder
	for _, a := range args {
		if s, ok := a.(*String); ok {
			sb.WriteString(s.Value)
		}
	}
	return &String{Value: sb.String()}
}

func builtinAssert(e *Evaluator, args ...Object) Object {
	if !checkArgc(e, args, 1, "assert") {
		return NIL
	}
	if !isTruthy(args[0]) {
		if len(args) >= 2 {
			if msg, ok := args[1].(*String); ok {
				fmt.Fprintf(os.Stderr, "Assertion failed: %s\n", msg.Value)
				os.Exit(1)
			}
		}
		fmt.Fprintln(os.Stderr, "Assertion failed")
		os.Exit(1)
	}
	return NIL
}

func builtinUuid(e *Evaluator, args ...Object) Object {
	return &String{Value: uuid.NewString()}
}
