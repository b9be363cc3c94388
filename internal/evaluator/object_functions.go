package evaluator

import (
	"fmt"
	"strings"

	"github.com/funvibe/patlang/internal/ast"
)

// Function is a user-defined function: the declaration node plus the
// environment it closes over.
type Function struct {
	Name string
	Decl *ast.FunctionDeclaration
	Env  *Environment
}

func (f *Function) Type() ObjectType { return FUNCTION_OBJ }
func (f *Function) Inspect() string  { return fmt.Sprintf("<fn:%s>", f.Name) }

// BuiltinFunction is the contract for registered built-ins: a borrowed
// argument slice in, an owned value out (nil is treated as null).
type BuiltinFunction func(e *Evaluator, args ...Object) Object

type Builtin struct {
	Name string
	Fn   BuiltinFunction
}

func (b *Builtin) Type() ObjectType { return BUILTIN_OBJ }
func (b *Builtin) Inspect() string  { return fmt.Sprintf("<builtin:%s>", b.Name) }

// PatternDef describes a user-defined record type: its name, the ordered
// field names, and the method environment. Shared by every instance and
// by the module created for the declaration.
type PatternDef struct {
	Name    string
	Fields  []string
	Methods *Environment
}

// FieldIndex returns the position of a field name, or -1.
func (pd *PatternDef) FieldIndex(name string) int {
	for i, f := range pd.Fields {
		if f == name {
			return i
		}
	}
	return -1
}

// PatternInstance is a value constructed by calling a pattern. The field
// slice runs parallel to the definition's field names.
type PatternInstance struct {
	Def    *PatternDef
	Fields []Object
}

func (pi *PatternInstance) Type() ObjectType { return PAT_INST_OBJ }
func (pi *PatternInstance) Inspect() string {
	var sb strings.Builder
	sb.WriteString(pi.Def.Name)
	sb.WriteByte('{')
	for i, f := range pi.Fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		if i < len(pi.Def.Fields) {
			sb.WriteString(pi.Def.Fields[i])
			sb.WriteString(": ")
		}
		sb.WriteString(f.Inspect())
	}
	sb.WriteByte('}')
	return sb.String()
}

// Scope is a brace-delimited block as a first-class value carrying its
// environment.
type Scope struct {
	Env *Environment
}

func (s *Scope) Type() ObjectType { return SCOPE_OBJ }
func (s *Scope) Inspect() string  { return "<scope>" }

// Module is produced by loading a source file or declaring a pattern. A
// pattern module carries the pattern definition and acts as its
// constructor.
type Module struct {
	Name string
	Env  *Environment
	Def  *PatternDef // non-nil when the module is a pattern constructor
}

func (m *Module) Type() ObjectType { return MODULE_OBJ }
func (m *Module) Inspect() string  { return fmt.Sprintf("<module:%s>", m.Name) }

// TypeValue is a reflective type. Calling one converts its argument
// (numeric/string names) or constructs a pattern instance when the type
// carries a pattern definition.
type TypeValue struct {
	Name string
	Def  *PatternDef
}

func (t *TypeValue) Type() ObjectType { return TYPE_OBJ }
func (t *TypeValue) Inspect() string  { return fmt.Sprintf("<type:%s>", t.Name) }

// ReturnValue carries a return signal up to the enclosing call.
type ReturnValue struct {
	Value Object
}

func (rv *ReturnValue) Type() ObjectType { return RETURN_VALUE_OBJ }
func (rv *ReturnValue) Inspect() string  { return rv.Value.Inspect() }

// BreakSignal exits the innermost loop or switch case.
type BreakSignal struct{}

func (bs *BreakSignal) Type() ObjectType { return BREAK_SIGNAL_OBJ }
func (bs *BreakSignal) Inspect() string  { return "break" }

// YieldSignal updates the enclosing loop's accumulator and continues.
type YieldSignal struct {
	Value Object
}

func (ys *YieldSignal) Type() ObjectType { return YIELD_SIGNAL_OBJ }
func (ys *YieldSignal) Inspect() string  { return ys.Value.Inspect() }

// Error is a runtime error with its source position. It propagates
// through every frame until the program root.
type Error struct {
	Message string
	Line    int
	Column  int
}

func (e *Error) Type() ObjectType { return ERROR_OBJ }
func (e *Error) Inspect() string {
	return fmt.Sprintf("Runtime error at line %d col %d: %s", e.Line, e.Column, e.Message)
}
