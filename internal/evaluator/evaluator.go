package evaluator

import (
	"bufio"
	"io"
	"os"

	"github.com/funvibe/patlang/internal/ast"
)

// ModuleLoader resolves an import path to a module value. Implemented by
// the modules package; injected so the evaluator stays free of file I/O.
type ModuleLoader interface {
	Load(path string) (Object, error)
}

// Evaluator walks the AST. It is single-threaded and synchronous;
// evaluation order is strict left-to-right, depth-first.
type Evaluator struct {
	Out    io.Writer
	ErrOut io.Writer
	In     io.Reader

	// GlobalEnv holds the builtins and top-level bindings.
	GlobalEnv *Environment

	// Loader resolves imports; nil disables them.
	Loader ModuleLoader

	inBuf *bufio.Reader
}

// readLine reads one line from the evaluator's input, buffering across
// calls so consecutive input() calls do not lose bytes.
func (e *Evaluator) readLine() (string, error) {
	if e.inBuf == nil {
		e.inBuf = bufio.NewReader(e.In)
	}
	return e.inBuf.ReadString('\n')
}

func New() *Evaluator {
	e := &Evaluator{
		Out:       os.Stdout,
		ErrOut:    os.Stderr,
		In:        os.Stdin,
		GlobalEnv: NewEnvironment(),
	}
	RegisterBuiltins(e.GlobalEnv)
	return e
}

// Eval evaluates a node and returns its value, or a signal object
// (return/break/yield/error) that callers must check before using the
// value.
func (e *Evaluator) Eval(node ast.Node, env *Environment) Object {
	switch node := node.(type) {
	case *ast.Program:
		return e.evalProgram(node, env)

	case *ast.ExpressionStatement:
		return e.Eval(node.Expression, env)

	// literals
	case *ast.NullLiteral:
		return NIL
	case *ast.IntegerLiteral:
		return &Integer{Value: node.Value}
	case *ast.FloatLiteral:
		return &Float{Value: node.Value}
	case *ast.StringLiteral:
		return &String{Value: node.Value}

	case *ast.Identifier:
		if v, ok := env.Get(node.Value); ok {
			return v
		}
		return newError(node.Token, "undefined variable '%s'", node.Value)

	case *ast.PrefixExpression:
		return e.evalPrefixExpression(node, env)
	case *ast.InfixExpression:
		return e.evalInfixExpression(node, env)
	case *ast.AssignExpression:
		return e.evalAssignExpression(node, env)
	case *ast.TernaryExpression:
		return e.evalTernaryExpression(node, env)
	case *ast.CopyExpression:
		val := e.Eval(node.Operand, env)
		if isSignal(val) {
			return val
		}
		return deepCopy(val)
	case *ast.MoveExpression:
		// move currently evaluates as its operand; the node is kept for
		// future linear-consumption semantics
		return e.Eval(node.Operand, env)

	case *ast.MemberExpression:
		return e.evalMemberExpression(node, env)
	case *ast.IndexExpression:
		return e.evalIndexExpression(node, env)
	case *ast.CallExpression:
		return e.evalCallExpression(node, env)
	case *ast.TupleLiteral:
		return e.evalTupleLiteral(node, env)

	case *ast.ScopeExpression:
		scopeEnv := NewEnclosedEnvironment(env)
		return e.evalBlock(node.Statements, scopeEnv)

	case *ast.FunctionDeclaration:
		fn := &Function{Name: node.Name, Decl: node, Env: env}
		env.Define(node.Name, fn)
		return NIL
	case *ast.VarDeclaration:
		return e.evalVarDeclaration(node, env)
	case *ast.PatternDeclaration:
		return e.evalPatternDeclaration(node, env)
	case *ast.ImportDeclaration:
		return e.evalImportDeclaration(node, env)

	case *ast.ForExpression:
		return e.evalForExpression(node, env)
	case *ast.WhileExpression:
		return e.evalWhileExpression(node, env)
	case *ast.SwitchExpression:
		return e.evalSwitchExpression(node, env)

	case *ast.BreakStatement:
		return &BreakSignal{}
	case *ast.YieldStatement:
		if node.Value != nil {
			val := e.Eval(node.Value, env)
			if isSignal(val) {
				return val
			}
			return &YieldSignal{Value: val}
		}
		return &YieldSignal{Value: NIL}
	case *ast.ReturnStatement:
		if node.Value != nil {
			val := e.Eval(node.Value, env)
			if isSignal(val) {
				return val
			}
			return &ReturnValue{Value: val}
		}
		return &ReturnValue{Value: NIL}

	case *ast.TemplateInstantiation:
		return e.evalTemplateInstantiation(node, env)
	case *ast.TypeAnnotation:
		// An annotation in value position resolves through the
		// environment first; unknown names become fresh type values.
		if node.TypeName != "" {
			if v, ok := env.Get(node.TypeName); ok {
				return v
			}
			return &TypeValue{Name: node.TypeName}
		}
		return NIL
	}

	if tp, ok := node.(ast.TokenProvider); ok {
		return newError(tp.GetToken(), "unhandled AST node")
	}
	return NIL
}

// evalProgram runs the top-level statements. A return unwraps to its
// value; break and yield stop execution; errors propagate.
func (e *Evaluator) evalProgram(prog *ast.Program, env *Environment) Object {
	var result Object = NIL
	for _, stmt := range prog.Statements {
		result = e.Eval(stmt, env)
		switch r := result.(type) {
		case *Error:
			return r
		case *ReturnValue:
			result = r.Value
		case *BreakSignal, *YieldSignal:
			return result
		}
	}
	return result
}

// evalBlock evaluates statements in order in the given environment and
// returns the last value. Signals propagate immediately.
func (e *Evaluator) evalBlock(statements []ast.Statement, env *Environment) Object {
	var result Object = NIL
	for _, stmt := range statements {
		result = e.Eval(stmt, env)
		if isSignal(result) {
			return result
		}
	}
	return result
}
