package evaluator

import (
	"fmt"
	"strings"

	"github.com/funvibe/patlang/internal/ast"
	"github.com/funvibe/patlang/internal/config"
	"github.com/funvibe/patlang/internal/utils"
)

func (e *Evaluator) evalVarDeclaration(node *ast.VarDeclaration, env *Environment) Object {
	var val Object = NIL
	if node.Init != nil {
		val = e.Eval(node.Init, env)
		if isSignal(val) {
			return val
		}
	}
	env.Define(node.Name, val)
	return NIL
}

// evalPatternDeclaration builds the pattern definition from the body's
// var declarations, evaluates the methods into a parentless environment,
// and binds the result as a constructor module.
func (e *Evaluator) evalPatternDeclaration(node *ast.PatternDeclaration, env *Environment) Object {
	def := &PatternDef{Name: node.Name}
	if node.Body != nil {
		for _, stmt := range node.Body.Statements {
			if vd, ok := stmt.(*ast.VarDeclaration); ok {
				def.Fields = append(def.Fields, vd.Name)
			}
		}
	}

	// Methods close over the pattern's own environment, which has no
	// parent; they see each other and __name__ but nothing outside.
	patEnv := NewEnvironment()
	patEnv.Define(config.PatternNameBinding, &String{Value: node.Name})
	if node.Body != nil {
		for _, stmt := range node.Body.Statements {
			if fd, ok := stmt.(*ast.FunctionDeclaration); ok {
				patEnv.Define(fd.Name, &Function{Name: fd.Name, Decl: fd, Env: patEnv})
			}
		}
	}
	def.Methods = patEnv

	mod := &Module{Name: node.Name, Env: patEnv, Def: def}
	env.Define(node.Name, mod)
	return NIL
}

// evalImportDeclaration loads the module through the injected loader and
// binds either the whole module or the listed items. Load failures are
// reported and replaced with null so the importing program keeps going.
func (e *Evaluator) evalImportDeclaration(node *ast.ImportDeclaration, env *Environment) Object {
	var mod Object = NIL
	if e.Loader != nil {
		path := utils.ImportPathToFile(node.Path)
		loaded, err := e.Loader.Load(path)
		if err != nil {
			fmt.Fprintf(e.ErrOut, "%s\n", err)
		} else if loaded != nil {
			mod = loaded
		}
	}

	if len(node.Items) == 0 {
		alias := node.Alias
		if alias == "" {
			parts := strings.Split(node.Path, ".")
			alias = parts[len(parts)-1]
		}
		env.Define(alias, mod)
		return NIL
	}

	modEnv := (*Environment)(nil)
	if m, ok := mod.(*Module); ok {
		modEnv = m.Env
	}
	for _, item := range node.Items {
		alias := item.Alias
		if alias == "" {
			alias = item.Name
		}
		var val Object = NIL
		if modEnv != nil {
			if v, ok := modEnv.Get(item.Name); ok {
				val = v
			}
		}
		env.Define(alias, val)
	}
	return NIL
}
