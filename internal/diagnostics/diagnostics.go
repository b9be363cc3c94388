package diagnostics

import (
	"fmt"

	"github.com/funvibe/patlang/internal/token"
)

// Error codes, grouped by pipeline stage.
const (
	ErrL001 = "L001" // lexical error
	ErrP001 = "P001" // parse error
	ErrR001 = "R001" // runtime error
	ErrM001 = "M001" // module load error
)

// DiagnosticError is an error with a stable code and a source position.
type DiagnosticError struct {
	Code    string
	Message string
	Got     token.TokenType // token the parser was looking at, if any
	Line    int
	Column  int
	File    string
}

func NewError(code string, tok token.Token, msg string) *DiagnosticError {
	return &DiagnosticError{
		Code:    code,
		Message: msg,
		Got:     tok.Type,
		Line:    tok.Line,
		Column:  tok.Column,
	}
}

// Error renders the diagnostic in the user-facing format:
// parse errors carry the offending token kind, runtime errors do not.
func (d *DiagnosticError) Error() string {
	switch d.Code {
	case ErrR001:
		return fmt.Sprintf("Runtime error at line %d col %d: %s", d.Line, d.Column, d.Message)
	default:
		return fmt.Sprintf("Error at line %d col %d: %s (got %s)", d.Line, d.Column, d.Message, token.Describe(d.Got))
	}
}
