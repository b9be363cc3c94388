package evaluator

type ObjectType string

const (
	NULL_OBJ     = "NULL"
	INTEGER_OBJ  = "INTEGER"
	FLOAT_OBJ    = "FLOAT"
	BOOLEAN_OBJ  = "BOOLEAN"
	STRING_OBJ   = "STRING"
	TUPLE_OBJ    = "TUPLE"
	VARIANT_OBJ  = "VARIANT" // reserved
	FUNCTION_OBJ = "FUNCTION"
	BUILTIN_OBJ  = "BUILTIN"
	PAT_INST_OBJ = "PAT_INST"
	SCOPE_OBJ    = "SCOPE"
	MODULE_OBJ   = "MODULE"
	TYPE_OBJ     = "TYPE"
	OPTIONAL_OBJ = "OPTIONAL"

	// Non-local control flow carried through evaluation
	RETURN_VALUE_OBJ = "RETURN_VALUE"
	BREAK_SIGNAL_OBJ = "BREAK_SIGNAL"
	YIELD_SIGNAL_OBJ = "YIELD_SIGNAL"
	ERROR_OBJ        = "ERROR"
)

type Object interface {
	Type() ObjectType
	Inspect() string
}
