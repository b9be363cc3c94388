package evaluator

import (
	"fmt"
	"strings"
)

// Tuple is an ordered sequence of values with optional field names.
// Names, when non-nil, runs parallel to Elements; positional entries
// hold the empty string.
type Tuple struct {
	Elements []Object
	Names    []string
}

func (t *Tuple) Type() ObjectType { return TUPLE_OBJ }
func (t *Tuple) Inspect() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, el := range t.Elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		if t.Names != nil && t.Names[i] != "" {
			sb.WriteString(t.Names[i])
			sb.WriteString(": ")
		}
		sb.WriteString(el.Inspect())
	}
	sb.WriteByte(')')
	return sb.String()
}

// NameOf returns the field name of element i, or "".
func (t *Tuple) NameOf(i int) string {
	if t.Names == nil || i < 0 || i >= len(t.Names) {
		return ""
	}
	return t.Names[i]
}

// Optional is a two-state wrapper reserved for a future first-class sum.
type Optional struct {
	Value   Object
	Present bool
}

func (o *Optional) Type() ObjectType { return OPTIONAL_OBJ }
func (o *Optional) Inspect() string {
	if o.Present {
		return fmt.Sprintf("some(%s)", o.Value.Inspect())
	}
	return "none"
}

// Variant is a tagged value; reserved.
type Variant struct {
	Tag   int
	Value Object
}

func (v *Variant) Type() ObjectType { return VARIANT_OBJ }
func (v *Variant) Inspect() string {
	return fmt.Sprintf("variant(%d, %s)", v.Tag, v.Value.Inspect())
}
