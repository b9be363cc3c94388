package evaluator

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// YAML bridging: mappings become named tuples, sequences become
// positional tuples, scalars map to the matching primitive.

func builtinYamlDecode(e *Evaluator, args ...Object) Object {
	if !checkArgc(e, args, 1, "yaml_decode") {
		return NIL
	}
	s, ok := args[0].(*String)
	if !ok {
		return NIL
	}
	obj, err := yamlDecode(s.Value)
	if err != nil {
		fmt.Fprintf(e.ErrOut, "yaml_decode: %v\n", err)
		return NIL
	}
	return obj
}

func builtinYamlEncode(e *Evaluator, args ...Object) Object {
	if !checkArgc(e, args, 1, "yaml_encode") {
		return NIL
	}
	out, err := yamlEncode(args[0])
	if err != nil {
		fmt.Fprintf(e.ErrOut, "yaml_encode: %v\n", err)
		return NIL
	}
	return &String{Value: out}
}

func builtinYamlRead(e *Evaluator, args ...Object) Object {
	if !checkArgc(e, args, 1, "yaml_read") {
		return NIL
	}
	path, ok := args[0].(*String)
	if !ok {
		return NIL
	}
	content, err := os.ReadFile(path.Value)
	if err != nil {
		fmt.Fprintf(e.ErrOut, "yaml_read: %v\n", err)
		return NIL
	}
	obj, err := yamlDecode(string(content))
	if err != nil {
		fmt.Fprintf(e.ErrOut, "yaml_read: %v\n", err)
		return NIL
	}
	return obj
}

func builtinYamlWrite(e *Evaluator, args ...Object) Object {
	if !checkArgc(e, args, 2, "yaml_write") {
		return NIL
	}
	path, ok := args[0].(*String)
	if !ok {
		return NIL
	}
	content, err := yamlEncode(args[1])
	if err != nil {
		fmt.Fprintf(e.ErrOut, "yaml_write: %v\n", err)
		return NIL
	}
	if err := os.WriteFile(path.Value, []byte(content), 0644); err != nil {
		fmt.Fprintf(e.ErrOut, "yaml_write: %v\n", err)
	}
	return NIL
}

func yamlDecode(content string) (Object, error) {
	var data interface{}
	if err := yaml.Unmarshal([]byte(content), &data); err != nil {
		return nil, err
	}
	return inferFromYaml(data)
}

// inferFromYaml converts values from yaml.Unmarshal to runtime objects.
// yaml.v3 returns int for integers, so int and int64 are both handled.
func inferFromYaml(data interface{}) (Object, error) {
	switch v := data.(type) {
	case nil:
		return NIL, nil
	case bool:
		return nativeBoolToBooleanObject(v), nil
	case int:
		return &Integer{Value: int64(v)}, nil
	case int64:
		return &Integer{Value: v}, nil
	case float64:
		return &Float{Value: v}, nil
	case string:
		return &String{Value: v}, nil
	case []interface{}:
		elements := make([]Object, len(v))
		for i, item := range v {
			obj, err := inferFromYaml(item)
			if err != nil {
				return nil, err
			}
			elements[i] = obj
		}
		return &Tuple{Elements: elements}, nil
	case map[string]interface{}:
		t := &Tuple{}
		for k, val := range v {
			obj, err := inferFromYaml(val)
			if err != nil {
				return nil, err
			}
			t.Elements = append(t.Elements, obj)
			t.Names = append(t.Names, k)
		}
		return t, nil
	default:
		return nil, fmt.Errorf("unsupported YAML value type: %T", data)
	}
}

func yamlEncode(obj Object) (string, error) {
	value, err := objectToGo(obj)
	if err != nil {
		return "", err
	}
	out, err := yaml.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// objectToGo converts a runtime object to a plain Go value for
// marshalling. A tuple with a full set of names becomes a mapping;
// any other tuple becomes a sequence.
func objectToGo(obj Object) (interface{}, error) {
	switch v := obj.(type) {
	case *Null:
		return nil, nil
	case *Boolean:
		return v.Value, nil
	case *Integer:
		return v.Value, nil
	case *Float:
		return v.Value, nil
	case *String:
		return v.Value, nil
	case *Tuple:
		named := v.Names != nil
		if named {
			for _, n := range v.Names {
				if n == "" {
					named = false
					break
				}
			}
		}
		if named {
			m := make(map[string]interface{}, len(v.Elements))
			for i, el := range v.Elements {
				g, err := objectToGo(el)
				if err != nil {
					return nil, err
				}
				m[v.Names[i]] = g
			}
			return m, nil
		}
		seq := make([]interface{}, len(v.Elements))
		for i, el := range v.Elements {
			g, err := objectToGo(el)
			if err != nil {
				return nil, err
			}
			seq[i] = g
		}
		return seq, nil
	case *PatternInstance:
		m := make(map[string]interface{}, len(v.Fields))
		for i, f := range v.Fields {
			g, err := objectToGo(f)
			if err != nil {
				return nil, err
			}
			if i < len(v.Def.Fields) {
				m[v.Def.Fields[i]] = g
			}
		}
		return m, nil
	default:
		return nil, fmt.Errorf("cannot encode %s as YAML", obj.Type())
	}
}
