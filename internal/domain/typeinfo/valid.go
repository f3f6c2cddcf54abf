package typeinfo

import (
	"slices"

	m "github.com/kongweiying2/previewjs/internal/model"
)

// IsValid reports whether v is an acceptable value for t.
//
// Named types that cannot be dereferenced (unknown or recursive past the
// current path) accept any value.
func IsValid(t m.ValueType, collected m.CollectedTypes, v m.Value) bool {
	return isValid(t, collected, v, nil)
}

func isValid(t m.ValueType, collected m.CollectedTypes, v m.Value, visited []string) bool {
	t, encountered := DereferenceType(t, collected, visited)
	if len(encountered) > 0 {
		visited = append(slices.Clone(visited), encountered...)
	}

	switch t := t.(type) {
	case m.AnyType, m.UnknownType, m.NameType:
		return true
	case m.NeverType:
		return false
	case m.VoidType:
		return v.Kind() == m.ValueUndefined
	case m.NullType:
		return v.Kind() == m.ValueNull
	case m.BooleanType:
		return v.Kind() == m.ValueBoolean
	case m.StringType:
		return v.Kind() == m.ValueString
	case m.NumberType:
		return v.Kind() == m.ValueNumber
	case m.NodeType:
		return isValidNode(v)
	case m.LiteralType:
		return matchesPrimitive(t.Value, v)
	case m.EnumType:
		for _, option := range t.Options {
			if matchesPrimitive(option.Value, v) {
				return true
			}
		}

		return false
	case m.ArrayType:
		arr, ok := v.(m.ArrayValue)
		return ok && allValid(t.Items, collected, arr.Items, visited)
	case m.SetType:
		set, ok := v.(m.SetValue)
		return ok && allValid(t.Items, collected, set.Items, visited)
	case m.TupleType:
		return isValidTuple(t, collected, v, visited)
	case m.ObjectType:
		return isValidObject(t, collected, v, visited)
	case m.RecordType:
		obj, ok := v.(m.ObjectValue)
		return ok && validEntries(t.Keys, t.Values, collected, obj.Entries, visited)
	case m.MapType:
		mv, ok := v.(m.MapValue)
		return ok && validEntries(t.Keys, t.Values, collected, mv.Entries, visited)
	case m.UnionType:
		for _, member := range t.Types {
			if isValid(member, collected, v, visited) {
				return true
			}
		}

		return false
	case m.IntersectionType:
		for _, member := range t.Types {
			if !isValid(member, collected, v, visited) {
				return false
			}
		}

		return true
	case m.FunctionType:
		return v.Kind() == m.ValueFunction
	case m.PromiseType:
		return v.Kind() == m.ValuePromise
	default:
		return false
	}
}

func isValidNode(v m.Value) bool {
	switch v := v.(type) {
	case m.UndefinedValue, m.NullValue, m.BooleanValue, m.StringValue, m.NumberValue:
		return true
	case m.ArrayValue:
		for _, item := range v.Items {
			if !isValidNode(item) {
				return false
			}
		}

		return true
	default:
		return false
	}
}

func matchesPrimitive(expected any, v m.Value) bool {
	switch v := v.(type) {
	case m.StringValue:
		s, ok := expected.(string)
		return ok && s == v.Value
	case m.NumberValue:
		n, ok := expected.(float64)
		return ok && n == v.Value
	case m.BooleanValue:
		b, ok := expected.(bool)
		return ok && b == v.Value
	default:
		return false
	}
}

func allValid(items m.ValueType, collected m.CollectedTypes, values []m.Value, visited []string) bool {
	for _, item := range values {
		if !isValid(items, collected, item, visited) {
			return false
		}
	}

	return true
}

func isValidTuple(t m.TupleType, collected m.CollectedTypes, v m.Value, visited []string) bool {
	arr, ok := v.(m.ArrayValue)
	if !ok || len(arr.Items) != len(t.Items) {
		return false
	}

	for i, item := range t.Items {
		if !isValid(item, collected, arr.Items[i], visited) {
			return false
		}
	}

	return true
}

func isValidObject(t m.ObjectType, collected m.CollectedTypes, v m.Value, visited []string) bool {
	obj, ok := v.(m.ObjectValue)
	if !ok {
		return false
	}

	values := map[string]m.Value{}
	hasSpread := false

	for _, entry := range obj.Entries {
		if entry.Spread {
			hasSpread = true
			continue
		}

		if key, ok := entry.Key.(m.StringValue); ok {
			values[key.Value] = entry.Value
		}
	}

	for _, field := range t.Fields {
		value, present := values[field.Name]
		if present {
			if !isValid(field.Type, collected, value, visited) {
				return false
			}

			continue
		}

		if field.Optional || hasSpread {
			continue
		}

		if !isValid(field.Type, collected, m.Undefined, visited) {
			return false
		}
	}

	return true
}

func validEntries(keys, values m.ValueType, collected m.CollectedTypes, entries []m.ObjectEntry, visited []string) bool {
	for _, entry := range entries {
		if entry.Spread {
			continue
		}

		if !isValid(keys, collected, entry.Key, visited) || !isValid(values, collected, entry.Value, visited) {
			return false
		}
	}

	return true
}
