// Package typeinfo implements the type-level collaborators of the
// synthesizer: dereferencing named types, probing whether a value is valid
// for a type and checking property names.
package typeinfo

import (
	"slices"

	m "github.com/kongweiying2/previewjs/internal/model"
)

// DereferenceType follows named type references until it reaches a
// structural type. It returns the resolved type and the names entered on
// the way, in order.
//
// Dereferencing stops at a name listed in rejectNames, a name already
// entered during this call, or a name missing from collected. In those
// cases the NameType itself is returned.
func DereferenceType(t m.ValueType, collected m.CollectedTypes, rejectNames []string) (m.ValueType, []string) {
	encountered := []string{}

	for {
		name, ok := t.(m.NameType)
		if !ok {
			return t, encountered
		}

		if slices.Contains(rejectNames, name.Name) || slices.Contains(encountered, name.Name) {
			return t, encountered
		}

		decl, ok := collected[name.Name]
		if !ok || decl.Type == nil {
			return t, encountered
		}

		encountered = append(encountered, name.Name)
		t = ResolveTypeArguments(decl.Type, decl.Parameters, name.Args)
	}
}

// ResolveTypeArguments substitutes type parameters in t. Missing arguments
// fall back to the parameter default, then to unknown.
func ResolveTypeArguments(t m.ValueType, params []m.TypeParameter, args []m.ValueType) m.ValueType {
	if len(params) == 0 {
		return t
	}

	bindings := make(map[string]m.ValueType, len(params))

	for i, param := range params {
		switch {
		case i < len(args) && args[i] != nil:
			bindings[param.Name] = args[i]
		case param.Default != nil:
			bindings[param.Name] = param.Default
		default:
			bindings[param.Name] = m.TypeUnknown
		}
	}

	return substitute(t, bindings)
}

func substitute(t m.ValueType, bindings map[string]m.ValueType) m.ValueType {
	switch t := t.(type) {
	case m.NameType:
		if len(t.Args) == 0 {
			if bound, ok := bindings[t.Name]; ok {
				return bound
			}

			return t
		}

		return m.Named(t.Name, substituteAll(t.Args, bindings)...)
	case m.ArrayType:
		return m.ArrayOf(substitute(t.Items, bindings))
	case m.SetType:
		return m.SetOf(substitute(t.Items, bindings))
	case m.TupleType:
		return m.TupleOf(substituteAll(t.Items, bindings)...)
	case m.ObjectType:
		fields := make([]m.Field, len(t.Fields))
		for i, field := range t.Fields {
			fields[i] = m.Field{Name: field.Name, Type: substitute(field.Type, bindings), Optional: field.Optional}
		}

		return m.ObjectOf(fields...)
	case m.MapType:
		return m.MapOf(substitute(t.Keys, bindings), substitute(t.Values, bindings))
	case m.RecordType:
		return m.RecordOf(substitute(t.Keys, bindings), substitute(t.Values, bindings))
	case m.UnionType:
		return m.UnionOf(substituteAll(t.Types, bindings)...)
	case m.IntersectionType:
		return m.IntersectionOf(substituteAll(t.Types, bindings)...)
	case m.FunctionType:
		return m.FunctionOf(substitute(t.ReturnType, bindings), substituteAll(t.Params, bindings)...)
	case m.PromiseType:
		return m.PromiseOf(substitute(t.Type, bindings))
	default:
		return t
	}
}

func substituteAll(types []m.ValueType, bindings map[string]m.ValueType) []m.ValueType {
	if types == nil {
		return nil
	}

	out := make([]m.ValueType, len(types))
	for i, t := range types {
		out[i] = substitute(t, bindings)
	}

	return out
}
