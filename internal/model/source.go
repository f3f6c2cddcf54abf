package model

import (
	"github.com/cockroachdb/errors"
)

// Path represents a file system path.
type Path string

// ErrUnknownType is returned when a type name is not declared in a schema.
var ErrUnknownType = errors.New("unknown type")

// Schema is a set of named type declarations loaded from a file.
type Schema struct {
	Origin  Path
	Version string
	Types   CollectedTypes
}

// Resolve returns the type referenced by name together with the registry
// needed to dereference it.
func (s Schema) Resolve(name string) (ValueType, CollectedTypes, error) {
	if _, ok := s.Types[name]; !ok {
		return nil, nil, errors.WithHintf(
			errors.Wrapf(ErrUnknownType, "%q in %s", name, s.Origin),
			"run `previewgen list` to see the declared types",
		)
	}

	return Named(name), s.Types, nil
}

// Summaries describes every declared type in name order.
func (s Schema) Summaries() []TypeSummary {
	names := s.Types.Names()
	summaries := make([]TypeSummary, 0, len(names))

	for _, name := range names {
		decl := s.Types[name]

		params := make([]string, 0, len(decl.Parameters))
		for _, p := range decl.Parameters {
			params = append(params, p.Name)
		}

		kind := TypeKind("")
		if decl.Type != nil {
			kind = decl.Type.Kind()
		}

		summaries = append(summaries, TypeSummary{Name: name, Kind: kind, Parameters: params})
	}

	return summaries
}
