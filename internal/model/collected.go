package model

import "sort"

// TypeParameter is a declared type parameter. Default may be nil.
type TypeParameter struct {
	Name    string
	Default ValueType
}

// CollectedType is a named type declaration.
type CollectedType struct {
	Type       ValueType
	Parameters []TypeParameter
}

// CollectedTypes maps type identifiers to their declarations.
// It is never mutated while a synthesis call is running.
type CollectedTypes map[string]CollectedType

// Names returns the declared type names in lexical order.
func (c CollectedTypes) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
