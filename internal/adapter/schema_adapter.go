package adapter

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	m "github.com/kongweiying2/previewjs/internal/model"
)

const defaultSchemaVersion = "1.0.0"

// SupportedSchemaVersions is the semver constraint schema files must satisfy.
const SupportedSchemaVersions = "^1"

// ErrInvalidSchema is returned when a schema file is structurally wrong.
var ErrInvalidSchema = errors.New("invalid schema")

// SchemaAdapter loads named type declarations.
type SchemaAdapter interface {
	// LoadSchema reads and parses the schema file at path.
	LoadSchema(ctx context.Context, path m.Path) (m.Schema, error)
}

// LocalSchemaAdapter reads YAML schema files from disk.
type LocalSchemaAdapter struct{}

// NewLocalSchemaAdapter constructs a LocalSchemaAdapter.
func NewLocalSchemaAdapter() *LocalSchemaAdapter {
	return &LocalSchemaAdapter{}
}

// LoadSchema implements SchemaAdapter.
func (a *LocalSchemaAdapter) LoadSchema(ctx context.Context, path m.Path) (m.Schema, error) {
	if err := ctx.Err(); err != nil {
		return m.Schema{}, err
	}

	content, err := os.ReadFile(string(path))
	if err != nil {
		return m.Schema{}, errors.WithHint(
			errors.Wrapf(err, "read schema %s", path),
			"create one with `previewgen init` or pass --schema",
		)
	}

	return ParseSchema(path, content)
}

// ParseSchema parses schema content. origin is only used in error messages.
func ParseSchema(origin m.Path, content []byte) (m.Schema, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return m.Schema{}, errors.Wrapf(err, "decode schema %s", origin)
	}

	p := &schemaParser{origin: origin}

	schema := m.Schema{Origin: origin, Version: defaultSchemaVersion, Types: m.CollectedTypes{}}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return schema, nil
	}

	root := resolveAlias(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return m.Schema{}, p.errorf(root, "schema root must be a mapping")
	}

	fields, err := p.mapping(root, "version", "types")
	if err != nil {
		return m.Schema{}, err
	}

	if node, ok := fields["version"]; ok {
		if node.Kind != yaml.ScalarNode {
			return m.Schema{}, p.errorf(node, "version must be a scalar")
		}

		schema.Version = node.Value
	}

	if err := checkSchemaVersion(origin, schema.Version); err != nil {
		return m.Schema{}, err
	}

	typesNode, ok := fields["types"]
	if !ok {
		return schema, nil
	}

	if typesNode.Kind != yaml.MappingNode {
		return m.Schema{}, p.errorf(typesNode, "types must be a mapping")
	}

	for i := 0; i+1 < len(typesNode.Content); i += 2 {
		key, value := typesNode.Content[i], typesNode.Content[i+1]

		if _, dup := schema.Types[key.Value]; dup {
			return m.Schema{}, p.errorf(key, "type %q declared twice", key.Value)
		}

		decl, err := p.declaration(value)
		if err != nil {
			return m.Schema{}, errors.Wrapf(err, "type %s", key.Value)
		}

		schema.Types[key.Value] = decl
	}

	return schema, nil
}

func checkSchemaVersion(origin m.Path, raw string) error {
	version, err := semver.NewVersion(raw)
	if err != nil {
		return errors.Wrapf(ErrInvalidSchema, "%s: version %q: %v", origin, raw, err)
	}

	constraint, err := semver.NewConstraint(SupportedSchemaVersions)
	if err != nil {
		return errors.Wrap(err, "parse version constraint")
	}

	if !constraint.Check(version) {
		return errors.WithHintf(
			errors.Wrapf(ErrInvalidSchema, "%s: unsupported version %s", origin, raw),
			"this build reads schema versions %s", SupportedSchemaVersions,
		)
	}

	return nil
}

type schemaParser struct {
	origin m.Path
}

func (p *schemaParser) errorf(node *yaml.Node, format string, args ...any) error {
	return errors.Wrapf(ErrInvalidSchema, "%s:%d:%d: %s", p.origin, node.Line, node.Column, fmt.Sprintf(format, args...))
}

// mapping indexes the pairs of a mapping node, rejecting keys outside allowed.
func (p *schemaParser) mapping(node *yaml.Node, allowed ...string) (map[string]*yaml.Node, error) {
	fields := make(map[string]*yaml.Node, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], resolveAlias(node.Content[i+1])

		if !slices.Contains(allowed, key.Value) {
			return nil, p.errorf(key, "unexpected key %q", key.Value)
		}

		if _, dup := fields[key.Value]; dup {
			return nil, p.errorf(key, "duplicate key %q", key.Value)
		}

		fields[key.Value] = value
	}

	return fields, nil
}

func (p *schemaParser) declaration(node *yaml.Node) (m.CollectedType, error) {
	node = resolveAlias(node)

	if node.Kind == yaml.MappingNode && hasKey(node, "type") && !hasKey(node, "kind") {
		fields, err := p.mapping(node, "type", "parameters")
		if err != nil {
			return m.CollectedType{}, err
		}

		t, err := p.valueType(fields["type"])
		if err != nil {
			return m.CollectedType{}, err
		}

		params, err := p.parameters(fields["parameters"])
		if err != nil {
			return m.CollectedType{}, err
		}

		return m.CollectedType{Type: t, Parameters: params}, nil
	}

	t, err := p.valueType(node)
	if err != nil {
		return m.CollectedType{}, err
	}

	return m.CollectedType{Type: t}, nil
}

func (p *schemaParser) parameters(node *yaml.Node) ([]m.TypeParameter, error) {
	if node == nil {
		return nil, nil
	}

	if node.Kind != yaml.SequenceNode {
		return nil, p.errorf(node, "parameters must be a sequence")
	}

	params := make([]m.TypeParameter, 0, len(node.Content))

	for _, item := range node.Content {
		item = resolveAlias(item)

		switch item.Kind {
		case yaml.ScalarNode:
			params = append(params, m.TypeParameter{Name: item.Value})
		case yaml.MappingNode:
			fields, err := p.mapping(item, "name", "default")
			if err != nil {
				return nil, err
			}

			name, ok := fields["name"]
			if !ok || name.Kind != yaml.ScalarNode || name.Value == "" {
				return nil, p.errorf(item, "parameter needs a name")
			}

			param := m.TypeParameter{Name: name.Value}

			if def, ok := fields["default"]; ok {
				t, err := p.valueType(def)
				if err != nil {
					return nil, err
				}

				param.Default = t
			}

			params = append(params, param)
		default:
			return nil, p.errorf(item, "parameter must be a name or a mapping")
		}
	}

	return params, nil
}

var primitiveTypes = map[string]m.ValueType{
	"any":       m.TypeAny,
	"unknown":   m.TypeUnknown,
	"never":     m.TypeNever,
	"void":      m.TypeVoid,
	"undefined": m.TypeVoid,
	"null":      m.TypeNull,
	"boolean":   m.TypeBoolean,
	"string":    m.TypeString,
	"node":      m.TypeNode,
	"number":    m.TypeNumber,
}

//nolint:cyclop,gocyclo // One branch per type kind.
func (p *schemaParser) valueType(node *yaml.Node) (m.ValueType, error) {
	if node == nil {
		return nil, errors.Wrap(ErrInvalidSchema, "missing type")
	}

	node = resolveAlias(node)

	switch node.Kind {
	case yaml.ScalarNode:
		return p.scalarType(node)
	case yaml.MappingNode:
	default:
		return nil, p.errorf(node, "type must be a name or a mapping")
	}

	if !hasKey(node, "kind") {
		fields, err := p.mapping(node, "name", "args")
		if err != nil {
			return nil, err
		}

		return p.nameType(node, fields)
	}

	kind := resolveAlias(valueOf(node, "kind")).Value

	switch m.TypeKind(kind) {
	case m.KindLiteral:
		fields, err := p.mapping(node, "kind", "value")
		if err != nil {
			return nil, err
		}

		return p.literalType(node, fields["value"])
	case m.KindEnum:
		fields, err := p.mapping(node, "kind", "options")
		if err != nil {
			return nil, err
		}

		return p.enumType(node, fields["options"])
	case m.KindArray, m.KindSet:
		fields, err := p.mapping(node, "kind", "items")
		if err != nil {
			return nil, err
		}

		items, err := p.required(node, fields, "items")
		if err != nil {
			return nil, err
		}

		if kind == string(m.KindSet) {
			return m.SetOf(items), nil
		}

		return m.ArrayOf(items), nil
	case m.KindTuple:
		fields, err := p.mapping(node, "kind", "items")
		if err != nil {
			return nil, err
		}

		items, err := p.typeList(fields["items"])
		if err != nil {
			return nil, err
		}

		return m.TupleOf(items...), nil
	case m.KindObject:
		fields, err := p.mapping(node, "kind", "fields")
		if err != nil {
			return nil, err
		}

		return p.objectType(fields["fields"])
	case m.KindMap, m.KindRecord:
		return p.keyedType(node, kind)
	case m.KindUnion, m.KindIntersection:
		fields, err := p.mapping(node, "kind", "types")
		if err != nil {
			return nil, err
		}

		types, err := p.typeList(fields["types"])
		if err != nil {
			return nil, err
		}

		if kind == string(m.KindUnion) {
			return m.UnionOf(types...), nil
		}

		return m.IntersectionOf(types...), nil
	case m.KindFunction:
		fields, err := p.mapping(node, "kind", "params", "returns")
		if err != nil {
			return nil, err
		}

		params, err := p.typeList(fields["params"])
		if err != nil {
			return nil, err
		}

		returns := m.TypeVoid
		if node, ok := fields["returns"]; ok {
			if returns, err = p.valueType(node); err != nil {
				return nil, err
			}
		}

		return m.FunctionOf(returns, params...), nil
	case m.KindPromise:
		fields, err := p.mapping(node, "kind", "type")
		if err != nil {
			return nil, err
		}

		t, err := p.required(node, fields, "type")
		if err != nil {
			return nil, err
		}

		return m.PromiseOf(t), nil
	case m.KindName:
		fields, err := p.mapping(node, "kind", "name", "args")
		if err != nil {
			return nil, err
		}

		return p.nameType(node, fields)
	case m.KindAny, m.KindUnknown, m.KindNever, m.KindVoid, m.KindNull,
		m.KindBoolean, m.KindString, m.KindNode, m.KindNumber:
		if _, err := p.mapping(node, "kind"); err != nil {
			return nil, err
		}

		return primitiveTypes[kind], nil
	default:
		return nil, p.errorf(node, "unknown kind %q", kind)
	}
}

func (p *schemaParser) scalarType(node *yaml.Node) (m.ValueType, error) {
	name := strings.TrimSpace(node.Value)

	if t, ok := primitiveTypes[name]; ok {
		return t, nil
	}

	if name == "" || name == "~" {
		return nil, p.errorf(node, "empty type")
	}

	return m.Named(name), nil
}

func (p *schemaParser) required(node *yaml.Node, fields map[string]*yaml.Node, key string) (m.ValueType, error) {
	value, ok := fields[key]
	if !ok {
		return nil, p.errorf(node, "%s requires %q", valueOf(node, "kind").Value, key)
	}

	return p.valueType(value)
}

func (p *schemaParser) typeList(node *yaml.Node) ([]m.ValueType, error) {
	if node == nil {
		return nil, nil
	}

	if node.Kind != yaml.SequenceNode {
		return nil, p.errorf(node, "expected a sequence of types")
	}

	types := make([]m.ValueType, 0, len(node.Content))

	for _, item := range node.Content {
		t, err := p.valueType(item)
		if err != nil {
			return nil, err
		}

		types = append(types, t)
	}

	return types, nil
}

func (p *schemaParser) nameType(node *yaml.Node, fields map[string]*yaml.Node) (m.ValueType, error) {
	name, ok := fields["name"]
	if !ok || name.Kind != yaml.ScalarNode || name.Value == "" {
		return nil, p.errorf(node, "name reference needs a name")
	}

	args, err := p.typeList(fields["args"])
	if err != nil {
		return nil, err
	}

	return m.Named(name.Value, args...), nil
}

func (p *schemaParser) literalType(node, value *yaml.Node) (m.ValueType, error) {
	if value == nil || value.Kind != yaml.ScalarNode {
		return nil, p.errorf(node, "literal requires a scalar value")
	}

	v, err := p.primitive(value)
	if err != nil {
		return nil, err
	}

	return m.LiteralOf(v), nil
}

func (p *schemaParser) primitive(node *yaml.Node) (any, error) {
	switch node.Tag {
	case "!!int", "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return nil, p.errorf(node, "invalid number %q", node.Value)
		}

		return f, nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, p.errorf(node, "invalid boolean %q", node.Value)
		}

		return b, nil
	case "!!str":
		return node.Value, nil
	default:
		return nil, p.errorf(node, "unsupported literal %q", node.Value)
	}
}

func (p *schemaParser) enumType(node, options *yaml.Node) (m.ValueType, error) {
	if options == nil {
		return nil, p.errorf(node, "enum requires options")
	}

	var result []m.EnumOption

	switch options.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(options.Content); i += 2 {
			key, value := options.Content[i], resolveAlias(options.Content[i+1])

			v, err := p.enumValue(value)
			if err != nil {
				return nil, err
			}

			result = append(result, m.EnumOption{Name: key.Value, Value: v})
		}
	case yaml.SequenceNode:
		for _, item := range options.Content {
			item = resolveAlias(item)

			v, err := p.enumValue(item)
			if err != nil {
				return nil, err
			}

			result = append(result, m.EnumOption{Name: item.Value, Value: v})
		}
	default:
		return nil, p.errorf(options, "enum options must be a mapping or a sequence")
	}

	return m.EnumOf(result...), nil
}

func (p *schemaParser) enumValue(node *yaml.Node) (any, error) {
	if node.Kind != yaml.ScalarNode {
		return nil, p.errorf(node, "enum values must be scalars")
	}

	v, err := p.primitive(node)
	if err != nil {
		return nil, err
	}

	if _, ok := v.(bool); ok {
		return nil, p.errorf(node, "enum values must be strings or numbers")
	}

	return v, nil
}

func (p *schemaParser) objectType(node *yaml.Node) (m.ValueType, error) {
	if node == nil {
		return m.ObjectOf(), nil
	}

	if node.Kind != yaml.MappingNode {
		return nil, p.errorf(node, "fields must be a mapping")
	}

	fields := make([]m.Field, 0, len(node.Content)/2)
	seen := map[string]bool{}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], resolveAlias(node.Content[i+1])

		field := m.Field{Name: key.Value}
		if name, ok := strings.CutSuffix(key.Value, "?"); ok {
			field.Name = name
			field.Optional = true
		}

		if seen[field.Name] {
			return nil, p.errorf(key, "field %q declared twice", field.Name)
		}

		seen[field.Name] = true

		if value.Kind == yaml.MappingNode && hasKey(value, "type") && !hasKey(value, "kind") {
			spec, err := p.mapping(value, "type", "optional")
			if err != nil {
				return nil, err
			}

			if opt, ok := spec["optional"]; ok {
				var optional bool
				if err := opt.Decode(&optional); err != nil {
					return nil, p.errorf(opt, "optional must be a boolean")
				}

				field.Optional = field.Optional || optional
			}

			value = spec["type"]
		}

		t, err := p.valueType(value)
		if err != nil {
			return nil, errors.Wrapf(err, "field %s", field.Name)
		}

		field.Type = t
		fields = append(fields, field)
	}

	return m.ObjectOf(fields...), nil
}

func (p *schemaParser) keyedType(node *yaml.Node, kind string) (m.ValueType, error) {
	fields, err := p.mapping(node, "kind", "keys", "values")
	if err != nil {
		return nil, err
	}

	keys := m.TypeString
	if keyNode, ok := fields["keys"]; ok {
		if keys, err = p.valueType(keyNode); err != nil {
			return nil, err
		}
	}

	values, err := p.required(node, fields, "values")
	if err != nil {
		return nil, err
	}

	if kind == string(m.KindMap) {
		return m.MapOf(keys, values), nil
	}

	return m.RecordOf(keys, values), nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	return node
}

func hasKey(node *yaml.Node, key string) bool {
	return valueOf(node, key) != nil
}

func valueOf(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}

	return nil
}
