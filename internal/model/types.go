// Package model defines the data structures shared by the synthesizer,
// its collaborators and the CLI.
package model

// TypeKind names the tag of a ValueType.
type TypeKind string

// Type tags understood by the synthesizer.
const (
	KindAny          TypeKind = "any"
	KindUnknown      TypeKind = "unknown"
	KindNever        TypeKind = "never"
	KindVoid         TypeKind = "void"
	KindNull         TypeKind = "null"
	KindBoolean      TypeKind = "boolean"
	KindString       TypeKind = "string"
	KindNode         TypeKind = "node"
	KindNumber       TypeKind = "number"
	KindLiteral      TypeKind = "literal"
	KindEnum         TypeKind = "enum"
	KindArray        TypeKind = "array"
	KindSet          TypeKind = "set"
	KindTuple        TypeKind = "tuple"
	KindObject       TypeKind = "object"
	KindMap          TypeKind = "map"
	KindRecord       TypeKind = "record"
	KindUnion        TypeKind = "union"
	KindIntersection TypeKind = "intersection"
	KindFunction     TypeKind = "function"
	KindPromise      TypeKind = "promise"
	KindName         TypeKind = "name"
)

// ValueType is the structural description of a value's shape.
//
// The set of implementations is closed: only the types declared in this
// file satisfy the interface.
type ValueType interface {
	Kind() TypeKind
	valueType()
}

type isValueType struct{}

func (isValueType) valueType() {}

// AnyType is the opaque "any" type.
type AnyType struct{ isValueType }

// UnknownType is the opaque "unknown" type.
type UnknownType struct{ isValueType }

// NeverType is the uninhabited type.
type NeverType struct{ isValueType }

// VoidType is the absence of a value.
type VoidType struct{ isValueType }

// NullType only admits null.
type NullType struct{ isValueType }

// BooleanType admits true and false.
type BooleanType struct{ isValueType }

// StringType admits any string.
type StringType struct{ isValueType }

// NodeType is renderable UI content. It is synthesized as a string.
type NodeType struct{ isValueType }

// NumberType admits any number.
type NumberType struct{ isValueType }

// LiteralType admits exactly one primitive value: a string, float64 or bool.
type LiteralType struct {
	isValueType
	Value any
}

// EnumOption is a single named member of an EnumType.
type EnumOption struct {
	Name  string
	Value any // string or float64
}

// EnumType admits the value of any of its options, in declaration order.
type EnumType struct {
	isValueType
	Options []EnumOption
}

// ArrayType is a homogeneous sequence.
type ArrayType struct {
	isValueType
	Items ValueType
}

// SetType is an ArrayType with set semantics.
type SetType struct {
	isValueType
	Items ValueType
}

// TupleType is a fixed-length heterogeneous sequence.
type TupleType struct {
	isValueType
	Items []ValueType
}

// Field is a single named member of an ObjectType.
type Field struct {
	Name     string
	Type     ValueType
	Optional bool
}

// ObjectType is an ordered set of fields.
type ObjectType struct {
	isValueType
	Fields []Field
}

// MapType is a keyed collection rendered as a Map.
type MapType struct {
	isValueType
	Keys   ValueType
	Values ValueType
}

// RecordType is a keyed collection rendered as a plain object.
type RecordType struct {
	isValueType
	Keys   ValueType
	Values ValueType
}

// UnionType admits a value of any of its members.
type UnionType struct {
	isValueType
	Types []ValueType
}

// IntersectionType admits values satisfying all of its members.
type IntersectionType struct {
	isValueType
	Types []ValueType
}

// FunctionType is a callable.
type FunctionType struct {
	isValueType
	Params     []ValueType
	ReturnType ValueType
}

// PromiseType wraps the type a promise eventually settles with.
type PromiseType struct {
	isValueType
	Type ValueType
}

// NameType references a declaration in CollectedTypes, optionally with type arguments.
type NameType struct {
	isValueType
	Name string
	Args []ValueType
}

func (AnyType) Kind() TypeKind          { return KindAny }
func (UnknownType) Kind() TypeKind      { return KindUnknown }
func (NeverType) Kind() TypeKind        { return KindNever }
func (VoidType) Kind() TypeKind         { return KindVoid }
func (NullType) Kind() TypeKind         { return KindNull }
func (BooleanType) Kind() TypeKind      { return KindBoolean }
func (StringType) Kind() TypeKind       { return KindString }
func (NodeType) Kind() TypeKind         { return KindNode }
func (NumberType) Kind() TypeKind       { return KindNumber }
func (LiteralType) Kind() TypeKind      { return KindLiteral }
func (EnumType) Kind() TypeKind         { return KindEnum }
func (ArrayType) Kind() TypeKind        { return KindArray }
func (SetType) Kind() TypeKind          { return KindSet }
func (TupleType) Kind() TypeKind        { return KindTuple }
func (ObjectType) Kind() TypeKind       { return KindObject }
func (MapType) Kind() TypeKind          { return KindMap }
func (RecordType) Kind() TypeKind       { return KindRecord }
func (UnionType) Kind() TypeKind        { return KindUnion }
func (IntersectionType) Kind() TypeKind { return KindIntersection }
func (FunctionType) Kind() TypeKind     { return KindFunction }
func (PromiseType) Kind() TypeKind      { return KindPromise }
func (NameType) Kind() TypeKind         { return KindName }

// Singletons for the parameterless tags.
var (
	TypeAny     ValueType = AnyType{}
	TypeUnknown ValueType = UnknownType{}
	TypeNever   ValueType = NeverType{}
	TypeVoid    ValueType = VoidType{}
	TypeNull    ValueType = NullType{}
	TypeBoolean ValueType = BooleanType{}
	TypeString  ValueType = StringType{}
	TypeNode    ValueType = NodeType{}
	TypeNumber  ValueType = NumberType{}
)

// LiteralOf returns a LiteralType for a string, float64, int or bool value.
func LiteralOf(value any) LiteralType {
	if i, ok := value.(int); ok {
		value = float64(i)
	}

	return LiteralType{Value: value}
}

// EnumOf returns an EnumType with the given options.
func EnumOf(options ...EnumOption) EnumType {
	return EnumType{Options: options}
}

// ArrayOf returns an ArrayType of items.
func ArrayOf(items ValueType) ArrayType {
	return ArrayType{Items: items}
}

// SetOf returns a SetType of items.
func SetOf(items ValueType) SetType {
	return SetType{Items: items}
}

// TupleOf returns a TupleType with one slot per item.
func TupleOf(items ...ValueType) TupleType {
	return TupleType{Items: items}
}

// ObjectOf returns an ObjectType with the given fields.
func ObjectOf(fields ...Field) ObjectType {
	return ObjectType{Fields: fields}
}

// Required declares a mandatory object field.
func Required(name string, t ValueType) Field {
	return Field{Name: name, Type: t}
}

// Optional declares an optional object field.
func Optional(name string, t ValueType) Field {
	return Field{Name: name, Type: t, Optional: true}
}

// MapOf returns a MapType.
func MapOf(keys, values ValueType) MapType {
	return MapType{Keys: keys, Values: values}
}

// RecordOf returns a RecordType.
func RecordOf(keys, values ValueType) RecordType {
	return RecordType{Keys: keys, Values: values}
}

// UnionOf returns a UnionType of types.
func UnionOf(types ...ValueType) UnionType {
	return UnionType{Types: types}
}

// IntersectionOf returns an IntersectionType of types.
func IntersectionOf(types ...ValueType) IntersectionType {
	return IntersectionType{Types: types}
}

// FunctionOf returns a FunctionType.
func FunctionOf(returnType ValueType, params ...ValueType) FunctionType {
	return FunctionType{Params: params, ReturnType: returnType}
}

// PromiseOf returns a PromiseType.
func PromiseOf(t ValueType) PromiseType {
	return PromiseType{Type: t}
}

// Named returns a NameType referencing name with optional type arguments.
func Named(name string, args ...ValueType) NameType {
	return NameType{Name: name, Args: args}
}
