package model

// ValueKind names the tag of a Value.
type ValueKind string

// Value tags.
const (
	ValueUndefined ValueKind = "undefined"
	ValueNull      ValueKind = "null"
	ValueBoolean   ValueKind = "boolean"
	ValueString    ValueKind = "string"
	ValueNumber    ValueKind = "number"
	ValueArray     ValueKind = "array"
	ValueSet       ValueKind = "set"
	ValueObject    ValueKind = "object"
	ValueMap       ValueKind = "map"
	ValueFunction  ValueKind = "function"
	ValuePromise   ValueKind = "promise"
)

// Value is a synthesized example value that can be rendered back to source.
// Like ValueType, the set of implementations is closed.
type Value interface {
	Kind() ValueKind
	value()
}

type isValue struct{}

func (isValue) value() {}

// UndefinedValue is the absence of a value.
type UndefinedValue struct{ isValue }

// NullValue is null.
type NullValue struct{ isValue }

// BooleanValue is true or false.
type BooleanValue struct {
	isValue
	Value bool
}

// StringValue is a string.
type StringValue struct {
	isValue
	Value string
}

// NumberValue is a number.
type NumberValue struct {
	isValue
	Value float64
}

// ArrayValue is an ordered list of values.
type ArrayValue struct {
	isValue
	Items []Value
}

// SetValue is an ordered list of values with set semantics.
type SetValue struct {
	isValue
	Items []Value
}

// ObjectEntry is either a key/value pair or a spread of another value.
type ObjectEntry struct {
	Key    Value // nil when Spread is set
	Value  Value
	Spread bool
}

// ObjectValue is an ordered list of entries.
type ObjectValue struct {
	isValue
	Entries []ObjectEntry
}

// MapValue is an ordered list of key/value entries rendered as a Map.
type MapValue struct {
	isValue
	Entries []ObjectEntry
}

// FunctionValue holds the literal source text of a function expression.
type FunctionValue struct {
	isValue
	Source string
}

// PromiseOutcome is how a PromiseValue settles.
type PromiseOutcome string

// Promise outcomes.
const (
	PromiseRejected PromiseOutcome = "reject"
	PromiseResolved PromiseOutcome = "resolve"
)

// PromiseValue is a settled promise. Value is only set for resolved promises
// and Message is only meaningful for rejected ones.
type PromiseValue struct {
	isValue
	Outcome PromiseOutcome
	Value   Value
	Message *string
}

func (UndefinedValue) Kind() ValueKind { return ValueUndefined }
func (NullValue) Kind() ValueKind      { return ValueNull }
func (BooleanValue) Kind() ValueKind   { return ValueBoolean }
func (StringValue) Kind() ValueKind    { return ValueString }
func (NumberValue) Kind() ValueKind    { return ValueNumber }
func (ArrayValue) Kind() ValueKind     { return ValueArray }
func (SetValue) Kind() ValueKind       { return ValueSet }
func (ObjectValue) Kind() ValueKind    { return ValueObject }
func (MapValue) Kind() ValueKind       { return ValueMap }
func (FunctionValue) Kind() ValueKind  { return ValueFunction }
func (PromiseValue) Kind() ValueKind   { return ValuePromise }

// Canonical instances.
var (
	Undefined   Value = UndefinedValue{}
	Null        Value = NullValue{}
	True        Value = BooleanValue{Value: true}
	False       Value = BooleanValue{Value: false}
	EmptyArray        = ArrayValue{Items: []Value{}}
	EmptyObject       = ObjectValue{Entries: []ObjectEntry{}}
)

// Bool returns True or False.
func Bool(b bool) Value {
	if b {
		return True
	}

	return False
}

// String returns a StringValue.
func String(s string) StringValue {
	return StringValue{Value: s}
}

// Number returns a NumberValue.
func Number(n float64) NumberValue {
	return NumberValue{Value: n}
}

// Array returns an ArrayValue holding a copy of items.
func Array(items ...Value) ArrayValue {
	return ArrayValue{Items: append([]Value{}, items...)}
}

// Set returns a SetValue with the items of a.
func Set(a ArrayValue) SetValue {
	return SetValue{Items: append([]Value{}, a.Items...)}
}

// KeyEntry returns a key/value object entry.
func KeyEntry(key, value Value) ObjectEntry {
	return ObjectEntry{Key: key, Value: value}
}

// SpreadEntry returns an entry spreading value into the enclosing object.
func SpreadEntry(value Value) ObjectEntry {
	return ObjectEntry{Value: value, Spread: true}
}

// Object returns an ObjectValue holding a copy of entries.
func Object(entries ...ObjectEntry) ObjectValue {
	return ObjectValue{Entries: append([]ObjectEntry{}, entries...)}
}

// Map returns a MapValue with the entries of o.
func Map(o ObjectValue) MapValue {
	return MapValue{Entries: append([]ObjectEntry{}, o.Entries...)}
}

// Fn returns a FunctionValue for the given source text.
func Fn(source string) FunctionValue {
	return FunctionValue{Source: source}
}

// PromiseReject returns a rejected promise. A nil message rejects without an error message.
func PromiseReject(message *string) PromiseValue {
	return PromiseValue{Outcome: PromiseRejected, Message: message}
}

// PromiseResolve returns a promise resolved with v.
func PromiseResolve(v Value) PromiseValue {
	return PromiseValue{Outcome: PromiseResolved, Value: v}
}

// IsEmptyObject reports whether v is an object without entries.
func IsEmptyObject(v Value) bool {
	o, ok := v.(ObjectValue)
	return ok && len(o.Entries) == 0
}
