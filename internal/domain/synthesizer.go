package domain

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/kongweiying2/previewjs/internal/adapter"
	"github.com/kongweiying2/previewjs/internal/domain/render"
	"github.com/kongweiying2/previewjs/internal/domain/typeinfo"
	m "github.com/kongweiying2/previewjs/internal/model"
)

const (
	defaultParallelism = 4

	randomNumberMin    = -5000
	randomNumberMax    = 5000
	randomWordsMax     = 10
	randomArrayLenMax  = 3
	functionReturnStub = "() => {}"
)

// SynthesisOptions tunes a single Synthesize call.
type SynthesisOptions struct {
	// FieldName seeds the string heuristic for the top-level value.
	FieldName string
	// Random switches from canonical to randomized examples.
	Random bool
}

// Synthesizer produces example values for types.
type Synthesizer interface {
	// Synthesize returns a value conforming to t. Named types are resolved
	// against collected. The only errors are exhaustiveness violations and
	// failures of the renderer or formatter.
	Synthesize(ctx context.Context, t m.ValueType, collected m.CollectedTypes, opts SynthesisOptions) (m.Value, error)
}

// Renderer turns a value into source text.
type Renderer interface {
	Render(v m.Value) (string, error)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(v m.Value) (string, error)

// Render implements Renderer.
func (f RendererFunc) Render(v m.Value) (string, error) {
	return f(v)
}

// SynthesizerOption configures a Synthesizer.
type SynthesizerOption func(*synthesizer)

// WithRandom sets the random source used in randomized mode.
func WithRandom(r Random) SynthesizerOption {
	return func(s *synthesizer) {
		if r != nil {
			s.random = r
		}
	}
}

// WithRenderer replaces the JavaScript renderer used for function bodies.
func WithRenderer(r Renderer) SynthesizerOption {
	return func(s *synthesizer) {
		if r != nil {
			s.renderer = r
		}
	}
}

// WithParallelism bounds how many sibling values are synthesized at once.
// Values below 2 synthesize siblings sequentially.
func WithParallelism(n int) SynthesizerOption {
	return func(s *synthesizer) {
		s.parallelism = n
	}
}

type synthesizer struct {
	adapter.SourceFormatter

	renderer    Renderer
	random      Random
	parallelism int
}

// NewSynthesizer constructs a Synthesizer that formats generated functions
// with formatter.
func NewSynthesizer(formatter adapter.SourceFormatter, options ...SynthesizerOption) Synthesizer {
	s := &synthesizer{
		SourceFormatter: formatter,
		renderer:        RendererFunc(render.JavaScript),
		random:          NewRandom(0),
		parallelism:     defaultParallelism,
	}

	for _, option := range options {
		option(s)
	}

	return s
}

// scope is the per-path synthesis state. It is passed by value and visited
// is cloned before it grows, so sibling branches never share it.
type scope struct {
	collected        m.CollectedTypes
	fieldName        string
	visited          []string
	random           bool
	inFunctionReturn bool
}

func (sc scope) withField(name string) scope {
	sc.fieldName = name
	return sc
}

func (sc scope) enter(names []string) scope {
	if len(names) > 0 {
		sc.visited = append(slices.Clone(sc.visited), names...)
	}

	return sc
}

func (s *synthesizer) Synthesize(
	ctx context.Context,
	t m.ValueType,
	collected m.CollectedTypes,
	opts SynthesisOptions,
) (m.Value, error) {
	sc := scope{
		collected: collected,
		fieldName: opts.FieldName,
		visited:   []string{},
		random:    opts.Random,
	}

	return s.synthesize(ctx, t, sc)
}

//nolint:cyclop,gocyclo // One case per type kind.
func (s *synthesizer) synthesize(ctx context.Context, t m.ValueType, sc scope) (m.Value, error) {
	if t == nil {
		return nil, errors.AssertionFailedf("cannot synthesize a nil type (field %q)", sc.fieldName)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resolved, encountered := typeinfo.DereferenceType(t, sc.collected, sc.visited)
	sc = sc.enter(encountered)

	switch t := resolved.(type) {
	case m.AnyType, m.UnknownType, m.NeverType, m.VoidType:
		return m.Undefined, nil
	case m.NullType:
		return m.Null, nil
	case m.BooleanType:
		if sc.random {
			return m.Bool(s.random.Bool()), nil
		}

		return m.False, nil
	case m.StringType, m.NodeType:
		return s.stringValue(sc), nil
	case m.NumberType:
		if sc.random {
			return m.Number(float64(s.random.IntRange(randomNumberMin, randomNumberMax))), nil
		}

		return m.Number(0), nil
	case m.LiteralType:
		return primitiveValue(t.Value)
	case m.EnumType:
		return s.enumValue(t, sc)
	case m.ArrayType:
		return s.arrayValue(ctx, t.Items, sc)
	case m.SetType:
		items, err := s.arrayValue(ctx, t.Items, sc)
		if err != nil {
			return nil, err
		}

		return m.Set(items), nil
	case m.TupleType:
		return s.tupleValue(ctx, t, sc)
	case m.ObjectType:
		return s.objectValue(ctx, t, sc)
	case m.MapType:
		entries, err := s.recordValue(ctx, t.Keys, t.Values, sc)
		if err != nil {
			return nil, err
		}

		return m.Map(entries), nil
	case m.RecordType:
		return s.recordValue(ctx, t.Keys, t.Values, sc)
	case m.UnionType:
		return s.unionValue(ctx, t, sc)
	case m.IntersectionType:
		// No general meet of structural types: the first member wins.
		if len(t.Types) == 0 {
			return m.Undefined, nil
		}

		return s.synthesize(ctx, t.Types[0], sc)
	case m.FunctionType:
		return s.functionValue(ctx, t, sc)
	case m.PromiseType:
		return m.PromiseReject(nil), nil
	case m.NameType:
		if len(encountered) == 0 {
			slog.Debug("unresolvable type name", "name", t.Name, "visited", sc.visited)
			return m.Undefined, nil
		}

		return s.synthesize(ctx, t, sc)
	default:
		return nil, errors.AssertionFailedf("unhandled type kind %q (%T)", resolved.Kind(), resolved)
	}
}

// stringValue derives a readable default from the trailing segment of a
// scoped field name such as "Container:value".
func (s *synthesizer) stringValue(sc scope) m.Value {
	if sc.random {
		return m.String(s.random.Words(s.random.IntRange(0, randomWordsMax)))
	}

	name := sc.fieldName
	if i := strings.LastIndex(name, ":"); i >= 0 {
		name = name[i+1:]
	}

	return m.String(strings.TrimSpace(name))
}

func primitiveValue(v any) (m.Value, error) {
	switch v := v.(type) {
	case string:
		return m.String(v), nil
	case float64:
		return m.Number(v), nil
	case int:
		return m.Number(float64(v)), nil
	case bool:
		return m.Bool(v), nil
	default:
		return nil, errors.AssertionFailedf("unsupported literal value %v (%T)", v, v)
	}
}

func (s *synthesizer) enumValue(t m.EnumType, sc scope) (m.Value, error) {
	if len(t.Options) == 0 {
		return m.String("unknown"), nil
	}

	index := 0
	if sc.random {
		index = s.random.IntRange(0, len(t.Options))
	}

	value := t.Options[index].Value
	if str, ok := value.(string); ok && str == "" {
		return m.String("unknown"), nil
	}

	if value == nil {
		return m.String("unknown"), nil
	}

	return primitiveValue(value)
}

func (s *synthesizer) arrayValue(ctx context.Context, items m.ValueType, sc scope) (m.ArrayValue, error) {
	if sc.inFunctionReturn {
		return m.EmptyArray, nil
	}

	length := 1
	if sc.random {
		length = s.random.IntRange(0, randomArrayLenMax)
	}

	jobs := make([]synthesisJob, length)
	for i := range jobs {
		jobs[i] = synthesisJob{t: items, sc: sc}
	}

	values, err := s.synthesizeAll(ctx, sc.random, jobs)
	if err != nil {
		return m.ArrayValue{}, err
	}

	return collapse(values), nil
}

func (s *synthesizer) tupleValue(ctx context.Context, t m.TupleType, sc scope) (m.Value, error) {
	jobs := make([]synthesisJob, len(t.Items))
	for i, item := range t.Items {
		jobs[i] = synthesisJob{t: item, sc: sc}
	}

	values, err := s.synthesizeAll(ctx, sc.random, jobs)
	if err != nil {
		return nil, err
	}

	return collapse(values), nil
}

// collapse returns EmptyArray when no item carries information.
func collapse(values []m.Value) m.ArrayValue {
	for _, v := range values {
		if v.Kind() != m.ValueUndefined && !m.IsEmptyObject(v) {
			return m.Array(values...)
		}
	}

	return m.EmptyArray
}

func (s *synthesizer) objectValue(ctx context.Context, t m.ObjectType, sc scope) (m.Value, error) {
	jobs := make([]synthesisJob, 0, len(t.Fields))
	names := make([]string, 0, len(t.Fields))

	for _, field := range t.Fields {
		if field.Optional && (!sc.random || s.random.Bool()) {
			continue
		}

		if !typeinfo.IsValidPropName(field.Name) {
			slog.Debug("skipping field with invalid property name", "field", field.Name)
			continue
		}

		jobs = append(jobs, synthesisJob{t: field.Type, sc: sc.withField(field.Name)})
		names = append(names, field.Name)
	}

	values, err := s.synthesizeAll(ctx, sc.random, jobs)
	if err != nil {
		return nil, err
	}

	entries := make([]m.ObjectEntry, 0, len(values))

	for i, v := range values {
		if v.Kind() == m.ValueUndefined {
			continue
		}

		entries = append(entries, m.KeyEntry(m.String(names[i]), v))
	}

	return m.Object(entries...), nil
}

func (s *synthesizer) recordValue(ctx context.Context, keys, values m.ValueType, sc scope) (m.ObjectValue, error) {
	if !sc.random {
		return m.EmptyObject, nil
	}

	items, err := s.arrayValue(ctx, values, sc)
	if err != nil {
		return m.ObjectValue{}, err
	}

	entries := make([]m.ObjectEntry, 0, len(items.Items))

	for _, v := range items.Items {
		key, err := s.synthesize(ctx, keys, sc)
		if err != nil {
			return m.ObjectValue{}, err
		}

		entries = append(entries, m.KeyEntry(key, v))
	}

	return m.Object(entries...), nil
}

var unionProbes = []m.Value{m.Undefined, m.Null, m.False}

func (s *synthesizer) unionValue(ctx context.Context, t m.UnionType, sc scope) (m.Value, error) {
	if len(t.Types) == 0 {
		return m.Undefined, nil
	}

	if sc.random {
		return s.synthesize(ctx, t.Types[s.random.IntRange(0, len(t.Types))], sc)
	}

	for _, probe := range unionProbes {
		if typeinfo.IsValid(t, sc.collected, probe) {
			return probe, nil
		}
	}

	return s.synthesize(ctx, t.Types[0], sc)
}

func (s *synthesizer) functionValue(ctx context.Context, t m.FunctionType, sc scope) (m.Value, error) {
	if sc.inFunctionReturn {
		return m.Fn(functionReturnStub), nil
	}

	inner := sc
	inner.inFunctionReturn = true

	returned, err := s.synthesize(ctx, t.ReturnType, inner)
	if err != nil {
		return nil, err
	}

	expr, err := s.renderer.Render(returned)
	if err != nil {
		return nil, errors.Wrapf(err, "render return value of %q", sc.fieldName)
	}

	var body strings.Builder

	body.WriteString("() => {\n")
	fmt.Fprintf(&body, "  console.log(%s);\n", render.Quote(sc.fieldName+" invoked"))

	if expr != "undefined" {
		fmt.Fprintf(&body, "  return %s;\n", expr)
	}

	body.WriteString("}")

	source, err := s.FormatExpression(ctx, body.String())
	if err != nil {
		return nil, errors.Wrapf(err, "format function for %q", sc.fieldName)
	}

	return m.Fn(source), nil
}

type synthesisJob struct {
	t  m.ValueType
	sc scope
}

// synthesizeAll synthesizes sibling values and returns them in job order.
// Randomized runs stay sequential so a seeded source reproduces its output.
func (s *synthesizer) synthesizeAll(ctx context.Context, random bool, jobs []synthesisJob) ([]m.Value, error) {
	values := make([]m.Value, len(jobs))

	if random || s.parallelism < 2 || len(jobs) < 2 {
		for i, job := range jobs {
			v, err := s.synthesize(ctx, job.t, job.sc)
			if err != nil {
				return nil, err
			}

			values[i] = v
		}

		return values, nil
	}

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(s.parallelism)

	for i, job := range jobs {
		group.Go(func() error {
			v, err := s.synthesize(gctx, job.t, job.sc)
			if err != nil {
				return err
			}

			values[i] = v

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return values, nil
}
