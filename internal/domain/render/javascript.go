// Package render turns synthesized values into JavaScript expressions.
package render

import (
	"bytes"
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	m "github.com/kongweiying2/previewjs/internal/model"
)

var identifier = regexp.MustCompile(`^[a-zA-Z_$][a-zA-Z0-9_$]*$`)

// JavaScript renders v as a single JavaScript expression.
func JavaScript(v m.Value) (string, error) {
	var sb strings.Builder
	if err := write(&sb, v); err != nil {
		return "", err
	}

	return sb.String(), nil
}

func write(sb *strings.Builder, v m.Value) error {
	switch v := v.(type) {
	case m.UndefinedValue:
		sb.WriteString("undefined")
	case m.NullValue:
		sb.WriteString("null")
	case m.BooleanValue:
		sb.WriteString(strconv.FormatBool(v.Value))
	case m.StringValue:
		sb.WriteString(Quote(v.Value))
	case m.NumberValue:
		sb.WriteString(formatNumber(v.Value))
	case m.ArrayValue:
		return writeList(sb, "[", "]", v.Items)
	case m.SetValue:
		return writeList(sb, "new Set([", "])", v.Items)
	case m.ObjectValue:
		return writeObject(sb, v.Entries)
	case m.MapValue:
		return writeMap(sb, v.Entries)
	case m.FunctionValue:
		sb.WriteString(v.Source)
	case m.PromiseValue:
		return writePromise(sb, v)
	default:
		return errors.AssertionFailedf("cannot render value of type %T", v)
	}

	return nil
}

func writeList(sb *strings.Builder, open, closing string, items []m.Value) error {
	sb.WriteString(open)

	for i, item := range items {
		if i > 0 {
			sb.WriteString(", ")
		}

		if err := write(sb, item); err != nil {
			return err
		}
	}

	sb.WriteString(closing)

	return nil
}

func writeObject(sb *strings.Builder, entries []m.ObjectEntry) error {
	if len(entries) == 0 {
		sb.WriteString("{}")
		return nil
	}

	sb.WriteString("{ ")

	for i, entry := range entries {
		if i > 0 {
			sb.WriteString(", ")
		}

		if entry.Spread {
			sb.WriteString("...")
		} else {
			if err := writeKey(sb, entry.Key); err != nil {
				return err
			}

			sb.WriteString(": ")
		}

		if err := write(sb, entry.Value); err != nil {
			return err
		}
	}

	sb.WriteString(" }")

	return nil
}

func writeKey(sb *strings.Builder, key m.Value) error {
	switch key := key.(type) {
	case m.StringValue:
		if identifier.MatchString(key.Value) {
			sb.WriteString(key.Value)
		} else {
			sb.WriteString(Quote(key.Value))
		}
	case m.NumberValue:
		if isBareNumberKey(key.Value) {
			sb.WriteString(formatNumber(key.Value))
		} else {
			sb.WriteString("[" + formatNumber(key.Value) + "]")
		}
	default:
		sb.WriteString("[")

		if err := write(sb, key); err != nil {
			return err
		}

		sb.WriteString("]")
	}

	return nil
}

func writeMap(sb *strings.Builder, entries []m.ObjectEntry) error {
	sb.WriteString("new Map([")

	for i, entry := range entries {
		if i > 0 {
			sb.WriteString(", ")
		}

		if entry.Spread {
			sb.WriteString("...")

			if err := write(sb, entry.Value); err != nil {
				return err
			}

			continue
		}

		sb.WriteString("[")

		if err := write(sb, entry.Key); err != nil {
			return err
		}

		sb.WriteString(", ")

		if err := write(sb, entry.Value); err != nil {
			return err
		}

		sb.WriteString("]")
	}

	sb.WriteString("])")

	return nil
}

func writePromise(sb *strings.Builder, p m.PromiseValue) error {
	switch p.Outcome {
	case m.PromiseRejected:
		if p.Message == nil {
			sb.WriteString("Promise.reject()")
			return nil
		}

		sb.WriteString("Promise.reject(new Error(")
		sb.WriteString(Quote(*p.Message))
		sb.WriteString("))")
	case m.PromiseResolved:
		if p.Value == nil || p.Value.Kind() == m.ValueUndefined {
			sb.WriteString("Promise.resolve()")
			return nil
		}

		sb.WriteString("Promise.resolve(")

		if err := write(sb, p.Value); err != nil {
			return err
		}

		sb.WriteString(")")
	default:
		return errors.AssertionFailedf("unknown promise outcome %q", p.Outcome)
	}

	return nil
}

// Quote returns s as a double-quoted JavaScript string literal.
func Quote(s string) string {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = enc.Encode(s)

	return strings.TrimSuffix(buf.String(), "\n")
}

// isBareNumberKey reports whether n is a numeric literal usable as a plain property name.
func isBareNumberKey(n float64) bool {
	return n >= 0 && !math.IsInf(n, 1)
}

func formatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	case n == 0:
		return "0"
	case n == math.Trunc(n) && math.Abs(n) < 1e21:
		return strconv.FormatFloat(n, 'f', -1, 64)
	default:
		return strconv.FormatFloat(n, 'g', -1, 64)
	}
}
