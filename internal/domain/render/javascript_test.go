package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/kongweiying2/previewjs/internal/model"
)

func TestJavaScript(t *testing.T) {
	message := "boom"

	tests := []struct {
		name  string
		value m.Value
		want  string
	}{
		{"undefined", m.Undefined, "undefined"},
		{"null", m.Null, "null"},
		{"true", m.True, "true"},
		{"false", m.False, "false"},
		{"string", m.String(`say "hi"`), `"say \"hi\""`},
		{"string keeps html characters", m.String("<b>&</b>"), `"<b>&</b>"`},
		{"integer", m.Number(42), "42"},
		{"negative integer", m.Number(-5000), "-5000"},
		{"large integer", m.Number(1e6), "1000000"},
		{"fraction", m.Number(1.5), "1.5"},
		{"negative zero", m.Number(math.Copysign(0, -1)), "0"},
		{"NaN", m.Number(math.NaN()), "NaN"},
		{"infinity", m.Number(math.Inf(-1)), "-Infinity"},
		{"empty array", m.EmptyArray, "[]"},
		{"array", m.Array(m.Number(1), m.String("a")), `[1, "a"]`},
		{"set", m.Set(m.Array(m.Number(1))), "new Set([1])"},
		{"empty object", m.EmptyObject, "{}"},
		{
			"object",
			m.Object(
				m.KeyEntry(m.String("label"), m.String("label")),
				m.KeyEntry(m.String("aria-label"), m.Null),
				m.KeyEntry(m.Number(1), m.True),
				m.KeyEntry(m.Null, m.False),
				m.SpreadEntry(m.EmptyObject),
			),
			`{ label: "label", "aria-label": null, 1: true, [null]: false, ...{} }`,
		},
		{
			"number keys",
			m.Object(
				m.KeyEntry(m.Number(0), m.True),
				m.KeyEntry(m.Number(1.5), m.True),
				m.KeyEntry(m.Number(-3), m.Number(7)),
				m.KeyEntry(m.Number(math.Copysign(0, -1)), m.True),
				m.KeyEntry(m.Number(math.Inf(-1)), m.True),
				m.KeyEntry(m.Number(math.Inf(1)), m.True),
				m.KeyEntry(m.Number(math.NaN()), m.True),
			),
			`{ 0: true, 1.5: true, [-3]: 7, 0: true, [-Infinity]: true, [Infinity]: true, [NaN]: true }`,
		},
		{"map", m.Map(m.Object(m.KeyEntry(m.String("k"), m.Number(1)))), `new Map([["k", 1]])`},
		{"empty map", m.Map(m.EmptyObject), "new Map([])"},
		{"function", m.Fn("() => {}"), "() => {}"},
		{"rejected promise", m.PromiseReject(nil), "Promise.reject()"},
		{"rejected promise with message", m.PromiseReject(&message), `Promise.reject(new Error("boom"))`},
		{"resolved promise", m.PromiseResolve(m.Number(1)), "Promise.resolve(1)"},
		{"resolved promise without value", m.PromiseResolve(m.Undefined), "Promise.resolve()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := JavaScript(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJavaScript_InvalidValue(t *testing.T) {
	_, err := JavaScript(nil)
	require.Error(t, err)

	_, err = JavaScript(m.Array(m.Undefined, nil))
	require.Error(t, err)

	_, err = JavaScript(m.PromiseValue{Outcome: "pending"})
	require.Error(t, err)
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `""`, Quote(""))
	assert.Equal(t, `"line\nbreak"`, Quote("line\nbreak"))
	assert.Equal(t, `"héllo"`, Quote("héllo"))
}
