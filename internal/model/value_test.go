package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueConstructors(t *testing.T) {
	t.Run("empty constructors equal canonical instances", func(t *testing.T) {
		assert.Equal(t, EmptyArray, Array())
		assert.Equal(t, EmptyObject, Object())
	})

	t.Run("bool returns canonical singletons", func(t *testing.T) {
		assert.Equal(t, True, Bool(true))
		assert.Equal(t, False, Bool(false))
		assert.NotEqual(t, True, False)
	})

	t.Run("array copies its items", func(t *testing.T) {
		items := []Value{Number(1), Number(2)}
		arr := Array(items...)
		items[0] = Null

		assert.Equal(t, Number(1), arr.Items[0])
	})

	t.Run("set and map wrap their sources", func(t *testing.T) {
		set := Set(Array(String("a")))
		assert.Equal(t, ValueSet, set.Kind())
		assert.Equal(t, []Value{String("a")}, set.Items)

		m := Map(Object(KeyEntry(String("k"), Number(1))))
		assert.Equal(t, ValueMap, m.Kind())
		assert.Len(t, m.Entries, 1)
	})

	t.Run("promise forms", func(t *testing.T) {
		rejected := PromiseReject(nil)
		assert.Equal(t, PromiseRejected, rejected.Outcome)
		assert.Nil(t, rejected.Message)

		resolved := PromiseResolve(Number(3))
		assert.Equal(t, PromiseResolved, resolved.Outcome)
		assert.Equal(t, Number(3), resolved.Value)
	})

	t.Run("spread entries carry no key", func(t *testing.T) {
		entry := SpreadEntry(EmptyObject)
		assert.True(t, entry.Spread)
		assert.Nil(t, entry.Key)
	})
}

func TestIsEmptyObject(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  bool
	}{
		{"empty object", EmptyObject, true},
		{"object with entry", Object(KeyEntry(String("a"), Null)), false},
		{"empty array", EmptyArray, false},
		{"undefined", Undefined, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEmptyObject(tt.value))
		})
	}
}
