package docfactory

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	falsy := []any{nil, false, "", 0, int64(0), uint(0), 0.0, math.NaN(), (*station)(nil), []string(nil), map[string]any(nil)}
	for _, v := range falsy {
		assert.False(t, Truthy(v), "%#v should be falsy", v)
	}

	truthy := []any{true, "x", 1, -1, 0.5, []string{}, map[string]any{}, struct{}{}, &station{}}
	for _, v := range truthy {
		assert.True(t, Truthy(v), "%#v should be truthy", v)
	}
}

func TestAssignKeys(t *testing.T) {
	src := map[string]any{"a": 1, "b": 2, "c": 3}

	dst := AssignKeys(nil, src, map[string]any{"b": 20}, "a", "b")
	assert.Equal(t, map[string]any{"a": 1, "b": 20}, dst)

	// Falsy overrides fall back to the source value.
	dst = AssignKeys(map[string]any{}, src, map[string]any{"a": 0, "b": ""}, "a", "b")
	assert.Equal(t, map[string]any{"a": 1, "b": 2}, dst)

	// Keys absent everywhere assign nil, keeping the key set fixed.
	dst = AssignKeys(nil, src, nil, "zz")
	assert.Equal(t, map[string]any{"zz": nil}, dst)
}

func TestAssignKeys_ReusesDst(t *testing.T) {
	dst := map[string]any{"keep": true}
	out := AssignKeys(dst, map[string]any{"a": 1}, nil, "a")
	assert.Equal(t, map[string]any{"keep": true, "a": 1}, out)
}
