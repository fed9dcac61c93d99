//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// DtoMap turns a request DTO into a JSON object so single fields can be
// mutated or dropped.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, f := range muts {
		f(m)
	}
	return m
}

// Field sets key to value; a nil value removes the key.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}

// Nested applies muts to the object stored under key.
func Nested(key string, muts ...func(map[string]any)) func(m map[string]any) {
	return func(m map[string]any) {
		inner, ok := m[key].(map[string]any)
		if !ok {
			return
		}
		for _, f := range muts {
			f(inner)
		}
	}
}
