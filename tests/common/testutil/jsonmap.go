//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// DtoMap round-trips v through JSON so tests can send bodies the typed DTOs
// cannot express, such as extra or missing fields.
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

// Field sets key to value, or deletes key when value is nil. A dotted key
// such as "customer.phone" addresses a nested object.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		target := m
		for {
			head, rest, nested := cut(key)
			if !nested {
				break
			}
			next, ok := target[head].(map[string]any)
			if !ok {
				return
			}
			target, key = next, rest
		}
		if value == nil {
			delete(target, key)
		} else {
			target[key] = value
		}
	}
}

func cut(key string) (string, string, bool) {
	for i := 0; i < len(key); i++ {
		if key[i] == '.' {
			return key[:i], key[i+1:], true
		}
	}
	return key, "", false
}
