//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Edit rewrites a request payload before it is sent.
type Edit func(m map[string]any)

// Field sets key to value. A nil value drops the key so the request omits it.
func Field(key string, value any) Edit {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}

// DtoMap renders v as the JSON object a client would post, then applies edits.
func DtoMap(t *testing.T, v any, edits ...Edit) map[string]any {
	t.Helper()

	raw, err := json.Marshal(v)
	require.NoError(t, err, "request body must marshal")
	payload := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &payload), "request body must be a JSON object")

	for _, edit := range edits {
		edit(payload)
	}
	return payload
}
