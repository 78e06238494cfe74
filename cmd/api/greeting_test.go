package main

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootHandler(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		app := newTestApplication(t, nil)

		w := doRequest(t, app.routes(t.Context()), http.MethodGet, "/")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		body := decodeBody(t, w)
		assert.Len(t, body, 4)
		assert.Equal(t, "Hi Harsha", body["message"])
		assert.Equal(t, "v1.0", body["version"])
		assert.Equal(t, "development", body["environment"])

		ts, ok := body["timestamp"].(string)
		require.True(t, ok)
		parsed, err := time.Parse(time.RFC3339Nano, ts)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now(), parsed, 5*time.Second)
		assert.Equal(t, time.UTC, parsed.Location())
	})

	t.Run("Configured version and environment", func(t *testing.T) {
		app := newTestApplication(t, map[string]string{
			"VERSION":  "v2.3",
			"NODE_ENV": "production",
		})

		body := decodeBody(t, doRequest(t, app.routes(t.Context()), http.MethodGet, "/"))
		assert.Equal(t, "v2.3", body["version"])
		assert.Equal(t, "production", body["environment"])
	})

	t.Run("Empty values fall back to defaults", func(t *testing.T) {
		app := newTestApplication(t, map[string]string{
			"VERSION":  "",
			"NODE_ENV": "",
		})

		body := decodeBody(t, doRequest(t, app.routes(t.Context()), http.MethodGet, "/"))
		assert.Equal(t, "v1.0", body["version"])
		assert.Equal(t, "development", body["environment"])
	})

	t.Run("Field order", func(t *testing.T) {
		app := newTestApplication(t, nil)

		w := doRequest(t, app.routes(t.Context()), http.MethodGet, "/")
		assert.Regexp(t, `^\{"message":"Hi Harsha","version":"v1\.0","environment":"development","timestamp":"[^"]+"\}\n$`, w.Body.String())
	})

	t.Run("Timestamps are non-decreasing", func(t *testing.T) {
		app := newTestApplication(t, nil)
		h := app.routes(t.Context())

		var prev time.Time
		for i := 0; i < 50; i++ {
			body := decodeBody(t, doRequest(t, h, http.MethodGet, "/"))

			ts, err := time.Parse(time.RFC3339Nano, body["timestamp"].(string))
			require.NoError(t, err)
			assert.False(t, ts.Before(prev), "timestamp %s earlier than %s", ts, prev)
			prev = ts
		}
	})
}
