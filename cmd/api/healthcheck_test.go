package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthcheckHandler(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		version string
	}{
		{name: "Version unset", env: nil, version: "v1.0"},
		{name: "Version empty", env: map[string]string{"VERSION": ""}, version: "v1.0"},
		{name: "Version set", env: map[string]string{"VERSION": "v2.3"}, version: "v2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(t, tt.env)

			w := doRequest(t, app.routes(t.Context()), http.MethodGet, "/health")

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, `{"status":"healthy","version":"`+tt.version+`"}`, w.Body.String())
		})
	}
}
