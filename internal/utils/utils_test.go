package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteText(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		text       string
	}{
		{name: "ok", statusCode: http.StatusOK, text: "ok"},
		{name: "conflict", statusCode: http.StatusConflict, text: "No vials to consume!"},
		{name: "empty body", statusCode: http.StatusServiceUnavailable, text: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			n, err := WriteText(rec, tt.statusCode, tt.text)

			require.NoError(t, err)
			assert.Equal(t, len(tt.text), n)
			assert.Equal(t, tt.statusCode, rec.Code)
			assert.Equal(t, tt.text, rec.Body.String())
			assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
		})
	}
}

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	first := g.Generate()
	second := g.Generate()

	id, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.NotEqual(t, first, second)
	assert.Less(t, first, second, "v7 ids are time ordered")
}
