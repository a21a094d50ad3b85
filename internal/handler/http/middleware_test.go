package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-coffee-freezer/internal/logger"
)

// ---- responseWriter ----

func TestResponseWriter_WriteHeader_CalledTwice_IgnoresSecond(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.WriteHeader(http.StatusConflict)
	rw.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusConflict, rw.statusCode())
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestResponseWriter_Write_ImplicitOKAndSize(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.Write([]byte("hello "))
	rw.Write([]byte("world"))

	assert.Equal(t, http.StatusOK, rw.status)
	assert.Equal(t, 11, rw.size)
	assert.Equal(t, "hello world", rec.Body.String())
}

func TestResponseWriter_NothingWritten(t *testing.T) {
	rw := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	assert.Equal(t, 0, rw.status)
	assert.Equal(t, http.StatusOK, rw.statusCode())
}

// ---- withLogging ----

func TestWithLogging_WritesAccessLog(t *testing.T) {
	tests := []struct {
		name             string
		status           int
		checkLogContains []string
	}{
		{
			name:   "page served",
			status: http.StatusOK,
			checkLogContains: []string{
				`"level":"info"`,
				`"uri":"/view_bag/5"`,
				`"route":"/view_bag/{id}"`,
				`"method":"GET"`,
				`"status":200`,
				`"size":4`,
			},
		},
		{
			name:   "server failure",
			status: http.StatusInternalServerError,
			checkLogContains: []string{
				`"level":"warn"`,
				`"status":500`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := zerolog.New(&buf)
			h := &Handler{logger: &logger.Logger{Logger: l}}

			router := chi.NewRouter()
			router.Use(h.withTraceID)
			router.Use(h.withLogging)
			router.Get("/view_bag/{id}", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte("body"))
			})

			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/view_bag/5", nil))

			for _, want := range tt.checkLogContains {
				assert.Contains(t, buf.String(), want)
			}
			assert.Contains(t, buf.String(), `"trace_id":`)
		})
	}
}

// ---- withGZip ----

func TestWithGZip_NoAcceptEncoding(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("plain"))
	})

	rec := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "plain", rec.Body.String())
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "Accept-Encoding", rec.Header().Get("Vary"))
}

func TestBodyAllowed(t *testing.T) {
	tests := []struct {
		status int
		want   bool
	}{
		{http.StatusOK, true},
		{http.StatusNotFound, true},
		{http.StatusUnprocessableEntity, true},
		{http.StatusInternalServerError, true},
		{http.StatusNoContent, false},
		{http.StatusNotModified, false},
		{http.StatusSeeOther, false},
		{http.StatusContinue, false},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, bodyAllowed(tt.status))
		})
	}
}

// ---- responseFromError ----

func TestStatusFromError_Unknown(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, statusFromError(assert.AnError))
}
