package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/jaeger-ui-devconfig/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeRequest creates a test request carrying a logger that writes to buf,
// the same way withTraceID attaches one.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:            "index document",
			method:          http.MethodGet,
			path:            "/",
			handlerStatus:   http.StatusOK,
			handlerResponse: "<html></html>",
			checkLogContains: []string{
				`"method":"GET"`,
				`"uri":"/"`,
				`"status":200`,
				`"duration":`,
				`"size":13`,
			},
		},
		{
			name:            "static asset with query",
			method:          http.MethodGet,
			path:            "/static/js/main.js?v=2",
			handlerStatus:   http.StatusOK,
			handlerResponse: "console.log(1)",
			checkLogContains: []string{
				`"uri":"/static/js/main.js?v=2"`,
				`"status":200`,
			},
		},
		{
			name:          "HEAD request without body",
			method:        http.MethodHead,
			path:          "/favicon.ico",
			handlerStatus: http.StatusOK,
			checkLogContains: []string{
				`"method":"HEAD"`,
				`"size":0`,
			},
		},
		{
			name:            "missing asset",
			method:          http.MethodGet,
			path:            "/missing.css",
			handlerStatus:   http.StatusNotFound,
			handlerResponse: "404 page not found",
			checkLogContains: []string{
				`"status":404`,
			},
		},
		{
			name:            "unreadable index",
			method:          http.MethodGet,
			path:            "/index.html",
			handlerStatus:   http.StatusInternalServerError,
			handlerResponse: "Internal Server Error",
			checkLogContains: []string{
				`"status":500`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			req := makeRequest(tt.method, tt.path, &logBuf)
			rr := httptest.NewRecorder()
			withLogging(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.handlerStatus, rr.Code)
			for _, expected := range tt.checkLogContains {
				assert.Contains(t, logBuf.String(), expected)
			}
		})
	}
}

func TestWithLogging_ResponseSizeAcrossWrites(t *testing.T) {
	var logBuf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 1000)))
		_, _ = w.Write([]byte(strings.Repeat("b", 24)))
	})

	withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/", &logBuf))

	assert.Contains(t, logBuf.String(), `"size":1024`)
	assert.Contains(t, logBuf.String(), `"status":200`)
}

func TestWithLogging_DurationIsMeasured(t *testing.T) {
	var logBuf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(20 * time.Millisecond)
	})

	start := time.Now()
	withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/", &logBuf))

	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.Contains(t, logBuf.String(), `"duration":`)
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	})

	var logBuf bytes.Buffer
	assert.Panics(t, func() {
		withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/", &logBuf))
	})
}

func TestWithLogging_LevelFollowsStatus(t *testing.T) {
	tests := []struct {
		status    int
		wantLevel string
	}{
		{status: http.StatusOK, wantLevel: `"level":"info"`},
		{status: http.StatusNotModified, wantLevel: `"level":"info"`},
		{status: http.StatusNotFound, wantLevel: `"level":"warn"`},
		{status: http.StatusBadGateway, wantLevel: `"level":"error"`},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			var logBuf bytes.Buffer
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/", &logBuf))

			assert.Contains(t, logBuf.String(), tt.wantLevel)
		})
	}
}

func TestWithLogging_NothingWrittenLogsOK(t *testing.T) {
	var logBuf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/", &logBuf))

	assert.Contains(t, logBuf.String(), `"status":200`)
	assert.Contains(t, logBuf.String(), `"remote":"192.0.2.1:1234"`)
}

func TestWithLogging_NopLogger(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(logger.Nop().WithContext(req.Context()))

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() { withLogging(next).ServeHTTP(rr, req) })
	assert.Equal(t, http.StatusOK, rr.Code)
}
