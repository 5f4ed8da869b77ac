package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-name-gen/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// injectLogger puts zerolog.Logger into request context the same way
// withTraceID middleware does (via zerolog/log.Ctx).
func injectLogger(r *http.Request, l zerolog.Logger) *http.Request {
	ctx := l.WithContext(r.Context())
	return r.WithContext(ctx)
}

// newBufferLogger creates a logger that writes to the provided buffer.
func newBufferLogger(buf *bytes.Buffer) zerolog.Logger {
	return zerolog.New(buf).With().Timestamp().Logger()
}

// makeRequest creates a test request with a logger in context.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	return injectLogger(req, newBufferLogger(buf))
}

// ---- Table test ----

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		handlerDelay     time.Duration
		checkLogContains []string
	}{
		{
			name:            "GET raw 200",
			method:          http.MethodGet,
			path:            "/2/raw",
			handlerStatus:   http.StatusOK,
			handlerResponse: "AnnBob",
			checkLogContains: []string{
				`"method":"GET"`,
				`"uri":"/2/raw"`,
				`"status":200`,
				`"duration":`,
				`"size":6`,
			},
		},
		{
			name:          "GET root 302",
			method:        http.MethodGet,
			path:          "/",
			handlerStatus: http.StatusFound,
			checkLogContains: []string{
				`"uri":"/"`,
				`"status":302`,
				`"size":0`,
			},
		},
		{
			name:          "POST 404",
			method:        http.MethodPost,
			path:          "/2/json",
			handlerStatus: http.StatusNotFound,
			checkLogContains: []string{
				`"method":"POST"`,
				`"status":404`,
			},
		},
		{
			name:            "missing asset 404",
			method:          http.MethodGet,
			path:            "/missing.css",
			handlerStatus:   http.StatusNotFound,
			handlerResponse: "404 page not found",
			checkLogContains: []string{
				`"status":404`,
				`"uri":"/missing.css"`,
			},
		},
		{
			name:            "query parameters preserved in uri",
			method:          http.MethodGet,
			path:            "/3/?theme=dark",
			handlerStatus:   http.StatusOK,
			handlerResponse: "<html>",
			checkLogContains: []string{
				`"uri":"/3/?theme=dark"`,
				`"status":200`,
			},
		},
		{
			name:          "HEAD request",
			method:        http.MethodHead,
			path:          "/2/",
			handlerStatus: http.StatusOK,
			checkLogContains: []string{
				`"method":"HEAD"`,
				`"status":200`,
			},
		},
		{
			name:          "throttled request",
			method:        http.MethodGet,
			path:          "/2/raw",
			handlerStatus: http.StatusTooManyRequests,
			checkLogContains: []string{
				`"status":429`,
			},
		},
		{
			name:            "slow handler: duration logged",
			method:          http.MethodGet,
			path:            "/10/raw",
			handlerStatus:   http.StatusOK,
			handlerResponse: "Done",
			handlerDelay:    50 * time.Millisecond,
			checkLogContains: []string{
				`"duration":`,
				`"status":200`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.handlerDelay > 0 {
					time.Sleep(tt.handlerDelay)
				}
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			req := makeRequest(tt.method, tt.path, &logBuf)
			rr := httptest.NewRecorder()
			withLogging(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.handlerStatus, rr.Code)

			logOutput := logBuf.String()
			assert.NotEmpty(t, logOutput, "log should not be empty")

			for _, expected := range tt.checkLogContains {
				assert.Contains(t, logOutput, expected, "log should contain: %s", expected)
			}
		})
	}
}

// ---- Route pattern ----

func TestWithLogging_RoutePattern(t *testing.T) {
	var logBuf bytes.Buffer

	router := chi.NewRouter()
	router.Use(withLogging)
	router.Get("/{number}/raw", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("AnnBob"))
	})

	req := makeRequest(http.MethodGet, "/2/raw", &logBuf)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, logBuf.String(), `"route":"/{number}/raw"`)
}

func TestWithLogging_NoRouteOutsideRouter(t *testing.T) {
	var logBuf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := makeRequest(http.MethodGet, "/2/raw", &logBuf)
	withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, logBuf.String(), `"route":""`)
}

// ---- Response size ----

func TestWithLogging_ResponseSize(t *testing.T) {
	var logBuf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(strings.Repeat("Ann", 341)))
	})

	req := makeRequest(http.MethodGet, "/341/raw", &logBuf)
	rr := httptest.NewRecorder()
	withLogging(next).ServeHTTP(rr, req)

	assert.Contains(t, logBuf.String(), `"size":1023`)
}

// ---- No explicit WriteHeader should log 200 ----

func TestWithLogging_NoStatusWritten(t *testing.T) {
	var logBuf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("implicit 200"))
	})

	req := makeRequest(http.MethodGet, "/2/raw", &logBuf)
	rr := httptest.NewRecorder()
	withLogging(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, logBuf.String(), `"status":200`)
}

// ---- Concurrent requests: no races ----

func TestWithLogging_ConcurrentRequests(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	middleware := withLogging(next)

	const n = 50
	done := make(chan struct{}, n)

	for i := 0; i < n; i++ {
		go func() {
			var buf bytes.Buffer
			req := makeRequest(http.MethodGet, "/2/", &buf)
			rr := httptest.NewRecorder()
			middleware.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Contains(t, buf.String(), `"status":200`)
			done <- struct{}{}
		}()
	}

	for i := 0; i < n; i++ {
		<-done
	}
}

// ---- Panic is not suppressed ----

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	var logBuf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	})

	req := makeRequest(http.MethodGet, "/2/raw", &logBuf)
	rr := httptest.NewRecorder()

	assert.Panics(t, func() {
		withLogging(next).ServeHTTP(rr, req)
	}, "withLogging should not recover panics")
}

// ---- logger.Nop(): middleware works without a real logger ----

func TestWithLogging_NopLogger(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	nop := logger.Nop()
	req := httptest.NewRequest(http.MethodGet, "/2/raw", nil)
	req = req.WithContext(nop.Logger.WithContext(req.Context()))

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		withLogging(next).ServeHTTP(rr, req)
	})
	assert.Equal(t, http.StatusOK, rr.Code)
}
