package test

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// NewHttpServerWithHandlers creates a new httptest.Server that serves one request with each of the
// provided handlers, in order. The server is closed when the test finishes, and the test fails if not
// every handler has been used.
func NewHttpServerWithHandlers(t *testing.T, handlers ...http.HandlerFunc) *httptest.Server {
	idx := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(handlers) < idx+1 {
			t.Errorf("unexpected request, add missing handler func: %s %s", r.Method, r.URL)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		handlers[idx](w, r)
		idx += 1
	}))

	t.Cleanup(func() {
		server.Close()
		if diff := len(handlers) - idx; diff != 0 {
			t.Errorf("too many configured handlers, remove %d handler(s)", diff)
		}
	})
	return server
}
