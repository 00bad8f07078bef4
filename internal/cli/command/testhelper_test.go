package command

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
)

// seenRequest captures one request the mock service received.
type seenRequest struct {
	Method string
	Path   string
	Auth   string
	Body   []byte
}

// mockService is a test hub service answering every request with a
// fixed status.
type mockService struct {
	*httptest.Server
	status int
	seen   []seenRequest
}

func newMockService(t *testing.T, status int) *mockService {
	t.Helper()

	m := &mockService{status: status}
	m.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		m.seen = append(m.seen, seenRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Auth:   r.Header.Get("Authorization"),
			Body:   body,
		})
		w.WriteHeader(m.status)
	}))
	t.Cleanup(m.Close)
	return m
}

// runApp runs the full CLI against the mock service and returns its
// combined output.
func runApp(t *testing.T, svc *mockService, stdin io.Reader, args ...string) (string, error) {
	t.Helper()

	app := App()
	buf := &bytes.Buffer{}
	app.Writer = buf
	app.ErrWriter = buf
	if stdin != nil {
		app.Reader = stdin
	}

	full := []string{"sigmesh-cli",
		"--config", filepath.Join(t.TempDir(), "absent.yaml"),
		"--connection-string", "Endpoint=" + svc.URL + ";AccessKey=testkey123;",
		"--hub", "Chat",
	}
	full = append(full, args...)

	err := app.Run(full)
	return buf.String(), err
}
