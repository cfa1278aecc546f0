package ipath

import (
	"context"
	stderrors "errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/ipath/pkg/errors"
	"github.com/matzehuels/ipath/pkg/observability"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="50"></svg>`

func newTestServer(t *testing.T, status int, body string) (*httptest.Server, *http.Request) {
	t.Helper()
	var captured http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm: %v", err)
		}
		captured = *r
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)
	return server, &captured
}

func testClient(server *httptest.Server) *Client {
	return NewClient(
		WithMappingURL(server.URL+"/mapping.cgi"),
		WithInspectURL(server.URL+"/ipath.cgi"),
		WithTimeout(5*time.Second),
	)
}

func TestClient_GetMap(t *testing.T) {
	server, req := newTestServer(t, http.StatusOK, testSVG)
	c := testClient(server)

	name := filepath.Join(t.TempDir(), "map")
	path, err := c.GetMap(context.Background(), "C00003 W5.0\n", name, DefaultOptions())
	if err != nil {
		t.Fatalf("GetMap failed: %v", err)
	}
	if path != name+".svg" {
		t.Errorf("path = %q, want %q", path, name+".svg")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != testSVG {
		t.Errorf("file content = %q, want %q", data, testSVG)
	}

	if req.Method != http.MethodPost {
		t.Errorf("method = %s, want POST", req.Method)
	}
	if req.URL.Path != "/mapping.cgi" {
		t.Errorf("path = %s, want /mapping.cgi", req.URL.Path)
	}
	if got := req.PostForm.Get("selection"); got != "C00003 W5.0\n" {
		t.Errorf("selection = %q", got)
	}
	if got := req.PostForm.Get("export_type"); got != "svg" {
		t.Errorf("export_type = %q", got)
	}
}

func TestClient_GetMap_RemoteError(t *testing.T) {
	server, _ := newTestServer(t, http.StatusInternalServerError, "selection could not be parsed")
	c := testClient(server)

	name := filepath.Join(t.TempDir(), "map")
	_, err := c.GetMap(context.Background(), "bad\n", name, DefaultOptions())
	if err == nil {
		t.Fatal("expected error for 500 response")
	}

	var remote *errors.RemoteServiceError
	if !stderrors.As(err, &remote) {
		t.Fatalf("expected RemoteServiceError, got %T: %v", err, err)
	}
	if remote.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", remote.StatusCode)
	}
	if remote.Body != "selection could not be parsed" {
		t.Errorf("Body = %q", remote.Body)
	}
	if !errors.Is(err, errors.ErrCodeRemoteService) {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeRemoteService)
	}
	if _, statErr := os.Stat(name + ".svg"); !os.IsNotExist(statErr) {
		t.Error("no file should be written on failure")
	}
}

func TestClient_GetMap_InvalidOption(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	opts := DefaultOptions()
	opts.ExportType = "bmp"

	_, err := testClient(server).GetMap(context.Background(), "", filepath.Join(t.TempDir(), "m"), opts)
	if !errors.Is(err, errors.ErrCodeInvalidOption) {
		t.Errorf("error = %v, want %v", err, errors.ErrCodeInvalidOption)
	}
	if calls != 0 {
		t.Errorf("server called %d times, want 0", calls)
	}
}

func TestClient_GetMap_InvalidName(t *testing.T) {
	_, err := NewClient().GetMap(context.Background(), "", "", DefaultOptions())
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want %v", err, errors.ErrCodeInvalidInput)
	}
}

func TestClient_Inspect(t *testing.T) {
	server, req := newTestServer(t, http.StatusBadRequest, "<html>oops</html>")
	c := testClient(server)

	resp, err := c.Inspect(context.Background(), "C00003\n", DefaultOptions())
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d, want 400 passed through", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "<html>oops</html>" {
		t.Errorf("body = %q", body)
	}
	if req.URL.Path != "/ipath.cgi" {
		t.Errorf("path = %s, want /ipath.cgi", req.URL.Path)
	}
}

func TestClient_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	c := NewClient(WithMappingURL(url))
	_, err := c.Render(context.Background(), "", DefaultOptions())
	if !errors.Is(err, errors.ErrCodeNetwork) {
		t.Errorf("error = %v, want %v", err, errors.ErrCodeNetwork)
	}
}

func TestClient_ContextCanceled(t *testing.T) {
	server, _ := newTestServer(t, http.StatusOK, testSVG)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testClient(server).Render(ctx, "", DefaultOptions())
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestClient_WithTimeoutCopiesHTTPClient(t *testing.T) {
	hc := &http.Client{Timeout: 3 * time.Second}
	c := NewClient(WithHTTPClient(hc), WithTimeout(time.Minute))

	if hc.Timeout != 3*time.Second {
		t.Errorf("caller's client timeout = %v, want 3s", hc.Timeout)
	}
	if c.http == hc {
		t.Error("client shares the caller's *http.Client")
	}
	if c.http.Timeout != time.Minute {
		t.Errorf("client timeout = %v, want 1m", c.http.Timeout)
	}
}

type countingHooks struct {
	observability.NoopServiceHooks
	requests, responses, failures int
	lastStatus                    int
}

func (h *countingHooks) OnRequest(context.Context, string) { h.requests++ }
func (h *countingHooks) OnResponse(_ context.Context, _ string, status, _ int, _ time.Duration) {
	h.responses++
	h.lastStatus = status
}
func (h *countingHooks) OnError(context.Context, string, error) { h.failures++ }

func TestClient_ServiceHooks(t *testing.T) {
	hooks := &countingHooks{}
	observability.SetServiceHooks(hooks)
	defer observability.Reset()

	server, _ := newTestServer(t, http.StatusBadGateway, "upstream down")
	if _, err := testClient(server).Render(context.Background(), "C00003\n", DefaultOptions()); err == nil {
		t.Fatal("expected error for 502")
	}

	closed := httptest.NewServer(http.NotFoundHandler())
	closed.Close()
	if _, err := testClient(closed).Render(context.Background(), "C00003\n", DefaultOptions()); err == nil {
		t.Fatal("expected error for closed server")
	}

	if hooks.requests != 2 || hooks.responses != 1 || hooks.failures != 1 {
		t.Errorf("hooks saw requests=%d responses=%d failures=%d, want 2/1/1",
			hooks.requests, hooks.responses, hooks.failures)
	}
	if hooks.lastStatus != http.StatusBadGateway {
		t.Errorf("lastStatus = %d, want 502", hooks.lastStatus)
	}
}
