package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/svgtree/pkg/pipeline"
	"github.com/matzehuels/svgtree/pkg/store"
)

const circle = `{"width": 10, "height": 10, "children": [{"name": "circle", "attrs": [["cx", 5], ["cy", 5], ["r", 4]]}]}`

const circleSVG = "<svg xmlns='http://www.w3.org/2000/svg' width='10' height='10'>\n<circle cx='5' cy='5' r='4'/>\n</svg>\n"

func newTestServer(t *testing.T) (*httptest.Server, *store.MemoryStore) {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	st := store.NewMemoryStore()
	srv := httptest.NewServer(New(pipeline.NewRunner(nil, logger), st, logger))
	t.Cleanup(srv.Close)
	return srv, st
}

func do(t *testing.T, method, url, contentType, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func decodeError(t *testing.T, resp *http.Response) errorDetail {
	t.Helper()
	var body errorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body.Error
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)
	resp := do(t, http.MethodGet, srv.URL+"/healthz", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Status != "ok" || body.Build.Version == "" {
		t.Errorf("body = %+v", body)
	}
	if _, err := uuid.Parse(resp.Header.Get(RequestIDHeader)); err != nil {
		t.Errorf("missing request id: %q", resp.Header.Get(RequestIDHeader))
	}
}

func TestRequestIDPropagation(t *testing.T) {
	srv, _ := newTestServer(t)
	id := uuid.NewString()
	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/healthz", nil)
	req.Header.Set(RequestIDHeader, id)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if got := resp.Header.Get(RequestIDHeader); got != id {
		t.Errorf("request id = %q, want %q", got, id)
	}
}

func TestRender(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := do(t, http.MethodPost, srv.URL+"/render", "application/json", circle)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body %s", resp.StatusCode, readBody(t, resp))
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
	if got := readBody(t, resp); got != circleSVG {
		t.Errorf("body =\n%s\nwant\n%s", got, circleSVG)
	}

	yamlCircle := "width: 10\nheight: 10\nchildren:\n  - name: circle\n    attrs: [[cx, 5], [cy, 5], [r, 4]]\n"
	resp = do(t, http.MethodPost, srv.URL+"/render", "application/yaml", yamlCircle)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("yaml status = %d, body %s", resp.StatusCode, readBody(t, resp))
	}
	if got := readBody(t, resp); got != circleSVG {
		t.Errorf("yaml body =\n%s\nwant\n%s", got, circleSVG)
	}

	resp = do(t, http.MethodPost, srv.URL+"/render?format=outline", "", circle)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("outline status = %d", resp.StatusCode)
	}
	if got := readBody(t, resp); !strings.Contains(got, "  circle") {
		t.Errorf("outline body = %q", got)
	}
}

func TestRenderErrors(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		name        string
		url         string
		contentType string
		body        string
		status      int
		code        string
	}{
		{"bad format", "/render?format=gif", "", circle, http.StatusBadRequest, "INVALID_FORMAT"},
		{"bad attrs", "/render?attrs=maybe", "", circle, http.StatusBadRequest, "INVALID_INPUT"},
		{"empty body", "/render", "", "", http.StatusBadRequest, "INVALID_INPUT"},
		{"bad scene", "/render", "application/json", `{"children": [`, http.StatusBadRequest, "INVALID_SCENE"},
		{"bad arity", "/render", "application/json", `{"children": [{"name": "path", "d": [["M", 1]]}]}`, http.StatusBadRequest, "INVALID_ARITY"},
		{"bad content type", "/render", "image/png", circle, http.StatusUnsupportedMediaType, "UNSUPPORTED"},
		{"too large", "/render", "", strings.Repeat(" ", MaxBodySize+1), http.StatusRequestEntityTooLarge, "TOO_LARGE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, http.MethodPost, srv.URL+tt.url, tt.contentType, tt.body)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			detail := decodeError(t, resp)
			if detail.Code != tt.code {
				t.Errorf("code = %q, want %q (message %q)", detail.Code, tt.code, detail.Message)
			}
			if detail.RequestID == "" {
				t.Error("error body should carry the request id")
			}
		})
	}
}

func TestSceneLifecycle(t *testing.T) {
	srv, st := newTestServer(t)

	resp := do(t, http.MethodPost, srv.URL+"/scenes", "application/json", circle)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", resp.StatusCode, readBody(t, resp))
	}
	var created sceneResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}
	if created.Format != "json" || created.Nodes != 2 {
		t.Errorf("created = %+v", created)
	}
	if loc := resp.Header.Get("Location"); loc != "/scenes/"+created.ID {
		t.Errorf("Location = %q", loc)
	}
	if st.Len() != 1 {
		t.Errorf("store has %d records, want 1", st.Len())
	}

	resp = do(t, http.MethodGet, srv.URL+"/scenes/"+created.ID, "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get status = %d", resp.StatusCode)
	}
	if got := readBody(t, resp); got != circleSVG {
		t.Errorf("get body = %q", got)
	}

	resp = do(t, http.MethodGet, srv.URL+"/scenes/"+created.ID+"?format=dot", "", "")
	if got := readBody(t, resp); !strings.HasPrefix(got, "digraph tree {") {
		t.Errorf("dot body = %q", got)
	}

	resp = do(t, http.MethodDelete, srv.URL+"/scenes/"+created.ID, "", "")
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("delete status = %d, want 204", resp.StatusCode)
	}

	resp = do(t, http.MethodGet, srv.URL+"/scenes/"+created.ID, "", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", resp.StatusCode)
	}
	if detail := decodeError(t, resp); detail.Code != "NOT_FOUND" {
		t.Errorf("code = %q, want NOT_FOUND", detail.Code)
	}
}

func TestPreview(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := do(t, http.MethodPost, srv.URL+"/scenes", "application/json", circle)
	var created sceneResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}

	resp = do(t, http.MethodGet, srv.URL+"/scenes/"+created.ID+"/preview", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("preview status = %d, body %s", resp.StatusCode, readBody(t, resp))
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	body := readBody(t, resp)
	for _, want := range []string{
		"<!doctype html>",
		"<title>Scene " + created.ID + "</title>",
		"<circle cx='5' cy='5' r='4'/>",
		"json scene, stored",
		"2 nodes",
		"<pre>svg",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("preview missing %q:\n%s", want, body)
		}
	}

	resp = do(t, http.MethodGet, srv.URL+"/scenes/"+uuid.NewString()+"/preview", "", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("missing scene preview status = %d, want 404", resp.StatusCode)
	}
}

func TestCreateSceneRejectsBrokenScene(t *testing.T) {
	srv, st := newTestServer(t)
	resp := do(t, http.MethodPost, srv.URL+"/scenes", "application/toml", "[[children]]\nname = \"1bad\"\n")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if st.Len() != 0 {
		t.Error("broken scene should not be stored")
	}
}

func TestInvalidSceneID(t *testing.T) {
	srv, _ := newTestServer(t)
	resp := do(t, http.MethodGet, srv.URL+"/scenes/not-a-uuid", "", "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestUnknownRoute(t *testing.T) {
	srv, _ := newTestServer(t)
	resp := do(t, http.MethodGet, srv.URL+"/nope", "", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	resp = do(t, http.MethodPut, srv.URL+"/render", "", "")
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}
