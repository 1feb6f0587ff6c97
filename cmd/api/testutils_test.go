package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mSchlettig/qevo-server/internal/jsonlog"
)

var fixedNow = time.Date(2024, 5, 1, 12, 30, 0, 0, time.FixedZone("CEST", 2*60*60))

func testConfig() config {
	var cfg config
	cfg.port = 8080
	cfg.env = "testing"
	cfg.basePath = defaultBasePath
	cfg.cors.origins = []string{"*"}
	cfg.cors.methods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	cfg.cors.headers = []string{"Content-Type", "Authorization"}

	return cfg
}

func newTestApplication(t *testing.T, cfg config) (*application, *bytes.Buffer) {
	t.Helper()

	var logs bytes.Buffer
	app := newApplication(cfg, jsonlog.New(&logs, jsonlog.DebugLevel))
	app.now = func() time.Time { return fixedNow }

	return app, &logs
}

type testServer struct {
	handler http.Handler
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	t.Helper()

	return &testServer{handler: h}
}

type testBody struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (ts *testServer) do(t *testing.T, method, target string, header http.Header) (int, http.Header, []byte) {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	for key, vals := range header {
		req.Header[key] = vals
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	rs := rr.Result()
	defer rs.Body.Close()

	body, err := io.ReadAll(rs.Body)
	if err != nil {
		t.Fatal(err)
	}

	return rs.StatusCode, rs.Header, body
}

func decodeBody(t *testing.T, body []byte) testBody {
	t.Helper()

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		t.Fatalf("body %q is not JSON: %v", body, err)
	}
	if len(raw) != 3 {
		t.Errorf("body %s should have exactly code, message and data", body)
	}

	var tb testBody
	if err := json.Unmarshal(body, &tb); err != nil {
		t.Fatal(err)
	}

	return tb
}
