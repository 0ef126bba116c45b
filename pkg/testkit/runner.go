package testkit

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
)

// Run executes a single scenario from a JSON file against the handler.
// Extra headers are merged over the scenario's own, so tests can inject
// values only known at runtime, like a freshly minted bearer token.
func Run(t *testing.T, handler http.Handler, scenarioPath string, extraHeaders ...map[string]string) {
	t.Helper()

	s, err := LoadScenario(scenarioPath)
	if err != nil {
		t.Fatalf("testkit: load scenario %q: %v", scenarioPath, err)
	}

	t.Run(s.Name, func(t *testing.T) {
		runScenario(t, handler, s, extraHeaders...)
	})
}

// RunDir discovers every *.json file in dir whose name does not end in
// _req.json or _res.json and runs each as a subtest.
func RunDir(t *testing.T, handler http.Handler, dir string) {
	t.Helper()

	entries, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil || len(entries) == 0 {
		t.Fatalf("testkit: no scenario files found in %q", dir)
	}

	for _, path := range entries {
		base := filepath.Base(path)
		if strings.HasSuffix(base, "_req.json") || strings.HasSuffix(base, "_res.json") {
			continue
		}
		Run(t, handler, path)
	}
}

func runScenario(t *testing.T, handler http.Handler, s *Scenario, extraHeaders ...map[string]string) {
	t.Helper()

	body, err := s.RequestBody()
	if err != nil {
		t.Fatalf("[%s] %v", s.Name, err)
	}

	req := httptest.NewRequest(s.RequestMethod, s.RequestURL, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range s.Headers {
		req.Header.Set(k, v)
	}
	for _, hs := range extraHeaders {
		for k, v := range hs {
			req.Header.Set(k, v)
		}
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	AssertStatusCode(t, s, rec.Code)

	expected, err := s.ExpectedBody()
	if err != nil {
		t.Fatalf("[%s] %v", s.Name, err)
	}
	AssertJSONBody(t, s, expected, rec.Body.Bytes())
}
