// Package testkit provides a JSON-scenario-driven REST API testing helper.
//
// Each scenario is a JSON file that describes:
//   - The HTTP request to fire (method, URL, body file, headers)
//   - Expected HTTP status code
//   - Expected response body file (optional, for JSON diff assertion)
//
// Scenario files live next to your *_test.go files:
//
//	testdata/
//	  login_invalid.json           ← scenario
//	  login_invalid_req.json       ← request body
//	  login_invalid_res.json       ← expected response body
//
// Example _test.go:
//
//	func TestAPI(t *testing.T) {
//	    testkit.RunDir(t, buildHandler(), "testdata")
//	}
package testkit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Scenario describes a single REST API test case loaded from a JSON file.
type Scenario struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	// Request
	RequestMethod   string            `json:"requestMethod"` // GET, POST, PUT, PATCH, DELETE
	RequestURL      string            `json:"requestUrl"`    // e.g. /api/login
	RequestFileName string            `json:"requestFileName"`
	Headers         map[string]string `json:"headers"`

	// Response assertions. ResponseFileName is optional — without it only
	// the status code is checked, which is how scenarios with
	// non-deterministic bodies (timestamps, tokens) are written.
	ResponseFileName string `json:"responseFileName"`
	ExpectedCode     int    `json:"expectedCode"`

	// resolved at load time — not in JSON
	dir string
}

// LoadScenario parses a scenario file and remembers its directory so that
// request/response file names resolve relative to it.
func LoadScenario(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testkit: read %s: %w", path, err)
	}

	var s Scenario
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("testkit: parse %s: %w", path, err)
	}

	if s.Name == "" {
		s.Name = filepath.Base(path)
	}
	if s.RequestMethod == "" {
		s.RequestMethod = "GET"
	}
	if s.ExpectedCode == 0 {
		s.ExpectedCode = 200
	}
	s.dir = filepath.Dir(path)
	return &s, nil
}

// RequestBody reads the request body file, or returns nil when the
// scenario has none.
func (s *Scenario) RequestBody() ([]byte, error) {
	return s.readFile(s.RequestFileName)
}

// ExpectedBody reads the expected response file, or returns nil when the
// scenario only asserts the status code.
func (s *Scenario) ExpectedBody() ([]byte, error) {
	return s.readFile(s.ResponseFileName)
}

func (s *Scenario) readFile(name string) ([]byte, error) {
	if name == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("testkit: read %s: %w", name, err)
	}
	return raw, nil
}
