package command

import (
	"encoding/json"
	"flag"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/urfave/cli/v2"
)

// testConfigPath points at a file that never exists, keeping action
// tests isolated from any real ~/.platform/cli.yaml.
const testConfigPath = "/nonexistent/platform-cli-test.yaml"

// mockServer creates a test HTTP server with custom handlers.
type mockServer struct {
	*httptest.Server
	handlers map[string]http.HandlerFunc
}

// newMockServer creates a new mock server.
func newMockServer() *mockServer {
	m := &mockServer{
		handlers: make(map[string]http.HandlerFunc),
	}
	m.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Find handler by path prefix match
		for pattern, handler := range m.handlers {
			if strings.HasPrefix(r.URL.Path, pattern) {
				handler(w, r)
				return
			}
		}
		http.NotFound(w, r)
	}))
	return m
}

// handle registers a handler for a path pattern.
func (m *mockServer) handle(pattern string, handler http.HandlerFunc) {
	m.handlers[pattern] = handler
}

// jsonResponse writes a JSON response.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// errorResponse writes an error response in the API's detail shape.
func errorResponse(w http.ResponseWriter, status int, detail string) {
	jsonResponse(w, status, map[string]string{
		"detail": detail,
	})
}

// makeTestContext creates a CLI context with extra command-level flags
// applied on top of the global ones.
func makeTestContext(server *mockServer, extraFlags []cli.Flag, args []string) *cli.Context {
	allFlags := append(globalFlags(), extraFlags...)

	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range allFlags {
		f.Apply(set)
	}

	cliArgs := []string{"--server", server.URL, "--config", testConfigPath}
	cliArgs = append(cliArgs, args...)
	set.Parse(cliArgs)

	app := &cli.App{
		Name:  "test",
		Flags: globalFlags(),
	}
	return cli.NewContext(app, set, nil)
}

// testContext creates a CLI context for testing with the mock server.
func testContext(server *mockServer, args ...string) *cli.Context {
	return makeTestContext(server, nil, args)
}

// sampleItem returns a decoded item as served by the API.
func sampleItem() map[string]any {
	return map[string]any{
		"id":     1,
		"name":   "Kubernetes",
		"type":   "Container Orchestration",
		"status": "active",
	}
}
