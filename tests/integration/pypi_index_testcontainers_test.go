//go:build integration

package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"pipcheck/internal/adapters"
)

// pypiMockScript serves a minimal PyPI JSON API: every known package
// reports version 9.9.9, the package "ghost" is absent.
const pypiMockScript = `
import json
import re
from http.server import BaseHTTPRequestHandler, HTTPServer

class Handler(BaseHTTPRequestHandler):
    def do_GET(self):
        match = re.fullmatch(r"/pypi/([^/]+)/json", self.path)
        if not match or match.group(1) == "ghost":
            self.send_response(404)
            self.end_headers()
            return
        body = json.dumps({"info": {"name": match.group(1), "version": "9.9.9"}}).encode()
        self.send_response(200)
        self.send_header("Content-Type", "application/json")
        self.send_header("Content-Length", str(len(body)))
        self.end_headers()
        self.wfile.write(body)

    def log_message(self, *args):
        pass

HTTPServer(("0.0.0.0", 8080), Handler).serve_forever()
`

func startPyPIMock(ctx context.Context, t *testing.T) (string, func()) {
	t.Helper()
	req := testcontainers.ContainerRequest{
		Image:        "python:3.12-alpine",
		ExposedPorts: []string{"8080/tcp"},
		Cmd:          []string{"python", "-c", pypiMockScript},
		WaitingFor:   wait.ForListeningPort("8080/tcp").WithStartupTimeout(30 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "8080/tcp")
	require.NoError(t, err)

	endpoint := fmt.Sprintf("http://%s:%s", host, port.Port())
	cleanup := func() {
		_ = container.Terminate(ctx)
	}
	return endpoint, cleanup
}

func TestPyPIIndexAgainstContainerizedMock(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping testcontainers integration in short mode")
	}

	ctx := t.Context()
	endpoint, cleanup := startPyPIMock(ctx, t)
	t.Cleanup(cleanup)

	adapter := adapters.NewPyPIIndexAdapter(endpoint, 10)

	version, err := adapter.LatestVersion(ctx, "requests")
	require.NoError(t, err)
	assert.Equal(t, "9.9.9", version)

	// PEP 503 normalization must apply to the request path.
	version, err = adapter.LatestVersion(ctx, "Scikit_Learn")
	require.NoError(t, err)
	assert.Equal(t, "9.9.9", version)

	_, err = adapter.LatestVersion(ctx, "ghost")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}
