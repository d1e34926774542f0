package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pipcheck/internal/ports"
	"pipcheck/internal/shared"
)

const defaultPyPIEndpoint = "https://pypi.org"
const defaultPyPITimeout = 5 * time.Second

// PyPIIndexAdapter queries the JSON API of a PyPI-compatible index for
// the latest published version of a package. A single GET with a
// bounded timeout; lookup failures are the caller's to soften.
type PyPIIndexAdapter struct {
	Endpoint string
	Timeout  time.Duration
}

func NewPyPIIndexAdapter(endpoint string, timeoutSec int) PyPIIndexAdapter {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = defaultPyPIEndpoint
	}
	timeout := time.Duration(timeoutSec) * time.Second
	if timeout <= 0 {
		timeout = defaultPyPITimeout
	}
	return PyPIIndexAdapter{Endpoint: endpoint, Timeout: timeout}
}

func (a PyPIIndexAdapter) LatestVersion(ctx context.Context, name string) (string, error) {
	base := strings.TrimRight(strings.TrimSpace(a.Endpoint), "/")
	url := fmt.Sprintf("%s/pypi/%s/json", base, shared.NormalizePipName(name))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create index request").
			WithCause(err)
	}
	client := &http.Client{Timeout: a.Timeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("index request failed").
			WithCause(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("package not found in index").
			WithCause(shared.HTTPStatusError(resp.StatusCode, url))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("index returned unexpected status").
			WithCause(shared.HTTPStatusError(resp.StatusCode, url))
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read index response").
			WithCause(err)
	}
	version, err := parsePyPIResponse(body)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to parse index response").
			WithCause(err)
	}
	return version, nil
}

func parsePyPIResponse(body []byte) (string, error) {
	var payload struct {
		Info struct {
			Version string `json:"version"`
		} `json:"info"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", err
	}
	version := strings.TrimSpace(payload.Info.Version)
	if version == "" {
		return "", fmt.Errorf("index response has no info.version")
	}
	return version, nil
}

var _ ports.IndexPort = PyPIIndexAdapter{}
