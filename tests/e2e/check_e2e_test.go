package e2e

import (
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pipcheck/tests/testutil"
)

func TestCheckCommandE2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e in short mode")
	}
	if _, err := exec.LookPath("python3"); err != nil {
		t.Skip("python3 not available")
	}

	root := testutil.RepoRoot(t)
	recordPath := filepath.Join(t.TempDir(), "records.json")

	cmd := exec.Command("go", "run", "./cmd/pipcheck", "check", "pip",
		"--mode", "view-only",
		"--save", "yes",
		"--file", recordPath,
	)
	cmd.Dir = root
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "check failed: %s", strings.TrimSpace(string(output)))

	data, err := os.ReadFile(recordPath)
	require.NoError(t, err)
	records := map[string]map[string]any{}
	require.NoError(t, json.Unmarshal(data, &records))
	record, ok := records["pip"]
	require.True(t, ok, "record file must be keyed by package name")
	assert.Equal(t, "pip", record["libreria"])
	assert.NotEmpty(t, record["estado"])
	assert.NotEmpty(t, record["timestamp"])
}

func TestCheckCommandInvalidModeExitCode(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e in short mode")
	}

	root := testutil.RepoRoot(t)
	// "go run" always exits 1 when the program exits non-zero, so build the
	// binary and invoke it directly to observe the real exit code.
	bin := filepath.Join(t.TempDir(), "pipcheck")
	build := exec.Command("go", "build", "-o", bin, "./cmd/pipcheck")
	build.Dir = root
	buildOut, err := build.CombinedOutput()
	require.NoError(t, err, "build failed: %s", strings.TrimSpace(string(buildOut)))

	cmd := exec.Command(bin, "check", "requests", "--mode", "sideways")
	cmd.Dir = root
	output, err := cmd.CombinedOutput()
	require.Error(t, err)

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 2, exitErr.ExitCode(), "invalid mode must exit 2: %s", strings.TrimSpace(string(output)))
	assert.Contains(t, string(output), "view-only")
}

func TestInventoryCommandE2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e in short mode")
	}
	if _, err := exec.LookPath("python3"); err != nil {
		t.Skip("python3 not available")
	}

	root := testutil.RepoRoot(t)
	inventoryPath := filepath.Join(t.TempDir(), "inventory.json")

	cmd := exec.Command("go", "run", "./cmd/pipcheck", "inventory",
		"--export",
		"--file", inventoryPath,
	)
	cmd.Dir = root
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "inventory failed: %s", strings.TrimSpace(string(output)))

	data, err := os.ReadFile(inventoryPath)
	require.NoError(t, err)
	exported := struct {
		ScannedAt string `json:"fecha_escaneo"`
		Total     int    `json:"total_librerias"`
		Packages  []struct {
			Name    string `json:"nombre"`
			Version string `json:"version"`
		} `json:"librerias"`
	}{}
	require.NoError(t, json.Unmarshal(data, &exported))
	assert.Equal(t, len(exported.Packages), exported.Total)
	assert.NotEmpty(t, exported.ScannedAt)
	for i := 1; i < len(exported.Packages); i++ {
		left := strings.ToLower(exported.Packages[i-1].Name)
		right := strings.ToLower(exported.Packages[i].Name)
		assert.LessOrEqual(t, left, right, "inventory must be sorted case-insensitively")
	}
}
