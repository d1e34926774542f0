package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pipcheck/internal/ports"
	"pipcheck/internal/shared"
	"pipcheck/internal/types"
)

const defaultPythonExecutable = "python3"

// PipInstallerAdapter drives pip through the configured Python
// interpreter (`<python> -m pip ...`).
type PipInstallerAdapter struct {
	Python string
}

func NewPipInstallerAdapter(python string) PipInstallerAdapter {
	if strings.TrimSpace(python) == "" {
		python = defaultPythonExecutable
	}
	return PipInstallerAdapter{Python: python}
}

func (a PipInstallerAdapter) Installed(ctx context.Context, name string) (bool, error) {
	installed, err := a.showSucceeds(ctx, name)
	if err != nil {
		return false, err
	}
	if installed {
		return true, nil
	}
	// Distribution metadata sometimes keeps underscores where the
	// requested name uses hyphens (yt-dlp, scikit_learn and friends).
	alternate := strings.ReplaceAll(name, "-", "_")
	if alternate == name {
		return false, nil
	}
	return a.showSucceeds(ctx, alternate)
}

func (a PipInstallerAdapter) InstalledVersion(ctx context.Context, name string) (string, error) {
	output, err := a.runPip(ctx, "show", name)
	if err != nil {
		if isExitError(err) {
			return types.UnknownVersion, nil
		}
		return "", err
	}
	version := parsePipShowVersion(output)
	if version == "" {
		return types.UnknownVersion, nil
	}
	return version, nil
}

func (a PipInstallerAdapter) Install(ctx context.Context, name string) error {
	if _, err := a.runPip(ctx, "install", name); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("pip install failed").
			WithCause(err)
	}
	return nil
}

func (a PipInstallerAdapter) Upgrade(ctx context.Context, name string) error {
	if _, err := a.runPip(ctx, "install", "--upgrade", name); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("pip upgrade failed").
			WithCause(err)
	}
	return nil
}

func (a PipInstallerAdapter) List(ctx context.Context) ([]types.InstalledPackage, error) {
	output, err := a.runPip(ctx, "list", "--format=json", "--disable-pip-version-check")
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("pip list failed").
			WithCause(err)
	}
	packages, err := parsePipListJSON(output)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to parse pip list output").
			WithCause(err)
	}
	return packages, nil
}

func (a PipInstallerAdapter) showSucceeds(ctx context.Context, name string) (bool, error) {
	_, err := a.runPip(ctx, "show", name)
	if err == nil {
		return true, nil
	}
	if isExitError(err) {
		return false, nil
	}
	return false, errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("failed to query pip metadata").
		WithCause(err)
}

func (a PipInstallerAdapter) runPip(ctx context.Context, args ...string) (string, error) {
	full := append([]string{"-m", "pip"}, args...)
	cmd := exec.CommandContext(ctx, a.Python, full...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", shared.CommandError(output, err)
	}
	return string(output), nil
}

func isExitError(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}

// parsePipShowVersion extracts the Version field from `pip show` output.
func parsePipShowVersion(output string) string {
	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(line, "Version:") {
			return strings.TrimSpace(strings.TrimPrefix(line, "Version:"))
		}
	}
	return ""
}

// parsePipListJSON decodes `pip list --format=json` output.
func parsePipListJSON(output string) ([]types.InstalledPackage, error) {
	var entries []struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(output)), &entries); err != nil {
		return nil, err
	}
	packages := make([]types.InstalledPackage, 0, len(entries))
	for _, entry := range entries {
		packages = append(packages, types.InstalledPackage{
			Name:    entry.Name,
			Version: entry.Version,
		})
	}
	return packages, nil
}

var _ ports.InstallerPort = PipInstallerAdapter{}
