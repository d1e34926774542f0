package adapters

import (
	"context"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pipcheck/internal/ports"
	"pipcheck/internal/shared"
	"pipcheck/internal/types"
)

// AptInstallerAdapter drives dpkg/apt-get for Debian package checks
// and installs.
type AptInstallerAdapter struct{}

func NewAptInstallerAdapter() AptInstallerAdapter {
	return AptInstallerAdapter{}
}

func (a AptInstallerAdapter) Installed(ctx context.Context, name string) (bool, error) {
	output, err := runCommand(ctx, "dpkg-query", "-W", "-f=${Status}", name)
	if err != nil {
		if isExitError(err) {
			return false, nil
		}
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to query dpkg status").
			WithCause(err)
	}
	return strings.Contains(output, "install ok installed"), nil
}

func (a AptInstallerAdapter) InstalledVersion(ctx context.Context, name string) (string, error) {
	output, err := runCommand(ctx, "dpkg-query", "-W", "-f=${Version}", name)
	if err != nil {
		if isExitError(err) {
			return types.UnknownVersion, nil
		}
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to query dpkg version").
			WithCause(err)
	}
	version := strings.TrimSpace(output)
	if version == "" {
		return types.UnknownVersion, nil
	}
	return version, nil
}

func (a AptInstallerAdapter) Install(ctx context.Context, name string) error {
	if _, err := runCommand(ctx, "apt-get", "install", "-y", name); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("apt-get install failed").
			WithCause(err)
	}
	return nil
}

func (a AptInstallerAdapter) Upgrade(ctx context.Context, name string) error {
	if _, err := runCommand(ctx, "apt-get", "install", "--only-upgrade", "-y", name); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("apt-get upgrade failed").
			WithCause(err)
	}
	return nil
}

func (a AptInstallerAdapter) List(ctx context.Context) ([]types.InstalledPackage, error) {
	output, err := runCommand(ctx, "dpkg-query", "-W", "-f=${Package}\t${Version}\n")
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("dpkg-query list failed").
			WithCause(err)
	}
	return parseDpkgList(output), nil
}

// AptCacheIndexAdapter resolves the newest available version of a
// Debian package from the local apt cache (`apt-cache policy`). It
// fills the IndexPort role for the apt backend: the candidate version
// is what an upgrade would install.
type AptCacheIndexAdapter struct{}

func NewAptCacheIndexAdapter() AptCacheIndexAdapter {
	return AptCacheIndexAdapter{}
}

func (a AptCacheIndexAdapter) LatestVersion(ctx context.Context, name string) (string, error) {
	output, err := runCommand(ctx, "apt-cache", "policy", name)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("apt-cache policy failed").
			WithCause(err)
	}
	candidate := parseAptCacheCandidate(output)
	if candidate == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("no candidate version in apt cache")
	}
	return candidate, nil
}

func runCommand(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", shared.CommandError(output, err)
	}
	return string(output), nil
}

// parseDpkgList decodes tab-separated package/version lines.
func parseDpkgList(output string) []types.InstalledPackage {
	var packages []types.InstalledPackage
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 2)
		if len(fields) != 2 {
			continue
		}
		name := strings.TrimSpace(fields[0])
		version := strings.TrimSpace(fields[1])
		if name == "" || version == "" {
			continue
		}
		packages = append(packages, types.InstalledPackage{Name: name, Version: version})
	}
	return packages
}

// parseAptCacheCandidate extracts the Candidate line from
// `apt-cache policy` output. "(none)" means no installable version.
func parseAptCacheCandidate(output string) string {
	for _, line := range strings.Split(output, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "Candidate:") {
			continue
		}
		candidate := strings.TrimSpace(strings.TrimPrefix(trimmed, "Candidate:"))
		if candidate == "(none)" {
			return ""
		}
		return candidate
	}
	return ""
}

var _ ports.InstallerPort = AptInstallerAdapter{}
var _ ports.IndexPort = AptCacheIndexAdapter{}
