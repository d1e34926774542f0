package core

import (
	pep440 "github.com/aquasecurity/go-pep440-version"
	debversion "github.com/knqyf263/go-deb-version"

	"pipcheck/internal/types"
)

// UpdateAvailable reports whether the latest index version compares
// newer than the installed one, using the version semantics of the
// package manager (PEP 440 for pip, Debian ordering for apt). Unknown
// sentinels and parse failures suppress the hint rather than erroring:
// the comparison is enrichment, never part of the check result.
func UpdateAvailable(manager types.Manager, installed string, latest string) bool {
	if installed == "" || latest == "" {
		return false
	}
	if installed == types.UnknownVersion || latest == types.UnknownVersion {
		return false
	}
	switch manager {
	case types.ManagerPip:
		current, err := pep440.Parse(installed)
		if err != nil {
			return false
		}
		candidate, err := pep440.Parse(latest)
		if err != nil {
			return false
		}
		return candidate.Compare(current) > 0
	case types.ManagerApt:
		current, err := debversion.NewVersion(installed)
		if err != nil {
			return false
		}
		candidate, err := debversion.NewVersion(latest)
		if err != nil {
			return false
		}
		return candidate.GreaterThan(current)
	default:
		return false
	}
}
