package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"pipcheck/internal/core"
	"pipcheck/internal/ports"
	"pipcheck/internal/types"
)

// Check verifies, installs, or upgrades a single package according to
// the requested mode. Input validation happens before any side effect;
// operational failures are caught once, converted into an error-state
// record, persisted when saving is enabled, and returned as an error so
// the process exits non-zero.
func (s Service) Check(ctx context.Context, req CheckRequest) (CheckResult, error) {
	name, err := core.ValidateName(req.Name)
	if err != nil {
		return CheckResult{}, err
	}
	_, config, err := core.ParseMode(req.Mode)
	if err != nil {
		return CheckResult{}, err
	}
	save, err := core.ParseSaveFlag(req.Save)
	if err != nil {
		return CheckResult{}, err
	}
	manager, err := core.ParseManager(req.Manager)
	if err != nil {
		return CheckResult{}, err
	}
	assert.NotEmpty(ctx, req.RecordPath, "record file path must be set")

	installer := s.NewInstaller(manager, req.Python)
	index := s.NewIndex(manager, req.IndexURL, req.IndexTimeoutSec)

	record, err := s.runCheck(ctx, name, config, manager, save, req.RecordPath, installer, index)
	if err != nil {
		return s.handleFailure(name, err, save, req.RecordPath)
	}
	return CheckResult{Record: record, Saved: save}, nil
}

func (s Service) runCheck(
	ctx context.Context,
	name string,
	config types.ModeConfig,
	manager types.Manager,
	save bool,
	path string,
	installer ports.InstallerPort,
	index ports.IndexPort,
) (types.Record, error) {
	installed, err := installer.Installed(ctx, name)
	if err != nil {
		return types.Record{}, err
	}
	log.Debug().Str("package", name).Bool("installed", installed).Msg("queried local metadata")

	if config.VerifyOnly {
		return s.verifyOnly(ctx, name, installed, manager, save, path, installer, index)
	}
	return s.installOrUpgrade(ctx, name, installed, config.Upgrade, manager, save, path, installer, index)
}

func (s Service) verifyOnly(
	ctx context.Context,
	name string,
	installed bool,
	manager types.Manager,
	save bool,
	path string,
	installer ports.InstallerPort,
	index ports.IndexPort,
) (types.Record, error) {
	if !installed {
		record := types.Record{
			Name:      name,
			State:     types.StateNotInstalled,
			Timestamp: s.timestamp(),
			Message:   fmt.Sprintf("package %q is not installed", name),
		}
		if save {
			if err := s.Records.Update(path, record); err != nil {
				return types.Record{}, err
			}
		}
		s.Console.NotInstalled(name, save, path)
		return record, nil
	}

	installedVersion, err := installer.InstalledVersion(ctx, name)
	if err != nil {
		return types.Record{}, err
	}
	latestVersion := s.latestVersion(ctx, index, name)

	record := types.Record{
		Name:             name,
		State:            types.StateInstalled,
		Timestamp:        s.timestamp(),
		InstalledVersion: installedVersion,
		LatestVersion:    latestVersion,
	}
	if save {
		if err := s.Records.Update(path, record); err != nil {
			return types.Record{}, err
		}
	}
	s.Console.Installed(name, installedVersion, latestVersion, save, path)
	if core.UpdateAvailable(manager, installedVersion, latestVersion) {
		s.Console.UpdateAvailable(name, installedVersion, latestVersion)
	}
	return record, nil
}

func (s Service) installOrUpgrade(
	ctx context.Context,
	name string,
	installed bool,
	upgrade bool,
	manager types.Manager,
	save bool,
	path string,
	installer ports.InstallerPort,
	index ports.IndexPort,
) (types.Record, error) {
	state := types.StateInstalled
	if installed {
		s.Console.AlreadyInstalled(name)
		if upgrade {
			s.Console.Upgrading(name)
			if err := installer.Upgrade(ctx, name); err != nil {
				return types.Record{}, err
			}
			state = types.StateUpgraded
		}
	} else {
		s.Console.Installing(name)
		if err := installer.Install(ctx, name); err != nil {
			return types.Record{}, err
		}
	}

	installedVersion, err := installer.InstalledVersion(ctx, name)
	if err != nil {
		return types.Record{}, err
	}
	latestVersion := s.latestVersion(ctx, index, name)

	record := types.Record{
		Name:             name,
		State:            state,
		Timestamp:        s.timestamp(),
		InstalledVersion: installedVersion,
		LatestVersion:    latestVersion,
	}
	if save {
		if err := s.Records.Update(path, record); err != nil {
			return types.Record{}, err
		}
	}
	s.Console.Completed(name, save, path)
	if core.UpdateAvailable(manager, installedVersion, latestVersion) {
		s.Console.UpdateAvailable(name, installedVersion, latestVersion)
	}
	return record, nil
}

// latestVersion is a soft-fail enrichment: an unreachable or unknown
// index degrades to the unknown-version sentinel instead of failing
// the whole check.
func (s Service) latestVersion(ctx context.Context, index ports.IndexPort, name string) string {
	version, err := index.LatestVersion(ctx, name)
	if err != nil {
		log.Debug().Str("package", name).Err(err).Msg("index lookup failed, using sentinel")
		return types.UnknownVersion
	}
	return version
}

func (s Service) handleFailure(name string, cause error, save bool, path string) (CheckResult, error) {
	message := failureMessage(cause)
	record := types.Record{
		Name:      name,
		State:     types.StateError,
		Timestamp: s.timestamp(),
		Message:   message,
	}
	if save {
		if err := s.Records.Update(path, record); err != nil {
			log.Warn().Str("package", name).Err(err).Msg("failed to persist error record")
		}
	}
	s.Console.Error(name, message, save, path)
	return CheckResult{Record: record, Saved: save}, errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(fmt.Sprintf("check failed for %q: %s", name, message)).
		WithCause(cause)
}

func failureMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && builder.Msg != "" {
		return builder.Msg
	}
	return err.Error()
}

func (s Service) timestamp() string {
	return s.Clock().UTC().Format(time.RFC3339)
}
