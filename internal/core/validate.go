package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pipcheck/internal/types"
)

// ValidateName trims and validates a package name. Validation happens
// before any side effect of a check.
func ValidateName(value string) (string, error) {
	name := strings.TrimSpace(value)
	if name == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("a package name is required")
	}
	return name, nil
}

// ParseMode resolves an operation mode token to its configuration. The
// error message lists the valid options.
func ParseMode(value string) (types.Mode, types.ModeConfig, error) {
	mode := types.Mode(value)
	config, ok := types.ModeConfigs[mode]
	if !ok {
		return "", types.ModeConfig{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf(
				"invalid mode %q: must be one of %s, %s, %s",
				value, types.ModeViewOnly, types.ModeInstall, types.ModeInstallAndUpgrade,
			))
	}
	return mode, config, nil
}

// ParseSaveFlag converts the persist token to a boolean. Only the
// literal tokens "yes" and "no" are accepted, after trimming and
// lowercasing.
func ParseSaveFlag(value string) (bool, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	switch normalized {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	default:
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid save value %q: must be exactly \"yes\" or \"no\"", value))
	}
}

// ParseManager resolves a package manager token.
func ParseManager(value string) (types.Manager, error) {
	switch types.Manager(value) {
	case types.ManagerPip:
		return types.ManagerPip, nil
	case types.ManagerApt:
		return types.ManagerApt, nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid manager %q: must be %s or %s", value, types.ManagerPip, types.ManagerApt))
	}
}

// ParseExportFormat resolves an inventory export format token.
func ParseExportFormat(value string) (types.ExportFormat, error) {
	switch types.ExportFormat(value) {
	case types.ExportFormatJSON:
		return types.ExportFormatJSON, nil
	case types.ExportFormatYAML:
		return types.ExportFormatYAML, nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid format %q: must be %s or %s", value, types.ExportFormatJSON, types.ExportFormatYAML))
	}
}
