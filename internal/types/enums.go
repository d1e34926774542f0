package types

type Mode string

const (
	ModeViewOnly          Mode = "view-only"
	ModeInstall           Mode = "install"
	ModeInstallAndUpgrade Mode = "install-and-upgrade"
)

type State string

const (
	StateNotInstalled State = "no_instalada"
	StateInstalled    State = "instalada"
	StateUpgraded     State = "actualizada"
	StateError        State = "error"
)

type Manager string

const (
	ManagerPip Manager = "pip"
	ManagerApt Manager = "apt"
)

type ExportFormat string

const (
	ExportFormatJSON ExportFormat = "json"
	ExportFormatYAML ExportFormat = "yaml"
)

// ModeConfig describes the behavior of one operation mode.
type ModeConfig struct {
	VerifyOnly  bool
	Upgrade     bool
	Description string
}

var ModeConfigs = map[Mode]ModeConfig{
	ModeViewOnly: {
		VerifyOnly:  true,
		Upgrade:     false,
		Description: "Only check whether the package is installed and record the result.",
	},
	ModeInstall: {
		VerifyOnly:  false,
		Upgrade:     false,
		Description: "Install the package when absent, never upgrade.",
	},
	ModeInstallAndUpgrade: {
		VerifyOnly:  false,
		Upgrade:     true,
		Description: "Install the package when absent, upgrade when already present.",
	},
}
