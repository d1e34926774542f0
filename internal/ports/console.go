package ports

import "pipcheck/internal/types"

// ConsolePort renders human-readable status lines for each phase of a
// check, and the inventory table.
type ConsolePort interface {
	NotInstalled(name string, saved bool, path string)
	Installed(name string, installedVersion string, latestVersion string, saved bool, path string)
	Installing(name string)
	AlreadyInstalled(name string)
	Upgrading(name string)
	Completed(name string, saved bool, path string)
	UpdateAvailable(name string, installedVersion string, latestVersion string)
	Error(name string, message string, saved bool, path string)
	InventoryTable(packages []types.InstalledPackage)
	InventoryExported(path string)
}
