package adapters

import (
	"fmt"
	"io"
	"os"

	"pipcheck/internal/ports"
	"pipcheck/internal/types"
)

const (
	iconSuccess    = "✔"
	iconError      = "❌"
	iconInstalling = "⬇"
	iconUpgrading  = "🔄"
	iconPackage    = "📦"
	iconWeb        = "🌐"
	iconSaved      = "💾"
	iconCompleted  = "✅"
)

// ConsoleAdapter prints per-phase status lines with symbolic icons,
// plus the fixed-width inventory table.
type ConsoleAdapter struct {
	Out io.Writer
}

func NewConsoleAdapter(out io.Writer) ConsoleAdapter {
	if out == nil {
		out = os.Stdout
	}
	return ConsoleAdapter{Out: out}
}

func (c ConsoleAdapter) NotInstalled(name string, saved bool, path string) {
	fmt.Fprintf(c.Out, "%s package %q is not installed\n", iconError, name)
	c.savedLine(saved, path)
}

func (c ConsoleAdapter) Installed(name string, installedVersion string, latestVersion string, saved bool, path string) {
	fmt.Fprintf(c.Out, "%s %q installed\n", iconSuccess, name)
	fmt.Fprintf(c.Out, "%s installed version: %s\n", iconPackage, installedVersion)
	fmt.Fprintf(c.Out, "%s latest version: %s\n", iconWeb, latestVersion)
	c.savedLine(saved, path)
}

func (c ConsoleAdapter) Installing(name string) {
	fmt.Fprintf(c.Out, "%s %q is not installed, installing...\n", iconInstalling, name)
}

func (c ConsoleAdapter) AlreadyInstalled(name string) {
	fmt.Fprintf(c.Out, "%s %q is already installed\n", iconSuccess, name)
}

func (c ConsoleAdapter) Upgrading(name string) {
	fmt.Fprintf(c.Out, "%s upgrading %q...\n", iconUpgrading, name)
}

func (c ConsoleAdapter) Completed(name string, saved bool, path string) {
	fmt.Fprintf(c.Out, "%s completed for %q\n", iconCompleted, name)
	c.savedLine(saved, path)
}

func (c ConsoleAdapter) UpdateAvailable(name string, installedVersion string, latestVersion string) {
	fmt.Fprintf(c.Out, "%s update available for %q: %s -> %s\n", iconUpgrading, name, installedVersion, latestVersion)
}

func (c ConsoleAdapter) Error(name string, message string, saved bool, path string) {
	fmt.Fprintf(c.Out, "%s error with %q: %s\n", iconError, name, message)
	if saved {
		fmt.Fprintf(c.Out, "%s error recorded in %q\n", iconSaved, path)
	}
}

func (c ConsoleAdapter) InventoryTable(packages []types.InstalledPackage) {
	fmt.Fprintf(c.Out, "\n%-35s | %-15s\n", "PACKAGE", "VERSION")
	fmt.Fprintln(c.Out, separatorLine)
	for _, pkg := range packages {
		fmt.Fprintf(c.Out, "%-35s | %-15s\n", pkg.Name, pkg.Version)
	}
	fmt.Fprintln(c.Out, separatorLine)
	fmt.Fprintf(c.Out, "Total packages detected: %d\n", len(packages))
}

func (c ConsoleAdapter) InventoryExported(path string) {
	fmt.Fprintf(c.Out, "%s inventory exported to %q\n", iconSaved, path)
}

func (c ConsoleAdapter) savedLine(saved bool, path string) {
	if saved {
		fmt.Fprintf(c.Out, "%s record saved in %q\n", iconSaved, path)
	}
}

var separatorLine = "-------------------------------------------------------"

var _ ports.ConsolePort = ConsoleAdapter{}
