package adapters

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"pipcheck/internal/types"
)

func TestConsolePhases(t *testing.T) {
	var out bytes.Buffer
	console := NewConsoleAdapter(&out)

	console.NotInstalled("requests", true, "records.json")
	console.Installing("requests")
	console.Upgrading("requests")
	console.Installed("requests", "2.31.0", "2.32.5", true, "records.json")
	console.UpdateAvailable("requests", "2.31.0", "2.32.5")
	console.Completed("requests", false, "records.json")
	console.Error("requests", "boom", true, "records.json")

	text := out.String()
	for _, fragment := range []string{
		"not installed",
		"installing...",
		"upgrading",
		"installed version: 2.31.0",
		"latest version: 2.32.5",
		"update available",
		"completed",
		"error with",
		"records.json",
	} {
		assert.Contains(t, text, fragment)
	}
}

func TestConsoleSavedLineOnlyWhenSaving(t *testing.T) {
	var out bytes.Buffer
	console := NewConsoleAdapter(&out)
	console.Completed("requests", false, "records.json")
	assert.NotContains(t, out.String(), "record saved")
}

func TestConsoleInventoryTable(t *testing.T) {
	var out bytes.Buffer
	console := NewConsoleAdapter(&out)
	console.InventoryTable([]types.InstalledPackage{
		{Name: "numpy", Version: "2.1.0"},
		{Name: "requests", Version: "2.32.5"},
	})

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Contains(t, lines[0], "PACKAGE")
	assert.Contains(t, lines[0], "VERSION")
	assert.Contains(t, out.String(), "numpy")
	assert.Contains(t, out.String(), "Total packages detected: 2")
	// Two columns, fixed width.
	for _, line := range lines {
		if strings.Contains(line, "numpy") {
			assert.Contains(t, line, "|")
		}
	}
}
