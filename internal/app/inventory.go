package app

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"pipcheck/internal/core"
	"pipcheck/internal/types"
)

// Inventory lists every installed package, prints the table, and
// optionally exports the snapshot to a file.
func (s Service) Inventory(ctx context.Context, req InventoryRequest) (InventoryResult, error) {
	manager, err := core.ParseManager(req.Manager)
	if err != nil {
		return InventoryResult{}, err
	}
	format, err := core.ParseExportFormat(req.Format)
	if err != nil {
		return InventoryResult{}, err
	}

	installer := s.NewInstaller(manager, req.Python)
	packages, err := installer.List(ctx)
	if err != nil {
		return InventoryResult{}, err
	}
	packages = filterPackages(packages, req.Filter)
	sortPackages(packages)
	log.Debug().Int("count", len(packages)).Msg("scanned installed packages")

	s.Console.InventoryTable(packages)

	inventory := types.Inventory{
		ScannedAt: s.timestamp(),
		Total:     len(packages),
		Packages:  packages,
	}
	if !req.Export {
		return InventoryResult{Inventory: inventory}, nil
	}
	if err := s.Records.WriteInventory(req.InventoryPath, inventory, format); err != nil {
		return InventoryResult{}, err
	}
	s.Console.InventoryExported(req.InventoryPath)
	return InventoryResult{Inventory: inventory, Exported: true}, nil
}

func filterPackages(packages []types.InstalledPackage, filter string) []types.InstalledPackage {
	pattern := strings.ToLower(strings.TrimSpace(filter))
	if pattern == "" {
		return packages
	}
	var out []types.InstalledPackage
	for _, pkg := range packages {
		if strings.Contains(strings.ToLower(pkg.Name), pattern) {
			out = append(out, pkg)
		}
	}
	return out
}

// sortPackages orders case-insensitively by name, with the original
// casing as tie-breaker for determinism.
func sortPackages(packages []types.InstalledPackage) {
	sort.SliceStable(packages, func(i, j int) bool {
		left := strings.ToLower(packages[i].Name)
		right := strings.ToLower(packages[j].Name)
		if left != right {
			return left < right
		}
		return packages[i].Name < packages[j].Name
	})
}
