package app

import "pipcheck/internal/types"

type CheckRequest struct {
	Name            string
	Mode            string
	Save            string
	RecordPath      string
	Manager         string
	Python          string
	IndexURL        string
	IndexTimeoutSec int
}

type CheckResult struct {
	Record types.Record
	Saved  bool
}

type InventoryRequest struct {
	Filter        string
	Export        bool
	InventoryPath string
	Format        string
	Manager       string
	Python        string
}

type InventoryResult struct {
	Inventory types.Inventory
	Exported  bool
}
