package ports

import "pipcheck/internal/types"

// RecordStorePort persists per-package check records and inventory
// exports. Updates are read-modify-write over the whole file.
type RecordStorePort interface {
	Load(path string) (types.RecordSet, error)
	Update(path string, record types.Record) error
	WriteInventory(path string, inventory types.Inventory, format types.ExportFormat) error
}
