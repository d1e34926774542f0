package types

// UnknownVersion is the sentinel stored when a version cannot be
// determined, e.g. when the index lookup fails.
const UnknownVersion = "desconocida"

// Record is the persisted result of one package check. Field names
// follow the established on-disk schema; optional fields are omitted
// when empty.
type Record struct {
	Name             string `json:"libreria"`
	State            State  `json:"estado"`
	Timestamp        string `json:"timestamp"`
	InstalledVersion string `json:"version_instalada,omitempty"`
	LatestVersion    string `json:"ultima_version,omitempty"`
	Message          string `json:"mensaje,omitempty"`
}

// RecordSet is the full contents of a record file, keyed by package name.
type RecordSet map[string]Record

// InstalledPackage is one entry of the local environment inventory.
type InstalledPackage struct {
	Name    string `json:"nombre" yaml:"nombre"`
	Version string `json:"version" yaml:"version"`
}

// Inventory is the exported snapshot of all installed packages.
type Inventory struct {
	ScannedAt string             `json:"fecha_escaneo" yaml:"fecha_escaneo"`
	Total     int                `json:"total_librerias" yaml:"total_librerias"`
	Packages  []InstalledPackage `json:"librerias" yaml:"librerias"`
}
