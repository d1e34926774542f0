package adapters

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"pipcheck/internal/ports"
	"pipcheck/internal/types"
)

// RecordFileAdapter persists check records as one JSON object keyed by
// package name. Updates load the whole file, overwrite one key, and
// rewrite the file.
type RecordFileAdapter struct{}

func NewRecordFileAdapter() RecordFileAdapter {
	return RecordFileAdapter{}
}

// Load reads a record file. A missing or corrupt file yields an empty
// set rather than an error: a bad file must not block new checks.
func (a RecordFileAdapter) Load(path string) (types.RecordSet, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("record file path is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return types.RecordSet{}, nil
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read record file").
			WithCause(err)
	}
	records := types.RecordSet{}
	if err := json.Unmarshal(data, &records); err != nil {
		return types.RecordSet{}, nil
	}
	return records, nil
}

func (a RecordFileAdapter) Update(path string, record types.Record) error {
	records, err := a.Load(path)
	if err != nil {
		return err
	}
	records[record.Name] = record
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to marshal records").
			WithCause(err)
	}
	return writeFile(path, data)
}

func (a RecordFileAdapter) WriteInventory(path string, inventory types.Inventory, format types.ExportFormat) error {
	if strings.TrimSpace(path) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("inventory file path is empty")
	}
	var data []byte
	var err error
	switch format {
	case types.ExportFormatYAML:
		data, err = yaml.Marshal(inventory)
	default:
		data, err = json.MarshalIndent(inventory, "", "    ")
	}
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to marshal inventory").
			WithCause(err)
	}
	return writeFile(path, data)
}

func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create record directory").
				WithCause(err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write record file").
			WithCause(err)
	}
	return nil
}

var _ ports.RecordStorePort = RecordFileAdapter{}
