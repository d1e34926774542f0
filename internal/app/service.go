package app

import (
	"os"
	"time"

	"pipcheck/internal/adapters"
	"pipcheck/internal/ports"
	"pipcheck/internal/types"
)

type Service struct {
	Records      ports.RecordStorePort
	Console      ports.ConsolePort
	Clock        func() time.Time
	NewInstaller func(manager types.Manager, python string) ports.InstallerPort
	NewIndex     func(manager types.Manager, endpoint string, timeoutSec int) ports.IndexPort
}

func NewService() Service {
	return Service{
		Records:      adapters.NewRecordFileAdapter(),
		Console:      adapters.NewConsoleAdapter(os.Stdout),
		Clock:        time.Now,
		NewInstaller: newInstallerAdapter,
		NewIndex:     newIndexAdapter,
	}
}

func newInstallerAdapter(manager types.Manager, python string) ports.InstallerPort {
	if manager == types.ManagerApt {
		return adapters.NewAptInstallerAdapter()
	}
	return adapters.NewPipInstallerAdapter(python)
}

func newIndexAdapter(manager types.Manager, endpoint string, timeoutSec int) ports.IndexPort {
	if manager == types.ManagerApt {
		return adapters.NewAptCacheIndexAdapter()
	}
	return adapters.NewPyPIIndexAdapter(endpoint, timeoutSec)
}
