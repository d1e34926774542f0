package ports

import (
	"context"

	"pipcheck/internal/types"
)

// InstallerPort abstracts the local package manager: metadata queries
// plus install/upgrade subprocess invocations.
type InstallerPort interface {
	Installed(ctx context.Context, name string) (bool, error)
	InstalledVersion(ctx context.Context, name string) (string, error)
	Install(ctx context.Context, name string) error
	Upgrade(ctx context.Context, name string) error
	List(ctx context.Context) ([]types.InstalledPackage, error)
}

// IndexPort queries the remote package index for the latest published
// version of a package.
type IndexPort interface {
	LatestVersion(ctx context.Context, name string) (string, error)
}
