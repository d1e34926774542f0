package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pipcheck/internal/app"
	"pipcheck/internal/types"
)

const defaultInventoryFile = "inventario_entorno.json"

type inventoryOptions struct {
	Filter        string
	Export        bool
	InventoryFile string
	Format        string
	Manager       string
	Python        string
}

func newInventoryCommand() *cobra.Command {
	opts := inventoryOptions{}
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "List installed packages as a table, optionally exporting a snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInventory(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "", "Case-insensitive name filter")
	cmd.Flags().BoolVar(&opts.Export, "export", false, "Export the inventory snapshot to a file")
	cmd.Flags().StringVar(&opts.InventoryFile, "file", defaultInventoryFile, "Inventory file path")
	cmd.Flags().StringVar(&opts.Format, "format", string(types.ExportFormatJSON), "Export format (json or yaml)")
	cmd.Flags().StringVar(&opts.Manager, "manager", string(types.ManagerPip), "Package manager backend (pip or apt)")
	cmd.Flags().StringVar(&opts.Python, "python", "python3", "Python interpreter used for pip invocations")

	_ = viper.BindPFlag("filter", cmd.Flags().Lookup("filter"))
	_ = viper.BindPFlag("export", cmd.Flags().Lookup("export"))
	_ = viper.BindPFlag("inventory_file", cmd.Flags().Lookup("file"))
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("manager", cmd.Flags().Lookup("manager"))
	_ = viper.BindPFlag("python", cmd.Flags().Lookup("python"))

	return cmd
}

func runInventory(cmd *cobra.Command, opts inventoryOptions) error {
	service := newAppService()
	result, err := service.Inventory(cmd.Context(), app.InventoryRequest{
		Filter:        resolveString(cmd, opts.Filter, "filter", "filter"),
		Export:        resolveBool(cmd, opts.Export, "export", "export"),
		InventoryPath: resolveString(cmd, opts.InventoryFile, "inventory_file", "file"),
		Format:        resolveString(cmd, opts.Format, "format", "format"),
		Manager:       resolveString(cmd, opts.Manager, "manager", "manager"),
		Python:        resolveString(cmd, opts.Python, "python", "python"),
	})
	if err != nil {
		return err
	}
	if result.Exported {
		fmt.Printf("inventory written: %d packages\n", result.Inventory.Total)
	}
	return nil
}
