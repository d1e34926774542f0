package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pipcheck/internal/app"
	"pipcheck/internal/types"
)

const defaultRecordFile = "librerias_verificadas.json"

type checkOptions struct {
	Mode            string
	Save            string
	RecordFile      string
	Manager         string
	Python          string
	IndexURL        string
	IndexTimeoutSec int
}

func newCheckCommand() *cobra.Command {
	opts := checkOptions{}
	cmd := &cobra.Command{
		Use:   "check <package>",
		Short: "Check whether a package is installed, optionally installing or upgrading it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.Mode, "mode", string(types.ModeViewOnly),
		fmt.Sprintf("Operation mode (%s, %s, %s)", types.ModeViewOnly, types.ModeInstall, types.ModeInstallAndUpgrade))
	cmd.Flags().StringVar(&opts.Save, "save", "yes", "Persist the result to the record file (yes or no)")
	cmd.Flags().StringVar(&opts.RecordFile, "file", defaultRecordFile, "Record file path")
	cmd.Flags().StringVar(&opts.Manager, "manager", string(types.ManagerPip), "Package manager backend (pip or apt)")
	cmd.Flags().StringVar(&opts.Python, "python", "python3", "Python interpreter used for pip invocations")
	cmd.Flags().StringVar(&opts.IndexURL, "index-url", "https://pypi.org", "Package index endpoint")
	cmd.Flags().IntVar(&opts.IndexTimeoutSec, "index-timeout", 5, "Index request timeout in seconds")

	_ = viper.BindPFlag("mode", cmd.Flags().Lookup("mode"))
	_ = viper.BindPFlag("save", cmd.Flags().Lookup("save"))
	_ = viper.BindPFlag("record_file", cmd.Flags().Lookup("file"))
	_ = viper.BindPFlag("manager", cmd.Flags().Lookup("manager"))
	_ = viper.BindPFlag("python", cmd.Flags().Lookup("python"))
	_ = viper.BindPFlag("index_url", cmd.Flags().Lookup("index-url"))
	_ = viper.BindPFlag("index_timeout", cmd.Flags().Lookup("index-timeout"))

	return cmd
}

func runCheck(cmd *cobra.Command, name string, opts checkOptions) error {
	service := newAppService()
	result, err := service.Check(cmd.Context(), app.CheckRequest{
		Name:            name,
		Mode:            resolveString(cmd, opts.Mode, "mode", "mode"),
		Save:            resolveString(cmd, opts.Save, "save", "save"),
		RecordPath:      resolveString(cmd, opts.RecordFile, "record_file", "file"),
		Manager:         resolveString(cmd, opts.Manager, "manager", "manager"),
		Python:          resolveString(cmd, opts.Python, "python", "python"),
		IndexURL:        resolveString(cmd, opts.IndexURL, "index_url", "index-url"),
		IndexTimeoutSec: resolveInt(cmd, opts.IndexTimeoutSec, "index_timeout", "index-timeout"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("%s finished: %s\n", result.Record.Name, result.Record.State)
	return nil
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func resolveInt(cmd *cobra.Command, value int, key string, flagName string) int {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetInt(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
