package cli

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

// rootCmd is the root command for zktree. Invoked with a connect descriptor
// and no subcommand it defaults to the print action.
var rootCmd = &cobra.Command{
	Use:     "zktree",
	Version: "dev",
	Short:   "Print, copy, export, and import ZooKeeper subtrees",
	Long: `zktree walks znode trees on remote ZooKeeper ensembles.

It can print a subtree, copy one between ensembles, export one to a local
JSON snapshot file, and import such a file back into an ensemble. Targets
are connect descriptors of the form host:port/path/to/znode.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runPrint(cmd, args)
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose (debug) output")

	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
