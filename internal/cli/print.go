package cli

import (
	"github.com/spf13/cobra"

	"github.com/danieljhkim/zktree/internal/engine"
)

var printCmd = &cobra.Command{
	Use:   "print <source>",
	Short: "Print every znode under the source path",
	Long: `Print the path, stat, and payload of every znode under the source
connect descriptor. Performs no writes.

Example:
  # Print all znodes under /path/to/target on zookeeper1
  zktree print zookeeper1:2181/path/to/target`,
	Args: cobra.ExactArgs(1),
	RunE: runPrint,
}

func runPrint(cmd *cobra.Command, args []string) error {
	source, err := parseTarget(args[0], "source")
	if err != nil {
		return err
	}

	eng := newEngine()
	_, err = eng.Print(&engine.PrintRequest{
		Source: source,
		Out:    cmd.OutOrStdout(),
	})
	return err
}
