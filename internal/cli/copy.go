package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/zktree/internal/engine"
)

var copyPolicy policyFlags

var copyCmd = &cobra.Command{
	Use:   "copy <source> <destination>",
	Short: "Copy znodes from one ZooKeeper location to another",
	Long: `Copy every znode under the source path into the destination.

Each copied znode keeps its full source path below the destination path:
copying zk1:2181/a/b into zk2:2181/dst writes /dst/a/b, not /dst/b.
Payloads are the only thing copied; stats are assigned by the destination.

Example:
  # Copy znodes, skipping any that already exist at the destination
  zktree copy --no-clobber zookeeper1:2181/path/to/src zookeeper2:2181/path/to/dst`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := parseTarget(args[0], "source")
		if err != nil {
			return err
		}
		dest, err := parseTarget(args[1], "destination")
		if err != nil {
			return err
		}

		eng := newEngine()
		result, err := eng.Copy(&engine.CopyRequest{
			Source: source,
			Dest:   dest,
			Policy: copyPolicy.policy(),
		})
		if err != nil {
			return err
		}

		PrintSuccess(fmt.Sprintf("Copied %s", PrintCount(result.Visited, "znode", "znodes")))
		PrintLabelValue("Created", strconv.Itoa(result.Created))
		PrintLabelValue("Overwritten", strconv.Itoa(result.Overwritten))
		PrintLabelValue("Skipped", strconv.Itoa(result.Skipped))
		return nil
	},
}

func init() {
	copyPolicy.register(copyCmd)
}
