package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/zktree/internal/engine"
)

var (
	importFile   string
	importPolicy policyFlags
)

var importCmd = &cobra.Command{
	Use:   "import --file <file> <destination>",
	Short: "Write znodes from a local JSON file into a ZooKeeper location",
	Long: `Read a snapshot document from FILE and write its znodes into the
destination. The document is validated in full before any write happens.
Each entry keeps its recorded path below the destination path; missing
ancestors are created with empty payloads.

Example:
  # Import znodes, overwriting any that already exist at the destination
  zktree import --overwrite --file exported_znodes.json zookeeper2:2181/path/to/write/to`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dest, err := parseTarget(args[0], "destination")
		if err != nil {
			return err
		}

		eng := newEngine()
		result, err := eng.Import(&engine.ImportRequest{
			File:   importFile,
			Dest:   dest,
			Policy: importPolicy.policy(),
		})
		if err != nil {
			return err
		}

		PrintSuccess(fmt.Sprintf("Imported %s", PrintCount(result.Entries, "entry", "entries")))
		PrintLabelValue("Created", strconv.Itoa(result.Created))
		PrintLabelValue("Overwritten", strconv.Itoa(result.Overwritten))
		PrintLabelValue("Skipped", strconv.Itoa(result.Skipped))
		return nil
	},
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "Read the snapshot from FILE")
	_ = importCmd.MarkFlagRequired("file")
	importPolicy.register(importCmd)
}
