package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/zktree/internal/engine"
)

var exportFile string

var exportCmd = &cobra.Command{
	Use:   "export --file <file> <source>",
	Short: "Write znodes under the source path to a local JSON file",
	Long: `Export every znode under the source path to FILE as a single JSON
document with lexicographically sorted keys, so exports of the same tree
diff cleanly.

Example:
  # Export znodes under /path/to/export on zookeeper1 as JSON
  zktree export --file exported_znodes.json zookeeper1:2181/path/to/export`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := parseTarget(args[0], "source")
		if err != nil {
			return err
		}

		eng := newEngine()
		result, err := eng.Export(&engine.ExportRequest{
			Source: source,
			File:   exportFile,
		})
		if err != nil {
			return err
		}

		PrintSuccess(fmt.Sprintf("Exported %s", PrintCount(result.Nodes, "znode", "znodes")))
		PrintLabelValue("File", result.File)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFile, "file", "f", "", "Write the snapshot to FILE")
	_ = exportCmd.MarkFlagRequired("file")
}
