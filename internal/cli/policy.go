package cli

import (
	"github.com/spf13/cobra"

	"github.com/danieljhkim/zktree/internal/engine"
)

// policyFlags holds the mutually exclusive conflict policy flags shared by
// the copy and import commands.
type policyFlags struct {
	noClobber   bool
	interactive bool
	overwrite   bool
}

// register adds the policy flags to cmd and marks them mutually exclusive.
func (f *policyFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.noClobber, "no-clobber", false, "Do not overwrite any existing znodes (default)")
	cmd.Flags().BoolVar(&f.interactive, "interactive", false, "Prompt for each conflict encountered")
	cmd.Flags().BoolVar(&f.overwrite, "overwrite", false, "Overwrite existing znodes without prompting")
	cmd.MarkFlagsMutuallyExclusive("no-clobber", "interactive", "overwrite")
}

// policy returns the selected conflict policy, defaulting to no-clobber.
func (f *policyFlags) policy() engine.Policy {
	switch {
	case f.interactive:
		return engine.PolicyInteractive
	case f.overwrite:
		return engine.PolicyOverwrite
	default:
		return engine.PolicyNoClobber
	}
}
