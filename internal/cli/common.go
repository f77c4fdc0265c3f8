package cli

import (
	"fmt"
	"os"

	"github.com/danieljhkim/zktree/internal/engine"
	"github.com/danieljhkim/zktree/internal/fsops"
	"github.com/danieljhkim/zktree/internal/zkc"
)

// newEngine creates an engine wired to real ZooKeeper connections, the real
// filesystem, and an interactive terminal decider for conflict prompts.
func newEngine() *engine.Engine {
	var opts []engine.Option
	if verbose {
		opts = append(opts, engine.WithDebug(os.Stderr))
	}
	decider := engine.NewPromptDecider(os.Stdin, os.Stderr)
	return engine.New(&zkc.ZKDialer{}, fsops.NewRealFS(), decider, opts...)
}

// parseTarget parses a positional connect descriptor, naming the argument's
// role in the error on failure.
func parseTarget(arg, role string) (zkc.Target, error) {
	target, err := zkc.ParseConnectString(arg)
	if err != nil {
		return zkc.Target{}, fmt.Errorf("invalid %s %q: %w", role, arg, err)
	}
	return target, nil
}
