package engine

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Policy selects what happens when a write target already exists at the
// destination.
type Policy int

const (
	// PolicyNoClobber leaves existing znodes untouched.
	PolicyNoClobber Policy = iota

	// PolicyInteractive asks the decider for each conflicting znode.
	PolicyInteractive

	// PolicyOverwrite replaces existing payloads without asking.
	PolicyOverwrite
)

func (p Policy) String() string {
	switch p {
	case PolicyNoClobber:
		return "no-clobber"
	case PolicyInteractive:
		return "interactive"
	case PolicyOverwrite:
		return "overwrite"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Decision is the outcome of conflict resolution for one znode.
type Decision int

const (
	// DecisionSkip leaves the destination znode untouched.
	DecisionSkip Decision = iota

	// DecisionWrite writes the source payload to the destination.
	DecisionWrite
)

// Decider supplies the answer for interactive conflicts. Implementations may
// block; the engine asks once per conflicting znode and nothing else proceeds
// while an answer is outstanding.
type Decider interface {
	Decide(path string) (Decision, error)
}

// Resolve maps destination existence and policy to a decision. A destination
// znode that does not exist yet is always written, regardless of policy; only
// PolicyInteractive consults the decider.
func Resolve(exists bool, policy Policy, decider Decider, path string) (Decision, error) {
	if !exists {
		return DecisionWrite, nil
	}
	switch policy {
	case PolicyNoClobber:
		return DecisionSkip, nil
	case PolicyOverwrite:
		return DecisionWrite, nil
	case PolicyInteractive:
		return decider.Decide(path)
	default:
		return DecisionSkip, fmt.Errorf("unknown conflict policy: %s", policy)
	}
}

// PromptDecider resolves conflicts by asking a yes/no question on Out and
// reading the answer from In. Any answer other than a case-insensitive "y" or
// "n" causes a re-prompt.
type PromptDecider struct {
	out    io.Writer
	reader *bufio.Reader
}

// NewPromptDecider prompts on out and reads answers line by line from in.
func NewPromptDecider(in io.Reader, out io.Writer) *PromptDecider {
	return &PromptDecider{out: out, reader: bufio.NewReader(in)}
}

// Decide asks whether the znode at path should be overwritten.
func (d *PromptDecider) Decide(path string) (Decision, error) {
	for {
		fmt.Fprintf(d.out, "ZNode at %s already exists at destination. Overwrite? (y/n) ", path)
		line, err := d.reader.ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y":
			return DecisionWrite, nil
		case "n":
			return DecisionSkip, nil
		}
		if err != nil {
			return DecisionSkip, fmt.Errorf("failed to read answer: %w", err)
		}
	}
}
