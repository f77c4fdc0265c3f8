package engine

import (
	"strings"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		exists  bool
		policy  Policy
		scripts []Decision
		want    Decision
	}{
		{name: "absent with no-clobber", exists: false, policy: PolicyNoClobber, want: DecisionWrite},
		{name: "absent with interactive", exists: false, policy: PolicyInteractive, want: DecisionWrite},
		{name: "absent with overwrite", exists: false, policy: PolicyOverwrite, want: DecisionWrite},
		{name: "existing with no-clobber", exists: true, policy: PolicyNoClobber, want: DecisionSkip},
		{name: "existing with overwrite", exists: true, policy: PolicyOverwrite, want: DecisionWrite},
		{name: "existing with interactive yes", exists: true, policy: PolicyInteractive, scripts: []Decision{DecisionWrite}, want: DecisionWrite},
		{name: "existing with interactive no", exists: true, policy: PolicyInteractive, scripts: []Decision{DecisionSkip}, want: DecisionSkip},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decider := &scriptDecider{decisions: tt.scripts}
			got, err := Resolve(tt.exists, tt.policy, decider, "/a/b")
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%v, %s) = %v, want %v", tt.exists, tt.policy, got, tt.want)
			}
			if !tt.exists && len(decider.asked) > 0 {
				t.Error("decider consulted for a non-existing destination")
			}
		})
	}
}

func TestResolveUnknownPolicy(t *testing.T) {
	if _, err := Resolve(true, Policy(42), nil, "/a"); err == nil {
		t.Error("expected error for unknown policy")
	}
}

func TestPromptDecider(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        Decision
		wantPrompts int
	}{
		{name: "lowercase yes", input: "y\n", want: DecisionWrite, wantPrompts: 1},
		{name: "uppercase yes", input: "Y\n", want: DecisionWrite, wantPrompts: 1},
		{name: "lowercase no", input: "n\n", want: DecisionSkip, wantPrompts: 1},
		{name: "uppercase no", input: "N\n", want: DecisionSkip, wantPrompts: 1},
		{name: "whitespace around answer", input: "  y  \n", want: DecisionWrite, wantPrompts: 1},
		{name: "re-prompt until valid", input: "maybe\nsure\nn\n", want: DecisionSkip, wantPrompts: 3},
		{name: "empty line re-prompts", input: "\ny\n", want: DecisionWrite, wantPrompts: 2},
		{name: "answer on final unterminated line", input: "y", want: DecisionWrite, wantPrompts: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			decider := NewPromptDecider(strings.NewReader(tt.input), &out)

			got, err := decider.Decide("/dst/a")
			if err != nil {
				t.Fatalf("Decide() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Decide() = %v, want %v", got, tt.want)
			}
			prompts := strings.Count(out.String(), "Overwrite? (y/n)")
			if prompts != tt.wantPrompts {
				t.Errorf("prompted %d times, want %d\noutput: %q", prompts, tt.wantPrompts, out.String())
			}
			if !strings.Contains(out.String(), "/dst/a") {
				t.Errorf("prompt does not name the conflicting path: %q", out.String())
			}
		})
	}
}

func TestPromptDeciderFailsOnClosedInput(t *testing.T) {
	var out strings.Builder
	decider := NewPromptDecider(strings.NewReader("garbage\n"), &out)

	if _, err := decider.Decide("/dst/a"); err == nil {
		t.Error("expected error when input ends without a valid answer")
	}
}

func TestPolicyString(t *testing.T) {
	tests := []struct {
		policy Policy
		want   string
	}{
		{PolicyNoClobber, "no-clobber"},
		{PolicyInteractive, "interactive"},
		{PolicyOverwrite, "overwrite"},
		{Policy(9), "policy(9)"},
	}
	for _, tt := range tests {
		if got := tt.policy.String(); got != tt.want {
			t.Errorf("Policy(%d).String() = %q, want %q", int(tt.policy), got, tt.want)
		}
	}
}
