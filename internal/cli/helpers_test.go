package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/danieljhkim/hanoi/internal/clock"
)

// resetFlags restores every flag of cmd and its children to its default,
// since cobra commands are package-level and keep state between tests.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// executeCommand runs the root command with args and stdin and returns
// everything written to stdout and stderr.
func executeCommand(t *testing.T, stdin string, args ...string) (string, *clock.FakeClock, error) {
	t.Helper()

	for _, k := range []string{"HANOI_DISKS", "HANOI_STEP_DELAY", "HANOI_MAX_DISKS", "HANOI_SOLVER"} {
		t.Setenv(k, "")
	}

	oldNoColor := color.NoColor
	color.NoColor = true
	fake := clock.NewFakeClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	oldClock := newClock
	newClock = func() clock.Clock { return fake }
	t.Cleanup(func() {
		color.NoColor = oldNoColor
		newClock = oldClock
	})

	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)

	err := rootCmd.Execute()
	return out.String(), fake, err
}
