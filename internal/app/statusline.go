package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/moodware/persona/internal/config"
	"github.com/moodware/persona/internal/hook"
	"github.com/moodware/persona/internal/output"
	"github.com/moodware/persona/internal/state"
)

var statuslineCmd = &cobra.Command{
	Use:   "statusline",
	Short: "Render the statusline for a session",
	Long: `Reads the statusline request JSON from stdin, loads the session's
state, and prints one formatted line. A session with no state yet renders
the bootstrap personality.

Wire this into Claude Code's statusLine command setting.`,
	Args: cobra.NoArgs,
	RunE: runStatusline,
}

func init() {
	rootCmd.AddCommand(statuslineCmd)
}

func runStatusline(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// The host renders ANSI from piped output, so color stays on unless
	// the user turned it off.
	if flagNoColor || !cfg.Display.Color {
		output.SetNoColor(true)
	}

	in, err := hook.ReadStatuslineInput(os.Stdin)
	if err != nil {
		return err
	}

	store := state.NewStore(cfg.StateDir)
	st, err := store.Load(hook.SessionIDOrFallback(in.SessionID))
	if err != nil {
		return err
	}

	fmt.Println(output.Statusline(st, in.ModelName(), cfg.Display))
	return nil
}
