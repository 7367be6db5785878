// Package app contains the Cobra command tree for persona.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "persona",
	Short: "Personality engine for the Claude Code statusline",
	Long: `persona turns Claude Code hook events into a live statusline mood.
It classifies each tool call into an activity, tracks per-session momentum
and frustration, and picks a kaomoji personality to match.

Wire 'persona hook <type>' into your hook configuration and
'persona statusline' into the statusLine command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("persona", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  hook        Process one hook event from stdin")
		fmt.Println("  statusline  Render the statusline for a session")
		fmt.Println("  sessions    List tracked sessions and their state")
		fmt.Println("  history     Report on journaled sessions")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/persona/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
}
