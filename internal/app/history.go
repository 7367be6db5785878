package app

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/moodware/persona/internal/config"
	"github.com/moodware/persona/internal/journal"
	"github.com/moodware/persona/internal/output"
)

var historyFlagSession string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Report on journaled sessions",
	Long: `Summarizes the event journal: per-session event counts, error
counts, and the dominant activity. Requires journal.enabled in the config.

Examples:
  persona history                     # all journaled sessions
  persona history --session abc123    # one session, with activity breakdown`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historyFlagSession, "session", "", "Limit to one session id")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if flagNoColor {
		output.SetNoColor(true)
	} else {
		output.AutoDetect()
	}

	db, err := journal.Open(cfg.Journal.Path)
	if err != nil {
		return fmt.Errorf("opening journal %s: %w", cfg.Journal.Path, err)
	}
	defer db.Close()

	summaries, err := db.Summaries(historyFlagSession)
	if err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summaries)
	}

	if len(summaries) == 0 {
		fmt.Println("No journaled events. Enable journal.enabled in the config to start recording.")
		return nil
	}

	for _, s := range summaries {
		errs := ""
		if s.Errors > 0 {
			errs = " " + output.StyleError.Render(fmt.Sprintf("✗ %d", s.Errors))
		}
		fmt.Printf("%s  %d events, mostly %s, last %s%s\n",
			s.SessionID,
			s.Events,
			output.StyleActivity.Render(s.TopActivity),
			output.StyleJob.Render(s.LastSeen),
			errs,
		)
	}

	if historyFlagSession != "" {
		counts, err := db.ActivityCounts(historyFlagSession)
		if err != nil {
			return err
		}
		acts := make([]string, 0, len(counts))
		for act := range counts {
			acts = append(acts, act)
		}
		sort.Slice(acts, func(i, j int) bool {
			if counts[acts[i]] != counts[acts[j]] {
				return counts[acts[i]] > counts[acts[j]]
			}
			return acts[i] < acts[j]
		})
		fmt.Println()
		for _, act := range acts {
			fmt.Printf("  %-14s %d\n", act, counts[act])
		}
	}
	return nil
}
