package app

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/moodware/persona/internal/config"
	"github.com/moodware/persona/internal/output"
	"github.com/moodware/persona/internal/state"
)

var sessionsFlagPurge bool

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List tracked sessions and their state",
	Long: `Lists every session with a state file in the state directory,
with its current activity, personality, streak, and error count.

Examples:
  persona sessions            # list live sessions
  persona sessions --json     # machine output
  persona sessions --purge    # remove all session state files`,
	Args: cobra.NoArgs,
	RunE: runSessions,
}

func init() {
	sessionsCmd.Flags().BoolVar(&sessionsFlagPurge, "purge", false, "Remove all session state files")
	rootCmd.AddCommand(sessionsCmd)
}

func runSessions(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if flagNoColor {
		output.SetNoColor(true)
	} else {
		output.AutoDetect()
	}

	store := state.NewStore(cfg.StateDir)
	ids, err := store.Sessions()
	if err != nil {
		return err
	}

	if sessionsFlagPurge {
		for _, id := range ids {
			_ = store.Cleanup(id)
		}
		fmt.Printf("Removed state for %d session(s).\n", len(ids))
		return nil
	}

	if len(ids) == 0 {
		fmt.Println("No tracked sessions.")
		return nil
	}

	// Load all state files concurrently; a file that disappears or turns
	// out corrupt mid-listing is skipped rather than failing the listing.
	var mu sync.Mutex
	var states []*state.SessionState

	var g errgroup.Group
	g.SetLimit(8)
	for _, id := range ids {
		g.Go(func() error {
			st, err := store.Load(id)
			if err != nil {
				return nil
			}
			mu.Lock()
			states = append(states, st)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(states, func(i, j int) bool {
		return states[i].SessionID < states[j].SessionID
	})

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(states)
	}

	for _, st := range states {
		job := ""
		if st.CurrentJob != nil {
			job = " " + output.StyleJob.Render(*st.CurrentJob)
		}
		errs := ""
		if st.ErrorCount > 0 {
			errs = " " + output.StyleError.Render(fmt.Sprintf("✗ %d", st.ErrorCount))
		}
		fmt.Printf("%s  %s %s (x%d)%s%s\n",
			st.SessionID,
			output.StylePersonality.Render(st.Personality),
			output.StyleActivity.Render(st.Activity.Display()),
			st.ConsecutiveActions,
			job,
			errs,
		)
	}
	return nil
}
