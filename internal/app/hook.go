package app

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/moodware/persona/internal/activity"
	"github.com/moodware/persona/internal/config"
	"github.com/moodware/persona/internal/hook"
	"github.com/moodware/persona/internal/journal"
	"github.com/moodware/persona/internal/personality"
	"github.com/moodware/persona/internal/state"
)

var hookCmd = &cobra.Command{
	Use:   "hook <pre-tool|post-tool|prompt-submit|session-end>",
	Short: "Process one hook event from stdin",
	Long: `Reads a single JSON hook payload from stdin and updates the session
state accordingly. Each event type maps to one transition:

  pre-tool       classify the tool call, update activity, mood, personality
  post-tool      record a tool error if the response carries one
  prompt-submit  reset the per-prompt error count
  session-end    remove the session's state file

This command is meant to be wired into Claude Code's hook configuration,
not run by hand.`,
	Args: cobra.ExactArgs(1),
	RunE: runHook,
}

func init() {
	rootCmd.AddCommand(hookCmd)
}

func runHook(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	in, err := hook.ReadInput(os.Stdin)
	if err != nil {
		return err
	}

	store := state.NewStore(cfg.StateDir)
	sessionID := hook.SessionIDOrFallback(in.SessionID)
	now := time.Now()

	switch args[0] {
	case "pre-tool":
		return runPreTool(cfg, store, sessionID, in, now)
	case "post-tool":
		return runPostTool(cfg, store, sessionID, in, now)
	case "prompt-submit":
		st, err := store.Load(sessionID)
		if err != nil {
			return err
		}
		return store.ResetErrors(st)
	case "session-end":
		return store.Cleanup(sessionID)
	default:
		return fmt.Errorf("unknown hook type %q (want pre-tool, post-tool, prompt-submit, or session-end)", args[0])
	}
}

// runPreTool is the main pipeline: classify, select, persist.
func runPreTool(cfg *config.Config, store *state.Store, sessionID string, in *hook.Input, now time.Time) error {
	st, err := store.Load(sessionID)
	if err != nil {
		return err
	}

	params := hook.ExtractParams(in.ToolInput)
	act, job := activity.Classify(in.ToolName, params.FilePath, params.Command, params.Pattern)

	pers := personality.Select(personality.Context{
		Tool:               in.ToolName,
		FilePath:           params.FilePath,
		Command:            params.Command,
		ErrorCount:         st.ErrorCount,
		ConsecutiveActions: st.StreakAfter(act),
	})

	if err := store.UpdateActivity(st, act, job, pers, now); err != nil {
		return err
	}

	recordEvent(cfg, journal.Event{
		SessionID:   sessionID,
		Tool:        in.ToolName,
		Activity:    string(act),
		Job:         job,
		Personality: pers,
		RecordedAt:  now,
	})
	return nil
}

// runPostTool only reacts to failures; a clean tool response is a no-op
// because the success path already ran on the pre-tool event.
func runPostTool(cfg *config.Config, store *state.Store, sessionID string, in *hook.Input, now time.Time) error {
	if !in.HadError() {
		return nil
	}

	st, err := store.Load(sessionID)
	if err != nil {
		return err
	}
	if err := store.IncrementErrors(st, now); err != nil {
		return err
	}

	recordEvent(cfg, journal.Event{
		SessionID:   sessionID,
		Tool:        in.ToolName,
		Activity:    string(st.Activity),
		Personality: st.Personality,
		HadError:    true,
		RecordedAt:  now,
	})
	return nil
}

// recordEvent appends to the journal when it is enabled. Failures are
// swallowed: the journal must never break a hook.
func recordEvent(cfg *config.Config, ev journal.Event) {
	if !cfg.Journal.Enabled {
		return
	}
	db, err := journal.Open(cfg.Journal.Path)
	if err != nil {
		return
	}
	defer db.Close()
	_ = db.Insert(ev)
}
