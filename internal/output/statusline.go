package output

import (
	"fmt"
	"strings"

	"github.com/moodware/persona/internal/config"
	"github.com/moodware/persona/internal/state"
)

// Statusline renders one line for the host statusline from the session
// state. Segments are joined with a separator and gated by the display
// toggles; a disabled segment leaves no residue in the line.
func Statusline(st *state.SessionState, model string, d config.Display) string {
	var segs []string

	if d.ShowPersonality && st.Personality != "" {
		segs = append(segs, StylePersonality.Render(st.Personality))
	}

	if d.ShowActivity {
		segs = append(segs, StyleActivity.Render(st.Activity.Display()))
	}

	if d.ShowCurrentJob && st.CurrentJob != nil && *st.CurrentJob != "" {
		segs = append(segs, StyleJob.Render(*st.CurrentJob))
	}

	if d.ShowErrorIndicators && st.ErrorCount > 0 {
		ind := fmt.Sprintf("✗ %d", st.ErrorCount)
		if st.ErrorCount >= 3 {
			segs = append(segs, StyleError.Render(ind))
		} else {
			segs = append(segs, StyleWarning.Render(ind))
		}
	}

	if d.ShowModel && model != "" {
		segs = append(segs, StyleModel.Render(model))
	}

	return strings.Join(segs, " | ")
}
