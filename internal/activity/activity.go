// Package activity classifies hook events into the closed set of activities
// shown on the statusline.
package activity

import "strings"

// Activity is what Claude is currently doing, as derived from the most
// recent tool event. The set is closed: every event classifies to exactly
// one variant.
type Activity string

const (
	Editing     Activity = "editing"
	Coding      Activity = "coding"
	Configuring Activity = "configuring"
	Navigating  Activity = "navigating"
	Writing     Activity = "writing"
	Executing   Activity = "executing"
	Reading     Activity = "reading"
	Searching   Activity = "searching"
	Debugging   Activity = "debugging"
	Testing     Activity = "testing"
	Reviewing   Activity = "reviewing"
	Thinking    Activity = "thinking"
	Building    Activity = "building"
	Installing  Activity = "installing"
	Idle        Activity = "idle"
	Working     Activity = "working"
	Refactoring Activity = "refactoring"
	Documenting Activity = "documenting"
	Deploying   Activity = "deploying"
)

// All lists every activity variant. Kept in sync with the constants above;
// Parse and tests range over it.
var All = []Activity{
	Editing, Coding, Configuring, Navigating, Writing, Executing, Reading,
	Searching, Debugging, Testing, Reviewing, Thinking, Building, Installing,
	Idle, Working, Refactoring, Documenting, Deploying,
}

// Display returns the capitalized form used on the statusline.
func (a Activity) Display() string {
	s := string(a)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Parse converts a stable tag back to an Activity, case-insensitively.
// Unrecognized input maps to Working rather than failing, so a state file
// written by a newer version still loads.
func Parse(s string) Activity {
	tag := Activity(strings.ToLower(s))
	for _, a := range All {
		if a == tag {
			return a
		}
	}
	return Working
}
