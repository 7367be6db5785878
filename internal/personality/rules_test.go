package personality

import (
	"testing"

	"github.com/moodware/persona/internal/mood"
)

func TestSelectFrustrationOverride(t *testing.T) {
	tests := []struct {
		name       string
		errorCount int
		want       string
	}{
		{"five errors flips the table", 5, TableFlipper.String()},
		{"seven errors still flipping", 7, TableFlipper.String()},
		{"three errors is moderate", 3, ErrorWarrior.String()},
		{"four errors is moderate", 4, ErrorWarrior.String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// A command that would otherwise pick a category label: the
			// frustration stage must win.
			got := Select(Context{Tool: "Bash", Command: "git status", ErrorCount: tt.errorCount})
			if got != tt.want {
				t.Errorf("Select(errors=%d) = %q, want %q", tt.errorCount, got, tt.want)
			}
		})
	}
}

func TestSelectCommandCategories(t *testing.T) {
	tests := []struct {
		command string
		want    string
	}{
		{"git commit -m wip", GitManager.String()},
		{"npm test", TestTaskmaster.String()},
		{"kubectl rollout status", DeploymentGuard.String()},
		{"psql -d mydb -c 'select 1'", DatabaseExpert.String()},
		{"cargo build", CompilationWarrior.String()},
		{"npm install lodash", DependencyWrangler.String()},
		{"ls -la", FileExplorer.String()},
		{"kill -9 4242", TaskAssassin.String()},
		{"curl https://example.com", NetworkSentinel.String()},
		{"chmod +x run.sh", PermissionPolice.String()},
		{"tar czf out.tgz src", CompressionChef.String()},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			got := Select(Context{Tool: "Bash", Command: tt.command})
			if got != tt.want {
				t.Errorf("Select(%q) = %q, want %q", tt.command, got, tt.want)
			}
		})
	}
}

// The category list is checked in order, so a command matching several
// keyword sets gets the earliest category.
func TestSelectCommandCategoryOrder(t *testing.T) {
	got := Select(Context{Tool: "Bash", Command: "git stash-test"})
	if got != GitManager.String() {
		t.Errorf("Select(git stash-test) = %q, want git to win over test", got)
	}

	got = Select(Context{Tool: "Bash", Command: "docker compose up"})
	if got != DeploymentGuard.String() {
		t.Errorf("Select(docker compose up) = %q, want deploy before container", got)
	}
}

func TestSelectGrepIsBugHunter(t *testing.T) {
	got := Select(Context{Tool: "Grep"})
	if got != BugHunter.String() {
		t.Errorf("Select(Grep) = %q, want %q", got, BugHunter.String())
	}
}

func TestSelectFileCategories(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/src/auth/login.go", SecurityAnalyst.String()},
		{"/src/benchmark/sort.go", PerformanceTuner.String()},
		{"/src/parser_test.go", QualityAuditor.String()},
		{"/project/README.md", DocumentationWriter.String()},
		{"/web/Button.tsx", UIDeveloper.String()},
		{"/web/main.scss", StyleArtist.String()},
		{"/web/index.html", MarkupWizard.String()},
		{"/project/config.toml", ConfigHelper.String()},
		{"/web/app.ts", JSMaster.String()},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := Select(Context{Tool: "Edit", FilePath: tt.path})
			if got != tt.want {
				t.Errorf("Select(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestSelectStreaks(t *testing.T) {
	// A neutral file path so the streak stage is reached.
	got := Select(Context{Tool: "Edit", FilePath: "/src/main.go", ConsecutiveActions: 21})
	if got != CodeBerserker.String() {
		t.Errorf("Select(streak=21) = %q, want %q", got, CodeBerserker.String())
	}

	got = Select(Context{Tool: "Edit", FilePath: "/src/main.go", ConsecutiveActions: 11})
	if got != Hyperfocused.String() {
		t.Errorf("Select(streak=11) = %q, want %q", got, Hyperfocused.String())
	}
}

func TestSelectToolDefaults(t *testing.T) {
	tests := []struct {
		name string
		ctx  Context
		want string
	}{
		{"edit", Context{Tool: "Edit", FilePath: "/src/main.go"}, CodeWizardAlt.String()},
		{"write", Context{Tool: "Write", FilePath: "/src/main.go"}, GentleRefactorer.String()},
		{"delete", Context{Tool: "Delete"}, CodeJanitor.String()},
		{"review", Context{Tool: "Review"}, CasualCodeReviewer.String()},
		{"short read streak", Context{Tool: "Read", ConsecutiveActions: 3}, ResearchKing.String()},
		{"long read streak", Context{Tool: "Read", ConsecutiveActions: 6}, SearchMaestro.String()},
		{"unknown tool", Context{Tool: "Task"}, CodeWizard.String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Select(tt.ctx); got != tt.want {
				t.Errorf("Select(%+v) = %q, want %q", tt.ctx, got, tt.want)
			}
		})
	}
}

func TestSelectAlwaysReturnsALabel(t *testing.T) {
	if got := Select(Context{}); got == "" {
		t.Error("Select(zero context) returned empty label")
	}
}

func TestForModifier(t *testing.T) {
	tests := []struct {
		name        string
		mod         mood.Modifier
		frustration int
		want        string
	}{
		{"maxed out frustration", mood.Frustrated, 10, TableFlipper.String()},
		{"frustrated", mood.Frustrated, 7, ErrorWarrior.String()},
		{"in the zone", mood.InTheZone, 0, Hyperfocused.String()},
		{"normal", mood.Normal, 0, CodeWizard.String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ForModifier(tt.mod, tt.frustration); got != tt.want {
				t.Errorf("ForModifier(%v, %d) = %q, want %q", tt.mod, tt.frustration, got, tt.want)
			}
		})
	}
}
