package personality

import (
	"strings"

	"github.com/moodware/persona/internal/mood"
)

// Context is everything the selector looks at for one event.
type Context struct {
	Tool               string
	FilePath           string
	Command            string
	ErrorCount         int
	ConsecutiveActions int
}

// rule is one stage of the selection chain. A stage returns the empty
// string to fall through to the next stage.
type rule struct {
	name  string
	apply func(Context) string
}

// chain is evaluated top to bottom; the first non-empty result wins.
// The order is load-bearing: predicates overlap ("git stash-test" matches
// both the git and test keyword sets), so neither the stages nor the
// category lists inside them may be reordered.
var chain = []rule{
	{"frustration", frustrationOverride},
	{"tool", toolOverride},
	{"file", fileOverride},
	{"streak", streakOverride},
	{"default", toolDefault},
}

// Select runs the rule chain and returns the label for this event.
// It always returns a non-empty label: the final stage is total.
func Select(ctx Context) string {
	for _, r := range chain {
		if label := r.apply(ctx); label != "" {
			return label
		}
	}
	return CodeWizard.String()
}

// ForModifier is the alternate lookup keyed on the decayed mood counters
// rather than the error_count gate. It serves consumers of the ambient
// mood signal and is deliberately not a stage of the chain.
func ForModifier(m mood.Modifier, frustrationLevel int) string {
	switch m {
	case mood.Frustrated:
		if frustrationLevel >= 10 {
			return TableFlipper.String()
		}
		return ErrorWarrior.String()
	case mood.InTheZone:
		return Hyperfocused.String()
	default:
		return CodeWizard.String()
	}
}

// frustrationOverride gates on the instantaneous error count, which prompt
// submission resets. Five or more errors flips the table; three or four is
// moderate frustration.
func frustrationOverride(ctx Context) string {
	switch {
	case ctx.ErrorCount >= 5:
		return TableFlipper.String()
	case ctx.ErrorCount >= 3:
		return ErrorWarrior.String()
	}
	return ""
}

// commandCategory pairs a predicate with its label. Checked in slice order.
type commandCategory struct {
	match func(string) bool
	label Label
}

var commandCategories = []commandCategory{
	{isGitCommand, GitManager},
	{isTestCommand, TestTaskmaster},
	{isDeployCommand, DeploymentGuard},
	{isDatabaseCommand, DatabaseExpert},
	{isBuildCommand, CompilationWarrior},
	{isPackageCommand, DependencyWrangler},
	{isFileCommand, FileExplorer},
	{isProcessCommand, TaskAssassin},
	{isNetworkCommand, NetworkSentinel},
	{isSystemCommand, SystemDetective},
	{isAdminCommand, SystemAdmin},
	{isPermissionCommand, PermissionPolice},
	{isTextCommand, StringSurgeon},
	{isEditorCommand, EditorUser},
	{isArchiveCommand, CompressionChef},
	{isEnvCommand, EnvironmentEnchanter},
	{isVCSCommand, CodeHistorian},
	{isContainerCommand, ContainerCaptain},
}

func toolOverride(ctx Context) string {
	switch ctx.Tool {
	case "Bash":
		if ctx.Command == "" {
			return ""
		}
		for _, c := range commandCategories {
			if c.match(ctx.Command) {
				return c.label.String()
			}
		}
	case "Grep":
		return BugHunter.String()
	}
	return ""
}

type fileCategory struct {
	match func(string) bool
	label Label
}

var fileCategories = []fileCategory{
	{isAuthFile, SecurityAnalyst},
	{isPerformanceFile, PerformanceTuner},
	{isQualityFile, QualityAuditor},
	{isDocsFile, DocumentationWriter},
	{isUIComponentFile, UIDeveloper},
	{isStyleFile, StyleArtist},
	{isTemplateFile, MarkupWizard},
	{isConfigFile, ConfigHelper},
	{isJSFile, JSMaster},
}

func fileOverride(ctx Context) string {
	if ctx.FilePath == "" {
		return ""
	}
	for _, c := range fileCategories {
		if c.match(ctx.FilePath) {
			return c.label.String()
		}
	}
	return ""
}

func streakOverride(ctx Context) string {
	switch {
	case ctx.ConsecutiveActions > 20:
		return CodeBerserker.String()
	case ctx.ConsecutiveActions > 10:
		return Hyperfocused.String()
	}
	return ""
}

func toolDefault(ctx Context) string {
	switch ctx.Tool {
	case "Edit", "MultiEdit":
		return CodeWizardAlt.String()
	case "Write":
		return GentleRefactorer.String()
	case "Delete":
		return CodeJanitor.String()
	case "Review":
		return CasualCodeReviewer.String()
	case "Read":
		// Long read streaks shift from research into search mode.
		if ctx.ConsecutiveActions > 5 {
			return SearchMaestro.String()
		}
		return ResearchKing.String()
	default:
		return CodeWizard.String()
	}
}

// Command classification. These are substring and first-word heuristics
// over the raw shell command; precision is not the goal, stable ordering is.

func isGitCommand(cmd string) bool {
	return strings.Contains(cmd, "git ")
}

func isTestCommand(cmd string) bool {
	return strings.Contains(cmd, "test") || strings.Contains(cmd, "spec")
}

func isDeployCommand(cmd string) bool {
	for _, kw := range []string{"deploy", "docker", "kubectl", "terraform", "ansible"} {
		if strings.Contains(cmd, kw) {
			return true
		}
	}
	return false
}

func isDatabaseCommand(cmd string) bool {
	for _, kw := range []string{"database", "sql", "mongo", "postgres", "mysql", "redis", "sqlite"} {
		if strings.Contains(cmd, kw) {
			return true
		}
	}
	return false
}

func isBuildCommand(cmd string) bool {
	return strings.Contains(cmd, "build") ||
		strings.Contains(cmd, "compile") ||
		strings.Contains(cmd, "make")
}

func isPackageCommand(cmd string) bool {
	for _, kw := range []string{"npm install", "yarn add", "pip install", "cargo add"} {
		if strings.Contains(cmd, kw) {
			return true
		}
	}
	return false
}

func isFileCommand(cmd string) bool {
	for _, p := range []string{"ls ", "cd ", "mkdir ", "rm ", "mv ", "cp ", "find ", "touch ", "tree "} {
		if strings.HasPrefix(cmd, p) {
			return true
		}
	}
	return false
}

func isProcessCommand(cmd string) bool {
	return strings.HasPrefix(cmd, "ps ") ||
		strings.HasPrefix(cmd, "kill ") ||
		strings.HasPrefix(cmd, "killall ") ||
		strings.Contains(cmd, "top")
}

func isNetworkCommand(cmd string) bool {
	return strings.Contains(cmd, "curl") ||
		strings.Contains(cmd, "wget") ||
		strings.Contains(cmd, "ping")
}

func isSystemCommand(cmd string) bool {
	return strings.HasPrefix(cmd, "df ") ||
		strings.Contains(cmd, "free") ||
		strings.Contains(cmd, "uname")
}

func isAdminCommand(cmd string) bool {
	return strings.HasPrefix(cmd, "sudo ") ||
		strings.Contains(cmd, "systemctl") ||
		strings.Contains(cmd, "service")
}

func isPermissionCommand(cmd string) bool {
	return strings.HasPrefix(cmd, "chmod ") || strings.HasPrefix(cmd, "chown ")
}

func isTextCommand(cmd string) bool {
	for _, p := range []string{"grep ", "sed ", "awk ", "sort "} {
		if strings.HasPrefix(cmd, p) {
			return true
		}
	}
	return false
}

func isEditorCommand(cmd string) bool {
	for _, p := range []string{"vim ", "nvim ", "nano ", "code "} {
		if strings.HasPrefix(cmd, p) {
			return true
		}
	}
	return false
}

func isArchiveCommand(cmd string) bool {
	for _, p := range []string{"tar ", "zip ", "unzip "} {
		if strings.HasPrefix(cmd, p) {
			return true
		}
	}
	return false
}

func isEnvCommand(cmd string) bool {
	return strings.HasPrefix(cmd, "export ") ||
		strings.HasPrefix(cmd, "source ") ||
		strings.HasPrefix(cmd, "echo ") ||
		strings.Contains(cmd, "env")
}

func isVCSCommand(cmd string) bool {
	return strings.Contains(cmd, "svn ") ||
		strings.Contains(cmd, "hg ") ||
		strings.Contains(cmd, "bzr ")
}

func isContainerCommand(cmd string) bool {
	return strings.Contains(cmd, "docker") && !strings.Contains(cmd, "docker-compose")
}

// File classification.

func isAuthFile(path string) bool {
	lower := strings.ToLower(path)
	for _, kw := range []string{"auth", "security", "login", "passport", "jwt"} {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func isPerformanceFile(path string) bool {
	lower := strings.ToLower(path)
	for _, kw := range []string{"performance", "benchmark", "profil", "metric"} {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func isQualityFile(path string) bool {
	lower := strings.ToLower(path)
	for _, kw := range []string{"test", "spec", "lint", "quality"} {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func isDocsFile(path string) bool {
	lower := strings.ToLower(path)
	return strings.Contains(lower, "readme") ||
		strings.Contains(lower, "docs/") ||
		strings.Contains(lower, "documentation") ||
		strings.HasSuffix(lower, ".md")
}

func isUIComponentFile(path string) bool {
	for _, ext := range []string{".jsx", ".tsx", ".vue", ".svelte"} {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

func isStyleFile(path string) bool {
	for _, ext := range []string{".css", ".scss", ".sass", ".less"} {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

func isTemplateFile(path string) bool {
	for _, ext := range []string{".html", ".ejs", ".pug", ".hbs"} {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

func isConfigFile(path string) bool {
	lower := strings.ToLower(path)
	if strings.Contains(lower, "config") {
		return true
	}
	for _, ext := range []string{".json", ".yaml", ".yml", ".toml"} {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

func isJSFile(path string) bool {
	for _, ext := range []string{".js", ".ts", ".mjs"} {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
