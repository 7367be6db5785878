// Package personality selects the decorative label shown on the statusline.
//
// Labels are kaomoji faces paired with a short description. The tables here
// are decorative constants; the selection logic lives in rules.go.
package personality

// Label is a kaomoji face plus a short description.
type Label struct {
	Face        string
	Description string
}

// String returns the full displayed form, face then description.
func (l Label) String() string {
	return l.Face + " " + l.Description
}

// BootingUp is the bootstrap personality for a fresh session.
var BootingUp = Label{"( ˘ ³˘)", "Booting Up"}

// Mood and streak labels.
var (
	TableFlipper = Label{"(╯°□°)╯︵ ┻━┻", "Table Flipper"}
	ErrorWarrior = Label{"(ノಠ益ಠ)ノ", "Error Warrior"}
	Hyperfocused = Label{"┌༼◉ل͟◉༽┐", "Hyperfocused Coder"}
	CodeBerserker = Label{"【╯°□°】╯︵ ┻━┻", "Code Berserker"}
)

// Shell command category labels, in the order the categories are checked.
var (
	GitManager           = Label{"┗(▀̿Ĺ̯▀̿ ̿)┓", "Git Manager"}
	TestTaskmaster       = Label{"( ദ്ദി ˙ᗜ˙ )", "Test Taskmaster"}
	DeploymentGuard      = Label{"( ͡ _ ͡°)ﾉ⚲", "Deployment Guard"}
	DatabaseExpert       = Label{"⚆_⚆", "Database Expert"}
	CompilationWarrior   = Label{"ᕦ(ò_óˇ)ᕤ", "Compilation Warrior"}
	DependencyWrangler   = Label{"^⎚-⎚^", "Dependency Wrangler"}
	FileExplorer         = Label{"ᓚ₍ ^. .^₎", "File Explorer"}
	TaskAssassin         = Label{"(╬ ಠ益ಠ)", "Task Assassin"}
	NetworkSentinel      = Label{"(╭ರ_ಠ)", "Network Sentinel"}
	SystemDetective      = Label{"(◉_◉)", "System Detective"}
	SystemAdmin          = Label{"( ͡ಠ ʖ̯ ͡ಠ)", "System Admin"}
	PermissionPolice     = Label{"(╯‵□′)╯", "Permission Police"}
	StringSurgeon        = Label{"(˘▾˘~)", "String Surgeon"}
	EditorUser           = Label{"( . .)φ", "Editor User"}
	CompressionChef      = Label{"(っ˘ڡ˘ς)", "Compression Chef"}
	EnvironmentEnchanter = Label{"(∗´ര ᎑ ര`∗)", "Environment Enchanter"}
	CodeHistorian        = Label{"(╯︵╰,)", "Code Historian"}
	ContainerCaptain     = Label{"(づ｡◕‿‿◕｡)づ", "Container Captain"}
)

// BugHunter is the fixed label for the search tool.
var BugHunter = Label{"(つ◉益◉)つ", "Bug Hunter"}

// File category labels.
var (
	SecurityAnalyst     = Label{"ಠ_ಠ", "Security Analyst"}
	PerformanceTuner    = Label{"★⌒ヽ( ͡° ε ͡°)", "Performance Tuner"}
	QualityAuditor      = Label{"৻( •̀ ᗜ •́ ৻)", "Quality Auditor"}
	DocumentationWriter = Label{"φ(．．)", "Documentation Writer"}
	UIDeveloper         = Label{"(✿◠ᴗ◠)", "UI Developer"}
	StyleArtist         = Label{"♥‿♥", "Style Artist"}
	MarkupWizard        = Label{"<(￣︶￣)>", "Markup Wizard"}
	ConfigHelper        = Label{"(๑>؂•̀๑)", "Config Helper"}
	JSMaster            = Label{"(▀̿Ĺ̯▀̿ ̿)", "JS Master"}
)

// Per-tool default labels.
var (
	CodeWizard         = Label{"ʕ•ᴥ•ʔ", "Code Wizard"}
	CodeWizardAlt      = Label{"(⌐■_■)", "Code Wizard"}
	GentleRefactorer   = Label{"(• ε •)", "Gentle Refactorer"}
	CodeJanitor        = Label{"(ง'̀-'́)ง", "Code Janitor"}
	CasualCodeReviewer = Label{"¯\\_(ツ)_/¯", "Casual Code Reviewer"}
	SearchMaestro      = Label{"⋋| ◉ ͟ʖ ◉ |⋌", "Search Maestro"}
	ResearchKing       = Label{"╭༼ ººل͟ºº ༽╮", "Research King"}
)
