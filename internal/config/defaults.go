// Package config provides configuration loading and defaults for persona.
package config

// DefaultConfigDir is the default location for persona configuration.
const DefaultConfigDir = "~/.config/persona"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultJournalName is the filename for the SQLite event journal.
const DefaultJournalName = "persona.db"

// DefaultDisplay holds the default statusline toggles. Everything the
// engine tracks is shown unless the user turns it off.
var DefaultDisplay = Display{
	ShowPersonality:     true,
	ShowActivity:        true,
	ShowCurrentJob:      true,
	ShowErrorIndicators: true,
	ShowModel:           true,
	Color:               true,
}

// DefaultJournal holds the default journal settings. The journal is off
// until the user opts in: hook latency matters more than history.
var DefaultJournal = Journal{
	Enabled: false,
}
