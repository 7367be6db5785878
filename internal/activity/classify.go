package activity

import (
	"path/filepath"
	"strings"
)

// jobMaxLen caps the length of the job label shown next to the activity.
const jobMaxLen = 20

// Classify maps a tool event to an activity plus a short job label.
// It is total: every combination of inputs yields exactly one activity.
// Unused inputs for a given tool are ignored (e.g. pattern for Edit).
func Classify(toolName, filePath, command, pattern string) (Activity, string) {
	switch toolName {
	case "Edit", "MultiEdit":
		job := ""
		if filePath != "" {
			job = TrimFilename(filePath, jobMaxLen)
		}
		// MultiEdit means mass changes across a file; treat as refactoring
		// regardless of file type.
		if toolName == "MultiEdit" {
			return Refactoring, job
		}
		if a, ok := classifyFile(filePath); ok {
			return a, job
		}
		return Editing, job

	case "Write":
		job := ""
		if filePath != "" {
			job = TrimFilename(filePath, jobMaxLen)
		}
		if a, ok := classifyFile(filePath); ok {
			return a, job
		}
		return Writing, job

	case "Bash":
		if command == "" {
			return Executing, ""
		}
		job := firstToken(command)
		// Ordered: keyword sets overlap ("npm install" also contains a
		// build-ish word in some ecosystems), so first match wins.
		switch {
		case isInstallCommand(command):
			return Installing, job
		case isBuildCommand(command):
			return Building, job
		case isTestCommand(command):
			return Testing, job
		case isDeployCommand(command):
			return Deploying, job
		case isNavigationCommand(command):
			return Navigating, job
		default:
			return Executing, job
		}

	case "Read":
		job := ""
		if filePath != "" {
			job = TrimFilename(filePath, jobMaxLen)
		}
		return Reading, job

	case "Grep":
		job := pattern
		if len(job) > jobMaxLen {
			job = job[:jobMaxLen-3] + "..."
		}
		return Searching, job

	default:
		return Idle, ""
	}
}

// classifyFile routes Edit/Write events by file type. The order matters:
// README.md is documentation, not a code file, even though .md appears in
// other lists.
func classifyFile(path string) (Activity, bool) {
	if path == "" {
		return Idle, false
	}
	switch {
	case isDocumentationFile(path):
		return Documenting, true
	case isConfigFile(path):
		return Configuring, true
	case isCodeFile(path):
		return Coding, true
	}
	return Idle, false
}

// TrimFilename strips any directory prefix and shortens the bare name to at
// most maxLen characters, preserving the extension and marking the cut with
// "...". When maxLen cannot fit the extension plus the ellipsis it falls
// back to a hard truncation. Safe on empty and dot-only names.
func TrimFilename(name string, maxLen int) string {
	base := filepath.Base(name)
	if base == "." || base == string(filepath.Separator) {
		base = name
	}
	if len(base) <= maxLen {
		return base
	}

	if dot := strings.LastIndex(base, "."); dot > 0 {
		ext := base[dot:]
		stem := base[:dot]
		keep := maxLen - len(ext) - 3
		if keep > 0 {
			if keep > len(stem) {
				keep = len(stem)
			}
			return stem[:keep] + "..." + ext
		}
	}
	if maxLen < 0 {
		return ""
	}
	if maxLen > len(base) {
		maxLen = len(base)
	}
	return base[:maxLen]
}

func firstToken(command string) string {
	if f := strings.Fields(command); len(f) > 0 {
		return f[0]
	}
	return "bash"
}

func isInstallCommand(cmd string) bool {
	return strings.Contains(cmd, " install") || strings.Contains(cmd, " add")
}

func isBuildCommand(cmd string) bool {
	return strings.Contains(cmd, " build") ||
		strings.Contains(cmd, " compile") ||
		strings.Contains(cmd, "make ")
}

func isTestCommand(cmd string) bool {
	return strings.Contains(cmd, "test") || strings.Contains(cmd, "spec")
}

func isDeployCommand(cmd string) bool {
	lower := strings.ToLower(cmd)
	for _, kw := range []string{
		"deploy", "docker", "kubectl", "k8s", "helm", "terraform",
		"ansible", "serverless", "sls ", "vercel", "netlify", "heroku",
		"aws ", "gcloud", "azure",
	} {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func isNavigationCommand(cmd string) bool {
	switch firstToken(cmd) {
	case "ls", "cd", "pwd", "find", "tree", "mkdir", "rmdir", "mv", "cp", "rm":
		return true
	}
	return false
}

// hasExtension reports whether the path has one of the given extensions,
// case-insensitively and without the leading dot.
func hasExtension(path string, exts []string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return false
	}
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

func isDocumentationFile(path string) bool {
	lower := strings.ToLower(path)
	for _, kw := range []string{
		"readme", "docs/", "documentation", "guide", "tutorial",
		"changelog", "license", "contributing", "api-",
	} {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return hasExtension(path, []string{"md", "rst", "txt", "adoc", "asciidoc"})
}

func isConfigFile(path string) bool {
	lower := strings.ToLower(path)
	for _, kw := range []string{
		"config", "settings", ".env", "dockerfile", "makefile",
		"package.json", "tsconfig", "webpack", "babel", "eslint",
		"prettier", "tailwind", "cargo.toml", "pyproject.toml",
		"requirements.txt", "pipfile", "poetry.lock", "yarn.lock",
		"package-lock.json", "pnpm-lock.yaml", "go.mod", "go.sum",
		"composer.json", "gemfile", "podfile", "build.gradle",
		"pom.xml", "cmake",
	} {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return hasExtension(path, []string{
		"json", "yaml", "yml", "toml", "ini", "conf", "cfg",
		"properties", "plist", "xml",
	})
}

func isCodeFile(path string) bool {
	return hasExtension(path, []string{
		// Web
		"js", "ts", "jsx", "tsx", "vue", "svelte", "astro",
		// Systems
		"rs", "c", "cpp", "cc", "cxx", "h", "hpp", "go", "zig",
		// JVM
		"java", "kt", "kts", "scala", "clj", "groovy", "gradle",
		// Functional
		"hs", "ml", "mli", "elm", "fs",
		// Dynamic
		"py", "rb", "php", "pl", "pm", "lua", "r", "jl",
		// Mobile and cross-platform
		"swift", "dart", "cs", "m", "mm",
		// Shells
		"sh", "bash", "zsh", "fish", "ps1",
		// Others
		"ex", "exs", "erl", "nim", "cr", "d", "sql", "graphql",
	})
}
