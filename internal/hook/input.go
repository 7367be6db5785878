// Package hook decodes the JSON payloads the host delivers on stdin.
package hook

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// previewLen caps how much of a malformed payload is echoed in errors.
const previewLen = 100

// FallbackSessionID is substituted when a tool-hook payload carries no
// session_id and CLAUDE_SESSION_ID is unset. A fixed key keeps the engine
// functioning, at the cost of all such events sharing one record.
const FallbackSessionID = "claude_current"

// Input is a hook event payload. Tool hooks populate all fields; the
// prompt-submit and session-end events carry only the session id.
type Input struct {
	SessionID    string          `json:"session_id"`
	ToolName     string          `json:"tool_name"`
	ToolInput    json.RawMessage `json:"tool_input"`
	ToolResponse *ToolResponse   `json:"tool_response"`
}

// ToolResponse carries the tool's outcome; a non-null error means the tool
// call failed.
type ToolResponse struct {
	Error json.RawMessage `json:"error"`
}

// HadError reports whether the payload signals a failed tool call.
func (in *Input) HadError() bool {
	return in.ToolResponse != nil &&
		len(in.ToolResponse.Error) > 0 &&
		string(in.ToolResponse.Error) != "null"
}

// Params are the tool parameters the classifier looks at. Absent fields
// are empty strings.
type Params struct {
	FilePath string
	Command  string
	Pattern  string
}

// ExtractParams pulls file_path, command, and pattern out of the raw
// tool_input object. Anything malformed or missing yields empty fields
// rather than an error: classification must stay total.
func ExtractParams(raw json.RawMessage) Params {
	var p Params
	if len(raw) == 0 {
		return p
	}
	var fields struct {
		FilePath string `json:"file_path"`
		Command  string `json:"command"`
		Pattern  string `json:"pattern"`
	}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return p
	}
	p.FilePath = fields.FilePath
	p.Command = fields.Command
	p.Pattern = fields.Pattern
	return p
}

// StatuslineInput is the statusline request payload.
type StatuslineInput struct {
	SessionID string     `json:"session_id"`
	Model     *Model     `json:"model"`
	Workspace *Workspace `json:"workspace"`
}

// Model identifies the active model.
type Model struct {
	DisplayName string `json:"display_name"`
}

// Workspace describes where the session is running.
type Workspace struct {
	CurrentDir string `json:"current_dir"`
	ProjectDir string `json:"project_dir"`
}

// ModelName returns the model display name, or a generic default.
func (in *StatuslineInput) ModelName() string {
	if in.Model != nil && in.Model.DisplayName != "" {
		return in.Model.DisplayName
	}
	return "Claude"
}

// ReadInput decodes one hook event from r. Empty input and malformed JSON
// are fatal: the host always sends a payload, so silence means
// misconfiguration.
func ReadInput(r io.Reader) (*Input, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}
	var in Input
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("parsing hook input (received %q): %w", preview(data), err)
	}
	return &in, nil
}

// ReadStatuslineInput decodes one statusline request from r.
func ReadStatuslineInput(r io.Reader) (*StatuslineInput, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}
	var in StatuslineInput
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("parsing statusline input (received %q): %w", preview(data), err)
	}
	return &in, nil
}

// SessionIDOrFallback resolves the session key for tool hooks: the payload
// value, then CLAUDE_SESSION_ID, then the fixed fallback.
func SessionIDOrFallback(id string) string {
	if id != "" {
		return id
	}
	if env := os.Getenv("CLAUDE_SESSION_ID"); env != "" {
		return env
	}
	return FallbackSessionID
}

func readAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading hook input from stdin: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("no input on stdin: hooks receive a JSON payload from the host")
	}
	return data, nil
}

func preview(data []byte) string {
	if len(data) > previewLen {
		return string(data[:previewLen]) + "..."
	}
	return string(data)
}
