// Package attribution holds the AI attribution data model: the closed set of
// recognized AI tools, commit trailer parsing, per-commit attribution records
// and the aggregate report.
package attribution

import "strings"

// Tool identifies an AI assistance tool recognized in commit trailers.
// The zero value is ToolNone.
type Tool int

// The closed set of recognized tools.
const (
	ToolNone Tool = iota
	ToolGitHubCopilot
	ToolDevin
	ToolClaude
	ToolChatGPT
	ToolCodeWhisperer
	ToolOther
)

// toolInfo carries the stable machine identifier and the human display name
// for one tool variant.
type toolInfo struct {
	id   string
	name string
}

var toolTable = map[Tool]toolInfo{
	ToolGitHubCopilot: {id: "github-copilot", name: "GitHub Copilot"},
	ToolDevin:         {id: "devin", name: "Devin AI"},
	ToolClaude:        {id: "claude", name: "Claude"},
	ToolChatGPT:       {id: "chatgpt", name: "ChatGPT"},
	ToolCodeWhisperer: {id: "codewhisperer", name: "AWS CodeWhisperer"},
	ToolOther:         {id: "other", name: "Other AI Tool"},
	ToolNone:          {id: "none", name: "No AI Assistance"},
}

// AllTools returns every tool variant in its canonical declaration order.
// Renderers iterate this slice so tool breakdowns are deterministic.
func AllTools() []Tool {
	return []Tool{
		ToolGitHubCopilot,
		ToolDevin,
		ToolClaude,
		ToolChatGPT,
		ToolCodeWhisperer,
		ToolOther,
		ToolNone,
	}
}

// ID returns the stable machine identifier of the tool.
func (t Tool) ID() string {
	return toolTable[t].id
}

// DisplayName returns the human-readable name of the tool.
func (t Tool) DisplayName() string {
	return toolTable[t].name
}

// String returns the machine identifier.
func (t Tool) String() string {
	return t.ID()
}

// MarshalText encodes the tool as its machine identifier.
func (t Tool) MarshalText() ([]byte, error) {
	return []byte(t.ID()), nil
}

// substring fallbacks checked in order after exact matching fails. The order
// is part of the classification contract: a value containing both "claude"
// and "gpt" resolves to Claude because it is checked first.
var toolFallbacks = []struct {
	substrings []string
	tool       Tool
}{
	{substrings: []string{"copilot"}, tool: ToolGitHubCopilot},
	{substrings: []string{"devin"}, tool: ToolDevin},
	{substrings: []string{"claude"}, tool: ToolClaude},
	{substrings: []string{"gpt", "openai"}, tool: ToolChatGPT},
	{substrings: []string{"whisperer", "amazon"}, tool: ToolCodeWhisperer},
}

// ParseTool maps a raw trailer value to a tool. Empty or all-whitespace
// values map to ToolNone. Matching is case-insensitive: first against each
// tool's identifier and display name, then the ordered substring fallbacks,
// and finally ToolOther for anything unrecognized.
func ParseTool(value string) Tool {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return ToolNone
	}

	for _, tool := range AllTools() {
		info := toolTable[tool]
		if normalized == info.id || normalized == strings.ToLower(info.name) {
			return tool
		}
	}

	for _, fallback := range toolFallbacks {
		for _, sub := range fallback.substrings {
			if strings.Contains(normalized, sub) {
				return fallback.tool
			}
		}
	}

	return ToolOther
}
