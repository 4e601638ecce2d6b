package mcp

// Resource describes one addressable resource in a listing.
type Resource struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MimeType    string `json:"mimeType"`
}

// ResourceContents is the payload of a resource read.
type ResourceContents struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType"`
	Text     string `json:"text"`
}

// Tool describes one callable tool, with a JSON Schema for its arguments.
type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

// PromptArgument describes one parameter a prompt accepts.
type PromptArgument struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

// Prompt describes one prompt in a listing.
type Prompt struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Arguments   []PromptArgument `json:"arguments"`
}

// TextContent is a single text block in a tool or prompt response.
type TextContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// NewText wraps a string in a text content block.
func NewText(text string) TextContent {
	return TextContent{Type: "text", Text: text}
}

// PromptMessage is one turn of a rendered prompt.
type PromptMessage struct {
	Role    string      `json:"role"`
	Content TextContent `json:"content"`
}

// Result payloads for each protocol operation.
type (
	ListResourcesResult struct {
		Resources []Resource `json:"resources"`
	}

	ReadResourceResult struct {
		Contents []ResourceContents `json:"contents"`
	}

	ListToolsResult struct {
		Tools []Tool `json:"tools"`
	}

	CallToolResult struct {
		Content []TextContent `json:"content"`
	}

	ListPromptsResult struct {
		Prompts []Prompt `json:"prompts"`
	}

	GetPromptResult struct {
		Description string          `json:"description,omitempty"`
		Messages    []PromptMessage `json:"messages"`
	}
)

// ServerInfo identifies the server in the initialize handshake.
type ServerInfo struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
}

// Capabilities advertises which protocol features the server implements.
type Capabilities struct {
	Resources *ResourcesCapability `json:"resources,omitempty"`
	Tools     *ToolsCapability     `json:"tools,omitempty"`
	Prompts   *PromptsCapability   `json:"prompts,omitempty"`
	Logging   map[string]any       `json:"logging,omitempty"`
}

// ResourcesCapability flags resource support.
type ResourcesCapability struct {
	Subscribe   bool `json:"subscribe"`
	ListChanged bool `json:"listChanged"`
}

// ToolsCapability flags tool support.
type ToolsCapability struct {
	ListChanged bool `json:"listChanged"`
}

// PromptsCapability flags prompt support.
type PromptsCapability struct {
	ListChanged bool `json:"listChanged"`
}

// InitializeResult is the handshake response.
type InitializeResult struct {
	ProtocolVersion string       `json:"protocolVersion"`
	Capabilities    Capabilities `json:"capabilities"`
	ServerInfo      ServerInfo   `json:"serverInfo"`
}
