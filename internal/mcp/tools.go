package mcp

// ToolCatalog returns every callable tool with its argument schema.
func ToolCatalog() []Tool {
	return []Tool{
		{
			Name:        "create_project",
			Description: "Create a new LaTeX project",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title": map[string]any{
						"type":        "string",
						"description": "Project title",
					},
					"document_type": map[string]any{
						"type":        "string",
						"enum":        []string{"article", "report", "book", "thesis"},
						"description": "Type of document to create",
					},
					"template_id": map[string]any{
						"type":        "string",
						"description": "Optional template ID to use",
					},
				},
				"required": []string{"title", "document_type"},
			},
		},
		{
			Name:        "list_projects",
			Description: "List all projects",
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
				"required":   []string{},
			},
		},
		{
			Name:        "get_project",
			Description: "Get project details",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"project_id": map[string]any{
						"type":        "string",
						"description": "Project ID",
					},
				},
				"required": []string{"project_id"},
			},
		},
		{
			Name:        "create_document",
			Description: "Create a new document in a project",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"project_id": map[string]any{
						"type":        "string",
						"description": "Project ID",
					},
					"filename": map[string]any{
						"type":        "string",
						"description": "Document filename (e.g., 'chapter1.tex')",
					},
					"content": map[string]any{
						"type":        "string",
						"description": "Initial document content",
					},
				},
				"required": []string{"project_id", "filename"},
			},
		},
		{
			Name:        "update_document",
			Description: "Update document content",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"project_id": map[string]any{
						"type":        "string",
						"description": "Project ID",
					},
					"filename": map[string]any{
						"type":        "string",
						"description": "Document filename",
					},
					"content": map[string]any{
						"type":        "string",
						"description": "New document content",
					},
					"commit_message": map[string]any{
						"type":        "string",
						"description": "Optional commit message for version control",
					},
				},
				"required": []string{"project_id", "filename", "content"},
			},
		},
		{
			Name:        "get_document",
			Description: "Get document content",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"project_id": map[string]any{
						"type":        "string",
						"description": "Project ID",
					},
					"filename": map[string]any{
						"type":        "string",
						"description": "Document filename",
					},
				},
				"required": []string{"project_id", "filename"},
			},
		},
		{
			Name:        "list_documents",
			Description: "List all documents in a project",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"project_id": map[string]any{
						"type":        "string",
						"description": "Project ID",
					},
				},
				"required": []string{"project_id"},
			},
		},
		{
			Name:        "generate_section",
			Description: "Generate LaTeX content for a specific section",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"section_type": map[string]any{
						"type":        "string",
						"enum":        []string{"abstract", "introduction", "methodology", "results", "discussion", "conclusion", "bibliography"},
						"description": "Type of section to generate",
					},
					"topic": map[string]any{
						"type":        "string",
						"description": "Topic or subject matter",
					},
					"context": map[string]any{
						"type":        "string",
						"description": "Additional context or requirements",
					},
					"length": map[string]any{
						"type":        "string",
						"enum":        []string{"short", "medium", "long"},
						"description": "Desired length of the section",
					},
				},
				"required": []string{"section_type", "topic"},
			},
		},
		{
			Name:        "improve_content",
			Description: "Improve existing LaTeX content",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"content": map[string]any{
						"type":        "string",
						"description": "Existing LaTeX content to improve",
					},
					"improvement_type": map[string]any{
						"type":        "string",
						"enum":        []string{"clarity", "academic_style", "grammar", "structure", "citations"},
						"description": "Type of improvement to apply",
					},
					"instructions": map[string]any{
						"type":        "string",
						"description": "Specific instructions for improvement",
					},
				},
				"required": []string{"content", "improvement_type"},
			},
		},
		{
			Name:        "list_templates",
			Description: "List available LaTeX templates",
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
				"required":   []string{},
			},
		},
		{
			Name:        "get_template",
			Description: "Get template content",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"template_id": map[string]any{
						"type":        "string",
						"description": "Template ID",
					},
				},
				"required": []string{"template_id"},
			},
		},
		{
			Name:        "sync_to_overleaf",
			Description: "Synchronize project to Overleaf",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"project_id": map[string]any{
						"type":        "string",
						"description": "Local project ID to sync",
					},
				},
				"required": []string{"project_id"},
			},
		},
		{
			Name:        "compile_project",
			Description: "Compile LaTeX project to PDF",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"project_id": map[string]any{
						"type":        "string",
						"description": "Project ID to compile",
					},
				},
				"required": []string{"project_id"},
			},
		},
	}
}
