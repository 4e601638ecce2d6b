package mcp

import "fmt"

// Prompts holds the academic-writing prompt catalog. Rendering fills the
// caller's arguments into fixed instruction templates; missing optional
// arguments become empty placeholders.
type Prompts struct{}

// NewPrompts creates the prompt catalog.
func NewPrompts() *Prompts {
	return &Prompts{}
}

// List returns every prompt with its argument metadata.
func (p *Prompts) List() []Prompt {
	return []Prompt{
		{
			Name:        "write_abstract",
			Description: "Generate an abstract for an academic paper",
			Arguments: []PromptArgument{
				{Name: "title", Description: "Paper title", Required: true},
				{Name: "research_area", Description: "Research area or field", Required: true},
				{Name: "key_findings", Description: "Key findings or contributions", Required: false},
				{Name: "methodology", Description: "Research methodology used", Required: false},
			},
		},
		{
			Name:        "write_introduction",
			Description: "Generate an introduction section for an academic paper",
			Arguments: []PromptArgument{
				{Name: "topic", Description: "Main topic or subject", Required: true},
				{Name: "research_question", Description: "Research question or problem statement", Required: true},
				{Name: "background", Description: "Background information", Required: false},
				{Name: "objectives", Description: "Research objectives", Required: false},
			},
		},
		{
			Name:        "write_methodology",
			Description: "Generate a methodology section",
			Arguments: []PromptArgument{
				{Name: "research_type", Description: "Type of research (experimental, theoretical, etc.)", Required: true},
				{Name: "data_collection", Description: "Data collection methods", Required: false},
				{Name: "analysis_methods", Description: "Analysis methods and tools", Required: false},
				{Name: "participants", Description: "Participants or subjects", Required: false},
			},
		},
		{
			Name:        "write_results",
			Description: "Generate a results section",
			Arguments: []PromptArgument{
				{Name: "findings", Description: "Main findings or results", Required: true},
				{Name: "data_analysis", Description: "Data analysis results", Required: false},
				{Name: "statistical_significance", Description: "Statistical significance information", Required: false},
				{Name: "figures_tables", Description: "Description of figures and tables", Required: false},
			},
		},
		{
			Name:        "write_discussion",
			Description: "Generate a discussion section",
			Arguments: []PromptArgument{
				{Name: "results_summary", Description: "Summary of key results", Required: true},
				{Name: "implications", Description: "Implications of the findings", Required: false},
				{Name: "limitations", Description: "Study limitations", Required: false},
				{Name: "future_work", Description: "Suggestions for future work", Required: false},
			},
		},
		{
			Name:        "write_conclusion",
			Description: "Generate a conclusion section",
			Arguments: []PromptArgument{
				{Name: "main_contributions", Description: "Main contributions of the work", Required: true},
				{Name: "research_question", Description: "How the research question was answered", Required: false},
				{Name: "broader_impact", Description: "Broader impact of the work", Required: false},
			},
		},
		{
			Name:        "improve_writing",
			Description: "Improve existing academic writing",
			Arguments: []PromptArgument{
				{Name: "text", Description: "Text to improve", Required: true},
				{Name: "improvement_focus", Description: "Focus area (clarity, flow, academic style, etc.)", Required: false},
				{Name: "target_audience", Description: "Target audience", Required: false},
			},
		},
		{
			Name:        "create_outline",
			Description: "Create an outline for an academic paper",
			Arguments: []PromptArgument{
				{Name: "topic", Description: "Paper topic", Required: true},
				{Name: "paper_type", Description: "Type of paper (research, review, thesis, etc.)", Required: true},
				{Name: "length", Description: "Expected length or page count", Required: false},
				{Name: "requirements", Description: "Specific requirements or guidelines", Required: false},
			},
		},
		{
			Name:        "format_citations",
			Description: "Help format citations and bibliography",
			Arguments: []PromptArgument{
				{Name: "citation_style", Description: "Citation style (APA, MLA, IEEE, etc.)", Required: true},
				{Name: "sources", Description: "List of sources to cite", Required: true},
				{Name: "context", Description: "Context where citations will be used", Required: false},
			},
		},
		{
			Name:        "latex_help",
			Description: "Get help with LaTeX formatting and commands",
			Arguments: []PromptArgument{
				{Name: "task", Description: "LaTeX task or problem", Required: true},
				{Name: "document_class", Description: "Document class being used", Required: false},
				{Name: "packages", Description: "Packages already loaded", Required: false},
			},
		},
		{
			Name:        "research_proposal",
			Description: "Generate a research proposal",
			Arguments: []PromptArgument{
				{Name: "research_area", Description: "Research area or field", Required: true},
				{Name: "problem_statement", Description: "Problem statement or research gap", Required: true},
				{Name: "objectives", Description: "Research objectives", Required: false},
				{Name: "methodology", Description: "Proposed methodology", Required: false},
				{Name: "timeline", Description: "Project timeline", Required: false},
			},
		},
	}
}

// Get renders one prompt. It never fails: an unknown name comes back as an
// error message payload.
func (p *Prompts) Get(name string, args map[string]string) *GetPromptResult {
	var description, text string

	switch name {
	case "write_abstract":
		description = "Generate an abstract for an academic paper"
		text = fmt.Sprintf(`Please write a comprehensive abstract for an academic paper with the following details:

Title: %s
Research Area: %s
Key Findings: %s
Methodology: %s

The abstract should:
1. Clearly state the research problem and objectives
2. Briefly describe the methodology
3. Summarize the key findings
4. Highlight the significance and implications
5. Be approximately 150-250 words
6. Be written in LaTeX format with \begin{abstract} and \end{abstract} tags

Please ensure the abstract is concise, informative, and follows academic writing standards.`,
			args["title"], args["research_area"], args["key_findings"], args["methodology"])

	case "write_introduction":
		description = "Generate an introduction section for an academic paper"
		text = fmt.Sprintf(`Please write an introduction section for an academic paper with the following details:

Topic: %s
Research Question: %s
Background: %s
Objectives: %s

The introduction should:
1. Provide context and background for the research
2. Clearly state the research problem or gap
3. Present the research question and objectives
4. Outline the paper structure
5. Be well-structured with logical flow
6. Include relevant citations (use placeholder citations like \cite{author2023})
7. Be written in LaTeX format with \section{Introduction}

Please ensure the introduction motivates the research and engages the reader.`,
			args["topic"], args["research_question"], args["background"], args["objectives"])

	case "write_methodology":
		description = "Generate a methodology section"
		text = fmt.Sprintf(`Please write a methodology section for an academic paper with the following details:

Research Type: %s
Data Collection: %s
Analysis Methods: %s
Participants: %s

The methodology section should:
1. Describe the research design and approach
2. Detail data collection procedures
3. Explain analysis methods and tools
4. Describe participants or subjects (if applicable)
5. Address validity and reliability
6. Be written in LaTeX format with \section{Methodology}
7. Include subsections as appropriate

Please ensure the methodology is detailed enough for replication.`,
			args["research_type"], args["data_collection"], args["analysis_methods"], args["participants"])

	case "write_results":
		description = "Generate a results section"
		text = fmt.Sprintf(`Please write a results section for an academic paper with the following details:

Main Findings: %s
Data Analysis: %s
Statistical Significance: %s
Figures/Tables: %s

The results section should:
1. Present findings objectively without interpretation
2. Include statistical analysis results
3. Reference figures and tables appropriately
4. Be organized logically
5. Use appropriate statistical reporting
6. Be written in LaTeX format with \section{Results}
7. Include subsections if needed

Please ensure results are presented clearly and objectively.`,
			args["findings"], args["data_analysis"], args["statistical_significance"], args["figures_tables"])

	case "write_discussion":
		description = "Generate a discussion section"
		text = fmt.Sprintf(`Please write a discussion section for an academic paper with the following details:

Results Summary: %s
Implications: %s
Limitations: %s
Future Work: %s

The discussion section should:
1. Interpret and explain the results
2. Compare findings with existing literature
3. Discuss implications and significance
4. Address limitations honestly
5. Suggest future research directions
6. Be written in LaTeX format with \section{Discussion}
7. Include appropriate citations

Please ensure the discussion provides meaningful interpretation of results.`,
			args["results_summary"], args["implications"], args["limitations"], args["future_work"])

	case "write_conclusion":
		description = "Generate a conclusion section"
		text = fmt.Sprintf(`Please write a conclusion section for an academic paper with the following details:

Main Contributions: %s
Research Question Answered: %s
Broader Impact: %s

The conclusion should:
1. Summarize the main contributions
2. Restate how the research question was answered
3. Highlight the broader impact and significance
4. Avoid introducing new information
5. End with a strong closing statement
6. Be written in LaTeX format with \section{Conclusion}
7. Be concise but comprehensive

Please ensure the conclusion effectively wraps up the paper.`,
			args["main_contributions"], args["research_question"], args["broader_impact"])

	case "improve_writing":
		description = "Improve existing academic writing"
		focus := argOr(args, "improvement_focus", "general improvement")
		audience := argOr(args, "target_audience", "academic")
		text = fmt.Sprintf(`Please improve the following academic text with focus on %[1]s for a %[2]s audience:

Original Text:
%[3]s

Please:
1. Improve clarity and readability
2. Enhance academic style and tone
3. Fix any grammatical issues
4. Improve sentence structure and flow
5. Maintain the original meaning
6. Keep the LaTeX formatting intact
7. Focus specifically on: %[1]s

Provide the improved version along with a brief explanation of the changes made.`,
			focus, audience, args["text"])

	case "create_outline":
		description = "Create an outline for an academic paper"
		text = fmt.Sprintf(`Please create a detailed outline for a %s on the topic: %s

Additional Details:
Length: %s
Requirements: %s

The outline should:
1. Include all major sections and subsections
2. Provide brief descriptions for each section
3. Suggest appropriate content for each part
4. Follow academic paper structure
5. Be suitable for the specified paper type
6. Consider the target length
7. Include LaTeX section commands

Please provide a comprehensive outline that can guide the writing process.`,
			args["paper_type"], args["topic"], args["length"], args["requirements"])

	case "format_citations":
		description = "Help format citations and bibliography"
		style := args["citation_style"]
		text = fmt.Sprintf(`Please help format citations in %[1]s style for the following sources:

Sources:
%[2]s

Context: %[3]s

Please provide:
1. Properly formatted in-text citations
2. Complete bibliography entries
3. LaTeX commands for the citations
4. Explanation of the citation format
5. Examples of how to use them in text

Ensure all citations follow %[1]s guidelines exactly.`,
			style, args["sources"], args["context"])

	case "latex_help":
		description = "Get help with LaTeX formatting and commands"
		text = fmt.Sprintf(`Please help with the following LaTeX task: %s

Document Class: %s
Loaded Packages: %s

Please provide:
1. Complete LaTeX code solution
2. Explanation of the commands used
3. Any additional packages needed
4. Best practices and tips
5. Alternative approaches if applicable

Ensure the solution is compatible with the specified document class and packages.`,
			args["task"], args["document_class"], args["packages"])

	case "research_proposal":
		description = "Generate a research proposal"
		text = fmt.Sprintf(`Please write a research proposal with the following details:

Research Area: %s
Problem Statement: %s
Objectives: %s
Methodology: %s
Timeline: %s

The proposal should include:
1. Title and abstract
2. Problem statement and significance
3. Literature review outline
4. Research objectives and questions
5. Methodology and approach
6. Timeline and milestones
7. Expected outcomes
8. References section
9. LaTeX formatting throughout

Please ensure the proposal is compelling and well-structured.`,
			args["research_area"], args["problem_statement"], args["objectives"], args["methodology"], args["timeline"])

	default:
		return &GetPromptResult{
			Messages: []PromptMessage{{
				Role:    "user",
				Content: NewText(fmt.Sprintf("Error: Unknown prompt: %s", name)),
			}},
		}
	}

	return &GetPromptResult{
		Description: description,
		Messages: []PromptMessage{{
			Role:    "user",
			Content: NewText(text),
		}},
	}
}

func argOr(args map[string]string, key, fallback string) string {
	if v, ok := args[key]; ok && v != "" {
		return v
	}
	return fallback
}
