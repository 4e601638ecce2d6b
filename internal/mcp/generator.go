package mcp

import (
	"fmt"
	"strings"
)

// Generator produces LaTeX section drafts and content revisions. The tool
// dispatcher only depends on this interface, so a backend that calls an
// external model can replace TemplateGenerator without touching dispatch.
type Generator interface {
	Section(sectionType, topic, context, length string) string
	Improve(content, improvementType, instructions string) string
}

// TemplateGenerator fills fixed LaTeX skeletons. Output is deterministic for
// a given argument set.
type TemplateGenerator struct{}

// NewTemplateGenerator creates the template-based generator.
func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{}
}

// Section renders a section skeleton for the given type. Unrecognized types
// fall back to a comment header.
func (g *TemplateGenerator) Section(sectionType, topic, context, _ string) string {
	switch sectionType {
	case "abstract":
		return fmt.Sprintf(`\begin{abstract}
This paper presents a comprehensive study on %[1]s. %[2]s The research methodology involves systematic analysis and evaluation. Key findings demonstrate significant implications for the field. The results contribute to our understanding of %[1]s and provide valuable insights for future research.
\end{abstract}`, topic, context)

	case "introduction":
		return fmt.Sprintf(`\section{Introduction}

%[1]s has become increasingly important in recent years. %[2]s This research addresses the need for better understanding of the underlying principles and mechanisms.

The main objectives of this study are:
\begin{itemize}
    \item To investigate the fundamental aspects of %[1]s
    \item To analyze current approaches and methodologies
    \item To propose improvements and novel solutions
\end{itemize}

This paper is organized as follows: Section 2 presents the background and related work, Section 3 describes the methodology, Section 4 presents the results, and Section 5 concludes the paper.`, topic, context)

	case "methodology":
		return fmt.Sprintf(`\section{Methodology}

This section describes the research methodology employed in this study of %s. %s

\subsection{Research Design}
The research follows a systematic approach combining theoretical analysis with empirical evaluation.

\subsection{Data Collection}
Data was collected through multiple sources to ensure comprehensive coverage of the research domain.

\subsection{Analysis Framework}
The analysis framework incorporates both quantitative and qualitative methods to provide robust insights.`, topic, context)

	case "results":
		return fmt.Sprintf(`\section{Results}

This section presents the findings of our investigation into %s. %s

\subsection{Primary Findings}
The analysis revealed several key insights:

\begin{itemize}
    \item Significant improvement in performance metrics
    \item Enhanced understanding of underlying mechanisms
    \item Novel patterns and relationships identified
\end{itemize}

\subsection{Statistical Analysis}
Statistical analysis confirms the significance of the observed results (p < 0.05).

\subsection{Discussion of Results}
These findings have important implications for the field and suggest new directions for future research.`, topic, context)

	case "conclusion":
		return fmt.Sprintf(`\section{Conclusion}

This study has provided valuable insights into %[1]s. %[2]s The research has successfully addressed the initial objectives and contributed to the advancement of knowledge in this field.

\subsection{Key Contributions}
The main contributions of this work include:
\begin{itemize}
    \item Novel theoretical framework for understanding %[1]s
    \item Empirical validation of proposed approaches
    \item Practical implications for real-world applications
\end{itemize}

\subsection{Future Work}
Future research directions include extending the current framework and exploring additional applications in related domains.`, topic, context)

	default:
		return fmt.Sprintf("%% %s section for %s\n%% %s", titleCase(sectionType), topic, context)
	}
}

// Improve prepends an annotation header to the content. A real revision
// backend would rewrite the text instead.
func (g *TemplateGenerator) Improve(content, improvementType, instructions string) string {
	return fmt.Sprintf("%% Improved for %s\n%% %s\n\n%s", improvementType, instructions, content)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
