// Package content holds the scripted material shown by the research
// assistant: the reasoning plan, the source document, the final report and
// the starter sessions.
package content

import (
	"time"

	"github.com/flashingpumpkin/stratos/internal/session"
	"github.com/flashingpumpkin/stratos/internal/ticker"
)

// ResearchPlan returns the default plan of action and its execution log.
func ResearchPlan() ticker.Plan {
	return ticker.Plan{
		Steps: []ticker.PlanStep{
			{Icon: "🔎", Label: "Planning 3 web searches"},
			{Icon: "📄", Label: "2 academic paper searches"},
			{Icon: "📊", Label: "Gathering and synthesizing data"},
		},
		Log: []ticker.LogLine{
			{Text: "[Tool: tavily_search] Searching for latest agentic AI advances"},
			{Text: "[Tool: scholar_search] Finding peer-reviewed papers on AI reasoning"},
			{Text: "[Agent: critic] Reviewing search results... REJECTED (insufficient depth)"},
			{Text: "[Tool: tavily_search] Running refined search with better parameters"},
			{Text: "[Agent: synthesizer] Compiling findings into coherent narrative"},
			{Text: "[Status: COMPLETE] Ready to generate final report"},
		},
	}
}

// Section is a titled block of prose.
type Section struct {
	Heading string
	Body    string
}

// Document is a source document shown in the viewer.
type Document struct {
	Title    string
	FileName string
	Sections []Section
	Hint     string
}

// SourceDocument returns the document opened from report citations.
func SourceDocument() Document {
	return Document{
		Title:    "Source Document",
		FileName: "Efficient Agent Adaptation.pdf",
		Sections: []Section{
			{
				Heading: "Efficient Agent Adaptation",
				Body: "Abstract: We propose a novel meta-learning framework that enables autonomous agents to rapidly adapt to " +
					"new tools and environments with minimal fine-tuning. Our approach leverages in-context learning principles " +
					"combined with efficient parameter updates.",
			},
			{
				Heading: "1. Introduction",
				Body: "The ability to quickly adapt to new tasks and tools is fundamental to intelligent agent behavior. " +
					"Traditional approaches require extensive retraining on new tool sets, which limits their practical " +
					"applicability. Our method addresses this limitation by using a combination of instruction tuning and " +
					"gradient-based meta-learning.",
			},
			{
				Heading: "2. Methodology",
				Body: "We present a multi-stage approach to agent adaptation. First, agents learn general reasoning patterns " +
					"through instruction tuning. Second, they acquire tool-specific knowledge through efficient fine-tuning " +
					"with gradient-based methods...",
			},
		},
		Hint: "💡 Select a passage to ask follow-up questions or dive deeper into specific sections",
	}
}

// Finding is one highlighted result in the report. Citation is the number of
// the source it links to, or zero.
type Finding struct {
	Title    string
	Text     string
	Citation int
}

// Report is the final research report produced when the plan completes.
type Report struct {
	Title    string
	Subtitle string
	Intro    string
	Findings []Finding
	Sources  []string
}

// ResearchReport returns the scripted report.
func ResearchReport() Report {
	return Report{
		Title:    "Research Report",
		Subtitle: "Latest Advancements in Agentic AI",
		Intro: "The field of agentic AI has witnessed remarkable progress in 2025, with several breakthrough developments " +
			"transforming how autonomous systems approach complex reasoning and task execution.",
		Findings: []Finding{
			{
				Title: "Multi-Modal Reasoning",
				Text: "Recent agents now integrate vision, language, and code understanding simultaneously, enabling richer " +
					"problem decomposition and solution synthesis.",
			},
			{
				Title:    "Efficient Tool Use",
				Text:     "Improved meta-learning approaches allow agents to rapidly adapt to new tools without extensive fine-tuning.",
				Citation: 1,
			},
			{
				Title: "Long-Horizon Planning",
				Text: "Novel architectures enable agents to maintain coherent plans across extended task sequences, " +
					"with critic loops rejecting shallow intermediate results.",
			},
		},
		Sources: []string{"Efficient Agent Adaptation.pdf"},
	}
}

// AssistantReply is the scripted answer appended when the plan completes.
const AssistantReply = "I've compiled a research report on the latest advancements in agentic AI. " +
	"Press ctrl+o to open the cited source document alongside it."

// Hero text shown in an empty workspace.
const (
	HeroTitle    = "Understand, research and write about anything"
	HeroSubtitle = "Use AI-powered tools to explore topics, analyze documents, and generate insights"
	InputPrompt  = "Ask me anything..."
)

// NavEntry is a fixed navigation shortcut.
type NavEntry struct {
	Icon  string
	Label string
}

// NavEntries returns the fixed shortcuts at the top of the navigation panel.
func NavEntries() []NavEntry {
	return []NavEntry{
		{Icon: "⌂", Label: "Home"},
		{Icon: "▤", Label: "Library"},
		{Icon: "⌕", Label: "Search"},
	}
}

// PrivateProjects returns the entries of the private section.
func PrivateProjects() []string {
	return []string{"My Research Projects"}
}

// SeedSessions returns the starter sessions, most recent first, with
// activity timestamps relative to now.
func SeedSessions(now time.Time) []session.Session {
	return []session.Session{
		{Title: "Pluripotency, Differentiation...", LastActivity: now.Add(-2 * time.Hour)},
		{Title: "Agentic AI News and Trends", LastActivity: now.Add(-24 * time.Hour)},
		{Title: "Age reversal research", LastActivity: now.Add(-48 * time.Hour)},
	}
}
