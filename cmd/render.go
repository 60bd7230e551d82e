package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/historyquest/historyquest/internal/markdown"
	"github.com/historyquest/historyquest/internal/script"
)

// renderScript writes a script to the terminal, interpreting the
// markdown-lite conventions the agents use in their text.
func renderScript(w io.Writer, doc script.Script) {
	for _, block := range markdown.Render(script.ExportText(doc)) {
		switch block.Kind {
		case markdown.Heading1:
			title := block.Text()
			fmt.Fprintf(w, "%s\n%s\n", title, strings.Repeat("=", len(title)))
		case markdown.Heading2:
			title := block.Text()
			fmt.Fprintf(w, "%s\n%s\n", title, strings.Repeat("-", len(title)))
		case markdown.Heading3:
			fmt.Fprintf(w, "%s\n", block.Text())
		case markdown.Bullet, markdown.Ordered:
			fmt.Fprintf(w, "  * %s\n", renderSpans(block.Spans))
		case markdown.Spacer:
			fmt.Fprintln(w)
		default:
			fmt.Fprintf(w, "%s\n", renderSpans(block.Spans))
		}
	}
}

// renderSpans flattens inline spans, wrapping bold runs in ANSI bold.
func renderSpans(spans []markdown.Span) string {
	var b strings.Builder
	for _, s := range spans {
		if s.Bold {
			b.WriteString("\x1b[1m" + s.Text + "\x1b[0m")
		} else {
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

// renderResearch prints the research agent's background material.
func renderResearch(w io.Writer, doc script.Script) {
	r := doc.ResearchSummary
	if r.Overview == "" && len(r.KeyEvents) == 0 && len(r.KeyFigures) == 0 {
		return
	}

	fmt.Fprintf(w, "\nResearch\n--------\n")
	if r.Overview != "" {
		fmt.Fprintln(w, r.Overview)
	}
	for _, e := range r.KeyEvents {
		fmt.Fprintf(w, "  %s: %s (%s)\n", e.Date, e.Event, e.Significance)
	}
	for _, f := range r.KeyFigures {
		fmt.Fprintf(w, "  %s, %s: %s\n", f.Name, f.Role, f.Detail)
	}
}

// renderExtras prints the quiz questions, fun facts and modern connections
// grouped under the scenes they belong to.
func renderExtras(w io.Writer, doc script.Script) {
	placed := script.Place(doc)

	if len(doc.QuizQuestions) > 0 {
		fmt.Fprintf(w, "\nQuiz Questions\n--------------\n")
		for _, scene := range doc.Scenes {
			for _, q := range placed.QuizByScene[scene.SceneNumber] {
				fmt.Fprintf(w, "  [scene %d] %s\n", scene.SceneNumber, q.Question)
			}
		}
		for _, q := range placed.UnplacedQuiz {
			fmt.Fprintf(w, "  [general] %s\n", q.Question)
		}
	}

	if len(doc.FunFacts) > 0 {
		fmt.Fprintf(w, "\nFun Facts\n---------\n")
		for _, scene := range doc.Scenes {
			for _, f := range placed.FactsByScene[scene.SceneNumber] {
				fmt.Fprintf(w, "  [scene %d] %s\n", scene.SceneNumber, f.Fact)
			}
		}
		for _, f := range placed.UnplacedFacts {
			fmt.Fprintf(w, "  [general] %s\n", f.Fact)
		}
	}

	if len(doc.ModernConnections) > 0 {
		fmt.Fprintf(w, "\nModern Connections\n------------------\n")
		for _, scene := range doc.Scenes {
			for _, c := range placed.ConnectionsByScene[scene.SceneNumber] {
				fmt.Fprintf(w, "  [scene %d] %s -> %s\n", scene.SceneNumber, c.HistoricalElement, c.ModernLink)
			}
		}
		for _, c := range placed.UnplacedConnections {
			fmt.Fprintf(w, "  [general] %s -> %s\n", c.HistoricalElement, c.ModernLink)
		}
	}
}
