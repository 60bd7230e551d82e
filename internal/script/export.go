package script

import (
	"fmt"
	"strings"
)

// ExportText flattens a script into plain text with markdown-style heading
// markers, suitable for the clipboard or a .md file. The layout is fixed:
// title header, descriptive lines, intro hook, each scene with duration,
// narration and visual suggestions, then outro and production notes.
func ExportText(s Script) string {
	var b strings.Builder

	title := s.ScriptTitle
	if title == "" {
		title = "Untitled"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "Topic: %s\nAge Range: %s\nLength: %s\n\n", s.Topic, s.TargetAgeRange, s.VideoLength)

	if s.IntroHook != "" {
		fmt.Fprintf(&b, "## Intro Hook\n%s\n\n", s.IntroHook)
	}

	for _, sc := range s.Scenes {
		fmt.Fprintf(&b, "## Scene %d: %s\n", sc.SceneNumber, sc.SceneTitle)
		fmt.Fprintf(&b, "Duration: %s\n\n", sc.DurationEstimate)
		fmt.Fprintf(&b, "%s\n\n", sc.Narration)
		fmt.Fprintf(&b, "Visual Suggestions: %s\n\n", sc.VisualSuggestions)
	}

	if s.OutroCTA != "" {
		fmt.Fprintf(&b, "## Outro CTA\n%s\n\n", s.OutroCTA)
	}
	if s.ProductionNotes != "" {
		fmt.Fprintf(&b, "## Production Notes\n%s\n", s.ProductionNotes)
	}

	return b.String()
}
