package script

import (
	"strings"
	"testing"
)

func TestExportTextLayout(t *testing.T) {
	s := Script{
		ScriptTitle:    "The Space Race",
		Topic:          "Space",
		TargetAgeRange: "11-14",
		VideoLength:    "15 min",
		IntroHook:      "Two superpowers.",
		Scenes: []Scene{
			{SceneNumber: 1, SceneTitle: "The Starting Gun", Narration: "It all started with a beep.", VisualSuggestions: "Newsreel footage.", DurationEstimate: "3 minutes"},
		},
		OutroCTA:        "Subscribe!",
		ProductionNotes: "Orchestral music.",
	}

	got := ExportText(s)

	for _, want := range []string{
		"# The Space Race\n\n",
		"Topic: Space\nAge Range: 11-14\nLength: 15 min\n\n",
		"## Intro Hook\nTwo superpowers.\n\n",
		"## Scene 1: The Starting Gun\nDuration: 3 minutes\n\n",
		"It all started with a beep.\n\n",
		"Visual Suggestions: Newsreel footage.\n\n",
		"## Outro CTA\nSubscribe!\n\n",
		"## Production Notes\nOrchestral music.\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("export missing %q in:\n%s", want, got)
		}
	}

	// Sections appear in document order.
	if strings.Index(got, "## Intro Hook") > strings.Index(got, "## Scene 1") {
		t.Error("intro hook must precede scenes")
	}
	if strings.Index(got, "## Outro CTA") > strings.Index(got, "## Production Notes") {
		t.Error("outro must precede production notes")
	}
}

func TestExportTextMissingFields(t *testing.T) {
	got := ExportText(Script{})
	if !strings.HasPrefix(got, "# Untitled\n") {
		t.Errorf("empty title must render as Untitled:\n%s", got)
	}
	if strings.Contains(got, "## Intro Hook") || strings.Contains(got, "## Outro CTA") || strings.Contains(got, "## Production Notes") {
		t.Errorf("empty optional sections must be omitted:\n%s", got)
	}
}
