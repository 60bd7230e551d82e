// Package script defines the generated video script document model and the
// pure derivations computed over it: normalization of untrusted agent
// payloads, scene placement of annotations, search filtering, and export.
package script

import "time"

// Script is the full specification of one educational history video as
// produced by the agent pipeline. All fields are always defined after
// normalization; consumers never see a nil slice or a missing scalar.
type Script struct {
	ScriptTitle       string             `json:"script_title"`
	Topic             string             `json:"topic"`
	TargetAgeRange    string             `json:"target_age_range"`
	VideoLength       string             `json:"video_length"`
	StyleTags         []string           `json:"style_tags"`
	ResearchSummary   ResearchSummary    `json:"research_summary"`
	Scenes            []Scene            `json:"scenes"`
	QuizQuestions     []QuizQuestion     `json:"quiz_questions"`
	FunFacts          []FunFact          `json:"fun_facts"`
	ModernConnections []ModernConnection `json:"modern_connections"`
	IntroHook         string             `json:"intro_hook"`
	OutroCTA          string             `json:"outro_cta"`
	ProductionNotes   string             `json:"production_notes"`
}

// SavedScript is a Script that has been persisted: the same structural type
// plus an identity assigned exactly once at save time.
type SavedScript struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Script
}

// Scene is one segment of the video. SceneNumber is agent-assigned and not
// guaranteed unique or contiguous.
type Scene struct {
	SceneNumber         int                  `json:"scene_number"`
	SceneTitle          string               `json:"scene_title"`
	Narration           string               `json:"narration"`
	VisualSuggestions   string               `json:"visual_suggestions"`
	DurationEstimate    string               `json:"duration_estimate"`
	InteractiveElements []InteractiveElement `json:"interactive_elements"`
}

// InteractiveElement is an open type+content pair; the kind set is
// agent-supplied and not exhaustively known.
type InteractiveElement struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// QuizQuestion is a cross-cutting annotation referencing a scene number.
type QuizQuestion struct {
	Question       string   `json:"question"`
	Options        []string `json:"options"`
	CorrectAnswer  string   `json:"correct_answer"`
	ScenePlacement int      `json:"scene_placement"`
}

// FunFact is a cross-cutting annotation referencing a scene number.
type FunFact struct {
	Fact           string `json:"fact"`
	WhyItsCool     string `json:"why_its_cool"`
	ScenePlacement int    `json:"scene_placement"`
}

// ModernConnection links a historical element to its present-day echo.
type ModernConnection struct {
	HistoricalElement string `json:"historical_element"`
	ModernLink        string `json:"modern_link"`
	ScenePlacement    int    `json:"scene_placement"`
}

// ResearchSummary carries the research agent's background material.
type ResearchSummary struct {
	Overview   string      `json:"overview"`
	KeyEvents  []KeyEvent  `json:"key_events"`
	KeyFigures []KeyFigure `json:"key_figures"`
}

// KeyEvent is one entry of the research timeline.
type KeyEvent struct {
	Date         string `json:"date"`
	Event        string `json:"event"`
	Significance string `json:"significance"`
}

// KeyFigure is one person from the research summary.
type KeyFigure struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Detail string `json:"detail"`
}
