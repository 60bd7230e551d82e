package script

import "fmt"

// Fallbacks are the request parameters substituted for fields the agent
// response omits or mistypes.
type Fallbacks struct {
	Topic       string
	AgeRange    string
	VideoLength string
	StyleTags   []string
}

// Normalize converts an arbitrary decoded JSON value (the raw agent result
// payload) into a well-formed Script. It is deliberately permissive: the
// upstream format is not contractually guaranteed, so every missing or
// mistyped field degrades to a fallback or zero value and Normalize never
// fails.
func Normalize(raw any, fb Fallbacks) Script {
	m := asMap(raw)

	s := Script{
		ScriptTitle:     str(m, "script_title", "Script: "+fb.Topic),
		Topic:           str(m, "topic", fb.Topic),
		TargetAgeRange:  str(m, "target_age_range", fb.AgeRange),
		VideoLength:     str(m, "video_length", fb.VideoLength),
		StyleTags:       strSlice(m["style_tags"], fb.StyleTags),
		IntroHook:       str(m, "intro_hook", ""),
		OutroCTA:        str(m, "outro_cta", ""),
		ProductionNotes: str(m, "production_notes", ""),
	}

	rs := asMap(m["research_summary"])
	s.ResearchSummary = ResearchSummary{
		Overview:   str(rs, "overview", ""),
		KeyEvents:  []KeyEvent{},
		KeyFigures: []KeyFigure{},
	}
	for _, el := range list(rs["key_events"]) {
		em := asMap(el)
		s.ResearchSummary.KeyEvents = append(s.ResearchSummary.KeyEvents, KeyEvent{
			Date:         str(em, "date", ""),
			Event:        str(em, "event", ""),
			Significance: str(em, "significance", ""),
		})
	}
	for _, el := range list(rs["key_figures"]) {
		em := asMap(el)
		s.ResearchSummary.KeyFigures = append(s.ResearchSummary.KeyFigures, KeyFigure{
			Name:   str(em, "name", ""),
			Role:   str(em, "role", ""),
			Detail: str(em, "detail", ""),
		})
	}

	s.Scenes = []Scene{}
	for _, el := range list(m["scenes"]) {
		em := asMap(el)
		sc := Scene{
			SceneNumber:         intVal(em["scene_number"]),
			SceneTitle:          str(em, "scene_title", ""),
			Narration:           str(em, "narration", ""),
			VisualSuggestions:   str(em, "visual_suggestions", ""),
			DurationEstimate:    str(em, "duration_estimate", ""),
			InteractiveElements: []InteractiveElement{},
		}
		for _, ie := range list(em["interactive_elements"]) {
			im := asMap(ie)
			sc.InteractiveElements = append(sc.InteractiveElements, InteractiveElement{
				Type:    str(im, "type", ""),
				Content: str(im, "content", ""),
			})
		}
		s.Scenes = append(s.Scenes, sc)
	}

	s.QuizQuestions = []QuizQuestion{}
	for _, el := range list(m["quiz_questions"]) {
		em := asMap(el)
		s.QuizQuestions = append(s.QuizQuestions, QuizQuestion{
			Question:       str(em, "question", ""),
			Options:        strSlice(em["options"], nil),
			CorrectAnswer:  str(em, "correct_answer", ""),
			ScenePlacement: intVal(em["scene_placement"]),
		})
	}

	s.FunFacts = []FunFact{}
	for _, el := range list(m["fun_facts"]) {
		em := asMap(el)
		s.FunFacts = append(s.FunFacts, FunFact{
			Fact:           str(em, "fact", ""),
			WhyItsCool:     str(em, "why_its_cool", ""),
			ScenePlacement: intVal(em["scene_placement"]),
		})
	}

	s.ModernConnections = []ModernConnection{}
	for _, el := range list(m["modern_connections"]) {
		em := asMap(el)
		s.ModernConnections = append(s.ModernConnections, ModernConnection{
			HistoricalElement: str(em, "historical_element", ""),
			ModernLink:        str(em, "modern_link", ""),
			ScenePlacement:    intVal(em["scene_placement"]),
		})
	}

	return s
}

// asMap returns v as a string-keyed map, or an empty map when v is anything
// else. Lookups on the empty map fall through to field fallbacks.
func asMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

// str returns m[key] when it is a string, otherwise the fallback.
func str(m map[string]any, key, fallback string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return fallback
}

// list returns v's elements when v is a JSON array, otherwise nil.
func list(v any) []any {
	if l, ok := v.([]any); ok {
		return l
	}
	return nil
}

// strSlice converts a JSON array to a string slice, stringifying non-string
// elements rather than dropping them so display order and count survive.
// A missing or non-array value yields the fallback (copied, never nil).
func strSlice(v any, fallback []string) []string {
	l, ok := v.([]any)
	if !ok {
		out := make([]string, len(fallback))
		copy(out, fallback)
		return out
	}
	out := make([]string, 0, len(l))
	for _, el := range l {
		if s, ok := el.(string); ok {
			out = append(out, s)
		} else {
			out = append(out, fmt.Sprintf("%v", el))
		}
	}
	return out
}

// intVal coerces a decoded JSON number to int. encoding/json decodes numbers
// as float64; strings and other shapes yield 0.
func intVal(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	}
	return 0
}
