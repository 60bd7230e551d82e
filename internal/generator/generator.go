// Package generator orchestrates one script generation round trip: it builds
// the instruction message, issues exactly one agent invocation, and maps the
// untrusted result into a normalized script document or a typed error.
package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/historyquest/historyquest/internal/agent"
	"github.com/historyquest/historyquest/internal/script"
)

// Fallback messages when the collaborator gives no specific text.
const (
	errGenerationFailed = "Failed to generate script. Please try again."
	errUnexpected       = "An unexpected error occurred."
)

// Request holds the user's generation parameters. Regeneration is a fresh
// Generate call with the same Request.
type Request struct {
	Topic       string   `json:"topic"`
	AgeRange    string   `json:"age_range"`
	VideoLength string   `json:"video_length"`
	StyleTags   []string `json:"style_tags"`
	Focus       string   `json:"focus"`
}

// GenerationError is the single user-visible failure type. Message always
// carries the most specific text available from the collaborator.
type GenerationError struct {
	Message string
}

func (e *GenerationError) Error() string { return e.Message }

// Generator issues generation requests against one agent collaborator.
type Generator struct {
	invoker agent.Invoker
}

// New creates a Generator.
func New(invoker agent.Invoker) *Generator {
	return &Generator{invoker: invoker}
}

// BuildMessage renders the natural-language instruction embedding all
// request parameters. Empty style tags render as "General"; an empty focus
// is omitted entirely.
func BuildMessage(req Request) string {
	styles := "General"
	if len(req.StyleTags) > 0 {
		styles = strings.Join(req.StyleTags, ", ")
	}
	msg := fmt.Sprintf("Create a %s educational history video script about %q for ages %s. Style preferences: %s.",
		req.VideoLength, req.Topic, req.AgeRange, styles)
	if req.Focus != "" {
		msg += " Specific focus: " + req.Focus
	}
	return msg
}

// Generate performs one generation round trip addressed to the manager
// agent. On success the nested result payload is normalized with the request
// parameters as fallbacks. Every failure path returns a *GenerationError; no
// retry is performed.
func (g *Generator) Generate(ctx context.Context, req Request) (script.Script, error) {
	result, err := g.invoker.Invoke(ctx, BuildMessage(req), agent.ManagerAgentID)
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = errUnexpected
		}
		return script.Script{}, &GenerationError{Message: msg}
	}

	if result == nil || !result.Success || result.Response == nil || result.Response.Result == nil {
		return script.Script{}, &GenerationError{Message: failureMessage(result)}
	}

	return script.Normalize(result.Response.Result, script.Fallbacks{
		Topic:       req.Topic,
		AgeRange:    req.AgeRange,
		VideoLength: req.VideoLength,
		StyleTags:   req.StyleTags,
	}), nil
}

// failureMessage picks the most specific text from a non-success envelope:
// the explicit error, else the status message, else a generic fallback.
func failureMessage(result *agent.InvokeResult) string {
	if result != nil {
		if result.Error != "" {
			return result.Error
		}
		if result.Response != nil && result.Response.Message != "" {
			return result.Response.Message
		}
	}
	return errGenerationFailed
}
