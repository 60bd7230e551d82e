package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/historyquest/historyquest/internal/config"
	"github.com/historyquest/historyquest/internal/generator"
	"github.com/historyquest/historyquest/internal/script"
)

// library returns saved scripts followed by the bundled samples.
func (s *Server) library() []script.SavedScript {
	docs := s.store.List()
	if s.samples {
		docs = append(docs, script.Samples()...)
	}
	return docs
}

// lookup finds a script by id among the samples and the saved library.
func (s *Server) lookup(id string) (script.SavedScript, bool) {
	if script.IsSample(id) {
		for _, doc := range script.Samples() {
			if doc.ID == id {
				return doc, true
			}
		}
		return script.SavedScript{}, false
	}
	return s.store.Get(id)
}

// handleGenerateScript runs one generation round trip and returns the script text.
func (s *Server) handleGenerateScript(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic, err := request.RequireString("topic")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: topic"), nil
	}

	req := generator.Request{
		Topic:       topic,
		AgeRange:    request.GetString("age_range", config.DefaultAgeRange),
		VideoLength: request.GetString("video_length", config.DefaultVideoLength),
		Focus:       request.GetString("focus", ""),
	}
	for _, tag := range strings.Split(request.GetString("style_tags", ""), ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			req.StyleTags = append(req.StyleTags, tag)
		}
	}

	doc, err := s.gen.Generate(ctx, req)
	if err != nil {
		var genErr *generator.GenerationError
		if errors.As(err, &genErr) {
			return mcp.NewToolResultError(genErr.Message), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("generation failed: %v", err)), nil
	}

	text := script.ExportText(doc)
	if request.GetBool("save", false) {
		saved := s.store.Save(doc)
		text = fmt.Sprintf("Saved as %s.\n\n%s", saved.ID, text)
	}
	return mcp.NewToolResultText(text), nil
}

// handleListScripts returns a one-line summary per matching script.
func (s *Server) handleListScripts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	age := request.GetString("age_range", script.AgeFilterAll)
	docs := script.Filter(s.library(), request.GetString("query", ""), age)

	if len(docs) == 0 {
		return mcp.NewToolResultText("No scripts found."), nil
	}

	var b strings.Builder
	for _, doc := range docs {
		title := doc.ScriptTitle
		if title == "" {
			title = "Untitled"
		}
		fmt.Fprintf(&b, "%s\t%s (ages %s, %s)\n", doc.ID, title, doc.TargetAgeRange, doc.VideoLength)
	}
	return mcp.NewToolResultText(b.String()), nil
}

// handleGetScript returns the full export text for one script.
func (s *Server) handleGetScript(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}

	doc, ok := s.lookup(id)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("no script with id %q", id)), nil
	}
	return mcp.NewToolResultText(script.ExportText(doc.Script)), nil
}

// handleDeleteScript removes one saved script.
func (s *Server) handleDeleteScript(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}

	if script.IsSample(id) {
		return mcp.NewToolResultError("sample scripts cannot be deleted"), nil
	}
	if !s.store.Delete(id) {
		return mcp.NewToolResultError(fmt.Sprintf("no script with id %q", id)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Deleted %s.", id)), nil
}
