// Package markdown implements the restricted markdown-lite format used in
// generated narration and notes. It is a line-oriented, non-nesting
// formatter: each line becomes exactly one block, and the only inline markup
// is **bold**. Nested lists, links, and code spans are not part of the
// format and render as literal text.
package markdown

import (
	"regexp"
	"strings"
)

// BlockKind classifies one rendered line.
type BlockKind string

const (
	Heading1  BlockKind = "h1"
	Heading2  BlockKind = "h2"
	Heading3  BlockKind = "h3"
	Bullet    BlockKind = "bullet"
	Ordered   BlockKind = "ordered"
	Spacer    BlockKind = "spacer"
	Paragraph BlockKind = "paragraph"
)

// Span is a run of text with one emphasis flag.
type Span struct {
	Text string
	Bold bool
}

// Block is one display unit produced from one input line.
type Block struct {
	Kind  BlockKind
	Spans []Span
}

// Text returns the block's content with emphasis markers dropped.
func (b Block) Text() string {
	var sb strings.Builder
	for _, s := range b.Spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

var orderedRe = regexp.MustCompile(`^\d+\.\s`)

// Render scans text line by line and classifies each line, in priority
// order: "### " / "## " / "# " headings, "- " or "* " bullets, "1. " style
// ordered items, blank spacers, plain paragraphs. Inline emphasis applies to
// list items and paragraphs only. Empty input produces no blocks.
func Render(text string) []Block {
	if text == "" {
		return nil
	}

	var blocks []Block
	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, "### "):
			blocks = append(blocks, Block{Kind: Heading3, Spans: []Span{{Text: line[4:]}}})
		case strings.HasPrefix(line, "## "):
			blocks = append(blocks, Block{Kind: Heading2, Spans: []Span{{Text: line[3:]}}})
		case strings.HasPrefix(line, "# "):
			blocks = append(blocks, Block{Kind: Heading1, Spans: []Span{{Text: line[2:]}}})
		case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "* "):
			blocks = append(blocks, Block{Kind: Bullet, Spans: Inline(line[2:])})
		case orderedRe.MatchString(line):
			blocks = append(blocks, Block{Kind: Ordered, Spans: Inline(orderedRe.ReplaceAllString(line, ""))})
		case strings.TrimSpace(line) == "":
			blocks = append(blocks, Block{Kind: Spacer})
		default:
			blocks = append(blocks, Block{Kind: Paragraph, Spans: Inline(line)})
		}
	}
	return blocks
}

var boldRe = regexp.MustCompile(`\*\*(.*?)\*\*`)

// Inline splits text on **bold** delimiter pairs. Unmatched or absent
// delimiters leave the text unchanged as a single literal span.
func Inline(text string) []Span {
	matches := boldRe.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return []Span{{Text: text}}
	}

	var spans []Span
	last := 0
	for _, m := range matches {
		if m[0] > last {
			spans = append(spans, Span{Text: text[last:m[0]]})
		}
		spans = append(spans, Span{Text: text[m[2]:m[3]], Bold: true})
		last = m[1]
	}
	if last < len(text) {
		spans = append(spans, Span{Text: text[last:]})
	}
	return spans
}
