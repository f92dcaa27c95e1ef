// Package markdown parses the constrained markup subset the vision prompt
// asks for (headings, subheadings, list items, fenced code, inline bold)
// into styled lines, and translates them for display.
package markdown

import (
	"regexp"
	"strings"
)

type BlockKind int

const (
	Paragraph BlockKind = iota
	Heading
	Subheading
	ListItem
	CodeBlock
)

// Span is a run of text within one line. Bold composes with the line's
// block kind; code block lines carry a single span, verbatim.
type Span struct {
	Text string
	Bold bool
}

type Line struct {
	Kind  BlockKind
	Spans []Span
}

// boldPattern matches inline bold segments (e.g. **bold text**), pairwise,
// leftmost-first. An unmatched ** stays literal.
var boldPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)

// Parse processes content line by line. The only cross-line state is
// whether we are inside a fenced code block: fence lines toggle it, lines
// inside accumulate verbatim and are emitted as one CodeBlock line when the
// closing fence arrives. Content after an unclosed fence is never emitted.
func Parse(content string) []Line {
	var out []Line
	inCodeBlock := false
	var codeLines []string

	for _, line := range splitLines(content) {
		stripped := strings.TrimSpace(line)

		if strings.HasPrefix(stripped, "```") {
			if !inCodeBlock {
				inCodeBlock = true
				codeLines = nil
			} else {
				out = append(out, Line{
					Kind:  CodeBlock,
					Spans: []Span{{Text: strings.Join(codeLines, "\n")}},
				})
				inCodeBlock = false
			}
			continue
		}

		if inCodeBlock {
			codeLines = append(codeLines, line)
			continue
		}

		switch {
		case strings.HasPrefix(stripped, "### "):
			out = append(out, Line{Kind: Heading, Spans: boldSpans(strings.TrimSpace(stripped[4:]))})
		case strings.HasPrefix(stripped, "## "):
			out = append(out, Line{Kind: Subheading, Spans: boldSpans(strings.TrimSpace(stripped[3:]))})
		case strings.HasPrefix(stripped, "- "):
			// The whole trimmed line keeps its dash.
			out = append(out, Line{Kind: ListItem, Spans: boldSpans(stripped)})
		default:
			out = append(out, Line{Kind: Paragraph, Spans: boldSpans(line)})
		}
	}

	return out
}

// boldSpans splits a line into plain and bold spans. Empty pieces are
// dropped, so a plain line yields one span and "****" yields none.
func boldSpans(line string) []Span {
	var spans []Span
	start := 0
	for _, match := range boldPattern.FindAllStringSubmatchIndex(line, -1) {
		if before := line[start:match[0]]; before != "" {
			spans = append(spans, Span{Text: before})
		}
		if bold := line[match[2]:match[3]]; bold != "" {
			spans = append(spans, Span{Text: bold, Bold: true})
		}
		start = match[1]
	}
	if start < len(line) {
		spans = append(spans, Span{Text: line[start:]})
	}
	return spans
}

// splitLines splits on newlines without producing a phantom empty line
// after a trailing newline.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
