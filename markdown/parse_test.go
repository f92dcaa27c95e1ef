package markdown

import (
	"reflect"
	"testing"
)

func TestParseMixedDocument(t *testing.T) {
	input := "### Title\nplain **bold** text\n- item one\n- item **two**\n```\ncode line\n```"

	got := Parse(input)
	want := []Line{
		{Kind: Heading, Spans: []Span{{Text: "Title"}}},
		{Kind: Paragraph, Spans: []Span{{Text: "plain "}, {Text: "bold", Bold: true}, {Text: " text"}}},
		{Kind: ListItem, Spans: []Span{{Text: "- item one"}}},
		{Kind: ListItem, Spans: []Span{{Text: "- item "}, {Text: "two", Bold: true}}},
		{Kind: CodeBlock, Spans: []Span{{Text: "code line"}}},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() =\n%+v\nwant\n%+v", got, want)
	}
}

func TestParseSubheading(t *testing.T) {
	got := Parse("## Section")
	want := []Line{{Kind: Subheading, Spans: []Span{{Text: "Section"}}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() = %+v, want %+v", got, want)
	}
}

func TestParseUnterminatedFenceSwallowsContent(t *testing.T) {
	// Buffered code lines are only flushed by a closing fence. This ports
	// the formatter's behavior exactly; see DESIGN.md.
	got := Parse("```\nabc")
	if len(got) != 0 {
		t.Errorf("Expected content after an unclosed fence to be swallowed, got %+v", got)
	}

	got = Parse("before\n```\nabc")
	want := []Line{{Kind: Paragraph, Spans: []Span{{Text: "before"}}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() = %+v, want %+v", got, want)
	}
}

func TestParseMultiLineCodeBlock(t *testing.T) {
	got := Parse("```\nline one\n\nline three\n```")
	want := []Line{{Kind: CodeBlock, Spans: []Span{{Text: "line one\n\nline three"}}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() = %+v, want %+v", got, want)
	}
}

func TestParseCodeBlockVerbatim(t *testing.T) {
	// Markup cues inside a fence are not parsed.
	got := Parse("```\n### not a heading\n**not bold**\n```")
	want := []Line{{Kind: CodeBlock, Spans: []Span{{Text: "### not a heading\n**not bold**"}}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() = %+v, want %+v", got, want)
	}
}

func TestParseUnmatchedBoldIsLiteral(t *testing.T) {
	got := Parse("a **b")
	want := []Line{{Kind: Paragraph, Spans: []Span{{Text: "a **b"}}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() = %+v, want %+v", got, want)
	}

	// Three delimiters: only the leftmost pair matches.
	got = Parse("**a** and **b")
	want = []Line{{Kind: Paragraph, Spans: []Span{{Text: "a", Bold: true}, {Text: " and **b"}}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() = %+v, want %+v", got, want)
	}
}

func TestParseBoldInHeading(t *testing.T) {
	got := Parse("### A **B** C")
	want := []Line{{Kind: Heading, Spans: []Span{{Text: "A "}, {Text: "B", Bold: true}, {Text: " C"}}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() = %+v, want %+v", got, want)
	}
}

func TestParseIndentedMarkers(t *testing.T) {
	// Block markers are recognized on the trimmed line.
	got := Parse("   ### Indented")
	want := []Line{{Kind: Heading, Spans: []Span{{Text: "Indented"}}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() = %+v, want %+v", got, want)
	}
}

func TestParseEmptyAndBlankLines(t *testing.T) {
	if got := Parse(""); len(got) != 0 {
		t.Errorf("Expected no lines for empty input, got %+v", got)
	}

	got := Parse("a\n\nb")
	want := []Line{
		{Kind: Paragraph, Spans: []Span{{Text: "a"}}},
		{Kind: Paragraph, Spans: nil},
		{Kind: Paragraph, Spans: []Span{{Text: "b"}}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() = %+v, want %+v", got, want)
	}

	// A trailing newline does not produce a phantom empty line.
	got = Parse("a\n")
	want = []Line{{Kind: Paragraph, Spans: []Span{{Text: "a"}}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() = %+v, want %+v", got, want)
	}
}
