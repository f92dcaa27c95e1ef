package markdown

import (
	"testing"

	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

func textSegment(t *testing.T, seg widget.RichTextSegment) *widget.TextSegment {
	t.Helper()
	ts, ok := seg.(*widget.TextSegment)
	if !ok {
		t.Fatalf("Expected *widget.TextSegment, got %T", seg)
	}
	return ts
}

func TestSegmentsMixedDocument(t *testing.T) {
	segs := Segments(Parse("### Title\nplain **bold** text\n- item one\n- item **two**\n```\ncode line\n```"))
	if len(segs) != 8 {
		t.Fatalf("Expected 8 segments, got %d", len(segs))
	}

	title := textSegment(t, segs[0])
	if title.Text != "Title" || title.Style.SizeName != theme.SizeNameHeadingText || !title.Style.TextStyle.Bold {
		t.Errorf("Unexpected heading segment: %+v", title)
	}
	if title.Style.Inline {
		t.Error("Heading line must end its text block")
	}

	plain := textSegment(t, segs[1])
	bold := textSegment(t, segs[2])
	tail := textSegment(t, segs[3])
	if plain.Text != "plain " || plain.Style.TextStyle.Bold || !plain.Style.Inline {
		t.Errorf("Unexpected leading paragraph segment: %+v", plain)
	}
	if bold.Text != "bold" || !bold.Style.TextStyle.Bold || !bold.Style.Inline {
		t.Errorf("Unexpected bold segment: %+v", bold)
	}
	if tail.Text != " text" || tail.Style.TextStyle.Bold || tail.Style.Inline {
		t.Errorf("Unexpected trailing paragraph segment: %+v", tail)
	}

	itemOne := textSegment(t, segs[4])
	if itemOne.Text != listIndent+"- item one" || itemOne.Style.Inline {
		t.Errorf("Unexpected list segment: %+v", itemOne)
	}

	itemTwo := textSegment(t, segs[5])
	itemTwoBold := textSegment(t, segs[6])
	if itemTwo.Text != listIndent+"- item " || !itemTwo.Style.Inline {
		t.Errorf("Unexpected list segment: %+v", itemTwo)
	}
	if itemTwoBold.Text != "two" || !itemTwoBold.Style.TextStyle.Bold || itemTwoBold.Style.Inline {
		t.Errorf("Unexpected bold list segment: %+v", itemTwoBold)
	}

	code := textSegment(t, segs[7])
	if code.Text != "code line" || !code.Style.TextStyle.Monospace || code.Style.Inline {
		t.Errorf("Unexpected code segment: %+v", code)
	}
}

func TestSegmentsBlankLine(t *testing.T) {
	segs := Segments(Parse("a\n\nb"))
	if len(segs) != 3 {
		t.Fatalf("Expected 3 segments, got %d", len(segs))
	}
	blank := textSegment(t, segs[1])
	if blank.Text != "" || blank.Style.Inline {
		t.Errorf("Expected empty non-inline segment for a blank line, got %+v", blank)
	}
}

func TestErrorSegments(t *testing.T) {
	segs := ErrorSegments("Error processing image: boom")
	if len(segs) != 1 {
		t.Fatalf("Expected 1 segment, got %d", len(segs))
	}
	seg := textSegment(t, segs[0])
	if seg.Text != "Error processing image: boom" {
		t.Errorf("Unexpected error segment text: %q", seg.Text)
	}
	if seg.Style.TextStyle.Bold || seg.Style.TextStyle.Monospace {
		t.Errorf("Error text must carry no styling: %+v", seg.Style)
	}
}
