package markdown

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// listIndent stands in for the left margin a list line gets; RichText has
// no per-segment margin control.
const listIndent = "    "

// Segments translates parsed lines into Fyne rich text segments. The result
// replaces the widget's previous segments wholesale; rendering is never
// incremental. Each non-code line ends its own text block, which gives the
// one-trailing-break-per-line behavior.
func Segments(lines []Line) []widget.RichTextSegment {
	var segs []widget.RichTextSegment

	for _, ln := range lines {
		if ln.Kind == CodeBlock {
			segs = append(segs, &widget.TextSegment{
				Text:  ln.Spans[0].Text,
				Style: widget.RichTextStyleCodeBlock,
			})
			continue
		}

		base := blockStyle(ln.Kind)

		if len(ln.Spans) == 0 {
			st := base
			st.Inline = false
			segs = append(segs, &widget.TextSegment{Text: "", Style: st})
			continue
		}

		for i, sp := range ln.Spans {
			st := base
			if sp.Bold {
				st.TextStyle.Bold = true
			}
			st.Inline = i < len(ln.Spans)-1
			text := sp.Text
			if ln.Kind == ListItem && i == 0 {
				text = listIndent + text
			}
			segs = append(segs, &widget.TextSegment{Text: text, Style: st})
		}
	}

	return segs
}

// ErrorSegments renders a failure message in place of an answer.
func ErrorSegments(message string) []widget.RichTextSegment {
	return []widget.RichTextSegment{
		&widget.TextSegment{Text: message, Style: widget.RichTextStyleParagraph},
	}
}

func blockStyle(k BlockKind) widget.RichTextStyle {
	switch k {
	case Heading:
		return widget.RichTextStyle{
			SizeName:  theme.SizeNameHeadingText,
			TextStyle: fyne.TextStyle{Bold: true},
		}
	case Subheading:
		return widget.RichTextStyle{
			SizeName:  theme.SizeNameSubHeadingText,
			TextStyle: fyne.TextStyle{Bold: true},
		}
	default:
		return widget.RichTextStyle{SizeName: theme.SizeNameText}
	}
}
