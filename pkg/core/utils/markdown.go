package utils

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// CleanMarkdown strips conversational wrapping from model output. An
// outer code fence around the whole payload is removed, with or
// without an info string ("markdown", "json"). Inner formatting stays.
func CleanMarkdown(input string) string {
	cleaned := strings.TrimSpace(input)
	if !strings.HasPrefix(cleaned, "```") || !strings.HasSuffix(cleaned, "```") {
		return cleaned
	}

	body := strings.TrimSuffix(strings.TrimPrefix(cleaned, "```"), "```")
	if i := strings.IndexByte(body, '\n'); i >= 0 {
		info := strings.TrimSpace(body[:i])
		if info != "" && !strings.ContainsAny(info, " \t") {
			body = body[i+1:]
		}
	}
	return strings.TrimSpace(body)
}

// FlattenMarkdown reduces a markdown fragment to plain text. Heading,
// emphasis, and link syntax is dropped, soft-wrapped lines rejoin, and
// leaf blocks separate with single newlines. PDF cells render strings
// verbatim, so narrative text passes through here before layout.
func FlattenMarkdown(input string) string {
	src := []byte(CleanMarkdown(input))
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))

	var out strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Text:
			if entering {
				out.Write(node.Segment.Value(src))
				if node.SoftLineBreak() || node.HardLineBreak() {
					out.WriteByte(' ')
				}
			}
		case *ast.String:
			if entering {
				out.Write(node.Value)
			}
		case *ast.AutoLink:
			if entering {
				out.Write(node.Label(src))
			}
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			// Raw blocks carry their text in Lines, not child nodes.
			if entering {
				lines := n.Lines()
				for i := 0; i < lines.Len(); i++ {
					seg := lines.At(i)
					out.Write(seg.Value(src))
				}
			}
			return ast.WalkSkipChildren, nil
		default:
			if !entering {
				switch n.Kind() {
				case ast.KindParagraph, ast.KindHeading, ast.KindTextBlock:
					out.WriteByte('\n')
				}
			}
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(out.String())
}
