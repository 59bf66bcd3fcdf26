package token

import "strings"

// CommentKind distinguishes line vs block comments.
type CommentKind int

// Comment kinds.
const (
	LineComment  CommentKind = iota // -- comment (also # in MySQL)
	BlockComment                    // /* comment */, possibly nested
)

// Comment is a comment seen by the tokenizer. Comments never reach the
// parser; they are kept for tools that want to re-attach them.
type Comment struct {
	Kind CommentKind
	Text string // includes delimiters
	Span Span
}

// Body returns the comment text without its delimiters.
func (c *Comment) Body() string {
	switch c.Kind {
	case BlockComment:
		return strings.TrimSuffix(strings.TrimPrefix(c.Text, "/*"), "*/")
	default:
		body := strings.TrimPrefix(c.Text, "--")
		if body == c.Text {
			body = strings.TrimPrefix(c.Text, "#")
		}
		return strings.TrimRight(body, "\r\n")
	}
}

// IsLineComment returns true if this is a line comment.
func (c *Comment) IsLineComment() bool {
	return c.Kind == LineComment
}
