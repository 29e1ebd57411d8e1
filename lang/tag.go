package lang

import (
	"log/slog"
	"strings"
)

// Tag delimiters recognized by the tokenizer and the tag parsers.
const (
	valueTagOpen  = "{$"
	valueTagClose = "}"
	blockTagOpen  = "{%"
	blockTagClose = "%}"
)

// parseBlockTag strips the {% %} delimiters from tag and returns the
// trimmed interior.
func parseBlockTag(tag string) (string, error) {
	if !strings.HasPrefix(tag, blockTagOpen) || !strings.HasSuffix(tag, blockTagClose) {
		return "", ErrInvalidTag.
			With(slog.String("reason", "tag must be enclosed with {% %}"),
				slog.String("tag", tag))
	}

	return strings.TrimSpace(tag[len(blockTagOpen) : len(tag)-len(blockTagClose)]), nil
}

// parseKeywordTag strips the {% %} delimiters from tag and returns the
// remainder following the given keyword and at least one space.
func parseKeywordTag(tag, keyword string) (string, error) {
	body, err := parseBlockTag(tag)
	if err != nil {
		return "", err
	}

	rest, ok := strings.CutPrefix(body, keyword+" ")
	if !ok {
		return "", ErrInvalidTag.
			With(slog.String("reason", "tag must begin with keyword "+keyword),
				slog.String("tag", tag))
	}

	return strings.TrimLeft(rest, " \t"), nil
}

// ParseValueTag parses a substitution tag like "{$ user.name }" into a
// ValueNode. The interior is whitespace-trimmed and must match the path
// grammar.
func ParseValueTag(tag string) (*ValueNode, error) {
	if !strings.HasPrefix(tag, valueTagOpen) || !strings.HasSuffix(tag, valueTagClose) {
		return nil, ErrInvalidTag.
			With(slog.String("reason", "tag must be enclosed with {$ }"),
				slog.String("tag", tag))
	}

	name := strings.TrimSpace(tag[len(valueTagOpen) : len(tag)-len(valueTagClose)])

	return NewValueNode(name)
}

// ParseIfTag parses a condition tag like "{% if user.name %}" into an
// IfNode.
func ParseIfTag(tag string) (*IfNode, error) {
	name, err := parseKeywordTag(tag, "if")
	if err != nil {
		return nil, err
	}

	return NewIfNode(name)
}

// ParseElifTag parses a chain-continuation tag like "{% elif alt %}" into
// an ElifNode.
func ParseElifTag(tag string) (*ElifNode, error) {
	name, err := parseKeywordTag(tag, "elif")
	if err != nil {
		return nil, err
	}

	return NewElifNode(name)
}

// ParseElseTag parses an unconditional terminator tag "{% else %}" into an
// ElseNode. No trailing content is permitted after the keyword.
func ParseElseTag(tag string) (*ElseNode, error) {
	body, err := parseBlockTag(tag)
	if err != nil {
		return nil, err
	}

	if body != "else" {
		return nil, ErrInvalidTag.
			With(slog.String("reason", "tag must contain only the keyword else"),
				slog.String("tag", tag))
	}

	return NewElseNode(), nil
}

// ParseForTag parses a loop tag like "{% for items as item %}" into a
// ForNode. The trimmed interior must split on single spaces into exactly
// the four tokens "for", source, "as", alias; any other shape fails with
// ErrExpressionSyntax.
func ParseForTag(tag string) (*ForNode, error) {
	body, err := parseBlockTag(tag)
	if err != nil {
		return nil, err
	}

	tokens := strings.Split(body, " ")
	if len(tokens) != 4 || tokens[0] != "for" || tokens[2] != "as" {
		return nil, ErrExpressionSyntax.
			With(slog.String("reason", "tag must have the form: for <source> as <alias>"),
				slog.String("tag", tag))
	}

	return NewForNode(tokens[1], tokens[3])
}
