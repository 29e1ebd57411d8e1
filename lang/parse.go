package lang

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/klauspost/readahead"

	"github.com/ardnew/templet/log"
)

// ParseReader parses a template from an io.Reader. The reader is wrapped
// with asynchronous read-ahead so input is pre-fetched while previous
// chunks are processed.
func ParseReader(
	ctx context.Context,
	r io.Reader,
	opts ...Option,
) (*Template, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrReadInput.Wrap(err).
			With(slog.String("source", "reader"))
	}

	return ParseString(ctx, string(data), opts...)
}

// ParseString parses template source text into a Template. Parsed node
// trees are cached by source hash, so parsing the same source again is a
// lookup rather than a re-parse.
func ParseString(
	ctx context.Context,
	source string,
	opts ...Option,
) (*Template, error) {
	tpl := &Template{source: source}
	for _, opt := range opts {
		opt(tpl)
	}

	nodes, cacheHit, err := cachedNodes(ctx, source, tpl.logger)
	if err != nil {
		return nil, err
	}

	tpl.nodes = nodes

	tpl.logger.TraceContext(ctx, "parse complete",
		slog.Int("node_count", len(nodes)),
		slog.Bool("cache_hit", cacheHit))

	return tpl, nil
}

// terminator identifies the control tag that ended a parsing level.
type terminator int

const (
	termEOF terminator = iota
	termEndIf
	termEndFor
	termElif
	termElse
)

// parser holds tokenizer state over one template source.
type parser struct {
	ctx    context.Context
	source string
	pos    int
	logger log.Logger
}

// parse tokenizes the entire source into a top-level node list. A chain
// or block terminator with no open block to close is rejected.
func (p *parser) parse() ([]Node, error) {
	nodes, term, _, err := p.parseBody()
	if err != nil {
		return nil, err
	}

	if term != termEOF {
		return nil, ErrInvalidTag.
			With(slog.String("reason", "tag closes no open block"))
	}

	return nodes, nil
}

// parseBody tokenizes nodes until a control terminator or end of input.
// For elif terminators the full tag text is returned so the caller can
// construct the continuation node.
func (p *parser) parseBody() ([]Node, terminator, string, error) {
	var nodes []Node

	for p.pos < len(p.source) {
		if err := p.ctx.Err(); err != nil {
			return nil, termEOF, "", NewError("parse canceled").Wrap(err)
		}

		rest := p.source[p.pos:]

		brace := strings.IndexByte(rest, '{')
		if brace < 0 {
			nodes = append(nodes, NewTextNode(rest))
			p.pos = len(p.source)

			break
		}

		if brace > 0 {
			nodes = append(nodes, NewTextNode(rest[:brace]))
			p.pos += brace
			rest = rest[brace:]
		}

		// rest begins at '{'. A lone brace at end of input is literal.
		if len(rest) < 2 {
			nodes = append(nodes, NewTextNode("{"))
			p.pos = len(p.source)

			break
		}

		switch rest[1] {
		case '\\':
			// Escape: emit a literal brace and strip one backslash.
			nodes = append(nodes, NewTextNode("{"))
			p.pos += 2

		case '$':
			end := strings.Index(rest, valueTagClose)
			if end < 0 {
				// Unterminated tag at end of input stays verbatim.
				nodes = append(nodes, NewTextNode(rest))
				p.pos = len(p.source)

				break
			}

			node, err := ParseValueTag(rest[:end+len(valueTagClose)])
			if err != nil {
				return nil, termEOF, "", err
			}

			nodes = append(nodes, node)
			p.pos += end + len(valueTagClose)

		case '%':
			end := strings.Index(rest, blockTagClose)
			if end < 0 {
				nodes = append(nodes, NewTextNode(rest))
				p.pos = len(p.source)

				break
			}

			tag := rest[:end+len(blockTagClose)]
			p.pos += len(tag)

			done, term, err := p.parseBlockNode(tag, &nodes)
			if err != nil {
				return nil, termEOF, "", err
			}

			if done {
				return nodes, term, tag, nil
			}

		default:
			// Unrecognized sequence passes through as literal text.
			nodes = append(nodes, NewTextNode("{"))
			p.pos++
		}
	}

	return nodes, termEOF, "", nil
}

// parseBlockNode dispatches one {% %} tag: container keywords append a
// fully built node to nodes, terminator keywords report the level done.
func (p *parser) parseBlockNode(
	tag string,
	nodes *[]Node,
) (bool, terminator, error) {
	body, err := parseBlockTag(tag)
	if err != nil {
		return false, termEOF, err
	}

	keyword, _, _ := strings.Cut(body, " ")

	p.logger.TraceContext(p.ctx, "block tag",
		slog.String("keyword", keyword),
		slog.Int("offset", p.pos-len(tag)))

	switch keyword {
	case "if":
		node, err := ParseIfTag(tag)
		if err != nil {
			return false, termEOF, err
		}

		children, err := p.parseIfChain()
		if err != nil {
			return false, termEOF, err
		}

		if err := node.SetChildren(children); err != nil {
			return false, termEOF, err
		}

		*nodes = append(*nodes, node)

	case "for":
		node, err := ParseForTag(tag)
		if err != nil {
			return false, termEOF, err
		}

		children, term, _, err := p.parseBody()
		if err != nil {
			return false, termEOF, err
		}

		// An unclosed loop body extends to end of input.
		if term != termEndFor && term != termEOF {
			return false, termEOF, ErrInvalidTag.
				With(slog.String("reason", "tag closes no open block"),
					slog.String("tag", tag))
		}

		if err := node.SetChildren(children); err != nil {
			return false, termEOF, err
		}

		*nodes = append(*nodes, node)

	case "elif":
		return true, termElif, nil

	case "else":
		if _, err := ParseElseTag(tag); err != nil {
			return false, termEOF, err
		}

		return true, termElse, nil

	case "endif":
		return true, termEndIf, nil

	case "endfor":
		return true, termEndFor, nil

	default:
		return false, termEOF, ErrInvalidTag.
			With(slog.String("reason", "unrecognized tag keyword"),
				slog.String("keyword", keyword),
				slog.String("tag", tag))
	}

	return false, termEOF, nil
}

// parseIfChain tokenizes the body of an if (or elif) up to its chain
// continuation or end, nesting any continuation node at the tail of the
// returned children. An unclosed chain extends to end of input.
func (p *parser) parseIfChain() ([]Node, error) {
	body, term, tag, err := p.parseBody()
	if err != nil {
		return nil, err
	}

	switch term {
	case termEndIf, termEOF:
		return body, nil

	case termElif:
		node, err := ParseElifTag(tag)
		if err != nil {
			return nil, err
		}

		children, err := p.parseIfChain()
		if err != nil {
			return nil, err
		}

		if err := node.SetChildren(children); err != nil {
			return nil, err
		}

		return append(body, node), nil

	case termElse:
		node := NewElseNode()

		children, elseTerm, _, err := p.parseBody()
		if err != nil {
			return nil, err
		}

		if elseTerm != termEndIf && elseTerm != termEOF {
			return nil, ErrInvalidTag.
				With(slog.String("reason", "chain tag after else"))
		}

		if err := node.SetChildren(children); err != nil {
			return nil, err
		}

		return append(body, node), nil

	default:
		return nil, ErrInvalidTag.
			With(slog.String("reason", "tag closes no open block"))
	}
}
