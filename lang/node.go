package lang

import (
	"errors"
	"io"
	"log/slog"
	"maps"
)

// NodeType identifies the concrete kind of a template node.
type NodeType int

const (
	NodeInvalid NodeType = iota
	NodeText
	NodeValue
	NodeIf
	NodeElif
	NodeElse
	NodeFor
)

// String returns the lowercase name of the node type.
func (t NodeType) String() string {
	switch t {
	case NodeText:
		return "text"
	case NodeValue:
		return "value"
	case NodeIf:
		return "if"
	case NodeElif:
		return "elif"
	case NodeElse:
		return "else"
	case NodeFor:
		return "for"
	default:
		return "invalid"
	}
}

// Node is a single element of a parsed template tree.
//
// Evaluate renders the node against the mapping kv, writing its expansion
// to w. Container nodes receive their body via SetChildren during parsing;
// leaf nodes fail SetChildren with ErrNoChildren.
type Node interface {
	Evaluate(w io.Writer, kv Map) error
	SetChildren(children []Node) error
	Type() NodeType
}

// TextNode emits a literal run of template text unchanged.
type TextNode struct {
	text string
}

// NewTextNode returns a leaf node that writes text verbatim.
func NewTextNode(text string) *TextNode {
	return &TextNode{text: text}
}

func (n *TextNode) Evaluate(w io.Writer, _ Map) error {
	if _, err := io.WriteString(w, n.text); err != nil {
		return NewError("write text").Wrap(err)
	}

	return nil
}

func (n *TextNode) SetChildren([]Node) error {
	return ErrNoChildren.With(slog.String("node", n.Type().String()))
}

func (n *TextNode) Type() NodeType { return NodeText }

// ValueNode substitutes the scalar text a path expression resolves to.
// A name absent from the mapping expands to the empty string; every other
// resolution failure propagates.
type ValueNode struct {
	name string
}

// NewValueNode returns a leaf node that substitutes the value of the path
// expression name. The name must match the path grammar.
func NewValueNode(name string) (*ValueNode, error) {
	if !isValidNameExpression(name) {
		return nil, ErrInvalidTag.
			With(slog.String("reason", "name contains invalid characters"),
				slog.String("name", name))
	}

	return &ValueNode{name: name}, nil
}

func (n *ValueNode) Evaluate(w io.Writer, kv Map) error {
	text, err := ResolveText(n.name, kv)
	if err != nil {
		if errors.Is(err, ErrMissingTag) {
			return nil
		}

		return err
	}

	if _, err := io.WriteString(w, text); err != nil {
		return NewError("write value").Wrap(err)
	}

	return nil
}

func (n *ValueNode) SetChildren([]Node) error {
	return ErrNoChildren.With(slog.String("node", n.Type().String()))
}

func (n *ValueNode) Type() NodeType { return NodeValue }

// IfNode renders its body when a path expression resolves successfully
// against the mapping. Any elif/else continuation of the chain is stored
// nested at the tail of the children: evaluation renders children up to
// the first NodeElif/NodeElse when the condition holds, and hands off to
// that first continuation node otherwise.
type IfNode struct {
	name     string
	children []Node
}

// NewIfNode returns a container node conditioned on the path expression
// name resolving against the mapping.
func NewIfNode(name string) (*IfNode, error) {
	if !isValidNameExpression(name) {
		return nil, ErrInvalidTag.
			With(slog.String("reason", "name contains invalid characters"),
				slog.String("name", name))
	}

	return &IfNode{name: name}, nil
}

func (n *IfNode) Evaluate(w io.Writer, kv Map) error {
	_, err := Resolve(n.name, kv)
	if err == nil {
		for _, child := range n.children {
			if t := child.Type(); t == NodeElif || t == NodeElse {
				break
			}

			if err := child.Evaluate(w, kv); err != nil {
				return err
			}
		}

		return nil
	}

	for _, child := range n.children {
		if t := child.Type(); t == NodeElif || t == NodeElse {
			return child.Evaluate(w, kv)
		}
	}

	return nil
}

func (n *IfNode) SetChildren(children []Node) error {
	n.children = children

	return nil
}

func (n *IfNode) Type() NodeType { return NodeIf }

// ElifNode continues an if chain with another condition. It evaluates
// exactly like IfNode and differs only in type, which the parser uses to
// reject a chain continuation outside an if body.
type ElifNode struct {
	IfNode
}

// NewElifNode returns a chain-continuation node conditioned on the path
// expression name.
func NewElifNode(name string) (*ElifNode, error) {
	inner, err := NewIfNode(name)
	if err != nil {
		return nil, err
	}

	return &ElifNode{IfNode: *inner}, nil
}

func (n *ElifNode) Type() NodeType { return NodeElif }

// ElseNode terminates an if chain, rendering its body unconditionally
// when reached.
type ElseNode struct {
	children []Node
}

// NewElseNode returns the unconditional terminator of an if chain.
func NewElseNode() *ElseNode {
	return &ElseNode{}
}

func (n *ElseNode) Evaluate(w io.Writer, kv Map) error {
	for _, child := range n.children {
		if err := child.Evaluate(w, kv); err != nil {
			return err
		}
	}

	return nil
}

func (n *ElseNode) SetChildren(children []Node) error {
	n.children = children

	return nil
}

func (n *ElseNode) Type() NodeType { return NodeElse }

// ForNode renders its body once per element of the list a path expression
// resolves to, binding each element to an alias name visible only inside
// the body.
type ForNode struct {
	source   string
	alias    string
	children []Node
}

// NewForNode returns a container node iterating the list at the path
// expression source, binding each element to alias. The source must match
// the path grammar and the alias the plain-name grammar.
func NewForNode(source, alias string) (*ForNode, error) {
	if !isValidNameExpression(source) {
		return nil, ErrInvalidTag.
			With(slog.String("reason", "source contains invalid characters"),
				slog.String("source", source))
	}

	if !isValidName(alias) {
		return nil, ErrInvalidTag.
			With(slog.String("reason", "alias contains invalid characters"),
				slog.String("alias", alias))
	}

	return &ForNode{source: source, alias: alias}, nil
}

func (n *ForNode) Evaluate(w io.Writer, kv Map) error {
	items, err := ResolveList(n.source, kv)
	if err != nil {
		return err
	}

	if _, collides := kv[n.alias]; collides {
		return ErrInvalidTag.
			With(slog.String("reason", "loop alias shadows an existing name"),
				slog.String("alias", n.alias))
	}

	for _, item := range items {
		// Each iteration binds the alias in a copy so the loop body cannot
		// leak it into the caller's mapping.
		scope := maps.Clone(kv)
		if scope == nil {
			scope = Map{}
		}

		scope[n.alias] = item

		for _, child := range n.children {
			if err := child.Evaluate(w, scope); err != nil {
				return err
			}
		}
	}

	return nil
}

func (n *ForNode) SetChildren(children []Node) error {
	n.children = children

	return nil
}

func (n *ForNode) Type() NodeType { return NodeFor }
