// Package lang implements a small tag-based text templating language: a
// value model, a path resolver, a polymorphic node tree, and the parsers
// that build the tree from template source.
//
// # Template syntax
//
// Templates are plain text with embedded tags:
//
//	Hello, {$ user.name }!
//	{% if user.admin %}You are an administrator.{% endif %}
//	{% for servers as server %}{$ server.hostname }
//	{% endfor %}
//
// A substitution tag {$ path } expands to the string the path resolves to
// in the render context, or to nothing when the name is absent. Condition
// tags {% if path %} ... {% elif path %} ... {% else %} ... {% endif %}
// select the first branch whose path resolves. Loop tags
// {% for path as alias %} ... {% endfor %} render the body once per list
// element with the element bound to alias.
//
// A literal brace before tag-like text is written "{\": the brace is kept
// and one backslash is stripped. Braces not followed by $, %, or a
// backslash pass through unchanged, as do tags left unterminated at end
// of input.
//
// # Paths
//
// Paths address values in a nested mapping: segments are joined with '.'
// and an individual segment may carry one 0-based list index, as in
// "config.servers[1].name". Names use the characters [A-Za-z0-9_-].
//
// # Rendering
//
// A context is a Map of name to *Value, where a Value is a string scalar,
// an ordered list, or a nested mapping. Values are shared handles: lists
// and mappings are referenced across scopes without copying. Parsed
// Templates are immutable and may render concurrently against
// independent contexts and output sinks.
package lang
