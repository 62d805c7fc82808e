package css

import (
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	tdcss "github.com/tdewolff/parse/v2/css"
)

// NodeType classifies a single node of a parsed declaration value.
type NodeType int

const (
	NodeWord     NodeType = iota // identifiers, numbers, dimensions, hex colors, operators
	NodeFunction                 // name( ... ), Value holds the name without the parenthesis
	NodeDiv                      // separators: comma, slash
	NodeSpace                    // run of whitespace, kept verbatim
	NodeComment                  // /* ... */, kept verbatim
)

// Node is one element of a declaration value tree. Function nodes own
// their argument nodes, everything else is a leaf. Value holds the raw
// source text.
type Node struct {
	Type   NodeType
	Value  string
	Nodes  []*Node
	Offset int // byte offset of the node start within the parsed value
}

// NewWord returns a word leaf at the given offset.
func NewWord(value string, offset int) *Node {
	return &Node{Type: NodeWord, Value: value, Offset: offset}
}

// Clone returns a deep copy of the node.
func (n *Node) Clone() *Node {
	c := &Node{Type: n.Type, Value: n.Value, Offset: n.Offset}
	if len(n.Nodes) > 0 {
		c.Nodes = CloneNodes(n.Nodes)
	}
	return c
}

// CloneNodes deep-copies a node list.
func CloneNodes(nodes []*Node) []*Node {
	out := make([]*Node, len(nodes))
	for i, n := range nodes {
		out[i] = n.Clone()
	}
	return out
}

func (n *Node) appendTo(b *strings.Builder) {
	switch n.Type {
	case NodeFunction:
		b.WriteString(n.Value)
		b.WriteByte('(')
		for _, child := range n.Nodes {
			child.appendTo(b)
		}
		b.WriteByte(')')
	default:
		b.WriteString(n.Value)
	}
}

// String reassembles the node back into CSS source text.
func (n *Node) String() string {
	var b strings.Builder
	n.appendTo(&b)
	return b.String()
}

// Raw reassembles a node list back into CSS source text.
func Raw(nodes []*Node) string {
	var b strings.Builder
	for _, n := range nodes {
		n.appendTo(&b)
	}
	return b.String()
}

// ParseValue tokenizes a declaration value into a node tree. Functions
// become nested nodes, everything else stays flat and verbatim so that
// Raw reproduces the input exactly.
func ParseValue(s string) ([]*Node, error) {
	l := tdcss.NewLexer(parse.NewInput(strings.NewReader(s)))

	root := &Node{Type: NodeFunction}
	stack := []*Node{root}
	offset := 0

	for {
		tt, data := l.Next()
		text := string(data)
		top := stack[len(stack)-1]

		switch tt {
		case tdcss.ErrorToken:
			if err := l.Err(); err != nil && err != io.EOF {
				return nil, fmt.Errorf("unable to tokenize value %q: %w", s, err)
			}
			if len(stack) > 1 {
				return nil, fmt.Errorf("unbalanced parentheses in value %q", s)
			}
			return root.Nodes, nil
		case tdcss.FunctionToken:
			fn := &Node{Type: NodeFunction, Value: strings.TrimSuffix(text, "("), Offset: offset}
			top.Nodes = append(top.Nodes, fn)
			stack = append(stack, fn)
		case tdcss.LeftParenthesisToken:
			// bare parenthesized group, modeled as a nameless function
			fn := &Node{Type: NodeFunction, Offset: offset}
			top.Nodes = append(top.Nodes, fn)
			stack = append(stack, fn)
		case tdcss.RightParenthesisToken:
			if len(stack) == 1 {
				return nil, fmt.Errorf("unbalanced parentheses in value %q", s)
			}
			stack = stack[:len(stack)-1]
		case tdcss.WhitespaceToken:
			top.Nodes = append(top.Nodes, &Node{Type: NodeSpace, Value: text, Offset: offset})
		case tdcss.CommentToken:
			top.Nodes = append(top.Nodes, &Node{Type: NodeComment, Value: text, Offset: offset})
		case tdcss.CommaToken:
			top.Nodes = append(top.Nodes, &Node{Type: NodeDiv, Value: text, Offset: offset})
		case tdcss.DelimToken:
			if text == "/" {
				top.Nodes = append(top.Nodes, &Node{Type: NodeDiv, Value: text, Offset: offset})
			} else {
				top.Nodes = append(top.Nodes, &Node{Type: NodeWord, Value: text, Offset: offset})
			}
		default:
			top.Nodes = append(top.Nodes, &Node{Type: NodeWord, Value: text, Offset: offset})
		}
		offset += len(text)
	}
}
