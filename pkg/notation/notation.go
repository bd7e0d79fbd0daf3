// Package notation reads and writes the bracket notation used to describe
// netforest trees.
//
// # Grammar
//
//	tree  := "(" ADDR (" " child)+ ")"
//	child := ADDR | tree
//
// ADDR is a canonical dotted-quad address (see [address.Parse]). Tokens are
// separated by exactly one space, there is no leading or trailing whitespace,
// and nothing may follow the outermost closing bracket. Every group names its
// node first, followed by at least one child:
//
//	(85.193.148.81 34.49.145.239 (141.255.1.133 0.146.197.108 122.117.67.158))
//
// # Canonical Form
//
// [Format] always lists children in ascending address order, so two trees with
// the same shape and root format identically regardless of construction
// order. Parse accepts children in any order.
package notation

import (
	"fmt"
	"strings"

	"github.com/matzehuels/netforest/pkg/address"
	"github.com/matzehuels/netforest/pkg/errors"
	"github.com/matzehuels/netforest/pkg/tree"
)

// Parse builds a tree from bracket notation.
//
// All failures carry [errors.ErrCodeInvalidNotation]. An embedded address that
// fails [address.Parse] is wrapped as the cause, so the error also matches
// [errors.ErrCodeInvalidAddress].
func Parse(text string) (*tree.Node, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New(errors.ErrCodeInvalidNotation, "empty notation")
	}
	p := &parser{src: text, seen: make(map[address.Address]int)}
	root, err := p.group()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.src) {
		return nil, p.errorf("unexpected %q after tree", p.src[p.pos:])
	}
	return root, nil
}

// Validate reports whether text is well-formed bracket notation.
func Validate(text string) error {
	_, err := Parse(text)
	return err
}

// Format renders the tree rooted at root in canonical bracket notation. A
// single node formats as its bare address. The tree is not modified.
func Format(root *tree.Node) string {
	if root == nil {
		return ""
	}
	var b strings.Builder
	write(&b, root)
	return strings.TrimPrefix(b.String(), " ")
}

func write(b *strings.Builder, n *tree.Node) {
	if n.IsLeaf() {
		b.WriteByte(' ')
		b.WriteString(n.Address().String())
		return
	}
	b.WriteString(" (")
	b.WriteString(n.Address().String())
	for _, c := range n.SortedChildren() {
		write(b, c)
	}
	b.WriteByte(')')
}

type parser struct {
	src  string
	pos  int
	seen map[address.Address]int // address -> offset of first occurrence
}

func (p *parser) errorf(format string, args ...any) *errors.Error {
	return errors.New(errors.ErrCodeInvalidNotation, "%s at offset %d", fmt.Sprintf(format, args...), p.pos)
}

func (p *parser) peek() byte {
	if p.pos < len(p.src) {
		return p.src[p.pos]
	}
	return 0
}

func (p *parser) expect(c byte) error {
	if p.peek() != c {
		if p.pos >= len(p.src) {
			return p.errorf("expected %q, got end of input", c)
		}
		return p.errorf("expected %q, got %q", c, p.peek())
	}
	p.pos++
	return nil
}

// group parses "(" ADDR (" " child)+ ")".
func (p *parser) group() (*tree.Node, error) {
	if err := p.expect('('); err != nil {
		return nil, err
	}
	addr, err := p.address()
	if err != nil {
		return nil, err
	}

	var children []*tree.Node
	for p.peek() == ' ' {
		p.pos++
		var child *tree.Node
		if p.peek() == '(' {
			child, err = p.group()
		} else {
			var a address.Address
			a, err = p.address()
			child = tree.New(a)
		}
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	if len(children) == 0 {
		return nil, p.errorf("group %s has no children", addr)
	}
	if err := p.expect(')'); err != nil {
		return nil, err
	}
	return tree.New(addr, children...), nil
}

// address reads one token up to the next space or bracket.
func (p *parser) address() (address.Address, error) {
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == ' ' || c == '(' || c == ')' {
			break
		}
		p.pos++
	}
	tok := p.src[start:p.pos]
	if tok == "" {
		p.pos = start
		if p.pos >= len(p.src) {
			return address.Address{}, p.errorf("expected address, got end of input")
		}
		return address.Address{}, p.errorf("expected address, got %q", p.src[p.pos])
	}

	a, err := address.Parse(tok)
	if err != nil {
		p.pos = start
		return address.Address{}, errors.Wrap(errors.ErrCodeInvalidNotation, err, "bad address at offset %d", start)
	}
	if first, dup := p.seen[a]; dup {
		p.pos = start
		return address.Address{}, p.errorf("address %s already used at offset %d", a, first)
	}
	p.seen[a] = start
	return a, nil
}
