// Package regex implements the regular expression surface of the lexer
// generator: a recursive descent parser producing a small AST, and the
// translation of that AST into a Thompson NFA.
package regex

import (
	"fmt"

	"github.com/gnolang/lexgen/charset"
)

// Op discriminates the AST node variants.
type Op uint8

const (
	OpInvalid Op = iota
	OpAtom
	OpAlternative
	OpConcatenation
	OpKleene
	OpPositiveKleene
	OpOptional
)

// Node is one node of a regular expression tree. Which fields are
// meaningful depends on Op: Set for OpAtom, Left and Right for the binary
// variants, Left alone for the postfix variants.
type Node struct {
	Op    Op
	Set   charset.Set
	Left  *Node
	Right *Node
}

func Atom(set charset.Set) *Node { return &Node{Op: OpAtom, Set: set} }

func Alternative(left, right *Node) *Node {
	return &Node{Op: OpAlternative, Left: left, Right: right}
}

func Concatenation(left, right *Node) *Node {
	return &Node{Op: OpConcatenation, Left: left, Right: right}
}

func Kleene(exp *Node) *Node { return &Node{Op: OpKleene, Left: exp} }

func PositiveKleene(exp *Node) *Node { return &Node{Op: OpPositiveKleene, Left: exp} }

func Optional(exp *Node) *Node { return &Node{Op: OpOptional, Left: exp} }

// String renders the tree in the constructor-like debug form, e.g.
// "Alternative(Atom('a'), Atom('b'))". Atom sets print as contiguous
// ranges, so "[a-zA-Z]" renders as "Atom('A' - 'Z', 'a' - 'z')".
func (n *Node) String() string {
	switch n.Op {
	case OpAtom:
		return fmt.Sprintf("Atom(%s)", n.Set)
	case OpAlternative:
		return fmt.Sprintf("Alternative(%s, %s)", n.Left, n.Right)
	case OpConcatenation:
		return fmt.Sprintf("Concatenation(%s, %s)", n.Left, n.Right)
	case OpKleene:
		return fmt.Sprintf("Kleene(%s)", n.Left)
	case OpPositiveKleene:
		return fmt.Sprintf("PositiveKleene(%s)", n.Left)
	case OpOptional:
		return fmt.Sprintf("Optional(%s)", n.Left)
	default:
		return "Invalid"
	}
}
