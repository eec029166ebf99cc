package styledtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/restyle/dom/style"
	"github.com/npillmayer/restyle/token"
	"github.com/npillmayer/restyle/tree"
	"golang.org/x/net/html"
)

// StyNode is a style node, the building block of the styled tree.
//
// The class set and the pseudo-class state are replaced as a whole on
// change, never modified in place. Sets handed out by Classes and
// PseudoState therefore remain valid snapshots.
type StyNode struct {
	tree.Node[*StyNode] // we build on top of general purpose tree
	htmlNode            *html.Node
	label               string
	classes             token.Set[token.ClassKind]
	pseudo              token.Set[token.PseudoKind]
	styles              *style.Declarations // nil = not resolved since last invalidation
}

// NewNode creates a detached styled node with a list of style classes.
func NewNode(classes ...string) *StyNode {
	sn := &StyNode{}
	sn.Payload = sn // Payload will always reference the node itself
	sn.classes = token.NewSet(token.Classes(classes...)...)
	return sn
}

// NewNodeForHTMLNode creates a new styled node linked to an HTML node.
// Style classes are taken from the 'class' attribute of h.
func NewNodeForHTMLNode(h *html.Node) *StyNode {
	sn := NewNode()
	sn.htmlNode = h
	if h == nil {
		return sn
	}
	sn.label = h.Data
	for _, a := range h.Attr {
		switch a.Key {
		case "class":
			sn.classes = token.NewSet(token.Classes(strings.Fields(a.Val)...)...)
		case "id":
			sn.label = h.Data + "#" + a.Val
		}
	}
	return sn
}

// Node gets the styled node from a generic tree node.
func Node(n *tree.Node[*StyNode]) *StyNode {
	if n == nil {
		return nil
	}
	return n.Payload
}

// HTMLNode gets the HTML DOM node corresponding to this styled node, if any.
func (sn *StyNode) HTMLNode() *html.Node {
	return sn.htmlNode
}

// Label is a name for the node, used for tracing and debugging.
func (sn *StyNode) Label() string {
	return sn.label
}

// SetLabel sets a debugging name for the node.
// It returns the node to allow for chaining.
func (sn *StyNode) SetLabel(label string) *StyNode {
	sn.label = label
	return sn
}

// ID returns the value of the 'id' attribute of the HTML node, if any.
func (sn *StyNode) ID() string {
	if sn.htmlNode == nil {
		return ""
	}
	for _, a := range sn.htmlNode.Attr {
		if a.Key == "id" {
			return a.Val
		}
	}
	return ""
}

// --- Tree structure --------------------------------------------------------

// ParentNode returns the parent of sn, or nil for a root.
func (sn *StyNode) ParentNode() *StyNode {
	return Node(sn.Parent())
}

// ChildNodes returns the children of sn, in order.
func (sn *StyNode) ChildNodes() []*StyNode {
	chs := sn.Children()
	nodes := make([]*StyNode, len(chs))
	for i, ch := range chs {
		nodes[i] = ch.Payload
	}
	return nodes
}

// AppendChild appends ch as the last child of sn, detaching it from a
// previous parent. It returns sn to allow for chaining.
func (sn *StyNode) AppendChild(ch *StyNode) *StyNode {
	if ch != nil {
		sn.AddChild(&ch.Node)
	}
	return sn
}

// InsertNodeAt inserts ch as child number i of sn, detaching it from a
// previous parent. It returns sn to allow for chaining.
func (sn *StyNode) InsertNodeAt(i int, ch *StyNode) *StyNode {
	if ch != nil {
		sn.InsertChildAt(i, &ch.Node)
	}
	return sn
}

// Detach removes sn from its parent. It returns the former parent.
func (sn *StyNode) Detach() *StyNode {
	parent := sn.ParentNode()
	sn.Isolate()
	return parent
}

// Find returns the first node in the subtree rooted at sn (sn included,
// pre-order) for which pred holds.
func (sn *StyNode) Find(pred func(*StyNode) bool) *StyNode {
	var found *StyNode
	tree.Walk(&sn.Node, func(n *tree.Node[*StyNode], _ int) bool {
		if found == nil && pred(n.Payload) {
			found = n.Payload
		}
		return found == nil
	})
	return found
}

// --- Classes and pseudo-classes --------------------------------------------

// Classes returns the style classes of sn.
func (sn *StyNode) Classes() token.Set[token.ClassKind] {
	return sn.classes
}

// HasClass checks if sn carries style class c.
func (sn *StyNode) HasClass(c token.StyleClass) bool {
	return sn.classes.Contains(c)
}

// AddStyleClass adds a style class and reports if the class set changed.
func (sn *StyNode) AddStyleClass(c token.StyleClass) bool {
	if c.IsZero() || sn.classes.Contains(c) {
		return false
	}
	sn.classes = sn.classes.With(c, true)
	return true
}

// RemoveStyleClass removes a style class and reports if the class set changed.
func (sn *StyNode) RemoveStyleClass(c token.StyleClass) bool {
	if !sn.classes.Contains(c) {
		return false
	}
	sn.classes = sn.classes.With(c, false)
	return true
}

// PseudoState returns the set of pseudo-classes currently active for sn.
func (sn *StyNode) PseudoState() token.Set[token.PseudoKind] {
	return sn.pseudo
}

// HasPseudoClass checks if pseudo-class pc is active for sn.
func (sn *StyNode) HasPseudoClass(pc token.PseudoClass) bool {
	return sn.pseudo.Contains(pc)
}

// SetPseudoClass activates or deactivates pseudo-class pc. It reports
// whether the state has changed; setting a value already in effect is a
// no-op.
func (sn *StyNode) SetPseudoClass(pc token.PseudoClass, active bool) bool {
	if pc.IsZero() || sn.pseudo.Contains(pc) == active {
		return false
	}
	sn.pseudo = sn.pseudo.With(pc, active)
	tracer().Debugf("%s: pseudo-class %s set to %v", sn, pc, active)
	return true
}

// --- Styles ----------------------------------------------------------------

// Styles returns the declaration block applied to sn. It is nil if the
// node has not been styled since it was last invalidated.
func (sn *StyNode) Styles() *style.Declarations {
	return sn.styles
}

// SetStyles sets the declaration block applied to sn.
func (sn *StyNode) SetStyles(styles *style.Declarations) {
	sn.styles = styles
}

func (sn *StyNode) String() string {
	if sn == nil {
		return "<nil node>"
	}
	name := sn.label
	if name == "" {
		name = "node"
	}
	if sn.pseudo.IsEmpty() {
		return name + classNames(sn.classes)
	}
	return fmt.Sprintf("%s%s%s", name, classNames(sn.classes), sn.pseudo)
}

func classNames(cs token.Set[token.ClassKind]) string {
	var sb strings.Builder
	for _, c := range cs.Members() {
		sb.WriteString(c.String())
	}
	return sb.String()
}
