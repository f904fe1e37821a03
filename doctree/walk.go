package doctree

// WalkStatus allows NodeVisitor to have some control over the tree traversal.
// It is returned from NodeVisitor and different values allow Node.Walk to
// decide which node to go to next.
type WalkStatus int

const (
	GoToNext     WalkStatus = iota // The default traversal of every node.
	SkipChildren                   // Skips all children and the exit call of current node.
	Terminate                      // Terminates the traversal.
)

// NodeVisitor is a callback to be called when traversing the syntax tree.
// Called twice for every node: once with entering=true when the branch is
// first visited, then with entering=false after all the children are done.
type NodeVisitor func(node *Node, entering bool) WalkStatus

func (root *Node) Walk(visitor NodeVisitor) {
	walker := NewNodeWalker(root)
	node, entering := walker.next()
	for node != nil {
		status := visitor(node, entering)
		switch status {
		case GoToNext:
			node, entering = walker.next()
		case SkipChildren:
			node, entering = walker.resumeAt(node, false)
		case Terminate:
			return
		}
	}
}

type NodeWalker struct {
	current  *Node
	root     *Node
	entering bool
}

func NewNodeWalker(root *Node) *NodeWalker {
	return &NodeWalker{
		current:  root,
		root:     nil,
		entering: true,
	}
}

func (nw *NodeWalker) next() (*Node, bool) {
	if nw.current == nil {
		return nil, false
	}
	if nw.root == nil {
		nw.root = nw.current
		return nw.current, nw.entering
	}
	switch {
	case nw.entering && nw.current.FirstChild != nil:
		nw.current = nw.current.FirstChild
	case nw.entering:
		// leaves are left right after they are entered
		nw.entering = false
	case nw.current == nw.root:
		nw.current = nil
		return nil, false
	case nw.current.Next == nil:
		nw.current = nw.current.Parent
	default:
		nw.current = nw.current.Next
		nw.entering = true
	}
	return nw.current, nw.entering
}

func (nw *NodeWalker) resumeAt(node *Node, entering bool) (*Node, bool) {
	nw.current = node
	nw.entering = entering
	return nw.next()
}
