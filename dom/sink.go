package dom

// TreeSink is the contract the tree construction stage uses to materialize
// nodes. The constructor never reaches for a concrete node type directly;
// it asks the sink to create, attach, and detach nodes. That keeps tree
// construction free of any particular DOM representation and makes the
// in-memory implementation below swappable for, say, a streaming sink that
// writes straight to a serializer.
//
// All operations are infallible except the two that could introduce a
// cycle (Append, InsertBefore); those panic with a *CycleError rather than
// silently corrupting the tree, since a cycle request means the tree
// constructor itself has a bug, not that the input was malformed.
type TreeSink interface {
	CreateElement(namespace, localName string) *Element
	CreateText(data string) *Text
	CreateComment(data string) *Comment
	CreateDoctype(name, publicID, systemID string) *DocumentType

	Append(parent, child Node)
	InsertBefore(parent, child, reference Node)
	AppendText(parent Node, data string)
	Detach(child Node)

	SameNode(a, b Node) bool
	ParentOf(child Node) Node

	SetQuirksMode(mode QuirksMode)
}

// CycleError is raised by a TreeSink when asked to attach a node under its
// own descendant. The parser guarantees it never issues such a request;
// seeing one means the constructor has a bug.
type CycleError struct {
	Parent Node
	Child  Node
}

func (e *CycleError) Error() string {
	return "dom: refusing to attach node that would create a cycle"
}

// DefaultSink is the in-memory TreeSink backing a *Document. It owns the
// "append with adjacent text coalescing" behavior described for
// append_text / InsertBefore in the tree sink contract, so callers never
// have to special-case consecutive Character tokens themselves.
type DefaultSink struct {
	doc *Document
}

// NewDefaultSink creates a TreeSink that materializes nodes into doc.
func NewDefaultSink(doc *Document) *DefaultSink {
	return &DefaultSink{doc: doc}
}

func (s *DefaultSink) CreateElement(namespace, localName string) *Element {
	if namespace == "" || namespace == NamespaceHTML {
		return NewElement(localName)
	}
	return NewElementNS(localName, namespace)
}

func (s *DefaultSink) CreateText(data string) *Text { return NewText(data) }

func (s *DefaultSink) CreateComment(data string) *Comment { return NewComment(data) }

func (s *DefaultSink) CreateDoctype(name, publicID, systemID string) *DocumentType {
	return NewDocumentType(name, publicID, systemID)
}

func (s *DefaultSink) Append(parent, child Node) {
	requireAcyclic(parent, child)
	if txt, ok := child.(*Text); ok {
		children := parent.Children()
		if n := len(children); n > 0 {
			if last, ok := children[n-1].(*Text); ok {
				last.Data += txt.Data
				return
			}
		}
	}
	parent.AppendChild(child)
}

func (s *DefaultSink) InsertBefore(parent, child, reference Node) {
	if reference == nil {
		s.Append(parent, child)
		return
	}
	requireAcyclic(parent, child)

	if txt, ok := child.(*Text); ok {
		if mergeTarget := siblingTextBefore(parent, reference); mergeTarget != nil {
			mergeTarget.Data += txt.Data
			return
		}
		if beforeText, ok := reference.(*Text); ok {
			beforeText.Data = txt.Data + beforeText.Data
			return
		}
	}
	parent.InsertBefore(child, reference)
}

func (s *DefaultSink) AppendText(parent Node, data string) {
	s.Append(parent, NewText(data))
}

func (s *DefaultSink) Detach(child Node) {
	if parent := child.Parent(); parent != nil {
		parent.RemoveChild(child)
	}
}

func (s *DefaultSink) SameNode(a, b Node) bool { return a == b }

func (s *DefaultSink) ParentOf(child Node) Node { return child.Parent() }

func (s *DefaultSink) SetQuirksMode(mode QuirksMode) { s.doc.QuirksMode = mode }

// requireAcyclic panics with *CycleError if attaching child under parent
// would make child its own ancestor.
func requireAcyclic(parent, child Node) {
	for n := parent; n != nil; n = n.Parent() {
		if n == child {
			panic(&CycleError{Parent: parent, Child: child})
		}
	}
}

func siblingTextBefore(parent Node, ref Node) *Text {
	children := parent.Children()
	for i := range children {
		if children[i] == ref {
			if i > 0 {
				if t, ok := children[i-1].(*Text); ok {
					return t
				}
			}
			return nil
		}
	}
	return nil
}
