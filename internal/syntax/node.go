package syntax

// Kind classifies a node for signature construction and rule checks.
type Kind int

const (
	KindFile Kind = iota
	KindClassOrObject
	KindFunction
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindClassOrObject:
		return "class"
	case KindFunction:
		return "function"
	default:
		return "other"
	}
}

// File describes the source file owning a node tree.
type File struct {
	Package string // package-qualified name, "" in the default package
	Name    string // leaf file name, never a path
	Source  []byte
}

// Node is one element of a parsed file's tree. The language front end
// builds the tree once; nodes are read-only afterwards, so signature
// computation over them is a pure function.
type Node struct {
	Kind Kind
	Name string // declared identifier, "" when the declaration is anonymous

	StartByte uint32
	EndByte   uint32
	// DeclStart is StartByte advanced past leading comment trivia.
	DeclStart uint32
	StartLine int // 1-based
	EndLine   int

	// Function declarations only.
	ParamsEnd     uint32 // end offset of the parameter list, 0 when absent
	ReturnTypeEnd uint32 // end offset of the return type annotation, 0 when absent
	ParamCount    int

	// Class and object declarations only.
	TypeParams []string // verbatim type parameter texts
	Supertypes []string // simple names of referenced supertypes, declaration order

	Parent   *Node
	Children []*Node
	File     *File
}

// Raw returns the verbatim source slice covered by the node.
func (n *Node) Raw() string {
	if n.File == nil || n.StartByte >= n.EndByte || int(n.EndByte) > len(n.File.Source) {
		return ""
	}
	return string(n.File.Source[n.StartByte:n.EndByte])
}

// Ancestors returns the parent chain from innermost to outermost.
func (n *Node) Ancestors() []*Node {
	var out []*Node
	for p := n.Parent; p != nil; p = p.Parent {
		out = append(out, p)
	}
	return out
}

// Walk visits n and every descendant in depth-first declaration order.
func (n *Node) Walk(visit func(*Node)) {
	visit(n)
	for _, child := range n.Children {
		child.Walk(visit)
	}
}
