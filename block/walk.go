package block

// Visitor defines the interface for block tree traversal. If Visit returns
// nil, children of the block are not visited. Otherwise, the returned Visitor
// is used to visit children.
type Visitor interface {
	Visit(b *Block) (w Visitor)
}

// Walk traverses a block tree in depth-first order. It starts by calling
// v.Visit(b); if the returned visitor w is not nil, Walk is invoked
// recursively with visitor w for each connected child of b, in socket order.
func Walk(v Visitor, b *Block) {
	if b == nil {
		return
	}
	if v = v.Visit(b); v == nil {
		return
	}
	for _, name := range b.Sockets() {
		if child := b.Input(name); child != nil {
			Walk(v, child)
		}
	}
}

// WalkProgram walks every top-level block of p in order.
func WalkProgram(v Visitor, p *Program) {
	for _, b := range p.Blocks {
		Walk(v, b)
	}
}

type inspector func(*Block) bool

func (f inspector) Visit(b *Block) Visitor {
	if f(b) {
		return f
	}
	return nil
}

// Inspect traverses a block tree in depth-first order, calling f for each
// block. If f returns false, the children of that block are skipped.
func Inspect(b *Block, f func(*Block) bool) {
	Walk(inspector(f), b)
}

// InspectProgram calls Inspect for every top-level block of p.
func InspectProgram(p *Program, f func(*Block) bool) {
	WalkProgram(inspector(f), p)
}

// InspectEdges calls f for every connection in the tree rooted at b, with
// the parent block, the socket name and the connected child. The root is
// reported with a nil parent and empty socket. If f returns false the
// child's own connections are skipped.
func InspectEdges(b *Block, f func(parent *Block, socket string, child *Block) bool) {
	inspectEdges(nil, "", b, f)
}

func inspectEdges(parent *Block, socket string, b *Block, f func(*Block, string, *Block) bool) {
	if b == nil || !f(parent, socket, b) {
		return
	}
	for _, name := range b.Sockets() {
		inspectEdges(b, name, b.Input(name), f)
	}
}
