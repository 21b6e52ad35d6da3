package estree

// Node represents a single AST element. It participates in the visitor
// pattern used by the printer and the rewriter.
type Node interface {
	// Accept allows a visitor to process the node.
	Accept(v Visitor) error
	// Kind returns the specific kind of the node.
	Kind() NodeKind
}

// Visitor is implemented by types that can handle specific AST nodes.
type Visitor interface{}
