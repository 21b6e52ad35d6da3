package estree

// CallExpression represents a function or method invocation.
type CallExpression struct {
	Callee    Node
	Arguments []Node
}

func (n *CallExpression) Accept(v Visitor) error {
	if vv, ok := v.(interface {
		VisitCallExpression(*CallExpression) error
	}); ok {
		return vv.VisitCallExpression(n)
	}
	return nil
}

// Kind returns the NodeKind for CallExpression.
func (n *CallExpression) Kind() NodeKind {
	return CallExpressionKind
}
