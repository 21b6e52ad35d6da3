package estree

// ArrayExpression represents an array literal.
type ArrayExpression struct {
	Elements []Node
}

func (n *ArrayExpression) Accept(v Visitor) error {
	if vv, ok := v.(interface {
		VisitArrayExpression(*ArrayExpression) error
	}); ok {
		return vv.VisitArrayExpression(n)
	}
	return nil
}

// Kind returns the NodeKind for ArrayExpression.
func (n *ArrayExpression) Kind() NodeKind {
	return ArrayExpressionKind
}
