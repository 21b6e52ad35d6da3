package estree

// MemberExpression represents property access (a.b or a[b]).
type MemberExpression struct {
	Object   Node
	Property *Identifier
	Computed bool
}

func (n *MemberExpression) Accept(v Visitor) error {
	if vv, ok := v.(interface {
		VisitMemberExpression(*MemberExpression) error
	}); ok {
		return vv.VisitMemberExpression(n)
	}
	return nil
}

// Kind returns the NodeKind for MemberExpression.
func (n *MemberExpression) Kind() NodeKind {
	return MemberExpressionKind
}
