package estree

// Identifier represents a bare name reference.
type Identifier struct {
	Name string
}

func (n *Identifier) Accept(v Visitor) error {
	if vv, ok := v.(interface{ VisitIdentifier(*Identifier) error }); ok {
		return vv.VisitIdentifier(n)
	}
	return nil
}

// Kind returns the NodeKind for Identifier.
func (n *Identifier) Kind() NodeKind {
	return IdentifierKind
}
