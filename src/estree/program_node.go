package estree

// Program is the root node of a parsed source file.
type Program struct {
	Body []Node
}

func (n *Program) Accept(v Visitor) error {
	if vv, ok := v.(interface{ VisitProgram(*Program) error }); ok {
		return vv.VisitProgram(n)
	}
	return nil
}

// Kind returns the NodeKind for Program.
func (n *Program) Kind() NodeKind {
	return ProgramKind
}

// ExpressionStatement wraps an expression used in statement position.
type ExpressionStatement struct {
	Expression Node
}

func (n *ExpressionStatement) Accept(v Visitor) error {
	if vv, ok := v.(interface {
		VisitExpressionStatement(*ExpressionStatement) error
	}); ok {
		return vv.VisitExpressionStatement(n)
	}
	return nil
}

// Kind returns the NodeKind for ExpressionStatement.
func (n *ExpressionStatement) Kind() NodeKind {
	return ExpressionStatementKind
}
