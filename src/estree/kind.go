package estree

// NodeKind defines the kind of an AST node.
type NodeKind int

// Enum for NodeKind
const (
	UnknownKind NodeKind = iota
	ProgramKind
	ExpressionStatementKind
	CallExpressionKind
	MemberExpressionKind
	IdentifierKind
	StringLiteralKind
	NumberLiteralKind
	BooleanLiteralKind
	ArrayExpressionKind
	// Add other node kinds as the grammar grows
)

// String returns the ESTree type name for a NodeKind.
func (k NodeKind) String() string {
	switch k {
	case ProgramKind:
		return "Program"
	case ExpressionStatementKind:
		return "ExpressionStatement"
	case CallExpressionKind:
		return "CallExpression"
	case MemberExpressionKind:
		return "MemberExpression"
	case IdentifierKind:
		return "Identifier"
	case StringLiteralKind:
		return "StringLiteral"
	case NumberLiteralKind:
		return "NumericLiteral"
	case BooleanLiteralKind:
		return "BooleanLiteral"
	case ArrayExpressionKind:
		return "ArrayExpression"
	default:
		return "Unknown"
	}
}
