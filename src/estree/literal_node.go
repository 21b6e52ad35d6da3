package estree

import "strconv"

// StringLiteral represents a string literal. Value holds the decoded
// content; Raw holds the exact source text including quotes. The two
// must stay in sync: re-lexing Raw yields Value.
type StringLiteral struct {
	Value string
	Raw   string
}

func (n *StringLiteral) Accept(v Visitor) error {
	if vv, ok := v.(interface{ VisitStringLiteral(*StringLiteral) error }); ok {
		return vv.VisitStringLiteral(n)
	}
	return nil
}

// Kind returns the NodeKind for StringLiteral.
func (n *StringLiteral) Kind() NodeKind {
	return StringLiteralKind
}

// SetValue overwrites the literal content and rewrites Raw so the
// printed form stays consistent with the decoded value.
func (n *StringLiteral) SetValue(value string) {
	n.Value = value
	n.Raw = QuoteValue(value)
}

// QuoteValue renders a decoded string as a double-quoted source literal.
func QuoteValue(value string) string {
	return strconv.Quote(value)
}

// DecodeRaw re-lexes a raw string-literal token back to its decoded
// content. This is the round-trip check for the Value/Raw invariant.
func DecodeRaw(raw string) (string, error) {
	return strconv.Unquote(raw)
}

// NumberLiteral represents a numeric literal.
type NumberLiteral struct {
	Value float64
	Raw   string
}

func (n *NumberLiteral) Accept(v Visitor) error {
	if vv, ok := v.(interface{ VisitNumberLiteral(*NumberLiteral) error }); ok {
		return vv.VisitNumberLiteral(n)
	}
	return nil
}

// Kind returns the NodeKind for NumberLiteral.
func (n *NumberLiteral) Kind() NodeKind {
	return NumberLiteralKind
}

// BooleanLiteral represents true or false.
type BooleanLiteral struct {
	Value bool
}

func (n *BooleanLiteral) Accept(v Visitor) error {
	if vv, ok := v.(interface{ VisitBooleanLiteral(*BooleanLiteral) error }); ok {
		return vv.VisitBooleanLiteral(n)
	}
	return nil
}

// Kind returns the NodeKind for BooleanLiteral.
func (n *BooleanLiteral) Kind() NodeKind {
	return BooleanLiteralKind
}
