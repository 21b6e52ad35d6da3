package estree

import (
	"fmt"
	"strconv"
	"strings"
)

// Printer walks the AST and renders source text. Output is normalized:
// statements are newline separated and argument lists use ", ".
type Printer struct {
	output         strings.Builder
	firstStatement bool
}

// NewPrinter creates a new printer instance.
func NewPrinter() *Printer {
	return &Printer{firstStatement: true}
}

// Output returns the rendered source text.
func (p *Printer) Output() string { return p.output.String() }

// Print renders one or more AST nodes.
func (p *Printer) Print(nodes ...Node) (string, error) {
	for _, n := range nodes {
		if err := n.Accept(p); err != nil {
			return "", err
		}
	}
	return p.output.String(), nil
}

// VisitProgram renders every top-level statement.
func (p *Printer) VisitProgram(n *Program) error {
	for _, stmt := range n.Body {
		if !p.firstStatement {
			p.output.WriteByte('\n')
		}
		if err := stmt.Accept(p); err != nil {
			return err
		}
		p.firstStatement = false
	}
	return nil
}

// VisitExpressionStatement renders the wrapped expression.
func (p *Printer) VisitExpressionStatement(n *ExpressionStatement) error {
	return n.Expression.Accept(p)
}

// VisitCallExpression renders callee(arg, ...).
func (p *Printer) VisitCallExpression(n *CallExpression) error {
	if err := n.Callee.Accept(p); err != nil {
		return err
	}
	p.output.WriteByte('(')
	for i, arg := range n.Arguments {
		if i > 0 {
			p.output.WriteString(", ")
		}
		if err := arg.Accept(p); err != nil {
			return err
		}
	}
	p.output.WriteByte(')')
	return nil
}

// VisitMemberExpression renders object.property or object[property].
func (p *Printer) VisitMemberExpression(n *MemberExpression) error {
	if err := n.Object.Accept(p); err != nil {
		return err
	}
	if n.Computed {
		p.output.WriteByte('[')
		if err := n.Property.Accept(p); err != nil {
			return err
		}
		p.output.WriteByte(']')
		return nil
	}
	p.output.WriteByte('.')
	return n.Property.Accept(p)
}

// VisitIdentifier renders the name.
func (p *Printer) VisitIdentifier(n *Identifier) error {
	p.output.WriteString(n.Name)
	return nil
}

// VisitStringLiteral renders the raw source form. Printing Raw rather
// than re-encoding Value is what keeps the round trip exact, so a
// desynchronized literal is a hard error here.
func (p *Printer) VisitStringLiteral(n *StringLiteral) error {
	decoded, err := DecodeRaw(n.Raw)
	if err != nil {
		return fmt.Errorf("string literal raw %q does not lex: %w", n.Raw, err)
	}
	if decoded != n.Value {
		return fmt.Errorf("string literal raw %q decodes to %q, value is %q", n.Raw, decoded, n.Value)
	}
	p.output.WriteString(n.Raw)
	return nil
}

// VisitNumberLiteral renders the raw source form when present.
func (p *Printer) VisitNumberLiteral(n *NumberLiteral) error {
	if n.Raw != "" {
		p.output.WriteString(n.Raw)
		return nil
	}
	p.output.WriteString(strconv.FormatFloat(n.Value, 'g', -1, 64))
	return nil
}

// VisitBooleanLiteral renders true or false.
func (p *Printer) VisitBooleanLiteral(n *BooleanLiteral) error {
	p.output.WriteString(strconv.FormatBool(n.Value))
	return nil
}

// VisitArrayExpression renders [el, ...].
func (p *Printer) VisitArrayExpression(n *ArrayExpression) error {
	p.output.WriteByte('[')
	for i, el := range n.Elements {
		if i > 0 {
			p.output.WriteString(", ")
		}
		if err := el.Accept(p); err != nil {
			return err
		}
	}
	p.output.WriteByte(']')
	return nil
}
