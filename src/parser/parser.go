package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/seuros/gopher-estree/src/estree"
)

var scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Number", Pattern: `\d+(\.\d+)?`},
	{Name: "Ident", Pattern: `[a-zA-Z_$][a-zA-Z0-9_$]*`},
	{Name: "Punct", Pattern: `[(),.;\[\]]`},
	{Name: "whitespace", Pattern: `\s+`},
})

type Parser struct {
	parser *participle.Parser[Script]
}

func New() (*Parser, error) {
	parser, err := participle.Build[Script](
		participle.Lexer(scriptLexer),
		// String tokens keep their raw form; estree.DecodeRaw unquotes
		// them during lowering so literals carry both value and raw.
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	return &Parser{parser: parser}, nil
}

func (p *Parser) Parse(input string) (*estree.Program, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	script, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	return convertToAST(script)
}

func validateInput(input string) error {
	if strings.Contains(input, "'") {
		return fmt.Errorf("single quotes not allowed, use double quotes")
	}

	if strings.Contains(input, "`") {
		return fmt.Errorf("template literals not supported")
	}

	return nil
}

func convertToAST(script *Script) (*estree.Program, error) {
	program := &estree.Program{Body: make([]estree.Node, 0, len(script.Statements))}

	for _, stmt := range script.Statements {
		expr, err := convertExpression(stmt.Expression)
		if err != nil {
			return nil, err
		}
		program.Body = append(program.Body, &estree.ExpressionStatement{Expression: expr})
	}

	return program, nil
}

func convertExpression(expr *Expression) (estree.Node, error) {
	node, err := convertPrimary(expr.Head)
	if err != nil {
		return nil, err
	}

	// Fold member and call suffixes left to right so a.b(c).d lowers
	// to nested MemberExpression/CallExpression nodes.
	for _, suffix := range expr.Tail {
		if suffix.Member != nil {
			node = &estree.MemberExpression{
				Object:   node,
				Property: &estree.Identifier{Name: *suffix.Member},
			}
		}

		if suffix.Call != nil {
			args := make([]estree.Node, 0, len(suffix.Call.Arguments))
			for _, arg := range suffix.Call.Arguments {
				converted, err := convertExpression(arg)
				if err != nil {
					return nil, err
				}
				args = append(args, converted)
			}
			node = &estree.CallExpression{Callee: node, Arguments: args}
		}
	}

	return node, nil
}

func convertPrimary(primary *Primary) (estree.Node, error) {
	if primary.String != nil {
		raw := *primary.String
		value, err := estree.DecodeRaw(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid string literal %s: %w", raw, err)
		}
		return &estree.StringLiteral{Value: value, Raw: raw}, nil
	}

	if primary.Number != nil {
		raw := *primary.Number
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number literal %s: %w", raw, err)
		}
		return &estree.NumberLiteral{Value: value, Raw: raw}, nil
	}

	if primary.True {
		return &estree.BooleanLiteral{Value: true}, nil
	}

	if primary.False {
		return &estree.BooleanLiteral{Value: false}, nil
	}

	if primary.Array != nil {
		elements := make([]estree.Node, 0, len(primary.Array.Elements))
		for _, el := range primary.Array.Elements {
			converted, err := convertExpression(el)
			if err != nil {
				return nil, err
			}
			elements = append(elements, converted)
		}
		return &estree.ArrayExpression{Elements: elements}, nil
	}

	if primary.Ident != nil {
		name := *primary.Ident
		if IsReserved(name) {
			return nil, fmt.Errorf("reserved word %q cannot be used as an expression", name)
		}
		return &estree.Identifier{Name: name}, nil
	}

	return nil, fmt.Errorf("empty expression")
}
