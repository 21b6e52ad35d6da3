package benchmarks

import (
	"strings"
	"testing"

	"github.com/seuros/gopher-estree/src/estree"
	"github.com/seuros/gopher-estree/src/parser"
	"github.com/seuros/gopher-estree/src/transform"
)

func BenchmarkParseSimpleCall(b *testing.B) {
	p, err := parser.New()
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Parse(`console.log("hello")`); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRewriteProgram(b *testing.B) {
	p, err := parser.New()
	if err != nil {
		b.Fatal(err)
	}

	var lines []string
	for i := 0; i < 50; i++ {
		lines = append(lines, `console.log("hello")`, `outer(console.error("oops", 2))`)
	}
	source := strings.Join(lines, "\n")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		program, err := p.Parse(source)
		if err != nil {
			b.Fatal(err)
		}

		rewritten := estree.NewRewriter(transform.NewConsoleArgRule("")).Rewrite(program)

		if _, err := estree.NewPrinter().Print(rewritten); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPrintDeeplyNested(b *testing.B) {
	call := estree.Node(&estree.CallExpression{
		Callee:    &estree.Identifier{Name: "leaf"},
		Arguments: []estree.Node{&estree.StringLiteral{Value: "x", Raw: `"x"`}},
	})
	for i := 0; i < 100; i++ {
		call = &estree.CallExpression{
			Callee:    &estree.Identifier{Name: "wrap"},
			Arguments: []estree.Node{call},
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := estree.NewPrinter().Print(call); err != nil {
			b.Fatal(err)
		}
	}
}
