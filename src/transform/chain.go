package transform

import "github.com/seuros/gopher-estree/src/estree"

// Chain composes rules left-to-right into a single rule. Each rule
// receives the call returned by the previous one.
type Chain struct {
	rules []estree.Rule
}

// NewChain creates a chain over the given rules.
func NewChain(rules ...estree.Rule) *Chain {
	return &Chain{rules: rules}
}

// Name identifies the chain in logs.
func (c *Chain) Name() string { return "chain" }

// Apply runs every rule in order.
func (c *Chain) Apply(call *estree.CallExpression) *estree.CallExpression {
	for _, r := range c.rules {
		call = r.Apply(call)
	}
	return call
}
