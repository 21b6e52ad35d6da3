package estree

// Rule is a predicate + mutation pair applied to call expressions.
// Apply must either mutate the call in place and return it, or return
// it untouched when the call does not match.
type Rule interface {
	// Name identifies the rule in config and logs.
	Name() string
	// Apply mutates a matching call in place and returns it.
	Apply(call *CallExpression) *CallExpression
}

// RewriteStats reports what a single traversal did.
type RewriteStats struct {
	NodesVisited   int
	CallsInspected int
}

// Rewriter walks an AST depth-first, visiting every node exactly once.
// Each child is replaced with the result of rewriting it, so rules
// could substitute nodes structurally, though the current rule set only
// mutates fields in place. Call expressions are handed to the rules
// after their children have been rewritten, so nested calls are
// reached before their enclosing call is inspected.
type Rewriter struct {
	rules []Rule
	stats RewriteStats
}

// NewRewriter creates a rewriter applying the given rules in order.
func NewRewriter(rules ...Rule) *Rewriter {
	return &Rewriter{rules: rules}
}

// Stats returns the counters accumulated since the rewriter was created.
func (r *Rewriter) Stats() RewriteStats { return r.stats }

// Rewrite visits node and every node reachable from it, returning the
// (possibly mutated) node. The tree is mutated in place; the returned
// reference is the one passed in unless a rule substitutes it.
func (r *Rewriter) Rewrite(node Node) Node {
	if node == nil {
		return nil
	}
	r.stats.NodesVisited++

	switch n := node.(type) {
	case *Program:
		for i, stmt := range n.Body {
			n.Body[i] = r.Rewrite(stmt)
		}
		return n

	case *ExpressionStatement:
		n.Expression = r.Rewrite(n.Expression)
		return n

	case *CallExpression:
		n.Callee = r.Rewrite(n.Callee)
		for i, arg := range n.Arguments {
			n.Arguments[i] = r.Rewrite(arg)
		}
		return r.applyRules(n)

	case *MemberExpression:
		n.Object = r.Rewrite(n.Object)
		if n.Property != nil {
			n.Property = r.Rewrite(n.Property).(*Identifier)
		}
		return n

	case *ArrayExpression:
		for i, el := range n.Elements {
			n.Elements[i] = r.Rewrite(el)
		}
		return n

	default:
		// Identifiers and literals have no children.
		return n
	}
}

func (r *Rewriter) applyRules(call *CallExpression) Node {
	r.stats.CallsInspected++
	for _, rule := range r.rules {
		call = rule.Apply(call)
	}
	return call
}
