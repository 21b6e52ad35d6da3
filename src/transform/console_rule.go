package transform

import "github.com/seuros/gopher-estree/src/estree"

// DefaultReplacement is what the first argument of a matching call
// becomes when no replacement is configured.
const DefaultReplacement = "from_plugin"

// consoleObject is matched structurally: the callee object must be a
// bare identifier with exactly this name. No scope or binding
// resolution happens; a local variable shadowing console still matches.
const consoleObject = "console"

// ConsoleArgRule replaces the first argument of any console.* call
// with a fixed string literal. The property name is unconstrained:
// console.log, console.error and console.warn all match.
type ConsoleArgRule struct {
	replacement string
}

// NewConsoleArgRule creates the rule. An empty replacement falls back
// to DefaultReplacement.
func NewConsoleArgRule(replacement string) *ConsoleArgRule {
	if replacement == "" {
		replacement = DefaultReplacement
	}
	return &ConsoleArgRule{replacement: replacement}
}

// Name identifies the rule in config and logs.
func (r *ConsoleArgRule) Name() string { return "console-arg-replace" }

// Apply mutates a matching call in place and returns it. Calls that do
// not match the callee shape, have no arguments, or whose first
// argument is not a string literal pass through untouched.
func (r *ConsoleArgRule) Apply(call *estree.CallExpression) *estree.CallExpression {
	member, ok := call.Callee.(*estree.MemberExpression)
	if !ok || member.Computed {
		return call
	}
	object, ok := member.Object.(*estree.Identifier)
	if !ok || object.Name != consoleObject {
		return call
	}
	if len(call.Arguments) == 0 {
		return call
	}
	lit, ok := call.Arguments[0].(*estree.StringLiteral)
	if !ok {
		// Non-literal first arguments (identifiers, nested calls) are
		// left alone rather than being replaced wholesale.
		return call
	}
	lit.SetValue(r.replacement)
	return call
}
