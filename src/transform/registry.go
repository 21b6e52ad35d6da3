package transform

import (
	"fmt"

	"github.com/seuros/gopher-estree/src/estree"
)

// Build constructs a rule from its config name and options.
func Build(name string, options map[string]string) (estree.Rule, error) {
	switch name {
	case "console-arg-replace":
		return NewConsoleArgRule(options["replacement"]), nil
	default:
		return nil, fmt.Errorf("unknown rule %q", name)
	}
}

// Known reports whether a rule name can be built.
func Known(name string) bool {
	_, err := Build(name, nil)
	return err == nil
}
