package parser

import "regexp"

var (
	identifierPattern = regexp.MustCompile(`^[a-zA-Z_$][a-zA-Z0-9_$]*$`)
)

func IsValidIdentifier(s string) bool {
	return identifierPattern.MatchString(s)
}

// IsReserved reports whether a name is a reserved word and therefore
// cannot appear as a bare identifier expression. Property names after
// a dot are exempt; obj.return is legal.
func IsReserved(s string) bool {
	reservedWords := []string{
		"break",
		"case",
		"catch",
		"class",
		"const",
		"continue",
		"default",
		"delete",
		"do",
		"else",
		"finally",
		"for",
		"function",
		"if",
		"new",
		"return",
		"switch",
		"throw",
		"try",
		"var",
		"void",
		"while",
	}

	for _, w := range reservedWords {
		if s == w {
			return true
		}
	}

	return false
}
