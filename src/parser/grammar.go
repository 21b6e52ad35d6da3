package parser

type Script struct {
	Statements []*Statement `parser:"@@*"`
}

type Statement struct {
	Expression *Expression `parser:"@@ ';'?"`
}

type Expression struct {
	Head *Primary  `parser:"@@"`
	Tail []*Suffix `parser:"@@*"`
}

type Primary struct {
	String *string `parser:"  @String"`
	Number *string `parser:"| @Number"`
	True   bool    `parser:"| @'true'"`
	False  bool    `parser:"| @'false'"`
	Array  *Array  `parser:"| @@"`
	Ident  *string `parser:"| @Ident"`
}

type Array struct {
	Elements []*Expression `parser:"'[' (@@ (',' @@)*)? ']'"`
}

type Suffix struct {
	Member *string `parser:"  '.' @Ident"`
	Call   *Call   `parser:"| @@"`
}

type Call struct {
	Arguments []*Expression `parser:"'(' (@@ (',' @@)*)? ')'"`
}
