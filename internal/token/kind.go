package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// IntLit represents an integer literal token.
	IntLit
	// FloatLit represents a float literal token.
	FloatLit

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Percent represents the percent operator token.
	Percent // %
	// Assign represents the assignment operator token.
	Assign // =
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// Comma represents the comma token.
	Comma // ,
	// Newline terminates a statement; also produced for ';'.
	Newline
)

var kindNames = [...]string{
	Invalid:  "Invalid",
	EOF:      "EOF",
	Ident:    "Ident",
	IntLit:   "IntLit",
	FloatLit: "FloatLit",
	Plus:     "Plus",
	Minus:    "Minus",
	Star:     "Star",
	Slash:    "Slash",
	Percent:  "Percent",
	Assign:   "Assign",
	LParen:   "LParen",
	RParen:   "RParen",
	Comma:    "Comma",
	Newline:  "Newline",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}
