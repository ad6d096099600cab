package lexer

// Package lexer tokenizes a single scalar atom from the value/filter
// mini-language (see the root filter package) into a leading comparison
// operator, if any, and the remaining literal.

type tokenType int

const (
	eofToken tokenType = iota
	valueToken
	equalToken
	notEqualToken
	lessThanToken
	lessThanOrEqualToken
	greaterThanToken
	greaterThanOrEqualToken
)

// Token is one scanned element: an operator prefix (possibly implicit
// equalToken) followed by exactly one valueToken carrying the remaining
// literal.
type Token struct {
	Type  tokenType
	Value string
}

func (t Token) String() string {
	switch t.Type {
	case eofToken:
		return "<eof>"
	case valueToken:
		return t.Value
	case equalToken:
		return "="
	case notEqualToken:
		return "!="
	case lessThanToken:
		return "<"
	case lessThanOrEqualToken:
		return "<="
	case greaterThanToken:
		return ">"
	case greaterThanOrEqualToken:
		return ">="
	default:
		return "<unknown>"
	}
}

// IsOperator reports whether t is a comparison-operator token, as opposed
// to a value or eof token.
func (t Token) IsOperator() bool {
	switch t.Type {
	case equalToken, notEqualToken, lessThanToken, lessThanOrEqualToken, greaterThanToken, greaterThanOrEqualToken:
		return true
	default:
		return false
	}
}

const eof rune = 0
